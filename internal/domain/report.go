package domain

import "time"

// Report é o resultado completo de uma execução do pipeline
type Report struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Current     []MonthlyAggregate `json:"current"` // Ordem cronológica, o mais recente por último
	Historical  []MonthlyAggregate `json:"historical"`
	Timeline    Timeline           `json:"timeline"`
	Trend       Trend              `json:"trend"`
}

// Latest devolve o agregado do mês mais recente
func (r *Report) Latest() *MonthlyAggregate {
	if r == nil || len(r.Current) == 0 {
		return nil
	}
	return &r.Current[len(r.Current)-1]
}

// FindMonth procura um agregado pelo rótulo, primeiro no ciclo corrente e depois no histórico
func (r *Report) FindMonth(label string) *MonthlyAggregate {
	if r == nil {
		return nil
	}
	for i := range r.Current {
		if r.Current[i].Label == label {
			return &r.Current[i]
		}
	}
	for i := range r.Historical {
		if r.Historical[i].Label == label {
			return &r.Historical[i]
		}
	}
	return nil
}

// ReportStatus descreve a última execução do pipeline
type ReportStatus struct {
	Running         bool      `json:"running"`
	LastRunID       string    `json:"last_run_id"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastError       string    `json:"last_error,omitempty"`
	ReportAvailable bool      `json:"report_available"`
}
