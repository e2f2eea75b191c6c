package domain

import "github.com/shopspring/decimal"

// TimelineEntry é um ponto da série de receita mensal
type TimelineEntry struct {
	Label        string          `json:"label"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	CurrentCycle bool            `json:"current_cycle"`
}

// Timeline é a série ordenada: 12 meses do ciclo histórico seguidos dos meses do ciclo corrente
type Timeline struct {
	Entries    []TimelineEntry `json:"entries"`
	MinRevenue decimal.Decimal `json:"min_revenue"`
	MaxRevenue decimal.Decimal `json:"max_revenue"`
}

// Labels devolve os rótulos na ordem da série
func (t Timeline) Labels() []string {
	labels := make([]string, 0, len(t.Entries))
	for _, entry := range t.Entries {
		labels = append(labels, entry.Label)
	}
	return labels
}
