package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
)

type healthcheckResponse struct {
	Status          string `json:"status"`
	Time            string `json:"time"`
	Source          string `json:"source"`
	ReportAvailable bool   `json:"report_available"`
	Refreshing      bool   `json:"refreshing"`
}

// HealthcheckHandler responde 200 enquanto o processo está de pé, mesmo sem relatório gerado.
// O estado do relatório vai no corpo para quem monitora a geração.
func HealthcheckHandler(reporter reporting.Reporter, sourceName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := reporter.Status()

		writeJSON(w, r, http.StatusOK, healthcheckResponse{
			Status:          "ok",
			Time:            time.Now().Format(time.RFC3339),
			Source:          sourceName,
			ReportAvailable: status.ReportAvailable,
			Refreshing:      status.Running,
		})
	})
}
