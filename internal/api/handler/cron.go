package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// RefreshScheduler é o agendador de atualização do relatório visto pela API
type RefreshScheduler interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// RunRefreshJob dispara a atualização agendada fora do horário, sem aguardar o resultado
func RunRefreshJob(scheduler RefreshScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("Execução manual da cron de atualização do relatório")

		scheduler.TriggerManualSync()

		writeJSON(w, r, http.StatusAccepted, map[string]string{
			"message": "Atualização do relatório iniciada em background",
		})
	}
}

// GetCronStatus retorna a configuração e o estado do agendador
func GetCronStatus(scheduler RefreshScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, scheduler.GetStatus())
	}
}
