package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/internal/usecases/loading"
	"github.com/vfg2006/auction-sales-report/internal/usecases/normalizing"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/auction-sales-report/pkg/apiErrors"
	"github.com/vfg2006/auction-sales-report/pkg/log"
)

// latestReport escreve o erro REP_001 e devolve nil quando ainda não há relatório publicado
func latestReport(w http.ResponseWriter, reporter reporting.Reporter) *domain.Report {
	report, err := reporter.Latest()
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrReportNotReady, "Relatório ainda não foi gerado", nil)
		return nil
	}
	return report
}

// GetReport retorna o relatório completo mais recente
func GetReport(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := latestReport(w, reporter)
		if report == nil {
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetTimeline retorna a série de receita mensal (12 meses históricos + ciclo corrente)
func GetTimeline(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := latestReport(w, reporter)
		if report == nil {
			return
		}

		writeJSON(w, r, http.StatusOK, report.Timeline)
	}
}

// GetTrend retorna a comparação entre os dois meses do ciclo corrente
func GetTrend(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := latestReport(w, reporter)
		if report == nil {
			return
		}

		writeJSON(w, r, http.StatusOK, report.Trend)
	}
}

// GetMonth retorna o agregado de um mês. Aceita o rótulo em qualquer caixa ("march", "January_25").
func GetMonth(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := httprouter.ParamsFromContext(r.Context()).ByName("label")

		label, err := domain.ParseMonthLabel(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Rótulo de mês inválido", raw)
			return
		}

		report := latestReport(w, reporter)
		if report == nil {
			return
		}

		month := report.FindMonth(label.String())
		if month == nil {
			apiErrors.WriteError(w, apiErrors.ErrMonthNotFound, "Mês não encontrado no relatório", label.String())
			return
		}

		writeJSON(w, r, http.StatusOK, month)
	}
}

// RefreshReport regenera o relatório de forma síncrona. Em caso de erro o relatório anterior continua publicado.
func RefreshReport(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("Atualização do relatório solicitada")

		report, err := reporter.Refresh(r.Context())
		if err != nil {
			logger.WithError(err).Error("Erro ao atualizar relatório")
			apiErrors.Write(w, apiErrors.FromError(err, refreshErrorCode(err), "Erro ao atualizar relatório"))
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetReportStatus retorna o estado da última execução do pipeline
func GetReportStatus(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, reporter.Status())
	}
}

func refreshErrorCode(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrRefreshTimeout
	case errors.Is(err, context.Canceled):
		return apiErrors.ErrRefreshCanceled
	case errors.Is(err, reporting.ErrCurrentMonths),
		errors.Is(err, domain.ErrUnknownMonth),
		errors.Is(err, normalizing.ErrDuplicateMonth),
		errors.Is(err, loading.ErrEmptyFile),
		errors.Is(err, loading.ErrMissingHeader),
		errors.Is(err, loading.ErrMissingColumn):
		return apiErrors.ErrReportFailed
	default:
		return apiErrors.ErrSourceOperation
	}
}
