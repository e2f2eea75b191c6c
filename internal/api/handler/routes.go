package handler

import (
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/auction-sales-report/internal/api/handler/router"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/auction-sales-report/pkg/middleware"
)

func Healthcheck(reporter reporting.Reporter, sourceName string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(reporter, sourceName),
		},
	}
}

func Report(reporter reporting.Reporter, refreshTimeout time.Duration) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: GetReport(reporter),
		},
		{
			Path:    "/v1/report/timeline",
			Method:  http.MethodGet,
			Handler: GetTimeline(reporter),
		},
		{
			Path:    "/v1/report/trend",
			Method:  http.MethodGet,
			Handler: GetTrend(reporter),
		},
		{
			Path:    "/v1/report/months/:label",
			Method:  http.MethodGet,
			Handler: GetMonth(reporter),
		},
		{
			Path:    "/v1/report/status",
			Method:  http.MethodGet,
			Handler: GetReportStatus(reporter),
		},
		{
			Path:        "/v1/report/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshReport(reporter),
			Middlewares: []alice.Constructor{middleware.RequestTimeout(refreshTimeout)},
		},
	}
}

func CronJobs(scheduler RefreshScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/report-refresh",
			Method:  http.MethodPost,
			Handler: RunRefreshJob(scheduler),
		},
		{
			Path:    "/v1/cron/report-refresh",
			Method:  http.MethodGet,
			Handler: GetCronStatus(scheduler),
		},
	}
}
