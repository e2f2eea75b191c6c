package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/auction-sales-report/internal/config"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting/mocks"
	"github.com/vfg2006/auction-sales-report/pkg/apiErrors"
	"github.com/vfg2006/auction-sales-report/pkg/log"
	"go.uber.org/mock/gomock"
)

type idleScheduler struct{}

func (idleScheduler) TriggerManualSync() {}

func (idleScheduler) GetStatus() map[string]any {
	return map[string]any{"enabled": false}
}

func newTestHandler(reporter *mocks.MockReporter) http.Handler {
	cfg := &config.Config{
		Server:        config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		ReportRefresh: config.ReportRefresh{Timeout: time.Second},
	}
	return NewHandler(cfg, Dependencies{Reporter: reporter, Scheduler: idleScheduler{}, SourceName: "csv"})
}

func TestNewHandler_MiddlewareChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().Latest().Return(nil, reporting.ErrReportNotReady)

	req := httptest.NewRequest(http.MethodGet, "/v1/report", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	newTestHandler(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), string(apiErrors.ErrReportNotReady))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
}

func TestNewHandler_Healthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().Status().Return(domain.ReportStatus{Running: true})

	rec := httptest.NewRecorder()
	newTestHandler(reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refreshing":true`)
}

func TestNewHandler_Preflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodOptions, "/v1/report/refresh", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	newTestHandler(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}
