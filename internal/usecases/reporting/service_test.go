package reporting

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/internal/usecases/aggregating"
	"github.com/vfg2006/auction-sales-report/internal/usecases/normalizing"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)

func soldRecord(tag, brand string, profit int64) domain.SaleRecord {
	return domain.SaleRecord{
		ItemTag:    tag,
		BrandName:  brand,
		Sold:       true,
		ProfitLoss: decimal.NewNullDecimal(decimal.NewFromInt(profit)),
		Cost:       decimal.NewNullDecimal(decimal.NewFromInt(100)),
	}
}

func unsoldRecord(tag string) domain.SaleRecord {
	return domain.SaleRecord{ItemTag: tag, BrandName: "X"}
}

func newTestService(source SalesSource, policy domain.Policy) *Service {
	service := NewService(source, aggregating.NewService(policy))
	service.generateID = func() (string, error) { return "run123", nil }
	service.now = func() time.Time { return fixedNow }
	return service
}

func defaultPolicy() domain.Policy {
	return domain.Policy{UnsoldFee: domain.DefaultUnsoldFee}
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSalesSource(ctrl)

	tests := []struct {
		name     string
		setup    func()
		wantErr  error
		validate func(t *testing.T, report *domain.Report)
	}{
		{
			name: "Pipeline completo com ciclo histórico e corrente",
			setup: func() {
				mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "February_25", Records: []domain.SaleRecord{soldRecord("F1", "A", 500), unsoldRecord("F2")}},
					{Label: "January_25", Records: []domain.SaleRecord{soldRecord("J1", "A", 1000)}},
				}, nil)
				mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "march", Records: []domain.SaleRecord{soldRecord("M1", "B", 300)}},
					{Label: "January", Records: []domain.SaleRecord{soldRecord("H1", "B", 100)}},
				}, nil)
			},
			validate: func(t *testing.T, report *domain.Report) {
				assert.Equal(t, "run123", report.RunID)
				assert.Equal(t, fixedNow, report.GeneratedAt)

				require.Len(t, report.Current, 2)
				assert.Equal(t, "January_25", report.Current[0].Label)
				assert.Equal(t, "February_25", report.Current[1].Label)
				assert.Equal(t, "February_25", report.Latest().Label)

				require.Len(t, report.Historical, 2)
				assert.Equal(t, "January", report.Historical[0].Label)
				assert.Equal(t, "March", report.Historical[1].Label)

				assert.Len(t, report.Timeline.Entries, 14)
				assert.Equal(t, "January_25", report.Timeline.Entries[12].Label)

				assert.Equal(t, "1000", report.Trend.PreviousRevenue.String())
				assert.Equal(t, "60", report.Trend.CurrentRevenue.String())
				assert.Equal(t, domain.Percent(-94), report.Trend.ChangePercent)
				assert.Equal(t, domain.DirectionDown, report.Trend.Direction)
			},
		},
		{
			name: "Mês anterior com receita zero resulta em alta infinita",
			setup: func() {
				mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "January_25"},
					{Label: "February_25", Records: []domain.SaleRecord{soldRecord("F1", "A", 100)}},
				}, nil)
				mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.Report) {
				assert.True(t, math.IsInf(float64(report.Trend.ChangePercent), 1))
				assert.Equal(t, domain.DirectionUp, report.Trend.Direction)
				assert.Empty(t, report.Historical)
			},
		},
		{
			name: "Número de meses correntes diferente de dois",
			setup: func() {
				mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "January_25"},
				}, nil)
			},
			wantErr: ErrCurrentMonths,
		},
		{
			name: "Rótulo histórico desconhecido interrompe a geração",
			setup: func() {
				mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "January_25"}, {Label: "February_25"},
				}, nil)
				mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "Smarch"},
				}, nil)
			},
			wantErr: domain.ErrUnknownMonth,
		},
		{
			name: "Meses correntes sem sufixo de ano interrompem a geração",
			setup: func() {
				mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "December", Records: []domain.SaleRecord{soldRecord("D1", "A", 200)}},
					{Label: "January", Records: []domain.SaleRecord{soldRecord("J1", "A", 100)}},
				}, nil)
				mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return([]domain.MonthlySales{}, nil)
			},
			wantErr: domain.ErrUnknownMonth,
		},
		{
			name: "Mês histórico duplicado interrompe a geração",
			setup: func() {
				mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "January_25"}, {Label: "February_25"},
				}, nil)
				mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return([]domain.MonthlySales{
					{Label: "March"}, {Label: "MARCH"},
				}, nil)
			},
			wantErr: normalizing.ErrDuplicateMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			report, err := newTestService(mockSource, defaultPolicy()).Generate(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, report)
				return
			}

			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_Generate_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sourceErr := errors.New("falha de leitura")
	mockSource := mocks.NewMockSalesSource(ctrl)
	mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
		{Label: "January_25"}, {Label: "February_25"},
	}, nil)
	mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return(nil, sourceErr)

	_, err := newTestService(mockSource, defaultPolicy()).Generate(context.Background())
	assert.ErrorIs(t, err, sourceErr)
}

func TestService_Generate_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	current := []domain.MonthlySales{
		{Label: "January_25", Records: []domain.SaleRecord{soldRecord("J1", "A", 1000), unsoldRecord("J2")}},
		{Label: "February_25", Records: []domain.SaleRecord{soldRecord("F1", "A", 500)}},
	}
	historical := []domain.MonthlySales{
		{Label: "April", Records: []domain.SaleRecord{soldRecord("A1", "C", 70), unsoldRecord("A2")}},
	}

	mockSource := mocks.NewMockSalesSource(ctrl)
	mockSource.EXPECT().CurrentMonths(gomock.Any()).Return(current, nil).Times(2)
	mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return(historical, nil).Times(2)

	service := newTestService(mockSource, defaultPolicy())

	first, err := service.Generate(context.Background())
	require.NoError(t, err)
	second, err := service.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSalesSource(ctrl)
	service := newTestService(mockSource, defaultPolicy())

	_, err := service.Latest()
	assert.ErrorIs(t, err, ErrReportNotReady)
	assert.False(t, service.Status().ReportAvailable)

	// Primeira atualização bem-sucedida publica o relatório
	mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
		{Label: "January_25"}, {Label: "February_25"},
	}, nil)
	mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return(nil, nil)

	published, err := service.Refresh(context.Background())
	require.NoError(t, err)

	latest, err := service.Latest()
	require.NoError(t, err)
	assert.Same(t, published, latest)

	status := service.Status()
	assert.True(t, status.ReportAvailable)
	assert.False(t, status.Running)
	assert.Equal(t, "run123", status.LastRunID)
	assert.Empty(t, status.LastError)

	// Uma falha posterior mantém o relatório anterior publicado
	mockSource.EXPECT().CurrentMonths(gomock.Any()).Return(nil, errors.New("fonte indisponível"))

	_, err = service.Refresh(context.Background())
	require.Error(t, err)

	latest, err = service.Latest()
	require.NoError(t, err)
	assert.Same(t, published, latest)

	status = service.Status()
	assert.True(t, status.ReportAvailable)
	assert.Contains(t, status.LastError, "fonte indisponível")
}

func TestService_Generate_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSalesSource(ctrl)
	mockSource.EXPECT().CurrentMonths(gomock.Any()).Return([]domain.MonthlySales{
		{Label: "January_25"}, {Label: "February_25"},
	}, nil)
	mockSource.EXPECT().HistoricalMonths(gomock.Any()).Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(mockSource, defaultPolicy()).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
