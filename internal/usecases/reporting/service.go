// Package reporting orquestra o pipeline: carga -> agregação -> série mensal -> tendência
package reporting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/internal/usecases/aggregating"
	"github.com/vfg2006/auction-sales-report/internal/usecases/normalizing"
	"github.com/vfg2006/auction-sales-report/internal/usecases/trending"
	"github.com/vfg2006/auction-sales-report/pkg/log"
	"github.com/vfg2006/auction-sales-report/pkg/utils"
)

// CurrentCycleSize é o número de meses do ciclo corrente comparados na tendência
const CurrentCycleSize = 2

var (
	// ErrCurrentMonths é retornado quando a fonte não entrega exatamente dois meses correntes
	ErrCurrentMonths = errors.New("são necessários exatamente dois meses do ciclo corrente")

	// ErrReportNotReady é retornado quando nenhum relatório foi gerado com sucesso ainda
	ErrReportNotReady = errors.New("relatório ainda não foi gerado")
)

// Service implementa Reporter
type Service struct {
	source     SalesSource
	aggregator aggregating.Aggregator
	generateID func() (string, error)
	now        func() time.Time

	refreshMutex sync.Mutex
	mutex        sync.RWMutex
	latest       *domain.Report
	status       domain.ReportStatus
}

// NewService cria o serviço de relatório
func NewService(source SalesSource, aggregator aggregating.Aggregator) *Service {
	return &Service{
		source:     source,
		aggregator: aggregator,
		generateID: utils.GenerateID,
		now:        time.Now,
	}
}

// Generate executa o pipeline completo. Qualquer erro aborta a geração inteira.
func (s *Service) Generate(ctx context.Context) (*domain.Report, error) {
	currentSales, err := s.source.CurrentMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar meses do ciclo corrente: %w", err)
	}
	if len(currentSales) != CurrentCycleSize {
		return nil, fmt.Errorf("%w: recebidos %d", ErrCurrentMonths, len(currentSales))
	}

	historicalSales, err := s.source.HistoricalMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar meses históricos: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	historical, err := s.aggregate(historicalSales)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar meses históricos: %w", err)
	}

	current, err := s.aggregate(currentSales)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar meses do ciclo corrente: %w", err)
	}

	timeline, err := normalizing.BuildTimeline(historical, current)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar série mensal: %w", err)
	}

	// Os rótulos já foram validados pela série mensal
	sortChronologically(historical)
	sortChronologically(current)

	runID, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da execução: %w", err)
	}

	report := &domain.Report{
		RunID:       runID,
		GeneratedAt: s.now(),
		Current:     current,
		Historical:  historical,
		Timeline:    timeline,
		Trend:       trending.Compare(current[0], current[1]),
	}

	logrus.WithFields(logrus.Fields{
		"run_id":           report.RunID,
		"historical":       len(historical),
		"current":          []string{current[0].Label, current[1].Label},
		"latest_revenue":   report.Trend.CurrentRevenue.String(),
		"previous_revenue": report.Trend.PreviousRevenue.String(),
		"direction":        report.Trend.Direction,
	}).Info("Relatório de vendas gerado")

	return report, nil
}

// Refresh gera um novo relatório e o publica. Em caso de erro o relatório anterior continua publicado.
func (s *Service) Refresh(ctx context.Context) (*domain.Report, error) {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	s.mutex.Lock()
	s.status.Running = true
	s.status.LastStartedAt = s.now()
	s.mutex.Unlock()

	report, err := s.Generate(ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.status.Running = false
	s.status.LastCompletedAt = s.now()

	if err != nil {
		s.status.LastError = err.Error()
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar relatório de vendas, mantendo o relatório anterior")
		return nil, err
	}

	s.latest = report
	s.status.LastRunID = report.RunID
	s.status.LastError = ""
	s.status.ReportAvailable = true

	return report, nil
}

// Latest devolve o último relatório publicado
func (s *Service) Latest() (*domain.Report, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.latest == nil {
		return nil, ErrReportNotReady
	}
	return s.latest, nil
}

// Status devolve o estado da última execução
func (s *Service) Status() domain.ReportStatus {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.status
}

// aggregate normaliza o rótulo de cada mês ("february" -> "February") antes de agregar
func (s *Service) aggregate(months []domain.MonthlySales) ([]domain.MonthlyAggregate, error) {
	aggregates := make([]domain.MonthlyAggregate, 0, len(months))
	for _, month := range months {
		label, err := domain.ParseMonthLabel(month.Label)
		if err != nil {
			return nil, err
		}
		month.Label = label.String()
		aggregates = append(aggregates, s.aggregator.Aggregate(month))
	}
	return aggregates, nil
}

func sortChronologically(aggregates []domain.MonthlyAggregate) {
	sort.SliceStable(aggregates, func(i, j int) bool {
		a, _ := domain.ParseMonthLabel(aggregates[i].Label)
		b, _ := domain.ParseMonthLabel(aggregates[j].Label)
		return a.Before(b)
	})
}
