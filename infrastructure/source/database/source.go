// Package database expõe a tabela de vendas como fonte do relatório
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/infrastructure/repository"
	"github.com/vfg2006/auction-sales-report/internal/domain"
)

// Source lê os meses a partir de period_label. Rótulos sem ano são históricos; os rótulos
// correntes vêm da configuração. Rótulos com ano fora do ciclo corrente são ignorados.
type Source struct {
	repo          repository.SaleRecordRepository
	currentLabels []string
}

func New(repo repository.SaleRecordRepository, currentLabels []string) *Source {
	return &Source{repo: repo, currentLabels: currentLabels}
}

func (s *Source) HistoricalMonths(ctx context.Context) ([]domain.MonthlySales, error) {
	periods, err := s.repo.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}

	months := make([]domain.MonthlySales, 0, len(periods))
	for _, period := range periods {
		label, err := domain.ParseMonthLabel(period)
		if err != nil {
			return nil, fmt.Errorf("period_label %q: %w", period, err)
		}

		if label.HasYear {
			logrus.WithField("period", period).Debug("Período com ano ignorado na leitura histórica")
			continue
		}

		records, err := s.repo.ListByPeriod(ctx, period)
		if err != nil {
			return nil, err
		}

		months = append(months, domain.MonthlySales{Label: label.String(), Records: records})
	}

	return months, nil
}

func (s *Source) CurrentMonths(ctx context.Context) ([]domain.MonthlySales, error) {
	months := make([]domain.MonthlySales, 0, len(s.currentLabels))
	for _, label := range s.currentLabels {
		records, err := s.repo.ListByPeriod(ctx, label)
		if err != nil {
			return nil, err
		}

		if len(records) == 0 {
			logrus.WithField("period", label).Warn("Nenhuma venda encontrada para o mês corrente")
		}

		months = append(months, domain.MonthlySales{Label: label, Records: records})
	}

	return months, nil
}
