// Package aggregating reduz os registros de um mês a um resumo de lucro e prejuízo
package aggregating

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/pkg/utils"
)

// PodiumSize é o número de itens exibidos no pódio mensal
const PodiumSize = 3

var hundred = decimal.NewFromInt(100)

// Aggregator define a agregação de um mês
type Aggregator interface {
	Aggregate(month domain.MonthlySales) domain.MonthlyAggregate
}

// Service agrega meses aplicando a política de taxas e ajustes configurada
type Service struct {
	policy domain.Policy
}

// NewService cria o agregador com a política informada
func NewService(policy domain.Policy) *Service {
	return &Service{policy: policy}
}

// Aggregate calcula lucro, taxa, receita, ranking de marcas e pódio de um mês
func (s *Service) Aggregate(month domain.MonthlySales) domain.MonthlyAggregate {
	sold, unsold := Partition(month.Records, s.policy.UnsoldFee)

	totalProfit := sumProfit(sold)
	totalFee := sumProfit(unsold)

	adjustments := s.policy.AdjustmentsFor(month.Label)
	adjustmentTotal := decimal.Zero
	for _, adjustment := range adjustments {
		adjustmentTotal = adjustmentTotal.Add(adjustment.Amount)
	}

	aggregate := domain.MonthlyAggregate{
		Label:           month.Label,
		TotalProfit:     totalProfit,
		TotalFee:        totalFee,
		AdjustmentTotal: adjustmentTotal,
		TotalRevenue:    totalProfit.Add(totalFee).Add(adjustmentTotal),
		CountSold:       len(sold),
		CountUnsold:     len(unsold),
		CountTotal:      len(month.Records),
		Adjustments:     adjustments,
		Brands:          BrandTotals(sold),
		TopItems:        TopItems(sold, PodiumSize, s.policy.ImageURLTemplate),
	}

	logrus.WithFields(logrus.Fields{
		"month":         aggregate.Label,
		"total_profit":  aggregate.TotalProfit.String(),
		"total_fee":     aggregate.TotalFee.String(),
		"adjustments":   aggregate.AdjustmentTotal.String(),
		"total_revenue": aggregate.TotalRevenue.String(),
		"sold":          aggregate.CountSold,
		"total":         aggregate.CountTotal,
	}).Debug("Mês agregado")

	return aggregate
}

// Partition separa vendidos e não vendidos. Os não vendidos recebem a taxa como lucro/prejuízo,
// descartando qualquer valor anterior. Os registros de entrada não são alterados.
func Partition(records []domain.SaleRecord, unsoldFee decimal.Decimal) (sold, unsold []domain.SaleRecord) {
	sold = make([]domain.SaleRecord, 0, len(records))
	unsold = make([]domain.SaleRecord, 0)

	for _, record := range records {
		if record.Sold {
			sold = append(sold, record)
			continue
		}
		record.ProfitLoss = decimal.NewNullDecimal(unsoldFee)
		unsold = append(unsold, record)
	}

	return sold, unsold
}

// BrandTotals soma o lucro por marca, em ordem decrescente. Empates mantêm a ordem de aparição.
// Itens sem marca ficam fora do ranking, mas continuam nos totais do mês.
func BrandTotals(sold []domain.SaleRecord) []domain.BrandTotal {
	totals := make([]domain.BrandTotal, 0)
	positions := make(map[string]int)

	for _, record := range sold {
		if record.BrandName == "" {
			continue
		}

		pos, ok := positions[record.BrandName]
		if !ok {
			pos = len(totals)
			positions[record.BrandName] = pos
			totals = append(totals, domain.BrandTotal{BrandName: record.BrandName, Profit: decimal.Zero})
		}

		if record.ProfitLoss.Valid {
			totals[pos].Profit = totals[pos].Profit.Add(record.ProfitLoss.Decimal)
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Profit.GreaterThan(totals[j].Profit)
	})

	overall := decimal.Zero
	for _, total := range totals {
		overall = overall.Add(total.Profit)
	}

	if overall.IsPositive() {
		for i := range totals {
			share := totals[i].Profit.Div(overall).Mul(hundred)
			totals[i].Share = utils.RoundWithTwoDecimalPlace(share.InexactFloat64())
		}
	}

	return totals
}

// TopItems devolve até limit itens vendidos com maior lucro. Valores nulos vão para o fim e
// empates mantêm a ordem original.
func TopItems(sold []domain.SaleRecord, limit int, imageURLTemplate string) []domain.TopItem {
	ranked := make([]domain.SaleRecord, len(sold))
	copy(ranked, sold)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].ProfitLoss, ranked[j].ProfitLoss
		if !a.Valid || !b.Valid {
			return a.Valid && !b.Valid
		}
		return a.Decimal.GreaterThan(b.Decimal)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	items := make([]domain.TopItem, 0, len(ranked))
	for i, record := range ranked {
		item := domain.TopItem{
			Rank:           i + 1,
			ItemTag:        record.ItemTag,
			ProfitLoss:     record.ProfitLoss,
			Cost:           record.Cost,
			RevenuePercent: RevenuePercent(record.ProfitLoss, record.Cost),
		}
		if imageURLTemplate != "" && record.ItemTag != "" {
			item.ImageURL = fmt.Sprintf(imageURLTemplate, record.ItemTag)
		}
		items = append(items, item)
	}

	return items
}

// RevenuePercent calcula (lucro - custo) / custo * 100. Custo nulo ou <= 0 resulta em 0, assim
// como lucro nulo.
func RevenuePercent(profit, cost decimal.NullDecimal) float64 {
	if !profit.Valid || !cost.Valid || !cost.Decimal.IsPositive() {
		return 0
	}

	percent := profit.Decimal.Sub(cost.Decimal).Div(cost.Decimal).Mul(hundred)
	return utils.RoundWithTwoDecimalPlace(percent.InexactFloat64())
}

func sumProfit(records []domain.SaleRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		if record.ProfitLoss.Valid {
			total = total.Add(record.ProfitLoss.Decimal)
		}
	}
	return total
}
