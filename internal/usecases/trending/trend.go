// Package trending calcula a variação percentual de receita entre meses consecutivos
package trending

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/auction-sales-report/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// PercentChange devolve a variação de prior para current em pontos percentuais.
//
//	prior > 0:  (current - prior) / prior * 100
//	prior < 0:  (current - prior) / |prior| * 100
//	prior == 0: +Inf se current > 0, senão 0
func PercentChange(current, prior decimal.Decimal) float64 {
	if prior.IsZero() {
		if current.IsPositive() {
			return math.Inf(1)
		}
		return 0
	}

	return current.Sub(prior).Div(prior.Abs()).Mul(hundred).InexactFloat64()
}

// DirectionOf classifica variações não negativas como alta
func DirectionOf(change float64) domain.Direction {
	if change >= 0 {
		return domain.DirectionUp
	}
	return domain.DirectionDown
}

// Compare monta a tendência entre o mês anterior e o mês corrente
func Compare(previous, current domain.MonthlyAggregate) domain.Trend {
	change := PercentChange(current.TotalRevenue, previous.TotalRevenue)

	return domain.Trend{
		PreviousLabel:   previous.Label,
		PreviousRevenue: previous.TotalRevenue,
		CurrentLabel:    current.Label,
		CurrentRevenue:  current.TotalRevenue,
		ChangePercent:   domain.Percent(change),
		Direction:       DirectionOf(change),
	}
}
