package domain

import "github.com/shopspring/decimal"

// DefaultUnsoldFee é a taxa cobrada por item não vendido
var DefaultUnsoldFee = decimal.NewFromInt(-440)

// Adjustment é um ajuste manual e documentado da receita de um mês específico
type Adjustment struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// Policy agrupa as constantes de negócio usadas na agregação mensal
type Policy struct {
	UnsoldFee        decimal.Decimal
	Adjustments      []Adjustment
	ImageURLTemplate string
}

// AdjustmentsFor devolve os ajustes declarados para o rótulo informado
func (p Policy) AdjustmentsFor(label string) []Adjustment {
	adjustments := make([]Adjustment, 0)
	for _, adjustment := range p.Adjustments {
		if adjustment.Month == label {
			adjustments = append(adjustments, adjustment)
		}
	}
	return adjustments
}
