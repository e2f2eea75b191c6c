package domain

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Direction indica se a receita subiu ou desceu em relação ao mês anterior
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Percent é um percentual que pode ser +Inf quando a base anterior era zero
type Percent float64

// MarshalJSON codifica infinito como string, já que JSON não tem essa representação
func (p Percent) MarshalJSON() ([]byte, error) {
	f := float64(p)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(f)
}

// Trend é a variação mês a mês entre os dois meses mais recentes
type Trend struct {
	PreviousLabel   string          `json:"previous_label"`
	PreviousRevenue decimal.Decimal `json:"previous_revenue"`
	CurrentLabel    string          `json:"current_label"`
	CurrentRevenue  decimal.Decimal `json:"current_revenue"`
	ChangePercent   Percent         `json:"change_percent"`
	Direction       Direction       `json:"direction"`
}
