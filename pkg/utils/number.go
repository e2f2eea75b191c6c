package utils

import "math"

// RoundWithTwoDecimalPlace arredonda percentuais para exibição. Infinito e NaN passam sem alteração.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}

	rounded := math.Round(f*100) / 100
	if rounded == 0 {
		// evita -0 na saída JSON
		return 0
	}
	return rounded
}
