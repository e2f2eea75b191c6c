package loading

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyNoise são os símbolos e separadores de milhar removidos antes da conversão
var currencyNoise = strings.NewReplacer(
	"¥", "",
	"￥", "",
	"$", "",
	"€", "",
	",", "",
	" ", "",
	"\u00a0", "",
)

// ParseCurrency converte valores como "¥12,345" ou "1,200.50" em decimal. Valores vazios ou
// mal formatados resultam em um NullDecimal inválido em vez de erro.
func ParseCurrency(raw string) decimal.NullDecimal {
	cleaned := currencyNoise.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.NullDecimal{}
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(value)
}

// ParseSold interpreta a coluna de vendido. Qualquer valor diferente de verdadeiro conta como não vendido.
func ParseSold(raw string) (sold bool, recognized bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "t":
		return true, true
	case "false", "0", "no", "n", "f":
		return false, true
	}
	return false, false
}
