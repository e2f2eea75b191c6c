package domain

import "github.com/shopspring/decimal"

// SaleRecord representa uma linha da exportação mensal de leilão
type SaleRecord struct {
	ItemTag    string              `json:"item_tag"`
	BrandName  string              `json:"brand_name"`
	Sold       bool                `json:"sold"`
	ProfitLoss decimal.NullDecimal `json:"profit_loss"`
	Cost       decimal.NullDecimal `json:"cost_after_tax"`
}

// MonthlySales é o par (rótulo do mês, registros) entregue pelas fontes de dados
type MonthlySales struct {
	Label   string       `json:"label"`
	Records []SaleRecord `json:"records"`
}
