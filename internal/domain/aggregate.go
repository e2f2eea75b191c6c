package domain

import "github.com/shopspring/decimal"

// BrandTotal é o lucro somado de uma marca nos itens vendidos do mês
type BrandTotal struct {
	BrandName string          `json:"brand_name"`
	Profit    decimal.Decimal `json:"profit"`
	Share     float64         `json:"share"` // Percentual sobre o lucro somado de todas as marcas
}

// TopItem é um item do pódio dos mais lucrativos
type TopItem struct {
	Rank           int                 `json:"rank"`
	ItemTag        string              `json:"item_tag"`
	ProfitLoss     decimal.NullDecimal `json:"profit_loss"`
	Cost           decimal.NullDecimal `json:"cost_after_tax"`
	RevenuePercent float64             `json:"revenue_percent"`
	ImageURL       string              `json:"image_url,omitempty"`
}

// MonthlyAggregate é o resumo de lucro e prejuízo de um mês
type MonthlyAggregate struct {
	Label           string          `json:"label"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	TotalFee        decimal.Decimal `json:"total_fee"`
	AdjustmentTotal decimal.Decimal `json:"adjustment_total"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	CountSold       int             `json:"count_sold"`
	CountUnsold     int             `json:"count_unsold"`
	CountTotal      int             `json:"count_total"`
	Adjustments     []Adjustment    `json:"adjustments"`
	Brands          []BrandTotal    `json:"brands"`
	TopItems        []TopItem       `json:"top_items"`
}
