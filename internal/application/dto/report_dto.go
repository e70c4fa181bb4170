package dto

import "github.com/shopspring/decimal"

// MonthlyReportResponse reporte mensual de compras.
type MonthlyReportResponse struct {
	Months     []MonthlyAmountDTO `json:"months"`
	Categories []CategoryShareDTO `json:"categories"`
	// MonthOverMonthPercent variación del último mes respecto al anterior, un decimal.
	MonthOverMonthPercent decimal.Decimal `json:"month_over_month_percent"`
	Suggestion            string          `json:"suggestion"`
}

type MonthlyAmountDTO struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

type CategoryShareDTO struct {
	Category string `json:"category"`
	Percent  int    `json:"percent"`
}
