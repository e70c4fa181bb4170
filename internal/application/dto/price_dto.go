package dto

import "github.com/shopspring/decimal"

// PriceItemDTO producto en la consulta de precios.
type PriceItemDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Specs    []string        `json:"specs"`
	Category string          `json:"category"`
}

// PriceListResponse resultado de GET /api/prices.
type PriceListResponse struct {
	Query string         `json:"query"`
	Items []PriceItemDTO `json:"items"`
}
