package entity

import "github.com/shopspring/decimal"

// MonthlyAmount monto de compras de un mes.
type MonthlyAmount struct {
	Month  string
	Amount decimal.Decimal
}

// CategoryShare participación porcentual de una categoría en las compras.
type CategoryShare struct {
	Category string
	Percent  int
}
