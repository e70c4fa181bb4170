package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExtractedOrderLine línea de pedido extraída del texto libre por el intérprete.
// Transitoria; Name es texto libre y puede no coincidir con ningún producto.
type ExtractedOrderLine struct {
	Name     string
	Quantity decimal.Decimal // siempre > 0
	Spec     string          // opcional
}

// ResolvedLine línea asociada a un producto del catálogo.
type ResolvedLine struct {
	Product   Product
	Quantity  decimal.Decimal
	Spec      string
	LineTotal decimal.Decimal // Product.Price * Quantity
}

// ResolvedOrder pedido resuelto contra el catálogo.
// Solo Total se propaga al perfil; las líneas son informativas.
type ResolvedOrder struct {
	Lines []ResolvedLine
	Total decimal.Decimal
}

// Trend dirección de la desviación respecto a la base.
type Trend string

const (
	TrendIncrease  Trend = "increase"
	TrendDecrease  Trend = "decrease"
	TrendUnchanged Trend = "unchanged"
)

// AnomalyReport resultado de comparar un total con la base del perfil.
type AnomalyReport struct {
	Flagged  bool
	Total    decimal.Decimal
	Baseline decimal.Decimal
	Variance decimal.Decimal // |Total - Baseline| / Baseline; cero si Baseline es cero
	Percent  int64           // Variance * 100 redondeado al entero más cercano
	Trend    Trend
}

// ConfirmedOrder pedido confirmado que se envía al sistema de back-office.
type ConfirmedOrder struct {
	SessionID    string
	MessageID    string
	UID          string
	CustomerID   string
	CustomerName string
	Lines        []ResolvedLine
	Total        decimal.Decimal
	ConfirmedAt  time.Time
}
