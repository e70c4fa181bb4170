package entity

import "github.com/shopspring/decimal"

// Product representa un ítem del catálogo de productos frescos.
// Inmutable: se carga una sola vez al arrancar y nunca se modifica.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal // precio unitario, siempre > 0
	Specs    []string        // presentaciones disponibles, en orden (ej. "整尾", "切片")
	Category string
}
