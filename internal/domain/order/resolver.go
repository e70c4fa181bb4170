package order

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/domain/catalog"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// Resolve asocia cada línea extraída con el catálogo y suma los totales por línea.
// Las líneas sin coincidencia se descartan y aportan cero. No se valida stock.
func Resolve(lines []entity.ExtractedOrderLine, products []entity.Product) entity.ResolvedOrder {
	resolved := entity.ResolvedOrder{Total: decimal.Zero}
	for _, l := range lines {
		p, ok := catalog.Match(products, l.Name)
		if !ok {
			continue
		}
		lineTotal := p.Price.Mul(l.Quantity)
		resolved.Lines = append(resolved.Lines, entity.ResolvedLine{
			Product:   p,
			Quantity:  l.Quantity,
			Spec:      l.Spec,
			LineTotal: lineTotal,
		})
		resolved.Total = resolved.Total.Add(lineTotal)
	}
	return resolved
}
