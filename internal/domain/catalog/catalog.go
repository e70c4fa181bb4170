// Package catalog contiene las búsquedas sobre el catálogo de productos.
// El catálogo es un slice inmutable; el orden del slice define el desempate.
package catalog

import (
	"strings"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// Match busca el primer producto cuyo nombre contiene a name o está contenido en name.
// No hay puntuación difusa: gana el primero según el orden del catálogo.
func Match(products []entity.Product, name string) (entity.Product, bool) {
	if name == "" {
		return entity.Product{}, false
	}
	for _, p := range products {
		if strings.Contains(p.Name, name) || strings.Contains(name, p.Name) {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Search filtra por contención de query en el nombre o en la categoría.
// Query vacío devuelve el catálogo completo.
func Search(products []entity.Product, query string) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(p.Name, query) || strings.Contains(p.Category, query) {
			out = append(out, p)
		}
	}
	return out
}
