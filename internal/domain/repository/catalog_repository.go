package repository

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// CatalogRepository fuente del catálogo. Se lee una sola vez al arrancar.
type CatalogRepository interface {
	// ListProducts devuelve el catálogo en orden estable (el orden define el desempate de coincidencias).
	ListProducts(ctx context.Context) ([]entity.Product, error)
}
