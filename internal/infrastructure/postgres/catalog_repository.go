package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo catálogo de productos sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListProducts devuelve el catálogo ordenado por position e id.
func (r *CatalogRepo) ListProducts(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT id, name, price, specs, category
		FROM products
		ORDER BY position, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Specs, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Upsert inserta o actualiza un producto. position fija el orden del catálogo.
func (r *CatalogRepo) Upsert(ctx context.Context, p entity.Product, position int) error {
	query := `
		INSERT INTO products (id, name, price, specs, category, position, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			specs = EXCLUDED.specs,
			category = EXCLUDED.category,
			position = EXCLUDED.position,
			updated_at = now()`
	specs := p.Specs
	if specs == nil {
		specs = []string{}
	}
	if _, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Price, specs, p.Category, position); err != nil {
		return fmt.Errorf("upsert product %s: %w", p.ID, err)
	}
	return nil
}
