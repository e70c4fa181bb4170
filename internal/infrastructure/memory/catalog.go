// Package memory implementa los repositorios en memoria usados sin base de datos y en tests.
package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// SeedProducts catálogo de demostración.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "P001", Name: "大西洋鮭魚", Price: decimal.NewFromInt(450), Specs: []string{"整尾", "切片", "清肉"}, Category: "海鮮"},
		{ID: "P002", Name: "波士頓龍蝦", Price: decimal.NewFromInt(1200), Specs: []string{"500g+", "800g+"}, Category: "海鮮"},
		{ID: "P003", Name: "高山高麗菜", Price: decimal.NewFromInt(45), Specs: []string{"箱", "公斤"}, Category: "蔬菜"},
		{ID: "P004", Name: "特級美生菜", Price: decimal.NewFromInt(60), Specs: []string{"箱", "公斤"}, Category: "蔬菜"},
		{ID: "P005", Name: "日本和牛 A5", Price: decimal.NewFromInt(2500), Specs: []string{"200g", "500g"}, Category: "肉類"},
	}
}

// CatalogRepo catálogo fijo.
type CatalogRepo struct {
	products []entity.Product
}

// NewCatalogRepository usa products o, si es nil, el catálogo de demostración.
func NewCatalogRepository(products []entity.Product) *CatalogRepo {
	if products == nil {
		products = SeedProducts()
	}
	return &CatalogRepo{products: products}
}

func (r *CatalogRepo) ListProducts(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
