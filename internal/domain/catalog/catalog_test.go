package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nongyiding-api/internal/domain/catalog"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "P001", Name: "大西洋鮭魚", Price: decimal.NewFromInt(450), Category: "海鮮"},
		{ID: "P002", Name: "波士頓龍蝦", Price: decimal.NewFromInt(1200), Category: "海鮮"},
		{ID: "P003", Name: "高山高麗菜", Price: decimal.NewFromInt(45), Category: "蔬菜"},
	}
}

func TestMatch_NombreDelCatalogoContieneLinea(t *testing.T) {
	p, ok := catalog.Match(testProducts(), "鮭魚")
	require.True(t, ok)
	assert.Equal(t, "P001", p.ID)
}

func TestMatch_LineaContieneNombreDelCatalogo(t *testing.T) {
	p, ok := catalog.Match(testProducts(), "我要波士頓龍蝦兩隻")
	require.True(t, ok)
	assert.Equal(t, "P002", p.ID)
}

func TestMatch_PrimeraCoincidenciaGana(t *testing.T) {
	products := []entity.Product{
		{ID: "A", Name: "鮭魚排"},
		{ID: "B", Name: "鮭魚頭"},
	}
	p, ok := catalog.Match(products, "鮭魚")
	require.True(t, ok)
	assert.Equal(t, "A", p.ID, "el orden del catálogo define el desempate")
}

func TestMatch_SinCoincidenciaNiNombreVacio(t *testing.T) {
	_, ok := catalog.Match(testProducts(), "牛肉")
	assert.False(t, ok)

	_, ok = catalog.Match(testProducts(), "")
	assert.False(t, ok, "un nombre vacío no debe coincidir con todo el catálogo")
}

func TestSearch_PorNombreOCategoria(t *testing.T) {
	byCategory := catalog.Search(testProducts(), "海鮮")
	require.Len(t, byCategory, 2)
	assert.Equal(t, "P001", byCategory[0].ID)
	assert.Equal(t, "P002", byCategory[1].ID)

	byName := catalog.Search(testProducts(), "高麗")
	require.Len(t, byName, 1)
	assert.Equal(t, "P003", byName[0].ID)

	assert.Len(t, catalog.Search(testProducts(), ""), 3, "query vacío lista todo")
	assert.Empty(t, catalog.Search(testProducts(), "水果"))
}
