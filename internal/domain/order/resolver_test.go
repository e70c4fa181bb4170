package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/order"
)

func seedCatalog() []entity.Product {
	return []entity.Product{
		{ID: "P001", Name: "大西洋鮭魚", Price: decimal.NewFromInt(450), Specs: []string{"整尾", "切片", "清肉"}, Category: "海鮮"},
		{ID: "P002", Name: "波士頓龍蝦", Price: decimal.NewFromInt(1200), Specs: []string{"500g+", "800g+"}, Category: "海鮮"},
		{ID: "P003", Name: "高山高麗菜", Price: decimal.NewFromInt(45), Specs: []string{"箱", "公斤"}, Category: "蔬菜"},
		{ID: "P004", Name: "特級美生菜", Price: decimal.NewFromInt(60), Specs: []string{"箱", "公斤"}, Category: "蔬菜"},
		{ID: "P005", Name: "日本和牛 A5", Price: decimal.NewFromInt(2500), Specs: []string{"200g", "500g"}, Category: "肉類"},
	}
}

func line(name string, qty int64) entity.ExtractedOrderLine {
	return entity.ExtractedOrderLine{Name: name, Quantity: decimal.NewFromInt(qty)}
}

// Escenario A: "鮭魚" x3 coincide con 大西洋鮭魚 (450) por contención → 1350.
func TestResolve_SalmonPorContencion(t *testing.T) {
	got := order.Resolve([]entity.ExtractedOrderLine{line("鮭魚", 3)}, seedCatalog())

	require.Len(t, got.Lines, 1)
	assert.Equal(t, "P001", got.Lines[0].Product.ID)
	assert.True(t, got.Lines[0].LineTotal.Equal(decimal.NewFromInt(1350)))
	assert.True(t, got.Total.Equal(decimal.NewFromInt(1350)), "total esperado 1350, obtenido %s", got.Total)
}

func TestResolve_LineasSinCoincidenciaSeDescartan(t *testing.T) {
	got := order.Resolve([]entity.ExtractedOrderLine{
		line("鮭魚", 2),
		line("榴槤", 10),
		line("美生菜", 4),
	}, seedCatalog())

	require.Len(t, got.Lines, 2)
	assert.Equal(t, "P001", got.Lines[0].Product.ID)
	assert.Equal(t, "P004", got.Lines[1].Product.ID)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(900+240)))
}

func TestResolve_CantidadFraccionariaYSpec(t *testing.T) {
	got := order.Resolve([]entity.ExtractedOrderLine{
		{Name: "高麗菜", Quantity: decimal.RequireFromString("2.5"), Spec: "公斤"},
	}, seedCatalog())

	require.Len(t, got.Lines, 1)
	assert.Equal(t, "公斤", got.Lines[0].Spec)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("112.5")))
}

func TestResolve_SinLineas(t *testing.T) {
	got := order.Resolve(nil, seedCatalog())
	assert.Empty(t, got.Lines)
	assert.True(t, got.Total.IsZero())
}

func TestResolve_Determinista(t *testing.T) {
	lines := []entity.ExtractedOrderLine{line("龍蝦", 1), line("和牛", 2)}
	a := order.Resolve(lines, seedCatalog())
	b := order.Resolve(lines, seedCatalog())
	assert.Equal(t, a, b)
}
