package order_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/order"
)

// TestResolveTotalProperty total = Σ precio × cantidad de las líneas resueltas.
func TestResolveTotalProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("el total es la suma exacta de las líneas", prop.ForAll(
		func(idx []int, qty []int64) bool {
			products := seedCatalog()
			var lines []entity.ExtractedOrderLine
			for i := 0; i < len(idx) && i < len(qty); i++ {
				lines = append(lines, entity.ExtractedOrderLine{
					Name:     products[idx[i]].Name,
					Quantity: decimal.NewFromInt(qty[i]),
				})
			}
			got := order.Resolve(lines, products)
			if len(got.Lines) != len(lines) {
				return false
			}
			want := decimal.Zero
			for _, l := range got.Lines {
				want = want.Add(l.Product.Price.Mul(l.Quantity))
			}
			return got.Total.Equal(want)
		},
		gen.SliceOf(gen.IntRange(0, 4)),
		gen.SliceOf(gen.Int64Range(1, 1000)),
	))

	properties.TestingRun(t)
}

// TestResolveMatchingProperty un nombre contenido en (o que contiene a) un producto resuelve a ese producto.
func TestResolveMatchingProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	products := []entity.Product{
		{ID: "X", Name: "xylophone", Price: decimal.NewFromInt(7)},
	}

	properties.Property("contención bidireccional", prop.ForAll(
		func(prefix, suffix string) bool {
			wrapped := prefix + "xylophone" + suffix
			got := order.Resolve([]entity.ExtractedOrderLine{{Name: wrapped, Quantity: decimal.NewFromInt(1)}}, products)
			return len(got.Lines) == 1 && got.Lines[0].Product.ID == "X"
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("sin coincidencia aporta cero", prop.ForAll(
		func(n int) bool {
			got := order.Resolve([]entity.ExtractedOrderLine{{Name: "123", Quantity: decimal.NewFromInt(int64(n))}}, products)
			return len(got.Lines) == 0 && got.Total.IsZero()
		},
		gen.IntRange(1, 100),
	))

	properties.TestingRun(t)
}

// TestDetectorThresholdProperty marcado ⇔ |T - B| / B > 0.30; base cero nunca marca.
func TestDetectorThresholdProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)
	d := order.NewDetector(decimal.Zero)
	threshold := decimal.RequireFromString("0.30")

	properties.Property("umbral de desviación", prop.ForAll(
		func(total, baseline int64) bool {
			T, B := decimal.NewFromInt(total), decimal.NewFromInt(baseline)
			want := T.Sub(B).Abs().Div(B).GreaterThan(threshold)
			r := d.Evaluate(T, B)
			trendOK := (total > baseline) == (r.Trend == entity.TrendIncrease) &&
				(total < baseline) == (r.Trend == entity.TrendDecrease)
			return r.Flagged == want && trendOK
		},
		gen.Int64Range(1, 100000),
		gen.Int64Range(1, 100000),
	))

	properties.Property("base cero nunca marca", prop.ForAll(
		func(total int64) bool {
			return !d.Evaluate(decimal.NewFromInt(total), decimal.Zero).Flagged
		},
		gen.Int64Range(1, 1000000),
	))

	properties.TestingRun(t)
}
