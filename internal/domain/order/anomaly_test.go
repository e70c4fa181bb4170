package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/order"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Escenario B: base 5000, nuevo total 1350 → 73 % a la baja, marcado.
func TestEvaluate_DesviacionALaBaja(t *testing.T) {
	d := order.NewDetector(decimal.Zero)
	r := d.Evaluate(dec(1350), dec(5000))

	assert.True(t, r.Flagged)
	assert.Equal(t, entity.TrendDecrease, r.Trend)
	assert.Equal(t, int64(73), r.Percent)
	assert.True(t, r.Variance.Equal(decimal.RequireFromString("0.73")), "variance = %s", r.Variance)
}

// Escenario C: base cero nunca se marca (división no definida).
func TestEvaluate_BaseCeroNoMarca(t *testing.T) {
	d := order.NewDetector(decimal.Zero)
	r := d.Evaluate(dec(1000), decimal.Zero)

	assert.False(t, r.Flagged)
	assert.True(t, r.Variance.IsZero())
	assert.Equal(t, entity.TrendIncrease, r.Trend)
}

func TestEvaluate_UmbralEstricto(t *testing.T) {
	d := order.NewDetector(decimal.Zero)

	assert.False(t, d.Evaluate(dec(1300), dec(1000)).Flagged, "30 % exacto no supera el umbral")
	assert.False(t, d.Evaluate(dec(700), dec(1000)).Flagged)
	assert.True(t, d.Evaluate(dec(1301), dec(1000)).Flagged)
	assert.True(t, d.Evaluate(dec(699), dec(1000)).Flagged)
}

func TestEvaluate_AlAlzaYUmbralConfigurado(t *testing.T) {
	d := order.NewDetector(decimal.RequireFromString("0.5"))
	assert.True(t, d.Threshold().Equal(decimal.RequireFromString("0.5")))

	r := d.Evaluate(dec(1400), dec(1000))
	assert.False(t, r.Flagged, "40 % no supera un umbral de 50 %")
	assert.Equal(t, entity.TrendIncrease, r.Trend)
	assert.Equal(t, int64(40), r.Percent)

	r = d.Evaluate(dec(2000), dec(1000))
	assert.True(t, r.Flagged)
	assert.Equal(t, int64(100), r.Percent)
}

func TestEvaluate_IgualALaBase(t *testing.T) {
	r := order.NewDetector(decimal.Zero).Evaluate(dec(5000), dec(5000))
	assert.False(t, r.Flagged)
	assert.Equal(t, entity.TrendUnchanged, r.Trend)
}

func TestAnomalyWarning_ConservaRespuesta(t *testing.T) {
	f := order.NewFormatter(language.TraditionalChinese)
	r := order.NewDetector(decimal.Zero).Evaluate(dec(1350), dec(5000))

	msg := f.AnomalyWarning(r, "好的老闆，鮭魚 3 公斤幫您記下了！")

	assert.Contains(t, msg, "🚨 異常偵測提醒")
	assert.Contains(t, msg, "1,350")
	assert.Contains(t, msg, "5,000")
	assert.Contains(t, msg, "少了 73%")
	assert.Contains(t, msg, "\n\n好的老闆，鮭魚 3 公斤幫您記下了！", "la respuesta del intérprete va al final")
}

func TestTrendLabel(t *testing.T) {
	assert.Equal(t, "多了", order.TrendLabel(entity.TrendIncrease))
	assert.Equal(t, "少了", order.TrendLabel(entity.TrendDecrease))
}

func TestConfirmationNotice(t *testing.T) {
	f := order.NewFormatter(language.Und)
	assert.Contains(t, f.ConfirmationNotice(dec(2000)), "總金額：$2,000")
}
