package order

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// DefaultVarianceThreshold desviación relativa a partir de la cual se alerta (30 %).
var DefaultVarianceThreshold = decimal.NewFromFloat(0.30)

var hundred = decimal.NewFromInt(100)

// Detector compara el total de un pedido contra el último total confirmado.
type Detector struct {
	threshold decimal.Decimal
}

// NewDetector construye el detector. Un umbral no positivo usa DefaultVarianceThreshold.
func NewDetector(threshold decimal.Decimal) *Detector {
	if !threshold.IsPositive() {
		threshold = DefaultVarianceThreshold
	}
	return &Detector{threshold: threshold}
}

// Threshold umbral configurado.
func (d *Detector) Threshold() decimal.Decimal { return d.threshold }

// Evaluate calcula variance = |total - baseline| / baseline y marca si supera el umbral.
// Con baseline cero (o negativo) la desviación relativa no está definida: nunca se marca.
func (d *Detector) Evaluate(total, baseline decimal.Decimal) entity.AnomalyReport {
	report := entity.AnomalyReport{
		Total:    total,
		Baseline: baseline,
		Variance: decimal.Zero,
		Trend:    trendOf(total, baseline),
	}
	if !baseline.IsPositive() {
		return report
	}
	report.Variance = total.Sub(baseline).Abs().Div(baseline)
	report.Percent = report.Variance.Mul(hundred).Round(0).IntPart()
	report.Flagged = report.Variance.GreaterThan(d.threshold)
	return report
}

func trendOf(total, baseline decimal.Decimal) entity.Trend {
	switch total.Cmp(baseline) {
	case 1:
		return entity.TrendIncrease
	case -1:
		return entity.TrendDecrease
	default:
		return entity.TrendUnchanged
	}
}
