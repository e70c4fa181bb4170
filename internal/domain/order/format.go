package order

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// Formatter arma los textos visibles que dependen de montos (separador de miles según idioma).
type Formatter struct {
	printer *message.Printer
}

// NewFormatter construye el formateador para el idioma indicado (por defecto zh-Hant).
func NewFormatter(tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = language.TraditionalChinese
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Amount formatea un monto con agrupación de miles y hasta dos decimales.
func (f *Formatter) Amount(d decimal.Decimal) string {
	return f.printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// TrendLabel palabra de tendencia para el aviso.
func TrendLabel(t entity.Trend) string {
	switch t {
	case entity.TrendIncrease:
		return "多了"
	case entity.TrendDecrease:
		return "少了"
	default:
		return "持平"
	}
}

// AnomalyWarning antepone el aviso de desviación a la respuesta original, que se conserva.
func (f *Formatter) AnomalyWarning(r entity.AnomalyReport, reply string) string {
	return fmt.Sprintf("🚨 異常偵測提醒：\n老闆，這次叫貨金額 (%s 元) 跟上次 (%s 元) 差蠻多的喔 (%s %d%%)，確定沒按錯嗎？\n\n%s",
		f.Amount(r.Total), f.Amount(r.Baseline), TrendLabel(r.Trend), r.Percent, reply)
}

// ConfirmationNotice texto del aviso de sistema al confirmar un pedido.
func (f *Formatter) ConfirmationNotice(total decimal.Decimal) string {
	return fmt.Sprintf("✅ 訂單已成功推播至 ERP 系統！\n總金額：$%s\n預計配送：明日上午", f.Amount(total))
}
