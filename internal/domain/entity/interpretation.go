package entity

import "strings"

// Intent propósito clasificado de un mensaje del usuario.
type Intent string

const (
	IntentOrder        Intent = "order"
	IntentPriceInquiry Intent = "price inquiry"
	IntentReport       Intent = "report"
	IntentChitChat     Intent = "chit-chat"
	IntentComplaint    Intent = "complaint"
	IntentSystemNotice Intent = "system notice"
)

// intentLabels etiquetas que devuelve el modelo (en chino o en inglés).
var intentLabels = map[string]Intent{
	"叫貨":            IntentOrder,
	"order":         IntentOrder,
	"詢價":            IntentPriceInquiry,
	"price inquiry": IntentPriceInquiry,
	"報表":            IntentReport,
	"report":        IntentReport,
	"閒聊":            IntentChitChat,
	"chit-chat":     IntentChitChat,
	"客訴":            IntentComplaint,
	"complaint":     IntentComplaint,
	"系統提示":          IntentSystemNotice,
	"system notice": IntentSystemNotice,
}

// ParseIntent normaliza la etiqueta del modelo. Las desconocidas se tratan como charla.
func ParseIntent(label string) Intent {
	if in, ok := intentLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return in
	}
	return IntentChitChat
}

// Interpretation respuesta estructurada del intérprete de intenciones.
// ExtractedOrder solo viene con Intent == IntentOrder y al menos una línea reconocible.
type Interpretation struct {
	Intent         Intent
	Reply          string
	ExtractedOrder []ExtractedOrderLine
}

// SystemNotice construye la respuesta no excepcional para servicio no configurado o inaccesible.
func SystemNotice(reply string) Interpretation {
	return Interpretation{Intent: IntentSystemNotice, Reply: reply}
}
