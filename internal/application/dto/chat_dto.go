package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SendMessageRequest body de POST /api/chat/messages.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessageResponse mensajes agregados por el envío (el del usuario y la respuesta).
type SendMessageResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// TranscriptResponse historial completo.
type TranscriptResponse struct {
	Messages []MessageResponse `json:"messages"`
	Pending  bool              `json:"pending"`
}

// ConfirmOrderResponse aviso de sistema y perfil con la base actualizada.
type ConfirmOrderResponse struct {
	Notice  MessageResponse `json:"notice"`
	Profile ProfileResponse `json:"profile"`
}

// MessageResponse mensaje del historial.
type MessageResponse struct {
	ID          string      `json:"id"`
	Author      string      `json:"author"`
	Text        string      `json:"text"`
	Intent      string      `json:"intent,omitempty"`
	Order       *OrderDTO   `json:"order,omitempty"`
	Anomaly     *AnomalyDTO `json:"anomaly,omitempty"`
	Confirmed   bool        `json:"confirmed"`
	Confirmable bool        `json:"confirmable"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderDTO pedido resuelto adjunto a una respuesta.
type OrderDTO struct {
	Lines []OrderLineDTO  `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// OrderLineDTO línea resuelta contra el catálogo.
type OrderLineDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Spec      string          `json:"spec,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// AnomalyDTO desviación detectada respecto al último pedido confirmado.
type AnomalyDTO struct {
	Total    decimal.Decimal `json:"total"`
	Baseline decimal.Decimal `json:"baseline"`
	Percent  int64           `json:"percent"`
	Trend    string          `json:"trend"`
}
