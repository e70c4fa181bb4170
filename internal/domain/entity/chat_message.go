package entity

import "time"

// Author autor de un mensaje del historial.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
	AuthorSystem    Author = "system"
)

// ChatMessage mensaje del historial de la conversación.
// El historial es de solo-agregar; lo único que cambia es Confirmed.
type ChatMessage struct {
	ID        string
	Author    Author
	Text      string
	Intent    Intent         // solo en respuestas del asistente
	Order     *ResolvedOrder // pedido confirmable adjunto, si lo hay
	Anomaly   *AnomalyReport
	Confirmed bool
	CreatedAt time.Time
}

// HasConfirmableOrder indica si el mensaje lleva un pedido con total positivo aún sin confirmar.
func (m ChatMessage) HasConfirmableOrder() bool {
	return m.Order != nil && m.Order.Total.IsPositive() && !m.Confirmed
}
