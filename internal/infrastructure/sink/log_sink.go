// Package sink adaptadores del puerto OrderSink.
package sink

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/pkg/logger"
)

var _ ports.OrderSink = (*LogSink)(nil)

// LogSink solo registra el pedido confirmado. Se usa cuando no hay ERP configurado.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log.Component("order_sink")}
}

func (s *LogSink) Publish(_ context.Context, order entity.ConfirmedOrder) error {
	s.log.Info().
		Str("session_id", order.SessionID).
		Str("message_id", order.MessageID).
		Str("customer_id", order.CustomerID).
		Int("lines", len(order.Lines)).
		Str("total", order.Total.String()).
		Time("confirmed_at", order.ConfirmedAt).
		Msg("pedido confirmado")
	return nil
}
