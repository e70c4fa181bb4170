package ports

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// OrderSlipGenerator genera el comprobante PDF de un pedido confirmado.
type OrderSlipGenerator interface {
	GenerateOrderSlip(ctx context.Context, profile entity.UserProfile, message entity.ChatMessage) ([]byte, error)
}
