package ports

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// OrderSink destino de los pedidos confirmados (ERP / back-office).
// El caso de uso lo invoca en segundo plano y no espera su resultado.
type OrderSink interface {
	Publish(ctx context.Context, order entity.ConfirmedOrder) error
}
