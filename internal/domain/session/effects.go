package session

import "github.com/jhoicas/nongyiding-api/internal/domain/entity"

// Effect llamada a un colaborador externo pedida por una transición.
type Effect interface{ isEffect() }

// InterpretMessage pedir la interpretación del texto con el rol actual.
type InterpretMessage struct {
	Text string
	Role entity.Role
}

// VerifyIdentity pedir la verificación de cliente y teléfono.
type VerifyIdentity struct {
	CustomerID string
	Phone      string
}

// PublishOrder enviar el pedido confirmado al back-office (sin esperar respuesta).
type PublishOrder struct {
	Order entity.ConfirmedOrder
}

func (InterpretMessage) isEffect() {}
func (VerifyIdentity) isEffect()   {}
func (PublishOrder) isEffect()     {}
