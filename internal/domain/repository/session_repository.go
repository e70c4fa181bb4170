package repository

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/domain/session"
)

// SessionRepository define el puerto de persistencia para el estado de las sesiones (DIP).
// El estado se reemplaza entero; nunca se modifica por partes.
type SessionRepository interface {
	Create(ctx context.Context, state session.State) error
	// Get devuelve domain.ErrSessionNotFound si la sesión no existe.
	Get(ctx context.Context, id string) (*session.State, error)
	// Update aplica fn de forma atómica sobre el estado actual y guarda el resultado.
	// Si fn devuelve error no se guarda nada. fn puede ejecutarse más de una vez si hay conflictos.
	Update(ctx context.Context, id string, fn func(session.State) (session.State, error)) (*session.State, error)
}
