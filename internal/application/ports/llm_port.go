package ports

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// IntentInterpreter define el puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
type IntentInterpreter interface {
	// Interpret clasifica el mensaje libre del usuario y extrae las líneas de pedido.
	// Si el servicio no está configurado debe devolver entity.SystemNotice(...) y error nil,
	// nunca un error. El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Interpret(ctx context.Context, message string, role entity.Role) (*entity.Interpretation, error)
}
