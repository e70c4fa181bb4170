package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/domain"
)

// sessionChecker es el contrato mínimo que necesita el middleware para verificar sesiones.
// Lo implementa *usecase.SessionUseCase.
type sessionChecker interface {
	Exists(ctx context.Context, sessionID string) error
}

// RequireSession verifica que la sesión del token siga guardada (puede haber expirado en Redis
// o perderse al reiniciar con el almacén en memoria). Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 Unauthorized → sesión inexistente o expirada.
//   - 503 Service Unavailable → fallo del almacén de sesiones.
func RequireSession(checker sessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := GetSessionID(c)
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "session_id no encontrado en el token",
			})
		}

		if err := checker.Exists(c.Context(), sessionID); err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code:    "SESSION_EXPIRED",
					Message: "la sesión expiró; inicie una nueva",
				})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_CHECK_FAILED",
				Message: "no se pudo verificar la sesión, intente más tarde",
			})
		}

		return c.Next()
	}
}
