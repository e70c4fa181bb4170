package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/pkg/jwt"
)

// LocalSessionID clave de c.Locals con el id de sesión del token.
const LocalSessionID = "session_id"

var (
	errMissingToken = errors.New("Authorization header requerido")
	errBadScheme    = errors.New("formato: Bearer <token>")
)

// AuthMiddleware valida el token de sesión y deja el id en c.Locals.
// El rol no viaja en el token: se lee del estado de la sesión en cada caso de uso.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		switch {
		case errors.Is(err, errMissingToken):
			return unauthorized(c, "MISSING_TOKEN", err.Error())
		case err != nil:
			return unauthorized(c, "INVALID_TOKEN", err.Error())
		}

		sessionID, _, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errBadScheme
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func unauthorized(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// GetSessionID id de sesión cargado por AuthMiddleware; vacío si no pasó por él.
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}
