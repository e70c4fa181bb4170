package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/application/usecase"
)

// SessionHandler maneja la creación y consulta de sesiones.
type SessionHandler struct {
	uc *usecase.SessionUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Start godoc
// @Summary      Iniciar sesión de invitado
// @Description  Crea una sesión con rol GUEST, la base de pedidos inicial y el saludo.
//               Devuelve el token Bearer que identifica la sesión.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartSessionRequest  false  "uid opcional (ej. ID de LINE)"
// @Success      201   {object}  dto.StartSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.Start(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me godoc
// @Summary      Estado de la sesión
// @Tags         sessions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sessions/me [get]
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
