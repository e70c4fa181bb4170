package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/application/usecase"
)

// BindingHandler maneja la vinculación de identidad.
type BindingHandler struct {
	uc *usecase.BindingUseCase
}

// NewBindingHandler construye el handler.
func NewBindingHandler(uc *usecase.BindingUseCase) *BindingHandler {
	return &BindingHandler{uc: uc}
}

// Bind godoc
// @Summary      Vincular identidad de cliente
// @Description  Verifica el código de cliente ERP y el teléfono. El rol (CUSTOMER o ADMIN) lo decide el verificador.
// @Tags         binding
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BindRequest  true  "customer_id y phone"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/binding [post]
func (h *BindingHandler) Bind(c *fiber.Ctx) error {
	var req dto.BindRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Bind(c.Context(), GetSessionID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Unbind godoc
// @Summary      Desvincular identidad
// @Description  Vuelve a invitado. La base de pedidos se conserva.
// @Tags         binding
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/binding [delete]
func (h *BindingHandler) Unbind(c *fiber.Ctx) error {
	out, err := h.uc.Unbind(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
