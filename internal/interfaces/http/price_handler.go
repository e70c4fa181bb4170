package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/internal/application/usecase"
)

// PriceHandler consulta de precios (solo ADMIN).
type PriceHandler struct {
	uc *usecase.PriceUseCase
}

// NewPriceHandler construye el handler.
func NewPriceHandler(uc *usecase.PriceUseCase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// Search godoc
// @Summary      Consultar precios
// @Description  Filtra el catálogo por nombre o categoría. Sin q lista todo. Solo administradores.
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "texto a buscar (ej. 海鮮)"
// @Success      200  {object}  dto.PriceListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/prices [get]
func (h *PriceHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), GetSessionID(c), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
