package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/internal/application/analytics"
)

// ReportHandler reporte mensual de compras.
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Reporte mensual de compras
// @Description  Montos por mes, participación por categoría, variación mes a mes y sugerencia de compra.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.uc.Monthly(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
