package repository

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// ReportRepository consultas de lectura para el reporte mensual de compras.
type ReportRepository interface {
	// MonthlyAmounts montos de compra por mes, del más antiguo al más reciente.
	MonthlyAmounts(ctx context.Context) ([]entity.MonthlyAmount, error)
	// CategoryShares participación por categoría en porcentaje.
	CategoryShares(ctx context.Context) ([]entity.CategoryShare, error)
	// Suggestion sugerencia de compra del período.
	Suggestion(ctx context.Context) (string, error)
}
