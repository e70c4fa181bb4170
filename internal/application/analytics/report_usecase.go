// Package analytics contiene los casos de uso de reportes de compras.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
)

// ReportUseCase genera el reporte mensual de compras.
//
// Fuente de datos: ReportRepository (consultas read-only).
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// Monthly arma el reporte: montos por mes, participación por categoría,
// variación del último mes frente al anterior y la sugerencia de compra.
func (uc *ReportUseCase) Monthly(ctx context.Context) (*dto.MonthlyReportResponse, error) {
	months, err := uc.reportRepo.MonthlyAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("montos mensuales: %w", err)
	}
	shares, err := uc.reportRepo.CategoryShares(ctx)
	if err != nil {
		return nil, fmt.Errorf("participación por categoría: %w", err)
	}
	suggestion, err := uc.reportRepo.Suggestion(ctx)
	if err != nil {
		return nil, fmt.Errorf("sugerencia: %w", err)
	}

	out := &dto.MonthlyReportResponse{
		Months:     make([]dto.MonthlyAmountDTO, 0, len(months)),
		Categories: make([]dto.CategoryShareDTO, 0, len(shares)),
		Suggestion: suggestion,
	}
	for _, m := range months {
		out.Months = append(out.Months, dto.MonthlyAmountDTO{Month: m.Month, Amount: m.Amount})
	}
	for _, s := range shares {
		out.Categories = append(out.Categories, dto.CategoryShareDTO{Category: s.Category, Percent: s.Percent})
	}

	// ── Variación mes a mes ───────────────────────────────────────────────────
	out.MonthOverMonthPercent = decimal.Zero
	if n := len(months); n >= 2 && months[n-2].Amount.IsPositive() {
		prev, last := months[n-2].Amount, months[n-1].Amount
		out.MonthOverMonthPercent = last.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return out, nil
}
