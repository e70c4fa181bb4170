package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo cifras fijas del reporte mensual de demostración.
type ReportRepo struct{}

func NewReportRepository() *ReportRepo { return &ReportRepo{} }

func (ReportRepo) MonthlyAmounts(_ context.Context) ([]entity.MonthlyAmount, error) {
	return []entity.MonthlyAmount{
		{Month: "10月", Amount: decimal.NewFromInt(45000)},
		{Month: "11月", Amount: decimal.NewFromInt(52000)},
		{Month: "12月", Amount: decimal.NewFromInt(48000)},
		{Month: "1月", Amount: decimal.NewFromInt(61000)},
	}, nil
}

func (ReportRepo) CategoryShares(_ context.Context) ([]entity.CategoryShare, error) {
	return []entity.CategoryShare{
		{Category: "海鮮", Percent: 45},
		{Category: "肉類", Percent: 30},
		{Category: "蔬菜", Percent: 25},
	}, nil
}

func (ReportRepo) Suggestion(_ context.Context) (string, error) {
	return "系統偵測到「大西洋鮭魚」目前處於產季高峰，市場報價較上月下降 12%，建議可以適度增加進貨量以利後續春節促銷。", nil
}
