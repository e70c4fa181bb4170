package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nongyiding-api/internal/application/analytics"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/memory"
)

func TestMonthly_CifrasDeDemostracion(t *testing.T) {
	uc := analytics.NewReportUseCase(memory.NewReportRepository())

	got, err := uc.Monthly(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Months, 4)
	assert.Equal(t, "10月", got.Months[0].Month)
	assert.True(t, got.Months[3].Amount.Equal(decimal.NewFromInt(61000)))
	require.Len(t, got.Categories, 3)
	assert.Equal(t, 45, got.Categories[0].Percent)
	// (61000 - 48000) / 48000 = 27.08 %
	assert.Equal(t, "27.1", got.MonthOverMonthPercent.String())
	assert.Contains(t, got.Suggestion, "大西洋鮭魚")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fake de ReportRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	months []entity.MonthlyAmount
	err    error
}

func (f fakeReportRepo) MonthlyAmounts(context.Context) ([]entity.MonthlyAmount, error) {
	return f.months, f.err
}
func (f fakeReportRepo) CategoryShares(context.Context) ([]entity.CategoryShare, error) {
	return nil, nil
}
func (f fakeReportRepo) Suggestion(context.Context) (string, error) { return "", nil }

func TestMonthly_UnSoloMes_SinVariacion(t *testing.T) {
	uc := analytics.NewReportUseCase(fakeReportRepo{
		months: []entity.MonthlyAmount{{Month: "1月", Amount: decimal.NewFromInt(100)}},
	})

	got, err := uc.Monthly(context.Background())

	require.NoError(t, err)
	assert.True(t, got.MonthOverMonthPercent.IsZero())
}

func TestMonthly_ErrorDelRepositorio(t *testing.T) {
	uc := analytics.NewReportUseCase(fakeReportRepo{err: errors.New("db caída")})

	_, err := uc.Monthly(context.Background())

	assert.Error(t, err)
}
