package pdf_test

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/order"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/pdf"
)

func TestNewMarotoSlipGenerator_SinFuente_NoDisponible(t *testing.T) {
	_, err := pdf.NewMarotoSlipGenerator("", order.NewFormatter(language.TraditionalChinese))
	assert.ErrorIs(t, err, domain.ErrSlipUnavailable)
}

func TestNewMarotoSlipGenerator_FuenteInexistente_RetornaError(t *testing.T) {
	_, err := pdf.NewMarotoSlipGenerator("/no/existe.ttf", order.NewFormatter(language.TraditionalChinese))
	assert.Error(t, err)
}

// Requiere SLIP_TEST_FONT apuntando a una TTF con glifos CJK (ej. NotoSansTC-Regular.ttf).
func TestGenerateOrderSlip_GeneraPDF(t *testing.T) {
	font := os.Getenv("SLIP_TEST_FONT")
	if font == "" {
		t.Skip("SLIP_TEST_FONT no definido")
	}
	g, err := pdf.NewMarotoSlipGenerator(font, order.NewFormatter(language.TraditionalChinese))
	require.NoError(t, err)

	salmon := entity.Product{ID: "P001", Name: "大西洋鮭魚", Price: decimal.NewFromInt(450)}
	msg := entity.ChatMessage{
		ID:     "a-1",
		Author: entity.AuthorAssistant,
		Order: &entity.ResolvedOrder{
			Lines: []entity.ResolvedLine{{Product: salmon, Quantity: decimal.NewFromInt(3), Spec: "切片", LineTotal: decimal.NewFromInt(1350)}},
			Total: decimal.NewFromInt(1350),
		},
		Confirmed: true,
		CreatedAt: time.Now(),
	}
	profile := entity.UserProfile{CustomerID: "CUST001", Name: "王小明老闆", Role: entity.RoleCustomer}

	out, err := g.GenerateOrderSlip(context.Background(), profile, msg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	msg.Confirmed = false
	_, err = g.GenerateOrderSlip(context.Background(), profile, msg)
	assert.ErrorIs(t, err, domain.ErrOrderNotConfirmed)
}
