// Package pdf genera el comprobante de pedido confirmado.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: 農易訂 + N° pedido + fecha        │
//	│  CLIENTE: nombre + código                  │
//	│  ───────────────────────────────────────── │
//	│  TABLA: 品項 | 規格 | 數量 | 單價 | 小計    │
//	│  ───────────────────────────────────────── │
//	│  TOTAL + QR con la referencia del pedido   │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	mentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/order"
)

var _ ports.OrderSlipGenerator = (*MarotoSlipGenerator)(nil)

// fontFamily nombre con el que se registra la fuente CJK.
const fontFamily = "cjk"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 120, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSlipGenerator implementa ports.OrderSlipGenerator usando Maroto v2.
type MarotoSlipGenerator struct {
	fonts  []*mentity.CustomFont
	format *order.Formatter
}

// NewMarotoSlipGenerator carga la fuente TTF una sola vez. Sin ruta devuelve domain.ErrSlipUnavailable.
func NewMarotoSlipGenerator(fontPath string, format *order.Formatter) (*MarotoSlipGenerator, error) {
	if fontPath == "" {
		return nil, domain.ErrSlipUnavailable
	}
	fonts, err := repository.New().
		AddUTF8Font(fontFamily, fontstyle.Normal, fontPath).
		AddUTF8Font(fontFamily, fontstyle.Bold, fontPath).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuente %s: %w", fontPath, err)
	}
	return &MarotoSlipGenerator{fonts: fonts, format: format}, nil
}

// GenerateOrderSlip genera el PDF de un mensaje con pedido confirmado y devuelve sus bytes.
func (g *MarotoSlipGenerator) GenerateOrderSlip(
	_ context.Context,
	profile entity.UserProfile,
	msg entity.ChatMessage,
) ([]byte, error) {
	if msg.Order == nil || !msg.Confirmed {
		return nil, domain.ErrOrderNotConfirmed
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithCustomFonts(g.fonts).
		WithDefaultFont(&props.Font{Family: fontFamily, Size: 9}).
		WithTitle("農易訂 訂貨單 "+msg.ID, true).
		WithAuthor("農易訂", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(msg))
	m.AddRows(customerRow(profile))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableDetailRows(msg.Order.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(msg))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(msg entity.ChatMessage) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("農易訂", props.Text{
				Family: fontFamily, Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("智慧叫貨訂貨單", props.Text{Family: fontFamily, Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("單號 "+shortID(msg.ID), props.Text{
				Family: fontFamily, Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New(msg.CreatedAt.Format("2006/01/02 15:04"), props.Text{
				Family: fontFamily, Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func customerRow(profile entity.UserProfile) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("客戶：%s（%s）", nonEmpty(profile.Name, "—"), nonEmpty(profile.CustomerID, "—")),
				props.Text{Family: fontFamily, Size: 9, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Family: fontFamily, Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("品項", 4, align.Left),
		h("規格", 2, align.Center),
		h("數量", 2, align.Right),
		h("單價", 2, align.Right),
		h("小計", 2, align.Right),
	)
}

func (g *MarotoSlipGenerator) tableDetailRows(lines []entity.ResolvedLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Family: fontFamily, Size: 8, Align: a, Top: 1}))
	}
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			cell(l.Product.Name, 4, align.Left),
			cell(nonEmpty(l.Spec, "—"), 2, align.Center),
			cell(l.Quantity.String(), 2, align.Right),
			cell(g.format.Amount(l.Product.Price), 2, align.Right),
			cell(g.format.Amount(l.LineTotal), 2, align.Right),
		))
	}
	return result
}

// totalRow: QR con la referencia del pedido (izq) y el total (der).
func (g *MarotoSlipGenerator) totalRow(msg entity.ChatMessage) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr("nongyiding:order:"+msg.ID, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("總金額", props.Text{
				Family: fontFamily, Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 4,
			}),
			text.New("$"+g.format.Amount(msg.Order.Total), props.Text{
				Family: fontFamily, Style: fontstyle.Bold, Size: 14, Align: align.Right,
				Color: colorPrimary, Top: 11,
			}),
			text.New("預計配送：明日上午", props.Text{
				Family: fontFamily, Size: 8, Align: align.Right, Top: 21, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
