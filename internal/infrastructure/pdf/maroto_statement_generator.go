// Package pdf genera el estado de cuenta del cliente en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + nombre del cliente │ Fecha de emisión     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Cédula / Email / Tel                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Vence | Descripción | Estado | Monto                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total vencido + QR PromptPay                        │
//	└─────────────────────────────────────────────────────────────┘
//
// Helvetica (fuente base de maroto) solo cubre Windows-1252. Para textos en tailandés hay que
// configurar una TTF con glifos tailandeses (PDF_FONT_REGULAR / PDF_FONT_BOLD); sin ella el
// estado de cuenta sale en inglés, con montos "THB 1,800.00" y los textos libres no codificables
// reemplazados por su referencia (ID del cliente, "-").
package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

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
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	appportal "github.com/jhoicas/perfume-portal/internal/application/portal"
	domain "github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 64, Blue: 128}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appportal.StatementGenerator = (*MarotoStatementGenerator)(nil)

// FontConfig TTF con glifos tailandeses. Regular vacío = solo Helvetica.
type FontConfig struct {
	Family  string // nombre con el que se registra, por defecto "thai"
	Regular string // ruta al .ttf
	Bold    string // ruta al .ttf en negrita; si falta se usa Regular
}

// MarotoStatementGenerator implementa portal.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	appName string
	now     func() time.Time
	family  string
	fonts   []*entity.CustomFont
}

// NewMarotoStatementGenerator construye el generador. Si font.Regular está definido carga la
// fuente (error si el archivo no existe o no es una TTF válida).
func NewMarotoStatementGenerator(appName string, font FontConfig) (*MarotoStatementGenerator, error) {
	g := &MarotoStatementGenerator{appName: appName, now: time.Now, family: "helvetica"}
	if font.Regular == "" {
		return g, nil
	}
	family := nonEmpty(font.Family, "thai")
	fonts, err := repository.New().
		AddUTF8Font(family, fontstyle.Normal, font.Regular).
		AddUTF8Font(family, fontstyle.Bold, nonEmpty(font.Bold, font.Regular)).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuente %s: %w", font.Regular, err)
	}
	g.family = family
	g.fonts = fonts
	return g, nil
}

// UnicodeFont indica si hay una fuente cargada capaz de dibujar tailandés.
func (g *MarotoStatementGenerator) UnicodeFont() bool { return len(g.fonts) > 0 }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, data appportal.StatementData) ([]byte, error) {
	data.Lang = g.labelLang(data.Lang)
	title := i18n.T(data.Lang, i18n.KeyStatement)
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: g.family, Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.appName, true)
	if g.UnicodeFont() {
		b = b.WithCustomFonts(g.fonts)
	}

	m := maroto.New(b.Build())

	m.AddRows(g.headerRow(data, title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.contactRow(data.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(data.Lang))
	m.AddRows(g.tableRows(data.Lang, data.Payments)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Texto según la fuente disponible ──────────────────────────────────────────

// labelLang sin fuente tailandesa las etiquetas van en inglés.
func (g *MarotoStatementGenerator) labelLang(lang i18n.Lang) i18n.Lang {
	if g.UnicodeFont() {
		return lang
	}
	return i18n.EN
}

func (g *MarotoStatementGenerator) amount(lang i18n.Lang, v decimal.Decimal) string {
	if g.UnicodeFont() {
		return i18n.FormatAmount(lang, v)
	}
	return i18n.FormatAmountASCII(lang, v)
}

// freeText nombres y descripciones cargados por el usuario.
func (g *MarotoStatementGenerator) freeText(s, fallback string) string {
	if g.UnicodeFont() || encodable(s) {
		return s
	}
	return fallback
}

// encodable true si Helvetica puede dibujar todos los caracteres (Windows-1252).
func encodable(s string) bool {
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoStatementGenerator) headerRow(data appportal.StatementData, title string, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.freeText(data.Client.Name, data.Client.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 9,
			}),
		),
		col.New(4).Add(
			text.New(i18n.FormatDate(data.Lang, issued), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoStatementGenerator) contactRow(c domain.Client) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("ID: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(c.IDNumber, "-"),
				g.freeText(nonEmpty(c.Email, "-"), "-"),
				nonEmpty(c.Phone, "-"),
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}

func tableHeaderRow(lang i18n.Lang) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(i18n.T(lang, "dueDate"), 2, align.Left),
		h(i18n.T(lang, "description"), 5, align.Left),
		h(i18n.T(lang, "status"), 2, align.Center),
		h(i18n.T(lang, "amount"), 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por cobro; los vencidos en rojo.
func (g *MarotoStatementGenerator) tableRows(lang i18n.Lang, payments []domain.Payment) []core.Row {
	out := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		color := colorGray
		if p.Status == domain.PaymentOverdue {
			color = colorDanger
		}
		out = append(out, row.New(7).Add(
			col.New(2).Add(text.New(i18n.FormatDate(lang, p.DueDate), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(g.freeText(p.Description, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(i18n.StatusLabel(lang, string(p.Status)), props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: color,
			})),
			col.New(3).Add(text.New(g.amount(lang, p.Amount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return out
}

// footerRows: total vencido + QR PromptPay, o una línea de "al día".
func (g *MarotoStatementGenerator) footerRows(data appportal.StatementData) []core.Row {
	if data.OverdueQR == "" {
		return []core.Row{row.New(10).Add(col.New(12).Add(
			text.New(i18n.T(data.Lang, "noOverdue"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorPrimary, Top: 2,
			}),
		))}
	}
	return []core.Row{
		row.New(50).Add(
			col.New(4).Add(code.NewQr(data.OverdueQR, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New(i18n.T(data.Lang, i18n.KeyDueAmount), props.Text{
					Size: 9, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(g.amount(data.Lang, data.Overdue), props.Text{
					Style: fontstyle.Bold, Size: 14, Top: 12, Left: 3, Color: colorDanger,
				}),
				text.New(i18n.T(data.Lang, i18n.KeyPromptPay), props.Text{
					Size: 9, Top: 24, Left: 3, Color: colorPrimary,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
