// Package pdf genera el reporte PDF de métricas de inventario por categoría.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app      │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Unidades | Valor en stock | Precio prom. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades / Valor / Precio promedio global          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.MetricsReportGenerator = (*MarotoMetricsReport)(nil)

// MarotoMetricsReport implementa usecase.MetricsReportGenerator usando Maroto v2.
type MarotoMetricsReport struct {
	appName string
}

// NewMarotoMetricsReport construye el generador. appName encabeza el documento.
func NewMarotoMetricsReport(appName string) *MarotoMetricsReport {
	return &MarotoMetricsReport{appName: appName}
}

// GenerateMetricsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoMetricsReport) GenerateMetricsPDF(
	ctx context.Context,
	summaries []entity.CategoryInventorySummary,
	generatedAt time.Time,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Métricas de inventario", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(summaries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No hay productos en el catálogo.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range tableDetailRows(summaries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summaries))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Métricas de inventario por categoría", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 5, align.Left),
		h("Unidades", 2, align.Right),
		h("Valor en stock", 3, align.Right),
		h("Precio prom.", 2, align.Right),
	)
}

func tableDetailRows(summaries []entity.CategoryInventorySummary) []core.Row {
	result := make([]core.Row, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				s.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(s.TotalUnitsInStock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(s.TotalStockValue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(s.AverageUnitPriceInStock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: totales globales; el promedio se pondera por unidades, igual que por categoría.
func totalsRow(summaries []entity.CategoryInventorySummary) core.Row {
	units, value := totals(summaries)
	avg := decimal.Zero
	if units > 0 {
		avg = value.Div(decimal.NewFromInt(int64(units))).Round(2)
	}

	bold := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		})
	}
	return row.New(8).Add(
		col.New(5).Add(bold("TOTAL", align.Left)),
		col.New(2).Add(bold(strconv.Itoa(units), align.Right)),
		col.New(3).Add(bold("$"+formatMoney(value), align.Right)),
		col.New(2).Add(bold("$"+formatMoney(avg), align.Right)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func totals(summaries []entity.CategoryInventorySummary) (int, decimal.Decimal) {
	units, value := 0, decimal.Zero
	for _, s := range summaries {
		units += s.TotalUnitsInStock
		value = value.Add(s.TotalStockValue)
	}
	return units, value
}

// formatMoney formatea con dos decimales, puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234567.891 → "1.234.567,89"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
