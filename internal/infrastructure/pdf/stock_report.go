// Package pdf genera el reporte de existencias en PDF (colaborador de presentación).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN (por shelf)                                          │
//	│  TABLA: ID | Nombre | Cant. | Tipo | P.Unit                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de ítems                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
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

	"github.com/jhoicas/inventario-core/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// StockReport acumula secciones e ítems y al final genera el documento.
// Implementa stock.Renderer; no es seguro para uso concurrente.
type StockReport struct {
	title string
	now   func() time.Time
	rows    []core.Row
	items   int
	expired int
}

// NewStockReport construye un reporte vacío.
func NewStockReport(title string) *StockReport {
	return &StockReport{title: title, now: time.Now}
}

// WithClock fija el reloj de la cabecera y de la marca de vencidos.
func (r *StockReport) WithClock(now func() time.Time) *StockReport {
	r.now = now
	return r
}

// Section agrega un subtítulo y la cabecera de tabla.
func (r *StockReport) Section(title string) error {
	r.rows = append(r.rows,
		row.New(10).Add(col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
		}))),
		tableHeaderRow(),
	)
	return nil
}

// Render agrega una fila por ítem. Los perecederos vencidos se marcan en el nombre.
func (r *StockReport) Render(item entity.View) error {
	name := item.ItemName()
	if g, ok := item.(entity.GroceryItem); ok && g.ExpiredAt(r.now()) {
		name += " (vencido)"
		r.expired++
	}
	price := "-"
	if p, ok := item.(entity.Priced); ok {
		price = p.ItemUnitPrice().StringFixed(2)
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	r.rows = append(r.rows, row.New(6).Add(
		cell(strconv.Itoa(item.ItemID()), 1, align.Center),
		cell(name, 5, align.Left),
		cell(strconv.Itoa(item.ItemQuantity()), 2, align.Right),
		cell(item.Kind(), 2, align.Center),
		cell(price, 2, align.Right),
	))
	r.items++
	return nil
}

// Items cantidad de ítems renderizados hasta ahora.
func (r *StockReport) Items() int { return r.items }

// Expired cantidad de perecederos vencidos entre los renderizados.
func (r *StockReport) Expired() int { return r.expired }

// Generate arma el documento y devuelve sus bytes.
func (r *StockReport) Generate() ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(r.title, r.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(r.rows...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(text.New(
		fmt.Sprintf("Total de ítems: %d (vencidos: %d)", r.items, r.expired),
		props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 2},
	))))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 3, Color: colorGray,
		})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("ID", 1, align.Center),
		h("Nombre", 5, align.Left),
		h("Cant.", 2, align.Right),
		h("Tipo", 2, align.Center),
		h("P.Unit", 2, align.Right),
	)
}
