// Package console implementa el colaborador de presentación en texto plano.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
)

// ExpiredMark sufijo que Render agrega a los perecederos vencidos.
const ExpiredMark = " (vencido)"

// Renderer escribe una línea por ítem y encabezados de sección.
// Los números de resúmenes se formatean según el locale configurado.
type Renderer struct {
	w          io.Writer
	p          *message.Printer
	decimalSep string
	now        func() time.Time
}

// NewRenderer construye el renderer; un locale inválido cae en español.
func NewRenderer(w io.Writer, locale string) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	p := message.NewPrinter(tag)
	sep := strings.Trim(p.Sprint(number.Decimal(0.5, number.Scale(1))), "05")
	if sep == "" {
		sep = "."
	}
	return &Renderer{w: w, p: p, decimalSep: sep, now: time.Now}
}

// WithClock fija el reloj usado para marcar vencidos (tests, reportes históricos).
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// Section imprime "--- título ---" precedido de una línea en blanco.
func (r *Renderer) Section(title string) error {
	_, err := fmt.Fprintf(r.w, "\n--- %s ---\n", title)
	return err
}

// Render imprime la representación completa del ítem; los perecederos vencidos
// llevan ExpiredMark.
func (r *Renderer) Render(item entity.View) error {
	line := item.String()
	if g, ok := item.(entity.GroceryItem); ok && g.ExpiredAt(r.now()) {
		line += ExpiredMark
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

// Summary imprime una línea de totales: cantidad de ítems y valorización.
func (r *Renderer) Summary(label string, items int, valuation decimal.Decimal) error {
	_, err := r.p.Fprintf(r.w, "%s: %d ítems, valor %s\n", label, items, r.amount(valuation))
	return err
}

// amount formatea con dos decimales a partir del decimal, sin pasar por float64.
// La parte entera se agrupa según el locale.
func (r *Renderer) amount(v decimal.Decimal) string {
	fixed := v.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return v.StringFixed(2)
	}
	s := r.p.Sprint(number.Decimal(n)) + r.decimalSep + frac
	if v.IsNegative() && fixed != "0.00" {
		s = "-" + s
	}
	return s
}

// Message imprime una línea libre (errores reportados, confirmaciones).
func (r *Renderer) Message(format string, args ...any) error {
	_, err := fmt.Fprintf(r.w, format+"\n", args...)
	return err
}
