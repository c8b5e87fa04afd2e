package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/infrastructure/pdf"
)

// Printable lo que necesita el reporte de cada shelf.
type Printable interface {
	Title() string
	PrintAll(r stock.Renderer) error
}

// ReportHandler genera el PDF de existencias de todos los shelves.
type ReportHandler struct {
	title   string
	shelves []Printable
}

// NewReportHandler construye el handler; el orden de shelves es el orden de secciones.
func NewReportHandler(title string, shelves ...Printable) *ReportHandler {
	return &ReportHandler{title: title, shelves: shelves}
}

// StockPDF godoc
// @Summary      Reporte de existencias en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	report := pdf.NewStockReport(h.title)
	for _, s := range h.shelves {
		if err := report.Section(s.Title()); err != nil {
			return writeError(c, err)
		}
		if err := s.PrintAll(report); err != nil {
			return writeError(c, err)
		}
	}
	doc, err := report.Generate()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="existencias.pdf"`)
	return c.Send(doc)
}
