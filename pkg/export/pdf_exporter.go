package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth   = 277.0 // A4 landscape minus 10mm margins
	lineHeight  = 5.0
	headerFont  = 9.0
	bodyFont    = 8.0
	footerSpace = 15.0
)

// PDFExporter renders datasets into a landscape tabular PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with an optional title. Long cells wrap and the
// header row is repeated on every page.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	if len(data.Widths) != 0 && len(data.Widths) != len(data.Headers) {
		return nil, fmt.Errorf("pdf widths: got %d, want %d", len(data.Widths), len(data.Headers))
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, footerSpace)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	widths := columnWidths(data)

	drawHeader := func() {
		pdf.SetFont("Arial", "B", headerFont)
		pdf.SetFillColor(230, 230, 230)
		for i, header := range data.Headers {
			pdf.CellFormat(widths[i], 7, tr(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", bodyFont)
	}

	pdf.AddPage()
	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}
	drawHeader()

	_, pageHeight := pdf.GetPageSize()
	for _, row := range data.Rows {
		lines := make([][]string, len(data.Headers))
		maxLines := 1
		for i, header := range data.Headers {
			lines[i] = pdf.SplitText(tr(row[header]), widths[i]-2)
			if len(lines[i]) > maxLines {
				maxLines = len(lines[i])
			}
		}
		rowHeight := float64(maxLines) * lineHeight
		if pdf.GetY()+rowHeight > pageHeight-footerSpace {
			pdf.AddPage()
			drawHeader()
		}

		x, y := pdf.GetXY()
		for i := range data.Headers {
			pdf.Rect(x, y, widths[i], rowHeight, "D")
			for n, line := range lines[i] {
				pdf.SetXY(x+1, y+float64(n)*lineHeight)
				pdf.CellFormat(widths[i]-2, lineHeight, line, "", 0, "L", false, 0, "")
			}
			x += widths[i]
		}
		pdf.SetXY(10, y+rowHeight)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(data Dataset) []float64 {
	widths := make([]float64, len(data.Headers))
	if len(data.Widths) == 0 {
		for i := range widths {
			widths[i] = pageWidth / float64(len(widths))
		}
		return widths
	}
	var total float64
	for _, w := range data.Widths {
		total += w
	}
	for i, w := range data.Widths {
		widths[i] = pageWidth * w / total
	}
	return widths
}
