package reporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
)

// PDFExporter renders the recent lookup history as a PDF report.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter instance.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ExportHistory generates a report from the given records (newest first).
func (e *PDFExporter) ExportHistory(records []domain.LocationInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	e.addHeader(pdf, len(records))
	e.addTable(pdf, records)
	e.addFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// addHeader adds the report title and generation timestamp.
func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, count int) {
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 12, "Location Lookup History", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Records: %d", count), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

// addTable renders one row per lookup.
func (e *PDFExporter) addTable(pdf *gofpdf.Fpdf, records []domain.LocationInfo) {
	// Header row
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(36, 8, "Coordinates", "1", 0, "L", true, 0, "")
	pdf.CellFormat(22, 8, "Local Time", "1", 0, "L", true, 0, "")
	pdf.CellFormat(62, 8, "Country", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Population", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Resolved At", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, rec := range records {
		country := ""
		if rec.Error != nil {
			country = *rec.Error
			pdf.SetTextColor(180, 40, 40)
		} else if rec.Country != nil {
			// The core Arial font cannot render flag emoji; strip to the name.
			country = stripNonLatin(*rec.Country)
		}

		population := ""
		if rec.Population != nil {
			population = rec.PopulationDisplay
		}

		pdf.CellFormat(36, 7, rec.Coordinates, "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 7, rec.Time, "1", 0, "L", false, 0, "")
		pdf.CellFormat(62, 7, country, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, population, "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, rec.ResolvedAt.Format("2006-01-02 15:04:05"), "1", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

// addFooter adds the page footer.
func (e *PDFExporter) addFooter(pdf *gofpdf.Fpdf) {
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 5, "timemap - interactive world time map", "", 1, "C", false, 0, "")
}

// stripNonLatin drops runes the built-in PDF fonts cannot encode (flag emoji)
// and trims the leftover whitespace.
func stripNonLatin(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r < 0x2500 {
			out = append(out, r)
		}
	}
	// Leading space remains where the emoji was.
	for len(out) > 0 && out[0] == ' ' {
		out = out[1:]
	}
	return string(out)
}
