package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/curtsdirt/site/internal/estimate"
	"github.com/curtsdirt/site/internal/model"
)

const fontName = "Helvetica"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(doc model.EstimateDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetTitle(fmt.Sprintf("%s topsoil estimate %s", doc.Business.Name, doc.Reference), true)
	pdf.SetAuthor(doc.Business.Name, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontName, "B", 18)
	pdf.CellFormat(0, 10, tr(doc.Business.Name), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, tr(doc.Business.Tagline), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(contactLine(doc.Business)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 8, "Topsoil estimate", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Reference %s, prepared %s", doc.Reference, formatDate(doc.CreatedAt)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	est := doc.Estimate
	pdf.SetFillColor(245, 232, 200)
	widths := []float64{110, 60}

	drawTableRow(pdf, []string{"Area", ""}, widths, true)
	drawTableRow(pdf, []string{"Length (feet)", formatAmount(est.LengthFeet, 1)}, widths, false)
	drawTableRow(pdf, []string{"Width (feet)", formatAmount(est.WidthFeet, 1)}, widths, false)
	drawTableRow(pdf, []string{"Depth (inches)", formatAmount(est.DepthInches, 1)}, widths, false)
	pdf.Ln(4)

	drawTableRow(pdf, []string{"Material needed", ""}, widths, true)
	drawTableRow(pdf, []string{"Cubic feet", formatAmount(est.CubicFeet, 2)}, widths, false)
	drawTableRow(pdf, []string{"Cubic yards", estimate.FormatQuantity(est.CubicYards)}, widths, false)
	drawTableRow(pdf, []string{"Rounded up (1/4 yard)", estimate.FormatQuantity(est.RecommendedYards)}, widths, false)
	drawTableRow(pdf, []string{"Tons (est.)", estimate.FormatQuantity(est.Tons)}, widths, false)
	pdf.Ln(4)

	pdf.SetFont(fontName, "", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"Volume is length x width x depth. Depth is converted from inches to feet, the result is divided by 27 "+
			"for cubic yards and multiplied by %s to estimate tons. Actual weights vary with moisture and composition. "+
			"Always round up so you have a little extra for leveling.",
		estimate.FormatRate(est.TonsPerYard),
	), "", "L", false)

	if pdf.Err() {
		return nil, pdf.Error()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 11)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, header, 0, "")
	}
	pdf.Ln(-1)
}

func contactLine(b model.Business) string {
	parts := make([]string, 0, 3)
	for _, value := range []string{b.PhoneDisplay, b.PublicEmail, b.Location} {
		if strings.TrimSpace(value) != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, "  |  ")
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("January 2, 2006")
}
