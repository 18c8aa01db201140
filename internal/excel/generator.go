package excel

import (
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/curtsdirt/site/internal/model"
)

const (
	summarySheet = "Estimate"
	depthSheet   = "Depth table"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(doc model.EstimateDocument) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, doc); err != nil {
		return nil, err
	}

	if len(doc.DepthTable) > 0 {
		if _, err := file.NewSheet(depthSheet); err != nil {
			return nil, err
		}
		if err := g.writeDepthTable(file, doc); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, doc model.EstimateDocument) error {
	est := doc.Estimate
	rows := [][]interface{}{
		{doc.Business.Name, doc.Business.PhoneDisplay},
		{"Reference", doc.Reference},
		{"Prepared", formatDate(doc.CreatedAt)},
		{},
		{"Length (feet)", round(est.LengthFeet, 2)},
		{"Width (feet)", round(est.WidthFeet, 2)},
		{"Depth (inches)", round(est.DepthInches, 2)},
		{},
		{"Cubic feet", round(est.CubicFeet, 2)},
		{"Cubic yards", round(est.CubicYards, 2)},
		{"Rounded up (1/4 yard)", round(est.RecommendedYards, 2)},
		{"Tons per yard", round(est.TonsPerYard, 2)},
		{"Tons (est.)", round(est.Tons, 2)},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	if err := file.SetColWidth(summarySheet, "A", "A", 28); err != nil {
		return err
	}
	return file.SetColWidth(summarySheet, "B", "B", 20)
}

func (g *Generator) writeDepthTable(file *excelize.File, doc model.EstimateDocument) error {
	var firstErr error
	set := func(cell string, value interface{}) {
		if firstErr != nil {
			return
		}
		firstErr = file.SetCellValue(depthSheet, cell, value)
	}

	set("A1", "Length (feet)")
	set("B1", round(doc.Estimate.LengthFeet, 2))
	set("A2", "Width (feet)")
	set("B2", round(doc.Estimate.WidthFeet, 2))

	tableRow := 4
	headers := []string{
		"Depth (inches)",
		"Cubic yards",
		"Rounded up (1/4 yard)",
		"Tons (est.)",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, tableRow)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, row := range doc.DepthTable {
		r := tableRow + 1 + i
		set(fmt.Sprintf("A%d", r), round(row.DepthInches, 2))
		set(fmt.Sprintf("B%d", r), round(row.CubicYards, 2))
		set(fmt.Sprintf("C%d", r), round(row.RecommendedYards, 2))
		set(fmt.Sprintf("D%d", r), round(row.Tons, 2))
	}
	if firstErr != nil {
		return firstErr
	}

	return file.SetColWidth(depthSheet, "A", "D", 22)
}

// round keeps spreadsheet cells aligned with the two decimal figures shown on
// the page.
func round(value float64, precision int) float64 {
	if !(value > 0) || math.IsInf(value, 0) {
		return 0
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(value*scale) / scale
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
