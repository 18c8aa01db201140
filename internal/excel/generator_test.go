package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/curtsdirt/site/internal/estimate"
	"github.com/curtsdirt/site/internal/model"
)

func TestGenerateWorkbook(t *testing.T) {
	e := estimate.New(estimate.DefaultTonsPerYard)
	doc := model.EstimateDocument{
		Reference:  "EST-1A2B3C4D",
		CreatedAt:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Business:   model.Business{Name: "Curt's Dirt", PhoneDisplay: "(724) 856-2033"},
		Estimate:   e.EstimateFeet(20, 15, 4),
		DepthTable: e.DepthTable(20, 15, []float64{3, 4, 6}),
	}

	content, err := NewGenerator().Generate(doc)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{summarySheet, depthSheet}, file.GetSheetList())

	value, err := file.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "EST-1A2B3C4D", value)

	value, err = file.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", value)

	value, err = file.GetCellValue(summarySheet, "B10")
	require.NoError(t, err)
	assert.Equal(t, "3.7", value)

	value, err = file.GetCellValue(summarySheet, "B11")
	require.NoError(t, err)
	assert.Equal(t, "3.75", value)

	rows, err := file.GetRows(depthSheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Depth (inches)", "Cubic yards", "Rounded up (1/4 yard)", "Tons (est.)"}, rows[3])
	assert.Equal(t, "6", rows[6][0])
	assert.Equal(t, "5.56", rows[6][1])
	assert.Equal(t, "5.75", rows[6][2])
}

func TestGenerateWithoutDepthTable(t *testing.T) {
	content, err := NewGenerator().Generate(model.EstimateDocument{Reference: "EST-0"})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{summarySheet}, file.GetSheetList())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.7, round(100.0/27.0, 2))
	assert.Equal(t, 4.07, round(100.0/27.0*1.1, 2))
	assert.Zero(t, round(-1, 2))
}

func TestWriteDepthTableReportsSheetErrors(t *testing.T) {
	file := excelize.NewFile()
	defer file.Close()

	e := estimate.New(estimate.DefaultTonsPerYard)
	doc := model.EstimateDocument{
		Estimate:   e.EstimateFeet(20, 15, 4),
		DepthTable: e.DepthTable(20, 15, []float64{3}),
	}

	// The depth sheet was never created.
	err := NewGenerator().writeDepthTable(file, doc)
	assert.Error(t, err)
}
