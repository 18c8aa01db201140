package estimate

import (
	"math"
	"strconv"
)

const zeroQuantity = "0.00"

// FormatQuantity renders a result for display. Zero, negative and NaN values
// all print as "0.00".
func FormatQuantity(value float64) string {
	if !(value > 0) || math.IsInf(value, 0) {
		return zeroQuantity
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// FormatRate renders the density factor with one decimal, e.g. "1.1".
func FormatRate(tonsPerYard float64) string {
	return strconv.FormatFloat(tonsPerYard, 'f', 1, 64)
}

// Display is the formatted form of an estimate as shown on the page.
type Display struct {
	CubicYards       string `json:"cubic_yards"`
	RecommendedYards string `json:"recommended_yards"`
	Tons             string `json:"tons"`
	TonsPerYard      string `json:"tons_per_yard"`
}

func NewDisplay(cubicYards, recommendedYards, tons, tonsPerYard float64) Display {
	return Display{
		CubicYards:       FormatQuantity(cubicYards),
		RecommendedYards: FormatQuantity(recommendedYards),
		Tons:             FormatQuantity(tons),
		TonsPerYard:      FormatRate(tonsPerYard),
	}
}
