// Package estimate converts a coverage area and depth into the amount of
// screened topsoil to order.
//
// Length and width are measured in feet while depth is measured in inches,
// which is how customers describe beds and lawns. Depth is always divided by
// 12 before it is multiplied in.
package estimate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/curtsdirt/site/internal/model"
)

const (
	// DefaultTonsPerYard is the average weight of a cubic yard of screened topsoil.
	DefaultTonsPerYard = 1.1

	cubicFeetPerYard = 27.0
	inchesPerFoot    = 12.0
	quartersPerYard  = 4.0
)

// decimalPattern accepts plain decimal notation with an optional exponent.
// Go-only syntax such as hex floats and digit separators is rejected.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

type Estimator struct {
	tonsPerYard float64
}

// New returns an Estimator using the given density. Non-positive values fall
// back to DefaultTonsPerYard.
func New(tonsPerYard float64) *Estimator {
	if tonsPerYard <= 0 || math.IsNaN(tonsPerYard) || math.IsInf(tonsPerYard, 0) {
		tonsPerYard = DefaultTonsPerYard
	}
	return &Estimator{tonsPerYard: tonsPerYard}
}

func (e *Estimator) TonsPerYard() float64 {
	return e.tonsPerYard
}

// Estimate parses the three fields and computes the derived quantities.
// Unparseable fields count as zero.
func (e *Estimator) Estimate(input model.DimensionInput) model.VolumeEstimate {
	return e.EstimateFeet(
		ParseDimension(input.Length),
		ParseDimension(input.Width),
		ParseDimension(input.Depth),
	)
}

func (e *Estimator) EstimateFeet(lengthFeet, widthFeet, depthInches float64) model.VolumeEstimate {
	lengthFeet = clamp(lengthFeet)
	widthFeet = clamp(widthFeet)
	depthInches = clamp(depthInches)

	depthFeet := depthInches / inchesPerFoot
	// Finite dimensions can still overflow; such an area is reported as empty.
	cubicFeet := clamp(lengthFeet * widthFeet * depthFeet)
	cubicYards := cubicFeet / cubicFeetPerYard
	tons := clamp(cubicYards * e.tonsPerYard)

	return model.VolumeEstimate{
		LengthFeet:       lengthFeet,
		WidthFeet:        widthFeet,
		DepthInches:      depthInches,
		CubicFeet:        cubicFeet,
		CubicYards:       cubicYards,
		Tons:             tons,
		RecommendedYards: RoundUpYards(cubicYards),
		TonsPerYard:      e.tonsPerYard,
	}
}

// DepthTable estimates the same area at each of the given depths (inches).
func (e *Estimator) DepthTable(lengthFeet, widthFeet float64, depths []float64) []model.VolumeEstimate {
	rows := make([]model.VolumeEstimate, 0, len(depths))
	for _, depth := range depths {
		rows = append(rows, e.EstimateFeet(lengthFeet, widthFeet, depth))
	}
	return rows
}

// RoundUpYards rounds up to the next quarter yard. It never rounds down so an
// order is never short.
func RoundUpYards(cubicYards float64) float64 {
	if !(cubicYards > 0) || math.IsInf(cubicYards, 0) {
		return 0
	}
	return math.Ceil(cubicYards*quartersPerYard) / quartersPerYard
}

// ParseDimension reads a single calculator field. Empty, non-numeric,
// non-finite and negative values are reported as zero.
func ParseDimension(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || !decimalPattern.MatchString(raw) {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return clamp(value)
}

func clamp(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
