package model

import "time"

// DimensionInput holds the raw calculator fields as typed by the visitor.
// Length and width are in feet, depth is in inches.
type DimensionInput struct {
	Length string `form:"length" json:"length"`
	Width  string `form:"width" json:"width"`
	Depth  string `form:"depth" json:"depth"`
}

type VolumeEstimate struct {
	LengthFeet       float64 `json:"length_feet"`
	WidthFeet        float64 `json:"width_feet"`
	DepthInches      float64 `json:"depth_inches"`
	CubicFeet        float64 `json:"cubic_feet"`
	CubicYards       float64 `json:"cubic_yards"`
	Tons             float64 `json:"tons"`
	RecommendedYards float64 `json:"recommended_yards"`
	TonsPerYard      float64 `json:"tons_per_yard"`
}

// EstimateDocument is what the PDF and workbook generators render.
type EstimateDocument struct {
	Reference  string
	CreatedAt  time.Time
	Business   Business
	Estimate   VolumeEstimate
	DepthTable []VolumeEstimate
}
