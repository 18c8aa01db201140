package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtsdirt/site/internal/estimate"
	"github.com/curtsdirt/site/internal/model"
)

func TestGenerate(t *testing.T) {
	doc := model.EstimateDocument{
		Reference: "EST-1A2B3C4D",
		CreatedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		Business: model.Business{
			Name:         "Curt's Dirt",
			Tagline:      "Farm fresh soil, delivery made simple.",
			PhoneDisplay: "(724) 856-2033",
			PublicEmail:  "hello@curtsdirt.com",
			Location:     "Evan's City, Pennsylvania",
		},
		Estimate: estimate.New(estimate.DefaultTonsPerYard).EstimateFeet(20, 15, 4),
	}

	content, err := NewGenerator().Generate(doc)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
	assert.True(t, bytes.Contains(content, []byte("%%EOF")))
}

func TestGenerateZeroEstimate(t *testing.T) {
	content, err := NewGenerator().Generate(model.EstimateDocument{})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestContactLine(t *testing.T) {
	assert.Equal(t, "(724) 856-2033  |  Butler", contactLine(model.Business{PhoneDisplay: "(724) 856-2033", Location: "Butler"}))
	assert.Empty(t, contactLine(model.Business{}))
}
