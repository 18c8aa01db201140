package site

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtsdirt/site/internal/config"
)

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(724) 856-2033", FormatPhone("7248562033"))
	assert.Equal(t, "(724) 856-2033", FormatPhone("724-856-2033"))
	assert.Equal(t, "12345", FormatPhone("12345"))
}

func TestNewContent(t *testing.T) {
	content := NewContent(config.BusinessConfig{
		ContactEmail: "orders@example.com",
		PublicEmail:  "hello@example.com",
		Phone:        "7248562033",
	})

	assert.Equal(t, "(724) 856-2033", content.Business.PhoneDisplay)
	assert.Equal(t, "orders@example.com", content.Business.ContactEmail)
	assert.Len(t, content.Services, 3)
	assert.Len(t, content.Steps, 3)
	assert.NotEmpty(t, content.Testimonials)
}

func TestTemplatesRender(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	data := map[string]any{
		"Content": NewContent(config.BusinessConfig{Phone: "7248562033", PublicEmail: "hello@example.com"}),
		"Input":   map[string]string{"Length": "20", "Width": "15", "Depth": "4"},
		"Display": map[string]string{"CubicYards": "3.70", "RecommendedYards": "3.75", "Tons": "4.07", "TonsPerYard": "1.1"},
		"Year":    2026,
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", data))

	html := buf.String()
	assert.Contains(t, html, `id="cubic-yards">3.70<`)
	assert.Contains(t, html, `step="0.1"`)
	assert.Contains(t, html, "Residential delivery")
	assert.Contains(t, html, "<span>01</span>")
}

func TestScriptIsEmbedded(t *testing.T) {
	script := string(Script)

	assert.Contains(t, script, `getElementById("calculator-form")`)
	assert.Contains(t, script, `getElementById("contact-form")`)
	for _, id := range []string{"cubic-yards", "recommended-yards", "tons"} {
		assert.Contains(t, script, `getElementById("`+id+`")`)
	}
}
