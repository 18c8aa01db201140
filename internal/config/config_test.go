package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "curt.chritzman@ymail.com", cfg.Business.ContactEmail)
	assert.Equal(t, 1.1, cfg.Estimate.TonsPerYard)
	assert.Equal(t, "20", cfg.Estimate.DefaultLength)
	assert.Equal(t, "15", cfg.Estimate.DefaultWidth)
	assert.Equal(t, "4", cfg.Estimate.DefaultDepth)
	assert.Equal(t, []float64{2, 3, 4, 6, 8, 12}, cfg.Estimate.DepthTable)
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("HTTP_PORT", 9000)
	v.Set("HTTP_SHUTDOWN_TIMEOUT", "3s")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	v.Set("CONTACT_EMAIL", "orders@example.com")
	v.Set("ESTIMATE_TONS_PER_YARD", "1.3")
	v.Set("ESTIMATE_DEPTH_TABLE", "3, 6")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "orders@example.com", cfg.Business.ContactEmail)
	assert.Equal(t, 1.3, cfg.Estimate.TonsPerYard)
	assert.Equal(t, []float64{3, 6}, cfg.Estimate.DepthTable)
}

func TestValidation(t *testing.T) {
	cases := map[string]map[string]any{
		"bad port":        {"HTTP_PORT": 70000},
		"bad email":       {"CONTACT_EMAIL": "not-an-email"},
		"negative tons":   {"ESTIMATE_TONS_PER_YARD": -1},
		"bad depth table": {"ESTIMATE_DEPTH_TABLE": "3,deep"},
		"zero depth":      {"ESTIMATE_DEPTH_TABLE": "0,4"},
		"bad origin":      {"CORS_ALLOWED_ORIGINS": "curtsdirt.com"},
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			for key, value := range values {
				v.Set(key, value)
			}
			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}
