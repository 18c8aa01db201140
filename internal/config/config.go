package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type BusinessConfig struct {
	ContactEmail string
	PublicEmail  string
	Phone        string
}

type EstimateConfig struct {
	TonsPerYard   float64
	DefaultLength string
	DefaultWidth  string
	DefaultDepth  string
	DepthTable    []float64
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Business    BusinessConfig
	Estimate    EstimateConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	depths, err := parseFloatList(v.GetString("ESTIMATE_DEPTH_TABLE"))
	if err != nil {
		return nil, fmt.Errorf("ESTIMATE_DEPTH_TABLE: %w", err)
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:            v.GetString("HTTP_HOST"),
			Port:            v.GetInt("HTTP_PORT"),
			ShutdownTimeout: v.GetDuration("HTTP_SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Business: BusinessConfig{
			ContactEmail: v.GetString("CONTACT_EMAIL"),
			PublicEmail:  v.GetString("PUBLIC_EMAIL"),
			Phone:        v.GetString("BUSINESS_PHONE"),
		},
		Estimate: EstimateConfig{
			TonsPerYard:   v.GetFloat64("ESTIMATE_TONS_PER_YARD"),
			DefaultLength: v.GetString("ESTIMATE_DEFAULT_LENGTH"),
			DefaultWidth:  v.GetString("ESTIMATE_DEFAULT_WIDTH"),
			DefaultDepth:  v.GetString("ESTIMATE_DEFAULT_DEPTH"),
			DepthTable:    depths,
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"https://curtsdirt.com"}
	}
	if cfg.Business.ContactEmail == "" {
		cfg.Business.ContactEmail = "curt.chritzman@ymail.com"
	}
	if cfg.Business.PublicEmail == "" {
		cfg.Business.PublicEmail = "hello@curtsdirt.com"
	}
	if cfg.Business.Phone == "" {
		cfg.Business.Phone = "7248562033"
	}
	if cfg.Estimate.TonsPerYard == 0 {
		cfg.Estimate.TonsPerYard = 1.1
	}
	if cfg.Estimate.DefaultLength == "" {
		cfg.Estimate.DefaultLength = "20"
	}
	if cfg.Estimate.DefaultWidth == "" {
		cfg.Estimate.DefaultWidth = "15"
	}
	if cfg.Estimate.DefaultDepth == "" {
		cfg.Estimate.DefaultDepth = "4"
	}
	if len(cfg.Estimate.DepthTable) == 0 {
		cfg.Estimate.DepthTable = []float64{2, 3, 4, 6, 8, 12}
	}
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	for _, origin := range cfg.HTTP.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}
	if !strings.Contains(cfg.Business.ContactEmail, "@") {
		return fmt.Errorf("CONTACT_EMAIL must be an email address")
	}
	if cfg.Estimate.TonsPerYard < 0 {
		return fmt.Errorf("ESTIMATE_TONS_PER_YARD must be positive")
	}
	for _, depth := range cfg.Estimate.DepthTable {
		if depth <= 0 {
			return fmt.Errorf("ESTIMATE_DEPTH_TABLE values must be positive")
		}
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func parseFloatList(raw string) ([]float64, error) {
	items := parseList(raw)
	if len(items) == 0 {
		return nil, nil
	}
	result := make([]float64, 0, len(items))
	for _, item := range items {
		value, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", item)
		}
		result = append(result, value)
	}
	return result, nil
}
