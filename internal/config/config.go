package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	GoogleMapsAPIKey  string        `mapstructure:"GOOGLE_MAPS_API_KEY" validate:"required"`
	GeocodeBaseURL    string        `mapstructure:"GEOCODE_BASE_URL" validate:"required,url"`
	GeocodeTimeout    time.Duration `mapstructure:"GEOCODE_TIMEOUT" validate:"gte=0"`
	RequestDelay      time.Duration `mapstructure:"REQUEST_DELAY" validate:"gte=0"`
	PacingMode        string        `mapstructure:"PACING_MODE" validate:"oneof=fixed limiter"`
	DataDir           string        `mapstructure:"DATA_DIR" validate:"required"`
	TargetFiles       []string      `mapstructure:"TARGET_FILES" validate:"required,min=1,dive,required"`
	ValidationAddress string        `mapstructure:"VALIDATION_ADDRESS" validate:"required"`
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS" validate:"required"`
	LogLevel          string        `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat         string        `mapstructure:"LOG_FORMAT" validate:"oneof=console json"`
}

// Pacing modes.
const (
	PacingFixed   = "fixed"
	PacingLimiter = "limiter"
)

var defaults = map[string]any{
	"GOOGLE_MAPS_API_KEY": "",
	"GEOCODE_BASE_URL":    "https://maps.googleapis.com/maps/api",
	"GEOCODE_TIMEOUT":     "10s",
	"REQUEST_DELAY":       "100ms",
	"PACING_MODE":         PacingFixed,
	"DATA_DIR":            "data",
	"TARGET_FILES":        "survey_responses.json,sample_responses.json,demo_responses.json",
	"VALIDATION_ADDRESS":  "1600 Amphitheatre Parkway, Mountain View, CA",
	"SERVER_ADDRESS":      "0.0.0.0:8080",
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "console",
}

// LoadConfig reads configuration from path/app.env (optional) and the environment.
// Environment variables take precedence over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read %s: %w", filepath.Join(path, "app.env"), err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode: %w", err)
	}
	return config, nil
}

// Validate checks the configuration. A missing API key is reported here so that a run fails
// before any network or file access.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}
