// Package config resolves runtime settings from defaults, an optional .env
// file, the environment and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"termfolio/internal/assets"
	"termfolio/internal/contact"
	"termfolio/internal/preview"
	"termfolio/internal/telemetry"
)

// Environment variables read by Load.
const (
	EndpointEnv = "TERMFOLIO_FORM_ENDPOINT"
	LogFileEnv  = "TERMFOLIO_LOG_FILE"
	RendererEnv = "TERMFOLIO_IMAGE_RENDERER"
)

// DefaultEnvFile is loaded when present. Existing variables win over it.
const DefaultEnvFile = ".env"

// Config holds all application configuration
type Config struct {
	FormEndpoint string `validate:"required,url"`
	AssetDir     string `validate:"required"`
	LogFile      string
	Renderer     string `validate:"required"`
	OTLPEndpoint string
	ServiceName  string `validate:"required"`
	AltScreen    bool
	Mouse        bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		FormEndpoint: contact.DefaultEndpoint,
		AssetDir:     assets.DefaultRoot,
		Renderer:     preview.DefaultCommand,
		ServiceName:  telemetry.DefaultServiceName,
		AltScreen:    true,
		Mouse:        true,
	}
}

// Load reads envFile (if it exists) into the process environment and
// resolves the configuration from it. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv), nil
}

// FromEnv overlays non-empty variables onto Default.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.FormEndpoint, EndpointEnv)
	set(&cfg.AssetDir, assets.RootEnv)
	set(&cfg.LogFile, LogFileEnv)
	set(&cfg.Renderer, RendererEnv)
	set(&cfg.OTLPEndpoint, telemetry.EndpointEnv)
	set(&cfg.ServiceName, telemetry.ServiceNameEnv)
	return cfg
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s fails %q", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}
