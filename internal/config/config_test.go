package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/contact"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(envMap(nil))
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, contact.DefaultEndpoint, cfg.FormEndpoint)
	assert.Equal(t, "public", cfg.AssetDir)
	assert.Equal(t, "chafa", cfg.Renderer)
	assert.True(t, cfg.AltScreen)
	assert.True(t, cfg.Mouse)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"TERMFOLIO_FORM_ENDPOINT":     "https://forms.example.com/x",
		"TERMFOLIO_ASSET_DIR":         "/srv/site",
		"TERMFOLIO_LOG_FILE":          "/tmp/termfolio.log",
		"TERMFOLIO_IMAGE_RENDERER":    "viu",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4318",
		"OTEL_SERVICE_NAME":           "folio",
	}))
	assert.Equal(t, "https://forms.example.com/x", cfg.FormEndpoint)
	assert.Equal(t, "/srv/site", cfg.AssetDir)
	assert.Equal(t, "/tmp/termfolio.log", cfg.LogFile)
	assert.Equal(t, "viu", cfg.Renderer)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	assert.Equal(t, "folio", cfg.ServiceName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"endpoint not a url", func(c *Config) { c.FormEndpoint = "formspree" }, true},
		{"empty endpoint", func(c *Config) { c.FormEndpoint = "" }, true},
		{"empty asset dir", func(c *Config) { c.AssetDir = "" }, true},
		{"empty renderer", func(c *Config) { c.Renderer = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TERMFOLIO_IMAGE_RENDERER=timg\n"), 0o644))
	t.Setenv("TERMFOLIO_IMAGE_RENDERER", "")
	require.NoError(t, os.Unsetenv("TERMFOLIO_IMAGE_RENDERER"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "timg", cfg.Renderer)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TERMFOLIO_ASSET_DIR=from-file\n"), 0o644))
	t.Setenv("TERMFOLIO_ASSET_DIR", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AssetDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}
