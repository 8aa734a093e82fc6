package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load(env(nil))

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Len(t, cfg.GetSessionSecret(), 64)
	assert.Empty(t, cfg.GetTaglineAPIKey())
	assert.Equal(t, "gemini-2.5-flash", cfg.GetTaglineModel())
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.GetTaglineBaseURL())
	assert.Zero(t, cfg.GetTaglineTimeout())
	assert.Equal(t, "midnight", cfg.GetCardTheme())
	assert.EqualValues(t, 2097152, cfg.GetLogoMaxBytes())
	assert.Equal(t, 24*time.Hour, cfg.GetEditorIdleTTL())
}

func TestLoad_Overrides(t *testing.T) {
	cfg := Load(env(map[string]string{
		"SERVER_ADDR":      "127.0.0.1:9000",
		"SESSION_SECRET":   "s3cret",
		"GEMINI_API_KEY":   "gem-key",
		"API_KEY":          "other-key",
		"TAGLINE_MODEL":    "gemini-pro",
		"TAGLINE_BASE_URL": "http://localhost:1234",
		"TAGLINE_TIMEOUT":  "5s",
		"CARD_THEME":       "paper",
		"LOGO_MAX_BYTES":   "1024",
		"EDITOR_IDLE_TTL":  "30m",
	}))

	assert.Equal(t, "127.0.0.1:9000", cfg.GetServerAddr())
	assert.Equal(t, "s3cret", cfg.GetSessionSecret())
	assert.Equal(t, "gem-key", cfg.GetTaglineAPIKey())
	assert.Equal(t, "gemini-pro", cfg.GetTaglineModel())
	assert.Equal(t, "http://localhost:1234", cfg.GetTaglineBaseURL())
	assert.Equal(t, 5*time.Second, cfg.GetTaglineTimeout())
	assert.Equal(t, "paper", cfg.GetCardTheme())
	assert.EqualValues(t, 1024, cfg.GetLogoMaxBytes())
	assert.Equal(t, 30*time.Minute, cfg.GetEditorIdleTTL())
}

func TestLoad_APIKeyFallback(t *testing.T) {
	cfg := Load(env(map[string]string{"API_KEY": "other-key"}))
	assert.Equal(t, "other-key", cfg.GetTaglineAPIKey())
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	cfg := Load(env(map[string]string{
		"TAGLINE_TIMEOUT": "soon",
		"LOGO_MAX_BYTES":  "-5",
		"EDITOR_IDLE_TTL": "-1h",
	}))

	assert.Zero(t, cfg.GetTaglineTimeout())
	assert.EqualValues(t, 2097152, cfg.GetLogoMaxBytes())
	assert.Equal(t, 24*time.Hour, cfg.GetEditorIdleTTL())
}

func TestLoad_RandomSecretPerCall(t *testing.T) {
	assert.NotEqual(t, Load(env(nil)).GetSessionSecret(), Load(env(nil)).GetSessionSecret())
}
