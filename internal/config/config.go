package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr     = ":8080"
	defaultTaglineModel   = "gemini-2.5-flash"
	defaultTaglineBaseURL = "https://generativelanguage.googleapis.com"
	defaultCardTheme      = "midnight"
	defaultLogoMaxBytes   = 2 << 20
	defaultEditorIdleTTL  = 24 * time.Hour
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetServerAddr() string
	GetSessionSecret() string
	GetTaglineAPIKey() string
	GetTaglineModel() string
	GetTaglineBaseURL() string
	GetTaglineTimeout() time.Duration
	GetCardTheme() string
	GetLogoMaxBytes() int64
	GetEditorIdleTTL() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	SessionSecret  string
	TaglineAPIKey  string
	TaglineModel   string
	TaglineBaseURL string
	TaglineTimeout time.Duration
	CardTheme      string
	LogoMaxBytes   int64
	EditorIdleTTL  time.Duration
}

// New loads configuration from a .env file (if any) and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Load(os.Getenv)
}

// Load builds a Config from getenv, applying defaults for unset or
// malformed values.
func Load(getenv func(string) string) *Config {
	cfg := &Config{
		ServerAddr:     stringOr(getenv("SERVER_ADDR"), defaultServerAddr),
		SessionSecret:  getenv("SESSION_SECRET"),
		TaglineAPIKey:  stringOr(getenv("GEMINI_API_KEY"), getenv("API_KEY")),
		TaglineModel:   stringOr(getenv("TAGLINE_MODEL"), defaultTaglineModel),
		TaglineBaseURL: stringOr(getenv("TAGLINE_BASE_URL"), defaultTaglineBaseURL),
		TaglineTimeout: durationOr(getenv, "TAGLINE_TIMEOUT", 0),
		CardTheme:      stringOr(getenv("CARD_THEME"), defaultCardTheme),
		LogoMaxBytes:   intOr(getenv, "LOGO_MAX_BYTES", defaultLogoMaxBytes),
		EditorIdleTTL:  durationOr(getenv, "EDITOR_IDLE_TTL", defaultEditorIdleTTL),
	}

	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set; sessions will not survive a restart")
		cfg.SessionSecret = randomSecret()
	}
	if cfg.TaglineAPIKey == "" {
		slog.Info("No tagline API key configured; tagline suggestions use the offline fallback")
	}

	return cfg
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetTaglineAPIKey() string         { return c.TaglineAPIKey }
func (c *Config) GetTaglineModel() string          { return c.TaglineModel }
func (c *Config) GetTaglineBaseURL() string        { return c.TaglineBaseURL }
func (c *Config) GetTaglineTimeout() time.Duration { return c.TaglineTimeout }
func (c *Config) GetCardTheme() string             { return c.CardTheme }
func (c *Config) GetLogoMaxBytes() int64           { return c.LogoMaxBytes }
func (c *Config) GetEditorIdleTTL() time.Duration  { return c.EditorIdleTTL }

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func durationOr(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		slog.Warn("Ignoring invalid duration", "key", key, "value", v)
		return fallback
	}
	return d
}

func intOr(getenv func(string) string, key string, fallback int64) int64 {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("Ignoring invalid integer", "key", key, "value", v)
		return fallback
	}
	return n
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
