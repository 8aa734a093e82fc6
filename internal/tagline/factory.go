package tagline

import (
	"net/http"
	"time"
)

// Settings is the subset of configuration the factory needs.
type Settings interface {
	GetTaglineAPIKey() string
	GetTaglineModel() string
	GetTaglineBaseURL() string
	GetTaglineTimeout() time.Duration
}

// NewSuggester returns the offline suggester when no API key is configured,
// otherwise a Gemini-backed one. A zero timeout leaves the host default.
func NewSuggester(cfg Settings) Suggester {
	if cfg.GetTaglineAPIKey() == "" {
		return OfflineSuggester{}
	}

	client := &http.Client{}
	if t := cfg.GetTaglineTimeout(); t > 0 {
		client.Timeout = t
	}
	return NewGeminiSuggester(cfg.GetTaglineAPIKey(), cfg.GetTaglineModel(), cfg.GetTaglineBaseURL(), client)
}
