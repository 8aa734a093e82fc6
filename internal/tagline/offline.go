package tagline

import (
	"context"
	"log/slog"
)

// OfflineSuggester is used when no API credential is configured. It never
// touches the network.
type OfflineSuggester struct{}

// Suggest returns FallbackNoCredential.
func (OfflineSuggester) Suggest(ctx context.Context, jobTitle, companyName string) Result {
	slog.Warn("Tagline API key is missing, returning fallback")
	return Result{Text: FallbackNoCredential, Source: SourceNoCredential}
}
