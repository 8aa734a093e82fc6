// Package tagline suggests a short business card tagline through a hosted
// text-generation model. Suggestions never fail: every problem degrades to
// one of the fixed fallback strings.
package tagline

import (
	"context"
	"fmt"
)

// Fallback strings returned instead of a model response.
const (
	FallbackNoCredential = "Innovating Digital Experiences"
	FallbackEmpty        = "Building the Future of Web"
	FallbackError        = "Excellence in Every Pixel"
)

// DefaultModel is the text-generation model asked for taglines.
const DefaultModel = "gemini-2.5-flash"

// Temperature is sent with every request.
const Temperature = 0.7

// Source tells where a suggestion came from.
type Source string

const (
	SourceModel        Source = "model"
	SourceNoCredential Source = "no_credential"
	SourceEmpty        Source = "empty_response"
	SourceError        Source = "error"
)

// Result is a suggestion with its provenance. Err is set only for
// SourceError and is informational; Text is always usable.
type Result struct {
	Text   string
	Source Source
	Err    error
}

// Fallback reports whether Text is one of the fixed fallback strings.
func (r Result) Fallback() bool {
	return r.Source != SourceModel
}

// Suggester produces tagline suggestions.
type Suggester interface {
	Suggest(ctx context.Context, jobTitle, companyName string) Result
}

// SuggestTagline returns only the suggestion text.
func SuggestTagline(ctx context.Context, s Suggester, jobTitle, companyName string) string {
	return s.Suggest(ctx, jobTitle, companyName).Text
}

// Prompt builds the fixed instruction sent to the model.
func Prompt(jobTitle, companyName string) string {
	return fmt.Sprintf(`Write a professional, catchy, and short (under 10 words) tagline for a business card.
The person is a "%s" working at "%s".
The tone should be modern, sleek, and tech-forward.
Return ONLY the tagline string, no quotes.`, jobTitle, companyName)
}
