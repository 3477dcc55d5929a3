// Package translation provides machine-translation providers and the
// fallback engine that chains them.
package translation

import "context"

// Provider translates a piece of text between two languages. A call may fail
// or return an empty result; the engine treats both as a miss and moves on to
// the next provider.
type Provider interface {
	// Name identifies the provider in user-visible output.
	Name() string

	// Translate converts text from the source to the target language
	// (ISO 639-1 codes).
	Translate(ctx context.Context, source, target, text string) (string, error)
}

// Outcome is the result of translating a whole message. Text is empty only
// when no chunk of the input could be translated by any provider; Provider
// names the provider that produced the most recent successful chunk.
type Outcome struct {
	Text     string
	Provider string
}

// Translated reports whether any text was produced.
func (o Outcome) Translated() bool { return o.Text != "" }
