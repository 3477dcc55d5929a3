// Package punct restores punctuation in raw speech transcripts.
package punct

import "context"

// Restorer rewrites a transcript with punctuation. Callers treat restoration
// as best-effort and fall back to the input text on error.
type Restorer interface {
	Restore(ctx context.Context, text string) (string, error)
}

// Noop returns the text unchanged; used when no restoration service is
// configured.
type Noop struct{}

func (Noop) Restore(_ context.Context, text string) (string, error) {
	return text, nil
}
