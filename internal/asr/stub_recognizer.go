package asr

import (
	"context"
	"errors"
)

// StubRecognizer is a deterministic in-memory recognizer for tests.
type StubRecognizer struct {
	// Alternatives is returned from every call.
	Alternatives []Alternative
	// Fail makes every call return an error.
	Fail bool

	// LastLocale records the locale of the most recent call.
	LastLocale string
}

func (s *StubRecognizer) Recognize(_ context.Context, _, locale string) ([]Alternative, error) {
	s.LastLocale = locale
	if s.Fail {
		return nil, errors.New("stub recognizer failure")
	}
	return s.Alternatives, nil
}
