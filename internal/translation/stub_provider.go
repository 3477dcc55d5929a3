package translation

import (
	"context"
	"errors"
	"sync"
)

// StubProvider is a deterministic in-memory provider for tests. It records
// every chunk it is asked to translate and can be configured to fail either
// always or for specific inputs.
type StubProvider struct {
	ProviderName string
	// Dictionary maps input text to its translation. Inputs not present
	// translate to Prefix + input.
	Dictionary map[string]string
	// Prefix is prepended to unknown inputs (default "[x] ").
	Prefix string
	// Fail makes every call return an error.
	Fail bool
	// FailFor makes calls for the listed inputs return an error.
	FailFor map[string]bool

	mu    sync.Mutex
	calls []string
}

func (s *StubProvider) Name() string {
	if s.ProviderName == "" {
		return "Stub"
	}
	return s.ProviderName
}

func (s *StubProvider) Translate(_ context.Context, _, _, text string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, text)
	s.mu.Unlock()

	if s.Fail || s.FailFor[text] {
		return "", errors.New("stub provider failure")
	}
	if out, ok := s.Dictionary[text]; ok {
		return out, nil
	}
	prefix := s.Prefix
	if prefix == "" {
		prefix = "[x] "
	}
	return prefix + text, nil
}

// Calls returns the inputs seen so far, in order.
func (s *StubProvider) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
