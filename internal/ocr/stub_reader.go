package ocr

import "context"

// StubReader is a deterministic in-memory reader for tests.
type StubReader struct {
	Lines []string
	Err   error
}

func (s *StubReader) ReadLines(_ context.Context, _ string) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Lines, nil
}
