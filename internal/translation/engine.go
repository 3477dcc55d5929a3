package translation

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	// maxChunkWords bounds how much text is sent to a provider per call.
	maxChunkWords = 25

	// failureMarker replaces a chunk for which every provider failed, so the
	// rest of the message keeps its position.
	failureMarker = "[Tarjima xatosi]"
)

// Engine translates text through an ordered provider chain, chunk by chunk.
// Provider failures are absorbed: the engine always returns an Outcome and
// never an error.
type Engine struct {
	providers []Provider
	logger    *zap.SugaredLogger
}

// NewEngine creates an engine that tries providers in the given order for
// every chunk.
func NewEngine(providers []Provider, logger *zap.SugaredLogger) *Engine {
	return &Engine{providers: providers, logger: logger}
}

// SplitChunks splits text into word groups of at most maxWords words,
// preserving order. Boundaries fall only between words; joining the chunks
// with single spaces reproduces the original word sequence.
func SplitChunks(text string, maxWords int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for i := 0; i < len(words); i += maxWords {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// Translate runs the fallback chain over every chunk of text. Chunks are
// processed strictly in order; for each chunk the first provider returning a
// non-empty result wins and later providers are not tried. A chunk for which
// the whole chain fails is replaced by the failure marker. The credited
// provider is the one that produced the last successful chunk.
func (e *Engine) Translate(ctx context.Context, text, source, target string) Outcome {
	chunks := SplitChunks(text, maxChunkWords)
	if len(chunks) == 0 {
		return Outcome{}
	}

	results := make([]string, 0, len(chunks))
	var provider string
	anySuccess := false

	for i, chunk := range chunks {
		translated := ""
		for _, p := range e.providers {
			part, err := p.Translate(ctx, source, target, chunk)
			if err != nil {
				e.logger.Warnw("provider failed", "provider", p.Name(), "chunk", i, "error", err)
				continue
			}
			part = strings.TrimSpace(part)
			if part == "" {
				e.logger.Warnw("provider returned empty result", "provider", p.Name(), "chunk", i)
				continue
			}
			translated = part
			provider = p.Name()
			anySuccess = true
			e.logger.Infow("chunk translated", "provider", p.Name(), "chunk", i)
			break
		}

		if translated == "" {
			e.logger.Warnw("all providers failed for chunk", "chunk", i)
			translated = failureMarker
		}
		results = append(results, translated)
	}

	if !anySuccess {
		return Outcome{}
	}
	return Outcome{Text: strings.Join(results, " "), Provider: provider}
}
