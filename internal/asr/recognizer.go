// Package asr provides speech recognition of normalized audio files.
package asr

import "context"

// Alternative is one candidate transcript for an utterance, best first.
type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Recognizer transcribes a normalized mono WAV file. Implementations always
// return ranked alternatives; a recognizer that produces a single transcript
// wraps it in a one-element slice.
type Recognizer interface {
	Recognize(ctx context.Context, wavPath, locale string) ([]Alternative, error)
}

// localeByLang maps a session source language to the recognizer locale code.
var localeByLang = map[string]string{
	"uz": "uz-UZ",
	"ru": "ru-RU",
	"en": "en-US",
}

const defaultLocale = "en-US"

// Locale returns the recognizer locale for a source language, defaulting to
// a generic locale when the language is unmapped.
func Locale(lang string) string {
	if l, ok := localeByLang[lang]; ok {
		return l
	}
	return defaultLocale
}
