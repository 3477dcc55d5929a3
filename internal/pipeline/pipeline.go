// Package pipeline turns downloaded media into recognized text via speech
// recognition or OCR.
package pipeline

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/descarado10/Bot-translator/internal/asr"
	"github.com/descarado10/Bot-translator/internal/media"
	"github.com/descarado10/Bot-translator/internal/ocr"
	"github.com/descarado10/Bot-translator/internal/punct"
	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
)

// Job describes one downloaded media object awaiting transcription.
type Job struct {
	// LocalPath is the downloaded temporary file. The pipeline removes it
	// on every exit path.
	LocalPath string
	// Modality is the declared kind of media (voice, video or photo).
	Modality sessionpkg.Mode
	// SourceLang is the session's declared source language, used to pick
	// the recognizer locale.
	SourceLang string
}

// Result is the outcome of a transcription. Text empty means the media could
// not be recognized; Unavailable marks the OCR subsystem being down, which
// callers surface with a distinct message.
type Result struct {
	Text        string
	Unavailable bool
}

// Transcriber runs the media transcription pipeline. Collaborator errors are
// absorbed: Transcribe always returns a Result, never panics or propagates.
type Transcriber struct {
	recognizer asr.Recognizer
	restorer   punct.Restorer
	latin      ocr.Reader
	cyrillic   ocr.Reader
	logger     *zap.SugaredLogger

	// extract decodes a media container to a normalized WAV file; replaced
	// in tests to avoid the ffmpeg dependency.
	extract func(ctx context.Context, srcPath string) (string, error)
}

// NewTranscriber wires the pipeline. The OCR readers may be nil when the
// subsystem failed to initialize; photo jobs then report unavailability.
func NewTranscriber(recognizer asr.Recognizer, restorer punct.Restorer, latin, cyrillic ocr.Reader, logger *zap.SugaredLogger) *Transcriber {
	return &Transcriber{
		recognizer: recognizer,
		restorer:   restorer,
		latin:      latin,
		cyrillic:   cyrillic,
		logger:     logger,
		extract:    media.ExtractAudio,
	}
}

// Transcribe dispatches on the job's modality. The temporary input file is
// removed unconditionally once processing completes or fails.
func (t *Transcriber) Transcribe(ctx context.Context, job Job) Result {
	defer media.Remove(job.LocalPath, t.logger)

	if job.Modality == sessionpkg.ModePhoto {
		return t.transcribeImage(ctx, job)
	}
	return t.transcribeAudio(ctx, job)
}

// transcribeAudio decodes the container to a normalized waveform, recognizes
// speech in the declared language, dedupes the alternatives, and restores
// punctuation best-effort.
func (t *Transcriber) transcribeAudio(ctx context.Context, job Job) Result {
	wavPath, err := t.extract(ctx, job.LocalPath)
	if err != nil {
		t.logger.Errorw("could not extract audio", "path", job.LocalPath, "error", err)
		return Result{}
	}
	defer media.Remove(wavPath, t.logger)

	locale := asr.Locale(job.SourceLang)
	alts, err := t.recognizer.Recognize(ctx, wavPath, locale)
	if err != nil {
		t.logger.Warnw("speech recognition failed", "locale", locale, "error", err)
		return Result{}
	}

	text := asr.DedupeAlternatives(alts)
	if text == "" {
		return Result{}
	}

	restored, err := t.restorer.Restore(ctx, text)
	if err != nil {
		t.logger.Warnw("punctuation restoration failed, keeping raw transcript", "error", err)
		return Result{Text: text}
	}
	return Result{Text: restored}
}

// transcribeImage runs both script-family readers and concatenates every
// non-empty line group, latin first.
func (t *Transcriber) transcribeImage(ctx context.Context, job Job) Result {
	if t.latin == nil || t.cyrillic == nil {
		t.logger.Errorw("ocr readers not initialized")
		return Result{Unavailable: true}
	}

	var lines []string
	for _, reader := range []ocr.Reader{t.latin, t.cyrillic} {
		got, err := reader.ReadLines(ctx, job.LocalPath)
		if err != nil {
			if errors.Is(err, ocr.ErrUnavailable) {
				return Result{Unavailable: true}
			}
			t.logger.Errorw("ocr failed", "path", job.LocalPath, "error", err)
			return Result{}
		}
		for _, line := range got {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
	}

	if len(lines) == 0 {
		return Result{}
	}
	return Result{Text: strings.Join(lines, " ")}
}
