package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/descarado10/Bot-translator/internal/asr"
	"github.com/descarado10/Bot-translator/internal/ocr"
	"github.com/descarado10/Bot-translator/internal/punct"
	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
)

type failingRestorer struct{}

func (failingRestorer) Restore(context.Context, string) (string, error) {
	return "", errors.New("model error")
}

func writeTemp(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribePhoto(t *testing.T) {
	t.Parallel()

	tr := NewTranscriber(
		&asr.StubRecognizer{},
		punct.Noop{},
		&ocr.StubReader{Lines: []string{"Salom", "", "dunyo"}},
		&ocr.StubReader{Lines: []string{"Привет"}},
		zap.NewNop().Sugar(),
	)

	path := writeTemp(t, "photo.jpg")
	res := tr.Transcribe(context.Background(), Job{LocalPath: path, Modality: sessionpkg.ModePhoto})

	if res.Text != "Salom dunyo Привет" {
		t.Errorf("unexpected ocr text: %q", res.Text)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("input file should be removed after processing")
	}
}

func TestTranscribePhotoNoText(t *testing.T) {
	t.Parallel()

	tr := NewTranscriber(
		&asr.StubRecognizer{},
		punct.Noop{},
		&ocr.StubReader{},
		&ocr.StubReader{},
		zap.NewNop().Sugar(),
	)

	res := tr.Transcribe(context.Background(), Job{LocalPath: writeTemp(t, "p.jpg"), Modality: sessionpkg.ModePhoto})
	if res.Text != "" || res.Unavailable {
		t.Errorf("empty ocr should yield empty result, got %+v", res)
	}
}

func TestTranscribePhotoUnavailable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		latin, cyrillic ocr.Reader
	}{
		{"readers nil", nil, nil},
		{"service down", &ocr.StubReader{Err: ocr.ErrUnavailable}, &ocr.StubReader{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr := NewTranscriber(&asr.StubRecognizer{}, punct.Noop{}, tc.latin, tc.cyrillic, zap.NewNop().Sugar())
			path := writeTemp(t, "p.jpg")

			res := tr.Transcribe(context.Background(), Job{LocalPath: path, Modality: sessionpkg.ModePhoto})
			if !res.Unavailable {
				t.Errorf("expected unavailable result, got %+v", res)
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Error("input file should be removed even on unavailability")
			}
		})
	}
}

func TestTranscribeAudioDecodeFailureCleansUp(t *testing.T) {
	t.Parallel()

	tr := NewTranscriber(&asr.StubRecognizer{}, punct.Noop{}, nil, nil, zap.NewNop().Sugar())
	tr.extract = func(context.Context, string) (string, error) {
		return "", errors.New("ffmpeg: exit status 1")
	}
	path := writeTemp(t, "voice.ogg")

	res := tr.Transcribe(context.Background(), Job{LocalPath: path, Modality: sessionpkg.ModeVoice, SourceLang: "uz"})
	if res.Text != "" {
		t.Errorf("decode failure should yield empty result, got %+v", res)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("input file should be removed after decode failure")
	}
}

// fakeExtract copies the input to a .wav sibling, standing in for ffmpeg.
func fakeExtract(t *testing.T) func(context.Context, string) (string, error) {
	t.Helper()
	return func(_ context.Context, srcPath string) (string, error) {
		out := srcPath + ".wav"
		if err := os.WriteFile(out, []byte("wav"), 0o644); err != nil {
			return "", err
		}
		return out, nil
	}
}

func TestTranscribeAudio(t *testing.T) {
	t.Parallel()

	rec := &asr.StubRecognizer{Alternatives: []asr.Alternative{
		{Transcript: "salom dunyo"},
		{Transcript: "salom dunyo"}, // duplicate alternative is dropped
		{Transcript: "tamoman boshqa gap"},
	}}
	tr := NewTranscriber(rec, punct.Noop{}, nil, nil, zap.NewNop().Sugar())
	tr.extract = fakeExtract(t)
	path := writeTemp(t, "voice.ogg")

	res := tr.Transcribe(context.Background(), Job{LocalPath: path, Modality: sessionpkg.ModeVoice, SourceLang: "ru"})
	if res.Text != "salom dunyo. tamoman boshqa gap" {
		t.Errorf("unexpected transcript: %q", res.Text)
	}
	if rec.LastLocale != "ru-RU" {
		t.Errorf("declared language not mapped to locale, got %q", rec.LastLocale)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("input file should be removed")
	}
	if _, err := os.Stat(path + ".wav"); !os.IsNotExist(err) {
		t.Error("waveform file should be removed")
	}
}

func TestTranscribeAudioPunctuationFallback(t *testing.T) {
	t.Parallel()

	rec := &asr.StubRecognizer{Alternatives: []asr.Alternative{{Transcript: "salom dunyo"}}}
	tr := NewTranscriber(rec, failingRestorer{}, nil, nil, zap.NewNop().Sugar())
	tr.extract = fakeExtract(t)

	res := tr.Transcribe(context.Background(), Job{LocalPath: writeTemp(t, "v.ogg"), Modality: sessionpkg.ModeVoice})
	if res.Text != "salom dunyo" {
		t.Errorf("restoration failure should fall back to raw transcript, got %q", res.Text)
	}
}

func TestTranscribeAudioRecognizerFailure(t *testing.T) {
	t.Parallel()

	tr := NewTranscriber(&asr.StubRecognizer{Fail: true}, punct.Noop{}, nil, nil, zap.NewNop().Sugar())
	tr.extract = fakeExtract(t)
	path := writeTemp(t, "v.ogg")

	res := tr.Transcribe(context.Background(), Job{LocalPath: path, Modality: sessionpkg.ModeVoice})
	if res.Text != "" || res.Unavailable {
		t.Errorf("recognition failure should yield empty result, got %+v", res)
	}
	if _, err := os.Stat(path + ".wav"); !os.IsNotExist(err) {
		t.Error("waveform file should be removed after recognition failure")
	}
}
