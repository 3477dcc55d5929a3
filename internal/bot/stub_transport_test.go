package bot

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/descarado10/Bot-translator/internal/telegram"
)

type sentMessage struct {
	ChatID   int64
	Text     string
	Keyboard *telegram.ReplyKeyboardMarkup
}

// stubTransport records every outbound operation for assertions.
type stubTransport struct {
	mu        sync.Mutex
	sent      []sentMessage
	edits     []sentMessage
	deleted   []int
	downloads []string

	// sendErr makes SendMessage fail for the listed chat ids.
	sendErr map[int64]error
	// downloadPayload is written to the destination path on Download.
	downloadPayload string
	downloadErr     error

	nextID int
}

func (s *stubTransport) SendMessage(_ context.Context, chatID int64, text string, kb *telegram.ReplyKeyboardMarkup) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sendErr[chatID]; err != nil {
		return 0, err
	}
	s.nextID++
	s.sent = append(s.sent, sentMessage{ChatID: chatID, Text: text, Keyboard: kb})
	return s.nextID, nil
}

func (s *stubTransport) EditMessage(_ context.Context, chatID int64, _ int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits = append(s.edits, sentMessage{ChatID: chatID, Text: text})
	return nil
}

func (s *stubTransport) DeleteMessage(_ context.Context, _ int64, messageID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, messageID)
	return nil
}

func (s *stubTransport) Download(_ context.Context, fileID, destPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.downloadErr != nil {
		return s.downloadErr
	}
	s.downloads = append(s.downloads, fileID)
	payload := s.downloadPayload
	if payload == "" {
		payload = "media"
	}
	return os.WriteFile(destPath, []byte(payload), 0o644)
}

func (s *stubTransport) lastSent() sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return sentMessage{}
	}
	return s.sent[len(s.sent)-1]
}

func (s *stubTransport) sentTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sent))
	for i, m := range s.sent {
		out[i] = m.Text
	}
	return out
}

var errBlocked = errors.New("forbidden: bot was blocked by the user")
