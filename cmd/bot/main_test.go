package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/descarado10/Bot-translator/internal/telegram"
)

type scriptedSource struct {
	mu      sync.Mutex
	batches [][]telegram.Update
	offsets []int64
	err     error
}

func (s *scriptedSource) GetUpdates(ctx context.Context, offset int64, _ time.Duration) ([]telegram.Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsets = append(s.offsets, offset)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.batches) == 0 {
		return nil, context.Canceled
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}

type recordingHandler struct {
	mu   sync.Mutex
	seen []string
	done chan struct{}
	want int
}

func (r *recordingHandler) HandleMessage(_ context.Context, msg *telegram.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, msg.Text)
	if len(r.seen) == r.want {
		close(r.done)
	}
}

func TestPollerAdvancesOffsetAndDispatches(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{batches: [][]telegram.Update{
		{
			{UpdateID: 10, Message: &telegram.Message{Text: "a", From: &telegram.User{ID: 1}}},
			{UpdateID: 11}, // no message payload, skipped
			{UpdateID: 12, Message: &telegram.Message{Text: "b", From: &telegram.User{ID: 2}}},
		},
	}}
	h := &recordingHandler{done: make(chan struct{}), want: 2}

	p := &poller{client: src, handler: h, timeout: time.Second, logger: zap.NewNop().Sugar()}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go p.Run(ctx)

	select {
	case <-h.done:
	case <-ctx.Done():
		t.Fatal("updates not dispatched in time")
	}

	// The second poll must ask for updates after the last seen id.
	deadline := time.Now().Add(time.Second)
	for {
		src.mu.Lock()
		n := len(src.offsets)
		src.mu.Unlock()
		if n >= 2 || time.Now().After(deadline) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	src.mu.Lock()
	defer src.mu.Unlock()
	if len(src.offsets) < 2 || src.offsets[1] != 13 {
		t.Errorf("offset not advanced past batch: %v", src.offsets)
	}
}

func TestPollerStopsOnCancel(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{err: errors.New("network down")}
	p := &poller{client: src, handler: &recordingHandler{done: make(chan struct{}), want: 1}, timeout: time.Second, logger: zap.NewNop().Sugar()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}
