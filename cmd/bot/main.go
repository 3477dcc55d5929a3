// Package main contains the translator bot entry point.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/descarado10/Bot-translator/internal/asr"
	botpkg "github.com/descarado10/Bot-translator/internal/bot"
	"github.com/descarado10/Bot-translator/internal/config"
	"github.com/descarado10/Bot-translator/internal/di"
	"github.com/descarado10/Bot-translator/internal/ocr"
	"github.com/descarado10/Bot-translator/internal/pipeline"
	"github.com/descarado10/Bot-translator/internal/punct"
	storepkg "github.com/descarado10/Bot-translator/internal/store"
	"github.com/descarado10/Bot-translator/internal/telegram"
	"github.com/descarado10/Bot-translator/internal/translation"
)

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	sessions, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalw("failed to open session store", "backend", cfg.StateBackend, "error", err)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			logger.Errorw("failed to close session store", "error", err)
		}
	}()

	providers := []translation.Provider{
		translation.NewYandexProvider(cfg.YandexAPIKey),
		translation.NewGoogleProvider(),
		translation.NewMyMemoryProvider(),
	}
	engine := translation.NewEngine(providers, logger)

	var restorer punct.Restorer = punct.Noop{}
	if cfg.PunctURL != "" {
		restorer = punct.NewHTTPRestorer(cfg.PunctURL)
	}

	var latin, cyrillic ocr.Reader
	if cfg.OCRURL != "" {
		latin = ocr.NewHTTPReader(cfg.OCRURL, []string{"uz", "en"})
		cyrillic = ocr.NewHTTPReader(cfg.OCRURL, []string{"ru"})
	} else {
		logger.Warnw("OCR_API_URL not set, photo translation unavailable")
	}

	transcriber := pipeline.NewTranscriber(
		asr.NewGoogleRecognizer(cfg.SpeechAPIKey, logger),
		restorer,
		latin, cyrillic,
		logger,
	)

	client := telegram.NewClient(cfg.BotToken)

	container := di.New(
		di.WithSessions(sessions),
		di.WithEngine(engine),
		di.WithTranscriber(transcriber),
		di.WithTransport(client),
	)
	handler := container.Handler(cfg.DownloadsDir, logger)

	if err := client.DeleteWebhook(ctx, true); err != nil {
		logger.Warnw("failed to delete webhook", "error", err)
	}

	handler.NotifyInterrupted(ctx)

	p := &poller{
		client:  client,
		handler: handler,
		timeout: cfg.PollTimeout,
		logger:  logger,
	}

	logger.Infow("bot starting", "stateBackend", cfg.StateBackend)

	go p.Run(ctx)

	<-signals
	logger.Infow("shutdown signal received")
	cancel()
	time.Sleep(500 * time.Millisecond)
	logger.Infow("bot stopped")
}

func newSessionStore(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) (storepkg.Store, error) {
	switch cfg.StateBackend {
	case "sqlite":
		return storepkg.NewSQLiteStore(ctx, cfg.SQLitePath)
	case "redis":
		return storepkg.NewRedisStore(ctx, cfg.RedisAddr)
	default:
		return storepkg.NewFileStore(cfg.StateFile, logger), nil
	}
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg *telegram.Message)
}

type updateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]telegram.Update, error)
}

// poller drives the long-polling loop. Each update is dispatched on its own
// goroutine so one user's slow media job never blocks another user; the
// handler serializes per-user work itself.
type poller struct {
	client  updateSource
	handler messageHandler
	timeout time.Duration
	logger  *zap.SugaredLogger
}

func (p *poller) Run(ctx context.Context) {
	var offset int64
	for {
		if ctx.Err() != nil {
			return
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			p.logger.Errorw("failed to fetch updates", "error", err)
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			if update.Message == nil {
				continue
			}
			msg := update.Message
			go p.handler.HandleMessage(ctx, msg)
		}
	}
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

var _ botpkg.Transport = (*telegram.Client)(nil)
