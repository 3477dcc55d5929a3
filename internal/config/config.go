// Package config loads the bot configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config carries everything main needs to wire the bot.
type Config struct {
	// BotToken authenticates against the Bot API. Required.
	BotToken string

	// StateBackend selects the session store: file, sqlite or redis.
	StateBackend string
	StateFile    string
	SQLitePath   string
	RedisAddr    string

	// DownloadsDir holds per-request temporary media files.
	DownloadsDir string

	// YandexAPIKey enables the Yandex provider; without it the provider
	// fails and the chain falls through to the next one.
	YandexAPIKey string
	// SpeechAPIKey overrides the built-in Google Speech key.
	SpeechAPIKey string

	// PunctURL points at the punctuation-restoration sidecar; empty
	// disables restoration.
	PunctURL string
	// OCRURL points at the easyocr sidecar; empty leaves the OCR
	// subsystem unavailable.
	OCRURL string

	// PollTimeout is the long-polling window for getUpdates.
	PollTimeout time.Duration
}

// Load reads the configuration, applying defaults for everything except the
// bot token.
func Load() (Config, error) {
	cfg := Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		StateBackend: envOr("STATE_BACKEND", "file"),
		StateFile:    envOr("STATE_FILE", "user_states.json"),
		SQLitePath:   envOr("STATE_DB_PATH", "user_states.db"),
		RedisAddr:    envOr("REDIS_ADDR", "127.0.0.1:6379"),
		DownloadsDir: envOr("DOWNLOADS_DIR", "downloads"),
		YandexAPIKey: os.Getenv("YANDEX_API_KEY"),
		SpeechAPIKey: os.Getenv("SPEECH_API_KEY"),
		PunctURL:     os.Getenv("PUNCT_API_URL"),
		OCRURL:       os.Getenv("OCR_API_URL"),
		PollTimeout:  time.Duration(envIntOr("POLL_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if cfg.BotToken == "" {
		return Config{}, errors.New("BOT_TOKEN is not set")
	}
	switch cfg.StateBackend {
	case "file", "sqlite", "redis":
	default:
		return Config{}, errors.New("STATE_BACKEND must be file, sqlite or redis")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
