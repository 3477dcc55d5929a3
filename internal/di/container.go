// Package di assembles the bot's collaborators for production and tests.
package di

import (
	"go.uber.org/zap"

	"github.com/descarado10/Bot-translator/internal/bot"
	"github.com/descarado10/Bot-translator/internal/pipeline"
	"github.com/descarado10/Bot-translator/internal/store"
	"github.com/descarado10/Bot-translator/internal/translation"
)

// Container holds the wired dependencies of the orchestrator.
type Container struct {
	Sessions    store.Store
	Engine      *translation.Engine
	Transcriber *pipeline.Transcriber
	Transport   bot.Transport
}

// Option configures a container during construction.
type Option func(*Container)

// WithSessions sets the session store implementation.
func WithSessions(s store.Store) Option {
	return func(c *Container) { c.Sessions = s }
}

// WithEngine sets the translation fallback engine.
func WithEngine(e *translation.Engine) Option {
	return func(c *Container) { c.Engine = e }
}

// WithTranscriber sets the media transcription pipeline.
func WithTranscriber(t *pipeline.Transcriber) Option {
	return func(c *Container) { c.Transcriber = t }
}

// WithTransport sets the chat transport implementation.
func WithTransport(t bot.Transport) Option {
	return func(c *Container) { c.Transport = t }
}

// New creates a container with the given options.
func New(opts ...Option) *Container {
	c := &Container{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handler builds the orchestrator from the container's collaborators.
func (c *Container) Handler(downloadsDir string, logger *zap.SugaredLogger) *bot.Handler {
	return bot.NewHandler(c.Transport, c.Sessions, c.Engine, c.Transcriber, downloadsDir, logger)
}
