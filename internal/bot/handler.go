// Package bot orchestrates inbound chat messages: it drives the session
// state machine, the media pipeline, and the translation engine, and formats
// the responses.
package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/descarado10/Bot-translator/internal/media"
	"github.com/descarado10/Bot-translator/internal/pipeline"
	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
	"github.com/descarado10/Bot-translator/internal/store"
	"github.com/descarado10/Bot-translator/internal/telegram"
	"github.com/descarado10/Bot-translator/internal/translation"
)

// maxVideoSize is the largest accepted video; bigger uploads are rejected
// before any download happens.
const maxVideoSize = 20 * 1024 * 1024

// failureMenuDelay is how long the terminal failure notice stays on screen
// before the bot returns the user to the main menu. Shortened in tests.
var failureMenuDelay = 3 * time.Second

type translator interface {
	Translate(ctx context.Context, text, source, target string) translation.Outcome
}

type transcriber interface {
	Transcribe(ctx context.Context, job pipeline.Job) pipeline.Result
}

// Handler processes one inbound message at a time per user. Overlapping
// requests from the same user are serialized with a per-user mutex so they
// cannot race on the session state.
type Handler struct {
	transport    Transport
	sessions     store.Store
	engine       translator
	transcriber  transcriber
	downloadsDir string
	logger       *zap.SugaredLogger

	userLocks sync.Map // int64 -> *sync.Mutex
}

func NewHandler(transport Transport, sessions store.Store, engine translator, tr transcriber, downloadsDir string, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		transport:    transport,
		sessions:     sessions,
		engine:       engine,
		transcriber:  tr,
		downloadsDir: downloadsDir,
		logger:       logger,
	}
}

func (h *Handler) lockUser(userID int64) func() {
	mu, _ := h.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return mu.(*sync.Mutex).Unlock
}

// HandleMessage dispatches one inbound message. All failures are handled
// internally; the method never returns an error to the polling loop.
func (h *Handler) HandleMessage(ctx context.Context, msg *telegram.Message) {
	if msg == nil || msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	unlock := h.lockUser(userID)
	defer unlock()

	switch {
	case msg.Text == "/start" || msg.Text == btnBackToMenu || msg.Text == btnHomeMenu:
		h.resetToMenu(ctx, chatID, userID, msgWelcome)

	case modeByButton[msg.Text] != "":
		h.selectMode(ctx, chatID, userID, modeByButton[msg.Text])

	case hasDirectionButton(msg.Text):
		h.selectDirection(ctx, chatID, userID, directionByButton[msg.Text])

	case msg.Text == btnBack:
		h.send(ctx, chatID, msgShowDirections, directionsKeyboard())

	case msg.Voice != nil:
		h.handleMedia(ctx, chatID, userID, sessionpkg.ModeVoice, msg.Voice.FileID, "ogg", msg.Voice.FileSize, msgVoiceGuard)

	case msg.Video != nil:
		h.handleMedia(ctx, chatID, userID, sessionpkg.ModeVideo, msg.Video.FileID, "mp4", msg.Video.FileSize, msgVideoGuard)

	case len(msg.Photo) > 0:
		// The largest rendition is last in the list.
		photo := msg.Photo[len(msg.Photo)-1]
		h.handleMedia(ctx, chatID, userID, sessionpkg.ModePhoto, photo.FileID, "jpg", photo.FileSize, msgPhotoGuard)

	case msg.Text != "":
		h.handleText(ctx, chatID, userID, msg.Text)
	}
}

func hasDirectionButton(text string) bool {
	_, ok := directionByButton[text]
	return ok
}

// resetToMenu clears any session and shows the main menu. Clearing an absent
// session is a no-op.
func (h *Handler) resetToMenu(ctx context.Context, chatID, userID int64, text string) {
	if err := h.sessions.Delete(ctx, userID); err != nil {
		h.logger.Errorw("failed to clear session", "userID", userID, "error", err)
	}
	h.send(ctx, chatID, text, mainMenuKeyboard())
}

func (h *Handler) selectMode(ctx context.Context, chatID, userID int64, mode sessionpkg.Mode) {
	if err := h.sessions.Set(ctx, userID, sessionpkg.Session{Mode: mode}); err != nil {
		h.logger.Errorw("failed to save session", "userID", userID, "error", err)
	}
	h.send(ctx, chatID, msgChooseDirection, directionsKeyboard())
}

func (h *Handler) selectDirection(ctx context.Context, chatID, userID int64, dir sessionpkg.Direction) {
	sess, err := h.sessions.Get(ctx, userID)
	if err != nil || !sess.Mode.Valid() {
		// Direction chosen with no mode on record: start over.
		h.resetToMenu(ctx, chatID, userID, msgWelcome)
		return
	}

	sess.Direction = &dir
	if err := h.sessions.Set(ctx, userID, sess); err != nil {
		h.logger.Errorw("failed to save session", "userID", userID, "error", err)
	}
	h.send(ctx, chatID, instructionByMode[sess.Mode], workKeyboard())
}

func (h *Handler) handleText(ctx context.Context, chatID, userID int64, text string) {
	sess, err := h.sessions.Get(ctx, userID)
	if err != nil || !sess.Accepts(sessionpkg.ModeText) {
		h.send(ctx, chatID, msgWrongCommand, mainMenuKeyboard())
		return
	}
	h.translateAndReply(ctx, chatID, userID, *sess.Direction, text, 0)
}

// handleMedia validates the session, enforces the video size cap, downloads
// the file, runs the transcription pipeline, and hands recognized text to
// the translation flow.
func (h *Handler) handleMedia(ctx context.Context, chatID, userID int64, modality sessionpkg.Mode, fileID, ext string, fileSize int64, guard string) {
	sess, err := h.sessions.Get(ctx, userID)
	if err != nil || !sess.Accepts(modality) {
		h.send(ctx, chatID, guard, mainMenuKeyboard())
		return
	}

	if modality == sessionpkg.ModeVideo && fileSize > maxVideoSize {
		h.send(ctx, chatID, msgVideoTooBig, nil)
		return
	}

	statusID := h.send(ctx, chatID, msgFileReceived, nil)

	localPath, err := media.TempPath(h.downloadsDir, ext)
	if err != nil {
		h.logger.Errorw("failed to allocate download path", "error", err)
		h.failTranscription(ctx, chatID, userID, statusID)
		return
	}
	if err := h.transport.Download(ctx, fileID, localPath); err != nil {
		h.logger.Errorw("failed to download media", "fileID", fileID, "error", err)
		media.Remove(localPath, h.logger)
		h.failTranscription(ctx, chatID, userID, statusID)
		return
	}

	stage := msgAudioStage
	if modality == sessionpkg.ModePhoto {
		stage = msgOCRStage
	}
	h.edit(ctx, chatID, statusID, stage)

	res := h.transcriber.Transcribe(ctx, pipeline.Job{
		LocalPath:  localPath,
		Modality:   modality,
		SourceLang: sess.Direction.Source,
	})

	switch {
	case res.Unavailable:
		h.edit(ctx, chatID, statusID, msgOCRUnavailable)
		h.clearSession(ctx, userID)
		h.send(ctx, chatID, msgMainMenu, mainMenuKeyboard())

	case res.Text == "":
		h.failTranscription(ctx, chatID, userID, statusID)

	default:
		h.send(ctx, chatID, fmt.Sprintf("<b>Aniqlangan matn:</b>\n<i>%s</i>", html.EscapeString(res.Text)), nil)
		h.translateAndReply(ctx, chatID, userID, *sess.Direction, res.Text, statusID)
	}
}

// translateAndReply runs the fallback engine and delivers the result. The
// session is cleared on every outcome; statusID reuses an existing status
// message when the text came from media.
func (h *Handler) translateAndReply(ctx context.Context, chatID, userID int64, dir sessionpkg.Direction, text string, statusID int) {
	if statusID != 0 {
		h.edit(ctx, chatID, statusID, msgTranslating)
	} else {
		statusID = h.send(ctx, chatID, msgTranslating, nil)
	}

	outcome := h.engine.Translate(ctx, text, dir.Source, dir.Target)

	if statusID != 0 {
		if err := h.transport.DeleteMessage(ctx, chatID, statusID); err != nil {
			h.logger.Warnw("failed to delete status message", "error", err)
		}
	}

	if outcome.Translated() {
		reply := fmt.Sprintf("<b>Tarjima (%s):</b>\n\n%s", outcome.Provider, html.EscapeString(outcome.Text))
		h.send(ctx, chatID, reply, mainMenuKeyboard())
	} else {
		h.send(ctx, chatID, msgTranslateFailed, mainMenuKeyboard())
	}

	h.clearSession(ctx, userID)
}

// failTranscription reports a terminal recognition failure, pauses so the
// user sees it, then clears the session and returns to the main menu.
func (h *Handler) failTranscription(ctx context.Context, chatID, userID int64, statusID int) {
	h.edit(ctx, chatID, statusID, msgRecognizeFailed)

	select {
	case <-time.After(failureMenuDelay):
	case <-ctx.Done():
	}

	if statusID != 0 {
		if err := h.transport.DeleteMessage(ctx, chatID, statusID); err != nil {
			h.logger.Warnw("failed to delete status message", "error", err)
		}
	}
	h.clearSession(ctx, userID)
	h.send(ctx, chatID, msgMainMenu, mainMenuKeyboard())
}

func (h *Handler) clearSession(ctx context.Context, userID int64) {
	if err := h.sessions.Delete(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
		h.logger.Errorw("failed to clear session", "userID", userID, "error", err)
	}
}

func (h *Handler) send(ctx context.Context, chatID int64, text string, keyboard *telegram.ReplyKeyboardMarkup) int {
	id, err := h.transport.SendMessage(ctx, chatID, text, keyboard)
	if err != nil {
		h.logger.Errorw("failed to send message", "chatID", chatID, "error", err)
		return 0
	}
	return id
}

func (h *Handler) edit(ctx context.Context, chatID int64, messageID int, text string) {
	if messageID == 0 {
		return
	}
	if err := h.transport.EditMessage(ctx, chatID, messageID, text); err != nil {
		h.logger.Warnw("failed to edit status message", "chatID", chatID, "error", err)
	}
}
