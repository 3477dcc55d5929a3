package bot

import (
	"context"

	"github.com/descarado10/Bot-translator/internal/telegram"
)

// Transport is the chat-delivery collaborator the orchestrator consumes. The
// telegram client implements it; tests use a stub.
type Transport interface {
	// SendMessage delivers text (HTML) with an optional reply keyboard and
	// returns the sent message id.
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *telegram.ReplyKeyboardMarkup) (int, error)
	EditMessage(ctx context.Context, chatID int64, messageID int, text string) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	// Download fetches the file behind fileID into destPath.
	Download(ctx context.Context, fileID, destPath string) error
}
