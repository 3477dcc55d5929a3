package bot

import (
	"context"
	"fmt"
	"strings"
)

const restartNotice = "🤖 Bot qayta ishga tushdi!\n\n" +
	"🔹 Sizning oxirgi so'rovingiz: %s\n" +
	"🔹 Yo'nalish: %s\n\n" +
	"Iltimos, so'rovingizni davom ettiring yoki yangisini boshlang."

// NotifyInterrupted tells every user whose session reached direction
// selection before the restart that their request was interrupted. A user
// that cannot be reached has their session dropped so it is not retried on
// the next restart.
func (h *Handler) NotifyInterrupted(ctx context.Context) {
	sessions, err := h.sessions.All(ctx)
	if err != nil {
		h.logger.Errorw("failed to load sessions for restart notification", "error", err)
		return
	}

	for userID, sess := range sessions {
		if !sess.Ready() {
			continue
		}

		direction := fmt.Sprintf("%s ➡️ %s",
			strings.ToUpper(sess.Direction.Source),
			strings.ToUpper(sess.Direction.Target))
		text := fmt.Sprintf(restartNotice, modeLabels[sess.Mode], direction)

		if _, err := h.transport.SendMessage(ctx, userID, text, mainMenuKeyboard()); err != nil {
			h.logger.Errorw("failed to notify user after restart, dropping session", "userID", userID, "error", err)
			if err := h.sessions.Delete(ctx, userID); err != nil {
				h.logger.Errorw("failed to drop unreachable user's session", "userID", userID, "error", err)
			}
		}
	}
}
