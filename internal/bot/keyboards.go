package bot

import (
	"github.com/descarado10/Bot-translator/internal/session"
	"github.com/descarado10/Bot-translator/internal/telegram"
)

// Main menu button labels, also used to resolve the chosen mode.
const (
	btnTextMode  = "✍️ Matn Tarjimasi"
	btnVoiceMode = "🎙️ Ovoz Tarjimasi"
	btnVideoMode = "🎬 Video Tarjimasi"
	btnPhotoMode = "🖼️ Rasmdan Tarjima"

	btnBackToMenu = "⬅️ Bosh menyu"
	btnHomeMenu   = "🏠 Bosh menyu"
	btnBack       = "⬅️ Orqaga"
)

var mainMenuButtons = []string{btnTextMode, btnVoiceMode, btnVideoMode, btnPhotoMode}

var modeByButton = map[string]session.Mode{
	btnTextMode:  session.ModeText,
	btnVoiceMode: session.ModeVoice,
	btnVideoMode: session.ModeVideo,
	btnPhotoMode: session.ModePhoto,
}

// modeLabels is the reverse mapping used in restart notifications.
var modeLabels = map[session.Mode]string{
	session.ModeText:  "✍️ Matn tarjimasi",
	session.ModeVoice: "🎙️ Ovoz tarjimasi",
	session.ModeVideo: "🎬 Video tarjimasi",
	session.ModePhoto: "🖼️ Rasm tarjimasi",
}

// directionButtons lists the direction keyboard in display order.
var directionButtons = []string{
	"🇺🇿 UZ-RU 🇷🇺", "🇷🇺 RU-UZ 🇺🇿",
	"🇺🇿 UZ-EN 🇬🇧", "🇬🇧 EN-UZ 🇺🇿",
	"🇷🇺 RU-EN 🇬🇧", "🇬🇧 EN-RU 🇷🇺",
}

var directionByButton = map[string]session.Direction{
	"🇺🇿 UZ-RU 🇷🇺": {Source: "uz", Target: "ru"},
	"🇷🇺 RU-UZ 🇺🇿": {Source: "ru", Target: "uz"},
	"🇺🇿 UZ-EN 🇬🇧": {Source: "uz", Target: "en"},
	"🇬🇧 EN-UZ 🇺🇿": {Source: "en", Target: "uz"},
	"🇷🇺 RU-EN 🇬🇧": {Source: "ru", Target: "en"},
	"🇬🇧 EN-RU 🇷🇺": {Source: "en", Target: "ru"},
}

func mainMenuKeyboard() *telegram.ReplyKeyboardMarkup {
	return telegram.NewReplyKeyboard(2, mainMenuButtons...)
}

func directionsKeyboard() *telegram.ReplyKeyboardMarkup {
	return telegram.NewReplyKeyboard(2, directionButtons...).AddRow(btnBackToMenu)
}

func workKeyboard() *telegram.ReplyKeyboardMarkup {
	return telegram.NewReplyKeyboard(2, btnBack, btnHomeMenu)
}
