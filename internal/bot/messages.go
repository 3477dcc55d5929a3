package bot

import "github.com/descarado10/Bot-translator/internal/session"

// User-visible texts, kept in Uzbek as the bot's audience expects.
const (
	msgWelcome         = "Assalomu alaykum! Kerakli bo'limni tanlang:"
	msgChooseDirection = "Endi tarjima yo'nalishini tanlang:"
	msgShowDirections  = "Tarjima yo'nalishini tanlang:"
	msgMainMenu        = "Bosh menyu"

	msgWrongCommand = "Noto'g'ri buyruq. Iltimos, bosh menyudan kerakli bo'limni tanlang."
	msgVoiceGuard   = "Ovozli tarjima uchun avval menyudan '🎙️ Ovoz Tarjimasi' bo'limini tanlang."
	msgVideoGuard   = "Video tarjimasi uchun avval menyudan '🎬 Video Tarjimasi' bo'limini tanlang."
	msgPhotoGuard   = "Rasm tarjimasi uchun avval menyudan '🖼️ Rasmdan Tarjima' bo'limini tanlang."

	msgVideoTooBig = "Kechirasiz, yuborgan video hajmi 20 MB dan katta."

	msgFileReceived = "✅ Fayl qabul qilindi. Yuklab olinmoqda..."
	msgOCRStage     = "🖼️ Rasmdagi matn aniqlanmoqda..."
	msgAudioStage   = "🎵 Ovoz matnga o'girilmoqda..."
	msgTranslating  = "⏳ Matn tarjima qilinmoqda..."

	msgTranslateFailed = "😔 Kechirasiz, tarjima qilishda xatolik yuz berdi."
	msgRecognizeFailed = "❌ Matnni aniqlab bo'lmadi."
	msgOCRUnavailable  = "OCR xizmati ishlamayapti."
)

var instructionByMode = map[session.Mode]string{
	session.ModeText:  "Tarjima uchun matn yuboring:",
	session.ModeVoice: "Tarjima uchun ovozli xabar yuboring:",
	session.ModeVideo: "Tarjima uchun video (20 MB gacha) yuboring:",
	session.ModePhoto: "Tarjima uchun rasm yuboring:",
}
