package telegram

// Update is one inbound event from getUpdates.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message is an inbound chat message. Exactly one of Text, Voice, Video or
// Photo is usually set.
type Message struct {
	MessageID int         `json:"message_id"`
	From      *User       `json:"from,omitempty"`
	Chat      Chat        `json:"chat"`
	Text      string      `json:"text,omitempty"`
	Voice     *Voice      `json:"voice,omitempty"`
	Video     *Video      `json:"video,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
}

type User struct {
	ID int64 `json:"id"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type Voice struct {
	FileID   string `json:"file_id"`
	Duration int    `json:"duration"`
	FileSize int64  `json:"file_size,omitempty"`
}

type Video struct {
	FileID   string `json:"file_id"`
	Duration int    `json:"duration"`
	FileSize int64  `json:"file_size,omitempty"`
}

// PhotoSize is one resolution of a photo; the API sends sizes smallest first.
type PhotoSize struct {
	FileID   string `json:"file_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FileSize int64  `json:"file_size,omitempty"`
}

// File is the getFile result used to build a download URL.
type File struct {
	FileID   string `json:"file_id"`
	FilePath string `json:"file_path,omitempty"`
	FileSize int64  `json:"file_size,omitempty"`
}

// ReplyKeyboardMarkup renders a custom reply keyboard under the input field.
type ReplyKeyboardMarkup struct {
	Keyboard       [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard bool               `json:"resize_keyboard,omitempty"`
}

type KeyboardButton struct {
	Text string `json:"text"`
}

// NewReplyKeyboard lays out button labels into rows of the given width, like
// a keyboard builder's adjust step.
func NewReplyKeyboard(perRow int, labels ...string) *ReplyKeyboardMarkup {
	if perRow < 1 {
		perRow = 1
	}
	kb := &ReplyKeyboardMarkup{ResizeKeyboard: true}
	var row []KeyboardButton
	for _, label := range labels {
		row = append(row, KeyboardButton{Text: label})
		if len(row) == perRow {
			kb.Keyboard = append(kb.Keyboard, row)
			row = nil
		}
	}
	if len(row) > 0 {
		kb.Keyboard = append(kb.Keyboard, row)
	}
	return kb
}

// AddRow appends one full-width row of buttons.
func (k *ReplyKeyboardMarkup) AddRow(labels ...string) *ReplyKeyboardMarkup {
	var row []KeyboardButton
	for _, label := range labels {
		row = append(row, KeyboardButton{Text: label})
	}
	k.Keyboard = append(k.Keyboard, row)
	return k
}
