package session

// Mode identifies the kind of input a user has chosen to translate.
type Mode string

const (
	ModeText  Mode = "text"
	ModeVoice Mode = "voice"
	ModeVideo Mode = "video"
	ModePhoto Mode = "photo"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeText, ModeVoice, ModeVideo, ModePhoto:
		return true
	}
	return false
}

// Direction is an ordered source/target language pair (ISO 639-1 codes).
type Direction struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Session is the per-user translation session. A session is created when the
// user picks a mode and becomes actionable once a direction is set. Direction
// is only meaningful while Mode is set.
type Session struct {
	Mode      Mode       `json:"mode,omitempty"`
	Direction *Direction `json:"direction,omitempty"`
}

// Ready reports whether the session has both a mode and a direction, i.e. it
// can accept input of the matching modality.
func (s Session) Ready() bool {
	return s.Mode.Valid() && s.Direction != nil
}

// Accepts reports whether input of the given modality is valid for the
// session: the session must be ready and the modality must match its mode.
func (s Session) Accepts(m Mode) bool {
	return s.Ready() && s.Mode == m
}
