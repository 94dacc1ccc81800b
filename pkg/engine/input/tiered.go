package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceTerminal
	DeviceWindow
	DeviceScript
)

// Action represents what the player asked for with one line of text.
type Action int

const (
	ActionNone   Action = iota // blank line or cancelled prompt
	ActionQuit                 // end the session and reveal what was missed
	ActionReveal               // same as quit, kept separate for logging
	ActionGuess                // anything else is a guess at an entity name
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Text carries the trimmed guess for ActionGuess and is empty otherwise.
type Intent struct {
	Action Action
	Text   string
}

// RawInput is the 1st‑layer event: one line exactly as the surface returned it.
type RawInput struct {
	Device    Device
	Text      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation: surrounding whitespace is
// gone and Key holds the lower-cased form used for binding lookups.
type DebouncedInput struct {
	Device Device
	Text   string
	Key    string
}

// NewDebouncedInput trims a raw line and derives its binding key.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	text := strings.TrimSpace(raw.Text)
	return DebouncedInput{
		Device: raw.Device,
		Text:   text,
		Key:    strings.ToLower(text),
	}
}

// bindings maps reserved command words to actions (3rd-layer bindings).
// Commands are checked before any entity lookup, so a command word always
// wins over an entity that happens to share its name.
var bindings = map[string]Action{
	"exit": ActionQuit,
	"show": ActionReveal,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if ev.Text == "" {
		return Intent{Action: ActionNone}
	}
	if act, ok := bindings[ev.Key]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionGuess, Text: ev.Text}
}

// Classify runs a raw line through every layer.
func Classify(device Device, text string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{
		Device:    device,
		Text:      text,
		Timestamp: time.Now(),
	}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionReveal:
		return "Reveal"
	case ActionGuess:
		return "Guess"
	default:
		return "None"
	}
}

// IsTerminal reports whether the action ends the session.
func (a Action) IsTerminal() bool {
	return a == ActionQuit || a == ActionReveal
}

// CommandWords returns the reserved words, sorted.
func CommandWords() []string {
	words := make([]string, 0, len(bindings))
	for code := range bindings {
		words = append(words, code)
	}
	sort.Strings(words)
	return words
}
