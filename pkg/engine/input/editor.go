package input

import "unicode"

// DefaultEditorLimit caps the length of a typed answer
const DefaultEditorLimit = 64

// LineEditor accumulates characters typed into a window prompt. It is not
// safe for concurrent use.
type LineEditor struct {
	buf   []rune
	limit int
}

// NewLineEditor creates an editor holding at most limit runes
func NewLineEditor(limit int) *LineEditor {
	if limit <= 0 {
		limit = DefaultEditorLimit
	}
	return &LineEditor{limit: limit}
}

// Insert appends printable runes; control characters and anything past the
// limit are dropped.
func (l *LineEditor) Insert(rs ...rune) {
	for _, r := range rs {
		if unicode.IsControl(r) || len(l.buf) >= l.limit {
			continue
		}
		l.buf = append(l.buf, r)
	}
}

// Backspace removes the last rune
func (l *LineEditor) Backspace() {
	if len(l.buf) > 0 {
		l.buf = l.buf[:len(l.buf)-1]
	}
}

// String returns the current text
func (l *LineEditor) String() string {
	return string(l.buf)
}

// Take returns the current text and empties the editor
func (l *LineEditor) Take() string {
	s := string(l.buf)
	l.Reset()
	return s
}

// Reset empties the editor
func (l *LineEditor) Reset() {
	l.buf = l.buf[:0]
}
