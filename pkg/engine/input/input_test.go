package input

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Intent
	}{
		{"", Intent{Action: ActionNone}},
		{"   ", Intent{Action: ActionNone}},
		{"\t\n", Intent{Action: ActionNone}},
		{"exit", Intent{Action: ActionQuit}},
		{"  EXIT ", Intent{Action: ActionQuit}},
		{"Exit", Intent{Action: ActionQuit}},
		{"show", Intent{Action: ActionReveal}},
		{"SHOW", Intent{Action: ActionReveal}},
		{" sukkur ", Intent{Action: ActionGuess, Text: "sukkur"}},
		{"exit now", Intent{Action: ActionGuess, Text: "exit now"}},
	}

	for _, tt := range tests {
		got := Classify(DeviceScript, tt.in)
		if got != tt.want {
			t.Errorf("Classify(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestActionIsTerminal(t *testing.T) {
	if !ActionQuit.IsTerminal() || !ActionReveal.IsTerminal() {
		t.Error("quit and reveal should be terminal")
	}
	if ActionGuess.IsTerminal() || ActionNone.IsTerminal() {
		t.Error("guess and none should not be terminal")
	}
}

func TestCommandWords(t *testing.T) {
	got := strings.Join(CommandWords(), ",")
	if got != "exit,show" {
		t.Errorf("CommandWords() = %q, want %q", got, "exit,show")
	}
}

func TestLineReader(t *testing.T) {
	r := NewLineReader(strings.NewReader("karachi\r\n\nsukkur"))

	want := []string{"karachi", "", "sukkur"}
	for i, w := range want {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine #%d: unexpected error %v", i, err)
		}
		if got != w {
			t.Errorf("ReadLine #%d = %q, want %q", i, got, w)
		}
	}

	if _, err := r.ReadLine(); !errors.Is(err, ErrClosed) {
		t.Errorf("ReadLine after EOF error = %v, want ErrClosed", err)
	}
}

func TestLineEditor(t *testing.T) {
	e := NewLineEditor(8)

	e.Insert([]rune("Sukk\tur")...)
	if got := e.String(); got != "Sukkur" {
		t.Errorf("String() = %q, want %q", got, "Sukkur")
	}

	e.Backspace()
	e.Backspace()
	if got := e.String(); got != "Sukk" {
		t.Errorf("String() after 2 backspaces = %q, want %q", got, "Sukk")
	}

	e.Insert([]rune("ur Extra")...)
	if got := e.Take(); got != "Sukkur E" {
		t.Errorf("Take() = %q, want %q", got, "Sukkur E")
	}
	if got := e.String(); got != "" {
		t.Errorf("String() after Take = %q, want empty", got)
	}

	e.Backspace()
	if got := e.String(); got != "" {
		t.Errorf("Backspace on empty editor gave %q", got)
	}
}

func TestLineEditorDefaultLimit(t *testing.T) {
	e := NewLineEditor(0)
	e.Insert([]rune(strings.Repeat("a", DefaultEditorLimit+10))...)
	if got := len(e.String()); got != DefaultEditorLimit {
		t.Errorf("len = %d, want %d", got, DefaultEditorLimit)
	}
}
