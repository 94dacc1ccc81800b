package state

import (
	"testing"
)

func TestMarkFound(t *testing.T) {
	g := NewGame(2)

	if !g.MarkFound("Karachi") {
		t.Fatal("MarkFound(Karachi) = false, want true")
	}
	if g.MarkFound("Karachi") {
		t.Error("second MarkFound(Karachi) = true, want false")
	}
	if g.Score != 1 || g.Found.Size() != 1 {
		t.Errorf("Score = %d, Found.Size() = %d, want 1, 1", g.Score, g.Found.Size())
	}
	if g.Status != StatusActive {
		t.Errorf("Status = %v, want %v", g.Status, StatusActive)
	}

	g.MarkFound("Sukkur")
	if g.Status != StatusWon {
		t.Errorf("Status = %v, want %v", g.Status, StatusWon)
	}
	if !g.Complete() {
		t.Error("Complete() = false, want true")
	}
}

func TestTerminalStatesAreAbsorbing(t *testing.T) {
	g := NewGame(3)
	g.MarkFound("Karachi")

	if !g.End() {
		t.Fatal("End() on active game = false, want true")
	}
	if g.End() {
		t.Error("End() on ended game = true, want false")
	}
	if g.MarkFound("Sukkur") {
		t.Error("MarkFound after End = true, want false")
	}
	if g.Score != 1 {
		t.Errorf("Score = %d, want 1", g.Score)
	}
	if g.Status != StatusEnded {
		t.Errorf("Status = %v, want %v", g.Status, StatusEnded)
	}
}

func TestMissedKeepsOrder(t *testing.T) {
	g := NewGame(4)
	g.MarkFound("Sukkur")
	g.MarkFound("Badin")

	got := g.Missed([]string{"Karachi", "Sukkur", "Thatta", "Badin"})
	want := []string{"Karachi", "Thatta"}

	if len(got) != len(want) {
		t.Fatalf("Missed() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Missed()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFoundOrder(t *testing.T) {
	g := NewGame(3)
	g.MarkFound("Thatta")
	g.MarkFound("Karachi")
	g.MarkFound("Thatta")

	if len(g.FoundOrder) != 2 || g.FoundOrder[0] != "Thatta" || g.FoundOrder[1] != "Karachi" {
		t.Errorf("FoundOrder = %v, want [Thatta Karachi]", g.FoundOrder)
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusActive: "active",
		StatusWon:    "won",
		StatusEnded:  "ended",
		Status(42):   "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
