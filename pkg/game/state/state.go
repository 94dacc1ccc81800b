package state

import (
	"github.com/zyedidia/generic/mapset"
)

// Status is the lifecycle position of a quiz session
type Status int

// Session statuses. Won and Ended are terminal.
const (
	StatusActive Status = iota
	StatusWon
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further guesses are accepted
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusEnded
}

// Game represents the mutable state of one quiz session
type Game struct {
	Total int

	Found mapset.Set[string]

	Score int

	Status Status

	// FoundOrder lists found names in the order they were guessed
	FoundOrder []string
}

// NewGame creates a new game instance for a catalog of total entities
func NewGame(total int) *Game {
	return &Game{
		Total:      total,
		Found:      mapset.New[string](),
		FoundOrder: make([]string, 0, total),
		Status:     StatusActive,
	}
}

// MarkFound records a correct guess. It returns false, leaving the state
// untouched, when name was already found or the game is over.
func (g *Game) MarkFound(name string) bool {
	if g.Status.IsTerminal() || g.Found.Has(name) {
		return false
	}

	g.Found.Put(name)
	g.FoundOrder = append(g.FoundOrder, name)
	g.Score = g.Found.Size()

	if g.Complete() {
		g.Status = StatusWon
	}
	return true
}

// HasFound checks whether name has been guessed
func (g *Game) HasFound(name string) bool {
	return g.Found.Has(name)
}

// Complete reports whether every entity has been found
func (g *Game) Complete() bool {
	return g.Total > 0 && g.Score >= g.Total
}

// End moves an active game to StatusEnded. Terminal states are absorbing.
func (g *Game) End() bool {
	if g.Status.IsTerminal() {
		return false
	}
	g.Status = StatusEnded
	return true
}

// Missed returns the names from order that have not been found, keeping
// their relative order.
func (g *Game) Missed(order []string) []string {
	var missed []string
	for _, name := range order {
		if !g.Found.Has(name) {
			missed = append(missed, name)
		}
	}
	return missed
}
