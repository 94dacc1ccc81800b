package renderer

import (
	"context"
	"errors"
	"time"

	"mapquiz/pkg/engine/world"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleCorrect
	StyleMissed
	StyleWarning
	StyleDenied
	StyleVictory
	StyleSummary
	StyleSubtle
)

// Fixed positions of the non-entity text, in map units
var (
	ScorePos        = world.Pt(0, 320)
	InstructionsPos = world.Pt(0, -320)
	FlashPos        = world.Pt(0, -260)
	SummaryPos      = world.Pt(0, -280)
	VictoryPos      = world.Pt(0, 0)
)

// ErrInputClosed is returned by Prompt once no more answers can arrive
var ErrInputClosed = errors.New("input closed")

// Surface defines what a quiz session needs from a rendering backend.
// Implementations include a terminal renderer and an Ebiten window.
//
// Drawing methods may be called from any goroutine and never block on the
// player. Prompt is the only blocking call.
type Surface interface {
	// Run hosts the backend's main loop and calls play on a separate
	// goroutine. It returns once play has returned and the backend has
	// shut down.
	Run(ctx context.Context, play func(ctx context.Context) error) error

	// ShowMap draws the background map image or its placeholder
	ShowMap()

	// ShowScore replaces the score banner
	ShowScore(text string)

	// WriteText draws persistent text centred on a map point
	WriteText(text string, at world.Point, style TextStyle)

	// Flash draws text that is removed again after d
	Flash(text string, at world.Point, style TextStyle, d time.Duration)

	// Prompt asks the player for a line of text. A cancelled prompt returns
	// an empty string and no error.
	Prompt(ctx context.Context, title, prompt string) (string, error)
}
