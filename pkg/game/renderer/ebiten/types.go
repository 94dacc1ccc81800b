package ebiten

import (
	"image"
	"sync"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "mapquiz/pkg/engine/input"
	"mapquiz/pkg/engine/world"
	"mapquiz/pkg/game/renderer"
	"mapquiz/pkg/log"
)

// Options configure the window
type Options struct {
	Title      string
	Width      int
	Height     int
	Background image.Image
	Logger     *log.Logger
}

// label is persistent text anchored on a map point
type label struct {
	Text  string
	Pos   world.Point
	Style renderer.TextStyle
}

// Callout represents a transient message that expires
type Callout struct {
	ID        uuid.UUID
	Pos       world.Point
	Message   string
	Style     renderer.TextStyle
	ExpiresAt int64 // Unix milliseconds
	CreatedAt int64 // Unix milliseconds
}

// promptState is the prompt the game loop is currently waiting on
type promptState struct {
	title  string
	prompt string
}

// renderSnapshot holds a consistent copy of what Draw needs, so drawing
// never holds the state lock while issuing draw calls.
type renderSnapshot struct {
	mapShown bool
	score    string
	labels   []label
	callouts []Callout
	prompt   *promptState
	answer   string
	finished bool
}

// EbitenRenderer is the Ebiten-based renderer.Surface
type EbitenRenderer struct {
	opts   Options
	bounds world.Bounds
	logger *log.Logger

	// Font sources for text rendering
	regularFontSource *text.GoTextFaceSource
	boldFontSource    *text.GoTextFaceSource
	italicFontSource  *text.GoTextFaceSource
	faces             map[renderer.TextStyle]*text.GoTextFace
	promptFace        *text.GoTextFace

	// Background image, uploaded to the GPU on first Draw
	background      image.Image
	backgroundImage *ebiten.Image

	mu       sync.RWMutex
	mapShown bool
	score    string
	labels   []label
	callouts []Callout
	prompt   *promptState
	editor   *engineinput.LineEditor
	finished bool
	closing  bool

	// Answers from Update to the waiting Prompt call
	inputChan chan string

	// cancel stops the session when the window closes
	cancel func()

	windowOpenedLogged bool
}
