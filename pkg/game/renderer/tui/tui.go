// Package tui draws the quiz on a character canvas in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"

	"mapquiz/pkg/engine/input"
	"mapquiz/pkg/engine/terminal"
	"mapquiz/pkg/engine/world"
	"mapquiz/pkg/game/i18n"
	"mapquiz/pkg/game/renderer"
)

// Lines reserved under the canvas for the prompt title, prompt text and
// the input line.
const promptLines = 4

// Minimum canvas size
const (
	MinRows = 10
	MinCols = 30
)

// Options configure a terminal surface
type Options struct {
	In  io.Reader
	Out io.Writer

	// Width and Height are the map extent in map units
	Width  float64
	Height float64

	// Background is shaded onto the canvas by ShowMap; nil draws nothing
	Background image.Image

	// Rows and Cols fix the canvas size; zero sizes it from the terminal
	Rows int
	Cols int
}

type label struct {
	text  string
	at    world.Point
	style renderer.TextStyle
}

// TUIRenderer is the terminal-based renderer.Surface
type TUIRenderer struct {
	mu sync.Mutex

	out    io.Writer
	in     *input.LineReader
	bounds world.Bounds
	opts   Options

	styles map[renderer.TextStyle]color.Style

	mapShown bool
	score    string
	labels   []label

	flashes    map[uuid.UUID]label
	flashOrder []uuid.UUID
}

var _ renderer.Surface = (*TUIRenderer)(nil)

// New creates a new TUI renderer
func New(opts Options) *TUIRenderer {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Width <= 0 {
		opts.Width = 700
	}
	if opts.Height <= 0 {
		opts.Height = 700
	}

	return &TUIRenderer{
		out:     opts.Out,
		in:      input.NewLineReader(opts.In),
		bounds:  world.CenteredBounds(opts.Width, opts.Height),
		opts:    opts,
		flashes: make(map[uuid.UUID]label),
		styles: map[renderer.TextStyle]color.Style{
			renderer.StyleTitle:   {color.OpBold},
			renderer.StyleCorrect: {color.FgBlue},
			renderer.StyleMissed:  {color.FgRed},
			renderer.StyleWarning: {color.FgYellow},
			renderer.StyleDenied:  {color.FgRed, color.OpBold},
			renderer.StyleVictory: {color.FgGreen, color.OpBold},
			renderer.StyleSummary: {color.FgYellow, color.OpBold},
			renderer.StyleSubtle:  {color.FgGray},
		},
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// Run calls play on the current goroutine; the terminal has no event loop
// of its own. After a finished session it waits for Enter before returning.
func (t *TUIRenderer) Run(ctx context.Context, play func(ctx context.Context) error) error {
	if err := play(ctx); err != nil {
		t.Render()
		return err
	}

	t.Render()
	fmt.Fprintln(t.out, t.StyleText(i18n.T("PRESS_ENTER_TO_EXIT"), renderer.StyleSubtle))

	if _, err := t.readLine(ctx); err != nil && !errors.Is(err, renderer.ErrInputClosed) {
		return err
	}
	return nil
}

// ShowMap enables the background
func (t *TUIRenderer) ShowMap() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mapShown = true
}

// ShowScore replaces the score banner
func (t *TUIRenderer) ShowScore(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.score = text
}

// WriteText adds a persistent label
func (t *TUIRenderer) WriteText(text string, at world.Point, style renderer.TextStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.labels = append(t.labels, label{text: text, at: at, style: style})
}

// Flash adds a label that a timer removes after d. The timer never
// writes to the terminal, so the message leaves the screen with the next
// frame, which Prompt draws.
func (t *TUIRenderer) Flash(text string, at world.Point, style renderer.TextStyle, d time.Duration) {
	id := uuid.New()

	t.mu.Lock()
	t.flashes[id] = label{text: text, at: at, style: style}
	t.flashOrder = append(t.flashOrder, id)
	t.mu.Unlock()

	time.AfterFunc(d, func() { t.clearFlash(id) })
}

// clearFlash drops one flash. It is a no-op if the entry is already gone.
func (t *TUIRenderer) clearFlash(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.flashes[id]; !ok {
		return
	}
	delete(t.flashes, id)
	for i, other := range t.flashOrder {
		if other == id {
			t.flashOrder = append(t.flashOrder[:i], t.flashOrder[i+1:]...)
			break
		}
	}
}

// Flashes returns the text of the flashes still on screen, oldest first
func (t *TUIRenderer) Flashes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(t.flashOrder))
	for _, id := range t.flashOrder {
		out = append(out, t.flashes[id].text)
	}
	return out
}

// Prompt redraws the frame, prints the prompt and reads one line
func (t *TUIRenderer) Prompt(ctx context.Context, title, prompt string) (string, error) {
	t.Render()

	fmt.Fprintln(t.out, t.StyleText(title, renderer.StyleTitle))
	fmt.Fprintln(t.out, prompt)
	fmt.Fprint(t.out, "> ")

	return t.readLine(ctx)
}

func (t *TUIRenderer) readLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		line, err := t.in.ReadLine()
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if errors.Is(r.err, input.ErrClosed) {
			return "", renderer.ErrInputClosed
		}
		return r.line, r.err
	}
}

// GetViewportSize returns the canvas dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	if t.opts.Rows > 0 && t.opts.Cols > 0 {
		return t.opts.Rows, t.opts.Cols
	}

	termWidth, termHeight := terminal.SizeOf(t.out)
	cols = termWidth
	rows = termHeight - promptLines

	if cols < MinCols {
		cols = MinCols
	}
	if rows < MinRows {
		rows = MinRows
	}
	return rows, cols
}

// Frame builds the current frame as lines of text
func (t *TUIRenderer) Frame() []string {
	rows, cols := t.GetViewportSize()
	c := newCanvas(t.bounds, rows, cols)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mapShown {
		c.drawImage(t.opts.Background)
	}
	if t.score != "" {
		c.write(t.score, renderer.ScorePos, renderer.StyleTitle)
	}
	for _, l := range t.labels {
		c.write(l.text, l.at, l.style)
	}
	for _, id := range t.flashOrder {
		l := t.flashes[id]
		c.write(l.text, l.at, l.style)
	}

	return c.lines(t.StyleText)
}

// Render writes the current frame, clearing the screen first on a terminal
func (t *TUIRenderer) Render() {
	if terminal.IsTerminal(t.out) {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
	fmt.Fprintln(t.out, strings.Join(t.Frame(), "\n"))
}
