package ebiten

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "mapquiz/pkg/engine/input"
	"mapquiz/pkg/engine/world"
	"mapquiz/pkg/game/renderer"
	"mapquiz/pkg/log"
)

var _ renderer.Surface = (*EbitenRenderer)(nil)

// New creates a new Ebiten renderer. Fonts are parsed here so a broken
// build fails before a window opens.
func New(opts Options) (*EbitenRenderer, error) {
	if opts.Width <= 0 {
		opts.Width = 700
	}
	if opts.Height <= 0 {
		opts.Height = 700
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Background == nil {
		opts.Background = renderer.Placeholder()
	}

	e := &EbitenRenderer{
		opts:       opts,
		bounds:     world.CenteredBounds(float64(opts.Width), float64(opts.Height)),
		logger:     opts.Logger,
		background: opts.Background,
		editor:     engineinput.NewLineEditor(engineinput.DefaultEditorLimit),
		inputChan:  make(chan string, 1),
		cancel:     func() {},
	}

	if err := e.loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	return e, nil
}

// Run opens the window and runs play alongside Ebiten's loop. Closing the
// window cancels play's context.
func (e *EbitenRenderer) Run(ctx context.Context, play func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()

	ebiten.SetWindowSize(e.opts.Width, e.opts.Height)
	ebiten.SetWindowTitle(e.opts.Title)
	ebiten.SetWindowClosingHandled(true)

	playErr := make(chan error, 1)
	go func() {
		err := play(ctx)
		e.mu.Lock()
		e.finished = true
		e.mu.Unlock()
		if err != nil && !errors.Is(err, context.Canceled) {
			// Nothing left for the player to do
			cancel()
		}
		playErr <- err
	}()

	go func() {
		<-ctx.Done()
		e.requestClose()
	}()

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		cancel()
		<-playErr
		return fmt.Errorf("run window: %w", err)
	}

	cancel()
	return <-playErr
}

// requestClose makes the next Update end the loop
func (e *EbitenRenderer) requestClose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closing = true
}

// ShowMap enables the background image
func (e *EbitenRenderer) ShowMap() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mapShown = true
}

// ShowScore replaces the score banner
func (e *EbitenRenderer) ShowScore(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.score = text
}

// WriteText adds a persistent label
func (e *EbitenRenderer) WriteText(text string, at world.Point, style renderer.TextStyle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.labels = append(e.labels, label{Text: text, Pos: at, Style: style})
}

// Flash shows a callout that is removed after d
func (e *EbitenRenderer) Flash(text string, at world.Point, style renderer.TextStyle, d time.Duration) {
	id := e.AddCallout(at, text, style, d)
	time.AfterFunc(d, func() { e.RemoveCallout(id) })
}

// Prompt shows the prompt panel and waits for Enter or Escape
func (e *EbitenRenderer) Prompt(ctx context.Context, title, prompt string) (string, error) {
	e.mu.Lock()
	e.prompt = &promptState{title: title, prompt: prompt}
	e.editor.Reset()
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.prompt = nil
		e.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case answer := <-e.inputChan:
		return answer, nil
	}
}
