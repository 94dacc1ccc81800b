package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update handles input and window lifecycle (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logger.Info("main window opened (%dx%d)", w, h)
	}

	e.mu.RLock()
	closing := e.closing
	cancel := e.cancel
	e.mu.RUnlock()

	if closing {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		cancel()
		return ebiten.Termination
	}

	e.pruneCallouts(time.Now().UnixMilli())
	e.handlePromptKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if e.handleClick() {
			return ebiten.Termination
		}
	}

	return nil
}

// handlePromptKeys feeds typed text into the pending prompt. Enter submits
// the answer, Escape submits an empty one.
func (e *EbitenRenderer) handlePromptKeys() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.prompt == nil {
		return
	}

	e.editor.Insert(ebiten.AppendInputChars(nil)...)

	if repeating(ebiten.KeyBackspace) {
		e.editor.Backspace()
	}

	var answer string
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		answer = e.editor.Take()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		e.editor.Reset()
	default:
		return
	}

	// Non-blocking send to input channel
	select {
	case e.inputChan <- answer:
		e.prompt = nil
	default:
		// Channel full, drop input
	}
}

// repeating reports a key press on its first tick and then at a steady
// rate while held
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// handleClick logs the map coordinates under the cursor. It returns true
// when the session is over and the click should close the window.
func (e *EbitenRenderer) handleClick() bool {
	x, y := ebiten.CursorPosition()
	p := e.bounds.FromScreen(float64(x), float64(y), e.opts.Width, e.opts.Height)
	e.logger.Info("Coordinates: (%.0f, %.0f)", p.X, p.Y)

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.finished
}
