package ebiten

import (
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mapquiz/pkg/engine/world"
	"mapquiz/pkg/game/i18n"
	"mapquiz/pkg/game/renderer"
)

// clickHintPos sits under the instructions line
var clickHintPos = world.Pt(0, -340)

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.opts.Width, e.opts.Height
}

// takeSnapshot copies the drawable state under the read lock
func (e *EbitenRenderer) takeSnapshot() renderSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := renderSnapshot{
		mapShown: e.mapShown,
		score:    e.score,
		labels:   append([]label(nil), e.labels...),
		callouts: append([]Callout(nil), e.callouts...),
		finished: e.finished,
	}
	if e.prompt != nil {
		p := *e.prompt
		snap.prompt = &p
		snap.answer = e.editor.String()
	}
	return snap
}

// Draw renders the frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	snap := e.takeSnapshot()

	screen.Fill(colorBackground)

	if snap.mapShown {
		e.drawBackground(screen)
	}
	if snap.score != "" {
		e.drawLabel(screen, snap.score, renderer.ScorePos, renderer.StyleTitle, 1)
	}
	for _, l := range snap.labels {
		e.drawLabel(screen, l.Text, l.Pos, l.Style, 1)
	}

	now := time.Now().UnixMilli()
	for _, c := range snap.callouts {
		e.drawLabel(screen, c.Message, c.Pos, c.Style, calloutAlpha(c, now))
	}

	if snap.prompt != nil {
		e.drawPrompt(screen, snap.prompt, snap.answer)
	}
	if snap.finished {
		e.drawLabel(screen, i18n.T("CLICK_TO_EXIT"), clickHintPos, renderer.StyleSubtle, 1)
	}
}

// drawBackground draws the map image centred on the origin
func (e *EbitenRenderer) drawBackground(screen *ebiten.Image) {
	if e.backgroundImage == nil {
		e.backgroundImage = ebiten.NewImageFromImage(e.background)
	}

	b := e.backgroundImage.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(e.opts.Width-b.Dx())/2,
		float64(e.opts.Height-b.Dy())/2,
	)
	screen.DrawImage(e.backgroundImage, op)
}

// drawLabel draws text centred on a map point
func (e *EbitenRenderer) drawLabel(screen *ebiten.Image, str string, at world.Point, style renderer.TextStyle, alpha float32) {
	if alpha <= 0 {
		return
	}

	x, y := e.bounds.ToScreen(at, e.opts.Width, e.opts.Height)

	col := colorFor(style)
	if style == renderer.StyleVictory {
		col = pulsingColor(col, time.Now().UnixMilli())
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(alpha)

	text.Draw(screen, str, e.faceFor(style), op)
}

// drawPrompt draws the input panel with title, prompt text and answer box
func (e *EbitenRenderer) drawPrompt(screen *ebiten.Image, p *promptState, answer string) {
	x := float32(promptPanelX)
	y := float32(promptPanelY)
	w := float32(promptPanelWidth)
	h := float32(promptPanelHeight)

	vector.DrawFilledRect(screen, x, y, w, h, colorPanelBackground, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colorPanelBorder, false)

	titleFace := e.faceFor(renderer.StyleTitle)
	e.drawText(screen, p.title, float64(x+promptPadding), float64(y+promptPadding), colorText, &text.GoTextFace{Source: titleFace.Source, Size: fontSizePrompt})

	// The prompt text is long; wrap it at the panel width
	lineY := float64(y+promptPadding) + fontSizePrompt*1.4
	for _, line := range wrap(p.prompt, e.promptFace, float64(w-2*promptPadding)) {
		e.drawText(screen, line, float64(x+promptPadding), lineY, colorSubtle, e.promptFace)
		lineY += fontSizePrompt * 1.2
	}

	boxY := y + h - promptPadding - fontSizePrompt*1.6
	boxH := float32(fontSizePrompt * 1.6)
	vector.DrawFilledRect(screen, x+promptPadding, boxY, w-2*promptPadding, boxH, colorInputBackground, false)
	vector.StrokeRect(screen, x+promptPadding, boxY, w-2*promptPadding, boxH, 1, colorPanelBorder, false)

	cursor := ""
	if (time.Now().UnixMilli()/500)%2 == 0 {
		cursor = "|"
	}
	e.drawText(screen, answer+cursor, float64(x+2*promptPadding), float64(boxY)+2, colorText, e.promptFace)
}

// drawText draws left-aligned text with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// wrap breaks s into lines no wider than width
func wrap(s string, face *text.GoTextFace, width float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if w, _ := text.Measure(candidate, face, 0); w > width && line != "" {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func colorFor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleCorrect:
		return colorCorrect
	case renderer.StyleMissed, renderer.StyleDenied:
		return colorMissed
	case renderer.StyleWarning, renderer.StyleSummary:
		return colorWarning
	case renderer.StyleVictory:
		return colorVictory
	case renderer.StyleSubtle:
		return colorSubtle
	default:
		return colorText
	}
}
