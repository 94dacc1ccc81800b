// Package ebiten provides an Ebiten-based 2D graphical renderer for the map quiz.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{0xe8, 0xf4, 0xf8, 255} // Pale blue, #E8F4F8
	colorText            = color.RGBA{0, 0, 0, 255}
	colorCorrect         = color.RGBA{0, 0, 139, 255}   // Dark blue
	colorMissed          = color.RGBA{255, 0, 0, 255}   // Red
	colorWarning         = color.RGBA{255, 165, 0, 255} // Orange
	colorVictory         = color.RGBA{0, 128, 0, 255}   // Green
	colorSubtle          = color.RGBA{80, 80, 80, 255}  // Dim gray
	colorPanelBackground = color.RGBA{255, 255, 255, 230}
	colorPanelBorder     = color.RGBA{120, 130, 180, 255}
	colorInputBackground = color.RGBA{245, 245, 245, 255}
)

// Font sizes in pixels, roughly the point sizes used by the classic quiz
// scaled for screen
const (
	fontSizeLabel   = 11.0
	fontSizeTitle   = 19.0
	fontSizeFlash   = 15.0
	fontSizeSummary = 16.0
	fontSizeVictory = 27.0
	fontSizeHint    = 13.0
	fontSizePrompt  = 14.0
)

// Prompt panel geometry
const (
	promptPanelX      = 10
	promptPanelY      = 52
	promptPanelWidth  = 330
	promptPanelHeight = 96
	promptPadding     = 8
)

// fadeOutMs is how long a flash takes to fade before it expires
const fadeOutMs = 300

// Backspace repeat timing, in ticks
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 4
)
