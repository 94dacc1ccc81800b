package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"mapquiz/pkg/game/renderer"
)

// loadFonts parses the Go fonts and builds one face per text style
func (e *EbitenRenderer) loadFonts() error {
	var err error

	if e.regularFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return err
	}
	if e.boldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return err
	}
	if e.italicFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goitalic.TTF)); err != nil {
		return err
	}

	bold := func(size float64) *text.GoTextFace {
		return &text.GoTextFace{Source: e.boldFontSource, Size: size}
	}
	italic := func(size float64) *text.GoTextFace {
		return &text.GoTextFace{Source: e.italicFontSource, Size: size}
	}

	e.faces = map[renderer.TextStyle]*text.GoTextFace{
		renderer.StyleNormal:  {Source: e.regularFontSource, Size: fontSizeLabel},
		renderer.StyleTitle:   bold(fontSizeTitle),
		renderer.StyleCorrect: bold(fontSizeLabel),
		renderer.StyleMissed:  bold(fontSizeLabel),
		renderer.StyleWarning: italic(fontSizeFlash),
		renderer.StyleDenied:  italic(fontSizeFlash),
		renderer.StyleVictory: bold(fontSizeVictory),
		renderer.StyleSummary: bold(fontSizeSummary),
		renderer.StyleSubtle:  italic(fontSizeHint),
	}
	e.promptFace = &text.GoTextFace{Source: e.regularFontSource, Size: fontSizePrompt}

	return nil
}

// faceFor returns the face for a style, falling back to StyleNormal
func (e *EbitenRenderer) faceFor(style renderer.TextStyle) *text.GoTextFace {
	if f, ok := e.faces[style]; ok {
		return f
	}
	return e.faces[renderer.StyleNormal]
}
