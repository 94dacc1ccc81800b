package tui

import (
	"image"
	"strings"

	"mapquiz/pkg/engine/world"
	"mapquiz/pkg/game/renderer"
)

// shadeRamp runs from dark to light; each map pixel picks a glyph by its
// luminance.
const shadeRamp = "@%#*+=-:. "

type cell struct {
	r     rune
	style renderer.TextStyle
}

// canvas is a character grid covering the map bounds
type canvas struct {
	bounds world.Bounds
	rows   int
	cols   int
	cells  [][]cell
}

func newCanvas(bounds world.Bounds, rows, cols int) *canvas {
	c := &canvas{bounds: bounds, rows: rows, cols: cols}
	c.cells = make([][]cell, rows)
	for i := range c.cells {
		c.cells[i] = make([]cell, cols)
		for j := range c.cells[i] {
			c.cells[i][j] = cell{r: ' ', style: renderer.StyleNormal}
		}
	}
	return c
}

// drawImage shades img onto the canvas. The image is centred on the map
// origin at one pixel per map unit.
func (c *canvas) drawImage(img image.Image) {
	if img == nil {
		return
	}

	ib := img.Bounds()
	halfW := float64(ib.Dx()) / 2
	halfH := float64(ib.Dy()) / 2

	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			p := c.bounds.Unproject(row, col, c.rows, c.cols)
			px := ib.Min.X + int(p.X+halfW)
			py := ib.Min.Y + int(halfH-p.Y)
			if px < ib.Min.X || px >= ib.Max.X || py < ib.Min.Y || py >= ib.Max.Y {
				continue
			}
			c.cells[row][col] = cell{r: shade(img, px, py), style: renderer.StyleSubtle}
		}
	}
}

func shade(img image.Image, x, y int) rune {
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return ' '
	}
	// Rec. 601 luma on 16-bit channels
	lum := (299*r + 587*g + 114*b) / 1000
	idx := int(lum) * (len(shadeRamp) - 1) / 0xffff
	return rune(shadeRamp[idx])
}

// write centres text on the cell that p projects to, clipping at the edges
func (c *canvas) write(text string, p world.Point, style renderer.TextStyle) {
	if c.rows == 0 || c.cols == 0 {
		return
	}

	row, col := c.bounds.Project(p, c.rows, c.cols)
	runes := []rune(text)
	start := col - len(runes)/2

	for i, r := range runes {
		x := start + i
		if x < 0 || x >= c.cols {
			continue
		}
		c.cells[row][x] = cell{r: r, style: style}
	}
}

// lines renders each row, passing runs of equal style through paint
func (c *canvas) lines(paint func(text string, style renderer.TextStyle) string) []string {
	out := make([]string, c.rows)

	for i, row := range c.cells {
		var sb strings.Builder
		var run []rune
		style := renderer.StyleNormal

		flush := func() {
			if len(run) > 0 {
				sb.WriteString(paint(string(run), style))
				run = run[:0]
			}
		}

		for _, cl := range row {
			if cl.style != style {
				flush()
				style = cl.style
			}
			run = append(run, cl.r)
		}
		flush()

		out[i] = strings.TrimRight(sb.String(), " ")
	}

	return out
}
