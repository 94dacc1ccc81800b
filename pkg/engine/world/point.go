// Package world holds the map coordinate space shared by every renderer.
//
// Map coordinates follow the turtle convention: the origin is the centre of
// the surface, x grows to the right and y grows upwards.
package world

import "math"

// Point is a position in map units
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Bounds is the visible rectangle of the map in map units
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// CenteredBounds returns bounds of the given size centred on the origin
func CenteredBounds(width, height float64) Bounds {
	return Bounds{
		MinX: -width / 2,
		MinY: -height / 2,
		MaxX: width / 2,
		MaxY: height / 2,
	}
}

// Width returns the horizontal extent of the bounds
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the bounds
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Contains reports whether p lies inside the bounds (edges included)
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ToScreen converts a map point to pixel coordinates on a surface of the
// given pixel size, with the pixel origin at the top-left corner.
func (b Bounds) ToScreen(p Point, screenW, screenH int) (float64, float64) {
	sx := (p.X - b.MinX) / b.Width() * float64(screenW)
	sy := (b.MaxY - p.Y) / b.Height() * float64(screenH)
	return sx, sy
}

// FromScreen is the inverse of ToScreen
func (b Bounds) FromScreen(sx, sy float64, screenW, screenH int) Point {
	x := b.MinX + sx/float64(screenW)*b.Width()
	y := b.MaxY - sy/float64(screenH)*b.Height()
	return Point{X: x, Y: y}
}

// Project maps a point onto a grid of rows x cols cells. The result is
// clamped to the grid so out-of-range points land on the nearest edge.
func (b Bounds) Project(p Point, rows, cols int) (row, col int) {
	if rows <= 0 || cols <= 0 {
		return 0, 0
	}

	fx := (p.X - b.MinX) / b.Width()
	fy := (b.MaxY - p.Y) / b.Height()

	col = int(math.Round(fx * float64(cols-1)))
	row = int(math.Round(fy * float64(rows-1)))

	return clamp(row, 0, rows-1), clamp(col, 0, cols-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Unproject returns the map point at the centre of grid cell (row, col),
// the inverse of Project for in-range cells.
func (b Bounds) Unproject(row, col, rows, cols int) Point {
	fx, fy := 0.5, 0.5
	if cols > 1 {
		fx = float64(col) / float64(cols-1)
	}
	if rows > 1 {
		fy = float64(row) / float64(rows-1)
	}
	return Point{X: b.MinX + fx*b.Width(), Y: b.MaxY - fy*b.Height()}
}
