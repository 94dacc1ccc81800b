// Package devtools provides developer tools for checking catalog data.
package devtools

import (
	"fmt"
	"io"

	"mapquiz/pkg/engine/world"
	"mapquiz/pkg/game/catalog"
)

// DumpOptions control the catalog dump
type DumpOptions struct {
	Source string       // data file name shown in the header
	Bounds world.Bounds // visible map area
	Rows   int          // grid size of the overview map; 0 skips it
	Cols   int
}

// OutOfBounds returns the entities whose label point lies outside bounds,
// in catalog order. Their labels would be drawn off the map.
func OutOfBounds(cat *catalog.Catalog, bounds world.Bounds) []catalog.Entity {
	var out []catalog.Entity
	for _, e := range cat.Entities() {
		if !bounds.Contains(e.Pos) {
			out = append(out, e)
		}
	}
	return out
}

// DumpCatalog writes a debug dump of the catalog: metadata, an overview map
// with one marker per entity, and every entity with its coordinates.
// Format is human-readable (sections, key: value, consistent structure).
func DumpCatalog(w io.Writer, cat *catalog.Catalog, opts DumpOptions) error {
	b := opts.Bounds
	outside := OutOfBounds(cat, b)

	// --- Metadata ---
	fmt.Fprintln(w, "=== CATALOG DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "source: %s\n", opts.Source)
	fmt.Fprintf(w, "entities: %d\n", cat.Len())
	fmt.Fprintf(w, "bounds: x %.0f..%.0f y %.0f..%.0f\n", b.MinX, b.MaxX, b.MinY, b.MaxY)
	fmt.Fprintf(w, "coordinate_system: x,y (origin at centre, y up)\n")
	fmt.Fprintf(w, "out_of_bounds: %d\n", len(outside))
	fmt.Fprintln(w, "")

	// --- Map ---
	if opts.Rows > 0 && opts.Cols > 0 {
		fmt.Fprintln(w, "--- Map (* = one entity, number = several in one cell) ---")
		for _, line := range overview(cat, b, opts.Rows, opts.Cols) {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w, "")
	}

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities (catalog order) ---")
	for i, e := range cat.Entities() {
		fmt.Fprintf(w, "  %d: name: %q x: %g y: %g\n", i+1, e.Name, e.Pos.X, e.Pos.Y)
	}

	if len(outside) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "--- Out of bounds ---")
		for _, e := range outside {
			fmt.Fprintf(w, "  name: %q x: %g y: %g\n", e.Name, e.Pos.X, e.Pos.Y)
		}
	}

	return nil
}

// overview projects every entity onto a rows x cols grid framed by '#'
func overview(cat *catalog.Catalog, b world.Bounds, rows, cols int) []string {
	counts := make([][]int, rows)
	for i := range counts {
		counts[i] = make([]int, cols)
	}
	for _, e := range cat.Entities() {
		row, col := b.Project(e.Pos, rows, cols)
		counts[row][col]++
	}

	lines := make([]string, 0, rows+2)
	border := make([]rune, cols+2)
	for i := range border {
		border[i] = '#'
	}
	lines = append(lines, string(border))

	for _, row := range counts {
		line := make([]rune, 0, cols+2)
		line = append(line, '#')
		for _, n := range row {
			switch {
			case n == 0:
				line = append(line, '.')
			case n == 1:
				line = append(line, '*')
			case n < 10:
				line = append(line, rune('0'+n))
			default:
				line = append(line, '+')
			}
		}
		line = append(line, '#')
		lines = append(lines, string(line))
	}

	return append(lines, string(border))
}
