package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"mapquiz/pkg/engine/world"
)

// Columns names the header cells holding each field.
type Columns struct {
	Name string
	X    string
	Y    string
}

// DefaultColumns matches the district data file: state,x,y
func DefaultColumns() Columns {
	return Columns{Name: "state", X: "x", Y: "y"}
}

// Load reads a catalog from a CSV file. Every failure is a *DataLoadError
// carrying the path.
func Load(path string, cols Columns) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	c, err := Parse(f, cols)
	if err != nil {
		var dle *DataLoadError
		if errors.As(err, &dle) {
			dle.Path = path
			return nil, dle
		}
		return nil, &DataLoadError{Path: path, Err: err}
	}
	return c, nil
}

// Parse reads CSV with a header row. Header matching ignores case and
// surrounding whitespace; extra columns are ignored. A leading UTF-8
// byte-order mark, as written by spreadsheet exports, is skipped.
func Parse(r io.Reader, cols Columns) (*Catalog, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DataLoadError{Err: ErrNoHeader}
		}
		return nil, &DataLoadError{Line: 1, Err: err}
	}

	nameIdx, xIdx, yIdx, err := locateColumns(header, cols)
	if err != nil {
		return nil, &DataLoadError{Line: 1, Err: err}
	}

	var (
		entities []Entity
		lines    []int
	)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				if errors.Is(pe.Err, csv.ErrFieldCount) {
					return nil, &DataLoadError{Line: pe.Line, Err: ErrFieldCount}
				}
				return nil, &DataLoadError{Line: pe.Line, Err: pe.Err}
			}
			return nil, &DataLoadError{Err: err}
		}

		line, _ := cr.FieldPos(0)

		x, err := parseCoord(record[xIdx])
		if err != nil {
			return nil, &DataLoadError{Line: line, Err: fmt.Errorf("%s: %w", cols.X, err)}
		}
		y, err := parseCoord(record[yIdx])
		if err != nil {
			return nil, &DataLoadError{Line: line, Err: fmt.Errorf("%s: %w", cols.Y, err)}
		}

		entities = append(entities, Entity{Name: record[nameIdx], Pos: world.Pt(x, y)})
		lines = append(lines, line)
	}

	return build(entities, lines)
}

func locateColumns(header []string, cols Columns) (nameIdx, xIdx, yIdx int, err error) {
	find := func(want string) (int, error) {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(want)) {
				return i, nil
			}
		}
		return -1, &MissingColumnError{Column: want}
	}

	if nameIdx, err = find(cols.Name); err != nil {
		return
	}
	if xIdx, err = find(cols.X); err != nil {
		return
	}
	yIdx, err = find(cols.Y)
	return
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return v, nil
}
