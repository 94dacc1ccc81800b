package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty      = errors.New("no entities")
	ErrBlankName  = errors.New("blank entity name")
	ErrNoHeader   = errors.New("missing header row")
	ErrBadNumber  = errors.New("coordinate is not a number")
	ErrFieldCount = errors.New("wrong number of fields")
)

// DataLoadError is fatal: the catalog could not be built and no session
// may start.
type DataLoadError struct {
	Path string // empty when parsing from a reader
	Line int    // 0 when the error is not tied to a line
	Err  error
}

func (e *DataLoadError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("load %s: line %d: %v", e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("load catalog: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("load catalog: %v", e.Err)
	}
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// MissingColumnError names a header the data file does not have.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// DuplicateNameError names an entity listed twice after normalization.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate entity %q", e.Name)
}
