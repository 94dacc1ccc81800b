// Package catalog loads the guessable map entities and owns the single
// normalization rule used to compare entity names.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mapquiz/pkg/engine/world"
)

// Entity is one guessable map region with its label position.
type Entity struct {
	Name string
	Pos  world.Point
}

// Catalog is the immutable, ordered set of entities for a session.
type Catalog struct {
	entities []Entity
	index    map[string]int
}

// Canonical returns the form used for every name comparison: surrounding
// whitespace removed, inner whitespace runs collapsed to one space, and each
// word title-cased. The loader, guess checking and reveal all go through here.
func Canonical(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.Und).String(strings.Join(fields, " "))
}

// New builds a catalog from entities in display order. Names are
// canonicalized; blank or duplicate names are rejected.
func New(entities []Entity) (*Catalog, error) {
	return build(entities, nil)
}

// build is New with optional source line numbers for error reporting.
func build(entities []Entity, lines []int) (*Catalog, error) {
	lineOf := func(i int) int {
		if i < len(lines) {
			return lines[i]
		}
		return i + 1
	}

	c := &Catalog{
		entities: make([]Entity, 0, len(entities)),
		index:    make(map[string]int, len(entities)),
	}

	for i, e := range entities {
		name := Canonical(e.Name)
		if name == "" {
			return nil, &DataLoadError{Line: lineOf(i), Err: ErrBlankName}
		}
		if _, dup := c.index[name]; dup {
			return nil, &DataLoadError{Line: lineOf(i), Err: &DuplicateNameError{Name: name}}
		}
		c.index[name] = len(c.entities)
		c.entities = append(c.entities, Entity{Name: name, Pos: e.Pos})
	}

	if len(c.entities) == 0 {
		return nil, &DataLoadError{Err: ErrEmpty}
	}

	return c, nil
}

// Len returns the number of entities
func (c *Catalog) Len() int {
	return len(c.entities)
}

// Entities returns a copy of the entities in display order
func (c *Catalog) Entities() []Entity {
	out := make([]Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

// Names returns the canonical names in display order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entities))
	for i, e := range c.entities {
		names[i] = e.Name
	}
	return names
}

// Lookup normalizes name and returns the matching entity.
func (c *Catalog) Lookup(name string) (Entity, bool) {
	i, ok := c.index[Canonical(name)]
	if !ok {
		return Entity{}, false
	}
	return c.entities[i], true
}

// Has reports whether name (after normalization) is in the catalog
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[Canonical(name)]
	return ok
}
