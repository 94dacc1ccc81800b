package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapquiz/pkg/engine/world"
)

const sampleCSV = `state,x,y
Karachi,10,-200
sukkur,50,100
  mirpur   KHAS ,120,-150
`

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" sukkur ", "Sukkur"},
		{"SUKKUR", "Sukkur"},
		{"Sukkur", "Sukkur"},
		{"mirpur khas", "Mirpur Khas"},
		{"  mirpur \t  KHAS ", "Mirpur Khas"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonical(tt.in), "Canonical(%q)", tt.in)
	}
}

func TestCanonicalIsIdempotent(t *testing.T) {
	for _, in := range []string{"karachi", "MIRPUR khas", " Tando  allahyar "} {
		once := Canonical(in)
		assert.Equal(t, once, Canonical(once))
	}
}

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCSV), DefaultColumns())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"Karachi", "Sukkur", "Mirpur Khas"}, c.Names())

	e, ok := c.Lookup("  SUKKUR")
	require.True(t, ok)
	assert.Equal(t, "Sukkur", e.Name)
	assert.Equal(t, world.Pt(50, 100), e.Pos)

	assert.True(t, c.Has("mirpur khas"))
	assert.False(t, c.Has("Lahore"))
}

func TestParseHeaderIsCaseInsensitive(t *testing.T) {
	data := "X,State,Y,extra\n1.5,Thatta,-2.25,ignored\n"
	c, err := Parse(strings.NewReader(data), DefaultColumns())
	require.NoError(t, err)

	e, ok := c.Lookup("thatta")
	require.True(t, ok)
	assert.Equal(t, world.Pt(1.5, -2.25), e.Pos)
}

func TestParseStripsBOM(t *testing.T) {
	c, err := Parse(strings.NewReader("\ufeffstate,x,y\nKarachi,1,2\nSukkur,3,z\n"), DefaultColumns())
	require.Error(t, err)

	var dle *DataLoadError
	require.True(t, errors.As(err, &dle))
	assert.ErrorIs(t, err, ErrBadNumber)
	assert.Equal(t, 3, dle.Line)

	c, err = Parse(strings.NewReader("\ufeffstate,x,y\nKarachi,1,2\n"), DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, []string{"Karachi"}, c.Names())
}

func TestParseCustomColumns(t *testing.T) {
	data := "district,lon,lat\nLarkana,3,4\n"
	c, err := Parse(strings.NewReader(data), Columns{Name: "district", X: "lon", Y: "lat"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Larkana"}, c.Names())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantErr  error
		wantLine int
	}{
		{"empty input", "", ErrNoHeader, 0},
		{"header only", "state,x,y\n", ErrEmpty, 0},
		{"bad x", "state,x,y\nKarachi,abc,1\n", ErrBadNumber, 2},
		{"bad y", "state,x,y\nKarachi,1,2\nSukkur,3,\n", ErrBadNumber, 3},
		{"blank name", "state,x,y\nKarachi,1,2\n   ,3,4\n", ErrBlankName, 3},
		{"short row", "state,x,y\nKarachi,1\n", ErrFieldCount, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data), DefaultColumns())
			require.Error(t, err)

			var dle *DataLoadError
			require.True(t, errors.As(err, &dle), "error %v is not a DataLoadError", err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantLine, dle.Line)
		})
	}
}

func TestParseMissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("name,x,y\nKarachi,1,2\n"), DefaultColumns())

	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "state", mce.Column)
}

func TestParseDuplicateAfterNormalization(t *testing.T) {
	data := "state,x,y\nKarachi,1,2\n KARACHI ,3,4\n"
	_, err := Parse(strings.NewReader(data), DefaultColumns())

	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Karachi", dup.Name)

	var dle *DataLoadError
	require.True(t, errors.As(err, &dle))
	assert.Equal(t, 3, dle.Line)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "districts.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	c, err := Load(path, DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")
	_, err := Load(path, DefaultColumns())

	var dle *DataLoadError
	require.True(t, errors.As(err, &dle))
	assert.Equal(t, path, dle.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("state,x,y\nKarachi,zz,1\n"), 0o600))

	_, err := Load(path, DefaultColumns())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 2")
}

func TestEntitiesReturnsCopy(t *testing.T) {
	c, err := New([]Entity{{Name: "karachi"}, {Name: "sukkur"}})
	require.NoError(t, err)

	es := c.Entities()
	es[0].Name = "Changed"
	assert.Equal(t, "Karachi", c.Entities()[0].Name)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}
