package fontload

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/npillmayer/shapebase/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestReadGoRegularDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	version, tables, err := ReadTableDirectory(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, versionTrueType, version)
	tags := make(map[ot.Tag]TableRecord, len(tables))
	for _, rec := range tables {
		tags[rec.Tag] = rec
	}
	for _, name := range []string{"cmap", "glyf", "head", "hhea", "loca", "maxp"} {
		rec, ok := tags[ot.T(name)]
		if assert.True(t, ok, "expected table %s in Go Regular", name) {
			assert.Greater(t, rec.Length, uint32(0))
		}
	}
}

func TestParseGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	assert.Contains(t, f.Fontname, "Go")
	assert.NotNil(t, f.SFNT)
	assert.NotEmpty(t, f.Tables)
}

func TestReadDirectorySynthetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	b := directory(t, "OTTO", []string{"CFF ", "GSUB"}, 8)
	version, tables, err := ReadTableDirectory(b)
	require.NoError(t, err)
	assert.Equal(t, ot.T("OTTO"), version)
	require.Len(t, tables, 2)
	assert.Equal(t, ot.T("CFF"), tables[0].Tag, "tag 'CFF ' carries a trailing space")
	assert.Equal(t, ot.GSUB, tables[1].Tag)
	assert.Equal(t, uint32(8), tables[1].Length)
}

func TestReadDirectoryErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	_, _, err := ReadTableDirectory([]byte{0, 1, 0, 0})
	assert.ErrorIs(t, err, ErrShortData)
	//
	_, _, err = ReadTableDirectory(directory(t, "ttcf", nil, 0))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, _, err = ReadTableDirectory(directory(t, "wOFF", nil, 0))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	//
	b := directory(t, "true", []string{"head", "cmap"}, 4)
	_, _, err = ReadTableDirectory(b[:headerSize+recordSize])
	assert.ErrorIs(t, err, ErrShortData)
	//
	b = directory(t, "true", []string{"head"}, 4)
	binary.BigEndian.PutUint32(b[headerSize+12:], 4000) // length beyond end of data
	_, _, err = ReadTableDirectory(b)
	var fontErr *ot.FontError
	require.True(t, errors.As(err, &fontErr), "expected a FontError, got %v", err)
	assert.Equal(t, ot.T("head"), fontErr.Table)
	assert.ErrorIs(t, err, ErrShortData)
}

// directory creates a font binary consisting of a table directory followed by
// tables of size tsize each, filled with zeros.
func directory(t *testing.T, version string, tables []string, tsize int) []byte {
	t.Helper()
	dirSize := headerSize + len(tables)*recordSize
	b := make([]byte, dirSize+len(tables)*tsize)
	copy(b, version)
	binary.BigEndian.PutUint16(b[4:], uint16(len(tables)))
	for i, name := range tables {
		r := b[headerSize+i*recordSize:]
		copy(r, name)
		binary.BigEndian.PutUint32(r[8:], uint32(dirSize+i*tsize))
		binary.BigEndian.PutUint32(r[12:], uint32(tsize))
	}
	return b
}
