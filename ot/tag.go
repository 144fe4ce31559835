package ot

import (
	"strings"

	"github.com/go-text/typesetting/font/opentype"
)

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline.
//
// The bytes are packed big-endian, i.e. the first byte of the name is the most
// significant byte of the Tag. No character set is enforced.
type Tag uint32

// TagNone denotes the absence of a tag.
const TagNone Tag = 0

// Frequently used tags.
var (
	DFLT     = T("DFLT") // default script
	DFLTLang = T("dflt") // default language system; not registered, but common in fonts
	GSUB     = T("GSUB")
	GPOS     = T("GPOS")
	GDEF     = T("GDEF")
	BASE     = T("BASE")
	JSTF     = T("JSTF")
)

// NewTag packs four bytes into a Tag, b1 being the most significant one.
//
//	NewTag('c', 'm', 'a', 'p')
func NewTag(b1, b2, b3, b4 byte) Tag {
	return Tag(uint32(b1)<<24 | uint32(b2)<<16 | uint32(b3)<<8 | uint32(b4))
}

// MakeTag creates a Tag from a byte slice, e.g.,
//
//	MakeTag([]byte("cmap"))
//
// If b is shorter than 4 bytes, it will be padded with spaces; if it is longer, only
// the first 4 bytes are used. An empty (or nil) b results in TagNone.
func MakeTag(b []byte) Tag {
	if len(b) == 0 {
		return TagNone
	}
	name := [4]byte{' ', ' ', ' ', ' '}
	copy(name[:], b)
	return Tag(u32(name[:]))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate.
func T(t string) Tag {
	return MakeTag([]byte(t))
}

// TagFromGoText converts a tag of package github.com/go-text/typesetting/font/opentype.
func TagFromGoText(t opentype.Tag) Tag {
	return Tag(t)
}

// Bytes unpacks a tag into its 4 bytes, in the order they have been handed to NewTag.
func (t Tag) Bytes() [4]byte {
	return [4]byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
}

// IsNone is true for TagNone.
func (t Tag) IsNone() bool {
	return t == TagNone
}

func (t Tag) String() string {
	b := t.Bytes()
	return string(b[:])
}

// Describe returns a printable form of t, suitable for diagnostic output.
// Bytes outside of printable ASCII are escaped as \xNN, and TagNone is
// shown as "<none>".
func (t Tag) Describe() string {
	if t.IsNone() {
		return "<none>"
	}
	const hex = "0123456789abcdef"
	var sb strings.Builder
	for _, c := range t.Bytes() {
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
			continue
		}
		sb.WriteString(`\x`)
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

// GoText converts t to a tag of package github.com/go-text/typesetting/font/opentype.
func (t Tag) GoText() opentype.Tag {
	return opentype.Tag(t)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	b := t.Bytes()
	return b[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler, with the same padding
// and truncation rules as MakeTag.
func (t *Tag) UnmarshalText(text []byte) error {
	*t = MakeTag(text)
	return nil
}
