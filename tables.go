package shapebase

import (
	"github.com/npillmayer/shapebase/ot"
)

// Version returns the sfntVersion of the font's table directory, e.g. 'OTTO' for fonts
// with CFF outlines or 0x00010000 for TrueType outlines.
func (sf *ScalableFont) Version() ot.Tag {
	return sf.version
}

// TableTags returns a list of tags, one for each table contained in the font,
// in the order of the font's table directory.
func (sf *ScalableFont) TableTags() []ot.Tag {
	tags := make([]ot.Tag, len(sf.tables))
	for i, rec := range sf.tables {
		tags[i] = rec.Tag
	}
	return tags
}

// HasTable checks if the font contains a table with the given tag.
func (sf *ScalableFont) HasTable(tag ot.Tag) bool {
	for _, rec := range sf.tables {
		if rec.Tag == tag {
			return true
		}
	}
	return false
}

// Table returns the bytes of the table with the given tag, or nil if the font does
// not contain such a table. The bytes should be treated as read-only by clients.
func (sf *ScalableFont) Table(tag ot.Tag) []byte {
	for _, rec := range sf.tables {
		if rec.Tag == tag {
			return sf.Binary[rec.Offset : rec.Offset+rec.Length : rec.Offset+rec.Length]
		}
	}
	return nil
}

// HasLayoutTables is true if the font contains a GSUB or a GPOS table, i.e. supports
// advanced typographic layout.
func (sf *ScalableFont) HasLayoutTables() bool {
	return sf.HasTable(ot.GSUB) || sf.HasTable(ot.GPOS)
}
