package fontload

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/shapebase/ot"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}

var (
	// ErrShortData is returned (wrapped) if the font binary ends before a
	// structure is complete.
	ErrShortData = errors.New("font data too short")
	// ErrUnsupportedFormat is returned (wrapped) for font binaries which are not
	// a single SFNT font, e.g. font collections.
	ErrUnsupportedFormat = errors.New("unsupported font format")
)

// Known values of the sfntVersion field of the table directory.
var (
	versionTrueType = ot.NewTag(0x00, 0x01, 0x00, 0x00)
	versionCFF      = ot.T("OTTO")
	versionApple    = ot.T("true")
	versionType1    = ot.T("typ1")
	versionTTC      = ot.T("ttcf")
)

const (
	headerSize = 12 // sfntVersion, numTables, searchRange, entrySelector, rangeShift
	recordSize = 16 // tag, checksum, offset, length
)

// TableRecord is an entry of the table directory of an SFNT font.
type TableRecord struct {
	Tag      ot.Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
	Version  ot.Tag        // sfntVersion, e.g. 'OTTO' for CFF based fonts
	Tables   []TableRecord // table directory, in font order
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	if f.Version, f.Tables, err = ReadTableDirectory(fbytes); err != nil {
		return nil, err
	}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, fmt.Errorf("cannot parse SFNT: %w", err)
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		tracer().Debugf("font has no full name: %v", err)
	}
	tracer().Debugf("loaded SFNT %q with %d tables", f.Fontname, len(f.Tables))
	return f, nil
}

// ReadTableDirectory reads the table directory at the start of an SFNT font binary.
// It returns the sfntVersion tag and the table records in the order they appear
// in the font.
func ReadTableDirectory(b []byte) (ot.Tag, []TableRecord, error) {
	if len(b) < headerSize {
		return ot.TagNone, nil, fmt.Errorf("%w: %d bytes, need %d for header", ErrShortData, len(b), headerSize)
	}
	version := ot.MakeTag(b[:4])
	switch version {
	case versionTrueType, versionCFF, versionApple, versionType1:
	case versionTTC:
		return version, nil, fmt.Errorf("%w: font collections are not supported", ErrUnsupportedFormat)
	default:
		return version, nil, fmt.Errorf("%w: sfntVersion %s", ErrUnsupportedFormat, version.Describe())
	}
	numTables := int(u16(b[4:]))
	if end := headerSize + numTables*recordSize; len(b) < end {
		return version, nil, fmt.Errorf("%w: %d table records need %d bytes, have %d",
			ErrShortData, numTables, end, len(b))
	}
	records := make([]TableRecord, numTables)
	for i := range records {
		r := b[headerSize+i*recordSize:]
		rec := TableRecord{
			Tag:      ot.NewTag(r[0], r[1], r[2], r[3]),
			Checksum: u32(r[4:]),
			Offset:   u32(r[8:]),
			Length:   u32(r[12:]),
		}
		if uint64(rec.Offset)+uint64(rec.Length) > uint64(len(b)) {
			return version, nil, &ot.FontError{
				Table:  rec.Tag,
				Issue:  fmt.Sprintf("table extent %d+%d exceeds font size %d", rec.Offset, rec.Length, len(b)),
				Offset: uint32(headerSize + i*recordSize),
				Err:    ErrShortData,
			}
		}
		tracer().Debugf("table %s at %d, size %d", rec.Tag.Describe(), rec.Offset, rec.Length)
		records[i] = rec
	}
	return version, records, nil
}

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}
