/*
Package shapebase is for typeface and font handling, on the level of names and
directions.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

▪︎ A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

Package shapebase loads scalable fonts and tells which tables they contain.
The vocabulary to talk about tables and text flow, i.e. tags and directions,
lives in package `ot`.

# Status

Does not contain methods for font collections (*.ttc), e.g.,
/System/Library/Fonts/Helvetica.ttc on Mac OS. Tables are exposed as raw bytes
only.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package shapebase

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shapebase/internal/fontload"
	"github.com/npillmayer/shapebase/ot"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'opentype'
func tracer() tracing.Trace {
	return tracing.Select("opentype")
}

// ScalableFont is an internal representation of an outline-font of type
// TTF of OTF.
//
// A ScalableFont must not be changed after loading; it is then safe for
// concurrent use.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, if loaded from a file
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
	version  ot.Tag
	tables   []fontload.TableRecord
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	f, err := fontload.LoadOpenTypeFont(fontfile)
	if err != nil {
		tracer().Errorf("cannot load font %s: %v", fontfile, err)
		return nil, err
	}
	sf := fromLoaded(f)
	sf.Filepath = fontfile
	return sf, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
// fbytes must not change after parsing for the font to be usable.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	f, err := fontload.ParseOpenTypeFont(fbytes)
	if err != nil {
		return nil, err
	}
	return fromLoaded(f), nil
}

func fromLoaded(f *fontload.ScalableFont) *ScalableFont {
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return &ScalableFont{
		Fontname: f.Fontname,
		Binary:   f.Binary,
		SFNT:     f.SFNT,
		version:  f.Version,
		tables:   f.Tables,
	}
}
