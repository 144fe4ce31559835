/*
Package ot provides the basic vocabulary shared by OpenType font handling and
text shaping: tags and text directions.

Intended audience for this package are:

▪︎ font table readers, which need to name tables, scripts, language systems and features

▪︎ text shapers, which need to know the flow axis and advance polarity of a run

Package `ot` does not parse fonts and does not shape text. It is a leaf package
without dependencies on other packages of this module, and it is meant to be
imported by everything else.

# Tags

OpenType identifies tables, scripts, language systems, features and baselines by
four bytes, usually printable ASCII. A Tag packs them into a uint32, first byte
most significant:

	tag := ot.NewTag('G', 'S', 'U', 'B')
	tag == ot.T("GSUB")   // true

Shorter names are padded with spaces (`ot.T("kan")` is "kan "), longer ones are cut.
The empty name gives TagNone, which is also the zero value.

# Directions

Direction is one of four flow directions. Parsing is lenient on purpose: only the
first letter counts, so "rtl", "R" and "right-to-left" are all accepted.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
