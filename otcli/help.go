package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "tag", "tags", "bytes", "hex":
		pterm.Info.Println("Tag")
		pterm.Println(`
	A tag names a table, script, language system or feature.
	It consists of 4 bytes, packed into a 32-bit integer:
	+--------+--------+--------+--------+
	| byte 1 | byte 2 | byte 3 | byte 4 |
	+--------+--------+--------+--------+
	  MSB                           LSB
	tag:liga            tag from a name; shorter names are padded with spaces
	bytes:97,66,99,68   tag from 4 byte values (decimal, 0x-hex or 'c')
	hex:0x61426344      tag from its integer value
	`)
	case "dir", "direction", "reverse":
		pterm.Info.Println("Direction")
		pterm.Println(`
	A direction is one of ltr, rtl, ttb, btt.
	Only the first letter of the argument is significant, so dir:right-to-left is ok.
	+-----------+------------+------------+
	| direction | axis       | progression|
	+-----------+------------+------------+
	| ltr       | horizontal | forward    |
	| rtl       | horizontal | backward   |
	| ttb       | vertical   | forward    |
	| btt       | vertical   | backward   |
	+-----------+------------+------------+
	dir:rtl        set and show a direction
	reverse:ttb    set a direction and reverse it
	`)
	case "table", "tables", "font":
		pterm.Info.Println("Font tables")
		pterm.Println(`
	tables         list the table directory of the font loaded with flag -font
	table:GSUB     select a table, making its tag the current tag
	`)
	default:
		pterm.Info.Println("Commands: tag, bytes, hex, dir, reverse, tables, table, help, quit")
		pterm.Println("	Use help:<command> for details. Several commands may be given on one line.")
	}
}
