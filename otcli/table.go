package main

import (
	"fmt"

	"github.com/npillmayer/shapebase/ot"
	"github.com/pterm/pterm"
)

func tablesOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	tags := intp.font.TableTags()
	pterm.Printf("Font %s has %d tables, version %s\n", intp.font.Fontname, len(tags),
		intp.font.Version().Describe())
	data := pterm.TableData{{"Tag", "Value", "Size"}}
	for _, tag := range tags {
		size := len(intp.font.Table(tag))
		data = append(data, []string{tag.Describe(), fmt.Sprintf("0x%08x", uint32(tag)), fmt.Sprint(size)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if intp.font.HasLayoutTables() {
		pterm.Println("Font supports advanced layout (GSUB/GPOS)")
	}
	return nil, false
}

// tableOp selects a table by name and makes its tag the current tag.
func tableOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	name, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("table needs a table name, e.g. table:head"), false
	}
	tag := ot.T(name)
	b := intp.font.Table(tag)
	if b == nil {
		return fmt.Errorf("font has no table %s", tag.Describe()), false
	}
	intp.tag = tag
	pterm.Printf("table %s has %d bytes\n", tag.Describe(), len(b))
	return nil, false
}
