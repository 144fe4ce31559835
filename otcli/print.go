package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/shapebase/internal/report"
	"github.com/npillmayer/shapebase/ot"
	"github.com/pterm/pterm"
)

func tagOp(intp *Intp, op *Op) (error, bool) {
	if name, ok := op.hasArg(); ok {
		intp.tag = ot.T(name)
	}
	printRows(report.Tag(intp.tag))
	return nil, false
}

// bytesOp expects an argument of 4 comma-separated byte values, e.g. "bytes:97,66,'c',0x44".
func bytesOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("bytes needs 4 comma-separated byte values"), false
	}
	parts := strings.Split(arg, ",")
	if len(parts) != 4 {
		return fmt.Errorf("bytes needs 4 values, have %d", len(parts)), false
	}
	var b [4]byte
	for i, p := range parts {
		v, err := report.ParseByte(p)
		if err != nil {
			return err, false
		}
		b[i] = v
	}
	intp.tag = ot.NewTag(b[0], b[1], b[2], b[3])
	printRows(report.Tag(intp.tag))
	return nil, false
}

func hexOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("hex needs a tag value, e.g. hex:0x636d6170"), false
	}
	tag, err := report.ParseTagValue(arg)
	if err != nil {
		return err, false
	}
	intp.tag = tag
	printRows(report.Tag(intp.tag))
	return nil, false
}

func dirOp(intp *Intp, op *Op) (error, bool) {
	if arg, ok := op.hasArg(); ok {
		dir, err := ot.ParseDirection(arg)
		if err != nil {
			return err, false
		}
		intp.dir = dir
	}
	printRows(report.Direction(intp.dir))
	return nil, false
}

func reverseOp(intp *Intp, op *Op) (error, bool) {
	if err, _ := dirOp(intp, op); err != nil {
		return err, false
	}
	intp.dir = intp.dir.Reverse()
	pterm.Printf("reversed to %s\n", intp.dir)
	return nil, false
}

func printRows(rows []report.Row) {
	data := pterm.TableData(report.TableData(rows))
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
