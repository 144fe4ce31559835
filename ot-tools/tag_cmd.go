package main

import (
	"errors"
	"strings"

	"github.com/npillmayer/shapebase/internal/report"
	"github.com/npillmayer/shapebase/ot"
)

func tagReport(names []string, hex bool) (string, error) {
	if len(names) == 0 {
		return "", errors.New("no tags given")
	}
	var sb strings.Builder
	for i, name := range names {
		tag := ot.T(name)
		if hex {
			var err error
			if tag, err = report.ParseTagValue(name); err != nil {
				return "", err
			}
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		tracer().Debugf("tag %q -> %s", name, tag.Describe())
		sb.WriteString(report.String(report.Tag(tag)))
	}
	return sb.String(), nil
}

func directionReport(inputs []string, reverse bool) (string, error) {
	if len(inputs) == 0 {
		return "", errors.New("no directions given")
	}
	var sb strings.Builder
	for i, input := range inputs {
		dir, err := ot.ParseDirection(input)
		if err != nil {
			return "", err
		}
		if reverse {
			dir = dir.Reverse()
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(report.String(report.Direction(dir)))
	}
	return sb.String(), nil
}
