package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/shapebase"
	"github.com/npillmayer/shapebase/ot"
)

func fontReport(fontPath string, tables []string) (string, error) {
	f, err := shapebase.LoadOpenTypeFont(fontPath)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Path: %s\n", fontPath)
	fmt.Fprintf(&sb, "Name: %s\n", f.Fontname)
	fmt.Fprintf(&sb, "Version: %s\n", f.Version().Describe())
	tags := f.TableTags()
	fmt.Fprintf(&sb, "Tables (%d):", len(tags))
	for _, tag := range tags {
		fmt.Fprintf(&sb, " %s", tag.Describe())
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Layout: %t\n", f.HasLayoutTables())
	for _, name := range tables {
		tag := ot.T(name)
		b := f.Table(tag)
		if b == nil {
			fmt.Fprintf(&sb, "table %s: missing\n", tag.Describe())
			continue
		}
		fmt.Fprintf(&sb, "table %s: size=%d\n", tag.Describe(), len(b))
	}
	return sb.String(), nil
}
