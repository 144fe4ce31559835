/*
Package report renders tags and directions as rows of text, for the command line
tools of this module.
*/
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/shapebase/ot"
)

// Row is a labelled line of a report.
type Row struct {
	Label string
	Value string
}

// Tag reports on a tag: its name, integer value and bytes.
func Tag(tag ot.Tag) []Row {
	b := tag.Bytes()
	return []Row{
		{"tag", quoteTag(tag)},
		{"value", fmt.Sprintf("0x%08x", uint32(tag))},
		{"bytes", fmt.Sprintf("%d %d %d %d", b[0], b[1], b[2], b[3])},
		{"none", strconv.FormatBool(tag.IsNone())},
	}
}

// Direction reports on a direction and its properties.
func Direction(dir ot.Direction) []Row {
	axis, polarity := "horizontal", "forward"
	if dir.IsVertical() {
		axis = "vertical"
	}
	if dir.IsBackward() {
		polarity = "backward"
	}
	return []Row{
		{"direction", dir.String()},
		{"axis", axis},
		{"progression", polarity},
		{"reverse", dir.Reverse().String()},
	}
}

// ParseByte reads a byte value in decimal, 0x-hex or as a single quoted character,
// e.g. "97", "0x61" or "'a'".
func ParseByte(s string) (byte, error) {
	s = strings.TrimSpace(s)
	if len(s) == 3 && s[0] == '\'' && s[2] == '\'' {
		return s[1], nil
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q", s)
	}
	return byte(n), nil
}

// ParseTagValue reads a tag from its 32-bit integer value, e.g. "0x636d6170".
func ParseTagValue(s string) (ot.Tag, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return ot.TagNone, fmt.Errorf("invalid tag value %q", s)
	}
	return ot.Tag(n), nil
}

// TableData converts rows to the format used by pterm tables, with a header line.
func TableData(rows []Row) [][]string {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, []string{"Property", "Value"})
	for _, r := range rows {
		data = append(data, []string{r.Label, r.Value})
	}
	return data
}

// String formats rows as "label: value" lines.
func String(rows []Row) string {
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-12s %s\n", r.Label+":", r.Value))
	}
	return sb.String()
}

func quoteTag(tag ot.Tag) string {
	if tag.IsNone() {
		return tag.Describe()
	}
	return "'" + tag.Describe() + "'"
}
