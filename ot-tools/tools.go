package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for inspecting OpenType tags, text directions and font table directories.")

	commando.
		Register("tag").
		SetDescription("Print the integer value and bytes of OpenType tags.").
		SetShortDescription("inspect tags").
		AddArgument("tags...", "tag names (e.g. GSUB,liga,kan); names are padded or cut to 4 bytes", "").
		AddFlag("hex,x", "arguments are integer tag values (e.g. 0x61426344)", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runTagCommand)

	commando.
		Register("direction").
		SetDescription("Print properties of text directions. Only the first letter of a direction is significant.").
		SetShortDescription("inspect directions").
		AddArgument("directions...", "directions (e.g. ltr,rtl,ttb,btt)", "").
		AddFlag("reverse,r", "reverse directions before printing", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runDirectionCommand)

	commando.
		Register("font").
		SetDescription("Print the table directory of an OpenType font.").
		SetShortDescription("font tables").
		AddArgument("font", "OpenType font file path", "").
		AddArgument("tables...", "optional list of table tags (e.g. GSUB,GPOS,head)", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runFontCommand)

	commando.Parse(nil)
}

func runTagCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	out, err := tagReport(splitCSVSpace(args["tags"].Value), mustFlagBool(flags["hex"], "hex"))
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(out)
}

func runDirectionCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	out, err := directionReport(splitCSVSpace(args["directions"].Value), mustFlagBool(flags["reverse"], "reverse"))
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(out)
}

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	out, err := fontReport(fontPath, splitCSVSpace(args["tables"].Value))
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(out)
}

func setVerbosity(flags map[string]commando.FlagValue) {
	level := tracing.LevelError
	if mustFlagBool(flags["verbose"], "verbose") {
		level = tracing.LevelDebug
	}
	for _, key := range []string{"tyse.fonts", "font.opentype", "opentype"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-tools: "+format+"\n", args...)
	os.Exit(1)
}
