/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Command libjust reads a text file, builds a break list out of it,
// and runs both HQJust and HSJust against it at a given line width,
// printing for each, one after the other, the range of break indices
// every chosen line covers and the sum of the chosen breaks' penalties.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/libjust/breakbuild"
	"github.com/npillmayer/libjust/core/dimen"
	"github.com/npillmayer/libjust/core/parameters"
	"github.com/npillmayer/libjust/driver"
	"github.com/npillmayer/libjust/hyphen"
	"github.com/npillmayer/libjust/justify"
	"github.com/npillmayer/libjust/metrics"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

func tracer() tracing.Trace {
	return tracing.Select("libjust")
}

func main() {
	widthPt := flag.Float64("width", 300, "line width, in points")
	fontFile := flag.String("font", "", "OpenType font file name to search for via go-findfont; empty uses the built-in monospace metrics")
	tlevel := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	flag.Parse()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.libjust":   *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println("cannot configure tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gtrace.CoreTracer = tracer()

	if flag.NArg() < 1 {
		pterm.Error.Println("usage: libjust [-width pt] [-font name] <textfile>")
		os.Exit(2)
	}
	text, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		pterm.Error.Printfln("cannot read %s: %v", flag.Arg(0), err)
		os.Exit(3)
	}

	src := loadMetrics(*fontFile)
	width := dimen.DU(*widthPt) * dimen.PT

	regs := parameters.NewTypesettingRegisters()
	tokens := breakbuild.Tokenize(string(text))
	breaks := breakbuild.Build(tokens, src, hyphen.NullOracle{}, regs, breakbuild.Params{TabWidth: 4 * dimen.PT})
	params := justify.Params{SetWidth: width, MaxNegSpace: 64}

	pterm.Info.Printfln("%d break candidates, line width %.1fpt", len(breaks), *widthPt)

	runAndReport("HQJust", func() ([]int, int, error) { return justify.HQJust(breaks, params) }, breaks)
	runAndReport("HSJust", func() ([]int, int, error) { return justify.HSJust(breaks, params) }, breaks)
}

func loadMetrics(fontFile string) metrics.Source {
	if fontFile == "" {
		return metrics.NewMonospace(10 * dimen.PT)
	}
	path, err := findfont.Find(fontFile)
	if err != nil {
		pterm.Warning.Printfln("could not locate font %s (%v), falling back to monospace metrics", fontFile, err)
		return metrics.NewMonospace(10 * dimen.PT)
	}
	src, err := metrics.FromFile(path, 10)
	if err != nil {
		pterm.Warning.Printfln("could not load font %s (%v), falling back to monospace metrics", path, err)
		return metrics.NewMonospace(10 * dimen.PT)
	}
	return src
}

func runAndReport(label string, run func() ([]int, int, error), breaks []justify.Break) {
	result, lines, err := run()
	if err != nil {
		pterm.Error.Printfln("%s failed: %v", label, err)
		return
	}
	d := driver.NewText(os.Stdout)
	d.BeginPage()
	prev := -1
	var totalPenalty int64
	for _, b := range result {
		d.BeginLine(0)
		d.ShowWord([]rune(fmt.Sprintf("[%d..%d]", prev+1, b)), nil, false)
		d.EndLine()
		if b < len(breaks) {
			totalPenalty += breaks[b].Penalty
		}
		prev = b
	}
	d.EndPage()
	pterm.Success.Printfln("%s: %d lines, total penalty %d", label, lines, totalPenalty)
}
