/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Package breakbuild turns a tokenized paragraph into the []justify.Break
// sequence HQJust/HSJust consume, by walking glyph widths, kerns and
// ligatures from a metrics.Source and splicing in discretionary
// hyphenation points from a hyphen.Oracle.
package breakbuild

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/libjust/core/dimen"
	"github.com/npillmayer/libjust/core/parameters"
	"github.com/npillmayer/libjust/hyphen"
	"github.com/npillmayer/libjust/justify"
	"github.com/npillmayer/libjust/metrics"
)

// Params configures Build beyond what it reads from regs.
type Params struct {
	TabWidth dimen.DU
}

// Build measures tokens against m, consults oracle for discretionary
// hyphens inside word tokens, and returns the resulting break
// candidates in source order, terminated by a break at the paragraph's
// end (flags 0 and no penalty; as the last break it is never charged a
// penalty anyway — see justify.Break's contract).
//
// Breaks accumulate in an arraylist rather than a growing slice
// literal, so the hyphenation splice for a word and the token's own
// trailing break can be appended independently before the list is
// flattened once at the end.
func Build(tokens []Token, m metrics.Source, oracle hyphen.Oracle, regs *parameters.TypesettingRegisters, params Params) []justify.Break {
	acc := arraylist.New()
	var x dimen.DU
	hyphenWidth := m.Width('-')

	for _, tok := range tokens {
		switch tok.Kind {
		case TokWord:
			for _, b := range hyphen.WordBreaks(tok.Text, x, oracle, func(s string) dimen.DU {
				return measure(m, s)
			}, hyphenWidth, regs) {
				acc.Add(b)
			}
			x += measure(m, tok.Text)
		case TokSpace:
			w := measure(m, tok.Text)
			acc.Add(justify.Break{X0: x, X1: x + w, Flags: justify.IsSpace})
			x += w
		case TokTab:
			acc.Add(justify.Break{X0: x, X1: x, Flags: justify.IsTab})
			x += params.TabWidth
		case TokHyphen:
			w := m.Width('-')
			acc.Add(justify.Break{X0: x, X1: x + w, Flags: justify.IsHyphen})
			x += w
		}
	}
	acc.Add(justify.Break{X0: x, X1: x})

	breaks := make([]justify.Break, acc.Size())
	for i, v := range acc.Values() {
		breaks[i] = v.(justify.Break)
	}
	return breaks
}

// measure sums glyph advances for s, applying kerns between adjacent
// runes and collapsing ligature pairs where m offers one.
func measure(m metrics.Source, s string) dimen.DU {
	runes := []rune(s)
	var w dimen.DU
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			if lig, ok := m.Ligature(runes[i], runes[i+1]); ok {
				w += m.Width(lig)
				i++
				continue
			}
			w += m.Kern(runes[i], runes[i+1])
		}
		w += m.Width(runes[i])
	}
	return w
}
