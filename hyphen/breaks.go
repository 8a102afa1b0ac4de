package hyphen

import (
	"github.com/npillmayer/libjust/core/dimen"
	"github.com/npillmayer/libjust/core/parameters"
	"github.com/npillmayer/libjust/justify"
)

// WidthFunc measures the horizontal advance of a string under whatever
// font/metrics the caller is using.
type WidthFunc func(s string) dimen.DU

// WordBreaks turns an oracle's hyphenation points for word into
// justify.Break candidates suitable for splicing into a line's break
// list. offset is the absolute horizontal position (from paragraph
// start) at which word begins; hyphenWidth is the advance of the hyphen
// glyph itself (added to X1 at each candidate, per the Break contract).
// The intrinsic penalty and minimum fragment length are taken from regs
// (P_HYPHENPENALTY, P_MINHYPHENLENGTH), so callers share one place to
// tune hyphenation aggressiveness across a document.
func WordBreaks(word string, offset dimen.DU, oracle Oracle, width WidthFunc, hyphenWidth dimen.DU, regs *parameters.TypesettingRegisters) []justify.Break {
	penalty := int64(regs.N(parameters.P_HYPHENPENALTY))
	minLen := regs.N(parameters.P_MINHYPHENLENGTH)

	var out []justify.Break
	for _, p := range oracle.Hyphenate(word) {
		runes := []rune(word)
		if p < minLen || len(runes)-p < minLen {
			continue
		}
		head := string(runes[:p])
		x0 := offset + width(head)
		out = append(out, justify.Break{
			X0:      x0,
			X1:      x0 + hyphenWidth,
			Penalty: penalty,
			Flags:   justify.IsHyphen,
		})
	}
	return out
}
