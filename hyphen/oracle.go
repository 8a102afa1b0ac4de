/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Package hyphen supplies pluggable "can we hyphenate here" oracles and
// a bridge that turns an oracle's answers into justify.Break candidates.
// Compiling hyphenation patterns from a dictionary source is out of
// scope; this package consumes already-tokenized letter/weight patterns
// (the format Liang's algorithm, and TeX/libhyphen after it, use) and
// answers queries against them.
package hyphen

// Oracle answers hyphenation queries for single words. Hyphenate returns,
// for word, the rune-offset positions at which a discretionary hyphen
// may legally be inserted, ordered ascending.
type Oracle interface {
	Hyphenate(word string) []int
}

// NullOracle never offers a hyphenation point. It is a valid, zero-cost
// Oracle for callers that want hyphenation disabled outright rather than
// threading a nil check through every call site.
type NullOracle struct{}

func (NullOracle) Hyphenate(string) []int { return nil }
