/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Package metrics supplies the width/kern/ligature collaborator that
// breakbuild.Build consumes to turn a token stream into justify.Break
// x0/x1 coordinates. It does not render anything; it only measures.
package metrics

import "github.com/npillmayer/libjust/core/dimen"

// Source answers the three questions a break builder needs about a
// font: how wide is this glyph, is there a kerning adjustment between
// two adjacent glyphs, and does a pair of glyphs combine into a
// ligature.
type Source interface {
	Width(r rune) dimen.DU
	Kern(a, b rune) dimen.DU
	Ligature(a, b rune) (rune, bool)
}
