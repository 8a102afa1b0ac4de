/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Package driver defines the output boundary callers sit behind once a
// paragraph has been justified: something that can be told "begin a
// line with this much space to distribute" and "show this word". It
// does not render glyphs to a page; that is out of scope. Two
// reference implementations are provided: Recording (for tests) and
// Text (an ASCII-ish preview, used by cmd/libjust).
package driver

import "github.com/npillmayer/libjust/core/dimen"

// Driver receives a justified paragraph one line at a time.
type Driver interface {
	BeginPage()
	EndPage()
	BeginLine(spaceGap dimen.DU)
	ShowWord(glyphs []rune, kernDeltas []dimen.DU, trailingSpace bool)
	EndLine()
	BlankLine()
}
