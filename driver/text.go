package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/libjust/core/dimen"
)

// Text is a reference Driver that renders a justified paragraph as
// plain text, one line per output line, words separated by a single
// space regardless of spaceGap (real glyph-level spacing is a
// Non-goal; this exists to prove the interface boundary end to end,
// the same role firstfit's local justify() helper played for
// eyeballing line breaks in tests).
type Text struct {
	w      io.Writer
	line   []string
	pageNo int
}

// NewText creates a Text driver writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) BeginPage() {
	t.pageNo++
	fmt.Fprintf(t.w, "--- page %d ---\n", t.pageNo)
}

func (t *Text) EndPage() {}

func (t *Text) BeginLine(spaceGap dimen.DU) {
	t.line = t.line[:0]
}

func (t *Text) ShowWord(glyphs []rune, kernDeltas []dimen.DU, trailingSpace bool) {
	t.line = append(t.line, string(glyphs))
}

func (t *Text) EndLine() {
	fmt.Fprintln(t.w, strings.Join(t.line, " "))
}

func (t *Text) BlankLine() {
	fmt.Fprintln(t.w)
}
