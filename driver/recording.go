package driver

import "github.com/npillmayer/libjust/core/dimen"

// Word is one ShowWord call captured by Recording.
type Word struct {
	Glyphs        []rune
	KernDeltas    []dimen.DU
	TrailingSpace bool
}

// Line is one line's worth of recorded calls.
type Line struct {
	SpaceGap dimen.DU
	Words    []Word
	Blank    bool
}

// Recording is a Driver that only remembers what it was told, for
// asserting against in tests instead of parsing rendered output.
type Recording struct {
	Pages [][]Line
	cur   *Line
}

// NewRecording creates an empty Recording with no open page.
func NewRecording() *Recording {
	return &Recording{}
}

func (r *Recording) BeginPage() {
	r.Pages = append(r.Pages, nil)
}

func (r *Recording) EndPage() {
	r.cur = nil
}

func (r *Recording) BeginLine(spaceGap dimen.DU) {
	r.cur = &Line{SpaceGap: spaceGap}
}

func (r *Recording) ShowWord(glyphs []rune, kernDeltas []dimen.DU, trailingSpace bool) {
	if r.cur == nil {
		r.cur = &Line{}
	}
	r.cur.Words = append(r.cur.Words, Word{Glyphs: glyphs, KernDeltas: kernDeltas, TrailingSpace: trailingSpace})
}

func (r *Recording) EndLine() {
	if r.cur == nil {
		return
	}
	if len(r.Pages) == 0 {
		r.Pages = append(r.Pages, nil)
	}
	last := len(r.Pages) - 1
	r.Pages[last] = append(r.Pages[last], *r.cur)
	r.cur = nil
}

func (r *Recording) BlankLine() {
	if len(r.Pages) == 0 {
		r.Pages = append(r.Pages, nil)
	}
	last := len(r.Pages) - 1
	r.Pages[last] = append(r.Pages[last], Line{Blank: true})
}
