package hyphen

import (
	"testing"

	"github.com/npillmayer/libjust/core/dimen"
	"github.com/npillmayer/libjust/core/parameters"
	"github.com/npillmayer/libjust/justify"
)

func newLoadedOracle(t *testing.T) *TrieOracle {
	t.Helper()
	o := NewTrieOracle(2)
	for _, p := range []string{"hy2phen1a4tion", ".ju1sti4fy"} {
		if err := o.AddPattern(p); err != nil {
			t.Fatalf("AddPattern(%q): %v", p, err)
		}
	}
	return o
}

func TestPointsFindsOddWeightGaps(t *testing.T) {
	o := newLoadedOracle(t)
	points := o.Hyphenate("hyphenation")
	if len(points) == 0 {
		t.Fatalf("expected at least one hyphenation point in 'hyphenation', got none")
	}
	for _, p := range points {
		if p < 2 || p > len("hyphenation")-2 {
			t.Errorf("point %d violates the minimum-fragment-length constraint", p)
		}
	}
}

func TestPointsOnShortWordIsEmpty(t *testing.T) {
	o := newLoadedOracle(t)
	if got := o.Hyphenate("a"); got != nil {
		t.Errorf("expected no points for a word shorter than twice the minimum, got %v", got)
	}
}

func TestNullOracleNeverOffersPoints(t *testing.T) {
	var o NullOracle
	if got := o.Hyphenate("anything"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestWordBreaksRespectsRegisters(t *testing.T) {
	regs := parameters.NewTypesettingRegisters()
	regs.Push(parameters.P_HYPHENPENALTY, 5000)
	regs.Push(parameters.P_MINHYPHENLENGTH, 2)
	o := newLoadedOracle(t)
	width := func(s string) dimen.DU { return dimen.DU(len(s)) * 10 }

	breaks := WordBreaks("hyphenation", 0, o, width, dimen.DU(5), regs)
	for _, b := range breaks {
		if b.Penalty != 5000 {
			t.Errorf("expected penalty 5000, got %d", b.Penalty)
		}
		if b.Flags&justify.IsHyphen == 0 {
			t.Errorf("expected IsHyphen flag set")
		}
	}
}
