package breakbuild

import (
	"testing"

	"github.com/npillmayer/libjust/core/dimen"
	"github.com/npillmayer/libjust/core/parameters"
	"github.com/npillmayer/libjust/hyphen"
	"github.com/npillmayer/libjust/justify"
)

type fixedWidth struct{ w dimen.DU }

func (f fixedWidth) Width(r rune) dimen.DU           { return f.w }
func (f fixedWidth) Kern(a, b rune) dimen.DU         { return 0 }
func (f fixedWidth) Ligature(a, b rune) (rune, bool) { return 0, false }

func TestTokenizeClassifiesWordsAndSpaces(t *testing.T) {
	toks := Tokenize("the fox")
	var sawWord, sawSpace bool
	for _, tok := range toks {
		if tok.Kind == TokWord {
			sawWord = true
		}
		if tok.Kind == TokSpace {
			sawSpace = true
		}
	}
	if !sawWord || !sawSpace {
		t.Fatalf("expected both word and space tokens, got %+v", toks)
	}
}

func TestBuildEndsWithTerminalBreak(t *testing.T) {
	tokens := []Token{{Kind: TokWord, Text: "hi"}, {Kind: TokSpace, Text: " "}, {Kind: TokWord, Text: "there"}}
	regs := parameters.NewTypesettingRegisters()
	breaks := Build(tokens, fixedWidth{w: 10}, hyphen.NullOracle{}, regs, Params{TabWidth: 40})
	if len(breaks) == 0 {
		t.Fatalf("expected at least the terminal break")
	}
	last := breaks[len(breaks)-1]
	if last.Flags != 0 {
		t.Errorf("expected terminal break to carry no flags, got %v", last.Flags)
	}
}

func TestBuildAdvancesPastTabByTabWidth(t *testing.T) {
	tokens := []Token{{Kind: TokWord, Text: "a"}, {Kind: TokTab, Text: "\t"}, {Kind: TokWord, Text: "b"}}
	regs := parameters.NewTypesettingRegisters()
	breaks := Build(tokens, fixedWidth{w: 10}, hyphen.NullOracle{}, regs, Params{TabWidth: 40})
	var tabBreak *justify.Break
	for i := range breaks {
		if breaks[i].Flags&justify.IsTab != 0 {
			tabBreak = &breaks[i]
		}
	}
	if tabBreak == nil {
		t.Fatalf("expected a tab break in %+v", breaks)
	}
	if tabBreak.X0 != 10 {
		t.Errorf("expected tab break at x=10, got %d", tabBreak.X0)
	}
	if last := breaks[len(breaks)-1]; last.X0 != 60 {
		t.Errorf("expected the tab to advance the pen by 40, ending at x=60, got %d", last.X0)
	}
}

func TestBuildSplicesHyphenationPoints(t *testing.T) {
	o := hyphen.NewTrieOracle(2)
	if err := o.AddPattern("hy2phen1a4tion"); err != nil {
		t.Fatalf("AddPattern: %v", err)
	}
	regs := parameters.NewTypesettingRegisters()
	regs.Push(parameters.P_HYPHENPENALTY, 5000)
	regs.Push(parameters.P_MINHYPHENLENGTH, 2)
	tokens := []Token{{Kind: TokWord, Text: "hyphenation"}}
	breaks := Build(tokens, fixedWidth{w: 10}, o, regs, Params{})
	var sawHyphen bool
	for _, b := range breaks {
		if b.Flags&justify.IsHyphen != 0 {
			sawHyphen = true
		}
	}
	if !sawHyphen {
		t.Errorf("expected at least one hyphenation break in %+v", breaks)
	}
}
