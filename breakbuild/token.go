package breakbuild

import (
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// TokenKind classifies a Token produced by Tokenize.
type TokenKind uint8

const (
	TokWord TokenKind = iota
	TokSpace
	TokTab
	TokHyphen // an explicit, unconditional hyphen already present in the text
)

// Token is one UAX#14 segment of input text, classified for the break
// builder.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits text into UAX#14 line-breaking segments and
// classifies each one as a word, a run of spaces, a tab, or an
// explicit hyphen.
func Tokenize(text string) []Token {
	uax14.SetupClasses()
	breaker := uax14.NewLineWrap()
	seg := segment.NewSegmenter(breaker)
	seg.Init(strings.NewReader(text))
	var tokens []Token
	for seg.Next() {
		s := string(seg.Bytes())
		if s == "" {
			continue
		}
		tokens = append(tokens, Token{Kind: classify(s), Text: s})
	}
	return tokens
}

func classify(s string) TokenKind {
	switch {
	case s == "\t":
		return TokTab
	case s == "-":
		return TokHyphen
	case strings.TrimSpace(s) == "":
		return TokSpace
	default:
		return TokWord
	}
}
