package hyphen

import (
	"strconv"
	"strings"

	"github.com/derekparker/trie"
)

// TrieOracle implements Liang's hyphenation-pattern algorithm (the one
// TeX and libhyphen use): patterns like "hy2phen1a4tion" interleave
// letters with digit weights; matching every substring pattern against
// a padded word and taking, per gap, the maximum weight seen yields a
// weight vector whose odd entries mark legal hyphenation points.
//
// Patterns are stored in a trie keyed by their letters, so lookup probes
// the trie once per substring of the padded query word rather than
// comparing against every pattern in the set.
type TrieOracle struct {
	patterns        *trie.Trie
	minHyphenLength int
}

// NewTrieOracle creates an oracle with no patterns loaded. minHyphenLen
// is the shortest prefix/suffix length a hyphenation point must leave on
// either side of the break (classic values are 2 for most Latin-script
// languages).
func NewTrieOracle(minHyphenLen int) *TrieOracle {
	if minHyphenLen < 1 {
		minHyphenLen = 1
	}
	return &TrieOracle{patterns: trie.New(), minHyphenLength: minHyphenLen}
}

// AddPattern loads one Liang-style pattern, e.g. "hy2phen1a4tion" or
// ".hyph4" (a leading/trailing '.' anchors the pattern to a word
// boundary, as in the classic pattern files).
func (o *TrieOracle) AddPattern(pattern string) error {
	letters, weights, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	o.patterns.Add(letters, weights)
	return nil
}

// Hyphenate implements Oracle.
func (o *TrieOracle) Hyphenate(word string) []int {
	if len([]rune(word)) < 2*o.minHyphenLength {
		return nil
	}
	padded := "." + strings.ToLower(word) + "."
	runes := []rune(padded)
	weights := make([]int, len(runes)+1)

	for i := range runes {
		for j := i + 1; j <= len(runes); j++ {
			node, ok := o.patterns.Find(string(runes[i:j]))
			if !ok {
				continue
			}
			meta, ok := node.Meta().([]int)
			if !ok {
				continue
			}
			for k, w := range meta {
				if pos := i + k; pos < len(weights) && w > weights[pos] {
					weights[pos] = w
				}
			}
		}
	}

	var points []int
	wordLen := len([]rune(word))
	// point k means "break after the first k runes of word". Since padded
	// is word with a leading '.', padded[k] is word's (k-1)th rune, so the
	// gap that splits word after k runes is weights[k+1].
	for k := o.minHyphenLength; k <= wordLen-o.minHyphenLength; k++ {
		if weights[k+1]%2 == 1 {
			points = append(points, k)
		}
	}
	return points
}

// parsePattern splits a Liang pattern into its letters (trie key) and
// the weight that sits in each inter-letter gap, including the gaps
// before the first and after the last letter.
func parsePattern(pattern string) (string, []int, error) {
	var letters strings.Builder
	weights := make([]int, 0, len(pattern)+1)
	pendingDigit := false
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			d, err := strconv.Atoi(string(r))
			if err != nil {
				return "", nil, err
			}
			weights = append(weights, d)
			pendingDigit = true
			continue
		}
		if !pendingDigit {
			weights = append(weights, 0)
		}
		letters.WriteRune(r)
		pendingDigit = false
	}
	if !pendingDigit {
		weights = append(weights, 0)
	}
	return letters.String(), weights, nil
}
