/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Package otmetrics loads OpenType/TrueType fonts and answers glyph
// width, kern and ligature queries against them. It is the one place
// in this module that touches golang.org/x/image/font/sfnt directly;
// everything else works against metrics.Source.
package otmetrics

import (
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/npillmayer/libjust/core/dimen"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Font is a parsed scalable font, not yet sized for rendering.
type Font struct {
	Name   string
	Binary []byte
	SFNT   *sfnt.Font
}

// Load parses an OpenType/TrueType font file from disk.
func Load(path string) (*Font, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse parses font bytes already held in memory.
func Parse(b []byte) (*Font, error) {
	f := &Font{Binary: b}
	var err error
	f.SFNT, err = sfnt.Parse(b)
	if err != nil {
		return nil, err
	}
	f.Name, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

var (
	fallbackOnce sync.Once
	fallback     *Font
)

// Fallback returns the embedded Go Sans font, used when no real font is
// available. It never fails: if sfnt.Parse of the embedded TTF fails,
// that is a build-time defect, not a runtime condition to recover from.
func Fallback() *Font {
	fallbackOnce.Do(func() {
		f := &Font{Name: "Go Sans", Binary: goregular.TTF}
		var err error
		f.SFNT, err = sfnt.Parse(f.Binary)
		if err != nil {
			panic(fmt.Sprintf("otmetrics: cannot parse embedded fallback font: %v", err))
		}
		fallback = f
	})
	return fallback
}

// Metrics is a Font sized and faced at a given point size; it
// implements metrics.Source.
type Metrics struct {
	parent *Font
	face   font.Face
	size   float64
}

// Size produces a Metrics adapter for f at the given point size and DPI.
func Size(f *Font, pt float64, dpi float64) (*Metrics, error) {
	if dpi == 0 {
		dpi = 72
	}
	face, err := opentype.NewFace(f.SFNT, &opentype.FaceOptions{Size: pt, DPI: dpi})
	if err != nil {
		return nil, err
	}
	return &Metrics{parent: f, face: face, size: pt}, nil
}

// Width implements metrics.Source.
func (m *Metrics) Width(r rune) dimen.DU {
	adv, ok := m.face.GlyphAdvance(r)
	if !ok {
		T().Debugf("otmetrics: no glyph for rune %q in %s", r, m.parent.Name)
		return 0
	}
	return dimen.DU(adv.Round())
}

// Kern implements metrics.Source.
func (m *Metrics) Kern(a, b rune) dimen.DU {
	k := m.face.Kern(a, b)
	return dimen.DU(k.Round())
}

// commonLigatures covers the handful of Latin-script ligatures callers
// are likely to hit without needing GSUB feature lookup: f+i and f+l.
var commonLigatures = map[[2]rune]rune{
	{'f', 'i'}: 'ﬁ',
	{'f', 'l'}: 'ﬂ',
}

// Ligature implements metrics.Source against a small built-in table of
// standard Latin ligatures. It does not consult the font's GSUB table;
// fonts that encode ligatures only via GSUB substitution rules (rather
// than also mapping a Unicode ligature code point) will not match here.
func (m *Metrics) Ligature(a, b rune) (rune, bool) {
	r, ok := commonLigatures[[2]rune{a, b}]
	if !ok {
		return 0, false
	}
	if _, has := m.face.GlyphAdvance(r); !has {
		return 0, false
	}
	return r, true
}
