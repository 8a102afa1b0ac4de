package metrics

import (
	"sync"

	"github.com/npillmayer/libjust/core/dimen"
	"github.com/npillmayer/uax/uax11"
)

// Monospace is a Source for callers without a real font: every rune
// advances by a whole number of ems, given by the rune's UAX#11 East
// Asian Width class (narrow runes advance by 1 em, wide/fullwidth
// runes by 2). It never kerns and never ligates.
type Monospace struct {
	em dimen.DU
}

var setupEAWOnce sync.Once

// NewMonospace creates a Monospace metrics source with the given em
// size. If em is zero, it defaults to 10pt.
func NewMonospace(em dimen.DU) *Monospace {
	if em == 0 {
		em = 10 * dimen.PT
	}
	setupEAWOnce.Do(uax11.SetupEAWClasses)
	return &Monospace{em: em}
}

// Width implements Source.
func (m *Monospace) Width(r rune) dimen.DU {
	w := uax11.Width([]byte(string(r)), uax11.LatinContext)
	return dimen.DU(w) * m.em
}

// Kern implements Source. Monospace fonts never kern.
func (m *Monospace) Kern(a, b rune) dimen.DU {
	return 0
}

// Ligature implements Source. Monospace fonts never ligate.
func (m *Monospace) Ligature(a, b rune) (rune, bool) {
	return 0, false
}
