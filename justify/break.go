package justify

import (
	"github.com/npillmayer/libjust/core/dimen"
)

// Flags classifies a candidate break point.
type Flags uint8

const (
	// IsSpace marks a break occurring at an interword space: the glue
	// between X0 and X1 is discardable and contributes to a line's
	// compressible (shrinkable) space budget.
	IsSpace Flags = 1 << iota
	// IsHyphen marks a break occurring at a discretionary hyphenation
	// point: choosing it appends a hyphen glyph of width X1-X0.
	IsHyphen
	// IsTab marks a break that also resets the pen position to the next
	// tab stop; only meaningful to HSJust.
	IsTab
)

// Break describes one candidate point at which a paragraph may be split
// into two lines. X0 is the horizontal extent of the line ending just
// before this break (not counting a trailing space or hyphen); X1 is the
// extent including whatever trails the break (the space's advance, or
// the hyphen's width). For an ordinary word break with no trailing
// material, X0 equals X1.
//
// Both X0 and X1 are measured from the start of the paragraph, not from
// the previous break — this is what lets the justifiers compare any two
// breaks' positions directly.
//
// Penalty is a non-negative cost charged when this break is chosen as a
// line terminator. It never applies to the final break in a sequence,
// which is the paragraph's forced terminator and carries no intrinsic
// cost of its own.
type Break struct {
	X0, X1  dimen.DU
	Penalty int64
	Flags   Flags
}

// Params carries the geometry a justifier needs to evaluate line widths.
type Params struct {
	// SetWidth is the target line width.
	SetWidth dimen.DU
	// MaxNegSpace bounds how much of a line's discardable space may be
	// compressed away, expressed as a 1/256 fixed-point fraction (256
	// meaning "all of it"). A candidate line may overrun SetWidth by at
	// most floor((space_in_line*MaxNegSpace+128)/256).
	MaxNegSpace int32
	// TabWidth is the pitch of tab stops; zero is treated as 1 design
	// unit so a malformed paragraph with IsTab breaks never divides by
	// zero. Only consulted by HSJust.
	TabWidth dimen.DU
}

func shrinkBound(spaceInLine int64, maxNegSpace int32) int64 {
	return (spaceInLine*int64(maxNegSpace) + 128) >> 8
}

func validateInput(breaks []Break, params Params) error {
	if len(breaks) == 0 {
		return Error(ECodeInvalidInput, "breaks must contain at least the paragraph terminator")
	}
	if params.SetWidth < 0 {
		return Error(ECodeInvalidInput, "set width must not be negative, got %v", params.SetWidth)
	}
	for i, b := range breaks {
		if b.X1 < b.X0 {
			return Error(ECodeInvalidInput, "break %d has x1 (%v) smaller than x0 (%v)", i, b.X1, b.X0)
		}
		if b.Penalty < 0 {
			return Error(ECodeInvalidInput, "break %d has negative penalty %d", i, b.Penalty)
		}
	}
	return nil
}

func validateMonotone(breaks []Break) error {
	for i := 1; i < len(breaks); i++ {
		if breaks[i].X0 < breaks[i-1].X0 {
			return Error(ECodeInvalidInput, "break %d x0 (%v) precedes break %d x0 (%v); HQJust requires a non-decreasing sequence, use HSJust or RepairMonotonicity for input that resets on tabs", i, breaks[i].X0, i-1, breaks[i-1].X0)
		}
	}
	return nil
}
