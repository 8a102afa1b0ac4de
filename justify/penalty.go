package justify

import (
	"github.com/npillmayer/libjust/core/dimen"
)

// dev2 computes the squared deviation of a candidate line from the
// target width, where the line runs from xPrev (the X1 of the preceding
// chosen break, or 0 for the start of the paragraph) to breaks[b].X0.
//
// A break that is neither a space nor a hyphen carries no geometric
// deviation cost of its own — e.g. the forced paragraph terminator,
// which is never voluntarily "too short" or "too long" in the sense
// this metric measures.
func dev2(xPrev dimen.DU, b int, breaks []Break, params Params) int64 {
	if breaks[b].Flags&(IsSpace|IsHyphen) == 0 {
		return 0
	}
	dev := int64(breaks[b].X0) - int64(xPrev) - int64(params.SetWidth)
	return dev * dev
}

// edgePenalty is the intrinsic cost of choosing b as a line terminator.
// The paragraph's forced terminal break (the last element of breaks)
// never pays its own penalty: there is no alternative to ending there.
func edgePenalty(b int, breaks []Break) int64 {
	if b == len(breaks)-1 {
		return 0
	}
	return breaks[b].Penalty
}
