package justify

import (
	"math"

	"github.com/npillmayer/libjust/core/dimen"
)

// largePenaltyBias mirrors the bias added by RepairMonotonicity to push
// an out-of-order break out of contention. It is scaled like a 32-bit
// penalty (the range breaks' own Penalty values are expected to live
// in) despite Break.Penalty being 64-bit, so it composes against
// ordinary hyphen/space penalties without risking overflow when summed.
const largePenaltyBias int64 = math.MaxInt32 / 2

// RepairMonotonicity scans breaks for X0 values that decrease relative
// to an earlier break — which happens when a tab reset the pen position
// mid-paragraph — and biases the penalty of each break in the run just
// before such a regression whose X0 lies beyond the regressed position,
// so the greedy scan never treats it as a usable candidate.
// It mutates breaks in place and is idempotent: X0 values are never
// changed, so a second pass finds the same inversions, but a break whose
// penalty already reaches largePenaltyBias is not biased again.
func RepairMonotonicity(breaks []Break) {
	for i := 1; i < len(breaks); i++ {
		if breaks[i].X0 >= breaks[i-1].X0 {
			continue
		}
		for j := i - 1; j >= 0 && breaks[j].X0 > breaks[i].X0; j-- {
			if breaks[j].Penalty < largePenaltyBias {
				breaks[j].Penalty += largePenaltyBias
			}
		}
	}
}

// HSJust is the high-speed greedy justifier. For each line it picks the
// break minimizing squared deviation from the target width plus
// intrinsic penalty among the breaks reachable within the shrink
// feasibility bound, preferring the later of two equally good
// candidates. It honors IsTab breaks by advancing the pen to the next
// tab stop and resetting the line's compressible-space budget there.
//
// HSJust repairs a non-monotone input (see RepairMonotonicity) before
// running, so callers need not pre-sort tab-reset paragraphs themselves.
func HSJust(breaks []Break, params Params) (result []int, lines int, err error) {
	if err = validateInput(breaks, params); err != nil {
		return nil, 0, err
	}
	T().Debugf("hs_just: %d breaks, set_width=%v, max_neg_space=%d", len(breaks), params.SetWidth, params.MaxNegSpace)
	RepairMonotonicity(breaks)
	n := len(breaks)
	tabWidth := params.TabWidth
	if tabWidth <= 0 {
		tabWidth = 1
	}
	var x dimen.DU
	i := 0
	for i != n {
		var tabOffset dimen.DU
		totalSpace := int64(0)

		spaceErr := int64(breaks[i].X0) + int64(tabOffset) - int64(x) - int64(params.SetWidth)
		bestPenalty := spaceErr*spaceErr + edgePenalty(i, breaks)
		bestIdx := i

		if breaks[i].Flags&IsTab != 0 {
			nextStop := ((breaks[i].X0+tabOffset-x)/tabWidth + 1) * tabWidth
			tabOffset = x + nextStop - breaks[i].X0
		}
		if breaks[i].Flags&IsSpace != 0 {
			totalSpace += int64(breaks[i].X1 - breaks[i].X0)
		}
		i++

		for i < n {
			bound := int64(x+params.SetWidth) + shrinkBound(totalSpace, params.MaxNegSpace)
			if int64(breaks[i].X0+tabOffset) > bound {
				break
			}
			spaceErr = int64(breaks[i].X0) + int64(tabOffset) - int64(x) - int64(params.SetWidth)
			penalty := spaceErr * spaceErr

			if breaks[i].Flags&IsTab != 0 {
				nextStop := ((breaks[i].X0+tabOffset-x)/tabWidth + 1) * tabWidth
				tabOffset = x + nextStop - breaks[i].X0
				totalSpace = 0
			}
			if penalty > bestPenalty {
				break
			}
			penalty += edgePenalty(i, breaks)
			if penalty <= bestPenalty {
				bestPenalty = penalty
				bestIdx = i
			}
			if breaks[i].Flags&IsSpace != 0 {
				totalSpace += int64(breaks[i].X1 - breaks[i].X0)
			}
			i++
		}

		result = append(result, bestIdx)
		x = breaks[bestIdx].X1
		i = bestIdx + 1
	}
	return result, len(result), nil
}
