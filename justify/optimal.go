package justify

import (
	"math"

	"github.com/npillmayer/libjust/core/dimen"
)

const infDist = int64(math.MaxInt64)

// scratchEntry is per-break working state for the shortest-path search.
// It is addressed through an offset-by-one slice so the virtual
// paragraph start (conceptually break index -1) has a real storage slot
// without requiring negative indices.
type scratchEntry struct {
	totalSpace int64
	dist       int64
	pred       int
	nlLeft     int
	nlRight    int
}

// findMinDevPt returns the largest break index b > breakIdx such that
// breaks[b].X0 does not exceed xPrev+SetWidth, or breakIdx itself if
// even the very next break already overshoots. This is the pivot a
// VISIT step scans outward from: everything at or before it is a
// candidate "line too short" (LEFT scan), everything after is a
// candidate "line too long" (RIGHT scan).
func findMinDevPt(breakIdx int, breaks []Break, params Params) int {
	var x dimen.DU
	if breakIdx >= 0 {
		x = breaks[breakIdx].X1
	}
	xTarget := x + params.SetWidth
	i := breakIdx + 1
	for i < len(breaks) && breaks[i].X0 <= xTarget {
		i++
	}
	return i - 1
}

// HQJust is the high-quality optimizer. It finds, by Dijkstra-style
// shortest-path search over the (implicit) graph whose nodes are break
// indices and whose edges run from a chosen line start to every
// feasible terminator, a sequence of breaks minimizing total cost —
// the sum over chosen lines of squared deviation from the target width
// plus each line-ending break's intrinsic penalty.
//
// The graph is never materialized: each VISIT of a break computes its
// pivot once and then walks outward from it incrementally (LEFT/RIGHT
// scans), so the whole search runs in time roughly linear in the number
// of breaks actually explored rather than quadratic in n.
func HQJust(breaks []Break, params Params) (result []int, lines int, err error) {
	if err = validateInput(breaks, params); err != nil {
		return nil, 0, err
	}
	if err = validateMonotone(breaks); err != nil {
		return nil, 0, err
	}
	n := len(breaks)
	if n > (math.MaxInt-1)/3 {
		return nil, 0, Error(ECodeAllocation, "%d breaks exceeds the maximum this implementation can size a search queue for", n)
	}
	T().Debugf("hq_just: %d breaks, set_width=%v, max_neg_space=%d", n, params.SetWidth, params.MaxNegSpace)

	if n == 1 {
		// The sole break is simultaneously the only legal line start
		// and the forced terminator; there is nothing else to search for.
		return []int{0}, 1, nil
	}

	s := make([]scratchEntry, n+1)
	at := func(idx int) *scratchEntry { return &s[idx+1] }

	totalSpace := int64(0)
	for i := 0; i < n; i++ {
		if breaks[i].Flags&IsSpace != 0 {
			totalSpace += int64(breaks[i].X1 - breaks[i].X0)
		}
		*at(i) = scratchEntry{totalSpace: totalSpace, dist: infDist, pred: -2}
	}
	*at(-1) = scratchEntry{totalSpace: 0, dist: 0, pred: -2}

	queue := newPQueue(3*n + 1)
	queue.insert(0, -1, visit)

	found := false
	for !queue.empty() {
		head := queue.head()
		dist, breakIdx, kind := head.dist, head.breakIdx, head.kind

		switch kind {
		case visit:
			if breakIdx == n-1 {
				found = true
				queue.popHead()
				goto done
			}
			queue.popHead()

			var xPrev dimen.DU
			if breakIdx >= 0 {
				xPrev = breaks[breakIdx].X1
			}
			minDevPt := findMinDevPt(breakIdx, breaks, params)

			if minDevPt > breakIdx {
				w := dist + dev2(xPrev, minDevPt, breaks, params)
				queue.insert(w, breakIdx, leftScan)
				at(breakIdx).nlLeft = minDevPt
			}

			if minDevPt+1 < n {
				spanSpace := at(minDevPt).totalSpace - at(breakIdx).totalSpace
				bound := int64(xPrev+params.SetWidth) + shrinkBound(spanSpace, params.MaxNegSpace)
				if int64(breaks[minDevPt+1].X0) <= bound {
					w := dist + dev2(xPrev, minDevPt+1, breaks, params)
					queue.insert(w, breakIdx, rightScan)
					at(breakIdx).nlRight = minDevPt + 1
				}
			}

		case leftScan, rightScan:
			var target int
			if kind == leftScan {
				target = at(breakIdx).nlLeft
			} else {
				target = at(breakIdx).nlRight
			}
			newDist := dist + edgePenalty(target, breaks)
			if at(target).dist == infDist {
				queue.insert(newDist, target, visit)
				at(target).dist = newDist
				at(target).pred = breakIdx
			} else if newDist < at(target).dist {
				if !queue.move(at(target).dist, target, visit, newDist) {
					return nil, 0, Error(ECodeQueueCorrupt, "could not locate queued VISIT(%d) for relaxation", target)
				}
				at(target).dist = newDist
				at(target).pred = breakIdx
			}

			var xPrev dimen.DU
			if breakIdx >= 0 {
				xPrev = breaks[breakIdx].X1
			}
			if kind == leftScan {
				target--
				at(breakIdx).nlLeft = target
			} else {
				spanSpace := at(target).totalSpace - at(breakIdx).totalSpace
				target++
				if target >= n {
					target = n
				} else {
					bound := int64(xPrev+params.SetWidth) + shrinkBound(spanSpace, params.MaxNegSpace)
					if int64(breaks[target].X0) > bound {
						target = n
					}
				}
				at(breakIdx).nlRight = target
			}

			if target > breakIdx && target < n {
				w := at(breakIdx).dist + dev2(xPrev, target, breaks, params)
				if !queue.move(dist, breakIdx, kind, w) {
					return nil, 0, Error(ECodeQueueCorrupt, "could not locate queued scan(%d) for rescheduling", breakIdx)
				}
			} else {
				queue.popHead()
			}
		}
	}
done:
	if !found {
		T().Infof("hq_just: no feasible break sequence for %d breaks", n)
		return nil, 0, nil
	}
	for idx := n - 1; idx != -1; idx = at(idx).pred {
		lines++
	}
	result = make([]int, lines)
	idx := n - 1
	for i := lines - 1; i >= 0; i-- {
		result[i] = idx
		idx = at(idx).pred
	}
	return result, lines, nil
}
