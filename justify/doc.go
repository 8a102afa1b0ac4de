/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Package justify implements two paragraph line-breaking algorithms that
// operate on a flat sequence of candidate break points: a high-quality
// optimizer (HQJust) that finds a minimum-cost sequence of breaks by
// shortest-path search over a banded graph, and a high-speed greedy
// justifier (HSJust) that picks, line by line, the best break within a
// feasible window, including tab-stop handling.
//
// Both algorithms are deterministic and allocation-light: callers supply
// a []Break describing line-ending candidates (words, hyphenation points,
// tab stops, and the forced paragraph terminator) plus a Params carrying
// the target line width and the two justifiers return the indices of the
// chosen breaks, line by line.
package justify
