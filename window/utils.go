// Package window shares validation and post-processing helpers across the
// Variable, Fixed, Expanding and Forward calculators so that every one of
// them filters and widens bounds identically.
package window

import "fmt"

// sentinel marks a start slot the sweep never wrote.
const sentinel = -1

// normalize resolves nil/zero-valued options to their defaults and rejects
// invalid values. Returned Options are safe to use without further checks.
func normalize(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Step == 0 { // unset field, not an explicit zero step
		o.Step = 1
	}
	if o.Step < 0 {
		return o, fmt.Errorf("%w: got %d", ErrStepSize, o.Step)
	}
	if o.MinPeriods < 0 {
		return o, fmt.Errorf("%w: got %d", ErrMinPeriods, o.MinPeriods)
	}
	if o.Closed < ClosedLeft || o.Closed > ClosedNeither {
		return o, fmt.Errorf("%w: got %d", ErrClosed, int(o.Closed))
	}

	return o, nil
}

// openEdges splits a Closed value into the two independent widening flags.
// The left edge is open unless closure includes it (left or both); the right
// edge is open unless closure includes it (right or both).
func openEdges(c Closed) (leftOpen, rightOpen bool) {
	leftOpen = c != ClosedLeft && c != ClosedBoth
	rightOpen = c != ClosedRight && c != ClosedBoth

	return leftOpen, rightOpen
}

// filterValid compacts start/end in place, keeping only slots that were
// written (no sentinel), are non-empty (start <= end) and span at least
// minPeriods inclusive positions. Idempotent: running it on its own output
// keeps every slot.
// Time Complexity: O(len(start)).
func filterValid(start, end []int64, minPeriods int) ([]int64, []int64) {
	keep := 0
	for i := range start {
		if start[i] < 0 || start[i] > end[i] { // sentinel or empty window
			continue
		}
		if end[i]-start[i]+1 < int64(minPeriods) { // too few positions
			continue
		}
		start[keep], end[keep] = start[i], end[i]
		keep++
	}

	return start[:keep], end[:keep]
}

// widenOpen applies the open-edge adjustment to every surviving slot:
// open left edges report one position earlier, open right edges one position
// later. Applied strictly after filterValid, so validity always reflects the
// inclusive pre-widening span; widened bounds may point one position outside
// [0, N).
func widenOpen(start, end []int64, leftOpen, rightOpen bool) {
	if leftOpen {
		for i := range start {
			start[i]--
		}
	}
	if rightOpen {
		for i := range end {
			end[i]++
		}
	}
}
