package window

// Variable — rolling-window bounds over an irregularly spaced index
//
// Description:
//
//	Variable computes, for a monotonic sequence of int64 index values
//	(timestamps, offsets, any ordinal key), the pair of position arrays
//	(start, end) delimiting a rolling window at each emitted slot. Window
//	width in positions varies because the index values are irregularly
//	spaced: a window covers every position whose index value lies within
//	`size` index units of the value at the window's own start, inclusive.
//	Downstream aggregation is plain iteration over [start[i], end[i]]
//	ranges into the data aligned with the index.
//
// Algorithm Outline (single forward sweep):
//  1. Detect direction: if index[N-1] < index[0] the sequence is
//     descending; set sign = -1 and multiply every comparison by it, so
//     one code path serves both directions.
//  2. Maintain a write cursor windowI and two monotone read cursors:
//     nextSI (next unconsumed start position) and nextEI (next unconsumed
//     end position). While nextEI < N:
//     a. start[windowI] = nextSI =: si.
//     b. Ceilings from index[si]: windowMax = index[si] + sign*(size-1),
//     stepMax = index[si] + sign*(step-1).
//     c. Step scan: from si+1, take the last position whose value does
//     not exceed stepMax (signed sense); the next start follows it.
//     With step == 1 this coalesces duplicate index values into one
//     window per distinct value.
//     d. Window scan: advance nextEI while index[nextEI] does not exceed
//     windowMax; end[windowI] = nextEI - 1. The scan resumes where the
//     previous window's scan stopped and never rewinds, which is what
//     keeps the whole sweep O(N) amortized.
//     e. nextSI = stepI+1; nextEI = max(nextSI, nextEI); windowI++.
//  3. Validity filter (after the sweep, not interleaved): keep slots with
//     a written start, start <= end, and span end-start+1 >= MinPeriods.
//     Dropped slots vanish from the output, so its length may be < N.
//  4. Open-edge widening (after filtering): open left edge → start-1,
//     open right edge → end+1, on every surviving slot. Validity is never
//     re-checked against widened values, so with open edges the reported
//     range can nominally extend one position past what step 3 validated.
//
// Complexity:
//
//	Time   = O(N) amortized (each of the two read cursors crosses every
//	         position at most once)
//	Memory = O(N) for the two output arrays
//
// Errors:
//   - ErrWindowSize — size < 0.
//   - ErrStepSize   — opts.Step < 0.
//   - ErrMinPeriods — opts.MinPeriods < 0.
//   - ErrClosed     — opts.Closed outside the four named values.

// Variable computes variable rolling-window bounds over index.
// Returns (start, end, error); both slices have equal length, one entry per
// retained window, with start values non-decreasing in emission order.
//
// index must be monotonic (strictly or not) in either direction and is only
// read. An empty index yields two empty slices and no error. A nil opts is
// DefaultOptions(). Pure function: no shared state, safe to call
// concurrently on independent inputs.
//
// Example:
//
//	start, end, err := window.Variable(ts, 300, nil)
func Variable(index []int64, size int64, opts *Options) (start, end []int64, err error) {
	o, err := normalize(opts)
	if err != nil {
		return nil, nil, err
	}
	if size < 0 {
		return nil, nil, ErrWindowSize
	}
	n := len(index)
	if n == 0 {
		return []int64{}, []int64{}, nil
	}

	// Direction sign: -1 flips every comparison for descending input.
	var sign int64 = 1
	if index[n-1] < index[0] {
		sign = -1
	}

	// One slot per sweep iteration; the sweep runs at most n iterations
	// because nextSI strictly increases each time.
	start = make([]int64, n)
	end = make([]int64, n)
	for i := range start {
		start[i] = sentinel
	}

	windowI := 0           // next output slot
	nextSI, nextEI := 0, 0 // monotone read cursors
	for nextEI < n {
		si := nextSI
		start[windowI] = int64(si)

		windowMax := index[si] + sign*(size-1) // last value inside the window
		stepMax := index[si] + sign*(o.Step-1) // last value inside the step

		// Step scan: last position at or before stepMax, never before si.
		stepI := si
		for j := si + 1; j < n && sign*index[j] <= sign*stepMax; j++ {
			stepI = j
		}

		// Window scan: resume from the previous window's frontier. Every
		// position is checked against a ceiling exactly once across the
		// whole sweep.
		for nextEI < n && sign*index[nextEI] <= sign*windowMax {
			nextEI++
		}
		end[windowI] = int64(nextEI) - 1 // may precede si; filtered below

		nextSI = stepI + 1
		if nextSI > nextEI { // step jumped past the window frontier
			nextEI = nextSI
		}
		windowI++
	}

	start, end = filterValid(start[:windowI], end[:windowI], o.MinPeriods)
	leftOpen, rightOpen := openEdges(o.Closed)
	widenOpen(start, end, leftOpen, rightOpen)

	return start, end, nil
}
