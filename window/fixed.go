package window

// Fixed computes trailing positional window bounds over a uniformly spaced
// conceptual index of length n: window i covers positions
// [max(0, i-size+1), i]. Options behave as in Variable, except Step counts
// positions rather than index units: a window is emitted at every Step-th
// position. MinPeriods filtering and open-edge widening follow the shared
// pipeline, so leading windows shorter than MinPeriods are dropped, not
// null-filled.
//
// Time Complexity: O(n / Step) emitted slots, O(n) work.
func Fixed(n int, size int64, opts *Options) (start, end []int64, err error) {
	o, err := normalize(opts)
	if err != nil {
		return nil, nil, err
	}
	if size < 0 {
		return nil, nil, ErrWindowSize
	}
	if n < 0 {
		return nil, nil, ErrLength
	}

	step := int(o.Step)
	start = make([]int64, 0, (n+step-1)/step)
	end = make([]int64, 0, cap(start))
	for i := 0; i < n; i += step {
		s := int64(i) - size + 1
		if s < 0 {
			s = 0
		}
		start = append(start, s)
		end = append(end, int64(i))
	}

	start, end = filterValid(start, end, o.MinPeriods)
	leftOpen, rightOpen := openEdges(o.Closed)
	widenOpen(start, end, leftOpen, rightOpen)

	return start, end, nil
}
