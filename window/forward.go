package window

// Forward computes forward-looking positional window bounds over a sequence
// of length n: window i covers positions [i, min(n-1, i+size-1)], so the
// trailing windows truncate against the end of the sequence. Step counts
// positions; MinPeriods drops the truncated tail windows; Closed widens
// edges as in Variable. With size == 0 every window is empty and the output
// has length zero.
//
// Time Complexity: O(n).
func Forward(n int, size int64, opts *Options) (start, end []int64, err error) {
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
		e := int64(i) + size - 1
		if e > int64(n)-1 {
			e = int64(n) - 1
		}
		start = append(start, int64(i))
		end = append(end, e)
	}

	start, end = filterValid(start, end, o.MinPeriods)
	leftOpen, rightOpen := openEdges(o.Closed)
	widenOpen(start, end, leftOpen, rightOpen)

	return start, end, nil
}
