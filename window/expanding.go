package window

// Expanding computes anchored window bounds over a sequence of length n:
// window i covers positions [0, i], growing one position at a time. Step
// counts positions (emit every Step-th window); MinPeriods drops the short
// leading prefixes; Closed widens edges as in Variable.
//
// Time Complexity: O(n).
func Expanding(n int, opts *Options) (start, end []int64, err error) {
	o, err := normalize(opts)
	if err != nil {
		return nil, nil, err
	}
	if n < 0 {
		return nil, nil, ErrLength
	}

	step := int(o.Step)
	start = make([]int64, 0, (n+step-1)/step)
	end = make([]int64, 0, cap(start))
	for i := 0; i < n; i += step {
		start = append(start, 0)
		end = append(end, int64(i))
	}

	start, end = filterValid(start, end, o.MinPeriods)
	leftOpen, rightOpen := openEdges(o.Closed)
	widenOpen(start, end, leftOpen, rightOpen)

	return start, end, nil
}
