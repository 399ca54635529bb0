// Package window computes rolling-window bounds — pairs of (start, end)
// position arrays — over time-indexed sequences, including indexes whose
// values are irregularly spaced (trade ticks, event logs, sensor readings).
//
// 🚀 What are window bounds?
//
//	Every rolling aggregation (sum, mean, custom reductions) over a
//	non-uniform series decomposes into two parts: finding, per output row,
//	the inclusive position range [start[i], end[i]] the window covers, and
//	then reducing over that range. This package implements the first,
//	hard part; reductions stay with the caller.
//
// ✨ Key features:
//   - Variable: windows sized in index units over an irregular monotonic
//     index, ascending or descending, duplicates coalesced, O(N) amortized
//   - Fixed / Expanding / Forward: positional calculators sharing the same
//     options, filtering, and edge semantics
//   - Step subsampling, MinPeriods validity filtering, and four
//     interval-closure modes (left, right, both, neither)
//   - pure functions over slices — no state, safe for concurrent calls
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rollwin/window"
//
//	opts := window.DefaultOptions()
//	opts.MinPeriods = 3
//	opts.Closed = window.ClosedBoth
//
//	start, end, err := window.Variable(timestamps, 300, &opts)
//	for i := range start {
//	  // aggregate data[start[i] : end[i]+1]
//	}
//
// Windows are reported against the original data positions: dropped
// (invalid) windows shrink the output, they never leave holes. With an open
// edge the reported bound is widened by one position after validation, so
// it may point one position outside [0, N); see Variable.
//
// Performance:
//
//   - Time:   O(N) amortized for Variable, O(N) for the positional family
//   - Memory: O(N) output arrays, nothing retained between calls
package window
