// Package rollwin is a small, pure-Go toolkit for rolling-window
// computations over time series whose index values are irregularly spaced —
// timestamps, block heights, event offsets — as well as plain positional
// sequences.
//
// 🚀 What is rollwin?
//
//	The hard part of any rolling aggregation over a non-uniform series is
//	deciding, per output row, which inclusive position range
//	[start[i], end[i]] the window covers. rollwin computes exactly those
//	bounds; aggregation over them is generic iteration the caller owns.
//
// ✨ Why choose rollwin?
//
//   - One sweep, O(N) amortized — dual no-rewind cursors, no quadratic scans
//   - One code path for ascending and descending indexes
//   - Duplicate timestamps coalesce into a single window per distinct value
//   - Step subsampling, minimum-span filtering, four interval-closure modes
//   - Pure Go, no cgo, stdlib-only runtime dependencies
//
// Everything lives under one subpackage:
//
//	window/ — Variable (index-unit windows over irregular indexes) plus the
//	          positional Fixed, Expanding and Forward calculators
//
// Dive into examples/ for a runnable trade-tick walkthrough.
//
//	go get github.com/katalvlaran/rollwin/window
package rollwin
