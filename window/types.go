// Package window defines options and interval-closure modes shared by all
// bounds calculators.
package window

import "fmt"

// Closed selects which side(s) of the conceptual interval behind each window
// are inclusive.
//
//   - ClosedLeft    — [start, end): left edge inclusive, right edge open.
//   - ClosedRight   — (start, end]: left edge open, right edge inclusive.
//   - ClosedBoth    — [start, end]: both edges inclusive.
//   - ClosedNeither — (start, end): both edges open.
//
// The zero value is ClosedLeft, the default everywhere an Options.Closed is
// left unset.
//
// An open edge widens the reported bound by one position after validity
// filtering: an open left edge moves start one position earlier, an open
// right edge moves end one position later. Validity (MinPeriods) is always
// judged on the inclusive positions discovered by the sweep, before this
// widening — see Variable for details.
type Closed int

const (
	// ClosedLeft keeps the left edge inclusive and opens the right edge.
	ClosedLeft Closed = iota
	// ClosedRight keeps the right edge inclusive and opens the left edge.
	ClosedRight
	// ClosedBoth keeps both edges inclusive; bounds are reported untouched.
	ClosedBoth
	// ClosedNeither opens both edges.
	ClosedNeither
)

// closedNames maps each Closed value to its canonical token.
var closedNames = [...]string{"left", "right", "both", "neither"}

// String returns the canonical token for c, or a %d rendering for
// out-of-range values.
func (c Closed) String() string {
	if c < ClosedLeft || c > ClosedNeither {
		return fmt.Sprintf("closed(%d)", int(c))
	}

	return closedNames[c]
}

// ParseClosed maps a token to its Closed value. The empty string means
// "unspecified" and parses to the default ClosedLeft. Any other token except
// the four canonical ones fails with ErrClosed.
func ParseClosed(s string) (Closed, error) {
	switch s {
	case "", "left":
		return ClosedLeft, nil
	case "right":
		return ClosedRight, nil
	case "both":
		return ClosedBoth, nil
	case "neither":
		return ClosedNeither, nil
	default:
		return ClosedLeft, fmt.Errorf("%w: %q", ErrClosed, s)
	}
}

// Options configures a bounds calculator.
//
// Fields:
//   - Step       — advance of consecutive window starts: index units for
//     Variable, positions for the positional calculators. Zero means the
//     default of 1 (every window); negative values fail with ErrStepSize.
//   - MinPeriods — minimum inclusive position count (end - start + 1) a
//     window must cover to be retained. Windows below it are dropped from
//     the output entirely. Negative values fail with ErrMinPeriods.
//   - Closed     — interval closure, ClosedLeft when unset.
//
// A nil *Options at any call site is equivalent to DefaultOptions().
type Options struct {
	Step       int64
	MinPeriods int
	Closed     Closed
}

// DefaultOptions returns the Options every calculator assumes when given nil:
// every window emitted (Step == 1), no minimum span, left-closed intervals.
func DefaultOptions() Options {
	return Options{
		Step:       1,
		MinPeriods: 0,
		Closed:     ClosedLeft,
	}
}
