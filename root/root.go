package root

import (
	"math"

	"github.com/pkg/errors"
)

// ScanTolerance is the tolerance used by FirstIntervalContainingRoot to test
// each sub interval.
const ScanTolerance = 1e-10

// ErrNoBracket is returned when an interval does not hold a sign change of
// the function, or is not a valid interval.
var ErrNoBracket = errors.New("interval does not bracket a root")

// Func is a continuous scalar function.
type Func func(x float64) float64

// Sign of a function value. Zero is its own class.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// SignOf classifies v. NaN is classified as Zero.
func SignOf(v float64) Sign {
	switch {
	case v > 0:
		return Positive
	case v < 0:
		return Negative
	default:
		return Zero
	}
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	default:
		return "zero"
	}
}

// ImproveRoot refines the bracket [x1, x2] of f by bisection until its width
// is at most eps and returns its left edge.
func ImproveRoot(f Func, x1, x2, eps float64) (float64, error) {
	r, _, err := bisect(f, x1, x2, eps)
	return r, err
}

func bisect(f Func, x1, x2, eps float64) (float64, int, error) {
	if !(x1 <= x2) {
		return 0, 0, errors.Wrapf(ErrNoBracket, "invalid interval [%g, %g]", x1, x2)
	}
	if !(eps > 0) {
		return 0, 0, errors.Wrapf(ErrNoBracket, "tolerance %g is not positive", eps)
	}

	s1 := SignOf(f(x1))
	if s1 == SignOf(f(x2)) {
		return 0, 0, ErrNoBracket
	}

	n := 0
	for (x2 - x1) > eps {
		m := (x1 + x2) / 2
		if m <= x1 || m >= x2 {
			// no float left between the edges
			break
		}
		if SignOf(f(m)) == s1 {
			x1 = m
		} else {
			x2 = m
		}
		n++
	}

	return x1, n, nil
}

// FirstIntervalContainingRoot scans [minX, maxX) with steps of dx and returns
// the left edge of the first step [i, i+dx] holding a sign change of f. It
// returns +Inf when none is found.
//
// The result is a coarse bracket start, refine it with ImproveRoot(f, i, i+dx, eps).
func FirstIntervalContainingRoot(f Func, minX, maxX, dx float64) float64 {
	if !(dx > 0) {
		return math.Inf(1)
	}

	for i := minX; i < maxX; i += dx {
		if _, _, err := bisect(f, i, i+dx, ScanTolerance); err == nil {
			return i
		}
		if i+dx == i {
			break
		}
	}

	return math.Inf(1)
}
