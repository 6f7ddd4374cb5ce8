package approx

import (
	"fmt"

	"github.com/sgostarter/i/l"
)

// naturalSentinel is the slope at or above which a clamped boundary is
// treated as natural. Large negative slopes stay clamped.
const naturalSentinel = 0.99e30

// Boundary is the condition at one end of a ClampedCubic spline: either a
// fixed slope or a natural (zero curvature) end.
type Boundary struct {
	slope   float64
	natural bool
}

// Clamped returns a boundary with the given slope.
func Clamped(slope float64) Boundary { return Boundary{slope: slope} }

// Natural returns a boundary with zero second derivative.
func Natural() Boundary { return Boundary{natural: true} }

// IsNatural returns true for natural boundaries.
func (b Boundary) IsNatural() bool { return b.natural }

// Slope returns the slope of a clamped boundary. ok is false for natural
// boundaries.
func (b Boundary) Slope() (slope float64, ok bool) {
	return b.slope, !b.natural
}

func (b Boundary) String() string {
	if b.natural {
		return "natural"
	}
	return fmt.Sprintf("clamped(%g)", b.slope)
}

// boundaryFromSlope maps sentinel slopes onto natural boundaries.
func boundaryFromSlope(d float64) Boundary {
	if d >= naturalSentinel {
		return Natural()
	}
	return Clamped(d)
}

// SetClampedBoundaries sets the end conditions of a ClampedCubic
// approximation. Adding data clears them.
func (ap *Approximation) SetClampedBoundaries(first, last Boundary) error {
	if ap.strategy != ClampedCubic {
		return opError("SetClampedBoundaries", fmt.Errorf(
			"%w: %s", ErrUnsupportedOperation, ap.strategy,
		))
	}
	ap.first, ap.last = &first, &last
	ap.y2s = nil
	ap.touch()
	return nil
}

// SetClampedBoundaryDerivatives sets the end slopes of a ClampedCubic
// approximation. A slope of at least 0.99e30 makes that end natural.
func (ap *Approximation) SetClampedBoundaryDerivatives(d0, dn float64) error {
	err := ap.SetClampedBoundaries(boundaryFromSlope(d0), boundaryFromSlope(dn))
	if err != nil {
		return opError("SetClampedBoundaryDerivatives", err)
	}
	return nil
}

// ClampedSecondDerivatives returns the second derivative of a ClampedCubic
// spline at each sample.
func (ap *Approximation) ClampedSecondDerivatives() ([]float64, error) {
	if ap.strategy != ClampedCubic {
		return nil, opError("ClampedSecondDerivatives", fmt.Errorf(
			"%w: %s", ErrUnsupportedOperation, ap.strategy,
		))
	}
	y2s, err := ap.clampedY2s()
	if err != nil {
		return nil, opError("ClampedSecondDerivatives", err)
	}
	return append([]float64(nil), y2s...), nil
}

func (ap *Approximation) clampedY2s() ([]float64, error) {
	if err := ap.validate(); err != nil {
		return nil, err
	}
	if ap.first == nil || ap.last == nil {
		return nil, ErrBoundaryConditionsNotSet
	}
	if ap.y2s != nil && ap.y2sGen == ap.gen {
		return ap.y2s, nil
	}

	ap.y2s = solveClamped(ap.data.xs, ap.data.ys, *ap.first, *ap.last)
	ap.y2sGen = ap.gen
	ap.solves++
	ap.log.WithFields(l.StringField("first", ap.first.String()),
		l.StringField("last", ap.last.String())).Debug("solved clamped spline")
	return ap.y2s, nil
}

// solveClamped computes the second derivatives of a cubic spline with the
// given end conditions.
func solveClamped(xs, ys []float64, first, last Boundary) []float64 {
	n := len(xs)
	s, u := make([]float64, n), make([]float64, n)

	if !first.natural {
		h := xs[1] - xs[0]
		s[0] = -0.5
		u[0] = (3 / h) * ((ys[1]-ys[0])/h - first.slope)
	}

	for i := 1; i < n-1; i++ {
		sig := (xs[i] - xs[i-1]) / (xs[i+1] - xs[i-1])
		p := sig*s[i-1] + 2
		s[i] = (sig - 1) / p
		u[i] = (ys[i+1]-ys[i])/(xs[i+1]-xs[i]) - (ys[i]-ys[i-1])/(xs[i]-xs[i-1])
		u[i] = (6*u[i]/(xs[i+1]-xs[i-1]) - sig*u[i-1]) / p
	}

	qn, un := 0.0, 0.0
	if !last.natural {
		h := xs[n-1] - xs[n-2]
		qn = 0.5
		un = (3 / h) * (last.slope - (ys[n-1]-ys[n-2])/h)
	}
	s[n-1] = (un - qn*u[n-2]) / (qn*s[n-2] + 1)

	for k := n - 2; k >= 0; k-- {
		s[k] = s[k]*s[k+1] + u[k]
	}
	return s
}

func (ap *Approximation) evalClamped(x float64) (float64, error) {
	y2s, err := ap.clampedY2s()
	if err != nil {
		return 0, err
	}
	return evalClamped(ap.data.xs, ap.data.ys, y2s, x), nil
}

// evalClamped evaluates a spline from its second derivatives. Points outside
// the table use the end intervals.
func evalClamped(xs, ys, y2s []float64, x float64) float64 {
	lo, hi := 0, len(xs)-1
	for hi-lo > 1 {
		k := (hi + lo) / 2
		if xs[k] > x {
			hi = k
		} else {
			lo = k
		}
	}

	h := xs[hi] - xs[lo]
	a := (xs[hi] - x) / h
	b := (x - xs[lo]) / h
	return a*ys[lo] + b*ys[hi] +
		((a*a*a-a)*y2s[lo]+(b*b*b-b)*y2s[hi])*(h*h)/6
}
