/*package interpolate implements 1D interpolators over tables of (x, y) points.

Every interpolator in this package can be evaluated, differentiated and
integrated anywhere inside the range of the table it was built from. Points
outside that range are a programming error and cause a panic, so callers
which accept arbitrary input should check against Bounds() first.
*/
package interpolate

import (
	"errors"
)

var (
	// ErrTableLength is returned when xs and ys have different lengths or
	// when a table is too short for the requested interpolator.
	ErrTableLength = errors.New("interpolate: invalid table length")
	// ErrNotSorted is returned when the x values of a table are not strictly
	// increasing.
	ErrNotSorted = errors.New("interpolate: table not strictly increasing")
	// ErrNotPeriodic is returned by periodic interpolators when the first
	// and last y values differ.
	ErrNotPeriodic = errors.New("interpolate: table endpoints differ")
)

// Interpolator is a 1D interpolator. These interpolators cache search state,
// so they are not thread safe.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

// Curve is an Interpolator which also supports calculus.
type Curve interface {
	Interpolator
	// Deriv computes the derivative of the given order at x. Orders above
	// the degree of the underlying polynomials are zero.
	Deriv(x float64, order int) float64
	// Integrate integrates the curve from lo to hi.
	Integrate(lo, hi float64) float64
	// Bounds returns the range of x values the curve is defined over.
	Bounds() (lo, hi float64)
}

var (
	_ Curve = &Linear{}
	_ Curve = &Polynomial{}
	_ Curve = &Spline{}
	_ Curve = &PeriodicSpline{}
	_ Curve = &Akima{}
)

// checkTable checks that xs and ys form a strictly increasing table with at
// least minLen points.
func checkTable(xs, ys []float64, minLen int) error {
	if len(xs) != len(ys) {
		return ErrTableLength
	} else if len(xs) < minLen {
		return ErrTableLength
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return ErrNotSorted
		}
	}
	return nil
}

func evalAll(in Interpolator, xs []float64, out [][]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = in.Eval(x)
	}
	return out[0]
}
