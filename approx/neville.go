package approx

import (
	"fmt"
	"math"
)

// neville evaluates the polynomial through every sample at x. dy is the last
// correction added to the tableau, which serves as an error estimate.
//
// The path through the tableau starts at the sample closest to x and moves
// up or down so that it stays centered on x.
func neville(xs, ys []float64, x float64) (y, dy float64) {
	n := len(xs)
	c := append([]float64(nil), ys...)
	d := append([]float64(nil), ys...)

	ns, dif := 0, math.Abs(x-xs[0])
	for i := 1; i < n; i++ {
		if dift := math.Abs(x - xs[i]); dift < dif {
			ns, dif = i, dift
		}
	}

	y = ys[ns]
	for m := 1; m < n; m++ {
		for i := 1; i <= n-m; i++ {
			ho := xs[i-1] - x
			hp := xs[i+m-1] - x
			w := c[i] - d[i-1]
			den := w / (ho - hp)
			d[i-1] = hp * den
			c[i-1] = ho * den
		}

		if 2*ns < n-m {
			dy = c[ns]
		} else {
			ns--
			dy = d[ns]
		}
		y += dy
	}
	return y, dy
}

// NevilleErrorEstimate returns the error estimates recorded by the last call
// to Eval or EvalAll, one per evaluated point.
func (ap *Approximation) NevilleErrorEstimate() ([]float64, error) {
	if ap.strategy != NevillePolynomial {
		return nil, opError("NevilleErrorEstimate", fmt.Errorf(
			"%w: %s", ErrUnsupportedOperation, ap.strategy,
		))
	}
	if len(ap.nevilleErrs) == 0 {
		return nil, opError("NevilleErrorEstimate", ErrNoEstimate)
	}
	return append([]float64(nil), ap.nevilleErrs...), nil
}
