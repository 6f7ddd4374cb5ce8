package approx

import (
	"fmt"
	"math"
	"sort"

	"github.com/phil-mansfield/numapprox/math/interpolate"
)

// neighborhoodStart returns the index s such that the four point window
// xs[s-1 : s+3] surrounds x as closely as the table allows.
func neighborhoodStart(xs []float64, x float64) int {
	// Last index with xs[s] < x.
	s := sort.SearchFloat64s(xs, x) - 1
	if s < 1 {
		s = 1
	} else if s > len(xs)-3 {
		s = len(xs) - 3
	}
	return s
}

func (ap *Approximation) neighborhoodSpline(s int) (*interpolate.Spline, error) {
	sp, err := interpolate.NewSpline(ap.data.xs[s-1:s+3], ap.data.ys[s-1:s+3])
	if err != nil {
		return nil, fmt.Errorf("%w: neighborhood of x[%d]: %v", ErrBackend, s, err)
	}
	ap.windows++
	return sp, nil
}

// evalWindow evaluates a local spline, moving x to the nearest end of the
// window if it falls outside.
func evalWindow(sp *interpolate.Spline, x float64) float64 {
	lo, hi := sp.Bounds()
	return sp.Eval(math.Max(lo, math.Min(hi, x)))
}

// evalAllNeighborhood evaluates a batch, only rebuilding the local spline
// when consecutive points fall in different windows.
func (ap *Approximation) evalAllNeighborhood(
	xs []float64, ext Extrapolation, out []float64,
) error {
	starts := make([]int, len(xs))
	for i, x := range xs {
		x0, err := ap.resolve(x, ext)
		if err != nil {
			return err
		}
		out[i] = x0
		starts[i] = neighborhoodStart(ap.data.xs, x0)
	}

	var sp *interpolate.Spline
	prev := -1
	for i, s := range starts {
		if s != prev {
			var err error
			if sp, err = ap.neighborhoodSpline(s); err != nil {
				return err
			}
			prev = s
		}
		out[i] = evalWindow(sp, out[i])
	}
	return nil
}
