package interpolate

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a linear interpolator.
type Linear struct {
	piecewise
}

// NewLinear creates a linear interpolator for a sequence of strictly increasing
// points, xs, which take on the values given by vals.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the access
// pattern and data layout.
func NewLinear(xs, vals []float64) (*Linear, error) {
	if err := checkTable(xs, vals, 2); err != nil {
		return nil, err
	}

	lin := &Linear{}
	lin.init(xs, vals)
	for i := range lin.coeffs {
		x1, x2 := xs[i], xs[i+1]
		v1, v2 := vals[i], vals[i+1]
		lin.coeffs[i] = splineCoeff{c: (v2 - v1) / (x2 - x1), d: v1}
	}
	return lin, nil
}

// Eval returns the interpolated value at x.
//
// Eval panics if called on a values outside the supplied range on inputs.
func (lin *Linear) Eval(x float64) float64 {
	i := lin.s.search(x)
	x1, x2 := lin.xs[i], lin.xs[i+1]
	v1, v2 := lin.ys[i], lin.ys[i+1]

	if x == x2 {
		return v2
	}
	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(lin, xs, out)
}
