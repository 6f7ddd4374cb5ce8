package interpolate

// splineCoeff holds the polynomial a*dx^3 + b*dx^2 + c*dx + d, where dx is
// measured from the start of the interval.
type splineCoeff struct {
	a, b, c, d float64
}

func (cf *splineCoeff) eval(dx float64) float64 {
	return ((cf.a*dx+cf.b)*dx+cf.c)*dx + cf.d
}

func (cf *splineCoeff) antideriv(dx float64) float64 {
	return (((cf.a*dx/4+cf.b/3)*dx+cf.c/2)*dx + cf.d) * dx
}

// piecewise is a table of cubic polynomials, one per interval. All the spline
// types in this package reduce to one of these.
type piecewise struct {
	xs, ys []float64
	coeffs []splineCoeff
	s      searcher
}

// init copies the table so that callers are free to modify xs and ys later.
func (pw *piecewise) init(xs, ys []float64) {
	pw.xs = make([]float64, len(xs))
	pw.ys = make([]float64, len(ys))
	copy(pw.xs, xs)
	copy(pw.ys, ys)
	pw.coeffs = make([]splineCoeff, len(xs)-1)
	pw.s.init(pw.xs)
}

// Eval computes the value of the curve at the given point.
//
// x must be within the range of x values used to build the curve.
func (pw *piecewise) Eval(x float64) float64 {
	i := pw.s.search(x)
	if x == pw.xs[i+1] {
		return pw.ys[i+1]
	}
	return pw.coeffs[i].eval(x - pw.xs[i])
}

// EvalAll evaluates the curve at all the given x values. If an output array is
// given, the output is written to that array (the array is still returned as
// a convenience).
func (pw *piecewise) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(pw, xs, out)
}

// Deriv computes the derivative of the curve at the given point to the
// specified order.
//
// x must be within the range of x values used to build the curve.
func (pw *piecewise) Deriv(x float64, order int) float64 {
	i := pw.s.search(x)
	dx := x - pw.xs[i]
	a, b, c, d := pw.coeffs[i].a, pw.coeffs[i].b, pw.coeffs[i].c, pw.coeffs[i].d
	switch order {
	case 0:
		return a*dx*dx*dx + b*dx*dx + c*dx + d
	case 1:
		return 3*a*dx*dx + 2*b*dx + c
	case 2:
		return 6*a*dx + 2*b
	case 3:
		return 6 * a
	default:
		return 0
	}
}

// Integrate integrates the curve from lo to hi.
func (pw *piecewise) Integrate(lo, hi float64) float64 {
	if lo > hi {
		return -pw.Integrate(hi, lo)
	}

	iLo, iHi := pw.s.search(lo), pw.s.search(hi)
	if iLo == iHi {
		return pw.integTerm(iLo, lo, hi)
	}

	sum := pw.integTerm(iLo, lo, pw.xs[iLo+1]) +
		pw.integTerm(iHi, pw.xs[iHi], hi)
	for i := iLo + 1; i < iHi; i++ {
		sum += pw.integTerm(i, pw.xs[i], pw.xs[i+1])
	}
	return sum
}

func (pw *piecewise) integTerm(i int, lo, hi float64) float64 {
	x0 := pw.xs[i]
	return pw.coeffs[i].antideriv(hi-x0) - pw.coeffs[i].antideriv(lo-x0)
}

// Bounds returns the range of the table.
func (pw *piecewise) Bounds() (lo, hi float64) {
	return pw.xs[0], pw.xs[len(pw.xs)-1]
}

// hermiteCoeffs sets the coefficients of interval i from the end point values
// and the slopes t0, t1 at either end.
func (pw *piecewise) hermiteCoeffs(i int, t0, t1 float64) {
	y0, y1 := pw.ys[i], pw.ys[i+1]
	h := pw.xs[i+1] - pw.xs[i]
	m := (y1 - y0) / h
	pw.coeffs[i] = splineCoeff{
		a: (t0 + t1 - 2*m) / (h * h),
		b: (3*m - 2*t0 - t1) / h,
		c: t0,
		d: y0,
	}
}
