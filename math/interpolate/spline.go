package interpolate

import (
	"errors"
)

// ErrTriDiag is returned when a tridiagonal system has a zero pivot.
var ErrTriDiag = errors.New("interpolate: cannot solve tridiagonal system")

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points. The second derivative of the spline vanishes
// at both ends of the table.
type Spline struct {
	piecewise
	y2s []float64
}

// NewSpline creates a spline based off a table of x and y values. The values
// must be sorted in strictly increasing order in x and there must be at least
// three of them.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if err := checkTable(xs, ys, 3); err != nil {
		return nil, err
	}

	sp := &Spline{}
	sp.init(xs, ys)
	sp.y2s = make([]float64, len(xs))
	if err := sp.calcY2s(); err != nil {
		return nil, err
	}
	sp.calcCoeffs()
	return sp, nil
}

// calcY2s computes the second derivative at every point in the table.
func (sp *Spline) calcY2s() error {
	// These arrays do not escape to the heap.
	n := len(sp.xs)
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	// Solve for everything but the boundaries, which are zero.
	sp.y2s[0], sp.y2s[n-1] = 0, 0

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	return TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	setY2Coeffs(&sp.piecewise, sp.y2s)
}

// setY2Coeffs fills in the coefficients of a cubic spline from the second
// derivatives at each knot.
func setY2Coeffs(pw *piecewise, y2s []float64) {
	xs, ys := pw.xs, pw.ys
	for i := range pw.coeffs {
		dx := xs[i+1] - xs[i]
		pw.coeffs[i] = splineCoeff{
			a: (y2s[i+1] - y2s[i]) / (6 * dx),
			b: y2s[i] / 2,
			c: (ys[i+1]-ys[i])/dx - dx*(y2s[i]/3+y2s[i+1]/6),
			d: ys[i],
		}
	}
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..    |   | u0 |   | r0 |
// | a1 b1 c1 .. |   | u1 |   | r1 |
// | ..          | * | .. | = | .. |
// | ..    an bn |   | un |   | rn |
//
// For u0 .. un and writes the result to out. a0 and cn are ignored.
func TriDiagAt(as, bs, cs, rs, out []float64) error {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic("Length of arguments to TriDiagAt are unequal.")
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		return ErrTriDiag
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return ErrTriDiag
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
	return nil
}

// TriDiag solves the same system as TriDiagAt, but allocates a new output
// slice.
func TriDiag(as, bs, cs, rs []float64) ([]float64, error) {
	us := make([]float64, len(as))
	err := TriDiagAt(as, bs, cs, rs, us)
	return us, err
}
