package interpolate

import (
	"github.com/phil-mansfield/numapprox/math/mat"
)

// PeriodicSpline is a cubic spline whose value, slope and curvature all wrap
// around from the last point of the table to the first.
type PeriodicSpline struct {
	piecewise
	y2s []float64
}

// NewPeriodicSpline creates a periodic spline from a strictly increasing
// table of at least three points. ys[0] must equal ys[len(ys)-1].
func NewPeriodicSpline(xs, ys []float64) (*PeriodicSpline, error) {
	if err := checkTable(xs, ys, 3); err != nil {
		return nil, err
	}
	if ys[0] != ys[len(ys)-1] {
		return nil, ErrNotPeriodic
	}

	sp := &PeriodicSpline{}
	sp.init(xs, ys)
	sp.y2s = make([]float64, len(xs))
	if err := sp.calcY2s(); err != nil {
		return nil, err
	}
	setY2Coeffs(&sp.piecewise, sp.y2s)
	return sp, nil
}

// calcY2s solves the cyclic system for the second derivatives. The last knot
// is the same point as the first, so there are len(xs)-1 unknowns.
func (sp *PeriodicSpline) calcY2s() error {
	m := len(sp.xs) - 1
	hs := make([]float64, m)
	rs := make([]float64, m)
	for i := range hs {
		hs[i] = sp.xs[i+1] - sp.xs[i]
	}
	for i := range rs {
		prev := (i + m - 1) % m
		rs[i] = 6 * ((sp.ys[i+1]-sp.ys[i])/hs[i] -
			(sp.ys[i]-sp.ys[prev])/hs[prev])
	}

	var (
		y2s []float64
		err error
	)
	if m < 3 {
		y2s, err = denseCyclic(hs, rs)
	} else {
		y2s, err = shermanMorrison(hs, rs)
	}
	if err != nil {
		return err
	}

	copy(sp.y2s, y2s)
	sp.y2s[m] = sp.y2s[0]
	return nil
}

// denseCyclic builds and solves the full cyclic matrix. The two off-diagonal
// terms of a row land in the same column when there are fewer than three
// unknowns, so they are accumulated.
func denseCyclic(hs, rs []float64) ([]float64, error) {
	m := len(hs)
	vals := make([]float64, m*m)
	for i := 0; i < m; i++ {
		prev, next := (i+m-1)%m, (i+1)%m
		vals[i*m+prev] += hs[prev]
		vals[i*m+i] += 2 * (hs[prev] + hs[i])
		vals[i*m+next] += hs[i]
	}
	return mat.NewMatrix(vals, m, m).SolveVector(rs)
}

// shermanMorrison solves the cyclic tridiagonal system by solving two plain
// tridiagonal systems and correcting for the corner elements.
func shermanMorrison(hs, rs []float64) ([]float64, error) {
	m := len(hs)
	as, bs, cs := make([]float64, m), make([]float64, m), make([]float64, m)
	for i := 0; i < m; i++ {
		prev := (i + m - 1) % m
		as[i] = hs[prev]
		bs[i] = 2 * (hs[prev] + hs[i])
		cs[i] = hs[i]
	}

	// Corner elements.
	alpha, beta := hs[m-1], hs[m-1]
	gamma := -bs[0]
	bs[0] -= gamma
	bs[m-1] -= alpha * beta / gamma

	xs, err := TriDiag(as, bs, cs, rs)
	if err != nil {
		return nil, err
	}
	us := make([]float64, m)
	us[0], us[m-1] = gamma, alpha
	zs, err := TriDiag(as, bs, cs, us)
	if err != nil {
		return nil, err
	}

	fact := (xs[0] + beta*xs[m-1]/gamma) /
		(1 + zs[0] + beta*zs[m-1]/gamma)
	for i := range xs {
		xs[i] -= fact * zs[i]
	}
	return xs, nil
}
