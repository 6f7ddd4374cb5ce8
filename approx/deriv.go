package approx

import (
	"fmt"
	"math"
)

// FirstDerivative returns the first derivative at x. Only backend strategies
// and HermiteCubic support this.
func (ap *Approximation) FirstDerivative(x float64) (float64, error) {
	y, err := ap.deriv(x, 1)
	if err != nil {
		return 0, opError("FirstDerivative", err)
	}
	return y, nil
}

// SecondDerivative returns the second derivative at x. Only backend
// strategies and HermiteCubic support this.
func (ap *Approximation) SecondDerivative(x float64) (float64, error) {
	y, err := ap.deriv(x, 2)
	if err != nil {
		return 0, opError("SecondDerivative", err)
	}
	return y, nil
}

func (ap *Approximation) deriv(x float64, order int) (float64, error) {
	switch {
	case ap.strategy.Backend():
		x0, err := ap.resolve(x, ThrowError)
		if err != nil {
			return 0, err
		}
		c, x0, err := ap.backendPoint(x0)
		if err != nil {
			return 0, err
		}
		return c.Deriv(x0, order), nil
	case ap.strategy == HermiteCubic:
		x0, err := ap.resolve(x, ThrowError)
		if err != nil {
			return 0, err
		}
		if err := ap.checkHermite(); err != nil {
			return 0, err
		}
		return hermiteDeriv(ap.data.xs, ap.data.ys, ap.hermite, x0, order), nil
	default:
		return 0, fmt.Errorf("%w: %s has no closed form derivative",
			ErrUnsupportedOperation, ap.strategy)
	}
}

type stencil int

const (
	backward stencil = iota
	forward
	center
)

func (st stencil) String() string {
	return [...]string{"backward", "forward", "center"}[st]
}

// points returns the abscissas an n-point formula samples.
func (st stencil) points(x float64, n int, h float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		switch st {
		case backward:
			out[i] = x + h*float64(i-(n-1))
		case forward:
			out[i] = x + h*float64(i)
		case center:
			out[i] = x + h*float64(i-(n-1)/2)
		}
	}
	return out
}

type formulaKey struct {
	order int
	st    stencil
	n     int
}

// formula is sum(ws[i] * f(points[i])) / (div * h^order).
type formula struct {
	ws  []float64
	div float64
}

var formulas = map[formulaKey]formula{
	{1, backward, 2}: {[]float64{-1, 1}, 1},
	{1, backward, 3}: {[]float64{1, -4, 3}, 2},
	{1, forward, 2}:  {[]float64{-1, 1}, 1},
	{1, forward, 3}:  {[]float64{-3, 4, -1}, 2},
	{1, center, 3}:   {[]float64{-1, 0, 1}, 2},
	{1, center, 5}:   {[]float64{1, -8, 0, 8, -1}, 12},

	{2, backward, 3}: {[]float64{1, -2, 1}, 1},
	{2, forward, 3}:  {[]float64{1, -2, 1}, 1},
	{2, center, 3}:   {[]float64{1, -2, 1}, 1},
	{2, center, 5}:   {[]float64{-1, 16, -30, 16, -1}, 12},
}

// difference applies an n-point finite difference formula at x with step h.
func (ap *Approximation) difference(
	order int, st stencil, x float64, n int, h float64,
) (float64, error) {
	f, ok := formulas[formulaKey{order, st, n}]
	if !ok {
		return 0, fmt.Errorf("%w: no %d-point %s formula for derivative %d",
			ErrUnsupportedFormulaOrder, n, st, order)
	}

	lo, hi, err := ap.domain()
	if err != nil {
		return 0, err
	}
	if !insideDomain(x, lo, hi) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, lo, hi)
	}

	pts := st.points(x, n, h)
	for _, p := range pts {
		if p+eps < lo {
			return 0, fmt.Errorf("%w: %g is below domain minimum %g",
				ErrFormulaOutOfDomain, p, lo)
		} else if p-eps > hi {
			return 0, fmt.Errorf("%w: %g is above domain maximum %g",
				ErrFormulaOutOfDomain, p, hi)
		}
	}

	memo := ap.sampleMemo()
	sum := 0.0
	for i, p := range pts {
		if f.ws[i] == 0 {
			continue
		}
		y, err := memo.Eval(p, ThrowError)
		if err != nil {
			return 0, err
		}
		sum += f.ws[i] * y
	}
	return sum / (f.div * math.Pow(h, float64(order))), nil
}

// BackwardFirstDifference estimates f'(x) from n in {2, 3} points at and
// below x.
func (ap *Approximation) BackwardFirstDifference(x float64, n int, h float64) (float64, error) {
	y, err := ap.difference(1, backward, x, n, h)
	return y, opError("BackwardFirstDifference", err)
}

// ForwardFirstDifference estimates f'(x) from n in {2, 3} points at and
// above x.
func (ap *Approximation) ForwardFirstDifference(x float64, n int, h float64) (float64, error) {
	y, err := ap.difference(1, forward, x, n, h)
	return y, opError("ForwardFirstDifference", err)
}

// CenterFirstDifference estimates f'(x) from n in {3, 5} points centered on
// x.
func (ap *Approximation) CenterFirstDifference(x float64, n int, h float64) (float64, error) {
	y, err := ap.difference(1, center, x, n, h)
	return y, opError("CenterFirstDifference", err)
}

// BackwardSecondDifference estimates f''(x) from 3 points at and below x.
func (ap *Approximation) BackwardSecondDifference(x float64, n int, h float64) (float64, error) {
	y, err := ap.difference(2, backward, x, n, h)
	return y, opError("BackwardSecondDifference", err)
}

// ForwardSecondDifference estimates f''(x) from 3 points at and above x.
func (ap *Approximation) ForwardSecondDifference(x float64, n int, h float64) (float64, error) {
	y, err := ap.difference(2, forward, x, n, h)
	return y, opError("ForwardSecondDifference", err)
}

// CenterSecondDifference estimates f''(x) from n in {3, 5} points centered
// on x.
func (ap *Approximation) CenterSecondDifference(x float64, n int, h float64) (float64, error) {
	y, err := ap.difference(2, center, x, n, h)
	return y, opError("CenterSecondDifference", err)
}
