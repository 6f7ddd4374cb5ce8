package approx

import (
	"fmt"
	"sort"
)

// SetHermiteDerivatives replaces the first derivatives used by a HermiteCubic
// approximation. There must be one per sample by the time it is evaluated.
func (ap *Approximation) SetHermiteDerivatives(ds []float64) error {
	if ap.strategy != HermiteCubic {
		return opError("SetHermiteDerivatives", fmt.Errorf(
			"%w: %s", ErrUnsupportedOperation, ap.strategy,
		))
	}
	ap.hermite = append([]float64(nil), ds...)
	ap.touch()
	return nil
}

// AddHermiteDerivatives appends first derivatives for a HermiteCubic
// approximation.
func (ap *Approximation) AddHermiteDerivatives(ds ...float64) error {
	if ap.strategy != HermiteCubic {
		return opError("AddHermiteDerivatives", fmt.Errorf(
			"%w: %s", ErrUnsupportedOperation, ap.strategy,
		))
	}
	ap.hermite = append(ap.hermite, ds...)
	ap.touch()
	return nil
}

func (ap *Approximation) checkHermite() error {
	if len(ap.hermite) != ap.data.size() {
		return fmt.Errorf("%w: %d derivatives for %d points",
			ErrDerivativeCountMismatch, len(ap.hermite), ap.data.size())
	}
	return nil
}

func (ap *Approximation) evalHermite(x float64) (float64, error) {
	if err := ap.checkHermite(); err != nil {
		return 0, err
	}
	return hermiteDeriv(ap.data.xs, ap.data.ys, ap.hermite, x, 0), nil
}

// hermiteInterval returns the index of the lower end of the interval used to
// evaluate x. Points outside the table use the end intervals.
func hermiteInterval(xs []float64, x float64) int {
	n := len(xs)
	if x < xs[0] {
		return 0
	} else if x > xs[n-1] {
		return n - 2
	}

	i := sort.Search(n, func(i int) bool { return xs[i] > x }) - 1
	if i < 0 {
		i = 0
	} else if i > n-2 {
		i = n - 2
	}
	return i
}

// hermiteDeriv evaluates the Hermite cubic through (xs, ys) with slopes ms,
// or one of its first two derivatives. Values at the knots are exact.
func hermiteDeriv(xs, ys, ms []float64, x float64, order int) float64 {
	i := hermiteInterval(xs, x)
	x0, x1 := xs[i], xs[i+1]
	y0, y1 := ys[i], ys[i+1]
	m0, m1 := ms[i], ms[i+1]

	h := x1 - x0
	t := (x - x0) / h
	t2, t3 := t*t, t*t*t

	switch order {
	case 0:
		if x == x0 {
			return y0
		} else if x == x1 {
			return y1
		}
		return (2*t3-3*t2+1)*y0 + (t3-2*t2+t)*h*m0 +
			(-2*t3+3*t2)*y1 + (t3-t2)*h*m1
	case 1:
		if x == x0 {
			return m0
		} else if x == x1 {
			return m1
		}
		return ((6*t2-6*t)*y0 + (3*t2-4*t+1)*h*m0 +
			(-6*t2+6*t)*y1 + (3*t2-2*t)*h*m1) / h
	case 2:
		return ((12*t-6)*y0 + (6*t-4)*h*m0 +
			(-12*t+6)*y1 + (6*t-2)*h*m1) / (h * h)
	default:
		panic(fmt.Sprintf("Hermite derivative of order %d requested.", order))
	}
}
