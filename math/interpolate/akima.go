package interpolate

import (
	"math"
)

// Akima is an Akima spline. The slope at each knot is a weighted average of
// the neighboring secant slopes, which keeps the curve from ringing near
// outliers.
type Akima struct {
	piecewise
	periodic bool
}

// NewAkima creates a non-periodic Akima spline from a strictly increasing
// table of at least five points.
func NewAkima(xs, ys []float64) (*Akima, error) {
	return newAkima(xs, ys, false)
}

// NewPeriodicAkima creates an Akima spline whose end slopes are taken from the
// other end of the table.
func NewPeriodicAkima(xs, ys []float64) (*Akima, error) {
	return newAkima(xs, ys, true)
}

func newAkima(xs, ys []float64, periodic bool) (*Akima, error) {
	if err := checkTable(xs, ys, 5); err != nil {
		return nil, err
	}

	ak := &Akima{periodic: periodic}
	ak.init(xs, ys)
	ak.calcCoeffs()
	return ak, nil
}

// Periodic returns true if the end slopes wrap around the table.
func (ak *Akima) Periodic() bool { return ak.periodic }

func (ak *Akima) calcCoeffs() {
	n := len(ak.xs)
	xs, ys := ak.xs, ak.ys

	// ms holds secant slopes with two ghost slopes on either side, so m(i) is
	// at ms[i+2].
	ms := make([]float64, n+3)
	m := func(i int) float64 { return ms[i+2] }
	for i := 0; i < n-1; i++ {
		ms[i+2] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}

	if ak.periodic {
		ms[0], ms[1] = m(n-3), m(n-2)
		ms[n+1], ms[n+2] = m(0), m(1)
	} else {
		ms[0] = 3*m(0) - 2*m(1)
		ms[1] = 2*m(0) - m(1)
		ms[n+1] = 2*m(n-2) - m(n-3)
		ms[n+2] = 3*m(n-2) - 2*m(n-3)
	}

	for i := 0; i < n-1; i++ {
		ne := math.Abs(m(i+1)-m(i)) + math.Abs(m(i-1)-m(i-2))
		if ne == 0 {
			ak.coeffs[i] = splineCoeff{c: m(i), d: ys[i]}
			continue
		}

		h := xs[i+1] - xs[i]
		neNext := math.Abs(m(i+2)-m(i+1)) + math.Abs(m(i)-m(i-1))
		alpha := math.Abs(m(i-1)-m(i-2)) / ne

		tNext := m(i)
		if neNext != 0 {
			alphaNext := math.Abs(m(i)-m(i-1)) / neNext
			tNext = (1-alphaNext)*m(i) + alphaNext*m(i+1)
		}

		t := (1-alpha)*m(i-1) + alpha*m(i)
		ak.coeffs[i] = splineCoeff{
			a: (t + tNext - 2*m(i)) / (h * h),
			b: (3*m(i) - 2*t - tNext) / h,
			c: t,
			d: ys[i],
		}
	}
}
