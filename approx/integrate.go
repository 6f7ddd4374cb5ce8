package approx

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
)

const (
	rombergStages = 20
	rombergRelTol = 1e-4
	rombergAbsTol = 1e-6
)

// Integral returns the exact integral of a backend strategy's spline from lo
// to hi.
func (ap *Approximation) Integral(lo, hi float64) (float64, error) {
	if !ap.strategy.Backend() {
		return 0, opError("Integral", fmt.Errorf(
			"%w: %s has no closed form integral", ErrUnsupportedOperation, ap.strategy,
		))
	}
	if lo > hi {
		return 0, opError("Integral", fmt.Errorf(
			"%w: [%g, %g]", ErrInvalidInterval, lo, hi,
		))
	}

	c, lo, err := ap.backendPoint(lo)
	if err != nil {
		return 0, opError("Integral", err)
	}
	_, hi, err = ap.backendPoint(hi)
	if err != nil {
		return 0, opError("Integral", err)
	}
	return c.Integrate(lo, hi), nil
}

// sampleForIntegration evaluates the approximation at evenly spaced points
// covering [lo, hi]. The number of segments is the smallest multiple of
// n - 1 which is at least Size() - 1.
func (ap *Approximation) sampleForIntegration(
	lo, hi float64, n int,
) (fs []float64, h float64, err error) {
	if lo > hi {
		return nil, 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, lo, hi)
	}
	dlo, dhi, err := ap.domain()
	if err != nil {
		return nil, 0, err
	}
	if !insideDomain(lo, dlo, dhi) || !insideDomain(hi, dlo, dhi) {
		return nil, 0, fmt.Errorf("%w: [%g, %g] not contained in [%g, %g]",
			ErrOutOfDomain, lo, hi, dlo, dhi)
	}

	segments := ap.Size() - 1
	for segments%(n-1) != 0 {
		segments++
	}

	h = (hi - lo) / float64(segments)
	fs = make([]float64, segments+1)
	for i := range fs {
		x := lo + h*float64(i)
		if i == segments {
			x = hi
		}
		if fs[i], err = ap.Eval(x, ThrowError); err != nil {
			return nil, 0, err
		}
	}
	return fs, h, nil
}

// newtonCotes applies a closed Newton-Cotes rule with len(ws) points to each
// group of samples.
func (ap *Approximation) newtonCotes(
	op string, lo, hi float64, ws []float64, scale float64,
) (float64, error) {
	n := len(ws)
	fs, h, err := ap.sampleForIntegration(lo, hi, n)
	if err != nil {
		return 0, opError(op, err)
	}

	sum := 0.0
	for i := 0; i < (len(fs)-1)/(n-1); i++ {
		ii := (i + 1) * (n - 1)
		for j, w := range ws {
			sum += w * fs[ii-(n-1)+j]
		}
	}
	return sum * scale * h, nil
}

// Trapezoidal integrates from lo to hi with the composite trapezoid rule.
func (ap *Approximation) Trapezoidal(lo, hi float64) (float64, error) {
	return ap.newtonCotes("Trapezoidal", lo, hi, []float64{1, 1}, 1.0/2)
}

// Simpson3 integrates from lo to hi with the composite Simpson 1/3 rule.
func (ap *Approximation) Simpson3(lo, hi float64) (float64, error) {
	return ap.newtonCotes("Simpson3", lo, hi, []float64{1, 4, 1}, 1.0/3)
}

// Simpson38 integrates from lo to hi with the composite Simpson 3/8 rule.
func (ap *Approximation) Simpson38(lo, hi float64) (float64, error) {
	return ap.newtonCotes("Simpson38", lo, hi, []float64{1, 3, 3, 1}, 3.0/8)
}

// Boole integrates from lo to hi with the composite Boole rule.
func (ap *Approximation) Boole(lo, hi float64) (float64, error) {
	return ap.newtonCotes("Boole", lo, hi, []float64{7, 32, 12, 32, 7}, 2.0/45)
}

// refine returns the stage-th refinement of the extended trapezoid rule given
// the previous estimate s. Each stage doubles the number of interior points.
func (ap *Approximation) refine(
	lo, hi, s float64, stage int, ext Extrapolation,
) (float64, error) {
	if stage == 1 {
		flo, err := ap.Eval(lo, ext)
		if err != nil {
			return 0, opError("refine", err)
		}
		fhi, err := ap.Eval(hi, ext)
		if err != nil {
			return 0, opError("refine", err)
		}
		return 0.5 * (hi - lo) * (flo + fhi), nil
	}

	it := 1 << (stage - 2)
	tnm := float64(it)
	delta := (hi - lo) / tnm
	x, sum := lo+0.5*delta, 0.0
	for i := 0; i < it; i++ {
		y, err := ap.Eval(x, ext)
		if err != nil {
			return 0, opError("refine", err)
		}
		sum += y
		x += delta
	}
	return 0.5 * (s + (hi-lo)*sum/tnm), nil
}

// Romberg integrates from lo to hi by extrapolating successive trapezoid
// refinements to zero step size.
func (ap *Approximation) Romberg(lo, hi float64) (float64, error) {
	const op = "Romberg"
	if lo > hi {
		return 0, opError(op, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, lo, hi))
	} else if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, opError(op, fmt.Errorf("%w: [%g, %g]", ErrOutOfDomain, lo, hi))
	}

	ext := Extrapolate
	if ap.strategy.Backend() || ap.strategy == NeighborhoodCubic {
		ext = NearestEndpoint
	}

	// hs are relative squared step sizes.
	hs := make([]float64, rombergStages+1)
	trap := make([]float64, rombergStages+1)
	hs[0] = 1

	for i := 0; i < rombergStages; i++ {
		var err error
		if trap[i], err = ap.refine(lo, hi, trap[i], i+1, ext); err != nil {
			return 0, opError(op, err)
		}

		if i >= 4 {
			ss, dss, err := extrapolateToZero(hs[i-4:i+1], trap[i-4:i+1])
			if err != nil {
				return 0, opError(op, err)
			}
			ap.log.WithFields(l.IntField("stage", i+1),
				l.StringField("estimate", fmt.Sprint(ss)),
				l.StringField("error", fmt.Sprint(dss))).Debug("romberg stage")

			if math.Abs(dss) <= rombergRelTol*math.Abs(ss) ||
				math.Abs(dss) <= rombergAbsTol {
				return ss, nil
			}
		}

		trap[i+1] = trap[i]
		hs[i+1] = 0.25 * hs[i]
	}

	return 0, opError(op, fmt.Errorf("%w: %d stages", ErrConvergenceFailure, rombergStages))
}

// extrapolateToZero fits a polynomial through (hs, ts) with Neville's
// algorithm and evaluates it at zero.
func extrapolateToZero(hs, ts []float64) (est, dest float64, err error) {
	interp, err := New(NevillePolynomial, Data(hs, ts))
	if err != nil {
		return 0, 0, err
	}
	if est, err = interp.Eval(0, Extrapolate); err != nil {
		return 0, 0, err
	}
	errs, err := interp.NevilleErrorEstimate()
	if err != nil {
		return 0, 0, err
	}
	return est, errs[0], nil
}
