package approx

import (
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/numapprox/math/interpolate"
)

func newCurve(s Strategy, xs, ys []float64) (interpolate.Curve, error) {
	switch s {
	case Linear:
		return interpolate.NewLinear(xs, ys)
	case Polynomial:
		return interpolate.NewPolynomial(xs, ys)
	case NaturalCubic:
		return interpolate.NewSpline(xs, ys)
	case PeriodicCubic:
		return interpolate.NewPeriodicSpline(xs, ys)
	case Akima:
		return interpolate.NewAkima(xs, ys)
	case PeriodicAkima:
		return interpolate.NewPeriodicAkima(xs, ys)
	default:
		return nil, fmt.Errorf("%w: %s has no backend", ErrUnsupportedOperation, s)
	}
}

// backend returns the curve for a backend strategy, building it if the
// samples have changed since it was last built.
func (ap *Approximation) backend() (interpolate.Curve, error) {
	if ap.curve != nil && ap.curveGen == ap.gen {
		return ap.curve, nil
	}
	if err := ap.validate(); err != nil {
		return nil, err
	}

	c, err := newCurve(ap.strategy, ap.data.xs, ap.data.ys)
	if err != nil {
		ap.log.WithFields(l.StringField("strategy", ap.strategy.String()),
			l.ErrorField(err)).Error("backend construction failed")
		return nil, fmt.Errorf("%w: %s: %v", ErrBackend, ap.strategy, err)
	}
	ap.log.WithFields(l.StringField("strategy", ap.strategy.String()),
		l.IntField("points", ap.data.size())).Debug("built backend curve")

	ap.curve, ap.curveGen = c, ap.gen
	return c, nil
}

// backendPoint returns the backend curve and moves x onto its range.
func (ap *Approximation) backendPoint(x float64) (interpolate.Curve, float64, error) {
	c, err := ap.backend()
	if err != nil {
		return nil, 0, err
	}
	lo, hi := c.Bounds()
	x, err = clampOnto(x, lo, hi)
	if err != nil {
		return nil, 0, err
	}
	return c, x, nil
}

func (ap *Approximation) evalBackend(x float64) (float64, error) {
	c, x, err := ap.backendPoint(x)
	if err != nil {
		return 0, err
	}
	return c.Eval(x), nil
}
