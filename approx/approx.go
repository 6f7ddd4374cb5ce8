/*package approx approximates a function known only through a table of
samples.

An Approximation holds (x, y) samples and a Strategy. It evaluates the
function, its derivatives and its integrals anywhere inside the domain of the
samples, and outside of it according to an Extrapolation policy. Validation,
spline construction and linear solves are done lazily on first use and are
cached until the samples or strategy change.

Approximations are not safe for concurrent use.
*/
package approx

import (
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/numapprox/math/interpolate"
)

// Approximation is a tabulated function together with the strategy used to
// fill in the gaps between samples.
type Approximation struct {
	strategy Strategy
	data     dataset
	log      l.Wrapper

	// gen is bumped on every mutation. Cached state records the generation
	// it was computed at and is stale whenever the two differ.
	gen uint64

	validGen uint64
	validErr error

	curve    interpolate.Curve
	curveGen uint64

	first, last *Boundary
	y2s         []float64
	y2sGen      uint64
	solves      int

	hermite []float64
	windows int

	nevilleErrs []float64

	// samples is shared by the finite difference formulas.
	samples *Memo
}

// Option configures an Approximation in New.
type Option func(*Approximation) error

// Data adds the given samples to a new Approximation.
func Data(xs, ys []float64) Option {
	return func(ap *Approximation) error {
		return ap.AddPoints(xs, ys)
	}
}

// Logger sets the logger used for debugging output. By default nothing is
// logged.
func Logger(log l.Wrapper) Option {
	return func(ap *Approximation) error {
		if log != nil {
			ap.log = log
		}
		return nil
	}
}

// New creates an empty Approximation using the strategy s.
func New(s Strategy, opts ...Option) (*Approximation, error) {
	if !s.valid() {
		return nil, opError("New", fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s)))
	}

	ap := &Approximation{strategy: s, gen: 1, log: l.NewNopLoggerWrapper()}
	for _, opt := range opts {
		if err := opt(ap); err != nil {
			return nil, opError("New", err)
		}
	}
	ap.log = ap.log.WithFields(l.StringField(l.ClsKey, "Approximation"))
	return ap, nil
}

// Strategy returns the current strategy.
func (ap *Approximation) Strategy() Strategy { return ap.strategy }

// Name returns the canonical name of the current strategy.
func (ap *Approximation) Name() string { return ap.strategy.String() }

// MinPoints returns the smallest data set the current strategy accepts.
func (ap *Approximation) MinPoints() int { return ap.strategy.MinPoints() }

// Size returns the number of samples.
func (ap *Approximation) Size() int { return ap.data.size() }

// Data returns copies of the samples in insertion order.
func (ap *Approximation) Data() (xs, ys []float64) {
	xs = append([]float64(nil), ap.data.xs...)
	ys = append([]float64(nil), ap.data.ys...)
	return xs, ys
}

// AddPoint appends a sample. Clamped boundary conditions must be set again
// afterwards.
func (ap *Approximation) AddPoint(x, y float64) {
	ap.data.add(x, y)
	ap.dataChanged()
}

// AddPoints appends a sequence of samples.
func (ap *Approximation) AddPoints(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return opError("AddPoints", fmt.Errorf(
			"%w: %d x values and %d y values", ErrLengthMismatch, len(xs), len(ys),
		))
	}
	for i := range xs {
		ap.data.add(xs[i], ys[i])
	}
	ap.dataChanged()
	return nil
}

// Reset removes every sample and all strategy-specific settings. The
// strategy itself is kept.
func (ap *Approximation) Reset() {
	ap.data.reset()
	ap.hermite = nil
	ap.dataChanged()
}

// SetStrategy switches to a new strategy, keeping the samples.
func (ap *Approximation) SetStrategy(s Strategy) error {
	if !s.valid() {
		return opError("SetStrategy", fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s)))
	}
	ap.strategy = s
	ap.hermite = nil
	ap.dataChanged()
	return nil
}

func (ap *Approximation) dataChanged() {
	ap.first, ap.last = nil, nil
	ap.curve, ap.y2s = nil, nil
	ap.nevilleErrs = nil
	ap.touch()
}

func (ap *Approximation) touch() { ap.gen++ }

// validate checks the samples against the current strategy, once per
// generation.
func (ap *Approximation) validate() error {
	if ap.validGen != ap.gen {
		ap.validErr = ap.data.validate(ap.strategy)
		ap.validGen = ap.gen
	}
	return ap.validErr
}

func (ap *Approximation) domain() (lo, hi float64, err error) {
	if ap.strategy.Backend() {
		c, err := ap.backend()
		if err != nil {
			return 0, 0, err
		}
		lo, hi = c.Bounds()
		return lo, hi, nil
	}

	if err := ap.validate(); err != nil {
		return 0, 0, err
	}
	lo, hi = ap.data.bounds()
	return lo, hi, nil
}

// DomainMin returns the smallest x the approximation is defined at.
func (ap *Approximation) DomainMin() (float64, error) {
	lo, _, err := ap.domain()
	if err != nil {
		return 0, opError("DomainMin", err)
	}
	return lo, nil
}

// DomainMax returns the largest x the approximation is defined at.
func (ap *Approximation) DomainMax() (float64, error) {
	_, hi, err := ap.domain()
	if err != nil {
		return 0, opError("DomainMax", err)
	}
	return hi, nil
}

// Contains returns true if x is one of the sample points.
func (ap *Approximation) Contains(x float64) bool {
	return ap.data.contains(x)
}

// Eval evaluates the approximation at x. Points outside the domain are
// handled according to ext.
func (ap *Approximation) Eval(x float64, ext Extrapolation) (float64, error) {
	if ap.strategy == NevillePolynomial {
		ap.nevilleErrs = ap.nevilleErrs[:0]
	}
	y, err := ap.eval(x, ext)
	if err != nil {
		return 0, opError("Eval", err)
	}
	return y, nil
}

// EvalAll evaluates the approximation at every point in xs. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// For NevillePolynomial, one error estimate is recorded per point.
func (ap *Approximation) EvalAll(
	xs []float64, ext Extrapolation, out ...[]float64,
) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	} else if len(out[0]) < len(xs) {
		return nil, opError("EvalAll", fmt.Errorf(
			"%w: output has length %d, need %d",
			ErrLengthMismatch, len(out[0]), len(xs),
		))
	}
	ys := out[0]

	switch ap.strategy {
	case NeighborhoodCubic:
		if err := ap.evalAllNeighborhood(xs, ext, ys); err != nil {
			return nil, opError("EvalAll", err)
		}
		return ys, nil
	case NevillePolynomial:
		ap.nevilleErrs = ap.nevilleErrs[:0]
	}

	for i, x := range xs {
		y, err := ap.eval(x, ext)
		if err != nil {
			return nil, opError("EvalAll", err)
		}
		ys[i] = y
	}
	return ys, nil
}

func (ap *Approximation) eval(x float64, ext Extrapolation) (float64, error) {
	x0, err := ap.resolve(x, ext)
	if err != nil {
		return 0, err
	}

	switch ap.strategy {
	case NeighborhoodCubic:
		sp, err := ap.neighborhoodSpline(neighborhoodStart(ap.data.xs, x0))
		if err != nil {
			return 0, err
		}
		return evalWindow(sp, x0), nil
	case NevillePolynomial:
		y, dy := neville(ap.data.xs, ap.data.ys, x0)
		ap.nevilleErrs = append(ap.nevilleErrs, dy)
		return y, nil
	case ClampedCubic:
		return ap.evalClamped(x0)
	case HermiteCubic:
		return ap.evalHermite(x0)
	default:
		return ap.evalBackend(x0)
	}
}
