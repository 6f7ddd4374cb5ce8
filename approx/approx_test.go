package approx

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tent is the data set {(0,0), (1,1), (2,0)}.
func tent(t *testing.T, s Strategy) *Approximation {
	ap, err := New(s, Data([]float64{0, 1, 2}, []float64{0, 1, 0}))
	require.NoError(t, err)
	return ap
}

func TestNaturalCubicTent(t *testing.T) {
	ap := tent(t, NaturalCubic)

	y, err := ap.Eval(1, ThrowError)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-9)

	y, err = ap.Eval(3, NearestEndpoint)
	require.NoError(t, err)
	y2, err := ap.Eval(2, ThrowError)
	require.NoError(t, err)
	assert.Equal(t, y2, y)

	_, err = ap.Eval(3, ThrowError)
	assert.ErrorIs(t, err, ErrOutOfDomain)
	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Eval", opErr.Op)

	_, err = ap.Eval(3, Extrapolate)
	assert.ErrorIs(t, err, ErrExtrapolationUnsupported)

	// Within machine epsilon of the boundary counts as inside.
	y, err = ap.Eval(-1e-17, ThrowError)
	require.NoError(t, err)
	assert.Equal(t, 0.0, y)

	_, err = ap.Eval(math.NaN(), ThrowError)
	assert.ErrorIs(t, err, ErrOutOfDomain)
	y, err = ap.Eval(math.NaN(), NearestEndpoint)
	require.NoError(t, err)
	assert.Equal(t, y2, y)
}

func TestNaNOutOfDomain(t *testing.T) {
	for _, s := range Strategies() {
		ap := knotData(t, s)
		_, err := ap.Eval(math.NaN(), ThrowError)
		assert.ErrorIs(t, err, ErrOutOfDomain, s.String())

		_, err = ap.EvalAll([]float64{1, math.NaN()}, ThrowError)
		assert.ErrorIs(t, err, ErrOutOfDomain, s.String())

		_, err = ap.CenterFirstDifference(math.NaN(), 3, 0.1)
		assert.ErrorIs(t, err, ErrOutOfDomain, s.String())
	}
}

// knotData returns a data set which suits every strategy.
func knotData(t *testing.T, s Strategy) *Approximation {
	xs := []float64{0, 1, 2, 3.5, 4, 5}
	ys := []float64{1, 3, 2, 5, 4, 1}
	ap, err := New(s, Data(xs, ys))
	require.NoError(t, err)

	switch s {
	case ClampedCubic:
		require.NoError(t, ap.SetClampedBoundaryDerivatives(0, 0))
	case HermiteCubic:
		require.NoError(t, ap.SetHermiteDerivatives([]float64{1, 1, 1, 1, 1, 1}))
	}
	return ap
}

func TestKnotsReproduced(t *testing.T) {
	for _, s := range Strategies() {
		ap := knotData(t, s)
		xs, ys := ap.Data()
		for i := range xs {
			y, err := ap.Eval(xs[i], ThrowError)
			require.NoError(t, err, "%s at x = %g", s, xs[i])
			assert.InDelta(t, ys[i], y, 1e-9, "%s at x = %g", s, xs[i])
		}
	}
}

func TestEvalIdempotent(t *testing.T) {
	for _, s := range Strategies() {
		ap := knotData(t, s)
		y1, err := ap.Eval(2.7, ThrowError)
		require.NoError(t, err, s.String())
		y2, err := ap.Eval(2.7, ThrowError)
		require.NoError(t, err, s.String())
		assert.Equal(t, y1, y2, s.String())
	}
}

func TestEvalAll(t *testing.T) {
	ap := knotData(t, Akima)
	xs := []float64{0.5, 1.5, 4.5}

	out := make([]float64, 3)
	ys, err := ap.EvalAll(xs, ThrowError, out)
	require.NoError(t, err)
	assert.Equal(t, out, ys)

	for i, x := range xs {
		y, err := ap.Eval(x, ThrowError)
		require.NoError(t, err)
		assert.Equal(t, y, ys[i])
	}

	_, err = ap.EvalAll(xs, ThrowError, make([]float64, 2))
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = ap.EvalAll([]float64{1, 6}, ThrowError)
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestValidation(t *testing.T) {
	table := []struct {
		s      Strategy
		xs, ys []float64
		err    error
	}{
		{Akima, []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, ErrInsufficientData},
		{NeighborhoodCubic, []float64{0, 1, 2}, []float64{0, 1, 2}, ErrInsufficientData},
		{Linear, []float64{0, 1, 1}, []float64{0, 1, 2}, ErrDuplicateDomainValue},
		{Linear, []float64{0, 2, 1}, []float64{0, 1, 2}, ErrUnsortedDomain},
		{HermiteCubic, []float64{1, 0}, []float64{0, 1}, ErrUnsortedDomain},
		{NevillePolynomial, []float64{0, 2, 0}, []float64{0, 1, 2}, ErrDuplicateDomainValue},
		{PeriodicCubic, []float64{0, 1, 2}, []float64{1, 2, 3}, ErrPeriodicBoundaryMismatch},
		{NevillePolynomial, []float64{0, 2, 1}, []float64{0, 4, 1}, nil},
		{PeriodicCubic, []float64{0, 1, 2}, []float64{1, 2, 1}, nil},
		{PeriodicAkima, []float64{0, 1, 2, 3, 4}, []float64{1, 2, 3, 4, 5}, nil},
	}

	for i, test := range table {
		// Adding data never fails validation.
		ap, err := New(test.s, Data(test.xs, test.ys))
		require.NoError(t, err, "%d)", i+1)

		_, err = ap.DomainMin()
		if test.err == nil {
			assert.NoError(t, err, "%d)", i+1)
		} else {
			assert.ErrorIs(t, err, test.err, "%d)", i+1)
		}
	}
}

func TestPeriodicCubicTent(t *testing.T) {
	ap, err := New(PeriodicCubic, Data([]float64{0, 1, 2}, []float64{1, 2, 1}))
	require.NoError(t, err)
	y, err := ap.Eval(0.5, ThrowError)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, y, 1e-12)
}

func TestDomain(t *testing.T) {
	ap, err := New(NevillePolynomial, Data([]float64{3, 1, 2}, []float64{9, 1, 4}))
	require.NoError(t, err)

	lo, err := ap.DomainMin()
	require.NoError(t, err)
	hi, err := ap.DomainMax()
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)

	assert.True(t, ap.Contains(2))
	assert.False(t, ap.Contains(2.5))

	require.NoError(t, ap.SetStrategy(Linear))
	_, err = ap.DomainMax()
	assert.ErrorIs(t, err, ErrUnsortedDomain)

	sorted, err := New(Linear, Data([]float64{0, 1, 2, 4}, []float64{0, 0, 0, 0}))
	require.NoError(t, err)
	assert.True(t, sorted.Contains(4))
	assert.False(t, sorted.Contains(3))
}

func TestMutation(t *testing.T) {
	ap, err := New(Linear)
	require.NoError(t, err)
	assert.Equal(t, "linear", ap.Name())
	assert.Equal(t, 2, ap.MinPoints())

	_, err = ap.Eval(0, ThrowError)
	assert.ErrorIs(t, err, ErrInsufficientData)

	ap.AddPoint(0, 0)
	ap.AddPoint(1, 2)
	y, err := ap.Eval(0.5, ThrowError)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-12)

	// The backend is rebuilt after the data changes.
	require.NoError(t, ap.AddPoints([]float64{2}, []float64{0}))
	y, err = ap.Eval(1.5, ThrowError)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-12)

	err = ap.AddPoints([]float64{3, 4}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Equal(t, 3, ap.Size())

	xs, ys := ap.Data()
	want := [][]float64{{0, 1, 2}, {0, 2, 0}}
	if diff := cmp.Diff(want, [][]float64{xs, ys}); diff != "" {
		t.Errorf("Data() mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, ap.SetStrategy(NaturalCubic))
	assert.Equal(t, "cspline-natural", ap.Name())
	assert.Equal(t, 3, ap.Size())
	y, err = ap.Eval(0.5, ThrowError)
	require.NoError(t, err)
	assert.InDelta(t, 1.375, y, 1e-12)

	ap.Reset()
	assert.Equal(t, 0, ap.Size())
	assert.Equal(t, NaturalCubic, ap.Strategy())
	_, err = ap.Eval(0.5, ThrowError)
	assert.ErrorIs(t, err, ErrInsufficientData)

	assert.ErrorIs(t, ap.SetStrategy(Strategy(99)), ErrUnknownStrategy)
	_, err = New(Strategy(-1))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	_, err = New(Linear, Data([]float64{1}, nil))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNeighborhoodCubic(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}
	ap, err := New(NeighborhoodCubic, Data(xs, ys))
	require.NoError(t, err)

	pts := []float64{0.5, 0.6, 0.7, 5.5, 5.6}
	ap.windows = 0
	got, err := ap.EvalAll(pts, ThrowError)
	require.NoError(t, err)
	assert.Equal(t, 2, ap.windows)

	want := make([]float64, len(pts))
	for i, x := range pts {
		want[i], err = ap.Eval(x, ThrowError)
		require.NoError(t, err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("EvalAll mismatch (-want +got):\n%s", diff)
	}

	// Local splines follow the curve closely away from the window ends.
	y, err := ap.Eval(5.5, ThrowError)
	require.NoError(t, err)
	assert.InDelta(t, 30.25, y, 0.1)

	y, err = ap.Eval(12, NearestEndpoint)
	require.NoError(t, err)
	assert.InDelta(t, 81.0, y, 1e-9)

	_, err = ap.Eval(12, Extrapolate)
	assert.ErrorIs(t, err, ErrExtrapolationUnsupported)

	assert.Equal(t, 1, neighborhoodStart(xs, -1))
	assert.Equal(t, 1, neighborhoodStart(xs, 1))
	assert.Equal(t, 1, neighborhoodStart(xs, 1.5))
	assert.Equal(t, 4, neighborhoodStart(xs, 4.5))
	assert.Equal(t, 4, neighborhoodStart(xs, 5))
	assert.Equal(t, 7, neighborhoodStart(xs, 9))
}
