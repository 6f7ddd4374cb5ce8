package approx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNevillePath(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{1, 2, 5}

	table := []struct {
		x, y, dy float64
	}{
		{0.5, 1.25, -0.25},
		// Ties go to the first point, so the path moves down.
		{1.5, 3.25, 0.75},
		{3, 10, 2},
	}
	for _, test := range table {
		y, dy := neville(xs, ys, test.x)
		assert.InDelta(t, test.y, y, 1e-12, "x = %g", test.x)
		assert.InDelta(t, test.dy, dy, 1e-12, "x = %g", test.x)
	}
}

func TestNevilleEstimates(t *testing.T) {
	ap, err := New(NevillePolynomial, Data([]float64{3, 0, 2, 1}, []float64{9, 0, 4, 1}))
	require.NoError(t, err)

	_, err = ap.NevilleErrorEstimate()
	assert.ErrorIs(t, err, ErrNoEstimate)

	y, err := ap.Eval(1.5, ThrowError)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, y, 1e-12)
	errs, err := ap.NevilleErrorEstimate()
	require.NoError(t, err)
	assert.Len(t, errs, 1)

	ys, err := ap.EvalAll([]float64{0.5, 2.5, 4}, Extrapolate)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 6.25, 16}, ys, 1e-12)
	errs, err = ap.NevilleErrorEstimate()
	require.NoError(t, err)
	assert.Len(t, errs, 3)

	_, err = ap.Eval(0.5, ThrowError)
	require.NoError(t, err)
	errs, err = ap.NevilleErrorEstimate()
	require.NoError(t, err)
	assert.Len(t, errs, 1)

	_, err = ap.Eval(4, ThrowError)
	assert.ErrorIs(t, err, ErrOutOfDomain)

	lin := tent(t, Linear)
	_, err = lin.NevilleErrorEstimate()
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}
