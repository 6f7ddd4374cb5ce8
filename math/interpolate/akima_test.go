package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAkimaReproducesLines(t *testing.T) {
	xs := []float64{0, 1, 2, 4, 5, 7}
	ys := mapFunc(xs, func(x float64) float64 { return 3*x - 1 })

	for _, periodic := range []bool{false, true} {
		var (
			ak  *Akima
			err error
		)
		if periodic {
			ak, err = NewPeriodicAkima(xs, ys)
		} else {
			ak, err = NewAkima(xs, ys)
		}
		require.NoError(t, err)
		assert.Equal(t, periodic, ak.Periodic())

		for _, x := range linspace(0, 7, 15) {
			assert.InDelta(t, 3*x-1, ak.Eval(x), 1e-12, "x = %g", x)
		}
		assert.InDelta(t, 3.0, ak.Deriv(3, 1), 1e-12)
	}
}

func TestAkimaKnots(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{0, 1, 0, 2, 2, 5}
	ak, err := NewAkima(xs, ys)
	require.NoError(t, err)

	for i := range xs {
		assert.InDelta(t, ys[i], ak.Eval(xs[i]), 1e-12)
	}

	// A flat stretch stays flat.
	for _, x := range linspace(3, 4, 5) {
		assert.InDelta(t, 2.0, ak.Eval(x), 0.3)
	}
}

func TestAkimaConverges(t *testing.T) {
	xs := linspace(0, math.Pi, 100)
	ak, err := NewAkima(xs, mapFunc(xs, math.Sin))
	require.NoError(t, err)
	for _, x := range linspace(0.2, math.Pi-0.2, 15) {
		assert.InDelta(t, math.Sin(x), ak.Eval(x), 1e-3)
	}
}

func TestAkimaTooShort(t *testing.T) {
	_, err := NewAkima([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	assert.ErrorIs(t, err, ErrTableLength)
}
