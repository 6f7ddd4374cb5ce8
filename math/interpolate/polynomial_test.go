package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomialSquare(t *testing.T) {
	p, err := NewPolynomial([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)

	for _, x := range []float64{0, 0.5, 1.5, 2, 3} {
		assert.InDelta(t, x*x, p.Eval(x), 1e-12, "x = %g", x)
		assert.InDelta(t, 2*x, p.Deriv(x, 1), 1e-12, "x = %g", x)
		assert.InDelta(t, 2.0, p.Deriv(x, 2), 1e-12, "x = %g", x)
		assert.Equal(t, 0.0, p.Deriv(x, 3))
	}
	assert.InDelta(t, 8.0/3, p.Integrate(0, 2), 1e-12)
	assert.InDelta(t, 7.0/3, p.Integrate(1, 2), 1e-12)
}

func TestPolynomialCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 1 }
	xs := []float64{-1, 0, 0.5, 2}
	p, err := NewPolynomial(xs, mapFunc(xs, f))
	require.NoError(t, err)

	assert.InDelta(t, f(1), p.Eval(1), 1e-12)
	assert.InDelta(t, 6.0, p.Deriv(1, 2), 1e-12)
	assert.InDelta(t, 6.0, p.Deriv(-0.3, 3), 1e-12)
	// x^4/4 - x^2 + x from -1 to 2.
	assert.InDelta(t, 3.75, p.Integrate(-1, 2), 1e-12)

	lo, hi := p.Bounds()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 2.0, hi)
}
