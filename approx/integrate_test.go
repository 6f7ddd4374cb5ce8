package approx

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parabola samples x^2 over [0, 2].
func parabola(t *testing.T, s Strategy) *Approximation {
	xs, ys := make([]float64, 9), make([]float64, 9)
	for i := range xs {
		xs[i] = 0.25 * float64(i)
		ys[i] = xs[i] * xs[i]
	}
	ap, err := New(s, Data(xs, ys))
	require.NoError(t, err)
	return ap
}

func TestIntegrationRules(t *testing.T) {
	const exact = 8.0 / 3

	for _, s := range []Strategy{Polynomial, NevillePolynomial} {
		ap := parabola(t, s)

		table := []struct {
			name string
			f    func(lo, hi float64) (float64, error)
			tol  float64
		}{
			{"Trapezoidal", ap.Trapezoidal, 0.03},
			{"Simpson3", ap.Simpson3, 1e-9},
			{"Simpson38", ap.Simpson38, 1e-9},
			{"Boole", ap.Boole, 1e-9},
			{"Romberg", ap.Romberg, 1e-4},
		}
		for _, test := range table {
			got, err := test.f(0, 2)
			require.NoError(t, err, "%s %s", s, test.name)
			assert.InDelta(t, exact, got, test.tol, "%s %s", s, test.name)
		}
	}

	ap := parabola(t, Polynomial)
	got, err := ap.Integral(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, exact, got, 1e-12)
	got, err = ap.Integral(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestRombergSpline(t *testing.T) {
	ap := parabola(t, NaturalCubic)
	want, err := ap.Integral(0.5, 1.5)
	require.NoError(t, err)
	got, err := ap.Romberg(0.5, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-4)
}

func TestSampleForIntegration(t *testing.T) {
	ap := parabola(t, Linear)

	table := []struct {
		n, segments int
	}{
		{2, 8}, {3, 8}, {4, 9}, {5, 8},
	}
	for _, test := range table {
		fs, h, err := ap.sampleForIntegration(0, 1, test.n)
		require.NoError(t, err)
		assert.Len(t, fs, test.segments+1, "n = %d", test.n)
		assert.InDelta(t, 1/float64(test.segments), h, 1e-15, "n = %d", test.n)
		assert.Equal(t, 1.0, fs[len(fs)-1])
	}
}

func TestIntegrationErrors(t *testing.T) {
	ap := parabola(t, Polynomial)

	_, err := ap.Trapezoidal(2, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	_, err = ap.Romberg(2, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	_, err = ap.Integral(2, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	_, err = ap.Simpson3(-1, 1)
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = ap.Boole(0, 3)
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = ap.Trapezoidal(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = ap.Simpson3(0, math.NaN())
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = ap.Romberg(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrOutOfDomain)

	spl := parabola(t, NaturalCubic)
	_, err = spl.Integral(0, math.NaN())
	assert.ErrorIs(t, err, ErrOutOfDomain)

	nev := parabola(t, NevillePolynomial)
	_, err = nev.Integral(0, 1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	herm, err := New(HermiteCubic, Data([]float64{0, 1}, []float64{0, 1}))
	require.NoError(t, err)
	_, err = herm.Romberg(0, 1)
	assert.ErrorIs(t, err, ErrDerivativeCountMismatch)
	assert.True(t, strings.HasPrefix(err.Error(), "Romberg: refine: Eval: "), err.Error())
}
