package interpolate

// Polynomial is the unique polynomial of degree len(xs)-1 which passes through
// every point of the table. It is stored in Newton's divided difference form.
//
// Unlike the piecewise interpolators, a Polynomial can be evaluated outside
// of its table.
type Polynomial struct {
	xs, ys []float64
	dd     []float64
}

// NewPolynomial creates an interpolating polynomial for a strictly increasing
// table of at least two points.
func NewPolynomial(xs, ys []float64) (*Polynomial, error) {
	if err := checkTable(xs, ys, 2); err != nil {
		return nil, err
	}

	n := len(xs)
	p := &Polynomial{
		xs: make([]float64, n), ys: make([]float64, n),
		dd: make([]float64, n),
	}
	copy(p.xs, xs)
	copy(p.ys, ys)
	copy(p.dd, ys)

	for j := 1; j < n; j++ {
		for i := n - 1; i >= j; i-- {
			p.dd[i] = (p.dd[i] - p.dd[i-1]) / (xs[i] - xs[i-j])
		}
	}
	return p, nil
}

// Eval evaluates the polynomial at x.
func (p *Polynomial) Eval(x float64) float64 {
	n := len(p.dd)
	y := p.dd[n-1]
	for i := n - 2; i >= 0; i-- {
		y = p.dd[i] + (x-p.xs[i])*y
	}
	return y
}

// EvalAll evaluates the polynomial at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (p *Polynomial) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(p, xs, out)
}

// Deriv computes the derivative of the given order at x.
func (p *Polynomial) Deriv(x float64, order int) float64 {
	if order >= len(p.dd) {
		return 0
	}
	cs := p.taylor(x)
	fact := 1.0
	for k := 2; k <= order; k++ {
		fact *= float64(k)
	}
	return fact * cs[order]
}

// Integrate integrates the polynomial from lo to hi.
func (p *Polynomial) Integrate(lo, hi float64) float64 {
	cs := p.taylor(lo)
	dx := hi - lo

	sum, pow := 0.0, dx
	for k, c := range cs {
		sum += c * pow / float64(k+1)
		pow *= dx
	}
	return sum
}

// Bounds returns the range of the table the polynomial was built from.
func (p *Polynomial) Bounds() (lo, hi float64) {
	return p.xs[0], p.xs[len(p.xs)-1]
}

// taylor returns the coefficients of the polynomial expanded in powers of
// (x - x0).
func (p *Polynomial) taylor(x0 float64) []float64 {
	n := len(p.dd)
	cs := make([]float64, n)
	cs[0] = p.dd[n-1]

	// Horner's rule on the Newton form, multiplying by (s + x0 - xs[k]) each
	// step, where s = x - x0.
	for k := n - 2; k >= 0; k-- {
		r := x0 - p.xs[k]
		for j := n - 1; j >= 1; j-- {
			cs[j] = cs[j-1] + r*cs[j]
		}
		cs[0] = p.dd[k] + r*cs[0]
	}
	return cs
}
