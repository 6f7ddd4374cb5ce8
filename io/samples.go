package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/numapprox/approx"
)

// Samples is a table of function samples read from disk. Derivs is only set
// when the configuration names a derivative column.
type Samples struct {
	Xs, Ys, Derivs []float64
}

// ReadSamples reads the columns named by con from con.Input.
func ReadSamples(con *ApproxConfig) (*Samples, error) {
	colIdxs := []int{con.XColumn, con.YColumn}
	if con.ValidDerivColumn() {
		colIdxs = append(colIdxs, con.DerivColumn)
	}

	cols, err := table.ReadTable(con.Input, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	s := &Samples{Xs: cols[0], Ys: cols[1]}
	if con.ValidDerivColumn() {
		s.Derivs = cols[2]
	}
	return s, nil
}

// BuildApproximation creates an Approximation from a configuration and its
// samples, applying the strategy-specific settings in con.
func BuildApproximation(
	con *ApproxConfig, s *Samples, log l.Wrapper,
) (*approx.Approximation, approx.Extrapolation, error) {
	strategy, err := approx.ParseStrategy(con.Strategy)
	if err != nil {
		return nil, 0, err
	}
	ext, err := approx.ParseExtrapolation(con.Extrapolation)
	if err != nil {
		return nil, 0, err
	}

	ap, err := approx.New(strategy, approx.Data(s.Xs, s.Ys), approx.Logger(log))
	if err != nil {
		return nil, 0, err
	}

	switch strategy {
	case approx.ClampedCubic:
		first, last := approx.Clamped(con.FirstSlope), approx.Clamped(con.LastSlope)
		if con.NaturalFirst {
			first = approx.Natural()
		}
		if con.NaturalLast {
			last = approx.Natural()
		}
		if err := ap.SetClampedBoundaries(first, last); err != nil {
			return nil, 0, err
		}
	case approx.HermiteCubic:
		if s.Derivs == nil {
			return nil, 0, fmt.Errorf(
				"Strategy '%s' requires derivatives, but none were read.", strategy,
			)
		}
		if err := ap.SetHermiteDerivatives(s.Derivs); err != nil {
			return nil, 0, err
		}
	}

	return ap, ext, nil
}

// DifferenceStep returns the finite difference step for ap: the configured
// value if there is one, otherwise a hundredth of the domain.
func DifferenceStep(con *ApproxConfig, ap *approx.Approximation) (float64, error) {
	if con.ValidDifferenceStep() {
		return con.DifferenceStep, nil
	}
	lo, err := ap.DomainMin()
	if err != nil {
		return 0, err
	}
	hi, err := ap.DomainMax()
	if err != nil {
		return 0, err
	}
	return (hi - lo) / 100, nil
}
