package approx

import (
	"fmt"
	"strings"
)

// Strategy selects the algorithm an Approximation uses.
type Strategy int

const (
	Linear Strategy = iota
	Polynomial
	NaturalCubic
	PeriodicCubic
	Akima
	PeriodicAkima
	NeighborhoodCubic
	ClampedCubic
	NevillePolynomial
	HermiteCubic

	strategyCount
)

var strategyInfo = [strategyCount]struct {
	name, ident string
	minPoints   int
}{
	Linear:            {"linear", "Linear", 2},
	Polynomial:        {"polynomial", "Polynomial", 2},
	NaturalCubic:      {"cspline-natural", "NaturalCubic", 3},
	PeriodicCubic:     {"cspline-periodic", "PeriodicCubic", 3},
	Akima:             {"akima", "Akima", 5},
	PeriodicAkima:     {"akima-periodic", "PeriodicAkima", 5},
	NeighborhoodCubic: {"cspline-neighborhood", "NeighborhoodCubic", 4},
	ClampedCubic:      {"cspline-clamped", "ClampedCubic", 3},
	NevillePolynomial: {"polynomial-Neville's", "NevillePolynomial", 3},
	HermiteCubic:      {"cspline-Hermite", "HermiteCubic", 2},
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, strategyCount)
	for i := range out {
		out[i] = Strategy(i)
	}
	return out
}

func (s Strategy) valid() bool { return s >= 0 && s < strategyCount }

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyInfo[s].name
}

// MinPoints returns the smallest data set the strategy accepts.
func (s Strategy) MinPoints() int {
	if !s.valid() {
		return 0
	}
	return strategyInfo[s].minPoints
}

// Backend returns true for strategies which are evaluated through a
// math/interpolate curve.
func (s Strategy) Backend() bool {
	return s >= Linear && s <= PeriodicAkima
}

// sorted returns true if the strategy requires ascending x values.
func (s Strategy) sorted() bool { return s != NevillePolynomial }

// ParseStrategy returns the strategy with the given canonical name or Go
// identifier. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	for i, info := range strategyInfo {
		if strings.EqualFold(name, info.name) ||
			strings.EqualFold(name, info.ident) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownStrategy, name)
}
