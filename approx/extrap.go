package approx

import (
	"fmt"
	"strings"
)

// Extrapolation controls what happens to points outside the domain.
type Extrapolation int

const (
	// ThrowError fails with ErrOutOfDomain.
	ThrowError Extrapolation = iota
	// NearestEndpoint moves the point to the closest end of the domain.
	NearestEndpoint
	// Extrapolate evaluates the strategy outside its domain. Backend and
	// NeighborhoodCubic strategies refuse.
	Extrapolate
)

var extrapNames = []string{"throw-error", "nearest-endpoint", "extrapolate"}

func (ext Extrapolation) String() string {
	if ext < 0 || int(ext) >= len(extrapNames) {
		return fmt.Sprintf("Extrapolation(%d)", int(ext))
	}
	return extrapNames[ext]
}

// ParseExtrapolation reads an extrapolation policy. Both "nearest-endpoint"
// and "NearestEndpoint" forms are accepted.
func ParseExtrapolation(name string) (Extrapolation, error) {
	flat := strings.ReplaceAll(strings.ToLower(name), "-", "")
	for i, ext := range extrapNames {
		if flat == strings.ReplaceAll(ext, "-", "") {
			return Extrapolation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown extrapolation '%s'",
		ErrUnsupportedOperation, name)
}

// eps is the tolerance used when deciding whether a point is inside the
// domain.
const eps = 0x1p-52

// insideDomain is false for NaN.
func insideDomain(x, lo, hi float64) bool {
	return x+eps >= lo && x-eps <= hi
}

// clampOnto moves a point which is within eps of the range onto it.
func clampOnto(x, lo, hi float64) (float64, error) {
	if !insideDomain(x, lo, hi) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, lo, hi)
	}
	if x < lo {
		return lo, nil
	} else if x > hi {
		return hi, nil
	}
	return x, nil
}

// resolve applies the extrapolation policy to x. The data set is validated as
// a side effect.
func (ap *Approximation) resolve(x float64, ext Extrapolation) (float64, error) {
	lo, hi, err := ap.domain()
	if err != nil {
		return 0, err
	}
	if insideDomain(x, lo, hi) {
		return x, nil
	}

	switch ext {
	case NearestEndpoint:
		// NaN goes to the maximum.
		if x+eps < lo {
			return lo, nil
		}
		return hi, nil
	case Extrapolate:
		if ap.strategy.Backend() || ap.strategy == NeighborhoodCubic {
			return 0, fmt.Errorf("%w: %s", ErrExtrapolationUnsupported, ap.strategy)
		}
		return x, nil
	default:
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, lo, hi)
	}
}
