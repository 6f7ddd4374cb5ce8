package approx

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// dataset holds samples in insertion order.
type dataset struct {
	xs, ys []float64
}

func (d *dataset) add(x, y float64) {
	d.xs = append(d.xs, x)
	d.ys = append(d.ys, y)
}

func (d *dataset) reset() {
	d.xs, d.ys = nil, nil
}

func (d *dataset) size() int { return len(d.xs) }

// validate checks the samples against the requirements of s.
func (d *dataset) validate(s Strategy) error {
	n := d.size()
	if n < s.MinPoints() {
		return fmt.Errorf("%w: %s needs %d points, have %d",
			ErrInsufficientData, s, s.MinPoints(), n)
	}

	for i := 1; i < n; i++ {
		if d.xs[i] == d.xs[i-1] {
			return fmt.Errorf("%w: x = %g", ErrDuplicateDomainValue, d.xs[i])
		}
		if s.sorted() && d.xs[i] < d.xs[i-1] {
			return fmt.Errorf("%w: x[%d] = %g follows x[%d] = %g",
				ErrUnsortedDomain, i, d.xs[i], i-1, d.xs[i-1])
		}
	}

	if !s.sorted() {
		sorted := slices.Clone(d.xs)
		slices.Sort(sorted)
		for i := 1; i < n; i++ {
			if sorted[i] == sorted[i-1] {
				return fmt.Errorf("%w: x = %g", ErrDuplicateDomainValue, sorted[i])
			}
		}
	}

	if s == PeriodicCubic && d.ys[0] != d.ys[n-1] {
		return fmt.Errorf("%w: y[0] = %g, y[%d] = %g",
			ErrPeriodicBoundaryMismatch, d.ys[0], n-1, d.ys[n-1])
	}
	return nil
}

// bounds returns the smallest and largest x. The data set must not be empty.
func (d *dataset) bounds() (lo, hi float64) {
	return slices.Min(d.xs), slices.Max(d.xs)
}

// contains returns true if x is one of the sample points.
func (d *dataset) contains(x float64) bool {
	if slices.IsSorted(d.xs) {
		_, ok := slices.BinarySearch(d.xs, x)
		return ok
	}
	return slices.Contains(d.xs, x)
}
