package interpolate

import (
	"fmt"
)

// searcher finds the table interval containing a point. Tables are usually
// close to uniform, so it guesses before falling back to a binary search.
type searcher struct {
	xs      []float64
	x0, lim float64
	dx      float64
	n       int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.n = len(xs)
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
}

// search returns the index i such that xs[i] <= x <= xs[i+1].
func (s *searcher) search(x float64) int {
	if x > s.lim || x < s.x0 {
		panic(fmt.Sprintf(
			"Value %g out of range bounds [%g, %g]", x, s.x0, s.lim,
		))
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < s.n-1 &&
		s.xs[guess] <= x && s.xs[guess+1] >= x {

		return guess
	}

	// Binary search.
	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

func (s *searcher) inBounds(x float64) bool {
	return x >= s.x0 && x <= s.lim
}
