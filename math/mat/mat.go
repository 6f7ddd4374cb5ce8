/*mat contains routines for solving small dense linear systems. Operations are
split into easy to use methods which allocate as they go and slightly less
easy to use methods which require explicitly managing the LU decomposition.

Everything only works on square matrices because that's all the spline code
needs.
*/
package mat

import (
	"errors"
	"math"
)

// ErrSingular is returned when a matrix has no LU decomposition.
var ErrSingular = errors.New("mat: matrix is singular")

// Matrix represents a row-major matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors contains data fields neccessary for a number of matrix operations.
// Exporting this type allows calling routines to reuse a decomposition when
// solving the same system against several right hand sides.
type LUFactors struct {
	lu    Matrix
	pivot []int
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// SolveVector solves the equation m * xs = bs for xs.
func (m *Matrix) SolveVector(bs []float64) ([]float64, error) {
	lu, err := m.LU()
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(bs))
	return lu.SolveVector(bs, xs), nil
}

// NewLUFactors creates an LUFactors instance of the requested dimensions.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.pivot = make([]int, n)

	return luf
}

// LU returns the LU decomposition of a matrix.
func (m *Matrix) LU() (*LUFactors, error) {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	lu := NewLUFactors(m.Width)
	if err := m.LUFactorsAt(lu); err != nil {
		return nil, err
	}
	return lu, nil
}

// LUFactorsAt stores the LU decomposition of a matrix at the specified
// location. Rows are pivoted on the largest remaining element of each column.
func (m *Matrix) LUFactorsAt(luf *LUFactors) error {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimenstions than m.")
	}

	n := m.Width
	for i := 0; i < n; i++ {
		luf.pivot[i] = i
	}
	lu := luf.lu.Vals
	copy(lu, m.Vals)

	for k := 0; k < n; k++ {
		maxRow := findMaxRow(n, lu, k)
		if lu[maxRow*n+k] == 0 {
			return ErrSingular
		}
		if k != maxRow {
			swapRows(k, maxRow, n, lu)
			luf.pivot[k], luf.pivot[maxRow] = luf.pivot[maxRow], luf.pivot[k]
		}

		kOffset := k * n
		for i := k + 1; i < n; i++ {
			iOffset := i * n
			lu[iOffset+k] /= lu[kOffset+k]
			tmp := lu[iOffset+k]
			for j := k + 1; j < n; j++ {
				lu[iOffset+j] -= tmp * lu[kOffset+j]
			}
		}
	}

	return nil
}

// Finds the index of the row containing the maximum value in the column.
// Ignores the rows above col since those have already been eliminated.
func findMaxRow(n int, m []float64, col int) int {
	max, maxRow := -1.0, col

	for i := col; i < n; i++ {
		val := math.Abs(m[i*n+col])
		if val > max {
			max = val
			maxRow = i
		}
	}
	return maxRow
}

func swapRows(i1, i2, n int, lu []float64) {
	i1Offset, i2Offset := n*i1, n*i2
	for j := 0; j < n; j++ {
		idx1, idx2 := i1Offset+j, i2Offset+j
		lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
	}
}

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) []float64 {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}

	// A x = b -> (L U) x = b -> L (U x) = b -> L y = b
	ys := make([]float64, n)

	// Solve L * y = P * b for y.
	forwardSubst(n, luf.pivot, luf.lu.Vals, bs, ys)
	// Solve U * x = y for x.
	backSubst(n, luf.lu.Vals, ys, xs)

	return xs
}

// Solves L * y = P * b for y. L has an implicit unit diagonal.
func forwardSubst(n int, pivot []int, lu, bs, ys []float64) {
	for i := 0; i < n; i++ {
		sum := bs[pivot[i]]
		for j := 0; j < i; j++ {
			sum -= lu[i*n+j] * ys[j]
		}
		ys[i] = sum
	}
}

// Solves U * x = y for x.
// x_i = (y_i - sum_j=i+1^N-1 (beta_ij x_j)) / beta_ii
func backSubst(n int, lu, ys, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += lu[i*n+j] * xs[j]
		}
		xs[i] = (ys[i] - sum) / lu[i*n+i]
	}
}
