package approx

import (
	"errors"
)

var (
	// ErrInsufficientData is returned when the data set has fewer points than
	// the strategy needs.
	ErrInsufficientData = errors.New("approx: insufficient data")
	// ErrDuplicateDomainValue is returned when two samples share an x value.
	ErrDuplicateDomainValue = errors.New("approx: duplicate domain value")
	// ErrUnsortedDomain is returned when x values are not ascending for a
	// strategy which requires it.
	ErrUnsortedDomain = errors.New("approx: domain values not ascending")
	// ErrPeriodicBoundaryMismatch is returned by PeriodicCubic when the first
	// and last y values differ.
	ErrPeriodicBoundaryMismatch = errors.New("approx: periodic endpoints differ")
	// ErrOutOfDomain is returned for a point outside the domain under
	// ThrowError.
	ErrOutOfDomain = errors.New("approx: value outside domain")
	// ErrExtrapolationUnsupported is returned when Extrapolate is requested
	// from a strategy which cannot extrapolate.
	ErrExtrapolationUnsupported = errors.New("approx: strategy cannot extrapolate")
	// ErrBoundaryConditionsNotSet is returned when a ClampedCubic
	// approximation is evaluated before its boundaries are set.
	ErrBoundaryConditionsNotSet = errors.New("approx: clamped boundary conditions not set")
	// ErrDerivativeCountMismatch is returned when the number of Hermite
	// derivatives differs from the number of samples.
	ErrDerivativeCountMismatch = errors.New("approx: derivative count does not match data size")
	// ErrFormulaOutOfDomain is returned when a finite difference formula
	// would sample outside the domain.
	ErrFormulaOutOfDomain = errors.New("approx: formula samples outside domain")
	// ErrUnsupportedFormulaOrder is returned for a finite difference point
	// count with no formula.
	ErrUnsupportedFormulaOrder = errors.New("approx: unsupported formula order")
	// ErrUnsupportedOperation is returned when an operation does not apply to
	// the current strategy.
	ErrUnsupportedOperation = errors.New("approx: operation not supported by strategy")
	// ErrBackend is returned when a spline backend cannot be built.
	ErrBackend = errors.New("approx: backend failure")
	// ErrConvergenceFailure is returned when Romberg integration does not
	// converge.
	ErrConvergenceFailure = errors.New("approx: failed to converge")
	// ErrInvalidInterval is returned when an integration interval has a > b.
	ErrInvalidInterval = errors.New("approx: invalid interval")
	// ErrUnknownStrategy is returned for unrecognized strategies.
	ErrUnknownStrategy = errors.New("approx: unknown strategy")
	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("approx: length mismatch")
	// ErrNoEstimate is returned when no Neville error estimate has been
	// recorded.
	ErrNoEstimate = errors.New("approx: no error estimate available")
)

// OpError records the operation which failed. Operations which call other
// operations nest OpErrors, so the message reads outermost first.
type OpError struct {
	Op  string
	Err error
}

func (err *OpError) Error() string {
	return err.Op + ": " + err.Err.Error()
}

func (err *OpError) Unwrap() error {
	return err.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}
