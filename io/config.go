package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/numapprox/approx"
)

const (
	ExampleApproxFile = `[Approx]

#######################
# Required Parameters #
#######################

# Whitespace-separated table of samples, one sample per line.
Input = path/to/samples.txt

# The approximation strategy. One of:
# [ linear | polynomial | cspline-natural | cspline-periodic | akima |
#   akima-periodic | cspline-neighborhood | cspline-clamped |
#   polynomial-Neville's | cspline-Hermite ]
Strategy = cspline-natural

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of the x and y values. Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# Column containing first derivatives. Required for cspline-Hermite.
# DerivColumn = 2

# What to do with points outside the domain. One of:
# [ throw-error | nearest-endpoint | extrapolate ]
# Extrapolation = throw-error

# End conditions for cspline-clamped. Setting NaturalFirst or NaturalLast
# ignores the corresponding slope.
# FirstSlope = 0
# LastSlope = 0
# NaturalFirst = false
# NaturalLast = false

# Finite difference formula used by -Differentiate when the strategy has no
# closed form derivative. DifferenceStep defaults to a hundredth of the
# domain.
# DifferencePoints = 3
# DifferenceStep = 0.01

# Output of -Plot mode.
# PlotFile = approx.png
# PlotPoints = 200

# Output of -Tabulate mode. The approximation is sampled at PlotPoints evenly
# spaced points and written as a binary table.
# TableFile = approx.tab`
)

type ApproxConfig struct {
	// Required
	Input    string
	Strategy string

	// Optional
	XColumn, YColumn, DerivColumn int
	Extrapolation                 string
	FirstSlope, LastSlope         float64
	NaturalFirst, NaturalLast     bool
	DifferencePoints              int
	DifferenceStep                float64
	PlotFile                      string
	PlotPoints                    int
	TableFile                     string
}

type ApproxWrapper struct {
	Approx ApproxConfig
}

func DefaultApproxWrapper() *ApproxWrapper {
	con := ApproxConfig{}
	con.XColumn, con.YColumn, con.DerivColumn = 0, 1, -1
	con.Extrapolation = approx.ThrowError.String()
	con.DifferencePoints = 3
	con.PlotFile = "approx.png"
	con.PlotPoints = 200
	con.TableFile = "approx.tab"
	return &ApproxWrapper{con}
}

func (con *ApproxConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *ApproxConfig) ValidStrategy() bool {
	_, err := approx.ParseStrategy(con.Strategy)
	return err == nil
}
func (con *ApproxConfig) ValidExtrapolation() bool {
	_, err := approx.ParseExtrapolation(con.Extrapolation)
	return err == nil
}
func (con *ApproxConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *ApproxConfig) ValidDerivColumn() bool {
	return con.DerivColumn >= 0
}
func (con *ApproxConfig) ValidDifferencePoints() bool {
	switch con.DifferencePoints {
	case 2, 3, 5:
		return true
	}
	return false
}
func (con *ApproxConfig) ValidDifferenceStep() bool {
	return con.DifferenceStep > 0
}
func (con *ApproxConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *ApproxConfig) ValidTableFile() bool {
	return con.TableFile != ""
}
func (con *ApproxConfig) ValidPlotPoints() bool {
	return con.PlotPoints > 1
}

// Check returns an error describing the first invalid required value.
func (con *ApproxConfig) Check() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidStrategy() {
		return fmt.Errorf("Invalid/non-existent 'Strategy' value, '%s'.",
			con.Strategy)
	} else if !con.ValidExtrapolation() {
		return fmt.Errorf("Invalid 'Extrapolation' value, '%s'.",
			con.Extrapolation)
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"'XColumn' and 'YColumn' must be distinct and non-negative, "+
				"but are %d and %d.", con.XColumn, con.YColumn,
		)
	} else if !con.ValidDifferencePoints() {
		return fmt.Errorf("Invalid 'DifferencePoints' value, %d.",
			con.DifferencePoints)
	} else if !con.ValidPlotPoints() {
		return fmt.Errorf("'PlotPoints' must be at least 2, but is %d.",
			con.PlotPoints)
	} else if con.DifferenceStep < 0 {
		return fmt.Errorf("'DifferenceStep' must be positive, but is %g.",
			con.DifferenceStep)
	}

	s, _ := approx.ParseStrategy(con.Strategy)
	if s == approx.HermiteCubic && !con.ValidDerivColumn() {
		return fmt.Errorf("Strategy '%s' requires a 'DerivColumn'.", s)
	}
	return nil
}

// ReadApproxConfig reads and checks an [Approx] configuration file.
func ReadApproxConfig(fname string) (*ApproxConfig, error) {
	wrap := DefaultApproxWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Approx
	if err := con.Check(); err != nil {
		return nil, err
	}
	return con, nil
}
