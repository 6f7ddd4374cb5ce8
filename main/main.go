package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"golang.org/x/term"

	"github.com/phil-mansfield/numapprox/approx"
	"github.com/phil-mansfield/numapprox/io"
)

var logger = l.NewConsoleLoggerWrapper()

func fatal(err error, msg string) {
	logger.WithFields(l.ErrorField(err)).Fatal(msg)
}

func main() {
	var (
		evaluate, differentiate, integrate, plot, tabulate string
		exampleConfig                                      string
	)
	vars := map[string]*string{
		"Evaluate":      &evaluate,
		"Differentiate": &differentiate,
		"Integrate":     &integrate,
		"Plot":          &plot,
		"Tabulate":      &tabulate,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&evaluate, "Evaluate", "",
		"Configuration file for [Approx] mode. Evaluates the approximation "+
			"at every positional argument.",
	)
	flag.StringVar(
		&differentiate, "Differentiate", "",
		"Configuration file for [Approx] mode. Differentiates the "+
			"approximation at every positional argument.",
	)
	flag.StringVar(
		&integrate, "Integrate", "",
		"Configuration file for [Approx] mode. Integrates the approximation "+
			"between the two positional arguments.",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Configuration file for [Approx] mode. Plots the samples and the "+
			"approximation to 'PlotFile'.",
	)
	flag.StringVar(
		&tabulate, "Tabulate", "",
		"Configuration file for [Approx] mode. Samples the approximation at "+
			"'PlotPoints' points and writes a binary table to 'TableFile'.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Approx'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		fatal(err, "bad flags")
	}

	if modeName == "ExampleConfig" {
		if exampleConfig != "Approx" {
			logger.WithFields(l.StringField("arg", exampleConfig)).Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Approx'.",
			)
		}
		fmt.Println(io.ExampleApproxFile)
		return
	}

	con, err := io.ReadApproxConfig(*vars[modeName])
	if err != nil {
		fatal(err, "cannot read config")
	}
	samples, err := io.ReadSamples(con)
	if err != nil {
		fatal(err, "cannot read samples")
	}
	ap, ext, err := io.BuildApproximation(con, samples, logger)
	if err != nil {
		fatal(err, "cannot build approximation")
	}
	logger.WithFields(
		l.StringField("strategy", ap.Name()), l.IntField("points", ap.Size()),
	).Debug("loaded samples")

	args, err := parseArgs(flag.Args())
	if err != nil {
		fatal(err, "bad positional arguments")
	}

	switch modeName {
	case "Evaluate":
		evaluateMain(ap, ext, args)
	case "Differentiate":
		differentiateMain(con, ap, args)
	case "Integrate":
		if len(args) != 2 {
			logger.WithFields(l.IntField("args", len(args))).Fatal(
				"Integrate mode needs exactly two positional arguments.",
			)
		}
		integrateMain(ap, args[0], args[1])
	case "Plot":
		plotMain(con, ap, ext, samples)
	case "Tabulate":
		tabulateMain(con, ap, ext)
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but numapprox "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func parseArgs(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := cast.ToFloat64E(arg)
		if err != nil {
			return nil, fmt.Errorf("Argument %d, '%s', is not a number.", i+1, arg)
		}
		xs[i] = x
	}
	return xs, nil
}

// header prints column names when a person is reading the output.
func header(names ...string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("# %s\n", strings.Join(names, " "))
	}
}

func evaluateMain(ap *approx.Approximation, ext approx.Extrapolation, xs []float64) {
	ys, err := ap.EvalAll(xs, ext)
	if err != nil {
		fatal(err, "evaluation failed")
	}

	header("x", "y")
	for i := range xs {
		fmt.Printf("%.10g %.10g\n", xs[i], ys[i])
	}
}

func differentiateMain(
	con *io.ApproxConfig, ap *approx.Approximation, xs []float64,
) {
	closedForm := ap.Strategy().Backend() || ap.Strategy() == approx.HermiteCubic
	h, err := io.DifferenceStep(con, ap)
	if err != nil {
		fatal(err, "cannot choose difference step")
	}

	header("x", "dy/dx", "d2y/dx2")
	for _, x := range xs {
		var d1, d2 float64
		if closedForm {
			if d1, err = ap.FirstDerivative(x); err != nil {
				fatal(err, "differentiation failed")
			}
			if d2, err = ap.SecondDerivative(x); err != nil {
				fatal(err, "differentiation failed")
			}
		} else {
			d1, d2, err = centerDifferences(ap, x, con.DifferencePoints, h)
			if err != nil {
				fatal(err, "differentiation failed")
			}
		}
		fmt.Printf("%.10g %.10g %.10g\n", x, d1, d2)
	}
}

// centerDifferences uses the highest order center formulas which fit in n
// points.
func centerDifferences(
	ap *approx.Approximation, x float64, n int, h float64,
) (d1, d2 float64, err error) {
	if n < 5 {
		n = 3
	}
	if d1, err = ap.CenterFirstDifference(x, n, h); err != nil {
		return 0, 0, err
	}
	if d2, err = ap.CenterSecondDifference(x, n, h); err != nil {
		return 0, 0, err
	}
	return d1, d2, nil
}

func integrateMain(ap *approx.Approximation, lo, hi float64) {
	type rule struct {
		name string
		f    func(lo, hi float64) (float64, error)
	}
	rules := []rule{
		{"Trapezoidal", ap.Trapezoidal},
		{"Simpson3", ap.Simpson3},
		{"Simpson38", ap.Simpson38},
		{"Boole", ap.Boole},
		{"Romberg", ap.Romberg},
	}
	if ap.Strategy().Backend() {
		rules = append(rules, rule{"Exact", ap.Integral})
	}

	header("rule", "integral")
	for _, r := range rules {
		val, err := r.f(lo, hi)
		if err != nil {
			logger.WithFields(l.StringField("rule", r.name),
				l.ErrorField(err)).Error("integration failed")
			continue
		}
		fmt.Printf("%s %.10g\n", r.name, val)
	}
}

// grid evaluates ap at n evenly spaced points across its domain.
func grid(
	ap *approx.Approximation, ext approx.Extrapolation, n int,
) (xs, ys []float64, lo, hi float64) {
	lo, err := ap.DomainMin()
	if err != nil {
		fatal(err, "cannot find domain")
	}
	hi, err = ap.DomainMax()
	if err != nil {
		fatal(err, "cannot find domain")
	}

	xs = make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[len(xs)-1] = hi

	ys, err = ap.EvalAll(xs, ext)
	if err != nil {
		fatal(err, "evaluation failed")
	}
	return xs, ys, lo, hi
}

func tabulateMain(
	con *io.ApproxConfig, ap *approx.Approximation, ext approx.Extrapolation,
) {
	if !con.ValidTableFile() {
		logger.Fatal("Tabulate mode needs a 'TableFile'.")
	}
	xs, ys, lo, hi := grid(ap, ext, con.PlotPoints)
	info := io.NewTableInfo(ap.Name(), len(xs), lo, hi)
	if err := io.WriteTableFile(con.TableFile, info, xs, ys); err != nil {
		fatal(err, "cannot write table")
	}
	logger.WithFields(l.StringField("file", con.TableFile),
		l.IntField("points", len(xs))).Debug("wrote table")
}

func plotMain(
	con *io.ApproxConfig, ap *approx.Approximation,
	ext approx.Extrapolation, samples *io.Samples,
) {
	if !con.ValidPlotFile() {
		logger.Fatal("Plot mode needs a 'PlotFile'.")
	}
	xs, ys, _, _ := grid(ap, ext, con.PlotPoints)

	plt.Figure()
	plt.Plot(xs, ys, "b", plt.LW(2))
	plt.Plot(samples.Xs, samples.Ys, "ok")
	plt.Title(fmt.Sprintf("%s (%d points)", ap.Name(), ap.Size()))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.Grid(plt.Axis("both"))
	plt.SaveFig(con.PlotFile)
	plt.Execute()

	logger.WithFields(l.StringField("file", con.PlotFile)).Debug("wrote plot")
}
