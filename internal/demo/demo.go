// Package demo walks through every operation of poly.Polynomial on a pair
// of sample polynomials and writes the results as a plain text report.
package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-realpoly/poly"
)

// Run builds the polynomials described by cfg and writes one line per result to w.
func Run(w io.Writer, cfg Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	p1, err := poly.NewPolynomial(cfg.P1)
	if err != nil {
		return fmt.Errorf("building p1: %w", err)
	}

	p2, err := poly.NewPolynomial(cfg.P2)
	if err != nil {
		return fmt.Errorf("building p2: %w", err)
	}

	// p3 is built separately from the same coefficients to show value equality.
	p3, err := poly.NewPolynomial(cfg.P1)
	if err != nil {
		return fmt.Errorf("building p3: %w", err)
	}

	logger.Debug("built inputs", "p1_degree", p1.Degree(), "p2_degree", p2.Degree())

	r := &report{w: w}

	r.line("Input polynomials:")
	r.line("p1: %v", p1)
	r.line("p2: %v", p2)
	r.line("")

	r.line("Sum (p1 + p2): %v", p1.Add(p2))
	r.line("Difference (p1 - p2): %v", p1.Sub(p2))
	r.line("Scaled (p1 * %s): %v", formatFloat(cfg.Factor), p1.Multiply(cfg.Factor))
	r.line("Scaled (%s * p2): %v", formatFloat(cfg.LeftFactor), poly.ScalarMul(cfg.LeftFactor, p2))
	r.line("Shifted (p1 + %s): %v", formatFloat(cfg.Offset), p1.AddScalar(cfg.Offset))
	logger.Debug("arithmetic done")

	r.line("Coefficient of x^%d in p1: %s", cfg.Power, formatFloat(p1.Coeff(cfg.Power)))
	r.line("p1(x=%s): %s", formatFloat(cfg.Point), formatFloat(p1.Eval(cfg.Point)))
	r.line("Number %s as polynomial: %v", formatFloat(cfg.Literal), poly.FromNumber(cfg.Literal))
	r.line("Coefficients of p1: [%s]", joinFloats(p1.ToSlice()))
	logger.Debug("conversions done")

	r.line("Equality:")
	r.line("p1 == p3: %t", p1.Equals(p3))
	r.line("p1 != p2: %t", !p1.Equals(p2))

	r.line("Zero checks:")
	r.line("%s", describeZero("p1", p1))
	r.line("%s", describeZero("zero", poly.New()))

	if r.err != nil {
		return fmt.Errorf("writing report: %w", r.err)
	}

	logger.Info("demo finished", "lines", r.lines)

	return nil
}

// report remembers the first write error so that Run checks it once.
type report struct {
	w     io.Writer
	err   error
	lines int
}

func (r *report) line(format string, args ...any) {
	if r.err != nil {
		return
	}

	if _, r.err = fmt.Fprintf(r.w, format+"\n", args...); r.err == nil {
		r.lines++
	}
}

func describeZero(name string, p *poly.Polynomial) string {
	if p.IsZero() {
		return name + " is the zero polynomial"
	}

	return name + " is a non-zero polynomial"
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func joinFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatFloat(x)
	}

	return strings.Join(parts, ", ")
}
