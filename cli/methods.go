// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

var methodShort = map[string]string{
	MethodNeville: "Evaluate the interpolant at a point with Neville's method",
	MethodDivDiff: "Print Newton's divided-difference coefficients c1..cN-1",
	MethodNewton:  "Approximate f at a point from the divided-difference table",
	MethodHermite: "Print the Hermite divided-difference table",
}

var methodExample = map[string]string{
	MethodNeville: `  # Degree-2 approximation at 3.7
  interpolate neville --x 3.6,3.8,3.9 --y 1.675,1.436,1.318 --at 3.7 --degree 2`,
	MethodDivDiff: `  interpolate divdiff --x 7.2,7.4,7.5,7.6 --y 23.5492,25.3913,26.8224,27.4589`,
	MethodNewton: `  interpolate newton --points samples.txt --at 7.3`,
	MethodHermite: `  # Columns: x, y, slope
  interpolate hermite --points hermite.txt --linewidth 120`,
}

// MethodOptions contains the options of a single-method command.
type MethodOptions struct {
	Out    io.Writer
	Format *formatFlags

	Method  string
	Dataset DatasetConfig
	Degree  int
}

// NewCmdMethod builds the command for one interpolation method.
func NewCmdMethod(method string, out io.Writer, ff *formatFlags) *cobra.Command {
	o := &MethodOptions{Out: out, Format: ff, Method: method, Degree: -1}

	cmd := &cobra.Command{
		Use:     method,
		Short:   methodShort[method],
		Example: methodExample[method],
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}

			return o.Run()
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&o.Dataset.X, "x", nil, "Sample abscissas, comma separated.")
	flags.Float64SliceVar(&o.Dataset.Y, "y", nil, "Sample ordinates, comma separated.")
	flags.StringVar(&o.Dataset.Points, "points", "", "Column file with x, y (and slope) columns; overrides --x/--y.")
	switch method {
	case MethodNeville:
		flags.Float64Var(&o.Dataset.Query, "at", 0, "Query point.")
		flags.IntVar(&o.Degree, "degree", -1, "Degree of the approximation; defaults to N-1.")
	case MethodNewton:
		flags.Float64Var(&o.Dataset.Query, "at", 0, "Query point.")
	case MethodHermite:
		flags.Float64SliceVar(&o.Dataset.Slope, "slopes", nil, "First derivative at every sample, comma separated.")
	}

	return cmd
}

// Complete copies flag state into the dataset.
func (o *MethodOptions) Complete() error {
	o.Dataset.Method = o.Method
	if o.Degree >= 0 {
		o.Dataset.Degree = strconv.Itoa(o.Degree)
	}

	return nil
}

// Validate checks the dataset the flags describe.
func (o *MethodOptions) Validate() error {
	if err := o.Format.options().Validate(); err != nil {
		return fmt.Errorf("--precision %d: %w", o.Format.precision, err)
	}

	return o.Dataset.CheckInit(o.Method)
}

// Run evaluates the dataset and prints the result.
func (o *MethodOptions) Run() error {
	text, err := Evaluate(&o.Dataset, o.Format.options())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(o.Out, text)

	return err
}
