// SPDX-License-Identifier: MIT

// Package cli implements the interpolate command tree.
package cli

import (
	goflag "flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/katalvlaran/lvinterp/numfmt"
)

const interpolateLong = `Polynomial interpolation of sample points.

Runs Neville's method, Newton's divided differences (table and evaluation)
and Hermite interpolation, either one method at a time from flags or a
whole batch described by a configuration file.`

// formatFlags are the persistent print options shared by every command.
type formatFlags struct {
	precision int
	suppress  bool
	linewidth int
}

func (f *formatFlags) options() numfmt.Options {
	return numfmt.Options{Precision: f.precision, Suppress: f.suppress, LineWidth: f.linewidth}
}

// NewCmdInterpolate builds the root command.
func NewCmdInterpolate(out, errOut io.Writer) *cobra.Command {
	ff := &formatFlags{}
	def := numfmt.DefaultOptions()

	cmd := &cobra.Command{
		Use:           "interpolate",
		Short:         "Polynomial interpolation with divided differences",
		Long:          interpolateLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.IntVar(&ff.precision, "precision", def.Precision, "Maximum fractional digits when printing tables.")
	flags.BoolVar(&ff.suppress, "suppress", def.Suppress, "Never print tables in scientific notation.")
	flags.IntVar(&ff.linewidth, "linewidth", def.LineWidth, "Wrap table rows longer than this many columns.")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		NewCmdRun(out, ff),
		NewCmdMethod(MethodNeville, out, ff),
		NewCmdMethod(MethodDivDiff, out, ff),
		NewCmdMethod(MethodNewton, out, ff),
		NewCmdMethod(MethodHermite, out, ff),
	)

	return cmd
}

// RunOptions contains the options of the run command.
type RunOptions struct {
	Out    io.Writer
	Format *formatFlags

	ConfigFile    string
	PrintExample  bool
	formatChanged bool

	config *Config
}

// NewCmdRun runs a configuration file, or the four reference jobs when no
// file is given.
func NewCmdRun(out io.Writer, ff *formatFlags) *cobra.Command {
	o := &RunOptions{Out: out, Format: ff}

	cmd := &cobra.Command{
		Use:   "run [--config FILE]",
		Short: "Run every dataset of a configuration file",
		Long: `Run every [dataset] of a configuration file in name order.

Without --config the four reference jobs are run: Neville at 3.7, the
divided-difference coefficients, the Newton approximation at 7.3 and
the Hermite table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.PrintExample {
				_, err := fmt.Fprint(o.Out, ExampleConfig)
				return err
			}
			o.formatChanged = cmd.Flags().Changed("precision") ||
				cmd.Flags().Changed("suppress") ||
				cmd.Flags().Changed("linewidth")
			if err := o.Complete(); err != nil {
				return err
			}

			return o.Run()
		},
	}
	cmd.Flags().StringVarP(&o.ConfigFile, "config", "c", "", "Configuration file (gcfg/INI format).")
	cmd.Flags().BoolVar(&o.PrintExample, "example", false, "Print an example configuration file and exit.")

	return cmd
}

// Complete loads the configuration.
func (o *RunOptions) Complete() error {
	if o.ConfigFile == "" {
		o.config = ReferenceConfig()
		klog.V(2).Info("no --config given, running the reference datasets")
		return nil
	}
	cfg, err := ReadConfig(o.ConfigFile)
	if err != nil {
		return err
	}
	o.config = cfg

	return nil
}

// Run evaluates every dataset. Explicit format flags override [format].
func (o *RunOptions) Run() error {
	fo, err := o.config.Options()
	if err != nil {
		return err
	}
	if o.formatChanged || o.ConfigFile == "" {
		fo = o.Format.options()
	}

	return Report(o.Out, o.config, fo)
}
