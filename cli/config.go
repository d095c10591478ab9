// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/katalvlaran/lvinterp/numfmt"
)

// Method names accepted in a dataset section.
const (
	MethodNeville = "neville"
	MethodDivDiff = "divdiff"
	MethodNewton  = "newton"
	MethodHermite = "hermite"
)

// ExampleConfig is printed by "interpolate run --example" and documents
// every accepted variable.
const ExampleConfig = `# Output formatting.
[format]
precision = 7
suppress = true
linewidth = 100

# One subsection per dataset; datasets run in name order.
# method is one of neville, divdiff, newton, hermite.
[dataset "q1"]
method = neville
x = 3.6
x = 3.8
x = 3.9
y = 1.675
y = 1.436
y = 1.318
query = 3.7
# degree defaults to N-1 when omitted.
degree = 2

# Samples may come from a whitespace-separated column file instead:
# column 0 = x, column 1 = y, column 2 = slope (hermite only).
# [dataset "fromfile"]
# method = newton
# points = samples.txt
# query = 7.3
`

// Config is the gcfg layout of a run file.
type Config struct {
	Format  FormatConfig
	Dataset map[string]*DatasetConfig
}

// FormatConfig mirrors numfmt.Options.
type FormatConfig struct {
	Precision int
	Suppress  bool
	LineWidth int
}

// DatasetConfig describes one interpolation job.
type DatasetConfig struct {
	Method string
	X, Y   []float64
	Slope  []float64
	Points string // column file; overrides X/Y/Slope when set
	Query  float64
	Degree string // empty means N-1

	// Set by CheckInit.
	Name string
}

// DefaultConfig returns a Config with the default [format] section and no
// datasets. It is the starting point before a file is read into it.
func DefaultConfig() *Config {
	o := numfmt.DefaultOptions()

	return &Config{
		Format: FormatConfig{
			Precision: o.Precision,
			Suppress:  o.Suppress,
			LineWidth: o.LineWidth,
		},
		Dataset: map[string]*DatasetConfig{},
	}
}

// ReferenceConfig returns the four classic jobs: Neville at 3.7, the
// divided-difference coefficients, the Newton approximation at 7.3 and
// the Hermite table.
func ReferenceConfig() *Config {
	cfg := DefaultConfig()
	cfg.Dataset["q1"] = &DatasetConfig{
		Method: MethodNeville,
		X:      []float64{3.6, 3.8, 3.9},
		Y:      []float64{1.675, 1.436, 1.318},
		Query:  3.7,
		Degree: "2",
	}
	cfg.Dataset["q2"] = &DatasetConfig{
		Method: MethodDivDiff,
		X:      []float64{7.2, 7.4, 7.5, 7.6},
		Y:      []float64{23.5492, 25.3913, 26.8224, 27.4589},
	}
	cfg.Dataset["q3"] = &DatasetConfig{
		Method: MethodNewton,
		X:      []float64{7.2, 7.4, 7.5, 7.6},
		Y:      []float64{23.5492, 25.3913, 26.8224, 27.4589},
		Query:  7.3,
	}
	cfg.Dataset["q4"] = &DatasetConfig{
		Method: MethodHermite,
		X:      []float64{3.6, 3.8, 3.9},
		Y:      []float64{1.675, 1.436, 1.318},
		Slope:  []float64{-1.195, -1.188, -1.182},
	}

	return cfg
}

// ReadConfig reads a gcfg file over DefaultConfig and validates it.
func ReadConfig(fname string) (*Config, error) {
	cfg := DefaultConfig()
	if err := gcfg.ReadFileInto(cfg, fname); err != nil {
		return nil, err
	}
	if err := cfg.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	return cfg, nil
}

// ReadConfigString is ReadConfig for in-memory text.
func ReadConfigString(text string) (*Config, error) {
	cfg := DefaultConfig()
	if err := gcfg.ReadStringInto(cfg, text); err != nil {
		return nil, err
	}
	if err := cfg.CheckInit(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CheckInit validates the format section and every dataset.
func (cfg *Config) CheckInit() error {
	if _, err := cfg.Options(); err != nil {
		return err
	}
	if len(cfg.Dataset) == 0 {
		return fmt.Errorf("no [dataset] sections given")
	}
	for name, ds := range cfg.Dataset {
		if ds == nil {
			return fmt.Errorf("dataset '%s' is empty", name)
		}
		if err := ds.CheckInit(name); err != nil {
			return err
		}
	}

	return nil
}

// Options converts the [format] section.
func (cfg *Config) Options() (numfmt.Options, error) {
	o := numfmt.Options{
		Precision: cfg.Format.Precision,
		Suppress:  cfg.Format.Suppress,
		LineWidth: cfg.Format.LineWidth,
	}
	if err := o.Validate(); err != nil {
		return o, fmt.Errorf("[format] precision %d: %w", o.Precision, err)
	}

	return o, nil
}

// Names returns dataset names in run order.
func (cfg *Config) Names() []string {
	names := make([]string, 0, len(cfg.Dataset))
	for name := range cfg.Dataset {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// CheckInit normalizes and validates a dataset. Sample lengths are left to
// the interp package; only what the config itself can get wrong is checked.
func (ds *DatasetConfig) CheckInit(name string) error {
	ds.Name = name
	ds.Method = strings.ToLower(strings.TrimSpace(ds.Method))
	switch ds.Method {
	case MethodNeville, MethodDivDiff, MethodNewton, MethodHermite:
	case "":
		return fmt.Errorf("dataset '%s' needs a 'method'", name)
	default:
		return fmt.Errorf(
			"dataset '%s' has method '%s', but only %s, %s, %s and %s are supported",
			name, ds.Method, MethodNeville, MethodDivDiff, MethodNewton, MethodHermite,
		)
	}

	if ds.Points == "" && len(ds.X) == 0 {
		return fmt.Errorf("dataset '%s' needs either 'x'/'y' values or a 'points' file", name)
	}
	if ds.Degree != "" {
		if ds.Method != MethodNeville {
			return fmt.Errorf("dataset '%s' sets 'degree', which only neville uses", name)
		}
		if _, err := strconv.Atoi(ds.Degree); err != nil {
			return fmt.Errorf("dataset '%s' has non-integer degree '%s'", name, ds.Degree)
		}
	}

	return nil
}

// degree resolves the Neville degree for n points.
func (ds *DatasetConfig) degree(n int) int {
	if ds.Degree == "" {
		return n - 1
	}
	d, _ := strconv.Atoi(ds.Degree) // checked by CheckInit

	return d
}
