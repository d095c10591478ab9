// SPDX-License-Identifier: MIT
package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinterp/cli"
	"github.com/katalvlaran/lvinterp/numfmt"
)

// TestReadConfigString_Example parses the documented example.
func TestReadConfigString_Example(t *testing.T) {
	cfg, err := cli.ReadConfigString(cli.ExampleConfig)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, cfg.Names())

	ds := cfg.Dataset["q1"]
	assert.Equal(t, cli.MethodNeville, ds.Method)
	assert.Equal(t, "q1", ds.Name)
	assert.Equal(t, []float64{3.6, 3.8, 3.9}, ds.X)
	assert.Equal(t, []float64{1.675, 1.436, 1.318}, ds.Y)
	assert.Equal(t, 3.7, ds.Query)
	assert.Equal(t, "2", ds.Degree)

	o, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, numfmt.DefaultOptions(), o)
}

// TestReadConfigString_Defaults keeps the default [format] when omitted.
func TestReadConfigString_Defaults(t *testing.T) {
	cfg, err := cli.ReadConfigString(`
[dataset "b"]
method = DivDiff
x = 1
x = 2
y = 3
y = 5

[dataset "a"]
method = newton
x = 0
y = 1
query = 4
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cfg.Names(), "datasets run in name order")
	assert.Equal(t, cli.MethodDivDiff, cfg.Dataset["b"].Method, "method is case-insensitive")
	assert.Equal(t, numfmt.DefaultLineWidth, cfg.Format.LineWidth)
}

// TestReadConfigString_Errors covers every validation message.
func TestReadConfigString_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no datasets", "[format]\nprecision = 3\n", "no [dataset] sections"},
		{"missing method", "[dataset \"d\"]\nx = 1\ny = 1\n", "needs a 'method'"},
		{"unknown method", "[dataset \"d\"]\nmethod = spline\nx = 1\ny = 1\n", "only neville, divdiff, newton and hermite"},
		{"no samples", "[dataset \"d\"]\nmethod = newton\n", "'x'/'y' values or a 'points' file"},
		{"degree elsewhere", "[dataset \"d\"]\nmethod = newton\nx = 1\ny = 1\ndegree = 0\n", "only neville uses"},
		{"bad degree", "[dataset \"d\"]\nmethod = neville\nx = 1\ny = 1\ndegree = two\n", "non-integer degree"},
		{"bad precision", "[format]\nprecision = 40\n[dataset \"d\"]\nmethod = newton\nx = 1\ny = 1\n", "precision 40"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cli.ReadConfigString(tc.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	_, err := cli.ReadConfigString("[nosuchsection]\nfoo = 1\n")
	assert.Error(t, err, "gcfg rejects unknown sections")
}

// TestReadConfig_PointsFile loads samples from a column file.
func TestReadConfig_PointsFile(t *testing.T) {
	dir := t.TempDir()
	points := filepath.Join(dir, "hermite.txt")
	require.NoError(t, os.WriteFile(points, []byte(
		"# x y slope\n0 0 0\n1 1 2\n"), 0o644))
	conf := filepath.Join(dir, "run.gcfg")
	require.NoError(t, os.WriteFile(conf, []byte(
		"[dataset \"sq\"]\nmethod = hermite\npoints = "+points+"\n"), 0o644))

	cfg, err := cli.ReadConfig(conf)
	require.NoError(t, err)

	got, err := cli.Evaluate(cfg.Dataset["sq"], numfmt.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "[[0. 0. 0. 0.]\n [0. 0. 0. 0.]\n [1. 1. 1. 1.]\n [1. 1. 2. 1.]]", got)

	_, err = cli.ReadConfig(filepath.Join(dir, "missing.gcfg"))
	assert.Error(t, err)
}
