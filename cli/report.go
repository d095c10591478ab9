// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"k8s.io/klog"

	"github.com/katalvlaran/lvinterp/interp"
	"github.com/katalvlaran/lvinterp/numfmt"
)

// Report evaluates every dataset of cfg in name order and writes each
// result followed by a blank line.
func Report(out io.Writer, cfg *Config, o numfmt.Options) error {
	for _, name := range cfg.Names() {
		ds := cfg.Dataset[name]
		klog.V(2).Infof("dataset %s: method=%s", name, ds.Method)

		text, err := Evaluate(ds, o)
		if err != nil {
			return fmt.Errorf("dataset '%s': %w", name, err)
		}
		if _, err = fmt.Fprint(out, text, "\n\n"); err != nil {
			return err
		}
	}

	return nil
}

// Evaluate runs one dataset and renders its result:
//   - neville: the interpolated value,
//   - divdiff: the coefficients c1..c_{N-1} as a list ([c0] for one point),
//   - newton:  the approximation at Query,
//   - hermite: the full table.
func Evaluate(ds *DatasetConfig, o numfmt.Options) (string, error) {
	s, err := ds.load()
	if err != nil {
		return "", err
	}
	klog.V(3).Infof("dataset %s: %d samples", ds.Name, len(s.xs))

	switch ds.Method {
	case MethodNeville:
		v, err := interp.Neville(s.xs, s.ys, ds.Query, ds.degree(len(s.xs)))
		if err != nil {
			return "", err
		}
		return numfmt.Repr(v), nil

	case MethodDivDiff:
		t, err := interp.DividedDifferenceTable(s.xs, s.ys)
		if err != nil {
			return "", err
		}
		logResiduals(ds.Name, s)
		c := t.Coefficients()
		if len(c) > 1 {
			c = c[1:] // c0 is the first sample; a lone point prints it anyway
		}
		return numfmt.List(c), nil

	case MethodNewton:
		t, err := interp.DividedDifferenceTable(s.xs, s.ys)
		if err != nil {
			return "", err
		}
		v, err := interp.EvaluateNewton(t, s.xs, ds.Query)
		if err != nil {
			return "", err
		}
		logResiduals(ds.Name, s)
		return numfmt.Repr(v), nil

	case MethodHermite:
		t, err := interp.HermiteTable(s.xs, s.ys, s.slopes)
		if err != nil {
			return "", err
		}
		if klog.V(3) {
			if p, err := interp.NewHermite(s.xs, s.ys, s.slopes); err == nil {
				klog.Infof("dataset %s: hermite coefficients %s", ds.Name, numfmt.List(p.Coefficients()))
			}
		}
		return o.Matrix(t.Matrix())
	}

	return "", fmt.Errorf("unknown method '%s'", ds.Method)
}

// logResiduals reports how well the full-precision Newton polynomial
// reproduces the samples. Diagnostics only; failures are logged, not returned.
func logResiduals(name string, s samples) {
	if !klog.V(3) {
		return
	}
	p, err := interp.NewNewton(s.xs, s.ys)
	if err != nil {
		klog.Warningf("dataset %s: residuals: %v", name, err)
		return
	}
	sum, err := interp.NodeResiduals(p, s.xs, s.ys)
	if err != nil {
		klog.Warningf("dataset %s: residuals: %v", name, err)
		return
	}
	klog.Infof("dataset %s: node residuals max=%g mean=%g stddev=%g", name, sum.MaxAbs, sum.MeanAbs, sum.StdDev)
}
