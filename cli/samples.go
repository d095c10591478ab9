// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// Column layout of a points file.
const (
	xCol     = 0
	yCol     = 1
	slopeCol = 2
)

// samples holds the parallel sequences of one dataset.
type samples struct {
	xs, ys, slopes []float64
}

// readPoints loads x, y (and, when withSlopes is set, slope) columns from a
// whitespace-separated text file. Comment lines start with '#'.
func readPoints(fname string, withSlopes bool) (samples, error) {
	colIdxs := []int{xCol, yCol}
	if withSlopes {
		colIdxs = append(colIdxs, slopeCol)
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return samples{}, fmt.Errorf("reading points file %s: %w", fname, err)
	}

	s := samples{xs: cols[0], ys: cols[1]}
	if withSlopes {
		s.slopes = cols[2]
	}

	return s, nil
}

// load resolves the samples of a dataset: the points file wins over inline
// values.
func (ds *DatasetConfig) load() (samples, error) {
	if ds.Points != "" {
		return readPoints(ds.Points, ds.Method == MethodHermite)
	}

	return samples{xs: ds.X, ys: ds.Y, slopes: ds.Slope}, nil
}
