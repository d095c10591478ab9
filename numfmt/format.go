// SPDX-License-Identifier: MIT

// Package numfmt renders scalars, lists and tables of float64 the way
// Python and numpy print them, under explicit Options.
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvinterp/matrix"
)

var (
	// ErrBadPrecision indicates Options.Precision outside [0, MaxPrecision].
	ErrBadPrecision = errors.New("numfmt: precision out of range")

	// ErrNilMatrix indicates a nil matrix handed to Matrix.
	ErrNilMatrix = errors.New("numfmt: nil matrix")
)

// ---------- Formatting literals ----------

const (
	_open     = "["
	_close    = "]"
	_listSep  = ", "
	_arraySep = " "
)

// Repr renders v as its shortest round-trip decimal: fixed notation with a
// trailing ".0" for integral values when the decimal exponent is in
// [-4, 16), scientific ("1e-05", "1.5e+16") otherwise.
func Repr(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// List renders vs as "[a, b, c]" with Repr for every element.
func List(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Repr(v)
	}

	return _open + strings.Join(parts, _listSep) + _close
}

// Array renders a 1-D array with aligned decimal points, e.g. "[ 1.5  -2.25]".
// Errors: ErrBadPrecision.
func (o Options) Array(vs []float64) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	tokens := o.tokens([][]float64{vs})

	return o.layout(tokens, 1), nil
}

// Matrix renders a 2-D array row by row with one shared column layout:
// every cell is padded so that decimal points line up across the whole
// matrix, rows open with "[[" / " [" and wrap at LineWidth.
// Errors: ErrBadPrecision, ErrNilMatrix.
// Complexity: O(r*c).
func (o Options) Matrix(m matrix.Matrix) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	if matrix.ValidateNotNil(m) != nil {
		return "", ErrNilMatrix
	}
	var rows [][]float64
	if d, ok := m.(*matrix.Dense); ok {
		rows = d.ToRows()
	} else {
		rows = make([][]float64, m.Rows())
		for i := range rows {
			rows[i] = make([]float64, m.Cols())
			for j := range rows[i] {
				rows[i][j], _ = m.At(i, j) // in range by construction
			}
		}
	}

	return o.layout(o.tokens(rows), 2), nil
}

// useScientific mirrors the fixed/scientific switch of array printers:
// huge magnitudes, tiny non-zero magnitudes or a wide dynamic range.
func (o Options) useScientific(rows [][]float64) bool {
	if o.Suppress {
		return false
	}
	maxAbs, minAbs := 0.0, math.Inf(1)
	for _, row := range rows {
		for _, v := range row {
			a := math.Abs(v)
			if math.IsNaN(a) || math.IsInf(a, 0) || a == 0 {
				continue
			}
			maxAbs = math.Max(maxAbs, a)
			minAbs = math.Min(minAbs, a)
		}
	}
	if maxAbs == 0 {
		return false
	}

	return maxAbs >= 1e8 || minAbs < 1e-4 || maxAbs/minAbs > 1e3
}

// tokens formats every cell and pads them to a common layout.
func (o Options) tokens(rows [][]float64) [][]string {
	sci := o.useScientific(rows)
	type cell struct {
		left, right string // split at the decimal point
		special     string // nan/inf, right-aligned over the whole width
	}
	cells := make([][]cell, len(rows))
	padLeft, padRight, specialLen := 0, 0, 0
	for i, row := range rows {
		cells[i] = make([]cell, len(row))
		for j, v := range row {
			var c cell
			if math.IsNaN(v) || math.IsInf(v, 0) {
				c.special = Repr(v)
				specialLen = max(specialLen, len(c.special))
			} else {
				s := o.fixed(v)
				if sci {
					s = o.scientific(v)
				}
				dot := strings.IndexByte(s, '.')
				c.left, c.right = s[:dot], s[dot:]
				padLeft = max(padLeft, len(c.left))
				padRight = max(padRight, len(c.right))
			}
			cells[i][j] = c
		}
	}
	padLeft = max(padLeft, specialLen-padRight)

	out := make([][]string, len(cells))
	for i, row := range cells {
		out[i] = make([]string, len(row))
		for j, c := range row {
			if c.special != "" {
				out[i][j] = strings.Repeat(" ", padLeft+padRight-len(c.special)) + c.special
				continue
			}
			out[i][j] = strings.Repeat(" ", padLeft-len(c.left)) + c.left +
				c.right + strings.Repeat(" ", padRight-len(c.right))
		}
	}

	return out
}

// fixed renders v with at most Precision fractional digits, trailing zeros
// trimmed but the decimal point kept ("3.", "-0.0833333").
func (o Options) fixed(v float64) string {
	s := strconv.FormatFloat(v, 'f', o.Precision, 64)
	if !strings.ContainsRune(s, '.') {
		return s + "."
	}

	return strings.TrimRight(s, "0")
}

// scientific renders v as "d.ddde±XX" with trailing mantissa zeros trimmed.
func (o Options) scientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', o.Precision, 64)
	e := strings.IndexByte(s, 'e')
	mant := s[:e]
	if !strings.ContainsRune(mant, '.') {
		mant += "."
	} else {
		mant = strings.TrimRight(mant, "0")
	}

	return mant + s[e:]
}

// layout joins padded tokens into a bracketed block of the given depth
// (1 = vector, 2 = matrix), wrapping a row once an element would end past
// LineWidth-depth.
func (o Options) layout(tokens [][]string, depth int) string {
	var b strings.Builder
	indent := strings.Repeat(" ", depth)
	for i, row := range tokens {
		prefix := _open
		if depth == 2 {
			if i == 0 {
				prefix = _open + _open
			} else {
				prefix = " " + _open
			}
		}
		suffix := _close
		if depth == 2 && i == len(tokens)-1 {
			suffix = _close + _close
		}

		line := prefix
		for j, tok := range row {
			sep := _arraySep
			if j == 0 {
				sep = ""
			}
			// every element keeps one column free per bracket level
			if o.LineWidth > 0 && j > 0 && len(line)+len(sep)+len(tok) > o.LineWidth-depth {
				b.WriteString(strings.TrimRight(line, " "))
				b.WriteString("\n")
				line, sep = indent, ""
			}
			line += sep + tok
		}
		b.WriteString(line)
		b.WriteString(suffix)
		if i+1 < len(tokens) {
			b.WriteString("\n")
		}
	}
	if len(tokens) == 0 {
		b.WriteString(strings.Repeat(_open, depth) + strings.Repeat(_close, depth))
	}

	return b.String()
}

// Scalar renders a single value with the fixed/scientific rules of Array.
// Errors: ErrBadPrecision.
func (o Options) Scalar(v float64) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Repr(v), nil
	}
	if o.useScientific([][]float64{{v}}) {
		return o.scientific(v), nil
	}

	return o.fixed(v), nil
}

// String implements fmt.Stringer for diagnostics.
func (o Options) String() string {
	return fmt.Sprintf("precision=%d suppress=%t linewidth=%d", o.Precision, o.Suppress, o.LineWidth)
}
