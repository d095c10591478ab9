// SPDX-License-Identifier: MIT

package numfmt

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the maximum number of fractional digits printed.
	DefaultPrecision = 7

	// DefaultSuppress forces fixed-point notation (tiny values print as 0.).
	DefaultSuppress = true

	// DefaultLineWidth is the column at which array rows wrap.
	DefaultLineWidth = 100

	// MaxPrecision bounds Precision to what a float64 can carry.
	MaxPrecision = 17
)

// Options is an explicit print configuration. It is passed to every
// formatter; nothing in this package keeps process-wide print state.
type Options struct {
	Precision int  // fractional digits, 0..MaxPrecision
	Suppress  bool // never switch to scientific notation
	LineWidth int  // wrap rows longer than this; <= 0 disables wrapping
}

// DefaultOptions returns precision 7, suppressed scientific notation and
// a 100-column line width.
func DefaultOptions() Options {
	return Options{
		Precision: DefaultPrecision,
		Suppress:  DefaultSuppress,
		LineWidth: DefaultLineWidth,
	}
}

// Validate reports ErrBadPrecision when Precision is outside [0, MaxPrecision].
func (o Options) Validate() error {
	if o.Precision < 0 || o.Precision > MaxPrecision {
		return ErrBadPrecision
	}

	return nil
}
