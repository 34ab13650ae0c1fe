// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the blocked multiply kernel and the
// numerical routines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters on top of defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Panel sizes are a performance choice only; MulAdd produces the same values for
//     every panel configuration (bit-exact for integers, tolerance-bounded for floats).
//   - Workers > 1 splits the output columns into disjoint strips; the default stays
//     single-threaded.
package matrix

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

// Blocking policy.
const (
	// DefaultPanelHeight is the number of output rows packed per panel (BH).
	// 96×96 float64 = 72KB, sized for a typical L2 slice.
	DefaultPanelHeight = 96

	// DefaultPanelWidth is the inner-dimension extent of a packed panel (BW).
	DefaultPanelWidth = 96

	// DefaultWorkers keeps evaluation on the calling goroutine.
	DefaultWorkers = 1
)

// Numeric policy.
const (
	// DefaultPivotTolerance is the magnitude below which a Gauss–Jordan pivot is
	// treated as zero and a row swap is attempted.
	DefaultPivotTolerance = 1e-12
)

// Register tile of the micro-kernel (H×W). Fixed: the accumulators live in a
// [tileH][tileW] array.
const (
	tileH = 4
	tileW = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPanelInvalid     = "matrix: WithPanel: panel height and width must be > 0"
	panicWorkersInvalid   = "matrix: WithWorkers: workers must be >= 0"
	panicToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	panelH   int     // BH: output rows per packed panel
	panelW   int     // BW: inner-dimension extent per packed panel
	workers  int     // strips evaluated concurrently (1 = serial)
	pivotTol float64 // Gauss–Jordan zero-pivot threshold
}

// PanelHeight returns the effective BH.
func (o Options) PanelHeight() int { return o.panelH }

// PanelWidth returns the effective BW.
func (o Options) PanelWidth() int { return o.panelW }

// Workers returns the effective worker count (always ≥ 1).
func (o Options) Workers() int { return o.workers }

// PivotTolerance returns the effective pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ---------- Constructors (WithX) ----------

// WithPanel sets the packed panel extents BH×BW of the blocked multiply.
// Implementation:
//   - Stage 1: validate h > 0 and w > 0.
//   - Stage 2: return a setter writing both extents.
//
// Behavior highlights:
//   - Panels larger than the operands are clamped per call; tiny panels (e.g. 4×4)
//     are legal and useful to exercise the edge handling in tests.
//
// Errors:
//   - Panics with a stable message when either extent is non-positive.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPanel(h, w int) Option {
	if h <= 0 || w <= 0 {
		panic(panicPanelInvalid)
	}

	return func(o *Options) {
		o.panelH = h
		o.panelW = w
	}
}

// WithWorkers sets how many goroutines share the output column strips.
// n == 0 selects runtime.GOMAXPROCS(0); n == 1 is the serial default.
// Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		if n == 0 {
			o.workers = runtime.GOMAXPROCS(0)
			return
		}
		o.workers = n
	}
}

// WithPivotTolerance overrides the Gauss–Jordan zero-pivot threshold.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol == 0 only rejects exact zeros; larger values reject ill-conditioned pivots
//     earlier.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Mostly useful to inspect the effective configuration in tests and tools.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		panelH:   DefaultPanelHeight,
		panelW:   DefaultPanelWidth,
		workers:  DefaultWorkers,
		pivotTol: DefaultPivotTolerance,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
