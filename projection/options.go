// SPDX-License-Identifier: MIT
//
// options.go: functional options shared by every projection.
//
// Option constructors panic on meaningless values (programmer error);
// resolve() re-validates so a zero-value Options assembled by hand still
// surfaces ErrBadThreshold instead of silently misbehaving.

package projection

import (
	"fmt"
	"math"
)

// DefaultThreshold is the sparsification cut-off for probabilities and weights.
const DefaultThreshold = 1e-10

// Options configures the projections and All.
type Options struct {
	// Threshold drops candidate arcs whose probability/weight is below it.
	Threshold float64

	// Workers bounds the goroutines used by All; 0 runs every kind at once.
	Workers int

	// OnResult, if set, is called by All from the worker goroutine as soon
	// as a projection finishes. A returned error is reported for that kind.
	OnResult func(Result) error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Threshold = 1e-10, unbounded workers, no hook.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// WithThreshold overrides the sparsification threshold.
// Panics on a negative, NaN or infinite value.
func WithThreshold(t float64) Option {
	if !validThreshold(t) {
		panic(fmt.Sprintf("projection: WithThreshold(%g)", t))
	}
	return func(o *Options) { o.Threshold = t }
}

// WithWorkers bounds the parallelism of All. Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("projection: WithWorkers(%d)", n))
	}
	return func(o *Options) { o.Workers = n }
}

// WithResultHook installs a per-result callback for All. Panics on nil.
func WithResultHook(fn func(Result) error) Option {
	if fn == nil {
		panic("projection: WithResultHook(nil)")
	}
	return func(o *Options) { o.OnResult = fn }
}

func validThreshold(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0) && t >= 0
}

// resolve applies opts over the defaults and validates the result.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !validThreshold(o.Threshold) {
		return o, fmt.Errorf("threshold=%g: %w", o.Threshold, ErrBadThreshold)
	}
	return o, nil
}
