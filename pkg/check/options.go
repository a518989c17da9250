package check

import "github.com/exploopio/check-mem/pkg/logging"

// ThresholdPair is an explicitly supplied warning/critical percentage pair.
// Pairs are armed as a unit: a quantity either has both limits or neither.
type ThresholdPair struct {
	Warning  float64
	Critical float64
}

// Options holds the validated configuration for one check run.
type Options struct {
	// UnitExponent selects the display unit as a power of 1024
	// (0 = B, 1 = kB, 2 = MB, ...). Must be a valid perfdata exponent;
	// the CLI validates before constructing Options.
	UnitExponent int

	// Per-quantity threshold pairs. nil means the pair was not supplied
	// and the quantity is reported but never alerts.
	Free   *ThresholdPair
	Used   *ThresholdPair
	Buffer *ThresholdPair
	Shared *ThresholdPair

	Logger logging.Logger
}

// Option is a function that configures the check.
type Option func(*Options)

// DefaultOptions returns the default check configuration: megabyte display
// units, no armed thresholds, silent logger.
func DefaultOptions() *Options {
	return &Options{
		UnitExponent: 2,
		Logger:       &logging.NopLogger{},
	}
}

// ApplyOptions applies options to config.
func ApplyOptions(cfg *Options, opts ...Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithUnitExponent sets the power-of-1024 display unit exponent.
func WithUnitExponent(exp int) Option {
	return func(o *Options) {
		o.UnitExponent = exp
	}
}

// WithFreeLimits arms the free-memory threshold pair (breaches below).
func WithFreeLimits(warning, critical float64) Option {
	return func(o *Options) {
		o.Free = &ThresholdPair{Warning: warning, Critical: critical}
	}
}

// WithUsedLimits arms the used-memory threshold pair (breaches above).
func WithUsedLimits(warning, critical float64) Option {
	return func(o *Options) {
		o.Used = &ThresholdPair{Warning: warning, Critical: critical}
	}
}

// WithBufferLimits arms the buffer-memory threshold pair (breaches above).
func WithBufferLimits(warning, critical float64) Option {
	return func(o *Options) {
		o.Buffer = &ThresholdPair{Warning: warning, Critical: critical}
	}
}

// WithSharedLimits arms the shared-memory threshold pair (breaches above).
func WithSharedLimits(warning, critical float64) Option {
	return func(o *Options) {
		o.Shared = &ThresholdPair{Warning: warning, Critical: critical}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = &logging.NopLogger{}
		}
		o.Logger = l
	}
}
