// Package perfdata models a measured quantity - an immutable raw reading
// with an optional maximum and optional warning/critical thresholds - and
// renders it in the representations the Nagios plugin protocol consumes:
// raw counts, truncated percentages, human-scaled byte units, and the
// semicolon-delimited perf-data block.
package perfdata

import (
	"fmt"
	"strings"

	"github.com/exploopio/check-mem/pkg/nagios"
)

// Kind selects which of a Value's numbers an accessor returns.
type Kind int

const (
	// Current is the stored raw measurement.
	Current Kind = iota

	// Maximum is the configured maximum (the percentage denominator).
	Maximum

	// WarningThreshold is the warning limit as an absolute value.
	WarningThreshold

	// CriticalThreshold is the critical limit as an absolute value.
	CriticalThreshold
)

// Representation selects how a number is scaled for output.
type Representation int

const (
	// Raw leaves the number in native units.
	Raw Representation = iota

	// Percentage scales against the maximum, truncated to 2 decimals.
	Percentage

	// Human scales into a display unit, truncated to 3 decimals.
	Human
)

// Direction tells Evaluate which side of a threshold is unhealthy.
type Direction int

const (
	// BelowIsBad - the quantity breaches when it drops under the
	// threshold (free memory).
	BelowIsBad Direction = iota

	// AboveIsBad - the quantity breaches when it rises over the
	// threshold (used, shared, buffer memory).
	AboveIsBad
)

// UnitLabels maps power-of-1024 exponents to perf-data unit labels.
var UnitLabels = [...]string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}

// MaxUnitExponent is the largest valid power-of-1024 exponent.
const MaxUnitExponent = len(UnitLabels) - 1

// Limits is a warning/critical threshold pair, expressed as percentages of
// the Value's maximum. A limit of exactly 0 is configured but can never
// fire; the threshold checks guard on > 0, and downstream graphing relies
// on that behavior.
type Limits struct {
	Warning  float64
	Critical float64
}

// Value is one measured quantity. It is configured once right after
// construction (maximum, then limits) and never mutated afterwards.
//
// Percentage and threshold operations require a maximum; calling them on a
// Value without one is a programming error, not a runtime condition.
type Value struct {
	value  uint64
	max    uint64
	hasMax bool
	limits *Limits
}

// New creates a Value holding one raw measurement.
func New(value uint64) *Value {
	return &Value{value: value}
}

// SetMaximum configures the percentage denominator.
func (v *Value) SetMaximum(max uint64) {
	v.max = max
	v.hasMax = true
}

// SetLimits configures the warning/critical threshold pair.
func (v *Value) SetLimits(warning, critical float64) {
	v.limits = &Limits{Warning: warning, Critical: critical}
}

// HasMaximum reports whether a maximum is configured.
func (v *Value) HasMaximum() bool {
	return v.hasMax
}

// HasLimits reports whether a threshold pair is configured.
func (v *Value) HasLimits() bool {
	return v.limits != nil
}

// Raw returns the unscaled number for the given kind: the measurement, the
// maximum, or a threshold converted from percentage to absolute units.
func (v *Value) Raw(kind Kind) float64 {
	switch kind {
	case Current:
		return float64(v.value)
	case Maximum:
		v.requireMaximum()
		return float64(v.max)
	case WarningThreshold:
		v.requireMaximum()
		v.requireLimits()
		return v.limits.Warning / 100 * float64(v.max)
	case CriticalThreshold:
		v.requireMaximum()
		v.requireLimits()
		return v.limits.Critical / 100 * float64(v.max)
	}
	panic(fmt.Sprintf("perfdata: unknown kind %d", kind))
}

// Scaled returns the number for the given kind in the given representation.
// Percentage truncates to 2 decimal digits and Human to 3; neither rounds.
// unitsPerDisplayUnit is how many native units make up one display unit and
// only matters for the Human representation.
func (v *Value) Scaled(kind Kind, repr Representation, unitsPerDisplayUnit uint64) float64 {
	raw := v.Raw(kind)
	switch repr {
	case Raw:
		return raw
	case Percentage:
		v.requireMaximum()
		return float64(uint64(10000*raw/float64(v.max))) / 100
	case Human:
		return float64(uint64(1000*raw/float64(unitsPerDisplayUnit))) / 1000
	}
	panic(fmt.Sprintf("perfdata: unknown representation %d", repr))
}

// Percent returns the current measurement as a percentage of the maximum.
func (v *Value) Percent() float64 {
	return v.Scaled(Current, Percentage, 1)
}

// Evaluate compares the current percentage against the configured limits in
// the given direction. Critical is checked first and short-circuits. The
// returned float is the threshold that was breached, 0 when the result is
// OK. A Value without limits always evaluates OK.
func (v *Value) Evaluate(direction Direction) (nagios.Status, float64) {
	if v.limits == nil {
		return nagios.StatusOK, 0
	}
	current := v.Percent()
	if v.limits.Critical > 0 && breached(direction, current, v.limits.Critical) {
		return nagios.StatusCritical, v.limits.Critical
	}
	if v.limits.Warning > 0 && breached(direction, current, v.limits.Warning) {
		return nagios.StatusWarning, v.limits.Warning
	}
	return nagios.StatusOK, 0
}

func breached(direction Direction, current, threshold float64) bool {
	if direction == BelowIsBad {
		return current < threshold
	}
	return current > threshold
}

// PerfBlock renders the quantity as a value;warn;crit;min;max perf-data
// fragment. The current value carries a suffix - "%" for the Percentage
// representation, the unit label for Human. The warn/crit fields read U;U
// unless both limits are configured above zero. The minimum is always the
// literal 0. Numbers are fixed-point with 6 decimals for compatibility with
// existing graph consumers.
func (v *Value) PerfBlock(repr Representation, unitsPerDisplayUnit uint64, unitLabel string) string {
	suffix := unitLabel
	if repr == Percentage {
		suffix = "%"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%f%s;", v.Scaled(Current, repr, unitsPerDisplayUnit), suffix)

	if v.limits != nil && v.limits.Warning > 0 && v.limits.Critical > 0 {
		fmt.Fprintf(&b, "%f;%f;",
			v.Scaled(WarningThreshold, repr, unitsPerDisplayUnit),
			v.Scaled(CriticalThreshold, repr, unitsPerDisplayUnit))
	} else {
		b.WriteString("U;U;")
	}

	fmt.Fprintf(&b, "0;%f", v.Scaled(Maximum, repr, unitsPerDisplayUnit))
	return b.String()
}

func (v *Value) requireMaximum() {
	if !v.hasMax {
		panic("perfdata: operation requires a maximum")
	}
}

func (v *Value) requireLimits() {
	if v.limits == nil {
		panic("perfdata: operation requires configured limits")
	}
}
