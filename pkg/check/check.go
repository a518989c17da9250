// Package check runs the memory health check: it turns one OS snapshot
// into four measured quantities, folds them against their thresholds in a
// fixed order, and renders the single-line report the monitoring framework
// parses.
package check

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/exploopio/check-mem/pkg/meminfo"
	"github.com/exploopio/check-mem/pkg/nagios"
	"github.com/exploopio/check-mem/pkg/perfdata"
)

// namedValue pairs a perf-data label with its measured quantity.
type namedValue struct {
	name  string
	value *perfdata.Value
}

// Result is the outcome of one evaluation pass over a snapshot.
type Result struct {
	// Status is the worst status any quantity evaluated to.
	Status nagios.Status

	// Reason describes the first breach found at the worst status, e.g.
	// "9.9% < 10%". Empty when Status is OK.
	Reason string

	used, free, shared, buffer *perfdata.Value
	unitsPerDisplayUnit        uint64
	unitLabel                  string
	bytesPerNativeUnit         uint32
}

// Run evaluates one snapshot against the configured thresholds.
//
// Quantities are checked in fixed order - free, shared, buffer, used - with
// free alerting when it drops below its limits and the rest when they rise
// above. A strictly worse status replaces the running worst and its reason;
// ties keep the first reason found.
func Run(snap meminfo.Snapshot, opts ...Option) *Result {
	cfg := DefaultOptions()
	ApplyOptions(cfg, opts...)
	log := cfg.Logger

	newValue := func(raw uint64, pair *ThresholdPair) *perfdata.Value {
		v := perfdata.New(raw)
		v.SetMaximum(snap.Total)
		if pair != nil {
			v.SetLimits(pair.Warning, pair.Critical)
			log.Debug("limits armed: warning=%v%% critical=%v%%", pair.Warning, pair.Critical)
		}
		return v
	}

	r := &Result{
		Status:              nagios.StatusOK,
		free:                newValue(snap.Free, cfg.Free),
		shared:              newValue(snap.Shared, cfg.Shared),
		buffer:              newValue(snap.Buffer, cfg.Buffer),
		used:                newValue(snap.Used(), cfg.Used),
		unitsPerDisplayUnit: unitsPerDisplayUnit(cfg.UnitExponent, snap.Unit),
		unitLabel:           perfdata.UnitLabels[cfg.UnitExponent],
		bytesPerNativeUnit:  snap.Unit,
	}

	evaluations := []struct {
		namedValue
		direction perfdata.Direction
	}{
		{namedValue{"free", r.free}, perfdata.BelowIsBad},
		{namedValue{"shared", r.shared}, perfdata.AboveIsBad},
		{namedValue{"buffer", r.buffer}, perfdata.AboveIsBad},
		{namedValue{"used", r.used}, perfdata.AboveIsBad},
	}

	for _, e := range evaluations {
		status, threshold := e.value.Evaluate(e.direction)
		log.Debug("%s: %v%% -> %s", e.name, e.value.Percent(), status)

		if status.IsWorseThan(r.Status) {
			r.Status = status
			r.Reason = reason(e.value.Percent(), e.direction, threshold)
		}
	}

	return r
}

// ExitCode returns the process exit code for this result.
func (r *Result) ExitCode() int {
	return r.Status.ExitCode()
}

// Report renders the status line: the status name and breach reason,
// followed by the four quantities as human-unit perf blocks and again as
// percentage perf blocks.
func (r *Result) Report() string {
	var b strings.Builder
	b.WriteString(r.Status.String())
	b.WriteString(": ")
	b.WriteString(r.Reason)

	for _, repr := range []perfdata.Representation{perfdata.Human, perfdata.Percentage} {
		for _, q := range r.quantities() {
			fmt.Fprintf(&b, "|'%s'=%s",
				q.name, q.value.PerfBlock(repr, r.unitsPerDisplayUnit, r.unitLabel))
		}
	}

	return b.String()
}

// quantities returns the measured quantities in perf-data output order.
func (r *Result) quantities() []namedValue {
	return []namedValue{
		{"used", r.used},
		{"free", r.free},
		{"shared", r.shared},
		{"buffer", r.buffer},
	}
}

// reason renders a breach as "<current>% <cmp> <threshold>%".
func reason(current float64, direction perfdata.Direction, threshold float64) string {
	cmp := " > "
	if direction == perfdata.BelowIsBad {
		cmp = " < "
	}
	return formatShort(current) + "%" + cmp + formatShort(threshold) + "%"
}

// formatShort renders a float the way existing report consumers expect:
// up to six significant digits, no trailing zeros.
func formatShort(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// unitsPerDisplayUnit returns how many native snapshot units make up one
// display unit. The integer division is deliberate; it is how the perf
// data has always been scaled.
func unitsPerDisplayUnit(exp int, nativeUnit uint32) uint64 {
	bytes := uint64(1)
	for i := 0; i < exp; i++ {
		bytes *= 1024
	}
	return bytes / uint64(nativeUnit)
}
