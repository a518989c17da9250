// Package nagios provides the plugin status model shared by monitoring
// checks: the four plugin states, their wire names, their exit codes, and
// the ordering used to aggregate per-quantity results into one verdict.
package nagios

// Status represents a monitoring-plugin state.
// The numeric value is the process exit code the monitoring framework
// expects, so the constants must not be reordered.
type Status int

const (
	// StatusOK - all checked quantities are within their thresholds.
	StatusOK Status = iota

	// StatusWarning - at least one warning threshold was breached.
	StatusWarning

	// StatusCritical - at least one critical threshold was breached.
	StatusCritical

	// StatusUnknown - the check could not run (bad arguments, snapshot
	// failure). Not part of the evaluation ladder.
	StatusUnknown
)

// AllStatuses returns all plugin states in order of exit code.
func AllStatuses() []Status {
	return []Status{StatusOK, StatusWarning, StatusCritical, StatusUnknown}
}

// String returns the wire name used in the report line.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	case StatusUnknown:
		return "UNKNOWN"
	}
	return ""
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	return int(s)
}

// IsWorseThan returns true if this status outranks the other.
// OK < WARNING < CRITICAL; equal statuses never outrank each other, which
// is what keeps the first-found reason during aggregation.
func (s Status) IsWorseThan(other Status) bool {
	return s > other
}

// Worst returns the higher-ranked of two statuses.
func Worst(a, b Status) Status {
	if a.IsWorseThan(b) {
		return a
	}
	return b
}
