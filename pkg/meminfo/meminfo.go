// Package meminfo reads a one-shot snapshot of host memory counters.
// The snapshot is taken once at process start and everything downstream
// treats it as immutable.
package meminfo

// Snapshot holds raw memory counters in native units, plus the size in
// bytes of one native unit. On Linux the counters come straight out of
// sysinfo(2); elsewhere they are byte-denominated with Unit = 1.
type Snapshot struct {
	Total  uint64
	Free   uint64
	Shared uint64
	Buffer uint64

	// Unit is the scale factor converting native units to bytes.
	Unit uint32
}

// Used returns the derived used-memory counter in native units:
// everything that is neither free, shared, nor buffer.
func (s Snapshot) Used() uint64 {
	return s.Total - s.Free - s.Shared - s.Buffer
}

// Bytes converts a native-unit counter from this snapshot to bytes.
func (s Snapshot) Bytes(v uint64) uint64 {
	return v * uint64(s.Unit)
}

// Read takes one snapshot from the running OS.
func Read() (Snapshot, error) {
	return read()
}
