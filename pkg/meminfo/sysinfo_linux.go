//go:build linux

package meminfo

import (
	"golang.org/x/sys/unix"

	"github.com/exploopio/check-mem/pkg/errors"
)

// read gathers the snapshot from sysinfo(2). Counters are left in the
// kernel's native units; Unit carries the bytes-per-unit scale.
func read() (Snapshot, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return Snapshot{}, errors.E(errors.KindSnapshot, "meminfo.Read",
			"could not gather sysinfo stats", err)
	}

	return Snapshot{
		Total:  uint64(info.Totalram),
		Free:   uint64(info.Freeram),
		Shared: uint64(info.Sharedram),
		Buffer: uint64(info.Bufferram),
		Unit:   info.Unit,
	}, nil
}
