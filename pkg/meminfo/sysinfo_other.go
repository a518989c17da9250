//go:build !linux

package meminfo

import (
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/exploopio/check-mem/pkg/errors"
)

// read gathers the snapshot through gopsutil on platforms without
// sysinfo(2). Counters are byte-denominated, so the native unit is 1.
func read() (Snapshot, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Snapshot{}, errors.E(errors.KindSnapshot, "meminfo.Read",
			"could not gather virtual memory stats", err)
	}

	return Snapshot{
		Total:  vm.Total,
		Free:   vm.Free,
		Shared: vm.Shared,
		Buffer: vm.Buffers,
		Unit:   1,
	}, nil
}
