package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exploopio/check-mem/pkg/meminfo"
)

func TestResult_WriteTextfile(t *testing.T) {
	snap := meminfo.Snapshot{Total: 1000, Free: 100, Shared: 0, Buffer: 0, Unit: 1024}
	r := Run(snap)

	path := filepath.Join(t.TempDir(), "check_mem.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}
	got := string(data)

	for _, want := range []string{
		"# TYPE check_mem_bytes gauge",
		"# TYPE check_mem_ratio gauge",
		"# TYPE check_mem_status gauge",
		`check_mem_bytes{metric="free"} 102400`,
		`check_mem_bytes{metric="used"} 921600`,
		`check_mem_ratio{metric="free"} 0.1`,
		`check_mem_ratio{metric="used"} 0.9`,
		"check_mem_status 0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("textfile missing %q; got:\n%s", want, got)
		}
	}
}

func TestResult_WriteTextfile_StatusReflectsBreach(t *testing.T) {
	snap := meminfo.Snapshot{Total: 1000, Free: 10, Shared: 0, Buffer: 0, Unit: 1}
	r := Run(snap, WithFreeLimits(10, 5))

	path := filepath.Join(t.TempDir(), "check_mem.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}
	if !strings.Contains(string(data), "check_mem_status 2") {
		t.Errorf("textfile should carry the critical status; got:\n%s", string(data))
	}
}

func TestResult_WriteTextfile_BadPath(t *testing.T) {
	snap := meminfo.Snapshot{Total: 1000, Free: 100, Unit: 1}
	r := Run(snap)

	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "check_mem.prom")); err == nil {
		t.Error("WriteTextfile() to a missing directory should fail")
	}
}
