// check_mem - Nagios-compatible host memory check.
//
// Reads one OS memory snapshot, classifies free/used/shared/buffer memory
// against warning/critical percentage thresholds, prints a single status
// line with perf data on stdout, and exits with the status code the
// monitoring framework expects (0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN).
//
// A threshold pair is only armed when BOTH of its flags are given:
//
//	check_mem --free-warning 10 --free-critical 5
//	check_mem -u 3 --used-warning 90 --used-critical 95 --textfile /var/lib/node_exporter/check_mem.prom
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"github.com/exploopio/check-mem/pkg/check"
	cerrors "github.com/exploopio/check-mem/pkg/errors"
	"github.com/exploopio/check-mem/pkg/logging"
	"github.com/exploopio/check-mem/pkg/meminfo"
	"github.com/exploopio/check-mem/pkg/nagios"
	"github.com/exploopio/check-mem/pkg/perfdata"
)

const (
	appName    = "check_mem"
	appVersion = "1.0.0"
)

// readMemory is swapped out in tests.
var readMemory = meminfo.Read

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	unit := flags.UintP("unit", "u", 2, "unit for performance data (exponent of 1024, e.g. 0 for B, 1 for kB)")
	freeWarning := flags.Float64("free-warning", 10, "warning threshold for free memory (below %)")
	freeCritical := flags.Float64("free-critical", 5, "critical threshold for free memory (below %)")
	usedWarning := flags.Float64("used-warning", 90, "warning threshold for used memory (above %)")
	usedCritical := flags.Float64("used-critical", 95, "critical threshold for used memory (above %)")
	bufferWarning := flags.Float64("buffer-warning", 90, "warning threshold for buffer memory (above %)")
	bufferCritical := flags.Float64("buffer-critical", 95, "critical threshold for buffer memory (above %)")
	sharedWarning := flags.Float64("shared-warning", 90, "warning threshold for shared memory (above %)")
	sharedCritical := flags.Float64("shared-critical", 95, "critical threshold for shared memory (above %)")
	verbose := flags.BoolP("verbose", "v", false, "log diagnostics to stderr")
	textfile := flags.String("textfile", "", "write Prometheus textfile-collector metrics to this path")
	showVersion := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stdout, "usage of %s:\n%s", appName, flags.FlagUsages())
			return nagios.StatusOK.ExitCode()
		}
		fmt.Fprintf(stdout, "error: %v\n", err)
		return nagios.StatusUnknown.ExitCode()
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", appName, appVersion)
		return nagios.StatusOK.ExitCode()
	}

	if int(*unit) > perfdata.MaxUnitExponent {
		fmt.Fprintf(stdout, "error: argument for --unit must be between 0 and %d\n", perfdata.MaxUnitExponent)
		return nagios.StatusUnknown.ExitCode()
	}

	logger := logging.FromVerbose(appName, *verbose)

	opts := []check.Option{
		check.WithUnitExponent(int(*unit)),
		check.WithLogger(logger),
	}

	// A pair only becomes active when both of its flags were explicitly
	// supplied; the numeric defaults alone never arm one.
	if flags.Changed("free-warning") && flags.Changed("free-critical") {
		opts = append(opts, check.WithFreeLimits(*freeWarning, *freeCritical))
	}
	if flags.Changed("used-warning") && flags.Changed("used-critical") {
		opts = append(opts, check.WithUsedLimits(*usedWarning, *usedCritical))
	}
	if flags.Changed("buffer-warning") && flags.Changed("buffer-critical") {
		opts = append(opts, check.WithBufferLimits(*bufferWarning, *bufferCritical))
	}
	if flags.Changed("shared-warning") && flags.Changed("shared-critical") {
		opts = append(opts, check.WithSharedLimits(*sharedWarning, *sharedCritical))
	}

	snap, err := readMemory()
	if err != nil {
		logger.Error("snapshot failed (%s): %v", cerrors.GetKind(err), err)
		fmt.Fprintln(stdout, "UNKNOWN: could not gather memory statistics")
		return nagios.StatusUnknown.ExitCode()
	}

	logger.Info("snapshot: total=%s free=%s shared=%s buffer=%s used=%s",
		humanize.IBytes(snap.Bytes(snap.Total)),
		humanize.IBytes(snap.Bytes(snap.Free)),
		humanize.IBytes(snap.Bytes(snap.Shared)),
		humanize.IBytes(snap.Bytes(snap.Buffer)),
		humanize.IBytes(snap.Bytes(snap.Used())))

	result := check.Run(snap, opts...)
	fmt.Fprintln(stdout, result.Report())

	if *textfile != "" {
		if werr := result.WriteTextfile(*textfile); werr != nil {
			// the report line already went out; the write failure must
			// not change the check verdict
			fmt.Fprintf(stderr, "%s: writing textfile metrics: %v\n", appName, werr)
		}
	}

	return result.ExitCode()
}
