// Package sampler builds and runs the pidstat invocation that collects
// per-process CPU, disk, memory, and thread statistics.
package sampler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pidplot/pidplot/internal/errors"
	"github.com/pidplot/pidplot/internal/exec"
	"github.com/pidplot/pidplot/internal/logger"
)

// DefaultBinary is the pidstat executable resolved via PATH when the config
// doesn't override it.
const DefaultBinary = "pidstat"

// AllProcesses selects every process instead of a single PID.
const AllProcesses = -1

// Options describes one sampling run.
type Options struct {
	// Binary is the pidstat executable. Empty means DefaultBinary.
	Binary string

	// PID is the process to sample, or AllProcesses.
	PID int

	// Interval is the sampling interval in seconds.
	Interval int

	// Count is the number of samples to collect.
	Count int
}

// Target returns a human-readable description of what is being sampled,
// used in the report header.
func (o Options) Target() string {
	if o.PID == AllProcesses {
		return "All PIDs"
	}
	return fmt.Sprintf("PID %d", o.PID)
}

// BuildArgs returns the pidstat argument list for the run:
// -durh requests disk, user, resource, and per-thread horizontal stats;
// -p selects ALL or a specific PID; interval and count are positional.
func BuildArgs(opts Options) []string {
	pidArg := "ALL"
	if opts.PID != AllProcesses {
		pidArg = strconv.Itoa(opts.PID)
	}
	return []string{
		"-durh",
		"-p", pidArg,
		strconv.Itoa(opts.Interval),
		strconv.Itoa(opts.Count),
	}
}

// Run executes pidstat and returns its stdout. A non-zero exit is fatal and
// surfaces the command's stderr in the error. The call blocks for roughly
// interval × count seconds; cancellation is the caller's via ctx.
func Run(ctx context.Context, opts Options, log logger.Logger) (string, error) {
	if log == nil {
		log = logger.Noop()
	}
	binary := opts.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	args := BuildArgs(opts)
	log.Debug("running %s %s", binary, strings.Join(args, " "))

	result, err := exec.Run(ctx, binary, args...)
	if err != nil {
		return "", err
	}

	if result.ExitCode != 0 {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" {
			detail = strings.TrimSpace(result.Stdout)
		}
		return "", errors.New(errors.ErrExec,
			fmt.Sprintf("%s exited with status %d", binary, result.ExitCode),
			suggestion(opts, detail))
	}

	return result.Stdout, nil
}

func suggestion(opts Options, detail string) string {
	var b strings.Builder
	if detail != "" {
		b.WriteString(detail)
		b.WriteString("\n\n")
	}
	if opts.PID != AllProcesses {
		b.WriteString(fmt.Sprintf("Check that PID %d exists (pidstat exits non-zero for unknown PIDs).", opts.PID))
	} else {
		b.WriteString("Check that pidstat (sysstat package) is installed and working: pidstat 1 1")
	}
	return b.String()
}
