package cli

import (
	"github.com/pidplot/pidplot/internal/config"
	"github.com/pidplot/pidplot/internal/errors"
	"github.com/pidplot/pidplot/internal/sampler"
	"github.com/spf13/cobra"
)

// ReportOptions holds the fully resolved options for one report run.
type ReportOptions struct {
	PID      int // sampler.AllProcesses when no PID was given
	Interval int
	Count    int
	Output   string
	Title    string
	Binary   string
}

// resolveReportOptions layers flag values over the config file over the
// built-in defaults. A flag only wins when it was actually set on the
// command line, so config values survive the flags' own defaults.
func resolveReportOptions(cmd *cobra.Command) (ReportOptions, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return ReportOptions{}, err
	}

	opts := ReportOptions{
		PID:      sampler.AllProcesses,
		Interval: cfg.Interval,
		Count:    cfg.Count,
		Output:   cfg.Output,
		Title:    cfg.Title,
		Binary:   cfg.Binary,
	}

	flags := cmd.Flags()
	if flags.Changed("pid") {
		if pidFlag < 1 {
			return ReportOptions{}, errors.New(errors.ErrConfig,
				"--pid must be a positive process id",
				"Pass a real PID, or omit --pid to profile all processes.")
		}
		opts.PID = pidFlag
	}
	if flags.Changed("interval") {
		opts.Interval = intervalFlag
	}
	if flags.Changed("count") {
		opts.Count = countFlag
	}
	if flags.Changed("output") {
		opts.Output = outputFlag
	}
	if flags.Changed("title") {
		opts.Title = titleFlag
	}
	if flags.Changed("binary") {
		opts.Binary = binaryFlag
	}

	if err := validateReportOptions(opts); err != nil {
		return ReportOptions{}, err
	}
	return opts, nil
}

// validateReportOptions checks the resolved values regardless of whether
// they came from flags or config.
func validateReportOptions(opts ReportOptions) error {
	if opts.Interval < 1 {
		return errors.New(errors.ErrConfig,
			"Sampling interval must be at least 1 second",
			"Use --interval with a positive number of seconds.")
	}
	if opts.Count < 1 {
		return errors.New(errors.ErrConfig,
			"Sample count must be at least 1",
			"Use --count with a positive number of samples.")
	}
	if opts.Output == "" {
		return errors.New(errors.ErrConfig,
			"Output path cannot be empty",
			"Use --output with a writable file path.")
	}
	return nil
}
