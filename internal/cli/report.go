package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pidplot/pidplot/internal/errors"
	"github.com/pidplot/pidplot/internal/logger"
	"github.com/pidplot/pidplot/internal/pidstat"
	"github.com/pidplot/pidplot/internal/report"
	"github.com/pidplot/pidplot/internal/sampler"
	"github.com/pidplot/pidplot/internal/ui"
)

// sampleFunc runs the sampler; injectable so tests don't need pidstat installed.
type sampleFunc func(ctx context.Context, opts sampler.Options, log logger.Logger) (string, error)

// Report runs the full workflow: sample, parse, aggregate, render, write.
func Report(ctx context.Context, opts ReportOptions) error {
	return runReport(ctx, opts, sampler.Run, os.Stdout)
}

func runReport(ctx context.Context, opts ReportOptions, sample sampleFunc, out io.Writer) error {
	log := logger.Default()

	samplerOpts := sampler.Options{
		Binary:   opts.Binary,
		PID:      opts.PID,
		Interval: opts.Interval,
		Count:    opts.Count,
	}

	raw, err := sample(ctx, samplerOpts, log)
	if err != nil {
		return err
	}

	records := pidstat.Parse(raw, log)
	if len(records) == 0 {
		return errors.New(errors.ErrParse,
			"No pidstat rows parsed",
			"Check the PID exists and that pidstat produced data lines ('pidstat -durh 1 1').")
	}
	log.Debug("parsed %d pidstat records", len(records))

	series, err := pidstat.Aggregate(records)
	if err != nil {
		return err
	}

	html, err := report.Render(records, series, raw, report.Params{
		Title:    opts.Title,
		Target:   samplerOpts.Target(),
		Interval: opts.Interval,
		Count:    opts.Count,
	})
	if err != nil {
		return err
	}

	path, err := report.WriteFile(opts.Output, html)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.Success("Report written to "+path))
	return nil
}
