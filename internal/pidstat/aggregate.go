package pidstat

import (
	"fmt"
	"strconv"

	"github.com/pidplot/pidplot/internal/errors"
)

// Series holds the per-timestamp aggregated chart data. The three slices are
// parallel: Labels[i] is the timestamp whose summed values are CPU[i] and
// Mem[i]. Labels preserve first-seen order from the input records.
type Series struct {
	Labels []string  `json:"labels"`
	CPU    []float64 `json:"cpu"`
	Mem    []float64 `json:"mem"`
}

// Aggregate sums cpu_pct and mem_pct across all records sharing a timestamp.
// With pidstat -p ALL many PIDs share each timestamp, so the sum is the
// system-wide usage at that instant. Timestamp order is first-seen input
// order, never sorted.
func Aggregate(records []Record) (*Series, error) {
	type totals struct {
		cpu float64
		mem float64
	}

	sums := make(map[string]*totals)
	var order []string

	for _, record := range records {
		timeKey := record.Time()

		cpu, err := strconv.ParseFloat(record["cpu_pct"], 64)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrParse,
				fmt.Sprintf("Unexpected CPU%% value %q at %s", record["cpu_pct"], timeKey),
				"pidstat's column layout may differ from the expected -durh format. Check 'pidstat -V'.")
		}
		mem, err := strconv.ParseFloat(record["mem_pct"], 64)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrParse,
				fmt.Sprintf("Unexpected memory%% value %q at %s", record["mem_pct"], timeKey),
				"pidstat's column layout may differ from the expected -durh format. Check 'pidstat -V'.")
		}

		t, ok := sums[timeKey]
		if !ok {
			t = &totals{}
			sums[timeKey] = t
			order = append(order, timeKey)
		}
		t.cpu += cpu
		t.mem += mem
	}

	series := &Series{
		Labels: order,
		CPU:    make([]float64, len(order)),
		Mem:    make([]float64, len(order)),
	}
	for i, timeKey := range order {
		series.CPU[i] = sums[timeKey].cpu
		series.Mem[i] = sums[timeKey].mem
	}

	return series, nil
}
