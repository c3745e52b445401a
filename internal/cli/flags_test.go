package cli

import (
	"testing"

	"github.com/pidplot/pidplot/internal/errors"
	"github.com/pidplot/pidplot/internal/sampler"
	"github.com/stretchr/testify/assert"
)

func validOptions() ReportOptions {
	return ReportOptions{
		PID:      sampler.AllProcesses,
		Interval: 1,
		Count:    5,
		Output:   "pidstat_report.html",
		Title:    "pidstat performance report",
	}
}

func TestValidateReportOptions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ReportOptions)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(o *ReportOptions) {},
			wantErr: false,
		},
		{
			name:    "specific pid is valid",
			mutate:  func(o *ReportOptions) { o.PID = 4321 },
			wantErr: false,
		},
		{
			name:    "zero interval",
			mutate:  func(o *ReportOptions) { o.Interval = 0 },
			wantErr: true,
		},
		{
			name:    "negative count",
			mutate:  func(o *ReportOptions) { o.Count = -3 },
			wantErr: true,
		},
		{
			name:    "empty output path",
			mutate:  func(o *ReportOptions) { o.Output = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)

			err := validateReportOptions(opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
