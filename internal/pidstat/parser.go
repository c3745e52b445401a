// Package pidstat parses the tabular output of the pidstat utility and
// aggregates per-timestamp CPU and memory usage.
package pidstat

import (
	"bufio"
	"strings"

	"github.com/pidplot/pidplot/internal/logger"
)

// Columns is the fixed schema for pidstat -durh data lines, in output order.
var Columns = []string{
	"time",
	"uid",
	"pid",
	"usr_pct",
	"system_pct",
	"guest_pct",
	"cpu_pct",
	"cpu",
	"minflt_s",
	"majflt_s",
	"vsz",
	"rss",
	"mem_pct",
	"kb_rd_s",
	"kb_wr_s",
	"kb_ccwr_s",
	"iodelay",
}

// skipPrefixes mark non-data lines: the kernel banner pidstat prints first,
// the "#" column-header lines, and the trailing Average: summary.
var skipPrefixes = []string{"Linux", "#", "Average:"}

// Record is one parsed pidstat data line, keyed by column name.
// Values are kept as strings; only cpu_pct and mem_pct are ever
// interpreted numerically, and that happens at aggregation time.
type Record map[string]string

// Time returns the record's timestamp column.
func (r Record) Time() string { return r["time"] }

// PID returns the record's pid column.
func (r Record) PID() string { return r["pid"] }

// Parse splits raw pidstat output into records, preserving input line order.
// Blank lines, banner/header/summary lines, and lines with fewer
// whitespace-separated tokens than the column schema are dropped. An empty
// result is not an error here; callers decide whether that is fatal.
func Parse(raw string, log logger.Logger) []Record {
	if log == nil {
		log = logger.Noop()
	}

	var records []Record
	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isSkipped(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < len(Columns) {
			log.Debug("dropping short pidstat line (%d fields): %s", len(fields), line)
			continue
		}

		record := make(Record, len(Columns))
		for i, name := range Columns {
			record[name] = fields[i]
		}
		records = append(records, record)
	}

	return records
}

func isSkipped(line string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
