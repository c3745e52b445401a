package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pidplot/pidplot/internal/pidstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []pidstat.Record {
	return []pidstat.Record{
		{"time": "11:30:01", "pid": "4321", "cpu_pct": "10.00", "mem_pct": "1.20"},
		{"time": "11:30:01", "pid": "4322", "cpu_pct": "20.00", "mem_pct": "0.80"},
	}
}

func testSeries() *pidstat.Series {
	return &pidstat.Series{
		Labels: []string{"11:30:01"},
		CPU:    []float64{30},
		Mem:    []float64{2},
	}
}

func testParams() Params {
	return Params{
		Title:    "pidstat performance report",
		Target:   "All PIDs",
		Interval: 1,
		Count:    5,
	}
}

func TestRender_ContainsReportSections(t *testing.T) {
	html, err := Render(testRecords(), testSeries(), "raw pidstat text", testParams())
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<title>pidstat performance report</title>")
	assert.Contains(t, out, "All PIDs sampled every 1s for 5 cycles.")
	assert.Contains(t, out, "cdn.jsdelivr.net/npm/chart.js")
	assert.Contains(t, out, `<canvas id="cpuChart">`)
	assert.Contains(t, out, `<canvas id="memChart">`)
	assert.Contains(t, out, "raw pidstat text")
}

func TestRender_TableRowsPerRecord(t *testing.T) {
	html, err := Render(testRecords(), testSeries(), "", testParams())
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<tr><td>11:30:01</td><td>4321</td><td>10.00</td><td>1.20</td></tr>")
	assert.Contains(t, out, "<tr><td>11:30:01</td><td>4322</td><td>20.00</td><td>0.80</td></tr>")
}

func TestRender_ChartDataLiteral(t *testing.T) {
	html, err := Render(testRecords(), testSeries(), "", testParams())
	require.NoError(t, err)

	// The aggregated series is embedded as one JSON literal for the inline script.
	assert.Contains(t, string(html), `const data = {"labels":["11:30:01"],"cpu":[30],"mem":[2]};`)
}

func TestRender_EscapesMarkup(t *testing.T) {
	records := []pidstat.Record{
		{"time": "<script>", "pid": "&pid", "cpu_pct": "1>2", "mem_pct": "0.5"},
	}
	params := testParams()
	params.Title = `<b>bold & "dangerous"</b>`

	html, err := Render(records, testSeries(), "raw <script>alert(1)</script> & more", params)
	require.NoError(t, err)

	out := string(html)
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.NotContains(t, out, "<b>bold")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt; &amp; more")
	assert.Contains(t, out, "<td>&lt;script&gt;</td>")
	assert.Contains(t, out, "&amp;pid")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")

	abs, err := WriteFile(path, []byte("<html></html>"))
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(abs))
	content, err := os.ReadFile(abs)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(content))
}

func TestWriteFile_UnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.html")

	_, err := WriteFile(path, []byte("x"))
	assert.Error(t, err)
}
