// Package report renders parsed pidstat samples into a self-contained HTML
// document with Chart.js CPU and memory charts.
package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"os"
	"path/filepath"

	"github.com/pidplot/pidplot/internal/errors"
	"github.com/pidplot/pidplot/internal/pidstat"
)

//go:embed template.html
var templateHTML string

var reportTemplate = template.Must(template.New("report").Parse(templateHTML))

// Data is everything the report template needs. Title, Target, table cells,
// and Raw are auto-escaped by html/template; ChartData is the pre-serialized
// JSON literal the inline chart script consumes.
type Data struct {
	Title     string
	Target    string
	Interval  int
	Count     int
	Records   []pidstat.Record
	Raw       string
	ChartData template.JS
}

// Params carries the display parameters for a report.
type Params struct {
	Title    string
	Target   string
	Interval int
	Count    int
}

// Render produces the HTML document for the given records and series.
func Render(records []pidstat.Record, series *pidstat.Series, raw string, params Params) ([]byte, error) {
	chartJSON, err := json.Marshal(series)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrRender,
			"Failed to serialize chart data",
			"This shouldn't happen - please report this bug!")
	}

	data := Data{
		Title:     params.Title,
		Target:    params.Target,
		Interval:  params.Interval,
		Count:     params.Count,
		Records:   records,
		Raw:       raw,
		ChartData: template.JS(chartJSON),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrRender,
			"Failed to render the HTML report",
			"This shouldn't happen - please report this bug!")
	}

	return buf.Bytes(), nil
}

// WriteFile writes the rendered report and returns its absolute path.
func WriteFile(path string, content []byte) (string, error) {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrRender,
			"Couldn't write the report to "+path,
			"Check the directory exists and is writable.")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		// The file was written; fall back to the path as given.
		return path, nil
	}
	return abs, nil
}
