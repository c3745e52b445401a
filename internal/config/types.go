package config

// Default values applied when neither a config file nor a flag sets them.
const (
	DefaultInterval = 1
	DefaultCount    = 5
	DefaultOutput   = "pidstat_report.html"
	DefaultTitle    = "pidstat performance report"
	DefaultBinary   = "pidstat"
)

// Config represents the complete .pidplot.yaml configuration file.
// Every field has a built-in default; a missing config file is fine.
type Config struct {
	// Interval is the sampling interval in seconds.
	Interval int `yaml:"interval" mapstructure:"interval"`

	// Count is the number of samples pidstat collects.
	Count int `yaml:"count" mapstructure:"count"`

	// Output is the report file path.
	Output string `yaml:"output" mapstructure:"output"`

	// Title is shown as the report heading.
	Title string `yaml:"title" mapstructure:"title"`

	// Binary is the pidstat executable, resolved via PATH if not absolute.
	Binary string `yaml:"binary" mapstructure:"binary"`
}

// Defaults returns a Config populated with the built-in defaults.
func Defaults() *Config {
	return &Config{
		Interval: DefaultInterval,
		Count:    DefaultCount,
		Output:   DefaultOutput,
		Title:    DefaultTitle,
		Binary:   DefaultBinary,
	}
}
