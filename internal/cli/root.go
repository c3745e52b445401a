// Package cli wires the pidplot commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Root command flags
var (
	configFlag   string
	pidFlag      int
	intervalFlag int
	countFlag    int
	outputFlag   string
	titleFlag    string
	binaryFlag   string
)

// rootCmd runs the report workflow directly: pidplot is a single-purpose
// tool, so the root command does the work and subcommands cover scaffolding.
var rootCmd = &cobra.Command{
	Use:   "pidplot",
	Short: "Run pidstat and render an HTML report with CPU and memory charts",
	Long: `Collect short performance samples with pidstat and render them into a
self-contained HTML report with CPU and memory line charts, a sample table,
and the raw pidstat output.

If no PID is provided, pidstat monitors all processes and the charts show
the system-wide sum per timestamp.

Examples:
  pidplot
  pidplot --pid 1234
  pidplot --interval 2 --count 30 --output build-profile.html
  pidplot --title "nightly build" --pid 1234`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveReportOptions(cmd)
		if err != nil {
			return err
		}
		return Report(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: .pidplot.yaml discovery)")

	rootCmd.Flags().IntVar(&pidFlag, "pid", 0, "PID to profile (all processes if omitted)")
	rootCmd.Flags().IntVar(&intervalFlag, "interval", 1, "sampling interval in seconds")
	rootCmd.Flags().IntVar(&countFlag, "count", 5, "number of samples to collect")
	rootCmd.Flags().StringVar(&outputFlag, "output", "pidstat_report.html", "where to write the HTML report")
	rootCmd.Flags().StringVar(&titleFlag, "title", "pidstat performance report", "title shown in the HTML report")
	rootCmd.Flags().StringVar(&binaryFlag, "binary", "", "pidstat executable (default: pidstat from PATH)")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// Execute runs the CLI and exits non-zero on any fatal condition.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
