package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pidplot/pidplot/internal/config"
	"github.com/pidplot/pidplot/internal/errors"
	"github.com/pidplot/pidplot/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initForce bool

// initCmd creates a new .pidplot.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pidplot.yaml configuration",
	Long: `Initialize a pidplot configuration file.

Creates a .pidplot.yaml file in the current directory holding the default
sampling settings, so repeated runs don't need flags.

Examples:
  pidplot init
  pidplot init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(config.ConfigFileName, initForce, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// initCommand writes the default config scaffold to path.
func initCommand(path string, force bool, out io.Writer) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			path+" already exists",
			"Use --force to overwrite it.")
	}

	content, err := yaml.Marshal(config.Defaults())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize the default config",
			"This shouldn't happen - please report this bug!")
	}

	header := "# pidplot configuration. Flags override these values.\n"
	if err := os.WriteFile(path, append([]byte(header), content...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+path,
			"Check the current directory is writable.")
	}

	fmt.Fprintln(out, ui.Success("Created "+path))
	return nil
}
