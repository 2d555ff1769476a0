package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/oauth2keys/internal/configs"
	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"
	"github.com/PolarWolf314/oauth2keys/internal/ui"
	"github.com/PolarWolf314/oauth2keys/internal/utils"

	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing settings file")
}

func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	Long: `Writes the built-in defaults to the settings file so they can be edited.

An existing file is left alone unless --force is given.

Examples:
  oauth2keys config init
  oauth2keys config init --config deploy/oauth2keys.toml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		out := cmd.OutOrStdout()
		path := ui.Path.Sprint(utils.DisplayPath(configPath))

		err := configs.Save(configPath, configs.Default(), configInitForce)
		if errors.Is(err, kerrors.ErrConfigExists) {
			fmt.Fprintf(out, "%s Settings file %s already exists, use %s to overwrite it\n", ui.Cross(), path, ui.Flag.Sprint("--force"))
			exitFunc(1)
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to write settings: %w", err)
		}

		fmt.Fprintf(out, "%s Settings written to %s\n", ui.Check(), path)
		fmt.Fprintf(out, "%s Run %s to review them\n", ui.Arrow(), ui.Code.Sprint("oauth2keys config show"))
		return nil
	},
}
