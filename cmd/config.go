package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage oauth2keys settings",
	Long: `Provides commands for managing the settings file (oauth2keys.toml by default).

The settings file is optional. It sets where the .env file and the RSA key
files live, the default RSA key length and the audit log location. Flags on
the generate commands override it.

Examples:
  # Write a settings file with the defaults
  oauth2keys config init

  # Show the resolved settings
  oauth2keys config show`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(cmd)
	},
}

func init() {
	addGlobalFlags(ConfigCmd)

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}
