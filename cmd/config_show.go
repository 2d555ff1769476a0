package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/oauth2keys/internal/configs"
	"github.com/PolarWolf314/oauth2keys/internal/ui"
	"github.com/PolarWolf314/oauth2keys/internal/utils"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the resolved settings",
	Long: `Displays the settings the generate commands would use: the settings file
merged over the built-in defaults, with relative paths resolved.

Examples:
  oauth2keys config show
  oauth2keys config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		if err := loadSettings(cmd); err != nil {
			return err
		}

		if configShowJSON {
			Logger.Debugf("Outputting settings as JSON")
			return outputSettingsJSON(cmd.OutOrStdout(), settings)
		}
		outputSettingsText(cmd.OutOrStdout(), settings)
		return nil
	},
}

// settingsView is the JSON shape of config show.
type settingsView struct {
	SettingsFile string `json:"settings_file"`
	Loaded       bool   `json:"loaded"`
	EnvFile      string `json:"env_file"`
	PrivateKey   string `json:"private_key"`
	PublicKey    string `json:"public_key"`
	Length       int    `json:"length"`
	AuditLog     string `json:"audit_log,omitempty"`
}

func outputSettingsJSON(out io.Writer, config *configs.Config) error {
	view := settingsView{
		SettingsFile: configPath,
		Loaded:       utils.FileExists(configPath),
		EnvFile:      config.EnvFilePath(),
		PrivateKey:   config.RSA.PrivateKey,
		PublicKey:    config.RSA.PublicKey,
		Length:       config.RSA.Length,
		AuditLog:     config.Audit.LogPath,
	}
	output, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("failed to marshal settings to JSON: %w", err)
	}
	fmt.Fprintln(out, string(output))
	return nil
}

func outputSettingsText(out io.Writer, config *configs.Config) {
	source := ui.Path.Sprint(utils.DisplayPath(configPath))
	if !utils.FileExists(configPath) {
		source = ui.Muted.Sprint("built-in defaults")
	}
	fmt.Fprintln(out, ui.Info.Sprint("Settings")+" "+source+":")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-13s %s\n", "Env file:", ui.Path.Sprint(utils.DisplayPath(config.EnvFilePath())))
	fmt.Fprintf(out, "  %-13s %s\n", "Private key:", ui.Path.Sprint(utils.DisplayPath(config.RSA.PrivateKey)))
	fmt.Fprintf(out, "  %-13s %s\n", "Public key:", ui.Path.Sprint(utils.DisplayPath(config.RSA.PublicKey)))
	fmt.Fprintf(out, "  %-13s %d bits\n", "Key length:", config.RSA.Length)
	if config.Audit.LogPath != "" {
		fmt.Fprintf(out, "  %-13s %s\n", "Audit log:", ui.Path.Sprint(utils.DisplayPath(config.Audit.LogPath)))
	} else {
		fmt.Fprintf(out, "  %-13s %s\n", "Audit log:", ui.Muted.Sprint("disabled"))
	}
}
