package cmd

import (
	"fmt"

	"github.com/PolarWolf314/oauth2keys/internal/configs"
	"github.com/PolarWolf314/oauth2keys/internal/ui"
	"github.com/PolarWolf314/oauth2keys/internal/utils"
	"github.com/PolarWolf314/oauth2keys/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	encryptionKeyDryRun  bool
	encryptionKeyForce   bool
	encryptionKeyEnvFile string
)

func init() {
	encryptionKeyCmd.Flags().BoolVarP(&encryptionKeyDryRun, "dry-run", "d", false, "print the key without persisting it")
	encryptionKeyCmd.Flags().BoolVarP(&encryptionKeyForce, "force", "f", false, "replace an existing encryption key")
	encryptionKeyCmd.Flags().StringVar(&encryptionKeyEnvFile, "env-file", "", "path of the .env file (default from settings)")
}

func resetEncryptionKeyState() {
	encryptionKeyDryRun = false
	encryptionKeyForce = false
	encryptionKeyEnvFile = ""
}

var encryptionKeyCmd = &cobra.Command{
	Use:   "encryption-key",
	Short: "Generate the OAuth2 encryption key",
	Long: `Generates a random 32-byte encryption key and stores it base64 encoded as
` + configs.EncryptionKeyName + ` in the project's .env file.

The key is always printed. It is only written when the .env file exists, and
an existing key is only replaced with --force.

Exit codes:
  0 - Key persisted, or --dry-run
  1 - .env not found, key already present, or an error occurred

Examples:
  # Append the key to ./.env
  oauth2keys generate encryption-key

  # Replace an existing key
  oauth2keys generate encryption-key --force

  # Only print a key
  oauth2keys generate encryption-key --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		decision, err := runEncryptionKey(cmd)
		if err != nil {
			return err
		}
		if code := decision.ExitCode(); code != 0 {
			Logger.Debugf("Exiting with code %d (%s)", code, decision)
			exitFunc(code)
		}
		return nil
	},
}

func runEncryptionKey(cmd *cobra.Command) (workflows.Decision, error) {
	Logger.Infof("Starting encryption-key command")
	out := cmd.OutOrStdout()

	envFile := settings.EnvFilePath()
	if encryptionKeyEnvFile != "" {
		envFile = encryptionKeyEnvFile
	}
	Logger.Debugf("Flags: dry-run=%t, force=%t, env-file=%s", encryptionKeyDryRun, encryptionKeyForce, envFile)

	if encryptionKeyForce && !encryptionKeyDryRun {
		Logger.Warnf("Force flag set, an existing key in %s will be replaced", envFile)
	}

	result, err := workflows.GenerateEncryptionKey(cmd.Context(), workflows.EncryptionKeyOptions{
		EnvFilePath:  envFile,
		DryRun:       encryptionKeyDryRun,
		Force:        encryptionKeyForce,
		AuditLogPath: settings.Audit.LogPath,
	})
	if err != nil {
		fmt.Fprintln(out, ui.Cross()+" Failed to generate encryption key: "+err.Error())
		return 0, err
	}
	Logger.Infof("Decision: %s", result.Decision)

	// The raw key goes out unformatted so it can be copied or piped.
	fmt.Fprintf(out, "Random generated key: %s\n", result.Key.Base64())

	envName := ui.Path.Sprint(utils.DisplayPath(envFile))
	switch result.Decision {
	case workflows.DecisionSkipDryRun:
		Logger.Infof("Dry run, %s was not touched", envFile)
	case workflows.DecisionNotFound:
		fmt.Fprintf(out, "%s File %s not found in project root so encryption key is not persisted!\n", ui.Cross(), envName)
	case workflows.DecisionCreated:
		fmt.Fprintf(out, "%s Encryption key generated and persisted in %s file!\n", ui.Check(), envName)
		if result.MissingTrailingNewline {
			Logger.WarnfUser("%s did not end with a newline, the key was appended to its last line", envFile)
		}
	case workflows.DecisionExistsBlocked:
		fmt.Fprintf(out, "%s Encryption key already exists, use %s flag to overwrite!\n", ui.Cross(), ui.Flag.Sprint("--force"))
	case workflows.DecisionOverwritten:
		fmt.Fprintf(out, "%s Old encryption key value replaced with new one!\n", ui.Check())
	}

	return result.Decision, nil
}
