package cmd

import (
	"github.com/spf13/cobra"
)

// GenerateCmd is the top-level generate command.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate OAuth2 server keys",
	Long: `Generates the cryptographic material an OAuth2 authorization server needs.

Use these commands to:
  - Create the encryption key stored in .env (generate encryption-key)
  - Create the RSA key pair used to sign tokens (generate rsa)

Examples:
  # Generate an encryption key and add it to .env
  oauth2keys generate encryption-key

  # Print a key without touching .env
  oauth2keys generate encryption-key --dry-run

  # Generate a 4096-bit RSA key pair
  oauth2keys generate rsa`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger(cmd)
		return loadSettings(cmd)
	},
}

func init() {
	addGlobalFlags(GenerateCmd)

	GenerateCmd.AddCommand(encryptionKeyCmd)
	GenerateCmd.AddCommand(rsaCmd)
}

// GetGenerateCmd returns the GenerateCmd for testing.
func GetGenerateCmd() *cobra.Command {
	return GenerateCmd
}
