package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/oauth2keys/cmd"
	"github.com/PolarWolf314/oauth2keys/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oauth2keys",
	Short: "oauth2keys - Provision the keys of an OAuth2 authorization server.",
	Long: `oauth2keys generates the cryptographic material an OAuth2 authorization
server needs and stores it where the server expects it.

Features:
  - Generate the encryption key and persist it in .env
  - Generate the RSA key pair used to sign access tokens
  - Keep paths and key length in an optional oauth2keys.toml

Usage:
  oauth2keys <command> [flags]

Available Commands:
  generate   Generate the encryption key or the RSA key pair
  config     Manage the settings file

Run 'oauth2keys help <command>' for more details on a specific command.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		figure.NewColorFigure("oauth2keys", "", "green", true).Print()
		fmt.Println()
		fmt.Printf("%s Run %s to see available commands.\n", ui.Arrow(), ui.Code.Sprint("oauth2keys --help"))
	},
}

func init() {
	rootCmd.AddCommand(cmd.GetGenerateCmd())
	rootCmd.AddCommand(cmd.GetConfigCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:"), err)
		os.Exit(1)
	}
}
