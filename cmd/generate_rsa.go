package cmd

import (
	"fmt"

	"github.com/PolarWolf314/oauth2keys/internal/keyfiles"
	"github.com/PolarWolf314/oauth2keys/internal/secrets"
	"github.com/PolarWolf314/oauth2keys/internal/ui"
	"github.com/PolarWolf314/oauth2keys/internal/utils"
	"github.com/PolarWolf314/oauth2keys/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	rsaForce      bool
	rsaLength     int
	rsaPrivateKey string
	rsaPublicKey  string

	// rsaGenerator creates the key pair. Can be overridden for testing.
	rsaGenerator secrets.KeyGenerator = secrets.RSAGenerator{}
)

func init() {
	rsaCmd.Flags().BoolVarP(&rsaForce, "force", "f", false, "overwrite existing key files")
	rsaCmd.Flags().IntVarP(&rsaLength, "length", "l", secrets.DefaultKeyLength, "modulus length in bits (default from settings)")
	rsaCmd.Flags().StringVar(&rsaPrivateKey, "private-key", "", "private key path (default from settings)")
	rsaCmd.Flags().StringVar(&rsaPublicKey, "public-key", "", "public key path (default from settings)")
}

func resetRSAState() {
	rsaForce = false
	rsaLength = secrets.DefaultKeyLength
	rsaPrivateKey = ""
	rsaPublicKey = ""
	rsaGenerator = secrets.RSAGenerator{}
}

// SetRSAGenerator sets the key generator for testing purposes.
func SetRSAGenerator(g secrets.KeyGenerator) {
	rsaGenerator = g
}

var rsaCmd = &cobra.Command{
	Use:   "rsa",
	Short: "Generate the RSA key pair used to sign tokens",
	Long: `Generates an RSA key pair and writes the PEM encoded private and public
keys with owner-only (0600) permissions.

Existing key files are never replaced unless --force is given.

Exit codes:
  0 - Key pair written
  1 - Key files already exist, or an error occurred

Examples:
  # Generate a key pair at the configured paths
  oauth2keys generate rsa

  # Replace an existing pair with a 2048-bit one
  oauth2keys generate rsa --force --length 2048`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		decision, err := runRSA(cmd)
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

func runRSA(cmd *cobra.Command) (workflows.Decision, error) {
	Logger.Infof("Starting rsa command")

	paths := keyfiles.Paths{
		Private: settings.RSA.PrivateKey,
		Public:  settings.RSA.PublicKey,
	}
	if rsaPrivateKey != "" {
		paths.Private = rsaPrivateKey
	}
	if rsaPublicKey != "" {
		paths.Public = rsaPublicKey
	}
	length := settings.RSA.Length
	if cmd.Flags().Changed("length") {
		length = rsaLength
	}
	Logger.Debugf("Flags: force=%t, length=%d, private-key=%s, public-key=%s", rsaForce, length, paths.Private, paths.Public)

	if rsaForce {
		Logger.Warnf("Force flag set, existing key files will be overwritten")
	}

	spinner, cleanup := startSpinner(cmd.OutOrStdout(), fmt.Sprintf("Generating %d-bit RSA key pair...", length))
	defer cleanup()

	result, err := workflows.GenerateRSAPair(cmd.Context(), workflows.RSAPairOptions{
		Paths:        paths,
		Length:       length,
		Force:        rsaForce,
		Generator:    rsaGenerator,
		AuditLogPath: settings.Audit.LogPath,
	})
	if err != nil {
		spinner.FinalMSG = ui.Cross() + " Failed to generate encryption keys: " + err.Error()
		return 0, err
	}
	Logger.Infof("Decision: %s", result.Decision)

	switch result.Decision {
	case workflows.DecisionExistsBlocked:
		spinner.FinalMSG = ui.Cross() + " Encryption keys already exist. Use the " + ui.Flag.Sprint("--force|-f") + " option to overwrite them."
	default:
		msg := ui.Check() + " Encryption keys generated successfully." + utils.FormatPaths(paths.List())
		if result.Fingerprint != "" {
			msg += "  Fingerprint: " + ui.Value.Sprint(result.Fingerprint)
		}
		spinner.FinalMSG = msg
	}

	return result.Decision, nil
}
