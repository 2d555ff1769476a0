package cmd

import (
	"os"

	"github.com/PolarWolf314/oauth2keys/internal/configs"
	logger "github.com/PolarWolf314/oauth2keys/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger

	// settings holds the resolved settings file of the running command.
	settings *configs.Config

	// exitFunc is called with a non-zero code when a command finishes without
	// persisting anything. Can be overridden for testing.
	exitFunc = os.Exit
)

// addGlobalFlags registers the flags shared by every command group.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	cmd.PersistentFlags().StringVar(&configPath, "config", configs.DefaultConfigFile, "settings file")
}

// initLogger creates the logger for cmd from the global flags.
func initLogger(cmd *cobra.Command) {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
		Out:     cmd.OutOrStdout(),
		Err:     cmd.ErrOrStderr(),
	}
	Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
}

// loadSettings reads the settings file. The file is optional unless --config
// was given explicitly.
func loadSettings(cmd *cobra.Command) error {
	mustExist := cmd.Flags().Changed("config")
	Logger.Debugf("Loading settings from %s (required=%t)", configPath, mustExist)

	config, err := configs.Load(configPath, mustExist)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to load settings: %w", err)
	}
	settings = config
	return nil
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configPath = configs.DefaultConfigFile
	settings = nil
	exitFunc = os.Exit
	resetEncryptionKeyState()
	resetRSAState()
	resetConfigInitState()
	resetConfigShowState()
	resetCobraFlagState(GenerateCmd)
	resetCobraFlagState(ConfigCmd)
}

// SetExitFunc sets the exit function for testing purposes.
func SetExitFunc(f func(int)) {
	exitFunc = f
}


// resetCobraFlagState clears the Changed state of every flag below cmd to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}
