package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// cliResult is the outcome of one CLI invocation.
type cliResult struct {
	Stdout   string
	Stderr   string
	Err      error
	ExitCode int
}

// setupTestEnvironment moves into a fresh temp directory, disables colour and
// resets global command state. Returns the directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))

	originalNoColor := color.NoColor
	color.NoColor = true
	t.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	t.Cleanup(func() {
		ResetGlobalState()
		color.NoColor = originalNoColor
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
	})

	return tempDir
}

// runCLI executes the command tree with args, capturing output and the exit code.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	result := cliResult{}
	SetExitFunc(func(code int) {
		result.ExitCode = code
	})

	rootCmd := &cobra.Command{
		Use:           "oauth2keys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(GenerateCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	result.Err = rootCmd.Execute()
	if result.Err != nil && result.ExitCode == 0 {
		result.ExitCode = 1
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	// Flag values and Changed state outlive Execute.
	ResetGlobalState()
	return result
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644)) // #nosec G306
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
