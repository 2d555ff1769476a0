// Package shared contains testing utilities shared between integration tests.
// It runs the real command tree in a temporary project directory and records
// output and exit codes.
package shared

import (
	"bytes"
	"os"
	"testing"

	"github.com/PolarWolf314/oauth2keys/cmd"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Result is the outcome of one CLI invocation.
type Result struct {
	Output   string
	Err      error
	ExitCode int
}

// SetupTestEnvironment changes into a new temporary project directory with
// colour output disabled. Returns the directory.
func SetupTestEnvironment(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	originalNoColor := color.NoColor
	color.NoColor = true
	t.Setenv("NO_COLOR", "1")
	cmd.ResetGlobalState()

	t.Cleanup(func() {
		cmd.ResetGlobalState()
		color.NoColor = originalNoColor
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
	})

	return tempDir
}

// RunCLI executes oauth2keys with args against a fresh root command.
// Errors returned by a command count as exit code 1, as in main.
func RunCLI(args ...string) Result {
	var output bytes.Buffer
	result := Result{}
	cmd.SetExitFunc(func(code int) {
		result.ExitCode = code
	})

	rootCmd := &cobra.Command{
		Use:           "oauth2keys",
		Short:         "oauth2keys - Provision the keys of an OAuth2 authorization server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(cmd.GetGenerateCmd())
	rootCmd.AddCommand(cmd.GetConfigCmd())
	rootCmd.SetOut(&output)
	rootCmd.SetErr(&output)
	rootCmd.SetArgs(args)

	result.Err = rootCmd.Execute()
	if result.Err != nil && result.ExitCode == 0 {
		result.ExitCode = 1
	}
	result.Output = output.String()

	cmd.ResetGlobalState()
	return result
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// WriteFile creates path with content, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
