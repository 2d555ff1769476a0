package cmd

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var printedKey = regexp.MustCompile(`Random generated key: ([A-Za-z0-9+/]{43}=)\n`)

func keyFromOutput(t *testing.T, stdout string) string {
	t.Helper()
	m := printedKey.FindStringSubmatch(stdout)
	require.Len(t, m, 2, "output should contain the generated key: %q", stdout)
	return m[1]
}

func TestEncryptionKey_AppendsToEnvFile(t *testing.T) {
	dir := setupTestEnvironment(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "APP_ENV=dev\n")

	result := runCLI(t, "generate", "encryption-key")
	require.NoError(t, result.Err)

	assert.Equal(t, 0, result.ExitCode)
	key := keyFromOutput(t, result.Stdout)
	assert.Contains(t, result.Stdout, "Encryption key generated and persisted in .env file!")
	assert.Equal(t, "APP_ENV=dev\nTRIKODER_OAUTH2_ENCRYPTION_KEY=\""+key+"\"", readFile(t, envFile))
}

func TestEncryptionKey_KeyPrintedBeforeStatus(t *testing.T) {
	dir := setupTestEnvironment(t)
	writeFile(t, filepath.Join(dir, ".env"), "")

	result := runCLI(t, "generate", "encryption-key")
	require.NoError(t, result.Err)

	assert.Regexp(t, `^Random generated key: \S+\n✓ Encryption key generated`, result.Stdout)
}

func TestEncryptionKey_MissingEnvFile(t *testing.T) {
	dir := setupTestEnvironment(t)

	result := runCLI(t, "generate", "encryption-key", "--force")
	require.NoError(t, result.Err)

	assert.Equal(t, 1, result.ExitCode)
	keyFromOutput(t, result.Stdout)
	assert.Contains(t, result.Stdout, "File .env not found in project root so encryption key is not persisted!")
	assert.NoFileExists(t, filepath.Join(dir, ".env"))
}

func TestEncryptionKey_ExistingKeyBlocked(t *testing.T) {
	dir := setupTestEnvironment(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, `TRIKODER_OAUTH2_ENCRYPTION_KEY="test"`)

	result := runCLI(t, "generate", "encryption-key")
	require.NoError(t, result.Err)

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stdout, "Encryption key already exists, use --force flag to overwrite!")
	assert.Equal(t, `TRIKODER_OAUTH2_ENCRYPTION_KEY="test"`, readFile(t, envFile))
}

func TestEncryptionKey_ForceReplaces(t *testing.T) {
	dir := setupTestEnvironment(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, `TRIKODER_OAUTH2_ENCRYPTION_KEY="test"`)

	result := runCLI(t, "generate", "encryption-key", "-f")
	require.NoError(t, result.Err)

	assert.Equal(t, 0, result.ExitCode)
	key := keyFromOutput(t, result.Stdout)
	assert.Contains(t, result.Stdout, "Old encryption key value replaced with new one!")
	assert.Equal(t, `TRIKODER_OAUTH2_ENCRYPTION_KEY="`+key+`"`, readFile(t, envFile))
}

func TestEncryptionKey_DryRun(t *testing.T) {
	dir := setupTestEnvironment(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "APP_ENV=dev\n")

	result := runCLI(t, "generate", "encryption-key", "-d", "-f")
	require.NoError(t, result.Err)

	assert.Equal(t, 0, result.ExitCode)
	keyFromOutput(t, result.Stdout)
	assert.NotContains(t, result.Stdout, "persisted")
	assert.Equal(t, "APP_ENV=dev\n", readFile(t, envFile))
}

func TestEncryptionKey_DryRunWithoutEnvFile(t *testing.T) {
	dir := setupTestEnvironment(t)

	result := runCLI(t, "generate", "encryption-key", "--dry-run")
	require.NoError(t, result.Err)

	assert.Equal(t, 0, result.ExitCode)
	keyFromOutput(t, result.Stdout)
	assert.NoFileExists(t, filepath.Join(dir, ".env"))
}

func TestEncryptionKey_EnvFileFlag(t *testing.T) {
	dir := setupTestEnvironment(t)
	envFile := filepath.Join(dir, "app", ".env.local")
	writeFile(t, envFile, "")

	result := runCLI(t, "generate", "encryption-key", "--env-file", envFile)
	require.NoError(t, result.Err)

	assert.Equal(t, 0, result.ExitCode)
	key := keyFromOutput(t, result.Stdout)
	assert.Equal(t, `TRIKODER_OAUTH2_ENCRYPTION_KEY="`+key+`"`, readFile(t, envFile))
}

func TestEncryptionKey_EnvDirFromSettings(t *testing.T) {
	dir := setupTestEnvironment(t)
	writeFile(t, filepath.Join(dir, "oauth2keys.toml"), "[encryption_key]\nenv_dir = \"app\"\n")
	envFile := filepath.Join(dir, "app", ".env")
	writeFile(t, envFile, "")

	result := runCLI(t, "generate", "encryption-key")
	require.NoError(t, result.Err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, readFile(t, envFile), "TRIKODER_OAUTH2_ENCRYPTION_KEY=")
}

func TestEncryptionKey_WarnsAboutMissingTrailingNewline(t *testing.T) {
	dir := setupTestEnvironment(t)
	writeFile(t, filepath.Join(dir, ".env"), "APP_ENV=dev")

	result := runCLI(t, "generate", "encryption-key")
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stderr, "did not end with a newline")
}

func TestEncryptionKey_DuplicateDefinitionFails(t *testing.T) {
	dir := setupTestEnvironment(t)
	envFile := filepath.Join(dir, ".env")
	content := "TRIKODER_OAUTH2_ENCRYPTION_KEY=\"a\"\nTRIKODER_OAUTH2_ENCRYPTION_KEY=\"b\"\n"
	writeFile(t, envFile, content)

	result := runCLI(t, "generate", "encryption-key", "--force")

	assert.ErrorIs(t, result.Err, kerrors.ErrDuplicateVariable)
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, content, readFile(t, envFile))
}

func TestEncryptionKey_AuditLog(t *testing.T) {
	dir := setupTestEnvironment(t)
	writeFile(t, filepath.Join(dir, "oauth2keys.toml"), "[audit]\nlog_path = \"audit.jsonl\"\n")
	writeFile(t, filepath.Join(dir, ".env"), "")

	result := runCLI(t, "generate", "encryption-key")
	require.NoError(t, result.Err)

	key := keyFromOutput(t, result.Stdout)
	log := readFile(t, filepath.Join(dir, "audit.jsonl"))
	assert.Contains(t, log, `"op":"generate-encryption-key"`)
	assert.NotContains(t, log, key)
}

func TestEncryptionKey_ExplicitMissingSettingsFails(t *testing.T) {
	dir := setupTestEnvironment(t)
	writeFile(t, filepath.Join(dir, ".env"), "")

	result := runCLI(t, "generate", "encryption-key", "--config", "missing.toml")

	assert.Error(t, result.Err)
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "", readFile(t, filepath.Join(dir, ".env")))
}

func TestEncryptionKey_InvalidSettingsFails(t *testing.T) {
	dir := setupTestEnvironment(t)
	writeFile(t, filepath.Join(dir, "oauth2keys.toml"), "[rsa]\nlenght = 2048\n")

	result := runCLI(t, "generate", "encryption-key", "--dry-run")

	assert.ErrorIs(t, result.Err, kerrors.ErrInvalidConfig)
	_, err := os.Stat(filepath.Join(dir, ".env"))
	assert.True(t, os.IsNotExist(err))
}
