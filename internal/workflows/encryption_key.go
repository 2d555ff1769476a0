package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/oauth2keys/internal/audit"
	"github.com/PolarWolf314/oauth2keys/internal/configs"
	"github.com/PolarWolf314/oauth2keys/internal/envfile"
	"github.com/PolarWolf314/oauth2keys/internal/secrets"
)

// EncryptionKeyOptions configures the encryption key workflow.
type EncryptionKeyOptions struct {
	// EnvFilePath is the .env file the key is persisted into.
	EnvFilePath string

	// DryRun generates and reports the key without touching any file.
	DryRun bool

	// Force replaces an existing key definition.
	Force bool

	// AuditLogPath enables the audit trail when set.
	AuditLogPath string
}

// EncryptionKeyResult contains the outcome of an encryption key run.
type EncryptionKeyResult struct {
	// Key is the generated key. It is returned whatever the decision.
	Key secrets.Secret

	Decision Decision

	EnvFilePath string

	// MissingTrailingNewline is set when the key was appended to a file that
	// did not end with a newline, so it landed on the file's last line.
	MissingTrailingNewline bool
}

// GenerateEncryptionKey generates a new encryption key and persists it as
// TRIKODER_OAUTH2_ENCRYPTION_KEY in the .env file.
//
// Returns ErrEntropySource if no key could be generated.
// Returns ErrDuplicateVariable if the .env file defines the variable more than once.
// Returns ErrWriteFailed if the .env file could not be updated.
func GenerateEncryptionKey(ctx context.Context, opts EncryptionKeyOptions) (*EncryptionKeyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := secrets.GenerateSymmetricKey()
	if err != nil {
		return nil, fmt.Errorf("generating encryption key: %w", err)
	}

	result := &EncryptionKeyResult{
		Key:         key,
		EnvFilePath: opts.EnvFilePath,
	}

	result.Decision, result.MissingTrailingNewline, err = ReconcileVariable(opts.EnvFilePath, configs.EncryptionKeyName, key.Base64(), opts.DryRun, opts.Force)
	if err != nil {
		return nil, err
	}

	if result.Decision.Persisted() {
		entry := audit.NewEntry("generate-encryption-key", result.Decision.String())
		entry.Paths = []string{opts.EnvFilePath}
		entry.Variable = configs.EncryptionKeyName
		audit.Log(opts.AuditLogPath, entry)
	}

	return result, nil
}

// ReconcileVariable decides, from the flags and the current state of the
// file at path, whether name="value" is appended, replaces an existing
// definition, or is withheld, and applies that decision. The second return
// value reports an append to a file without a trailing newline.
func ReconcileVariable(path, name, value string, dryRun, force bool) (Decision, bool, error) {
	if dryRun {
		return DecisionSkipDryRun, false, nil
	}
	if !envfile.Exists(path) {
		return DecisionNotFound, false, nil
	}

	text, err := envfile.Read(path)
	if err != nil {
		return 0, false, err
	}

	match, err := envfile.FindVariable(text, name)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", path, err)
	}

	if match == nil {
		if err := envfile.AppendVariable(path, name, value); err != nil {
			return 0, false, err
		}
		return DecisionCreated, !envfile.EndsCleanly(text), nil
	}

	if !force {
		return DecisionExistsBlocked, false, nil
	}

	if err := envfile.ReplaceVariable(path, match, name, value); err != nil {
		return 0, false, err
	}
	return DecisionOverwritten, false, nil
}
