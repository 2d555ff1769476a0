package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/oauth2keys/internal/audit"
	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"
	"github.com/PolarWolf314/oauth2keys/internal/keyfiles"
	"github.com/PolarWolf314/oauth2keys/internal/secrets"
)

// RSAPairOptions configures the RSA key pair workflow.
type RSAPairOptions struct {
	Paths keyfiles.Paths

	// Length is the modulus length in bits. Zero means secrets.DefaultKeyLength.
	Length int

	// Force overwrites existing key files.
	Force bool

	// Generator creates the pair. Nil means secrets.RSAGenerator.
	Generator secrets.KeyGenerator

	// AuditLogPath enables the audit trail when set.
	AuditLogPath string
}

// RSAPairResult contains the outcome of an RSA key pair run.
type RSAPairResult struct {
	Decision Decision

	Paths keyfiles.Paths

	Length int

	// Fingerprint is the SHA256 fingerprint of the new public key, empty when
	// nothing was written or the generator's output is not a PEM public key.
	Fingerprint string
}

// GenerateRSAPair generates an RSA key pair and writes it to the configured
// paths with mode 0600.
//
// Existing files are checked before generating, so a blocked run does not
// pay for key generation.
//
// Returns ErrInvalidKeyLength if the length is below secrets.MinKeyLength.
// Returns ErrWriteFailed if the key files could not be written.
func GenerateRSAPair(ctx context.Context, opts RSAPairOptions) (*RSAPairResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	length := opts.Length
	if length == 0 {
		length = secrets.DefaultKeyLength
	}
	if length < secrets.MinKeyLength {
		return nil, fmt.Errorf("%w: %d bits, minimum is %d", kerrors.ErrInvalidKeyLength, length, secrets.MinKeyLength)
	}

	result := &RSAPairResult{
		Paths:  opts.Paths,
		Length: length,
	}

	existed, err := keyfiles.KeysExist(opts.Paths)
	if err != nil {
		return nil, err
	}
	if existed && !opts.Force {
		result.Decision = DecisionExistsBlocked
		return result, nil
	}

	generator := opts.Generator
	if generator == nil {
		generator = secrets.RSAGenerator{}
	}

	pair, err := generator.GenerateKeyPair(length)
	if err != nil {
		return nil, fmt.Errorf("generating RSA key pair: %w", err)
	}

	if err := keyfiles.Write(opts.Paths, pair, opts.Force); err != nil {
		// Another process created the files while the pair was being generated.
		if errors.Is(err, kerrors.ErrKeyFilesExist) {
			result.Decision = DecisionExistsBlocked
			return result, nil
		}
		return nil, err
	}

	result.Decision = DecisionCreated
	if existed {
		result.Decision = DecisionOverwritten
	}

	if fingerprint, err := secrets.Fingerprint(pair.PublicKey); err == nil {
		result.Fingerprint = fingerprint
	}

	entry := audit.NewEntry("generate-rsa", result.Decision.String())
	entry.Paths = opts.Paths.List()
	entry.Fingerprint = result.Fingerprint
	entry.Length = length
	audit.Log(opts.AuditLogPath, entry)

	return result, nil
}
