// Package errors provides typed error values for oauth2keys.
//
// Sentinel errors let the CLI layer decide how to report a failure with
// errors.Is() instead of matching on message text.
//
// # Error Categories
//
//   - Entropy errors: the random source failed (ErrEntropySource)
//   - Env file errors: .env lookup and editing (ErrConfigFileNotFound,
//     ErrVariableExists, ErrDuplicateVariable)
//   - Key file errors: RSA pair persistence (ErrKeyFilesExist, ErrInvalidKeyLength)
//   - Write errors: any filesystem mutation that failed (ErrWriteFailed)
//   - Settings errors: the oauth2keys.toml file (ErrConfigExists, ErrInvalidConfig)
//
// # Usage
//
// Wrap sentinels with context where they are produced:
//
//	return fmt.Errorf("reading %s: %w", path, errors.ErrConfigFileNotFound)
//
// and check them where they are reported:
//
//	if errors.Is(err, kerrors.ErrDuplicateVariable) {
//	    // tell the user to clean up the .env file
//	}
package errors
