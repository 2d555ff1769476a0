package errors

import "errors"

// Entropy errors. These are always fatal: no key may be derived from a
// source that reported a failure.
var (
	// ErrEntropySource indicates the cryptographic random source failed.
	ErrEntropySource = errors.New("cryptographic random source failed")
)

// Env file errors indicate issues locating or editing the .env file.
var (
	// ErrConfigFileNotFound indicates the target .env file does not exist.
	ErrConfigFileNotFound = errors.New("env file not found")

	// ErrVariableExists indicates the variable is already defined and force was not given.
	ErrVariableExists = errors.New("variable already defined")

	// ErrDuplicateVariable indicates the variable is defined on more than one line.
	ErrDuplicateVariable = errors.New("variable defined more than once")
)

// Key file errors indicate issues persisting an RSA key pair.
var (
	// ErrKeyFilesExist indicates at least one key file is already present.
	ErrKeyFilesExist = errors.New("key files already exist")

	// ErrInvalidKeyLength indicates the requested RSA modulus length is unusable.
	ErrInvalidKeyLength = errors.New("invalid RSA key length")
)

// Write errors indicate a filesystem mutation failed part way.
var (
	// ErrWriteFailed indicates a file could not be written, synced or renamed.
	ErrWriteFailed = errors.New("failed to write file")

	// ErrFileChanged indicates a file was modified between reading and rewriting it.
	ErrFileChanged = errors.New("file changed while it was being edited")
)

// Settings errors indicate issues with the oauth2keys.toml settings file.
var (
	// ErrConfigExists indicates a settings file is already present.
	ErrConfigExists = errors.New("settings file already exists")

	// ErrInvalidConfig indicates the settings file could not be parsed.
	ErrInvalidConfig = errors.New("settings file is invalid")
)
