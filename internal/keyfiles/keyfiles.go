// Package keyfiles persists RSA key pairs with owner-only permissions.
//
// A pair is treated as one unit: if either file exists, the pair exists, and
// nothing is written unless the caller forces an overwrite. Both files are
// fully staged as temporary files before either is renamed into place, which
// narrows the window for a half-written pair to the gap between two renames.
package keyfiles

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"
	"github.com/PolarWolf314/oauth2keys/internal/secrets"

	"github.com/google/renameio/v2"
)

// KeyFileMode is the permission set enforced on both key files.
const KeyFileMode os.FileMode = 0600

// Paths are the target locations of a key pair.
type Paths struct {
	Public  string
	Private string
}

// List returns the paths in write order.
func (p Paths) List() []string {
	return []string{p.Public, p.Private}
}

// KeysExist reports whether either key file is already present.
func KeysExist(paths Paths) (bool, error) {
	for _, path := range paths.List() {
		_, err := os.Lstat(path)
		if err == nil {
			return true, nil
		}
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("failed to check for key file at %s: %w", path, err)
		}
	}
	return false, nil
}

// Write stores the pair at paths. Without force it fails with
// ErrKeyFilesExist, touching nothing, when either file is already present.
func Write(paths Paths, pair *secrets.KeyPair, force bool) error {
	if paths.Public == "" || paths.Private == "" {
		return fmt.Errorf("both public and private key paths are required")
	}
	if filepath.Clean(paths.Public) == filepath.Clean(paths.Private) {
		return fmt.Errorf("public and private key paths must differ: %s", paths.Public)
	}

	exists, err := KeysExist(paths)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%s or %s: %w", paths.Public, paths.Private, kerrors.ErrKeyFilesExist)
	}

	for _, path := range paths.List() {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("%w: creating directory %s: %v", kerrors.ErrWriteFailed, dir, err)
		}
	}

	public, err := stage(paths.Public, pair.PublicKey)
	if err != nil {
		return err
	}
	defer public.Cleanup()

	private, err := stage(paths.Private, pair.PrivateKey)
	if err != nil {
		return err
	}
	defer private.Cleanup()

	if err := public.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", kerrors.ErrWriteFailed, paths.Public, err)
	}
	// A failure from here on leaves the new public key next to the old private key.
	if err := private.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", kerrors.ErrWriteFailed, paths.Private, err)
	}

	for _, path := range paths.List() {
		if err := os.Chmod(path, KeyFileMode); err != nil {
			return fmt.Errorf("failed to set permissions on %s: %w", path, err)
		}
	}

	return nil
}

// stage writes content to a pending temporary file next to path.
func stage(path string, content []byte) (*renameio.PendingFile, error) {
	f, err := renameio.NewPendingFile(path, renameio.WithStaticPermissions(KeyFileMode))
	if err != nil {
		return nil, fmt.Errorf("%w: creating temporary file for %s: %v", kerrors.ErrWriteFailed, path, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Cleanup()
		return nil, fmt.Errorf("%w: writing %s: %v", kerrors.ErrWriteFailed, path, err)
	}
	return f, nil
}
