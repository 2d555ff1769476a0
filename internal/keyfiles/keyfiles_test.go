package keyfiles

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"
	"github.com/PolarWolf314/oauth2keys/internal/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPair = &secrets.KeyPair{
	PublicKey:  []byte("public key data"),
	PrivateKey: []byte("private key data"),
}

func testPaths(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		Public:  filepath.Join(dir, "public.key"),
		Private: filepath.Join(dir, "private.key"),
	}
}

func assertKeyFile(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, KeyFileMode, info.Mode().Perm(), "mode of %s", path)
	}
}

func TestKeysExist(t *testing.T) {
	paths := testPaths(t)

	exists, err := KeysExist(paths)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(paths.Private, []byte("x"), 0600))
	exists, err = KeysExist(paths)
	require.NoError(t, err)
	assert.True(t, exists, "one file is enough for the pair to exist")

	require.NoError(t, os.Remove(paths.Private))
	require.NoError(t, os.WriteFile(paths.Public, []byte("x"), 0600))
	exists, err = KeysExist(paths)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWrite_NewPair(t *testing.T) {
	paths := testPaths(t)

	require.NoError(t, Write(paths, testPair, false))

	assertKeyFile(t, paths.Public, "public key data")
	assertKeyFile(t, paths.Private, "private key data")
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		Public:  filepath.Join(dir, "var", "oauth", "public.key"),
		Private: filepath.Join(dir, "var", "oauth", "private.key"),
	}

	require.NoError(t, Write(paths, testPair, false))
	assertKeyFile(t, paths.Private, "private key data")
}

func TestWrite_RefusesExistingWithoutForce(t *testing.T) {
	paths := testPaths(t)
	require.NoError(t, os.WriteFile(paths.Public, []byte("old public"), 0644))  // #nosec G306
	require.NoError(t, os.WriteFile(paths.Private, []byte("old private"), 0644)) // #nosec G306

	err := Write(paths, testPair, false)
	assert.ErrorIs(t, err, kerrors.ErrKeyFilesExist)

	for path, want := range map[string]string{paths.Public: "old public", paths.Private: "old private"} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}

func TestWrite_RefusesWhenOnlyOneExists(t *testing.T) {
	paths := testPaths(t)
	require.NoError(t, os.WriteFile(paths.Private, []byte("old private"), 0600))

	err := Write(paths, testPair, false)
	assert.ErrorIs(t, err, kerrors.ErrKeyFilesExist)
	assert.NoFileExists(t, paths.Public)
}

func TestWrite_ForceOverwrites(t *testing.T) {
	paths := testPaths(t)
	require.NoError(t, os.WriteFile(paths.Public, []byte("old public"), 0644))  // #nosec G306
	require.NoError(t, os.WriteFile(paths.Private, []byte("old private"), 0644)) // #nosec G306

	require.NoError(t, Write(paths, testPair, true))

	assertKeyFile(t, paths.Public, "public key data")
	assertKeyFile(t, paths.Private, "private key data")
}

func TestWrite_LeavesNoTemporaryFiles(t *testing.T) {
	paths := testPaths(t)

	require.NoError(t, Write(paths, testPair, false))

	entries, err := os.ReadDir(filepath.Dir(paths.Public))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWrite_RejectsSamePath(t *testing.T) {
	paths := testPaths(t)
	paths.Private = paths.Public

	assert.Error(t, Write(paths, testPair, true))
	assert.NoFileExists(t, paths.Public)
}
