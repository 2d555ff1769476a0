package secrets

import (
	"encoding/base64"
	"errors"
	"io"
	"testing"

	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

type shortReader struct{}

func (shortReader) Read(p []byte) (int, error) {
	if len(p) > 8 {
		p = p[:8]
	}
	return len(p), errors.New("unexpected EOF")
}

func withRandReader(t *testing.T, r io.Reader) {
	t.Helper()
	original := randReader
	randReader = r
	t.Cleanup(func() { randReader = original })
}

func TestGenerateSymmetricKey_Length(t *testing.T) {
	key, err := GenerateSymmetricKey()
	require.NoError(t, err)

	assert.Len(t, key.Bytes(), SymmetricKeyLength)
	assert.Len(t, key.Base64(), 44)

	decoded, err := base64.StdEncoding.DecodeString(key.Base64())
	require.NoError(t, err)
	assert.Equal(t, key.Bytes(), decoded)
	assert.Equal(t, key.Base64(), key.String())
}

func TestGenerateSymmetricKey_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		key, err := GenerateSymmetricKey()
		require.NoError(t, err)

		_, dup := seen[key.Base64()]
		require.False(t, dup, "generator returned a repeated key after %d draws", i)
		seen[key.Base64()] = struct{}{}
	}
}

func TestGenerateSymmetricKey_EntropyFailure(t *testing.T) {
	withRandReader(t, failingReader{})

	key, err := GenerateSymmetricKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kerrors.ErrEntropySource))
	assert.True(t, key.IsZero())
}

func TestGenerateSymmetricKey_ShortRead(t *testing.T) {
	withRandReader(t, shortReader{})

	_, err := GenerateSymmetricKey()
	assert.ErrorIs(t, err, kerrors.ErrEntropySource)
}

func TestSecretBytesReturnsCopy(t *testing.T) {
	key, err := GenerateSymmetricKey()
	require.NoError(t, err)

	b := key.Bytes()
	original := key.Base64()
	b[0] ^= 0xff

	assert.Equal(t, original, key.Base64())
}
