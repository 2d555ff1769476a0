package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"
)

// SymmetricKeyLength is the size of the encryption key in raw bytes.
const SymmetricKeyLength = 32

// randReader is the entropy source. Tests replace it to simulate failures.
var randReader io.Reader = rand.Reader

// Secret is an immutable symmetric key.
type Secret struct {
	raw []byte
}

// Bytes returns a copy of the raw key bytes.
func (s Secret) Bytes() []byte {
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out
}

// Base64 returns the key in standard base64, the form written to .env files.
func (s Secret) Base64() string {
	return base64.StdEncoding.EncodeToString(s.raw)
}

func (s Secret) String() string {
	return s.Base64()
}

// IsZero reports whether the secret was never generated.
func (s Secret) IsZero() bool {
	return len(s.raw) == 0
}

// GenerateSymmetricKey generates a new random 32-byte encryption key.
func GenerateSymmetricKey() (Secret, error) {
	key := make([]byte, SymmetricKeyLength)
	if _, err := io.ReadFull(randReader, key); err != nil {
		return Secret{}, fmt.Errorf("%w: %v", kerrors.ErrEntropySource, err)
	}
	return Secret{raw: key}, nil
}
