package secrets

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"

	"golang.org/x/crypto/ssh"
)

const (
	// DefaultKeyLength is the RSA modulus length used when none is configured.
	DefaultKeyLength = 4096

	// MinKeyLength is the smallest modulus crypto/rsa will generate.
	MinKeyLength = 1024
)

// KeyPair holds a PEM encoded key pair. Both halves are always written together.
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// KeyGenerator creates key pairs of a given modulus length.
type KeyGenerator interface {
	GenerateKeyPair(bits int) (*KeyPair, error)
}

// RSAGenerator is the KeyGenerator backed by crypto/rsa.
type RSAGenerator struct{}

func (RSAGenerator) GenerateKeyPair(bits int) (*KeyPair, error) {
	return GenerateKeyPair(bits)
}

// GenerateKeyPair creates a new RSA key pair and PEM encodes both halves.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	if bits < MinKeyLength {
		return nil, fmt.Errorf("%w: %d bits, minimum is %d", kerrors.ErrInvalidKeyLength, bits, MinKeyLength)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	privPem := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	pubASN1, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	pubPem := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubASN1,
	})

	return &KeyPair{PublicKey: pubPem, PrivateKey: privPem}, nil
}

// Fingerprint returns the SHA256 fingerprint of a PEM encoded public key,
// e.g. "SHA256:nThbg6kXUpJWGl7E1IGOCspRomTxdCARLviKw6E5SY8".
func Fingerprint(publicPEM []byte) (string, error) {
	block, _ := pem.Decode(publicPEM)
	if block == nil || block.Type != "PUBLIC KEY" {
		return "", fmt.Errorf("failed to decode PEM block containing public key")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("failed to parse public key: %w", err)
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("failed to convert public key: %w", err)
	}
	return ssh.FingerprintSHA256(sshPub), nil
}
