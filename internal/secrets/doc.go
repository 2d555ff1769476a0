// Package secrets generates the cryptographic material oauth2keys persists.
//
// # Symmetric Keys
//
// GenerateSymmetricKey draws 32 bytes from crypto/rand. The OAuth2 server
// reads the key as base64 text, so Secret exposes Base64() for storage and
// display. A failing random source is reported as ErrEntropySource and is
// never retried or replaced with a weaker source.
//
// # Key Pairs
//
// GenerateKeyPair creates an RSA key pair (4096 bits by default) and returns
// both halves PEM encoded:
//   - private key: PKCS#1, "RSA PRIVATE KEY"
//   - public key: PKIX, "PUBLIC KEY"
//
// The KeyGenerator interface lets callers treat the RSA primitive as a black
// box and substitute a fake in tests.
//
// Fingerprint renders the public key's SHA256 fingerprint in OpenSSH notation
// so operators can compare keys without opening the files.
package secrets
