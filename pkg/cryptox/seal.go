package cryptox

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidPublicKey reports a public key that could not be decoded or
// is of an unsupported type.
var ErrInvalidPublicKey = errors.New("cryptox: invalid public key")

// ParsePublicKey decodes a base64 (standard encoding) DER-encoded PKIX
// RSA public key, the format clients supply in the public_key query
// parameter.
func ParsePublicKey(encoded string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}
	return rsaKey, nil
}

// Seal encrypts plaintext with RSA-OAEP (SHA-256) under the given public
// key so that only the holder of the matching private key can recover it.
// The ciphertext is returned base64 (standard encoding).
//
// The error path never includes the plaintext.
func Seal(plaintext string, key *rsa.PublicKey) (string, error) {
	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, key, []byte(plaintext), nil)
	if err != nil {
		return "", fmt.Errorf("cryptox: sealing failed: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// EncodePublicKey serialises an RSA public key into the base64 DER PKIX
// form accepted by ParsePublicKey. Primarily used by clients and tests.
func EncodePublicKey(key *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", fmt.Errorf("cryptox: failed to encode public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}
