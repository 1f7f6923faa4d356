package sealbox

import (
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

const (
	// SigningPublicKeySize is the size of an Ed25519 public key in bytes.
	SigningPublicKeySize = crypto.SigningPublicKeySize
	// SigningSecretKeySize is the size of an Ed25519 secret key in bytes.
	SigningSecretKeySize = crypto.SigningSecretKeySize
	// SignatureSize is the size of an Ed25519 signature in bytes.
	SignatureSize = crypto.SignatureSize
)

// GenerateSigningKeypair creates a new Ed25519 signing keypair from the
// system entropy source.
func GenerateSigningKeypair() (publicKey, secretKey []byte, err error) {
	publicKey, secretKey, err = crypto.GenerateSigningKeypair()
	if err != nil {
		return nil, nil, &EntropyError{Requested: SigningSecretKeySize, Err: err}
	}
	return publicKey, secretKey, nil
}

// DeriveSigningPublicKey returns the Ed25519 public key matching
// secretKey. Deterministic, like DerivePublicKey.
func DeriveSigningPublicKey(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SigningSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SigningSecretKeySize)
	}

	return crypto.SigningPublicKey(secretKey)
}

// Sign signs message with secretKey and returns a 64-byte signature.
func Sign(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != SigningSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SigningSecretKeySize)
	}

	return crypto.SignMessage(secretKey, message)
}

// Verify checks that signature is a valid signature of message by the
// holder of publicKey. A mismatch is reported as a *SignatureError
// matching ErrSignatureInvalid; like a failed Unlock, this is an
// expected outcome for tampered input, not a programming error.
func Verify(publicKey, message, signature []byte) error {
	if len(publicKey) != SigningPublicKeySize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), SigningPublicKeySize)
	}

	if len(signature) != SignatureSize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidSignatureSize, len(signature), SignatureSize)
	}

	if err := crypto.VerifyMessage(publicKey, message, signature); err != nil {
		return &SignatureError{MessageLen: len(message)}
	}

	return nil
}
