package sealbox

import (
	"errors"
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

const (
	// PublicKeySize is the size of an X25519 public key in bytes.
	PublicKeySize = crypto.PublicKeySize
	// SecretKeySize is the size of an X25519 secret key in bytes.
	SecretKeySize = crypto.SecretKeySize
	// SessionKeySize is the size of a derived session key in bytes.
	SessionKeySize = crypto.SessionKeySize
)

// GenerateKeypair creates a new X25519 keypair from the system entropy
// source. The secret key is 32 uniformly random bytes (the curve
// implementation clamps the scalar internally); the public key is its
// deterministic counterpart.
func GenerateKeypair() (publicKey, secretKey []byte, err error) {
	return GenerateKeypairFrom(SystemRandom())
}

// GenerateKeypairFrom draws the secret key from src instead of the
// system entropy source. Errors from src are returned unchanged.
func GenerateKeypairFrom(src RandomSource) (publicKey, secretKey []byte, err error) {
	secretKey, err = src.GetRandomBytes(SecretKeySize)
	if err != nil {
		return nil, nil, err
	}

	if len(secretKey) != SecretKeySize {
		return nil, nil, fmt.Errorf("%w: source returned %d bytes, want %d",
			ErrInvalidSecretKeySize, len(secretKey), SecretKeySize)
	}

	publicKey, err = crypto.PublicKey(secretKey)
	if err != nil {
		return nil, nil, err
	}

	return publicKey, secretKey, nil
}

// DerivePublicKey returns the public key matching secretKey. The
// derivation is a pure scalar multiplication against the curve base
// point: same input, same output, no randomness.
func DerivePublicKey(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SecretKeySize)
	}

	return crypto.PublicKey(secretKey)
}

// DeriveSessionKey computes the Diffie-Hellman shared session key
// between the local secret key and the peer's public key. The argument
// order is always local-secret-first, peer-public-second. Both sides of
// an exchange derive the same key:
//
//	DeriveSessionKey(skA, pkB) == DeriveSessionKey(skB, pkA)
//
// The raw shared point is hashed with HChaCha20 so the session key is
// uniformly distributed and usable directly with Lock and Unlock. A
// low-order peer public key is rejected with ErrInvalidPublicKey.
func DeriveSessionKey(mySecretKey, theirPublicKey []byte) ([]byte, error) {
	if len(mySecretKey) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(mySecretKey), SecretKeySize)
	}

	if len(theirPublicKey) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(theirPublicKey), PublicKeySize)
	}

	sessionKey, err := crypto.SessionKey(mySecretKey, theirPublicKey)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPublicKey) {
			return nil, fmt.Errorf("%w: low-order point", ErrInvalidPublicKey)
		}
		return nil, err
	}

	return sessionKey, nil
}
