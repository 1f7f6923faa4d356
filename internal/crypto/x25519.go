package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/dh/x25519"
	"golang.org/x/crypto/chacha20"
)

// PublicKey derives the X25519 public key matching secret. The scalar is
// clamped by the curve implementation, so any 32-byte value is a valid
// secret key.
func PublicKey(secret []byte) ([]byte, error) {
	if len(secret) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secret), SecretKeySize)
	}

	var sk, pk x25519.Key
	copy(sk[:], secret)
	x25519.KeyGen(&pk, &sk)

	out := make([]byte, PublicKeySize)
	copy(out, pk[:])
	return out, nil
}

// SessionKey computes the X25519 shared point between secret and public
// and hashes it into a uniformly distributed 32-byte key with HChaCha20
// over a zero input block, the same subkey derivation the XChaCha20
// construction uses internally.
//
// Low-order public keys yield an all-zero shared point and are rejected
// with ErrInvalidPublicKey rather than turned into a known-weak key.
func SessionKey(secret, public []byte) ([]byte, error) {
	if len(secret) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secret), SecretKeySize)
	}

	if len(public) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(public), PublicKeySize)
	}

	var sk, pk, shared x25519.Key
	copy(sk[:], secret)
	copy(pk[:], public)

	if !x25519.Shared(&shared, &sk, &pk) {
		return nil, ErrInvalidPublicKey
	}

	zero := make([]byte, 16)
	key, err := chacha20.HChaCha20(shared[:], zero)
	if err != nil {
		return nil, err
	}

	return key, nil
}
