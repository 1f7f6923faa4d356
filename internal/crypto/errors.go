package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the symmetric key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSecretKeySize is returned when the secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPublicKey is returned when the peer public key is a
	// low-order point producing an all-zero shared secret.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrAuthenticationFailed is returned when tag verification fails.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSignatureInvalid is returned when signature verification fails.
	ErrSignatureInvalid = errors.New("signature verification failed")
)
