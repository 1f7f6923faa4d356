package sealbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
//
// The sentinels fall into three classes. The ErrInvalid* family reports
// caller programming errors (wrong sizes, bad offsets) and should not be
// retried. ErrAuthenticationFailed and ErrSignatureInvalid are expected,
// recoverable outcomes when handling corrupted or adversarial input.
// ErrEntropyUnavailable is an environment failure.
var (
	// ErrInvalidKeySize is returned when a symmetric key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce is not exactly 24 bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidPrefixSize is returned when an envelope prefix length is
	// not a multiple of PrefixAlign.
	ErrInvalidPrefixSize = errors.New("invalid prefix size")

	// ErrInvalidOffset is returned when an Unlock offset is negative or
	// leaves fewer than TagSize bytes of envelope.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrInvalidSecretKeySize is returned when a secret key has the wrong size.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when a public key has the wrong size.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPublicKey is returned when a peer public key is a
	// low-order point that would produce an all-zero shared secret.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSignatureSize is returned when a signature has the wrong size.
	ErrInvalidSignatureSize = errors.New("invalid signature size")

	// ErrInvalidHashSize is returned when a requested digest size is out of range.
	ErrInvalidHashSize = errors.New("invalid hash size")

	// ErrInvalidLength is returned when a requested byte count is negative.
	ErrInvalidLength = errors.New("invalid length")

	// ErrAuthenticationFailed is returned when tag verification fails
	// during Unlock. It signals corruption, tampering, or a wrong
	// key/nonce; no plaintext is ever returned alongside it.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSignatureInvalid is returned when signature verification fails.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrEntropyUnavailable is returned when the random source cannot
	// supply bytes. No partially random output is ever returned.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)

// SealboxError is implemented by all sealbox error types.
type SealboxError interface {
	error
	SealboxError() // marker method
}

// AuthenticationError reports a failed tag verification during Unlock.
type AuthenticationError struct {
	EnvelopeLen int
	Offset      int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %d-byte envelope at offset %d", e.EnvelopeLen, e.Offset)
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

// SealboxError implements the SealboxError interface.
func (e *AuthenticationError) SealboxError() {}

// EntropyError reports that the random source could not supply bytes.
type EntropyError struct {
	Requested int
	Err       error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("entropy source unavailable: reading %d bytes: %v", e.Requested, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntropyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EntropyError) Is(target error) bool {
	return target == ErrEntropyUnavailable
}

// SealboxError implements the SealboxError interface.
func (e *EntropyError) SealboxError() {}

// SignatureError reports a failed signature verification.
type SignatureError struct {
	MessageLen int
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("signature verification failed for %d-byte message", e.MessageLen)
}

// Is implements errors.Is for sentinel error matching.
func (e *SignatureError) Is(target error) bool {
	return target == ErrSignatureInvalid
}

// SealboxError implements the SealboxError interface.
func (e *SignatureError) SealboxError() {}
