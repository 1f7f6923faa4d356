package sealbox

import (
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

const (
	// KeySize is the size of a symmetric key in bytes.
	KeySize = crypto.KeySize
	// NonceSize is the size of a nonce in bytes.
	NonceSize = crypto.NonceSize
	// TagSize is the size of an authentication tag in bytes.
	TagSize = crypto.TagSize
	// PrefixAlign is the required alignment of an envelope prefix in bytes.
	PrefixAlign = crypto.PrefixAlign
)

// Lock encrypts and authenticates plaintext with XChaCha20-Poly1305 and
// returns a fresh envelope laid out as prefix ‖ ciphertext ‖ tag, of
// length len(prefix) + len(plaintext) + TagSize.
//
// The prefix may be nil. When present, its length must be a multiple of
// PrefixAlign; it is copied verbatim to the front of the envelope and is
// neither encrypted nor authenticated. It exists as a framing
// convenience for cleartext headers such as a protocol version or a
// message counter.
//
// The nonce must be unique for every call with the same key; see the
// package documentation.
func Lock(key, nonce, plaintext, prefix []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	if len(prefix)%PrefixAlign != 0 {
		return nil, fmt.Errorf("%w: got %d, want a multiple of %d", ErrInvalidPrefixSize, len(prefix), PrefixAlign)
	}

	envelope := make([]byte, len(prefix), len(prefix)+len(plaintext)+TagSize)
	copy(envelope, prefix)

	return crypto.Seal(envelope, key, nonce, plaintext)
}

// Unlock verifies and decrypts the ciphertext ‖ tag portion of envelope
// starting at offset, returning the recovered plaintext of length
// len(envelope) - offset - TagSize. Bytes before offset (a prefix) are
// never inspected, decrypted, or returned.
//
// A negative offset, or one leaving fewer than TagSize bytes, is
// rejected with ErrInvalidOffset. A tag mismatch is reported as an
// *AuthenticationError matching ErrAuthenticationFailed; this is an
// expected outcome for corrupted or adversarial input, and no partial
// plaintext is ever returned with it.
func Unlock(key, nonce, envelope []byte, offset int) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	if offset < 0 || len(envelope)-offset < TagSize {
		return nil, fmt.Errorf("%w: offset %d in %d-byte envelope leaves no %d-byte tag",
			ErrInvalidOffset, offset, len(envelope), TagSize)
	}

	plaintext, err := crypto.Open(key, nonce, envelope[offset:])
	if err != nil {
		return nil, &AuthenticationError{EnvelopeLen: len(envelope), Offset: offset}
	}

	return plaintext, nil
}
