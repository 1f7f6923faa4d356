package sealbox

import (
	"fmt"
	"hash"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// HashSize is the size of the default BLAKE2b digest in bytes.
const HashSize = crypto.HashSize

// Hash computes the 64-byte unkeyed BLAKE2b-512 digest of data.
func Hash(data []byte) []byte {
	return crypto.Sum(data)
}

// NewHash returns an incremental BLAKE2b digest producing size bytes,
// between 1 and HashSize. key may be nil; a key of up to HashSize bytes
// turns the digest into a MAC. Write data in as many fragments as
// needed, then call Sum(nil) for the final value.
func NewHash(size int, key []byte) (hash.Hash, error) {
	if size < 1 || size > HashSize {
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", ErrInvalidHashSize, size, HashSize)
	}

	if len(key) > HashSize {
		return nil, fmt.Errorf("%w: got %d, want at most %d", ErrInvalidKeySize, len(key), HashSize)
	}

	return crypto.NewHash(size, key)
}
