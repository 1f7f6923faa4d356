package crypto

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// NewHash returns an incremental BLAKE2b digest producing size bytes
// (1 to HashSize). A non-nil key of up to HashSize bytes turns the digest
// into a MAC.
func NewHash(size int, key []byte) (hash.Hash, error) {
	return blake2b.New(size, key)
}

// Sum computes the 64-byte unkeyed BLAKE2b-512 digest of data.
func Sum(data []byte) []byte {
	sum := blake2b.Sum512(data)
	return sum[:]
}
