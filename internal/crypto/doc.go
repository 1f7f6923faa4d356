// Package crypto binds the low-level primitives used by sealbox:
// XChaCha20-Poly1305 for authenticated encryption, X25519 for key
// exchange, Ed25519 for signatures, and BLAKE2b for hashing.
//
// Functions here validate raw byte-slice sizes and hide the primitive
// libraries (golang.org/x/crypto, cloudflare/circl) from the public API.
// Envelope layout, offset handling, and the public error taxonomy live
// in the root package.
package crypto
