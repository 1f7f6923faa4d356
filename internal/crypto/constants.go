package crypto

import (
	"github.com/cloudflare/circl/dh/x25519"
	"github.com/cloudflare/circl/sign/ed25519"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the size of an XChaCha20-Poly1305 key in bytes.
	KeySize = chacha20poly1305.KeySize
	// NonceSize is the size of an XChaCha20-Poly1305 nonce in bytes.
	NonceSize = chacha20poly1305.NonceSizeX
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = chacha20poly1305.Overhead

	// PrefixAlign is the required alignment of an envelope prefix in bytes.
	PrefixAlign = 8

	// PublicKeySize is the size of an X25519 public key in bytes.
	PublicKeySize = x25519.Size
	// SecretKeySize is the size of an X25519 secret key in bytes.
	SecretKeySize = x25519.Size
	// SessionKeySize is the size of a derived session key in bytes.
	SessionKeySize = KeySize

	// SigningPublicKeySize is the size of an Ed25519 public key in bytes.
	SigningPublicKeySize = ed25519.PublicKeySize
	// SigningSecretKeySize is the size of an Ed25519 secret key in bytes.
	SigningSecretKeySize = ed25519.PrivateKeySize
	// SignatureSize is the size of an Ed25519 signature in bytes.
	SignatureSize = ed25519.SignatureSize

	// HashSize is the size of the default BLAKE2b digest in bytes.
	HashSize = blake2b.Size
)
