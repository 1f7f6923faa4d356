// Package sealbox provides a minimal cryptographic services layer:
// authenticated encryption with a flexible envelope layout, and
// X25519-based key exchange for deriving shared session keys.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - XChaCha20-Poly1305: Authenticated encryption (AEAD) with a 32-byte
//     key, 24-byte nonce, and 16-byte authentication tag. The extended
//     nonce is large enough to be drawn at random safely.
//
//   - X25519: Elliptic-curve Diffie-Hellman for key exchange. The raw
//     shared point is hashed with HChaCha20 so session keys are
//     uniformly distributed.
//
//   - Ed25519: Digital signatures for authenticating messages.
//
//   - BLAKE2b: Cryptographic hashing, one-shot or incremental, with an
//     optional key for MAC use.
//
// # Envelopes
//
// [Lock] produces an envelope laid out as prefix ‖ ciphertext ‖ tag. The
// optional prefix is a cleartext framing convenience (a protocol version,
// a message counter); its length must be a multiple of eight bytes so
// prefixed payloads stay aligned for any caller-side layout. [Unlock]
// takes an offset to the start of the ciphertext and never inspects the
// bytes before it. The tag is always the trailing sixteen bytes.
//
// Basic usage:
//
//	key, _ := sealbox.GetRandomBytes(sealbox.KeySize)
//	nonce, _ := sealbox.GetRandomBytes(sealbox.NonceSize)
//
//	envelope, err := sealbox.Lock(key, nonce, []byte("attack at dawn"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := sealbox.Unlock(key, nonce, envelope, 0)
//	if errors.Is(err, sealbox.ErrAuthenticationFailed) {
//	    // corrupted, tampered, or wrong key/nonce
//	}
//
// # Key Exchange
//
// [GenerateKeypair] returns a fresh X25519 keypair. After exchanging
// public keys out of band, both parties call [DeriveSessionKey] with
// their own secret key first and the peer's public key second and obtain
// the same 32-byte session key, usable directly with [Lock] and [Unlock]:
//
//	pkA, skA, _ := sealbox.GenerateKeypair()
//	pkB, skB, _ := sealbox.GenerateKeypair()
//
//	kA, _ := sealbox.DeriveSessionKey(skA, pkB)
//	kB, _ := sealbox.DeriveSessionKey(skB, pkA)
//	// kA and kB are equal
//
// # Critical Security Notes
//
// Nonces MUST be unique for every [Lock] call with the same key. Nonce
// reuse completely breaks the confidentiality of XChaCha20-Poly1305 and
// allows forgeries. The package does not track nonces; uniqueness is the
// caller's responsibility. With 24-byte nonces, drawing each nonce from
// [GetRandomBytes] is a safe policy.
//
// The envelope prefix is neither encrypted nor authenticated. Anything
// that must be integrity-protected belongs in the plaintext, not the
// prefix.
//
// Keep secret keys secure. They should never be logged, transmitted in
// plaintext, or stored in version control.
package sealbox
