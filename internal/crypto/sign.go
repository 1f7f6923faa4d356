package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"
)

// GenerateSigningKeypair creates a new Ed25519 keypair from the entropy
// source.
func GenerateSigningKeypair() (publicKey, secretKey []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(reader())
	if err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

// SigningPublicKey derives the Ed25519 public key matching secretKey.
// The public key is embedded in the second half of the 64-byte secret key.
func SigningPublicKey(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SigningSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SigningSecretKeySize)
	}

	out := make([]byte, SigningPublicKeySize)
	copy(out, secretKey[SigningSecretKeySize-SigningPublicKeySize:])
	return out, nil
}

// SignMessage signs message with secretKey, returning a 64-byte signature.
func SignMessage(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != SigningSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SigningSecretKeySize)
	}

	return ed25519.Sign(ed25519.PrivateKey(secretKey), message), nil
}

// VerifyMessage checks signature over message against publicKey.
func VerifyMessage(publicKey, message, signature []byte) error {
	if len(publicKey) != SigningPublicKeySize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), SigningPublicKeySize)
	}

	if !ed25519.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return ErrSignatureInvalid
	}

	return nil
}
