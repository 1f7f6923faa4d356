package sealbox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

func TestGenerateKeypair(t *testing.T) {
	publicKey, secretKey, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	if len(publicKey) != PublicKeySize {
		t.Errorf("public key size = %d, want %d", len(publicKey), PublicKeySize)
	}

	if len(secretKey) != SecretKeySize {
		t.Errorf("secret key size = %d, want %d", len(secretKey), SecretKeySize)
	}

	// The returned public key must match independent derivation.
	derived, err := DerivePublicKey(secretKey)
	if err != nil {
		t.Fatalf("DerivePublicKey() error = %v", err)
	}

	if !bytes.Equal(derived, publicKey) {
		t.Error("DerivePublicKey() does not match the returned public key")
	}
}

func TestGenerateKeypair_Uniqueness(t *testing.T) {
	pk1, sk1, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	pk2, sk2, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	if bytes.Equal(sk1, sk2) {
		t.Error("generated keypairs have identical secret keys")
	}

	if bytes.Equal(pk1, pk2) {
		t.Error("generated keypairs have identical public keys")
	}
}

func TestGenerateKeypair_EntropyUnavailable(t *testing.T) {
	restore := crypto.SetRandReaderForTesting(failingReader{})
	defer restore()

	_, _, err := GenerateKeypair()
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("expected ErrEntropyUnavailable, got %v", err)
	}
}

func TestGenerateKeypairFrom(t *testing.T) {
	src := fixedSource{b: 0x42}

	publicKey, secretKey, err := GenerateKeypairFrom(src)
	if err != nil {
		t.Fatalf("GenerateKeypairFrom() error = %v", err)
	}

	want := bytes.Repeat([]byte{0x42}, SecretKeySize)
	if !bytes.Equal(secretKey, want) {
		t.Error("secret key was not drawn from the provided source")
	}

	derived, err := DerivePublicKey(secretKey)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(derived, publicKey) {
		t.Error("public key does not match the drawn secret key")
	}
}

func TestGenerateKeypairFrom_SourceError(t *testing.T) {
	errSource := errors.New("source exhausted")

	_, _, err := GenerateKeypairFrom(errorSource{err: errSource})
	if !errors.Is(err, errSource) {
		t.Errorf("expected source error to pass through, got %v", err)
	}
}

func TestDerivePublicKey_Deterministic(t *testing.T) {
	secretKey := make([]byte, SecretKeySize)
	for i := range secretKey {
		secretKey[i] = byte(i + 1)
	}

	first, err := DerivePublicKey(secretKey)
	if err != nil {
		t.Fatalf("DerivePublicKey() error = %v", err)
	}

	second, err := DerivePublicKey(secretKey)
	if err != nil {
		t.Fatalf("DerivePublicKey() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("DerivePublicKey() is not deterministic")
	}
}

func TestDerivePublicKey_InvalidSize(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := DerivePublicKey(make([]byte, size))
		if !errors.Is(err, ErrInvalidSecretKeySize) {
			t.Errorf("size %d: expected ErrInvalidSecretKeySize, got %v", size, err)
		}
	}
}

func TestDeriveSessionKey_Symmetry(t *testing.T) {
	pkA, skA, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	pkB, skB, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	keyA, err := DeriveSessionKey(skA, pkB)
	if err != nil {
		t.Fatalf("DeriveSessionKey(skA, pkB) error = %v", err)
	}

	keyB, err := DeriveSessionKey(skB, pkA)
	if err != nil {
		t.Fatalf("DeriveSessionKey(skB, pkA) error = %v", err)
	}

	if !bytes.Equal(keyA, keyB) {
		t.Error("session keys differ across the two sides of the exchange")
	}

	if len(keyA) != SessionKeySize {
		t.Errorf("session key size = %d, want %d", len(keyA), SessionKeySize)
	}
}

func TestDeriveSessionKey_UsableWithLock(t *testing.T) {
	pkA, skA, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	pkB, skB, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	keyA, err := DeriveSessionKey(skA, pkB)
	if err != nil {
		t.Fatal(err)
	}

	keyB, err := DeriveSessionKey(skB, pkA)
	if err != nil {
		t.Fatal(err)
	}

	nonce, err := GetRandomBytes(NonceSize)
	if err != nil {
		t.Fatal(err)
	}

	envelope, err := Lock(keyA, nonce, []byte("session message"), nil)
	if err != nil {
		t.Fatalf("Lock() with session key error = %v", err)
	}

	plaintext, err := Unlock(keyB, nonce, envelope, 0)
	if err != nil {
		t.Fatalf("Unlock() with peer session key error = %v", err)
	}

	if string(plaintext) != "session message" {
		t.Errorf("plaintext = %q, want %q", plaintext, "session message")
	}
}

func TestDeriveSessionKey_InvalidSizes(t *testing.T) {
	_, secretKey := mustKeypair(t)

	if _, err := DeriveSessionKey(make([]byte, 16), make([]byte, PublicKeySize)); !errors.Is(err, ErrInvalidSecretKeySize) {
		t.Errorf("expected ErrInvalidSecretKeySize, got %v", err)
	}

	if _, err := DeriveSessionKey(secretKey, make([]byte, 16)); !errors.Is(err, ErrInvalidPublicKeySize) {
		t.Errorf("expected ErrInvalidPublicKeySize, got %v", err)
	}
}

func TestDeriveSessionKey_LowOrderPoint(t *testing.T) {
	_, secretKey := mustKeypair(t)

	// The all-zero public key is low order; the shared point degenerates.
	_, err := DeriveSessionKey(secretKey, make([]byte, PublicKeySize))
	if !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("expected ErrInvalidPublicKey, got %v", err)
	}
}

func mustKeypair(t *testing.T) (publicKey, secretKey []byte) {
	t.Helper()
	publicKey, secretKey, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}
	return publicKey, secretKey
}

// fixedSource returns buffers filled with a single byte value.
type fixedSource struct {
	b byte
}

func (s fixedSource) GetRandomBytes(n int) ([]byte, error) {
	return bytes.Repeat([]byte{s.b}, n), nil
}

// errorSource always fails.
type errorSource struct {
	err error
}

func (s errorSource) GetRandomBytes(n int) ([]byte, error) {
	return nil, s.err
}

// failingReader fails every read, simulating a dead entropy source.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy source closed")
}
