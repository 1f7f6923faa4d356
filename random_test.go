package sealbox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

func TestGetRandomBytes(t *testing.T) {
	for _, n := range []int{0, 1, 24, 32, 4096} {
		buf, err := GetRandomBytes(n)
		if err != nil {
			t.Fatalf("GetRandomBytes(%d) error = %v", n, err)
		}
		if len(buf) != n {
			t.Errorf("GetRandomBytes(%d) returned %d bytes", n, len(buf))
		}
	}
}

func TestGetRandomBytes_Independent(t *testing.T) {
	a, err := GetRandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}

	b, err := GetRandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a, b) {
		t.Error("two 32-byte draws returned identical output")
	}
}

func TestGetRandomBytes_NegativeCount(t *testing.T) {
	_, err := GetRandomBytes(-1)
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

func TestGetRandomBytes_EntropyUnavailable(t *testing.T) {
	restore := crypto.SetRandReaderForTesting(failingReader{})
	defer restore()

	buf, err := GetRandomBytes(32)
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("expected ErrEntropyUnavailable, got %v", err)
	}
	if buf != nil {
		t.Error("buffer returned alongside entropy failure")
	}
}

func TestGetRandomBytes_ShortRead(t *testing.T) {
	restore := crypto.SetRandReaderForTesting(bytes.NewReader(make([]byte, 8)))
	defer restore()

	// The source dries up after 8 bytes; no partial buffer may escape.
	buf, err := GetRandomBytes(32)
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("expected ErrEntropyUnavailable, got %v", err)
	}
	if buf != nil {
		t.Error("partial buffer returned")
	}
}

func TestSystemRandom(t *testing.T) {
	var src RandomSource = SystemRandom()

	buf, err := src.GetRandomBytes(16)
	if err != nil {
		t.Fatalf("GetRandomBytes() error = %v", err)
	}

	if len(buf) != 16 {
		t.Errorf("returned %d bytes, want 16", len(buf))
	}
}
