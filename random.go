package sealbox

import (
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// RandomSource supplies cryptographically secure random bytes on demand.
// Implementations must be safe for concurrent use and must fail rather
// than return partially random or deterministic output.
type RandomSource interface {
	GetRandomBytes(n int) ([]byte, error)
}

// systemRandom reads from the operating system entropy source.
type systemRandom struct{}

func (systemRandom) GetRandomBytes(n int) ([]byte, error) {
	return GetRandomBytes(n)
}

// SystemRandom returns the RandomSource backed by the operating system
// entropy source (crypto/rand).
func SystemRandom() RandomSource {
	return systemRandom{}
}

// GetRandomBytes returns a fresh buffer of n cryptographically secure
// random bytes from the system entropy source. A read failure is
// reported as an *EntropyError matching ErrEntropyUnavailable; no
// partial buffer is ever returned.
func GetRandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidLength, n)
	}

	buf, err := crypto.ReadRandom(n)
	if err != nil {
		return nil, &EntropyError{Requested: n, Err: err}
	}

	return buf, nil
}
