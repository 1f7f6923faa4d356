package crypto

import (
	"crypto/rand"
	"io"
)

// randReader is the random source used for key generation and ReadRandom.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// ReadRandom fills a fresh n-byte buffer from the entropy source. A short
// or failed read returns the error with no buffer; partially random
// output is never exposed.
func ReadRandom(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(reader(), buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// SetRandReaderForTesting substitutes the entropy source used by
// ReadRandom and key generation. Intended for deterministic tests only;
// the returned function restores the original source. Since this package
// is internal, external code cannot reach it.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
