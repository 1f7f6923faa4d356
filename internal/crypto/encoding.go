package crypto

import (
	"encoding/base64"
	"encoding/hex"
)

// ToHex encodes bytes as lowercase hex. Used for keys and nonces on the
// CLI surface.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hex string to bytes.
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// ToBase64URL encodes bytes to URL-safe base64 without padding. Used for
// envelopes and signatures, which are bulkier than keys.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 (with or without padding) to bytes.
func FromBase64URL(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	return base64.URLEncoding.DecodeString(s)
}
