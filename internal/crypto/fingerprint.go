package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Fingerprint returns a short hex fingerprint of a public value.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}

// FingerprintInt fingerprints the big-endian magnitude of x, e.g. an RSA modulus.
func FingerprintInt(x *big.Int) string {
	return Fingerprint(x.Bytes())
}
