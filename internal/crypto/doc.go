// Package crypto exposes the minimal primitives used by rspki.
//
// Contents
//
//   - Random bit sources: the system CSPRNG (SystemSource), a reproducible
//     ChaCha20 keystream derived from a seed via HKDF (NewSeededSource) and a
//     mutex wrapper for sharing one source between goroutines (Locked)
//   - Best-effort memory wiping for sensitive byte slices and big integers
//     (Wipe, WipeInt)
//   - Short fingerprints of public values for display/logging (Fingerprint,
//     FingerprintInt)
//
// # Notes
//
// Every source is a plain io.Reader, so it can be handed to crypto/rand.Int
// and friends. Seeded sources exist for tests and reproducible runs; they
// must not be used to mint keys that protect anything.
package crypto
