package types

import "time"

// Fingerprint is a short identifier for public values presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// BenchResult summarises repeated prime generation at one bit length.
type BenchResult struct {
	Bits int
	Runs int
	Avg  time.Duration
	Max  time.Duration
	Min  time.Duration
}
