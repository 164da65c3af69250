// Package rsakey assembles textbook RSA key pairs.
//
// A Generator draws two probable primes p and q, derives n = p*q and
// φ = (p-1)(q-1), checks that the public exponent is coprime with φ and
// inverts it to obtain the private exponent. A coprimality failure aborts
// generation with ErrCoprimeViolation; the primes are not redrawn.
//
// Keys are plain value types. No padding, encoding or persistence is
// provided.
package rsakey
