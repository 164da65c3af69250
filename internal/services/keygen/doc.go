// Package keygen mints probable primes and RSA key pairs for the CLI.
//
// It wraps the prime and key generators with logging and reports a short
// fingerprint of each new modulus.
package keygen
