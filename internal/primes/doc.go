// Package primes generates probable primes by rejection sampling.
//
// Candidate draws random odd integers of an exact bit length,
// IsProbablePrime applies the Miller-Rabin test and Generator loops over
// both until a candidate survives. Every random draw comes from an explicit
// io.Reader so runs can be reproduced with a seeded source.
package primes
