// Package arith implements the extended Euclidean algorithm and the modular
// inverse built on it.
package arith
