package types

import (
	"fmt"
	"math/big"
)

// PublicKey is the public half (n, e) of an RSA key pair.
type PublicKey struct {
	N *big.Int `json:"n"`
	E *big.Int `json:"e"`
}

// String renders the key as the tuple "(n, e)" in decimal.
func (k PublicKey) String() string { return fmt.Sprintf("(%s, %s)", k.N, k.E) }

// PrivateKey is the private half (n, d) of an RSA key pair.
type PrivateKey struct {
	N *big.Int `json:"n"`
	D *big.Int `json:"d"`
}

// String renders the key as the tuple "(n, d)" in decimal.
func (k PrivateKey) String() string { return fmt.Sprintf("(%s, %s)", k.N, k.D) }

// KeyPair holds both halves of a key; they share the modulus n.
type KeyPair struct {
	Public  PublicKey  `json:"public"`
	Private PrivateKey `json:"private"`
}
