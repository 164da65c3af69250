package arith

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrNoInverse is returned when gcd(a, m) != 1.
	ErrNoInverse = errors.New("modular inverse does not exist")
	// ErrInvalidModulus is returned for m <= 0.
	ErrInvalidModulus = errors.New("modulus must be positive")

	one = big.NewInt(1)
)

// ModInverse returns d in [0, m) with a*d = 1 (mod m).
//
// a is reduced into [0, m) first, so negative a is accepted. Every a has
// inverse 0 modulo 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidModulus, "m = %s", m)
	}

	g, x, _ := Egcd(new(big.Int).Mod(a, m), m)
	if g.Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrNoInverse, "gcd(%s, %s) = %s", a, m, g)
	}
	return x.Mod(x, m), nil
}
