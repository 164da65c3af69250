package primes

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// DefaultRounds is the number of Miller-Rabin rounds used for key material.
// A composite survives k rounds with probability at most 4^-k.
const DefaultRounds = 40

var three = big.NewInt(3)

// IsProbablePrime runs k rounds of the Miller-Rabin test on n, drawing each
// witness uniformly from [2, n-2] with src.
//
// A false result is a proof of compositeness. A true result means n is
// probably prime. Only a failure of src is reported as an error. k < 1
// selects DefaultRounds.
func IsProbablePrime(src io.Reader, n *big.Int, k int) (bool, error) {
	if k < 1 {
		k = DefaultRounds
	}

	switch {
	case n.Cmp(two) < 0:
		return false, nil
	case n.Cmp(two) == 0, n.Cmp(three) == 0:
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}

	// n-1 = d * 2^s with d odd.
	nm1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nm1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// Witnesses come from [0, n-3) shifted by 2.
	span := new(big.Int).Sub(n, three)
	x := new(big.Int)

	for i := 0; i < k; i++ {
		a, err := rand.Int(src, span)
		if err != nil {
			return false, errors.Wrap(err, "drawing witness")
		}
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}

		passed := false
		for j := 0; j < s-1; j++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nm1) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false, nil
		}
	}
	return true, nil
}
