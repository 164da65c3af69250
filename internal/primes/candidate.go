package primes

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidBitLength is returned for bit lengths below 2.
	ErrInvalidBitLength = errors.New("bit length must be at least 2")

	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Candidate draws a random odd integer of exactly bits bits from src.
//
// The value is uniform over [2^(bits-1), 2^bits) before the low bit is
// forced to 1, so the result always lies in [2^(bits-1)+1, 2^bits-1].
func Candidate(src io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.Wrapf(ErrInvalidBitLength, "got %d", bits)
	}

	// The interval [2^(bits-1), 2^bits) has 2^(bits-1) elements.
	base := new(big.Int).Lsh(one, uint(bits-1))
	n, err := rand.Int(src, base)
	if err != nil {
		return nil, errors.Wrap(err, "drawing candidate")
	}
	n.Add(n, base)
	return n.Or(n, one), nil
}
