package rsakey

import (
	"context"
	"math/big"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ziliangpeng/rspki/internal/arith"
	"github.com/ziliangpeng/rspki/internal/crypto"
	"github.com/ziliangpeng/rspki/internal/domain"
)

// DefaultExponent is the public exponent e = 2^16 + 1.
const DefaultExponent = 65537

var (
	// ErrCoprimeViolation is returned when gcd(e, φ) != 1.
	ErrCoprimeViolation = errors.New("public exponent and totient are not coprime")
	// ErrEqualPrimes is returned when p = q keeps recurring.
	ErrEqualPrimes = errors.New("could not draw two distinct primes")

	one = big.NewInt(1)
)

// maxRedraws bounds how often q is redrawn when it equals p.
const maxRedraws = 8

// Generator builds key pairs from a prime source.
type Generator struct {
	Primes domain.PrimeGenerator
	// Exponent overrides e; nil means DefaultExponent.
	Exponent *big.Int
	// Parallel draws p and q concurrently.
	Parallel bool
	// Log receives debug progress; nil means the package-level apex logger.
	Log log.Interface
}

// New returns a sequential generator using e = 65537.
func New(primes domain.PrimeGenerator) *Generator {
	return &Generator{Primes: primes}
}

// GenerateKey draws two primes of bits bits each and assembles a key pair
// with a modulus of 2*bits-1 or 2*bits bits.
func (g *Generator) GenerateKey(ctx context.Context, bits int) (domain.KeyPair, error) {
	p, q, err := g.drawPrimes(ctx, bits)
	if err != nil {
		return domain.KeyPair{}, err
	}

	for i := 0; p.Cmp(q) == 0; i++ {
		if i == maxRedraws {
			return domain.KeyPair{}, errors.Wrapf(ErrEqualPrimes, "%d bits", bits)
		}
		g.logger().WithField("bits", bits).Warn("p equals q, redrawing q")
		if q, err = g.Primes.Generate(ctx, bits); err != nil {
			return domain.KeyPair{}, errors.Wrap(err, "generating q")
		}
	}

	kp, err := FromPrimes(p, q, g.exponent())
	crypto.WipeInt(p)
	crypto.WipeInt(q)
	return kp, err
}

func (g *Generator) drawPrimes(ctx context.Context, bits int) (p, q *big.Int, err error) {
	if !g.Parallel {
		if p, err = g.Primes.Generate(ctx, bits); err != nil {
			return nil, nil, errors.Wrap(err, "generating p")
		}
		if q, err = g.Primes.Generate(ctx, bits); err != nil {
			return nil, nil, errors.Wrap(err, "generating q")
		}
		return p, q, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		p, err = g.Primes.Generate(ctx, bits)
		return errors.Wrap(err, "generating p")
	})
	eg.Go(func() (err error) {
		q, err = g.Primes.Generate(ctx, bits)
		return errors.Wrap(err, "generating q")
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return p, q, nil
}

// FromPrimes derives ((n, e), (n, d)) from the primes p and q.
//
// φ is wiped before returning and is not part of the result.
func FromPrimes(p, q, e *big.Int) (domain.KeyPair, error) {
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)
	defer crypto.WipeInt(phi)

	if g, _, _ := arith.Egcd(e, phi); g.Cmp(one) != 0 {
		return domain.KeyPair{}, errors.Wrapf(ErrCoprimeViolation, "gcd(e, φ) = %s for e = %s", g, e)
	}

	d, err := arith.ModInverse(e, phi)
	if err != nil {
		return domain.KeyPair{}, errors.Wrap(err, "deriving private exponent")
	}

	return domain.KeyPair{
		Public:  domain.PublicKey{N: n, E: new(big.Int).Set(e)},
		Private: domain.PrivateKey{N: new(big.Int).Set(n), D: d},
	}, nil
}

func (g *Generator) exponent() *big.Int {
	if g.Exponent == nil {
		return big.NewInt(DefaultExponent)
	}
	return g.Exponent
}

func (g *Generator) logger() log.Interface {
	if g.Log == nil {
		return log.Log
	}
	return g.Log
}

// Compile-time assertion that Generator implements domain.KeyGenerator.
var _ domain.KeyGenerator = (*Generator)(nil)
