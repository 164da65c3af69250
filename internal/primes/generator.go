package primes

import (
	"context"
	"io"
	"math/big"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/ziliangpeng/rspki/internal/crypto"
	"github.com/ziliangpeng/rspki/internal/domain"
)

// ErrAttemptsExhausted is returned when MaxAttempts candidates were rejected.
var ErrAttemptsExhausted = errors.New("prime search exhausted its attempts")

// Generator samples candidates until one passes the Miller-Rabin test.
type Generator struct {
	// Random feeds both candidate and witness selection; nil means the
	// system CSPRNG.
	Random io.Reader
	// Rounds is the Miller-Rabin round count; 0 means DefaultRounds.
	Rounds int
	// MaxAttempts caps the number of candidates per prime; 0 means no cap.
	MaxAttempts int
	// Log receives debug progress; nil means the package-level apex logger.
	Log log.Interface
}

// New returns a generator drawing from src with default rounds and no cap.
func New(src io.Reader) *Generator {
	return &Generator{Random: src, Rounds: DefaultRounds}
}

// Generate returns a probable prime of exactly bits bits.
//
// The search only stops on success, on ctx cancellation, on a failing random
// source, or when MaxAttempts is set and reached.
func (g *Generator) Generate(ctx context.Context, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.Wrapf(ErrInvalidBitLength, "got %d", bits)
	}

	for attempt := 1; g.MaxAttempts <= 0 || attempt <= g.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "after %d candidates", attempt-1)
		}

		n, err := Candidate(g.random(), bits)
		if err != nil {
			return nil, err
		}
		ok, err := IsProbablePrime(g.random(), n, g.Rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			g.logger().WithFields(log.Fields{
				"bits":     bits,
				"attempts": attempt,
			}).Debug("found probable prime")
			return n, nil
		}
	}
	return nil, errors.Wrapf(ErrAttemptsExhausted, "%d candidates of %d bits", g.MaxAttempts, bits)
}

func (g *Generator) random() io.Reader {
	if g.Random == nil {
		return crypto.SystemSource()
	}
	return g.Random
}

func (g *Generator) logger() log.Interface {
	if g.Log == nil {
		return log.Log
	}
	return g.Log
}

// Compile-time assertion that Generator implements domain.PrimeGenerator.
var _ domain.PrimeGenerator = (*Generator)(nil)
