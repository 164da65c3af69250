package bench

import (
	"context"
	"math"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/ziliangpeng/rspki/internal/domain"
)

const (
	baseBits = 128
	growth   = 1.05

	// DefaultRuns is the number of timings taken per size.
	DefaultRuns = 10

	// DefaultSizes is the number of sizes in the default sweep.
	DefaultSizes = 64
)

// Sizes returns count bit lengths int(128 * 1.05^i) for i in [0, count).
func Sizes(count int) []int {
	sizes := make([]int, 0, count)
	for i := 0; i < count; i++ {
		sizes = append(sizes, int(baseBits*math.Pow(growth, float64(i))))
	}
	return sizes
}

// Service runs timing sweeps against a prime generator.
type Service struct {
	primes domain.PrimeGenerator
	log    log.Interface
}

// New returns a benchmark service for primes.
func New(primes domain.PrimeGenerator, l log.Interface) *Service {
	if l == nil {
		l = log.Log
	}
	return &Service{primes: primes, log: l}
}

// Run generates runs primes for every size and returns one result per size.
// report, if non-nil, is called as soon as each size completes.
func (s *Service) Run(
	ctx context.Context,
	sizes []int,
	runs int,
	report func(domain.BenchResult),
) ([]domain.BenchResult, error) {
	if runs < 1 {
		return nil, errors.Errorf("runs must be positive, got %d", runs)
	}

	results := make([]domain.BenchResult, 0, len(sizes))
	for _, bits := range sizes {
		res := domain.BenchResult{Bits: bits, Runs: runs}
		var total time.Duration
		for i := 0; i < runs; i++ {
			start := time.Now()
			if _, err := s.primes.Generate(ctx, bits); err != nil {
				return results, errors.Wrapf(err, "benchmarking %d bits", bits)
			}
			took := time.Since(start)

			total += took
			if i == 0 || took > res.Max {
				res.Max = took
			}
			if i == 0 || took < res.Min {
				res.Min = took
			}
		}
		res.Avg = total / time.Duration(runs)

		s.log.WithFields(log.Fields{
			"bits": bits,
			"avg":  res.Avg,
		}).Debug("size done")
		if report != nil {
			report(res)
		}
		results = append(results, res)
	}
	return results, nil
}

// Compile-time assertion that Service implements domain.BenchService.
var _ domain.BenchService = (*Service)(nil)
