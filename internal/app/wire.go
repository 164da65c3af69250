package app

import (
	"io"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/ziliangpeng/rspki/internal/crypto"
	"github.com/ziliangpeng/rspki/internal/domain"
	"github.com/ziliangpeng/rspki/internal/primes"
	"github.com/ziliangpeng/rspki/internal/rsakey"
	benchsvc "github.com/ziliangpeng/rspki/internal/services/bench"
	keygensvc "github.com/ziliangpeng/rspki/internal/services/keygen"
	"github.com/ziliangpeng/rspki/internal/store"
)

// Wire bundles the random source, generators and services for the CLI.
type Wire struct {
	Random  io.Reader
	Primes  domain.PrimeGenerator
	Keys    domain.KeyService
	Bench   domain.BenchService
	Results domain.BenchStore // nil unless Config.BenchOut is set
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, l log.Interface) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if l == nil {
		l = log.Log
	}

	// One source feeds candidates and witnesses for every prime.
	src := crypto.SystemSource()
	if cfg.Seed != "" {
		seeded, err := crypto.NewSeededSource([]byte(cfg.Seed))
		if err != nil {
			return nil, errors.Wrap(err, "building seeded source")
		}
		src = seeded
		l.WithField("parallel", cfg.Parallel).Warn("using a seeded random source; keys are reproducible and must not be used for real")
		if cfg.Parallel {
			l.Warn("parallel generation interleaves the seeded stream; output is not reproducible")
		}
	}
	src = crypto.Locked(src)

	pg := &primes.Generator{
		Random:      src,
		Rounds:      cfg.Rounds,
		MaxAttempts: cfg.MaxAttempts,
		Log:         l,
	}
	kg := &rsakey.Generator{
		Primes:   pg,
		Parallel: cfg.Parallel,
		Log:      l,
	}

	w := &Wire{
		Random: src,
		Primes: pg,
		Keys:   keygensvc.New(pg, kg, l),
		Bench:  benchsvc.New(pg, l),
	}
	if cfg.BenchOut != "" {
		w.Results = store.NewBenchFileStore(cfg.BenchOut)
	}
	return w, nil
}
