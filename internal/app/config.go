package app

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Bits        int    // bit length of each generated prime
	Rounds      int    // Miller-Rabin rounds per candidate
	MaxAttempts int    // candidate cap per prime; 0 means unbounded
	Seed        string // non-empty selects a reproducible random source
	Parallel    bool   // draw p and q concurrently
	BenchRuns   int    // timings per bench size
	BenchSizes  int    // number of bench sizes
	BenchOut    string // optional JSON file for bench results
}

// Configuration keys shared by flags, env vars and the config file.
const (
	KeyBits        = "bits"
	KeyRounds      = "rounds"
	KeyMaxAttempts = "max-attempts"
	KeySeed        = "seed"
	KeyParallel    = "parallel"
	KeyBenchRuns   = "bench.runs"
	KeyBenchSizes  = "bench.sizes"
	KeyBenchOut    = "bench.out"
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBits, 1024)
	v.SetDefault(KeyRounds, 40)
	v.SetDefault(KeyMaxAttempts, 0)
	v.SetDefault(KeySeed, "")
	v.SetDefault(KeyParallel, false)
	v.SetDefault(KeyBenchRuns, 10)
	v.SetDefault(KeyBenchSizes, 64)
	v.SetDefault(KeyBenchOut, "")
}

// LoadConfig reads a Config from v and validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Bits:        v.GetInt(KeyBits),
		Rounds:      v.GetInt(KeyRounds),
		MaxAttempts: v.GetInt(KeyMaxAttempts),
		Seed:        v.GetString(KeySeed),
		Parallel:    v.GetBool(KeyParallel),
		BenchRuns:   v.GetInt(KeyBenchRuns),
		BenchSizes:  v.GetInt(KeyBenchSizes),
		BenchOut:    v.GetString(KeyBenchOut),
	}
	return cfg, cfg.Validate()
}

// Validate rejects values no generator can work with.
func (c Config) Validate() error {
	switch {
	case c.Bits < 2:
		return errors.Errorf("%s must be at least 2, got %d", KeyBits, c.Bits)
	case c.Rounds < 1:
		return errors.Errorf("%s must be positive, got %d", KeyRounds, c.Rounds)
	case c.MaxAttempts < 0:
		return errors.Errorf("%s must not be negative, got %d", KeyMaxAttempts, c.MaxAttempts)
	case c.BenchRuns < 1:
		return errors.Errorf("%s must be positive, got %d", KeyBenchRuns, c.BenchRuns)
	case c.BenchSizes < 0:
		return errors.Errorf("%s must not be negative, got %d", KeyBenchSizes, c.BenchSizes)
	}
	return nil
}
