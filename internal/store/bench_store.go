package store

import (
	"math"
	"sync"
	"time"

	"github.com/ziliangpeng/rspki/internal/domain"
)

// benchRecord is the on-disk form of a domain.BenchResult.
type benchRecord struct {
	Bits       int     `json:"bits"`
	Runs       int     `json:"runs"`
	AvgSeconds float64 `json:"avg_seconds"`
	MaxSeconds float64 `json:"max_seconds"`
	MinSeconds float64 `json:"min_seconds"`
}

// BenchFileStore keeps the latest benchmark sweep in a single JSON file.
type BenchFileStore struct {
	path string
	mu   sync.Mutex
}

// NewBenchFileStore returns a BenchFileStore writing to path.
func NewBenchFileStore(path string) *BenchFileStore {
	return &BenchFileStore{path: path}
}

// SaveBenchResults replaces the file contents with results.
func (s *BenchFileStore) SaveBenchResults(results []domain.BenchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := make([]benchRecord, len(results))
	for i, r := range results {
		recs[i] = benchRecord{
			Bits:       r.Bits,
			Runs:       r.Runs,
			AvgSeconds: r.Avg.Seconds(),
			MaxSeconds: r.Max.Seconds(),
			MinSeconds: r.Min.Seconds(),
		}
	}
	return writeJSON(s.path, recs, 0o644)
}

// LoadBenchResults returns the stored sweep and whether the file existed.
func (s *BenchFileStore) LoadBenchResults() ([]domain.BenchResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []benchRecord
	found, err := readJSON(s.path, &recs)
	if err != nil || !found {
		return nil, false, err
	}

	results := make([]domain.BenchResult, len(recs))
	for i, r := range recs {
		results[i] = domain.BenchResult{
			Bits: r.Bits,
			Runs: r.Runs,
			Avg:  seconds(r.AvgSeconds),
			Max:  seconds(r.MaxSeconds),
			Min:  seconds(r.MinSeconds),
		}
	}
	return results, true, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Compile-time assertion that BenchFileStore implements domain.BenchStore.
var _ domain.BenchStore = (*BenchFileStore)(nil)
