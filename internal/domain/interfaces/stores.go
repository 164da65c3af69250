package interfaces

import domaintypes "github.com/ziliangpeng/rspki/internal/domain/types"

// BenchStore persists benchmark sweeps.
type BenchStore interface {
	SaveBenchResults(results []domaintypes.BenchResult) error
	LoadBenchResults() ([]domaintypes.BenchResult, bool, error)
}
