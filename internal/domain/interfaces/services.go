package interfaces

import (
	"context"
	"math/big"

	domaintypes "github.com/ziliangpeng/rspki/internal/domain/types"
)

// PrimeGenerator produces probable primes of an exact bit length.
type PrimeGenerator interface {
	Generate(ctx context.Context, bits int) (*big.Int, error)
}

// KeyGenerator assembles RSA key pairs from freshly generated primes.
type KeyGenerator interface {
	GenerateKey(ctx context.Context, bits int) (domaintypes.KeyPair, error)
}

// KeyService is what the CLI uses to mint primes and key pairs.
type KeyService interface {
	GeneratePrime(ctx context.Context, bits int) (*big.Int, error)
	GenerateKeyPair(ctx context.Context, bits int) (
		domaintypes.KeyPair,
		domaintypes.Fingerprint,
		error,
	)
}

// BenchService times prime generation across bit lengths.
type BenchService interface {
	Run(
		ctx context.Context,
		sizes []int,
		runs int,
		report func(domaintypes.BenchResult),
	) ([]domaintypes.BenchResult, error)
}
