package domain

import (
	interfaces "github.com/ziliangpeng/rspki/internal/domain/interfaces"
	types "github.com/ziliangpeng/rspki/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint = types.Fingerprint
	PublicKey   = types.PublicKey
	PrivateKey  = types.PrivateKey
	KeyPair     = types.KeyPair
	BenchResult = types.BenchResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PrimeGenerator = interfaces.PrimeGenerator
	KeyGenerator   = interfaces.KeyGenerator
	KeyService     = interfaces.KeyService
	BenchService   = interfaces.BenchService
	BenchStore     = interfaces.BenchStore
)
