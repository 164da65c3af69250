package keygen

import (
	"context"
	"math/big"
	"time"

	"github.com/apex/log"

	"github.com/ziliangpeng/rspki/internal/crypto"
	"github.com/ziliangpeng/rspki/internal/domain"
)

// Service generates primes and key pairs.
type Service struct {
	primes domain.PrimeGenerator
	keys   domain.KeyGenerator
	log    log.Interface
}

// New returns a key service backed by the given generators.
func New(primes domain.PrimeGenerator, keys domain.KeyGenerator, l log.Interface) *Service {
	if l == nil {
		l = log.Log
	}
	return &Service{primes: primes, keys: keys, log: l}
}

// GeneratePrime returns one probable prime of bits bits.
func (s *Service) GeneratePrime(ctx context.Context, bits int) (*big.Int, error) {
	start := time.Now()
	p, err := s.primes.Generate(ctx, bits)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(log.Fields{
		"bits":    bits,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("prime generated")
	return p, nil
}

// GenerateKeyPair returns a key pair built from two bits-bit primes and the
// fingerprint of its modulus.
func (s *Service) GenerateKeyPair(
	ctx context.Context,
	bits int,
) (domain.KeyPair, domain.Fingerprint, error) {
	start := time.Now()
	kp, err := s.keys.GenerateKey(ctx, bits)
	if err != nil {
		return domain.KeyPair{}, "", err
	}
	fp := domain.Fingerprint(crypto.FingerprintInt(kp.Public.N))
	s.log.WithFields(log.Fields{
		"bits":        kp.Public.N.BitLen(),
		"fingerprint": fp,
		"elapsed":     time.Since(start).Round(time.Millisecond),
	}).Info("key pair generated")
	return kp, fp, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
