package primes_test

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/ziliangpeng/rspki/internal/crypto"
	"github.com/ziliangpeng/rspki/internal/primes"
)

// seeded returns a deterministic source for label.
func seeded(t *testing.T, label string) io.Reader {
	t.Helper()
	src, err := crypto.NewSeededSource([]byte(label))
	if err != nil {
		t.Fatalf("NewSeededSource: %v", err)
	}
	return src
}

func TestCandidate_BitLengthAndOddness(t *testing.T) {
	src := seeded(t, "candidate")
	for _, bits := range []int{2, 3, 8, 17, 64, 255, 1024} {
		lo := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		hi := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		for i := 0; i < 50; i++ {
			n, err := primes.Candidate(src, bits)
			if err != nil {
				t.Fatalf("Candidate(%d): %v", bits, err)
			}
			if n.Cmp(lo) < 0 || n.Cmp(hi) >= 0 {
				t.Fatalf("Candidate(%d) = %s outside [2^%d, 2^%d)", bits, n, bits-1, bits)
			}
			if n.Bit(0) != 1 {
				t.Fatalf("Candidate(%d) = %s is even", bits, n)
			}
		}
	}
}

func TestCandidate_InvalidBitLength(t *testing.T) {
	for _, bits := range []int{-1, 0, 1} {
		if _, err := primes.Candidate(crypto.SystemSource(), bits); !errors.Is(err, primes.ErrInvalidBitLength) {
			t.Errorf("Candidate(%d): got %v, want ErrInvalidBitLength", bits, err)
		}
	}
}

func TestGenerate_BitLengthContract(t *testing.T) {
	g := primes.New(seeded(t, "generate"))
	for _, bits := range []int{8, 9, 16, 32, 64, 128, 256} {
		p, err := g.Generate(context.Background(), bits)
		if err != nil {
			t.Fatalf("Generate(%d): %v", bits, err)
		}
		if p.BitLen() != bits {
			t.Fatalf("Generate(%d) = %s has %d bits", bits, p, p.BitLen())
		}
		if p.Bit(0) != 1 {
			t.Fatalf("Generate(%d) = %s is even", bits, p)
		}
		if !p.ProbablyPrime(20) {
			t.Fatalf("Generate(%d) = %s is composite", bits, p)
		}
	}
}

func TestGenerate_SmallestBitLength(t *testing.T) {
	p, err := primes.New(crypto.SystemSource()).Generate(context.Background(), 2)
	if err != nil {
		t.Fatalf("Generate(2): %v", err)
	}
	if p.Int64() != 3 {
		t.Fatalf("Generate(2) = %s, want 3", p)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := primes.New(seeded(t, "replay")).Generate(context.Background(), 512)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := primes.New(seeded(t, "replay")).Generate(context.Background(), 512)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Cmp(b) != 0 {
		t.Fatal("same seed produced different primes")
	}
}

func TestGenerate_AttemptsExhausted(t *testing.T) {
	// A zero reader always yields 2^63+1 = 3^3*19*43*5419*77158673929
	// with witness 2, which exposes it.
	g := &primes.Generator{Random: zeroReader{}, MaxAttempts: 5}
	_, err := g.Generate(context.Background(), 64)
	if !errors.Is(err, primes.ErrAttemptsExhausted) {
		t.Fatalf("got %v, want ErrAttemptsExhausted", err)
	}
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := primes.New(crypto.SystemSource())
	if _, err := g.Generate(ctx, 64); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestGenerate_SourceFailure(t *testing.T) {
	g := primes.New(failingReader{})
	if _, err := g.Generate(context.Background(), 64); !errors.Is(err, errBrokenSource) {
		t.Fatalf("got %v, want errBrokenSource", err)
	}
}

func TestGenerate_LogsAttempts(t *testing.T) {
	h := memory.New()
	g := primes.New(seeded(t, "log"))
	g.Log = &log.Logger{Handler: h, Level: log.DebugLevel}

	if _, err := g.Generate(context.Background(), 64); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(h.Entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(h.Entries))
	}
	e := h.Entries[0]
	if e.Fields.Get("bits") != 64 {
		t.Errorf("bits field = %v, want 64", e.Fields.Get("bits"))
	}
	if n, ok := e.Fields.Get("attempts").(int); !ok || n < 1 {
		t.Errorf("attempts field = %v, want a positive int", e.Fields.Get("attempts"))
	}
}

func BenchmarkGenerate512(b *testing.B) {
	g := primes.New(crypto.SystemSource())
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(context.Background(), 512); err != nil {
			b.Fatal(err)
		}
	}
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

var errBrokenSource = errors.New("broken source")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errBrokenSource }
