package arith_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ziliangpeng/rspki/internal/arith"
)

func TestEgcd_KnownCoefficients(t *testing.T) {
	// Coefficients of the recursive definition egcd(b mod a, a).
	cases := []struct {
		a, b, g, x, y int64
	}{
		{240, 46, 2, -9, 47},
		{46, 240, 2, 47, -9},
		{17, 3120, 1, -367, 2},
		{3120, 17, 1, 2, -367},
		{65537, 3120, 1, -367, 7709},
		{0, 7, 7, 0, 1},
		{7, 0, 7, 1, 0},
		{1, 1, 1, 1, 0},
		{99, 78, 3, -11, 14},
		{-4, 6, -2, 2, 1},
		{12, -18, 6, 2, 1},
	}
	for _, tc := range cases {
		g, x, y := arith.Egcd(big.NewInt(tc.a), big.NewInt(tc.b))
		if g.Int64() != tc.g || x.Int64() != tc.x || y.Int64() != tc.y {
			t.Errorf("Egcd(%d, %d) = (%s, %s, %s), want (%d, %d, %d)",
				tc.a, tc.b, g, x, y, tc.g, tc.x, tc.y)
		}
	}
}

func TestEgcd_BezoutIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	limit := new(big.Int).Lsh(big.NewInt(1), 256)
	for i := 0; i < 2000; i++ {
		a := new(big.Int).Rand(rng, limit)
		b := new(big.Int).Rand(rng, limit)
		a.Add(a, big.NewInt(1))
		b.Add(b, big.NewInt(1))

		g, x, y := arith.Egcd(a, b)

		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		if lhs.Cmp(g) != 0 {
			t.Fatalf("a*x + b*y = %s, want %s (a=%s b=%s)", lhs, g, a, b)
		}
		if want := new(big.Int).GCD(nil, nil, a, b); g.Cmp(want) != 0 {
			t.Fatalf("Egcd(%s, %s) g = %s, want %s", a, b, g, want)
		}
	}
}

func TestEgcd_DoesNotMutateInputs(t *testing.T) {
	a, b := big.NewInt(240), big.NewInt(46)
	arith.Egcd(a, b)
	if a.Int64() != 240 || b.Int64() != 46 {
		t.Fatalf("inputs changed to (%s, %s)", a, b)
	}
}

func TestEgcd_LongChain(t *testing.T) {
	// Consecutive Fibonacci numbers maximise the number of steps.
	a, b := big.NewInt(1), big.NewInt(1)
	for i := 0; i < 5000; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	g, x, y := arith.Egcd(a, b)
	if g.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("g = %s, want 1", g)
	}
	lhs := new(big.Int).Mul(a, x)
	lhs.Add(lhs, new(big.Int).Mul(b, y))
	if lhs.Cmp(g) != 0 {
		t.Fatal("Bezout identity does not hold")
	}
}

func TestGcd(t *testing.T) {
	if got := arith.Gcd(big.NewInt(-48), big.NewInt(18)); got.Int64() != 6 {
		t.Fatalf("Gcd(-48, 18) = %s, want 6", got)
	}
}
