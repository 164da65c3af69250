package arith

import "math/big"

// Egcd returns (g, x, y) with a*x + b*y = g.
//
// For a, b >= 0, g = gcd(a, b). Egcd(0, b) is (b, 0, 1). Quotients use floor
// division, so negative inputs yield the same coefficients as the classic
// recursive definition and g may carry a sign.
func Egcd(a, b *big.Int) (g, x, y *big.Int) {
	// Invariant: ra = a*xa + b*ya and rb = a*xb + b*yb.
	ra, rb := new(big.Int).Set(a), new(big.Int).Set(b)
	xa, ya := big.NewInt(1), big.NewInt(0)
	xb, yb := big.NewInt(0), big.NewInt(1)

	q, r, t := new(big.Int), new(big.Int), new(big.Int)
	for ra.Sign() != 0 {
		floorDivMod(rb, ra, q, r)

		// (ra, rb) <- (rb mod ra, ra)
		rb.Set(ra)
		ra.Set(r)

		// (xa, xb) <- (xb - q*xa, xa)
		t.Mul(q, xa)
		t.Sub(xb, t)
		xb.Set(xa)
		xa.Set(t)

		// (ya, yb) <- (yb - q*ya, ya)
		t.Mul(q, ya)
		t.Sub(yb, t)
		yb.Set(ya)
		ya.Set(t)
	}
	return rb, xb, yb
}

// floorDivMod sets q = floor(n/d) and r = n - q*d, so r takes the sign of d.
func floorDivMod(n, d, q, r *big.Int) {
	// DivMod is Euclidean: 0 <= r < |d|.
	q.DivMod(n, d, r)
	if d.Sign() < 0 && r.Sign() != 0 {
		q.Sub(q, one)
		r.Add(r, d)
	}
}

// Gcd returns the non-negative greatest common divisor of a and b.
func Gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}
