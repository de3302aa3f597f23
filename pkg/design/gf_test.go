package design

import "testing"

func TestPrimePower(t *testing.T) {
	tests := []struct {
		n       int
		p, m    int
		isPower bool
	}{
		{0, 0, 0, false},
		{1, 0, 0, false},
		{2, 2, 1, true},
		{3, 3, 1, true},
		{4, 2, 2, true},
		{6, 0, 0, false},
		{8, 2, 3, true},
		{9, 3, 2, true},
		{10, 0, 0, false},
		{12, 0, 0, false},
		{16, 2, 4, true},
		{25, 5, 2, true},
		{27, 3, 3, true},
		{49, 7, 2, true},
	}

	for _, tt := range tests {
		p, m, ok := primePower(tt.n)
		if ok != tt.isPower {
			t.Errorf("primePower(%d) ok = %v, want %v", tt.n, ok, tt.isPower)
			continue
		}
		if ok && (p != tt.p || m != tt.m) {
			t.Errorf("primePower(%d) = %d^%d, want %d^%d", tt.n, p, m, tt.p, tt.m)
		}
	}
}

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true}
	for n := -2; n <= 14; n++ {
		if got := isPrime(n); got != primes[n] {
			t.Errorf("isPrime(%d) = %v, want %v", n, got, primes[n])
		}
	}
}

// TestFieldAxioms exhaustively checks the field axioms on the small
// extension fields used by the plane construction.
func TestFieldAxioms(t *testing.T) {
	cases := []struct{ p, m int }{
		{2, 1}, {3, 1}, {5, 1}, {7, 1},
		{2, 2}, {2, 3}, {3, 2}, {2, 4}, {3, 3},
	}

	for _, c := range cases {
		f, err := newField(c.p, c.m)
		if err != nil {
			t.Fatalf("newField(%d, %d) failed: %v", c.p, c.m, err)
		}
		q := f.q

		for a := range q {
			// Identities.
			if f.Add(a, 0) != a {
				t.Fatalf("GF(%d): %d + 0 != %d", q, a, a)
			}
			if f.Mul(a, 1) != a {
				t.Fatalf("GF(%d): %d * 1 != %d", q, a, a)
			}
			if f.Mul(a, 0) != 0 {
				t.Fatalf("GF(%d): %d * 0 != 0", q, a)
			}

			// Additive inverse exists.
			hasNeg := false
			for b := range q {
				if f.Add(a, b) == 0 {
					hasNeg = true
					break
				}
			}
			if !hasNeg {
				t.Fatalf("GF(%d): no additive inverse for %d", q, a)
			}

			// Multiplicative inverse exists for nonzero elements.
			if a != 0 {
				hasInv := false
				for b := 1; b < q; b++ {
					if f.Mul(a, b) == 1 {
						hasInv = true
						break
					}
				}
				if !hasInv {
					t.Fatalf("GF(%d): no multiplicative inverse for %d", q, a)
				}
			}

			for b := range q {
				if f.Add(a, b) != f.Add(b, a) {
					t.Fatalf("GF(%d): addition not commutative at (%d, %d)", q, a, b)
				}
				if f.Mul(a, b) != f.Mul(b, a) {
					t.Fatalf("GF(%d): multiplication not commutative at (%d, %d)", q, a, b)
				}
				for cc := range q {
					if f.Mul(a, f.Add(b, cc)) != f.Add(f.Mul(a, b), f.Mul(a, cc)) {
						t.Fatalf("GF(%d): distributivity fails at (%d, %d, %d)", q, a, b, cc)
					}
				}
			}
		}
	}
}

func TestNewFieldUnknownOrder(t *testing.T) {
	// 11^2 has no polynomial on record.
	if _, err := newField(11, 2); err == nil {
		t.Error("newField(11, 2) succeeded, want error")
	}
}
