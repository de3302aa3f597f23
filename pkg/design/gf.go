package design

import "fmt"

// field is a finite field GF(p^m) with precomputed addition and
// multiplication tables. Elements are represented as integers in [0, q):
// the base-p digits of an element are the coefficients of its polynomial
// representation, least significant digit first.
type field struct {
	p, m, q int
	add     [][]int
	mul     [][]int
}

// irreducible lists a fixed monic irreducible polynomial over GF(p) for each
// supported prime-power order p^m with m > 1. Coefficients are ascending
// (constant term first) and include the leading 1. Keeping these as a lookup
// table makes the construction reproducible across versions: the generated
// plane depends on the chosen polynomial.
var irreducible = map[int][]int{
	4:  {1, 1, 1},          // x^2 + x + 1 over GF(2)
	8:  {1, 1, 0, 1},       // x^3 + x + 1 over GF(2)
	9:  {1, 0, 1},          // x^2 + 1 over GF(3)
	16: {1, 1, 0, 0, 1},    // x^4 + x + 1 over GF(2)
	25: {1, 1, 1},          // x^2 + x + 1 over GF(5)
	27: {1, 2, 0, 1},       // x^3 + 2x + 1 over GF(3)
	32: {1, 0, 1, 0, 0, 1}, // x^5 + x^2 + 1 over GF(2)
	49: {3, 1, 1},          // x^2 + x + 3 over GF(7)
}

// newField constructs GF(p^m). For m > 1 the order must have an entry in the
// irreducible table.
func newField(p, m int) (*field, error) {
	q := 1
	for range m {
		q *= p
	}
	f := &field{p: p, m: m, q: q}

	var reduce []int
	if m > 1 {
		poly, ok := irreducible[q]
		if !ok {
			return nil, fmt.Errorf("no irreducible polynomial on record for GF(%d)", q)
		}
		reduce = poly
	}

	f.add = make([][]int, q)
	f.mul = make([][]int, q)
	for a := range q {
		f.add[a] = make([]int, q)
		f.mul[a] = make([]int, q)
		for b := range q {
			f.add[a][b] = f.addSlow(a, b)
			f.mul[a][b] = f.mulSlow(a, b, reduce)
		}
	}
	return f, nil
}

// digits expands an element into its base-p coefficient vector of length m.
func (f *field) digits(a int) []int {
	d := make([]int, f.m)
	for i := range f.m {
		d[i] = a % f.p
		a /= f.p
	}
	return d
}

func (f *field) pack(d []int) int {
	v := 0
	for i := len(d) - 1; i >= 0; i-- {
		v = v*f.p + d[i]
	}
	return v
}

func (f *field) addSlow(a, b int) int {
	da, db := f.digits(a), f.digits(b)
	for i := range da {
		da[i] = (da[i] + db[i]) % f.p
	}
	return f.pack(da)
}

func (f *field) mulSlow(a, b int, reduce []int) int {
	if f.m == 1 {
		return a * b % f.p
	}
	da, db := f.digits(a), f.digits(b)
	prod := make([]int, 2*f.m-1)
	for i, x := range da {
		for j, y := range db {
			prod[i+j] = (prod[i+j] + x*y) % f.p
		}
	}
	// Reduce modulo the irreducible polynomial, highest degree first.
	for d := len(prod) - 1; d >= f.m; d-- {
		c := prod[d]
		if c == 0 {
			continue
		}
		prod[d] = 0
		// x^d ≡ -c * (reduce minus leading term) * x^(d-m)
		for i := 0; i < f.m; i++ {
			prod[d-f.m+i] = (prod[d-f.m+i] + (f.p-reduce[i])*c) % f.p
		}
	}
	return f.pack(prod[:f.m])
}

// Add returns a + b in the field.
func (f *field) Add(a, b int) int { return f.add[a][b] }

// Mul returns a * b in the field.
func (f *field) Mul(a, b int) int { return f.mul[a][b] }

// isPrime reports whether n is prime.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// primePower decomposes n as p^m for prime p and m >= 1.
// It returns ok = false when n is not a prime power.
func primePower(n int) (p, m int, ok bool) {
	if n < 2 {
		return 0, 0, false
	}
	p = smallestFactor(n)
	for n > 1 {
		if n%p != 0 {
			return 0, 0, false
		}
		n /= p
		m++
	}
	return p, m, true
}

func smallestFactor(n int) int {
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return i
		}
	}
	return n
}
