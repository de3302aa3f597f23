package design

import "fmt"

// projectivePlane builds the incidence structure of PG(2, q) for a prime
// power q: q^2+q+1 points, q^2+q+1 lines, every line containing q+1 points
// and any two lines meeting in exactly one point.
//
// Points and lines are the normalized homogeneous triples over GF(q) (the
// leftmost nonzero coordinate is 1), enumerated in lexicographic order, so
// the construction is canonical: the same q always yields the same lines in
// the same order. A point (x, y, z) lies on line (a, b, c) iff
// a*x + b*y + c*z = 0 in GF(q).
//
// The returned slice holds one sorted point-index list per line.
func projectivePlane(q int) ([][]int, error) {
	p, m, ok := primePower(q)
	if !ok {
		return nil, fmt.Errorf("order %d is not a prime power", q)
	}
	f, err := newField(p, m)
	if err != nil {
		return nil, err
	}

	points := normalizedTriples(q)
	lines := make([][]int, len(points))
	for li, l := range points {
		var on []int
		for pi, pt := range points {
			s := f.Add(f.Mul(l[0], pt[0]), f.Add(f.Mul(l[1], pt[1]), f.Mul(l[2], pt[2])))
			if s == 0 {
				on = append(on, pi)
			}
		}
		if len(on) != q+1 {
			return nil, fmt.Errorf("line %d of PG(2,%d) has %d points, want %d", li, q, len(on), q+1)
		}
		lines[li] = on
	}
	return lines, nil
}

// normalizedTriples enumerates the q^2+q+1 projective points of PG(2, q) in
// lexicographic order of their normalized coordinates.
func normalizedTriples(q int) [][3]int {
	triples := make([][3]int, 0, q*q+q+1)
	for a := range q {
		for b := range q {
			for c := range q {
				if firstNonzeroIsOne(a, b, c) {
					triples = append(triples, [3]int{a, b, c})
				}
			}
		}
	}
	return triples
}

func firstNonzeroIsOne(a, b, c int) bool {
	switch {
	case a != 0:
		return a == 1
	case b != 0:
		return b == 1
	case c != 0:
		return c == 1
	}
	return false
}
