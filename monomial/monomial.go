// Package monomial implements the dynamic-arity exponent-vector monomial
// abstraction of spec section 4.2, grounded on
// _examples/original_source/library/monomial.h — the one revision among
// the original source's several drafts that tracks exponents with a
// variable-length vector rather than a fixed arity.
package monomial

import (
	"strconv"
	"strings"

	"github.com/fumin/groebner/gberr"
)

// A Monomial is a product of indeterminates x_0^e_0 * x_1^e_1 * ...,
// represented by its exponent vector. The vector is always canonical:
// either empty (the constant monomial 1) or with a non-zero last
// element. Every constructor and mutating method strips trailing zeros
// to preserve this invariant (spec section 3, testable property 1).
type Monomial []uint32

// New returns the canonical form of the given exponent vector. The
// input is copied; degrees beyond what the caller provides are treated
// as zero.
func New(degrees ...uint32) Monomial {
	m := make(Monomial, len(degrees))
	copy(m, degrees)
	return m.trim()
}

func (m Monomial) trim() Monomial {
	n := len(m)
	for n > 0 && m[n-1] == 0 {
		n--
	}
	return m[:n]
}

// Size returns the length of the canonical exponent vector.
func (m Monomial) Size() int { return len(m) }

// Degree returns the exponent of x_i, or 0 if i is beyond the vector.
func (m Monomial) Degree(i int) uint32 {
	if i < 0 || i >= len(m) {
		return 0
	}
	return m[i]
}

// IsOne reports whether m is the constant monomial 1.
func (m Monomial) IsOne() bool { return len(m) == 0 }

// Equal reports whether m and n denote the same monomial.
func (m Monomial) Equal(n Monomial) bool {
	if len(m) != len(n) {
		return false
	}
	for i := range m {
		if m[i] != n[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of m.
func (m Monomial) Clone() Monomial {
	c := make(Monomial, len(m))
	copy(c, m)
	return c
}

// Mul returns the product m*n: componentwise exponent addition.
func Mul(m, n Monomial) Monomial {
	size := len(m)
	if len(n) > size {
		size = len(n)
	}
	out := make(Monomial, size)
	for i := 0; i < len(m); i++ {
		out[i] += m[i]
	}
	for i := 0; i < len(n); i++ {
		out[i] += n[i]
	}
	return out.trim()
}

// IsDivisibleBy reports whether every component of divisor is <= the
// corresponding component of m (treating missing components as 0).
func IsDivisibleBy(m, divisor Monomial) bool {
	if len(divisor) > len(m) {
		for i := len(m); i < len(divisor); i++ {
			if divisor[i] != 0 {
				return false
			}
		}
	}
	for i := 0; i < len(divisor) && i < len(m); i++ {
		if m[i] < divisor[i] {
			return false
		}
	}
	return true
}

// DivExact returns m/divisor. It panics with *gberr.NotDivisibleError if
// divisor does not divide m exactly.
func DivExact(m, divisor Monomial) Monomial {
	if !IsDivisibleBy(m, divisor) {
		panic(&gberr.NotDivisibleError{Dividend: m, Divisor: divisor})
	}
	out := make(Monomial, len(m))
	copy(out, m)
	for i := range divisor {
		out[i] -= divisor[i]
	}
	return out.trim()
}

// Meet returns the componentwise minimum of m and n (the gcd-like
// intersection used to build S-polynomials).
func Meet(m, n Monomial) Monomial {
	size := len(m)
	if len(n) < size {
		size = len(n)
	}
	out := make(Monomial, size)
	for i := 0; i < size; i++ {
		out[i] = min32(m[i], n[i])
	}
	return out.trim()
}

// Join returns the componentwise maximum of m and n (the least common
// multiple of the two monomials).
func Join(m, n Monomial) Monomial {
	size := len(m)
	if len(n) > size {
		size = len(n)
	}
	out := make(Monomial, size)
	for i := 0; i < size; i++ {
		out[i] = max32(m.Degree(i), n.Degree(i))
	}
	return out.trim()
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// String renders m as x_i or x_i^d atoms joined by "*", or "1" for the
// constant monomial, matching spec section 6's textual form (and
// original_source/library/monomial.h's operator<<).
func (m Monomial) String() string {
	if m.IsOne() {
		return "1"
	}
	var b strings.Builder
	first := true
	for i, d := range m {
		if d == 0 {
			continue
		}
		if !first {
			b.WriteByte('*')
		}
		first = false
		b.WriteString("x_")
		b.WriteString(strconv.Itoa(i))
		if d > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.FormatUint(uint64(d), 10))
		}
	}
	return b.String()
}
