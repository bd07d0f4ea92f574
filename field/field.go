// Package field implements the field abstraction the rest of this module
// rests on: an algebraic value type with exact +, -, *, / and equality,
// plus the is_zero/is_one predicates spec section 4.1 requires. Two
// concrete instances are provided: Rational (arbitrary-precision exact
// rationals) and PrimeField (prime fields GF(p)).
package field

import (
	"math/big"

	"github.com/fumin/groebner/gberr"
)

// A Field is an element whose addition and multiplication operations
// satisfy the field axioms. T is the concrete element type; methods take
// the receiver as the output buffer and return it, mirroring the
// teacher's (github.com/fumin/nag) Field[T] convention so elements can be
// built up without one allocation per operation.
type Field[T any] interface {
	// NewZero returns the additive identity 0.
	NewZero() T
	// NewOne returns the multiplicative identity 1.
	NewOne() T
	// NewFromInt returns the element represented by the small integer n,
	// reduced into the field's canonical representation (spec's
	// from_small_integer).
	NewFromInt(n int64) T

	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// IsOne reports whether the receiver is the multiplicative identity.
	IsOne() bool
	// Equal reports whether x and y denote the same field element.
	Equal(y T) bool

	// Add sets z to x+y and returns z.
	Add(x, y T) T
	// Sub sets z to x-y and returns z.
	Sub(x, y T) T
	// Mul sets z to x*y and returns z.
	Mul(x, y T) T
	// Div sets z to x/y and returns z. Panics with *gberr.DivisionByZeroError
	// if y.IsZero().
	Div(x, y T) T
	// Inv sets z to 1/x and returns z. Panics with *gberr.DivisionByZeroError
	// if x.IsZero().
	Inv(x T) T

	String() string
}

// A Rational is an exact, arbitrary-precision rational number, backed by
// math/big.Rat the same way the teacher's nag.Rat is.
type Rational struct{ r *big.Rat }

// NewRational returns a new Rational with numerator a and denominator b.
func NewRational(a, b int64) *Rational {
	return &Rational{r: big.NewRat(a, b)}
}

// NewZero returns the additive identity 0.
func (x *Rational) NewZero() *Rational { return &Rational{r: big.NewRat(0, 1)} }

// NewOne returns the multiplicative identity 1.
func (x *Rational) NewOne() *Rational { return &Rational{r: big.NewRat(1, 1)} }

// NewFromInt returns the Rational n/1.
func (x *Rational) NewFromInt(n int64) *Rational { return &Rational{r: big.NewRat(n, 1)} }

// IsZero reports whether x is 0.
func (x *Rational) IsZero() bool { return x.r.Sign() == 0 }

// IsOne reports whether x is 1.
func (x *Rational) IsOne() bool { return x.r.Cmp(big.NewRat(1, 1)) == 0 }

// Equal reports whether x and y are equal.
func (x *Rational) Equal(y *Rational) bool { return x.r.Cmp(y.r) == 0 }

// Add sets z to x+y and returns z.
func (z *Rational) Add(x, y *Rational) *Rational {
	z.r = new(big.Rat).Add(x.r, y.r)
	return z
}

// Sub sets z to x-y and returns z.
func (z *Rational) Sub(x, y *Rational) *Rational {
	z.r = new(big.Rat).Sub(x.r, y.r)
	return z
}

// Mul sets z to x*y and returns z.
func (z *Rational) Mul(x, y *Rational) *Rational {
	z.r = new(big.Rat).Mul(x.r, y.r)
	return z
}

// Div sets z to x/y and returns z.
func (z *Rational) Div(x, y *Rational) *Rational {
	if y.IsZero() {
		panic(&gberr.DivisionByZeroError{Op: "Rational.Div"})
	}
	z.r = new(big.Rat).Quo(x.r, y.r)
	return z
}

// Inv sets z to 1/x and returns z.
func (z *Rational) Inv(x *Rational) *Rational {
	if x.IsZero() {
		panic(&gberr.DivisionByZeroError{Op: "Rational.Inv"})
	}
	z.r = new(big.Rat).Inv(x.r)
	return z
}

// Num returns the numerator of x in lowest terms.
func (x *Rational) Num() *big.Int { return x.r.Num() }

// Denom returns the denominator of x in lowest terms.
func (x *Rational) Denom() *big.Int { return x.r.Denom() }

// String returns "a/b" if b != 1, and "a" if b == 1.
func (x *Rational) String() string { return x.r.RatString() }
