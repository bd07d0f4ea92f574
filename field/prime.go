package field

import (
	"math/big"

	"github.com/fumin/groebner/gberr"
)

// A PrimeField is the finite field GF(p) for a small prime p. It holds
// no state beyond p itself and exists only as a factory for canonical
// PrimeElement values; the arithmetic lives on PrimeElement, mirroring
// how the teacher's field.field/fieldElement pair in
// github.com/fumin/nag/field splits factory from value.
type PrimeField struct {
	p *big.Int
}

// NewPrimeField returns the finite field GF(p). It assumes p is prime;
// callers are responsible for passing a prime (the field does not
// primality-test, matching fumin-nag/field's NewField contract).
func NewPrimeField(p int64) *PrimeField {
	if p <= 1 {
		panic(&gberr.OutOfRangeError{Op: "NewPrimeField", Value: int(p), Lo: 2, Message: "p must be a prime greater than 1"})
	}
	return &PrimeField{p: big.NewInt(p)}
}

// P returns the field's prime modulus.
func (f *PrimeField) P() int64 { return f.p.Int64() }

// Element reduces value into the field's canonical representative
// [0, p), accepting any integer including negative ones (spec's
// from_small_integer, permissive form).
func (f *PrimeField) Element(value int64) *PrimeElement {
	v := new(big.Int).Mod(big.NewInt(value), f.p)
	if v.Sign() < 0 {
		v.Add(v, f.p)
	}
	return &PrimeElement{p: f.p, v: v}
}

// NewElement constructs the element with canonical value v, failing with
// *gberr.OutOfRangeError if v is not in [0, p). This is the strict
// constructor contract of spec section 3, distinct from Element's
// permissive reduction.
func (f *PrimeField) NewElement(v int64) (*PrimeElement, error) {
	if v < 0 || big.NewInt(v).Cmp(f.p) >= 0 {
		return nil, &gberr.OutOfRangeError{Op: "PrimeField.NewElement", Value: int(v), Lo: 0, Hi: int(f.p.Int64()), HasHi: true}
	}
	return &PrimeElement{p: f.p, v: big.NewInt(v)}, nil
}

// Elements returns every element of the field, in ascending canonical
// order.
func (f *PrimeField) Elements() []*PrimeElement {
	p := f.p.Int64()
	out := make([]*PrimeElement, 0, p)
	for i := int64(0); i < p; i++ {
		out = append(out, &PrimeElement{p: f.p, v: big.NewInt(i)})
	}
	return out
}

// A PrimeElement is an element of some GF(p), canonically represented by
// an integer in [0, p). Division multiplies by the inverse from
// math/big.Int.ModInverse (the extended Euclidean algorithm), which is
// the same value as the repeated-squaring a^(p-2) mod p.
type PrimeElement struct {
	p *big.Int
	v *big.Int
}

func (x *PrimeElement) assertSameField(y *PrimeElement) {
	if x.p.Cmp(y.p) != 0 {
		panic(&gberr.OutOfRangeError{Op: "PrimeElement", Message: "elements are from different prime fields GF(" + x.p.String() + ") and GF(" + y.p.String() + ")"})
	}
}

// NewZero returns the additive identity 0.
func (x *PrimeElement) NewZero() *PrimeElement {
	return &PrimeElement{p: x.p, v: big.NewInt(0)}
}

// NewOne returns the multiplicative identity 1.
func (x *PrimeElement) NewOne() *PrimeElement {
	return &PrimeElement{p: x.p, v: big.NewInt(1)}
}

// NewFromInt reduces n into x's field.
func (x *PrimeElement) NewFromInt(n int64) *PrimeElement {
	v := new(big.Int).Mod(big.NewInt(n), x.p)
	if v.Sign() < 0 {
		v.Add(v, x.p)
	}
	return &PrimeElement{p: x.p, v: v}
}

// IsZero reports whether x is 0.
func (x *PrimeElement) IsZero() bool { return x.v.Sign() == 0 }

// IsOne reports whether x is 1.
func (x *PrimeElement) IsOne() bool { return x.v.Cmp(big.NewInt(1)) == 0 }

// Equal reports whether x and y are equal elements of the same field.
func (x *PrimeElement) Equal(y *PrimeElement) bool {
	x.assertSameField(y)
	return x.v.Cmp(y.v) == 0
}

// Add sets z to x+y mod p and returns z.
func (z *PrimeElement) Add(x, y *PrimeElement) *PrimeElement {
	x.assertSameField(y)
	z.p = x.p
	z.v = new(big.Int).Mod(new(big.Int).Add(x.v, y.v), x.p)
	return z
}

// Sub sets z to x-y mod p and returns z.
func (z *PrimeElement) Sub(x, y *PrimeElement) *PrimeElement {
	x.assertSameField(y)
	z.p = x.p
	v := new(big.Int).Mod(new(big.Int).Sub(x.v, y.v), x.p)
	if v.Sign() < 0 {
		v.Add(v, x.p)
	}
	z.v = v
	return z
}

// Mul sets z to x*y mod p and returns z.
func (z *PrimeElement) Mul(x, y *PrimeElement) *PrimeElement {
	x.assertSameField(y)
	z.p = x.p
	z.v = new(big.Int).Mod(new(big.Int).Mul(x.v, y.v), x.p)
	return z
}

// Div sets z to x*y^-1 mod p and returns z.
func (z *PrimeElement) Div(x, y *PrimeElement) *PrimeElement {
	if y.IsZero() {
		panic(&gberr.DivisionByZeroError{Op: "PrimeElement.Div"})
	}
	yInv := y.NewZero().Inv(y)
	return z.Mul(x, yInv)
}

// Inv sets z to 1/x mod p and returns z.
func (z *PrimeElement) Inv(x *PrimeElement) *PrimeElement {
	if x.IsZero() {
		panic(&gberr.DivisionByZeroError{Op: "PrimeElement.Inv"})
	}
	z.p = x.p
	z.v = new(big.Int).ModInverse(x.v, x.p)
	return z
}

// Value returns the canonical representative of x in [0, p).
func (x *PrimeElement) Value() int64 { return x.v.Int64() }

// String renders x as "[v (modulo p)]", the textual form spec section 6
// mandates for prime-field elements.
func (x *PrimeElement) String() string {
	return "[" + x.v.String() + " (modulo " + x.p.String() + ")]"
}
