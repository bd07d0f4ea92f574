// Package polynomial implements the sparse multivariate polynomial
// representation of spec section 4.3: a finite mapping from Monomial to
// non-zero field coefficient, kept ordered by a configured monomial
// order so the greatest-key entry is always the leading term.
//
// The representation and most ring-operation bodies are grounded on
// github.com/fumin/nag's Polynomial[K], which backs the same map with
// github.com/jba/omap; the one structural change is that monomial
// multiplication here is commutative (componentwise exponent addition)
// rather than the teacher's noncommutative word concatenation.
package polynomial

import (
	"strings"

	"github.com/jba/omap"

	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/gberr"
	"github.com/fumin/groebner/monomial"
)

// A Term is a single (monomial, coefficient) pair.
type Term[F field.Field[F]] struct {
	Monomial    monomial.Monomial
	Coefficient F
}

// A Polynomial is a finite formal sum of (monomial, non-zero
// coefficient) pairs over F, ordered by Order so that the greatest key
// is the leading term. The zero value is not usable; construct with New.
type Polynomial[F field.Field[F]] struct {
	field F
	order monomial.Order
	m     *omap.MapFunc[monomial.Monomial, F]
}

func monomialCompare(order monomial.Order) func(monomial.Monomial, monomial.Monomial) int {
	return func(x, y monomial.Monomial) int { return order(x, y) }
}

// New returns the sum of terms over F under the given monomial order
// (the zero polynomial when no terms are given). field supplies the coefficient field's zero/one/arithmetic
// (any element of F works; it is never itself inserted as a term).
func New[F field.Field[F]](field F, order monomial.Order, terms ...Term[F]) *Polynomial[F] {
	p := &Polynomial[F]{
		field: field,
		order: order,
		m:     omap.NewMapFunc[monomial.Monomial, F](monomialCompare(order)),
	}
	for _, t := range terms {
		p.AddTerm(t.Monomial, t.Coefficient)
	}
	return p
}

// Field returns the coefficient field of p.
func (p *Polynomial[F]) Field() F { return p.field }

// Order returns the monomial order employed by p.
func (p *Polynomial[F]) Order() monomial.Order { return p.order }

// Size reports the greatest number of variables referenced by any one
// term of p (the maximum monomial size, not the term count), matching
// original_source/library/polynomial.h's size().
func (p *Polynomial[F]) Size() int {
	max := 0
	for i := 0; i < p.m.Len(); i++ {
		w, _ := p.m.At(i)
		if s := w.Size(); s > max {
			max = s
		}
	}
	return max
}

// TermCount reports the number of non-zero terms in p.
func (p *Polynomial[F]) TermCount() int { return p.m.Len() }

// IsZero reports whether p has no terms.
func (p *Polynomial[F]) IsZero() bool { return p.m.Len() == 0 }

// IsConstant reports whether p is zero or a single constant term.
func (p *Polynomial[F]) IsConstant() bool {
	if p.m.Len() == 0 {
		return true
	}
	if p.m.Len() > 1 {
		return false
	}
	w, _ := p.m.At(0)
	return w.IsOne()
}

// Terms iterates the terms of p in decreasing monomial order.
func (p *Polynomial[F]) Terms(yield func(monomial.Monomial, F) bool) {
	for i := p.m.Len() - 1; i >= 0; i-- {
		w, c := p.m.At(i)
		if !yield(w, c) {
			return
		}
	}
}

// Equal reports whether p and q have the same terms.
func (p *Polynomial[F]) Equal(q *Polynomial[F]) bool {
	if p.m.Len() != q.m.Len() {
		return false
	}
	for i := 0; i < p.m.Len(); i++ {
		pw, pc := p.m.At(i)
		qw, qc := q.m.At(i)
		if !pw.Equal(qw) || !pc.Equal(qc) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of p.
func (p *Polynomial[F]) Clone() *Polynomial[F] {
	q := New(p.field, p.order)
	for i := 0; i < p.m.Len(); i++ {
		w, c := p.m.At(i)
		q.m.Set(w.Clone(), c)
	}
	return q
}

// LeadingTerm returns the term of the greatest monomial. It panics with
// *gberr.LeadingOfZeroError if p is zero.
func (p *Polynomial[F]) LeadingTerm() Term[F] {
	w, ok := p.m.Max()
	if !ok {
		panic(&gberr.LeadingOfZeroError{Op: "Polynomial.LeadingTerm"})
	}
	c, _ := p.m.Get(w)
	return Term[F]{Monomial: w, Coefficient: c}
}

// LeadingMonomial returns the monomial of the leading term.
func (p *Polynomial[F]) LeadingMonomial() monomial.Monomial {
	return p.LeadingTerm().Monomial
}

// LeadingCoefficient returns the coefficient of the leading term.
func (p *Polynomial[F]) LeadingCoefficient() F {
	return p.LeadingTerm().Coefficient
}

// AddTerm adds coefficient*monomial to p in place, deleting the entry if
// the resulting coefficient becomes zero.
func (p *Polynomial[F]) AddTerm(m monomial.Monomial, coefficient F) {
	p.combineTerm(m, coefficient, false)
}

// SubTerm subtracts coefficient*monomial from p in place.
func (p *Polynomial[F]) SubTerm(m monomial.Monomial, coefficient F) {
	p.combineTerm(m, coefficient, true)
}

func (p *Polynomial[F]) combineTerm(m monomial.Monomial, coefficient F, negate bool) {
	c, ok := p.m.Get(m)
	if !ok {
		c = p.field.NewZero()
	}
	if negate {
		c = c.NewZero().Sub(c, coefficient)
	} else {
		c = c.NewZero().Add(c, coefficient)
	}
	if c.IsZero() {
		p.m.Delete(m)
	} else {
		p.m.Set(m, c)
	}
}

// Add returns x+y.
func Add[F field.Field[F]](x, y *Polynomial[F]) *Polynomial[F] {
	z := x.Clone()
	for i := 0; i < y.m.Len(); i++ {
		w, c := y.m.At(i)
		z.AddTerm(w, c)
	}
	return z
}

// Sub returns x-y.
func Sub[F field.Field[F]](x, y *Polynomial[F]) *Polynomial[F] {
	z := x.Clone()
	for i := 0; i < y.m.Len(); i++ {
		w, c := y.m.At(i)
		z.SubTerm(w, c)
	}
	return z
}

// Neg returns -x.
func Neg[F field.Field[F]](x *Polynomial[F]) *Polynomial[F] {
	return Sub(New(x.field, x.order), x)
}

// MulByField returns x scaled by the field element c.
func MulByField[F field.Field[F]](x *Polynomial[F], c F) *Polynomial[F] {
	z := New(x.field, x.order)
	if c.IsZero() {
		return z
	}
	for i := 0; i < x.m.Len(); i++ {
		w, xc := x.m.At(i)
		z.AddTerm(w, xc.NewZero().Mul(xc, c))
	}
	return z
}

// DivByField returns x/c. It panics with *gberr.DivisionByZeroError if c
// is zero.
func DivByField[F field.Field[F]](x *Polynomial[F], c F) *Polynomial[F] {
	if c.IsZero() {
		panic(&gberr.DivisionByZeroError{Op: "polynomial.DivByField"})
	}
	z := New(x.field, x.order)
	for i := 0; i < x.m.Len(); i++ {
		w, xc := x.m.At(i)
		z.AddTerm(w, xc.NewZero().Div(xc, c))
	}
	return z
}

// MulByMonomial returns x*m.
func MulByMonomial[F field.Field[F]](x *Polynomial[F], m monomial.Monomial) *Polynomial[F] {
	z := New(x.field, x.order)
	for i := 0; i < x.m.Len(); i++ {
		w, c := x.m.At(i)
		z.m.Set(monomial.Mul(w, m), c)
	}
	return z
}

// DivByMonomialPartial returns the polynomial formed from the terms of x
// whose monomial is divisible by m, each divided by m; terms not
// divisible by m are dropped. It is the building block of full
// reduction (spec section 4.3).
func DivByMonomialPartial[F field.Field[F]](x *Polynomial[F], m monomial.Monomial) *Polynomial[F] {
	z := New(x.field, x.order)
	for i := 0; i < x.m.Len(); i++ {
		w, c := x.m.At(i)
		if monomial.IsDivisibleBy(w, m) {
			z.m.Set(monomial.DivExact(w, m), c)
		}
	}
	return z
}

// MulByPolynomial returns x*y.
func MulByPolynomial[F field.Field[F]](x, y *Polynomial[F]) *Polynomial[F] {
	z := New(x.field, x.order)
	for i := 0; i < x.m.Len(); i++ {
		xw, xc := x.m.At(i)
		for j := 0; j < y.m.Len(); j++ {
			yw, yc := y.m.At(j)
			z.AddTerm(monomial.Mul(xw, yw), xc.NewZero().Mul(xc, yc))
		}
	}
	return z
}

// ReduceBy performs single-leader reduction of p by g (spec section
// 4.3): while p is non-zero and lm(g) divides lm(p), subtract
// g * (lm(p)/lm(g)) * (lc(p)/lc(g)) from p. It panics with
// *gberr.DivisionByZeroError if g is the zero polynomial.
func (p *Polynomial[F]) ReduceBy(g *Polynomial[F]) {
	if g.IsZero() {
		panic(&gberr.DivisionByZeroError{Op: "Polynomial.ReduceBy"})
	}
	glt := g.LeadingTerm()
	for !p.IsZero() {
		plt := p.LeadingTerm()
		if !monomial.IsDivisibleBy(plt.Monomial, glt.Monomial) {
			break
		}
		quotientMonomial := monomial.DivExact(plt.Monomial, glt.Monomial)
		coefficient := plt.Coefficient.NewZero().Div(plt.Coefficient, glt.Coefficient)
		subtrahend := MulByField(MulByMonomial(g, quotientMonomial), coefficient)
		for i := 0; i < subtrahend.m.Len(); i++ {
			w, c := subtrahend.m.At(i)
			p.SubTerm(w, c)
		}
	}
}

// FullReduceBy reduces every term of p divisible by lm(g), not only the
// leading one (spec section 4.3).
func (p *Polynomial[F]) FullReduceBy(g *Polynomial[F]) {
	if g.IsZero() {
		panic(&gberr.DivisionByZeroError{Op: "Polynomial.FullReduceBy"})
	}
	glt := g.LeadingTerm()
	for !p.IsZero() {
		q := DivByMonomialPartial(p, glt.Monomial)
		if q.IsZero() {
			break
		}
		q = DivByField(q, glt.Coefficient)
		subtrahend := MulByPolynomial(g, q)
		for i := 0; i < subtrahend.m.Len(); i++ {
			w, c := subtrahend.m.At(i)
			p.SubTerm(w, c)
		}
	}
}

// String renders p as its terms in decreasing monomial order, joined by
// "+" (a negative coefficient's own "-" is what carries its sign, so two
// consecutive separators like "+-2" are expected, not collapsed), eliding
// a coefficient of exactly 1 on every non-constant term. This mirrors
// original_source/library/polynomial.h's operator<< literally, including
// its lack of sign collapsing.
func (p *Polynomial[F]) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := p.m.Len() - 1; i >= 0; i-- {
		w, c := p.m.At(i)
		if !first {
			b.WriteByte('+')
		}
		first = false
		if w.IsOne() {
			b.WriteString(c.String())
			continue
		}
		if !c.IsOne() {
			b.WriteString(c.String())
			b.WriteByte('*')
		}
		b.WriteString(w.String())
	}
	return b.String()
}
