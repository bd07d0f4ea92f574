package polynomial_test

import (
	"testing"

	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/monomial"
	"github.com/fumin/groebner/polynomial"
)

func term(f *field.Rational, coeff int64, degrees ...uint32) polynomial.Term[*field.Rational] {
	return polynomial.Term[*field.Rational]{
		Monomial:    monomial.New(degrees...),
		Coefficient: f.NewFromInt(coeff),
	}
}

func TestAddSubRingLaws(t *testing.T) {
	// Mirrors original_source/examples/polynomial_example.cpp: build
	// x_0^2 - x_1 and x_1 + 2, check sum and difference.
	f := field.NewRational(1, 1)
	p := polynomial.New(f, monomial.Lex,
		term(f, 1, 2),
		term(f, -1, 0, 1),
	)
	q := polynomial.New(f, monomial.Lex,
		term(f, 1, 0, 1),
		term(f, 2),
	)

	sum := polynomial.Add(p, q)
	if got := sum.String(); got != "x_0^2+2" {
		t.Errorf("sum: got %q, want x_0^2+2", got)
	}

	diff := polynomial.Sub(p, q)
	if got := diff.String(); got != "x_0^2+-2*x_1+-2" {
		t.Errorf("diff: got %q, want x_0^2+-2*x_1+-2", got)
	}

	if !polynomial.Add(diff, q).Equal(p) {
		t.Errorf("(p-q)+q should equal p")
	}
}

func TestMulCommutative(t *testing.T) {
	f := field.NewRational(1, 1)
	x0 := polynomial.New(f, monomial.Lex, term(f, 1, 1))
	x1 := polynomial.New(f, monomial.Lex, term(f, 1, 0, 1))

	a := polynomial.MulByPolynomial(x0, x1)
	b := polynomial.MulByPolynomial(x1, x0)
	if !a.Equal(b) {
		t.Errorf("multiplication should be commutative: %v vs %v", a, b)
	}
	if got := a.String(); got != "x_0*x_1" {
		t.Errorf("x_0*x_1: got %q", got)
	}
}

func TestLeadingTermOfZeroPanics(t *testing.T) {
	f := field.NewRational(1, 1)
	zero := polynomial.New(f, monomial.Lex)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on LeadingTerm of zero polynomial")
		}
	}()
	zero.LeadingTerm()
}

func TestReduceBySingleLeader(t *testing.T) {
	f := field.NewRational(1, 1)
	// p = x_0^2 - x_1, g = x_0^2 - x_2. Reducing p by g leaves x_2 - x_1.
	p := polynomial.New(f, monomial.Lex,
		term(f, 1, 2),
		term(f, -1, 0, 1),
	)
	g := polynomial.New(f, monomial.Lex,
		term(f, 1, 2),
		term(f, -1, 0, 0, 1),
	)
	p.ReduceBy(g)
	if got := p.String(); got != "-1*x_1+x_2" {
		t.Errorf("reduced: got %q, want -1*x_1+x_2", got)
	}
}

func TestFullReduceByReducesAllTerms(t *testing.T) {
	f := field.NewRational(1, 1)
	// p = x_0 + x_0*x_1, g = x_0 - 1. Every term carries a factor of x_0.
	p := polynomial.New(f, monomial.Lex,
		term(f, 1, 1),
		term(f, 1, 1, 1),
	)
	g := polynomial.New(f, monomial.Lex,
		term(f, 1, 1),
		term(f, -1),
	)
	p.FullReduceBy(g)
	if got := p.String(); got != "x_1+1" {
		t.Errorf("full reduced: got %q, want x_1+1", got)
	}
}

func TestDivByMonomialPartialDropsNonDivisible(t *testing.T) {
	f := field.NewRational(1, 1)
	p := polynomial.New(f, monomial.Lex,
		term(f, 1, 2, 1),
		term(f, 1, 0, 2),
	)
	m := monomial.New(1)
	q := polynomial.DivByMonomialPartial(p, m)
	if got := q.String(); got != "x_0*x_1" {
		t.Errorf("got %q, want x_0*x_1", got)
	}
}

func TestIsConstantAndIsZero(t *testing.T) {
	f := field.NewRational(1, 1)
	zero := polynomial.New(f, monomial.Lex)
	if !zero.IsZero() || !zero.IsConstant() {
		t.Error("zero polynomial should be zero and constant")
	}
	five := polynomial.New(f, monomial.Lex, term(f, 5))
	if five.IsZero() || !five.IsConstant() {
		t.Error("5 should be non-zero and constant")
	}
	x0 := polynomial.New(f, monomial.Lex, term(f, 1, 1))
	if x0.IsConstant() {
		t.Error("x_0 should not be constant")
	}
}

func TestStringConstantTermKeepsCoefficientOne(t *testing.T) {
	f := field.NewRational(1, 1)
	one := polynomial.New(f, monomial.Lex, term(f, 1))
	if got := one.String(); got != "1" {
		t.Errorf("got %q, want 1", got)
	}
	x0 := polynomial.New(f, monomial.Lex, term(f, 1, 1))
	if got := x0.String(); got != "x_0" {
		t.Errorf("coefficient 1 should be elided on non-constant term: got %q", got)
	}
}
