package monomial_test

import (
	"testing"

	"github.com/fumin/groebner/monomial"
)

func TestCanonicalForm(t *testing.T) {
	// Trailing zeros must be stripped by every constructor.
	m := monomial.New(1, 0, 2, 0)
	if m.Size() != 3 {
		t.Fatalf("Size: got %d, want 3", m.Size())
	}
	if m.String() != "x_0*x_2^2" {
		t.Errorf("String: got %q", m.String())
	}

	one := monomial.New()
	if !one.IsOne() || one.String() != "1" {
		t.Errorf("empty monomial should be 1, got %q", one.String())
	}
}

func TestDegreePastSize(t *testing.T) {
	m := monomial.New(1, 2)
	if got := m.Degree(5); got != 0 {
		t.Errorf("Degree past size: got %d, want 0", got)
	}
}

func TestMonomialExample(t *testing.T) {
	// Mirrors original_source/examples/monomial_example.cpp.
	b := monomial.New(0, 1, 0, 2, 0, 3, 1)
	c := monomial.New(0, 0, 0, 1, 0, 0, 0)
	d := monomial.New(1000)

	cc := monomial.Mul(c, c)
	quotient := monomial.DivExact(b, cc)
	if quotient.String() != "x_1*x_5^3*x_6" {
		t.Errorf("b/(c*c): got %q", quotient.String())
	}

	if got := b.Degree(5); got != 3 {
		t.Errorf("b.Degree(5): got %d, want 3", got)
	}

	ccc := monomial.Mul(cc, c)
	cccd := monomial.Mul(ccc, d)
	intersection := monomial.Meet(b, cccd)
	if intersection.String() != "x_3^2" {
		t.Errorf("meet(b, c^3*d): got %q", intersection.String())
	}
}

func TestDivExactNotDivisible(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-divisible monomial division")
		}
	}()
	monomial.DivExact(monomial.New(1, 0), monomial.New(0, 1))
}

func TestIsDivisibleBy(t *testing.T) {
	tests := []struct {
		m, d Monomial
		want bool
	}{
		{monomial.New(2, 3), monomial.New(1, 1), true},
		{monomial.New(2, 3), monomial.New(3, 0), false},
		{monomial.New(2), monomial.New(0, 0, 1), false},
		{monomial.New(), monomial.New(), true},
	}
	for _, tt := range tests {
		if got := monomial.IsDivisibleBy(tt.m, tt.d); got != tt.want {
			t.Errorf("IsDivisibleBy(%v, %v): got %v, want %v", tt.m, tt.d, got, tt.want)
		}
	}
}

type Monomial = monomial.Monomial

func TestLexOrder(t *testing.T) {
	// x_0 > x_1 > x_2 under lex, the order spec sections 8's scenarios assume.
	x0 := monomial.New(1, 0, 0)
	x1 := monomial.New(0, 1, 0)
	if monomial.Lex(x0, x1) <= 0 {
		t.Errorf("expected x_0 > x_1 under Lex")
	}
	x0x1 := monomial.New(1, 1, 0)
	x2sq := monomial.New(0, 0, 2)
	if monomial.Lex(x0x1, x2sq) <= 0 {
		t.Errorf("expected x_0*x_1 > x_2^2 under Lex")
	}
}

func TestDeglexOrder(t *testing.T) {
	lowDegHighLex := monomial.New(1)
	highDegLowLex := monomial.New(0, 5)
	if monomial.Deglex(highDegLowLex, lowDegHighLex) <= 0 {
		t.Errorf("expected degree to dominate over lex in Deglex")
	}
}
