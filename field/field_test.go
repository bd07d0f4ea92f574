package field_test

import (
	"testing"

	"github.com/fumin/groebner/field"
)

func TestRationalArithmetic(t *testing.T) {
	a := field.NewRational(1, 2)
	b := field.NewRational(1, 3)

	sum := a.NewZero().Add(a, b)
	if sum.String() != "5/6" {
		t.Errorf("Add: got %s, want 5/6", sum)
	}

	prod := a.NewZero().Mul(a, b)
	if prod.String() != "1/6" {
		t.Errorf("Mul: got %s, want 1/6", prod)
	}

	quot := a.NewZero().Div(a, b)
	if quot.String() != "3/2" {
		t.Errorf("Div: got %s, want 3/2", quot)
	}
}

func TestRationalDivByZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic dividing by zero")
		}
	}()
	a := field.NewRational(1, 1)
	zero := a.NewZero()
	a.NewZero().Div(a, zero)
}

func TestPrimeFieldModularExample(t *testing.T) {
	// Mirrors original_source/examples/modular_example.cpp.
	f := field.NewPrimeField(239)
	a := f.Element(21)
	b := f.Element(50)
	c := f.Element(31)

	sum := a.NewZero().Add(a, b)
	if sum.Value() != 71 {
		t.Errorf("a+b: got %d, want 71", sum.Value())
	}

	twoHundred := f.Element(200)
	twoHundredDivC := twoHundred.NewZero().Div(twoHundred, c)
	want := (200 * modInverse(31, 239)) % 239
	if twoHundredDivC.Value() != want {
		t.Errorf("200/c: got %d, want %d", twoHundredDivC.Value(), want)
	}
}

func TestPrimeFieldS6Coefficient(t *testing.T) {
	// -1 mod 19 == 18, used by spec scenario S6.
	f := field.NewPrimeField(19)
	neg1 := f.Element(0).NewZero()
	neg1 = neg1.Sub(neg1, f.Element(1))
	if neg1.Value() != 18 {
		t.Errorf("-1 mod 19: got %d, want 18", neg1.Value())
	}
	if neg1.String() != "[18 (modulo 19)]" {
		t.Errorf("String: got %q", neg1.String())
	}
}

func TestPrimeFieldOutOfRange(t *testing.T) {
	f := field.NewPrimeField(7)
	if _, err := f.NewElement(7); err == nil {
		t.Fatal("expected OutOfRange error for value == p")
	}
	if _, err := f.NewElement(-1); err == nil {
		t.Fatal("expected OutOfRange error for negative value")
	}
	e, err := f.NewElement(3)
	if err != nil || e.Value() != 3 {
		t.Fatalf("NewElement(3): got %v, %v", e, err)
	}
}

func modInverse(a, m int64) int64 {
	g := field.NewPrimeField(m)
	return g.Element(1).Div(g.Element(1), g.Element(a)).Value()
}
