package parse_test

import (
	"testing"

	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/monomial"
	"github.com/fumin/groebner/parse"
)

func TestParsePolynomialRational(t *testing.T) {
	f := field.NewRational(1, 1)
	tests := []struct {
		input string
		want  string
	}{
		// The textual form never collapses a "+" separator into the next
		// term's own "-" sign (original_source/library/polynomial.h's
		// operator<< does not special-case sign), so a subtracted term
		// reads "+-...".
		{"x_0^2-x_1", "x_0^2+-1*x_1"},
		{"x_0*x_1+x_1*x_2+x_2*x_0", "x_0*x_1+x_0*x_2+x_1*x_2"},
		{"3/2*x_0-1", "3/2*x_0+-1"},
		{"x_0*x_1*x_2-1", "x_0*x_1*x_2+-1"},
		{"(x_0+x_1)^2", "x_0^2+2*x_0*x_1+x_1^2"},
	}
	for _, tt := range tests {
		got, err := parse.ParsePolynomial(tt.input, f, monomial.Lex)
		if err != nil {
			t.Fatalf("ParsePolynomial(%q): %v", tt.input, err)
		}
		if got.String() != tt.want {
			t.Errorf("ParsePolynomial(%q): got %q, want %q", tt.input, got.String(), tt.want)
		}
	}
}

func TestParsePolynomialPrimeField(t *testing.T) {
	// S6: x_0^2-x_1 over GF(19); the coefficient of x_1 is -1 mod 19 = 18,
	// rendered with Modular's own bracket form
	// (original_source/fields/modular.h's operator<<).
	gf19 := field.NewPrimeField(19)
	got, err := parse.ParsePolynomial("x_0^2-x_1", gf19.Element(0), monomial.Lex)
	if err != nil {
		t.Fatalf("ParsePolynomial: %v", err)
	}
	if want := "x_0^2+[18 (modulo 19)]*x_1"; got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}

func TestParsePolynomialUndefinedVariableIsError(t *testing.T) {
	f := field.NewRational(1, 1)
	if _, err := parse.ParsePolynomial("a+1", f, monomial.Lex); err == nil {
		t.Fatal("expected a parse error for a bare-letter identifier")
	}
}
