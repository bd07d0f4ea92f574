package ideal_test

import (
	"testing"

	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/ideal"
	"github.com/fumin/groebner/monomial"
)

func TestElementarySymmetricIdealMembersVanish(t *testing.T) {
	f := field.NewRational(1, 1)
	order := monomial.Lex

	// sigma_1 = x_0+x_1+x_2 = 3, sigma_2 = 3, sigma_3 = 1: the roots
	// 1,1,1 of (t-1)^3.
	id := ideal.ElementarySymmetricIdeal(f, order, 3, []int64{3, 3, 1})
	if got := len(id.Generators()); got != 3 {
		t.Fatalf("got %d generators, want 3", got)
	}
	id.MakeGroebner()
	if id.IsFull() {
		t.Error("a consistent elementary-symmetric system should not be the full ring")
	}
}

func TestCyclicIdealGeneratorCount(t *testing.T) {
	f := field.NewRational(1, 1)
	order := monomial.Lex

	id := ideal.CyclicIdeal(f, order, 3)
	if got := len(id.Generators()); got != 3 {
		t.Fatalf("got %d generators, want 3 (cyclic-3 has n-1 sum generators plus one product generator)", got)
	}
}
