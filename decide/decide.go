// Package decide implements the decision layer of spec section 4.5:
// solvability, finiteness of the solution set, radical membership, and
// equivalence of two polynomial systems, all built from ideal.Ideal.
//
// Every routine here is a direct port of
// _examples/original_source/algo/algo.h's solutions_existance,
// solutions_finiteness, radical_contains, is_systems_subset, and
// systems_equivalence, kept as small compositions over the Field/
// Polynomial/Ideal capabilities exactly the way the original composes
// them over its own Ideal type.
package decide

import (
	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/gberr"
	"github.com/fumin/groebner/ideal"
	"github.com/fumin/groebner/monomial"
	"github.com/fumin/groebner/polynomial"
)

// SolutionsExist reports whether the system of polynomials has a
// solution over the field's algebraic closure: the ideal they generate
// is proper, i.e. canonicalization does not yield {1}.
// (algo.h's solutions_existance.)
func SolutionsExist[F field.Field[F]](f F, order monomial.Order, polys []*polynomial.Polynomial[F]) bool {
	id := ideal.New(f, order, polys...)
	id.MakeGroebner()
	return !id.IsFull()
}

// SolutionsFinite reports whether the variety cut out by polys has
// finitely many points, given that the ambient space has n variables. A
// zero n infers the variable count from the generators' own maximum
// term size; a non-zero n must be at least that size, since the caller
// cannot claim fewer ambient variables than the polynomials actually
// use. It panics with *gberr.OutOfRangeError otherwise. If n names more
// variables than polys actually reference, those extra variables are
// free, so the variety is finite only when it is empty to begin with;
// otherwise finiteness is decided by whether a pure power of every
// variable appears among the leading monomials of the completed basis.
// (algo.h's solutions_finiteness.)
func SolutionsFinite[F field.Field[F]](f F, order monomial.Order, polys []*polynomial.Polynomial[F], n int) bool {
	id := ideal.New(f, order, polys...)
	curSize := id.Size()
	size := n
	if size == 0 {
		size = curSize
	} else if size < curSize {
		panic(&gberr.OutOfRangeError{
			Op:      "decide.SolutionsFinite",
			Value:   n,
			Lo:      curSize,
			Message: "n must be at least the number of variables the polynomials reference",
		})
	}
	if size > curSize {
		return id.IsFull()
	}
	return id.AllPurePowersPresent()
}

// RadicalContains reports whether p lies in the radical of the ideal
// generated by polys, via the Rabinowitsch trick: introduce a fresh
// indeterminate at index size (one past every variable polys use, not
// counting p itself, matching algo.h's use of ideal.size() rather than
// the size of the tested polynomial) and test whether
// <polys> ∪ {1 - y*p} is the full ring. (algo.h's radical_contains.)
func RadicalContains[F field.Field[F]](f F, order monomial.Order, p *polynomial.Polynomial[F], polys []*polynomial.Polynomial[F]) bool {
	id := ideal.New(f, order, polys...)
	size := id.Size()

	witnessDegrees := make([]uint32, size+1)
	witnessDegrees[size] = 1
	witness := monomial.New(witnessDegrees...)

	rabinowitsch := polynomial.New(f, order, polynomial.Term[F]{Monomial: monomial.New(), Coefficient: f.NewOne()})
	rabinowitsch = polynomial.Sub(rabinowitsch, polynomial.MulByMonomial(p, witness))

	id.Add(rabinowitsch)
	return id.IsFull()
}

// IsSystemsSubset reports whether the variety of subset is contained in
// the variety of superset: every polynomial in superset lies in the
// radical of the ideal generated by subset. (algo.h's
// is_systems_subset.)
func IsSystemsSubset[F field.Field[F]](f F, order monomial.Order, subset, superset []*polynomial.Polynomial[F]) bool {
	for _, p := range superset {
		if !RadicalContains(f, order, p, subset) {
			return false
		}
	}
	return true
}

// SystemsEquivalent reports whether p and q cut out the same variety:
// each is a systems-subset of the other. (algo.h's systems_equivalence.)
func SystemsEquivalent[F field.Field[F]](f F, order monomial.Order, p, q []*polynomial.Polynomial[F]) bool {
	return IsSystemsSubset(f, order, p, q) && IsSystemsSubset(f, order, q, p)
}
