// Package ideal implements polynomial ideals and the Buchberger
// completion pipeline of spec section 4.4: constructing a Groebner
// basis, minimizing it, autoreducing it, and combining both into a
// canonical basis independent of generator order.
//
// The overall shape -- a BasisType-tagged container with make_groebner_
// basis / make_minimization / make_autoreduction / make_minimal_groebner_
// basis methods -- is grounded on
// _examples/original_source/library/ideal.h. The Buchberger completion
// loop itself (growing the pair-index bound as new generators are
// discovered, rather than fixing it up front) follows the shape of
// github.com/fumin/nag's Buchberger function, adapted from
// noncommutative obstruction/overlap resolution down to the much
// simpler commutative S-pair test.
package ideal

import (
	"sort"
	"strings"

	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/gberr"
	"github.com/fumin/groebner/monomial"
	"github.com/fumin/groebner/polynomial"
)

// A State records how far an Ideal's generating set has been processed,
// mirroring original_source/library/ideal.h's BasisType enum.
type State int

const (
	// Any is an arbitrary, possibly redundant generating set.
	Any State = iota
	// Groebner is a Groebner basis: closed under S-polynomial reduction.
	Groebner
	// Minimized is a Groebner basis with no generator's leading monomial
	// dividing another's, and every leading coefficient 1.
	Minimized
	// Autoreduced is a minimized basis where no generator's non-leading
	// terms are reducible by the others.
	Autoreduced
	// Canonical is the unique (up to monomial order) reduced Groebner
	// basis: Groebner, Minimized, Autoreduced, and sorted by leading
	// monomial.
	Canonical
)

// An Ideal is a finitely generated polynomial ideal together with a
// record of how processed its generating set is.
type Ideal[F field.Field[F]] struct {
	field      F
	order      monomial.Order
	generators []*polynomial.Polynomial[F]
	state      State
}

// New returns the ideal generated by gens, in State Any. Each generator
// is normalized to a monic leading coefficient as it is added, matching
// original_source/library/ideal.h's add.
func New[F field.Field[F]](field F, order monomial.Order, gens ...*polynomial.Polynomial[F]) *Ideal[F] {
	id := &Ideal[F]{field: field, order: order, state: Any}
	for _, g := range gens {
		id.Add(g)
	}
	return id
}

// Field returns the coefficient field of the ideal.
func (id *Ideal[F]) Field() F { return id.field }

// Order returns the monomial order used by the ideal's generators.
func (id *Ideal[F]) Order() monomial.Order { return id.order }

// State reports how far the generating set has been processed.
func (id *Ideal[F]) State() State { return id.state }

// Generators returns the current generating set. The slice is owned by
// the caller and safe to mutate; it does not alias id's storage.
func (id *Ideal[F]) Generators() []*polynomial.Polynomial[F] {
	out := make([]*polynomial.Polynomial[F], len(id.generators))
	copy(out, id.generators)
	return out
}

// Size returns the greatest number of variables referenced by any
// generator, the ambient variable count used by algo.h's
// solutions_finiteness when the caller supplies no explicit bound
// (original_source/library/ideal.h's size()).
func (id *Ideal[F]) Size() int {
	max := 0
	for _, g := range id.generators {
		if s := g.Size(); s > max {
			max = s
		}
	}
	return max
}

// Add appends g, normalized to a monic leading coefficient, to the
// generating set and resets State to Any. Adding the zero polynomial is
// a no-op.
func (id *Ideal[F]) Add(g *polynomial.Polynomial[F]) {
	if g.IsZero() {
		return
	}
	lc := g.LeadingCoefficient()
	normalized := g
	if !lc.IsOne() {
		normalized = polynomial.DivByField(g, lc)
	} else {
		normalized = g.Clone()
	}
	id.generators = append(id.generators, normalized)
	id.state = Any
}

// Merge adds every generator of other to id, per
// original_source/library/ideal.h's operator+=.
func (id *Ideal[F]) Merge(other *Ideal[F]) {
	for _, g := range other.generators {
		id.Add(g)
	}
}

// Clone returns a deep, independent copy of id.
func (id *Ideal[F]) Clone() *Ideal[F] {
	out := &Ideal[F]{field: id.field, order: id.order, state: id.state}
	for _, g := range id.generators {
		out.generators = append(out.generators, g.Clone())
	}
	return out
}

// Reduce performs single-leader reduction of p against id's current
// generators, repeatedly finding a generator whose leading monomial
// divides lm(p) and subtracting the corresponding multiple until no
// generator applies. It mutates p in place.
func (id *Ideal[F]) Reduce(p *polynomial.Polynomial[F]) {
	for {
		changed := false
		for _, g := range id.generators {
			if p.IsZero() {
				return
			}
			if !monomial.IsDivisibleBy(p.LeadingMonomial(), g.LeadingMonomial()) {
				continue
			}
			// Generators are monic, so the multiplier is lc(p) itself.
			lt := p.LeadingTerm()
			q := polynomial.MulByField(polynomial.MulByMonomial(g, monomial.DivExact(lt.Monomial, g.LeadingMonomial())), lt.Coefficient)
			q.Terms(func(w monomial.Monomial, c F) bool {
				p.SubTerm(w, c)
				return true
			})
			changed = true
		}
		if !changed {
			return
		}
	}
}

// FullReduce reduces every term of p, not only its leading term, against
// id's generators until no term of any generator's leading monomial
// divides a surviving term.
func (id *Ideal[F]) FullReduce(p *polynomial.Polynomial[F]) {
	for {
		before := p.Clone()
		for _, g := range id.generators {
			if p.IsZero() {
				return
			}
			// Generators are monic, so the partial quotient is used
			// without dividing by lc(g).
			for q := polynomial.DivByMonomialPartial(p, g.LeadingMonomial()); !q.IsZero(); q = polynomial.DivByMonomialPartial(p, g.LeadingMonomial()) {
				polynomial.MulByPolynomial(g, q).Terms(func(w monomial.Monomial, c F) bool {
					p.SubTerm(w, c)
					return true
				})
			}
		}
		if p.Equal(before) {
			return
		}
	}
}

// Contains reports whether p reduces to zero against id's generators.
// The caller is responsible for first calling MakeGroebner if exact
// ideal membership (rather than mere reducibility) is required.
func (id *Ideal[F]) Contains(p *polynomial.Polynomial[F]) bool {
	q := p.Clone()
	id.FullReduce(q)
	return q.IsZero()
}

// IsFull reports whether id is the whole ring, i.e. whether 1 is a
// generator. It completes id to a Groebner basis first, since a
// non-trivial constant only surfaces as a generator once S-polynomial
// reduction has run (original_source/library/ideal.h's is_full).
func (id *Ideal[F]) IsFull() bool {
	id.MakeGroebner()
	for _, g := range id.generators {
		if g.IsConstant() && !g.IsZero() {
			return true
		}
	}
	return false
}

// AllPurePowersPresent reports whether, for every variable index
// 0..Size()-1, some generator's leading monomial is a pure power of that
// variable alone. It completes id to a Groebner basis first, then takes
// Size() fresh (Buchberger completion can grow the generator set and so
// the ambient variable count). A generator that is a non-zero constant
// trivially satisfies finiteness (the variety is empty), matching
// original_source/library/ideal.h's are_all_powers_exist.
func (id *Ideal[F]) AllPurePowersPresent() bool {
	id.MakeGroebner()
	n := id.Size()
	seen := make([]bool, n)
	for _, g := range id.generators {
		if g.IsConstant() && !g.IsZero() {
			return true
		}
		lm := g.LeadingMonomial()
		idx, ok := purePowerIndex(lm)
		if ok && idx < n {
			seen[idx] = true
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}

func purePowerIndex(m monomial.Monomial) (int, bool) {
	idx := -1
	for i := 0; i < m.Size(); i++ {
		if m.Degree(i) == 0 {
			continue
		}
		if idx != -1 {
			return 0, false
		}
		idx = i
	}
	return idx, idx != -1
}

// MakeGroebner completes id's generating set into a Groebner basis by
// Buchberger's algorithm: repeatedly forming S-polynomials of generator
// pairs, fully reducing them against the current basis, and appending
// any non-zero remainder. The outer bound on the pair index grows as new
// generators are discovered, the same loop shape as
// github.com/fumin/nag's Buchberger.
func (id *Ideal[F]) MakeGroebner() {
	if id.state >= Groebner {
		return
	}
	for i := 0; i < len(id.generators); i++ {
		for j := 0; j < i; j++ {
			gi, gj := id.generators[i], id.generators[j]
			lmi, lmj := gi.LeadingMonomial(), gj.LeadingMonomial()
			meet := monomial.Meet(lmi, lmj)
			if meet.IsOne() && !(lmi.IsOne() || lmj.IsOne()) {
				// Coprime leading monomials: Buchberger's first criterion,
				// the S-polynomial necessarily reduces to zero.
				continue
			}
			s := sPolynomial(gi, gj)
			if s.IsZero() {
				continue
			}
			id.FullReduce(s)
			if !s.IsZero() {
				id.Add(s)
			}
		}
	}
	id.state = Groebner
}

// sPolynomial forms the S-polynomial of f and g: the combination that
// cancels their leading terms against the least common multiple of
// their leading monomials.
func sPolynomial[F field.Field[F]](f, g *polynomial.Polynomial[F]) *polynomial.Polynomial[F] {
	lmf, lmg := f.LeadingMonomial(), g.LeadingMonomial()
	lcm := monomial.Join(lmf, lmg)
	fCoeff := f.LeadingCoefficient()
	gCoeff := g.LeadingCoefficient()

	fTerm := polynomial.MulByField(
		polynomial.MulByMonomial(f, monomial.DivExact(lcm, lmf)),
		gCoeff,
	)
	gTerm := polynomial.MulByField(
		polynomial.MulByMonomial(g, monomial.DivExact(lcm, lmg)),
		fCoeff,
	)
	return polynomial.Sub(fTerm, gTerm)
}

// Minimize removes redundant generators from a Groebner basis: whenever
// one generator's leading monomial divides another's, the divisible one
// is dropped. Ties are broken by earliest-index-survives, matching
// original_source/library/ideal.h's make_minimization (which iterates
// forward and swaps the removed element to the back).
func (id *Ideal[F]) Minimize() {
	if id.state < Groebner {
		id.MakeGroebner()
	}
	if id.state >= Minimized {
		return
	}
	kept := make([]*polynomial.Polynomial[F], 0, len(id.generators))
	for i, gi := range id.generators {
		redundant := false
		lmi := gi.LeadingMonomial()
		for j, gj := range id.generators {
			if i == j {
				continue
			}
			lmj := gj.LeadingMonomial()
			if monomial.IsDivisibleBy(lmi, lmj) && (i > j || !lmi.Equal(lmj)) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, gi)
		}
	}
	id.generators = kept
	id.state = Minimized
}

// Autoreduce fully reduces each generator's non-leading terms against
// the rest of the basis, per
// original_source/library/ideal.h's make_autoreduction.
func (id *Ideal[F]) Autoreduce() {
	if id.state < Minimized {
		id.Minimize()
	}
	if id.state >= Autoreduced {
		return
	}
	for i, gi := range id.generators {
		lt := gi.LeadingTerm()
		remainder := polynomial.Sub(gi, polynomial.New(id.field, id.order, polynomial.Term[F]{
			Monomial:    lt.Monomial,
			Coefficient: lt.Coefficient,
		}))
		rest := &Ideal[F]{field: id.field, order: id.order, state: Minimized}
		for j, gj := range id.generators {
			if i != j {
				rest.generators = append(rest.generators, gj)
			}
		}
		rest.FullReduce(remainder)
		id.generators[i] = polynomial.Add(remainder, polynomial.New(id.field, id.order, polynomial.Term[F]{
			Monomial:    lt.Monomial,
			Coefficient: lt.Coefficient,
		}))
	}
	id.assertNoLeadingMonomialTies("Ideal.Autoreduce")
	id.state = Autoreduced
}

// assertNoLeadingMonomialTies panics with *gberr.DuplicateLeadingMonomialError
// if two generators share a leading monomial. Autoreduce only rewrites
// non-leading terms, so Minimize's guarantee of distinct leading
// monomials among surviving generators must still hold; a tie here
// means Minimize or the Buchberger loop broke that invariant.
func (id *Ideal[F]) assertNoLeadingMonomialTies(op string) {
	seen := make(map[string]bool, len(id.generators))
	for _, g := range id.generators {
		lm := g.LeadingMonomial().String()
		if seen[lm] {
			panic(&gberr.DuplicateLeadingMonomialError{Op: op, Monomial: g.LeadingMonomial()})
		}
		seen[lm] = true
	}
}

// Canonicalize reduces id to the unique reduced Groebner basis: Groebner
// completion, minimization, autoreduction, then a sort by leading
// monomial so that canonical form is independent of insertion order
// (original_source/library/ideal.h's make_minimal_groebner_basis).
func (id *Ideal[F]) Canonicalize() {
	if id.state >= Canonical {
		return
	}
	id.Autoreduce()
	sort.SliceStable(id.generators, func(i, j int) bool {
		return id.order(id.generators[i].LeadingMonomial(), id.generators[j].LeadingMonomial()) > 0
	})
	id.state = Canonical
}

// String renders id's current generating set as "{g1, g2, ...}", per
// original_source/library/ideal.h's operator<<.
func (id *Ideal[F]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, g := range id.generators {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.String())
	}
	b.WriteByte('}')
	return b.String()
}
