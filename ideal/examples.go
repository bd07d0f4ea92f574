package ideal

import (
	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/monomial"
	"github.com/fumin/groebner/polynomial"
)

// ElementarySymmetricIdeal returns the ideal generated by
// e_k(x_0,...,x_{n-1}) - targets[k-1] for k = 1..n, where e_k is the k-th
// elementary symmetric polynomial in n variables and a missing target is
// taken as 0: the sigma_n benchmark family of
// original_source/examples/benchmark.cpp's get_sigma.
func ElementarySymmetricIdeal[F field.Field[F]](f F, order monomial.Order, n int, targets []int64) *Ideal[F] {
	id := New(f, order)
	for k := 1; k <= n; k++ {
		e := elementarySymmetric(f, order, n, k)
		var target int64
		if k-1 < len(targets) {
			target = targets[k-1]
		}
		e.SubTerm(monomial.New(), f.NewFromInt(target))
		id.Add(e)
	}
	return id
}

// elementarySymmetric returns e_k(x_0,...,x_{n-1}), the sum of all
// degree-k squarefree monomials in n variables, built by the standard
// subset-enumeration used by benchmark.cpp's get_sigma.
func elementarySymmetric[F field.Field[F]](f F, order monomial.Order, n, k int) *polynomial.Polynomial[F] {
	e := polynomial.New(f, order)
	var choose func(start int, chosen []int)
	choose = func(start int, chosen []int) {
		if len(chosen) == k {
			degrees := make([]uint32, n)
			for _, idx := range chosen {
				degrees[idx] = 1
			}
			e.AddTerm(monomial.New(degrees...), f.NewOne())
			return
		}
		for i := start; i < n; i++ {
			choose(i+1, append(chosen, i))
		}
	}
	choose(0, nil)
	return e
}

// CyclicIdeal returns the cyclic-n benchmark ideal of
// original_source/examples/benchmark.cpp's get_cyclic: generator k (for
// k = 1..n-1) is the sum over all n cyclic rotations of the product of k
// consecutive variables, and the final generator is
// x_0*x_1*...*x_{n-1} - 1.
func CyclicIdeal[F field.Field[F]](f F, order monomial.Order, n int) *Ideal[F] {
	id := New(f, order)
	for k := 1; k < n; k++ {
		g := polynomial.New(f, order)
		for start := 0; start < n; start++ {
			degrees := make([]uint32, n)
			for j := 0; j < k; j++ {
				degrees[(start+j)%n] = 1
			}
			g.AddTerm(monomial.New(degrees...), f.NewOne())
		}
		id.Add(g)
	}

	full := polynomial.New(f, order)
	degrees := make([]uint32, n)
	for i := range degrees {
		degrees[i] = 1
	}
	full.AddTerm(monomial.New(degrees...), f.NewOne())
	full.SubTerm(monomial.New(), f.NewOne())
	id.Add(full)

	return id
}
