package monomial

import "cmp"

// An Order is a monomial order: a total, well-founded comparator
// compatible with multiplication (a < b => a*c < b*c). The meaning of
// the return value matches cmp.Compare. Keeping it a plain function
// value, rather than an interface hierarchy, follows the teacher's
// (github.com/fumin/nag) Order capability and spec section 9's note that
// term orders must be pluggable without touching polynomial or ideal
// code.
type Order func(x, y Monomial) int

// Lex is the default order of spec section 4.2: pure lexicographic
// comparison of the exponent vector, padded with zeros on the right.
func Lex(x, y Monomial) int {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if c := cmp.Compare(x.Degree(i), y.Degree(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Deglex compares by total degree first, breaking ties with Lex.
func Deglex(x, y Monomial) int {
	if c := cmp.Compare(degree(x), degree(y)); c != 0 {
		return c
	}
	return Lex(x, y)
}

// GradedRevLex compares by total degree first, breaking ties by reverse
// lexicographic order (the last differing exponent, counted from the
// highest index, with the smaller exponent ranked greater).
func GradedRevLex(x, y Monomial) int {
	if c := cmp.Compare(degree(x), degree(y)); c != 0 {
		return c
	}
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	for i := n - 1; i >= 0; i-- {
		if c := cmp.Compare(y.Degree(i), x.Degree(i)); c != 0 {
			return c
		}
	}
	return 0
}

func degree(m Monomial) uint64 {
	var d uint64
	for _, e := range m {
		d += uint64(e)
	}
	return d
}
