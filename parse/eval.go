package parse

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/gberr"
	"github.com/fumin/groebner/monomial"
	"github.com/fumin/groebner/parse/scan"
	"github.com/fumin/groebner/polynomial"
)

// ParsePolynomial parses the textual polynomial form of spec section 6
// (terms separated by +/-, atoms within a term separated by *, integer
// or p/q coefficients, variables written x_i or x_i^d) into a
// polynomial.Polynomial[F] over the given field and monomial order. It
// adapts the teacher's (github.com/fumin/nag) two-stage scan/parse into
// a tree, then generic evaluation pipeline, in place of the teacher's
// Rat-specific root-package parse.go.
func ParsePolynomial[F field.Field[F]](input string, fld F, order monomial.Order) (*polynomial.Polynomial[F], error) {
	scanner := scan.NewScanner(bytes.NewBufferString(input))
	root, err := Parse(scanner)
	if err != nil {
		return nil, &gberr.ParseError{Input: input, ByteStart: 0, ByteEnd: len(input), Message: err.Error()}
	}
	return eval(root, input, fld, order)
}

func eval[F field.Field[F]](n *Node, input string, fld F, order monomial.Order) (*polynomial.Polynomial[F], error) {
	switch n.Token.Type {
	case scan.Int:
		v, err := strconv.ParseInt(n.Token.Text, 10, 64)
		if err != nil {
			return nil, parseErrorAt(input, n, "invalid integer literal")
		}
		return constant(fld, order, fld.NewFromInt(v)), nil

	case scan.Identifier:
		idx, ok := variableIndex(n.Token.Text)
		if !ok {
			return nil, parseErrorAt(input, n, "expected a variable of the form x_i")
		}
		degrees := make([]uint32, idx+1)
		degrees[idx] = 1
		return polynomial.New(fld, order, polynomial.Term[F]{
			Monomial:    monomial.New(degrees...),
			Coefficient: fld.NewOne(),
		}), nil

	case scan.Parenthesis:
		return eval(n.Left, input, fld, order)

	case scan.Operator:
		return evalOperator(n, input, fld, order)

	default:
		return nil, parseErrorAt(input, n, "unexpected token")
	}
}

func evalOperator[F field.Field[F]](n *Node, input string, fld F, order monomial.Order) (*polynomial.Polynomial[F], error) {
	left, err := eval(n.Left, input, fld, order)
	if err != nil {
		return nil, err
	}

	switch n.Token.Text {
	case "+":
		right, err := eval(n.Right, input, fld, order)
		if err != nil {
			return nil, err
		}
		return polynomial.Add(left, right), nil

	case "-":
		right, err := eval(n.Right, input, fld, order)
		if err != nil {
			return nil, err
		}
		return polynomial.Sub(left, right), nil

	case "*":
		right, err := eval(n.Right, input, fld, order)
		if err != nil {
			return nil, err
		}
		return polynomial.MulByPolynomial(left, right), nil

	case "/":
		right, err := eval(n.Right, input, fld, order)
		if err != nil {
			return nil, err
		}
		if !right.IsConstant() {
			return nil, parseErrorAt(input, n, "division by a non-constant polynomial is not supported")
		}
		if right.IsZero() {
			return nil, parseErrorAt(input, n, "division by zero")
		}
		return polynomial.DivByField(left, right.LeadingCoefficient()), nil

	case "^":
		exponent, err := intExponent(n.Right)
		if err != nil {
			return nil, parseErrorAt(input, n, "exponent must be a non-negative integer")
		}
		result := constant(fld, order, fld.NewOne())
		for i := int64(0); i < exponent; i++ {
			result = polynomial.MulByPolynomial(result, left)
		}
		return result, nil

	default:
		return nil, parseErrorAt(input, n, "unsupported operator "+n.Token.Text)
	}
}

func intExponent(n *Node) (int64, error) {
	if n.Token.Type != scan.Int {
		return 0, &gberr.ParseError{Message: "exponent must be an integer literal"}
	}
	return strconv.ParseInt(n.Token.Text, 10, 64)
}

func constant[F field.Field[F]](fld F, order monomial.Order, c F) *polynomial.Polynomial[F] {
	return polynomial.New(fld, order, polynomial.Term[F]{Monomial: monomial.New(), Coefficient: c})
}

// variableIndex reports whether text has the form x_<digits>, returning
// the parsed index.
func variableIndex(text string) (int, bool) {
	rest, ok := strings.CutPrefix(text, "x_")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseErrorAt(input string, n *Node, message string) error {
	start := 0
	end := len(input)
	if n != nil && n.Token.Location.Line != AddedLine {
		start = n.Token.Location.Column
		end = start + len(n.Token.Text)
	}
	return &gberr.ParseError{Input: input, ByteStart: start, ByteEnd: end, Message: message}
}
