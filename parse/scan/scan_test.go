package scan

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"slices"
	"testing"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
	}{
		{
			input: `x_0*x_1^2+3/2*x_12-x_0`,
			tokens: []Token{
				{Type: Identifier, Text: "x_0", Location: Location{Line: 0, Column: 0}},
				{Type: Operator, Text: "*", Location: Location{Line: 0, Column: 3}},
				{Type: Identifier, Text: "x_1", Location: Location{Line: 0, Column: 4}},
				{Type: Operator, Text: "^", Location: Location{Line: 0, Column: 7}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 8}},
				{Type: Operator, Text: "+", Location: Location{Line: 0, Column: 9}},
				{Type: Int, Text: "3", Location: Location{Line: 0, Column: 10}},
				{Type: Operator, Text: "/", Location: Location{Line: 0, Column: 11}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 12}},
				{Type: Operator, Text: "*", Location: Location{Line: 0, Column: 13}},
				{Type: Identifier, Text: "x_12", Location: Location{Line: 0, Column: 14}},
				{Type: Operator, Text: "-", Location: Location{Line: 0, Column: 18}},
				{Type: Identifier, Text: "x_0", Location: Location{Line: 0, Column: 19}},
			},
		},
		{
			input: `(x_0+x_1)^2x_2`,
			tokens: []Token{
				{Type: Parenthesis, Text: "(", Location: Location{Line: 0, Column: 0}},
				{Type: Identifier, Text: "x_0", Location: Location{Line: 0, Column: 1}},
				{Type: Operator, Text: "+", Location: Location{Line: 0, Column: 4}},
				{Type: Identifier, Text: "x_1", Location: Location{Line: 0, Column: 5}},
				{Type: Parenthesis, Text: ")", Location: Location{Line: 0, Column: 8}},
				{Type: Operator, Text: "^", Location: Location{Line: 0, Column: 9}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 10}},
				{Type: Identifier, Text: "x_2", Location: Location{Line: 0, Column: 11}},
			},
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			l := NewScanner(bytes.NewBufferString(test.input))
			var tokens []Token
			for i := l.Next(); i.Type != EOF; i = l.Next() {
				tokens = append(tokens, i)
			}
			if !slices.Equal(tokens, test.tokens) {
				t.Errorf("%v", tokens)
			}
		})
	}
}

func TestMain(m *testing.M) {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds | log.Llongfile | log.LstdFlags)

	m.Run()
}
