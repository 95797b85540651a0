package bf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// To each formula, associate the expected tree.
var formulaToExpr = map[string]Expr{
	"A":      Var('A'),
	"0":      Val(false),
	"1":      Val(true),
	"A!":     Not{Var('A')},
	"A!!":    Not{Not{Var('A')}},
	"AB|":    Or{Var('A'), Var('B')},
	"AB&":    And{Var('A'), Var('B')},
	"AB^":    Xor{Var('A'), Var('B')},
	"AB>":    Implies{Var('A'), Var('B')},
	"AB=":    Equivalent{Var('A'), Var('B')},
	"BA>":    Implies{Var('B'), Var('A')},
	"AB&C|!": Not{Or{And{Var('A'), Var('B')}, Var('C')}},
	"ABC&|":  Or{Var('A'), And{Var('B'), Var('C')}},
	"A1&0=":  Equivalent{And{Var('A'), Val(true)}, Val(false)},
}

func TestParse(t *testing.T) {
	for formula, expected := range formulaToExpr {
		e, err := Parse(formula)
		if err != nil {
			t.Errorf("could not parse formula %q: %v", formula, err)
		} else if diff := cmp.Diff(expected, e); diff != "" {
			t.Errorf("for formula %q, unexpected tree (-want +got):\n%s", formula, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		formula string
		err     error
		pos     int
	}{
		{"", ErrIncompleteComputation, 0},
		{"A&", ErrMissingArgument, 1},
		{"!", ErrMissingArgument, 0},
		{"AB", ErrIncompleteComputation, 2},
		{"AB&C", ErrIncompleteComputation, 4},
		{"#", ErrUnknownSymbol, 0},
		{"AB&c|", ErrUnknownSymbol, 3},
		{"A B|", ErrUnknownSymbol, 1},
		{"AB|&", ErrMissingArgument, 3},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%q", test.formula), func(t *testing.T) {
			e, err := Parse(test.formula)
			require.Error(t, err)
			assert.Nil(t, e)
			assert.True(t, errors.Is(err, test.err), "expected %v, got %v", test.err, err)
			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr))
			assert.Equal(t, test.pos, synErr.Pos)
		})
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Parse("A#")
	assert.EqualError(t, err, `unknown symbol: '#' at position 1`)
	_, err = Parse("AB")
	assert.EqualError(t, err, "incomplete computation: 2 operands left at end of formula")
}

func TestRoundTrip(t *testing.T) {
	for formula, e := range formulaToExpr {
		assert.Equal(t, formula, e.String())
		e2, err := Parse(e.String())
		require.NoError(t, err)
		if diff := cmp.Diff(e, e2); diff != "" {
			t.Errorf("round trip of %q changed the tree (-want +got):\n%s", formula, diff)
		}
	}
	for _, e := range randomExprs(200, 6) {
		e2, err := Parse(e.String())
		require.NoError(t, err, "formula %q", e.String())
		if diff := cmp.Diff(e, e2); diff != "" {
			t.Errorf("round trip of %q changed the tree (-want +got):\n%s", e, diff)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := map[string]bool{
		"0!":      true,
		"1!":      false,
		"00|":     false,
		"10|":     true,
		"01|":     true,
		"11|":     true,
		"10&":     false,
		"11&":     true,
		"11^":     false,
		"10^":     true,
		"00>":     true,
		"01>":     true,
		"10>":     false,
		"00=":     true,
		"11=":     true,
		"10=":     false,
		"01=":     false,
		"11&0|":   true,
		"10&1|":   true,
		"11&1|1^": false,
		"01&1|1=": true,
		"01&1&1&": false,
		"0111&&&": false,
	}
	for formula, expected := range tests {
		val, err := Evaluate(formula)
		if err != nil {
			t.Errorf("could not evaluate %q: %v", formula, err)
			continue
		}
		if val != expected {
			t.Errorf("invalid value for %q: expected %t, got %t", formula, expected, val)
		}
		e, err := Parse(formula)
		require.NoError(t, err)
		if val := Eval(e, Env{}); val != expected {
			t.Errorf("invalid value for parsed %q: expected %t, got %t", formula, expected, val)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := map[string]error{
		"":    ErrIncompleteComputation,
		"10":  ErrIncompleteComputation,
		"1&":  ErrMissingArgument,
		"A":   ErrUnknownSymbol,
		"10x": ErrUnknownSymbol,
	}
	for formula, expected := range tests {
		val, err := Evaluate(formula)
		assert.False(t, val)
		assert.ErrorIs(t, err, expected, "formula %q", formula)
	}
}

func ExampleParse() {
	f, err := Parse("AB&C|!")
	if err != nil {
		fmt.Printf("could not parse formula: %v", err)
		return
	}
	fmt.Println(f)
	fmt.Println(NNF(f))
	_, err = Parse("AB&|")
	fmt.Println(err)
	// Output:
	// AB&C|!
	// A!B!|C!&
	// missing argument: '|' at position 3
}
