package bf

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomExpr generates a random formula over the variables A to D, of at most the given depth.
func randomExpr(r *rand.Rand, depth int) Expr {
	if depth == 0 || r.Intn(4) == 0 {
		if r.Intn(6) == 0 {
			return Val(r.Intn(2) == 0)
		}
		return Var('A' + r.Intn(4))
	}
	a := randomExpr(r, depth-1)
	switch r.Intn(6) {
	case 0:
		return Not{a}
	case 1:
		return Or{a, randomExpr(r, depth-1)}
	case 2:
		return And{a, randomExpr(r, depth-1)}
	case 3:
		return Xor{a, randomExpr(r, depth-1)}
	case 4:
		return Implies{a, randomExpr(r, depth-1)}
	default:
		return Equivalent{a, randomExpr(r, depth-1)}
	}
}

func randomExprs(n, depth int) []Expr {
	r := rand.New(rand.NewSource(42))
	res := make([]Expr, n)
	for i := range res {
		res[i] = randomExpr(r, depth)
	}
	return res
}

func TestString(t *testing.T) {
	f := Not{Or{And{Var('A'), Not{Var('B')}}, Implies{Val(true), Equivalent{Var('C'), Xor{Val(false), Var('Z')}}}}}
	const expected = "AB!&1C0Z^=>|!"
	if f.String() != expected {
		t.Errorf("string representation of formula not as expected: wanted %q, got %q", expected, f.String())
	}
}

func TestEvalConnectives(t *testing.T) {
	tests := []struct {
		op       Op
		a, b     bool
		expected bool
	}{
		{OpOr, false, false, false}, {OpOr, false, true, true}, {OpOr, true, false, true}, {OpOr, true, true, true},
		{OpAnd, false, false, false}, {OpAnd, false, true, false}, {OpAnd, true, false, false}, {OpAnd, true, true, true},
		{OpXor, false, false, false}, {OpXor, false, true, true}, {OpXor, true, false, true}, {OpXor, true, true, false},
		{OpImplies, false, false, true}, {OpImplies, false, true, true}, {OpImplies, true, false, false}, {OpImplies, true, true, true},
		{OpEquivalent, false, false, true}, {OpEquivalent, false, true, false}, {OpEquivalent, true, false, false}, {OpEquivalent, true, true, true},
	}
	for _, test := range tests {
		var env Env
		env.Set('A', test.a)
		env.Set('B', test.b)
		e := binary(test.op, Var('A'), Var('B'))
		assert.Equal(t, test.expected, Eval(e, env), "%s with A=%t, B=%t", e, test.a, test.b)
		consts := binary(test.op, Val(test.a), Val(test.b))
		assert.Equal(t, test.expected, Eval(consts, Env{}), "%s", consts)
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	var env Env
	env.Set('A', true)
	assert.True(t, Eval(Var('A'), env))
	assert.Panics(t, func() { Eval(And{Var('A'), Var('B')}, env) })
}

func TestOpBinary(t *testing.T) {
	for _, op := range []Op{OpOr, OpAnd, OpXor, OpImplies, OpEquivalent} {
		assert.True(t, op.Binary(), "%c", op)
	}
	assert.False(t, OpNot.Binary())
	assert.False(t, Op('A').Binary())
	assert.Panics(t, func() { OpNot.Apply(true, true) })
}

func ExampleEval() {
	f, _ := Parse("AB>")
	var env Env
	env.Set('A', true)
	env.Set('B', false)
	fmt.Println(Eval(f, env))
	env.Set('B', true)
	fmt.Println(Eval(f, env))
	// Output:
	// false
	// true
}
