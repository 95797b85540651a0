package bf

import (
	"strings"

	"github.com/pkg/errors"
)

// A Symbol is the name of a variable, an uppercase letter between 'A' and 'Z'.
type Symbol byte

// NbSymbols is the number of distinct variables a formula can reference.
const NbSymbols = 26

// Valid returns true iff s is a letter between 'A' and 'Z'.
func (s Symbol) Valid() bool {
	return s >= 'A' && s <= 'Z'
}

func (s Symbol) index() uint {
	if !s.Valid() {
		panic(errors.Errorf("invalid symbol %q", byte(s)))
	}
	return uint(s - 'A')
}

func (s Symbol) String() string {
	return string(rune(s))
}

// An Op is a connective of the postfix grammar.
type Op byte

// Connectives, as they are written in a postfix formula.
const (
	OpNot        Op = '!'
	OpOr         Op = '|'
	OpAnd        Op = '&'
	OpXor        Op = '^'
	OpImplies    Op = '>'
	OpEquivalent Op = '='
)

// Binary returns true iff op combines two operands.
func (op Op) Binary() bool {
	switch op {
	case OpOr, OpAnd, OpXor, OpImplies, OpEquivalent:
		return true
	default:
		return false
	}
}

// Apply computes the truth value of the binary connective op.
func (op Op) Apply(a, b bool) bool {
	switch op {
	case OpOr:
		return a || b
	case OpAnd:
		return a && b
	case OpXor:
		return a != b
	case OpImplies:
		return !a || b
	case OpEquivalent:
		return a == b
	default:
		panic(errors.Errorf("%q is not a binary connective", byte(op)))
	}
}

// An Expr is a propositional formula.
// The set of formulas is closed: an Expr is one of Var, Val, Not, Or, And, Xor, Implies
// or Equivalent. Formulas are never modified once built; transformations build new ones.
type Expr interface {
	expr()
	// String returns the postfix notation of the formula.
	String() string
}

// Var is a variable.
type Var Symbol

// Val is a constant.
type Val bool

// Not is the negation of X.
type Not struct{ X Expr }

// Or is the disjunction of A and B.
type Or struct{ A, B Expr }

// And is the conjunction of A and B.
type And struct{ A, B Expr }

// Xor is true when exactly one of A and B is true.
type Xor struct{ A, B Expr }

// Implies is true unless A is true and B is false.
type Implies struct{ A, B Expr }

// Equivalent is true when A and B have the same value.
type Equivalent struct{ A, B Expr }

func (Var) expr()        {}
func (Val) expr()        {}
func (Not) expr()        {}
func (Or) expr()         {}
func (And) expr()        {}
func (Xor) expr()        {}
func (Implies) expr()    {}
func (Equivalent) expr() {}

func (v Var) String() string        { return render(v) }
func (v Val) String() string        { return render(v) }
func (n Not) String() string        { return render(n) }
func (o Or) String() string         { return render(o) }
func (a And) String() string        { return render(a) }
func (x Xor) String() string        { return render(x) }
func (i Implies) String() string    { return render(i) }
func (e Equivalent) String() string { return render(e) }

// binary builds the node associated with the binary connective op.
func binary(op Op, a, b Expr) Expr {
	switch op {
	case OpOr:
		return Or{a, b}
	case OpAnd:
		return And{a, b}
	case OpXor:
		return Xor{a, b}
	case OpImplies:
		return Implies{a, b}
	case OpEquivalent:
		return Equivalent{a, b}
	default:
		panic(errors.Errorf("%q is not a binary connective", byte(op)))
	}
}

// operands returns the connective of a binary node and its two operands.
func operands(e Expr) (op Op, a, b Expr, ok bool) {
	switch e := e.(type) {
	case Or:
		return OpOr, e.A, e.B, true
	case And:
		return OpAnd, e.A, e.B, true
	case Xor:
		return OpXor, e.A, e.B, true
	case Implies:
		return OpImplies, e.A, e.B, true
	case Equivalent:
		return OpEquivalent, e.A, e.B, true
	default:
		return 0, nil, nil, false
	}
}

func render(e Expr) string {
	var sb strings.Builder
	write(&sb, e)
	return sb.String()
}

func write(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Var:
		sb.WriteByte(byte(e))
	case Val:
		if e {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	case Not:
		write(sb, e.X)
		sb.WriteByte(byte(OpNot))
	default:
		op, a, b, ok := operands(e)
		if !ok {
			panic(errors.Errorf("invalid formula type %T", e))
		}
		write(sb, a)
		write(sb, b)
		sb.WriteByte(byte(op))
	}
}

// Eval returns the truth value of e under env.
// env must bind every variable of e, as the environments returned by FreeVars and
// Assignments do. Evaluating a variable env lacks a binding for panics.
func Eval(e Expr, env Env) bool {
	switch e := e.(type) {
	case Var:
		b, ok := env.Get(Symbol(e))
		if !ok {
			panic(errors.Errorf("environment lacks binding for variable %c", byte(e)))
		}
		return b
	case Val:
		return bool(e)
	case Not:
		return !Eval(e.X, env)
	default:
		op, a, b, ok := operands(e)
		if !ok {
			panic(errors.Errorf("invalid formula type %T", e))
		}
		return op.Apply(Eval(a, env), Eval(b, env))
	}
}
