package bf

// An Algebra gives a meaning to the tokens of the postfix grammar over values of type T.
// Parse reads formulas with an Algebra over Expr, Evaluate with an Algebra over bool.
type Algebra[T any] struct {
	// Leaf interprets a byte that is not a connective.
	// It must return ErrUnknownSymbol for any byte it does not recognize.
	Leaf   func(b byte) (T, error)
	Not    func(x T) T
	Binary func(op Op, a, b T) T
}

type parser[T any] struct {
	alg   Algebra[T]
	stack []T
}

func (p *parser[T]) pop() (T, bool) {
	var zero T
	if len(p.stack) == 0 {
		return zero, false
	}
	x := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return x, true
}

// reduce computes the new value associated with the token b.
func (p *parser[T]) reduce(b byte) (T, error) {
	var zero T
	op := Op(b)
	if op == OpNot {
		x, ok := p.pop()
		if !ok {
			return zero, ErrMissingArgument
		}
		return p.alg.Not(x), nil
	}
	if op.Binary() {
		// The operand on top of the stack is the second one.
		y, ok := p.pop()
		if !ok {
			return zero, ErrMissingArgument
		}
		x, ok := p.pop()
		if !ok {
			return zero, ErrMissingArgument
		}
		return p.alg.Binary(op, x, y), nil
	}
	return p.alg.Leaf(b)
}

// Reduce reads the postfix formula and folds it with alg.
// It fails at the first erroneous token, with a *SyntaxError wrapping one of
// ErrUnknownSymbol, ErrMissingArgument or ErrIncompleteComputation, or any other error
// returned by alg.Leaf.
func Reduce[T any](formula string, alg Algebra[T]) (T, error) {
	var zero T
	p := parser[T]{alg: alg}
	for i := 0; i < len(formula); i++ {
		val, err := p.reduce(formula[i])
		if err != nil {
			return zero, &SyntaxError{Pos: i, Symbol: formula[i], Err: err}
		}
		p.stack = append(p.stack, val)
	}
	if len(p.stack) != 1 {
		return zero, &SyntaxError{Pos: len(formula), Left: len(p.stack), Err: ErrIncompleteComputation}
	}
	return p.stack[0], nil
}

var exprAlgebra = Algebra[Expr]{
	Leaf: func(b byte) (Expr, error) {
		switch {
		case Symbol(b).Valid():
			return Var(b), nil
		case b == '0':
			return Val(false), nil
		case b == '1':
			return Val(true), nil
		default:
			return nil, ErrUnknownSymbol
		}
	},
	Not:    func(x Expr) Expr { return Not{x} },
	Binary: binary,
}

// Parse parses the given postfix formula and returns the corresponding Expr.
// No whitespace is allowed, and variables must be uppercase.
// Parse(e.String()) is always structurally equal to e.
func Parse(formula string) (Expr, error) {
	return Reduce(formula, exprAlgebra)
}

var boolAlgebra = Algebra[bool]{
	Leaf: func(b byte) (bool, error) {
		switch b {
		case '0':
			return false, nil
		case '1':
			return true, nil
		default:
			return false, ErrUnknownSymbol
		}
	},
	Not:    func(x bool) bool { return !x },
	Binary: Op.Apply,
}

// Evaluate directly computes the value of a postfix formula made of constants only,
// without building its Expr. Variables are unknown symbols here.
func Evaluate(formula string) (bool, error) {
	return Reduce(formula, boolAlgebra)
}
