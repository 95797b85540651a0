package bf

import "github.com/pkg/errors"

// NNF returns the negation normal form of e: an equivalent formula made of
// conjunctions, disjunctions and literals only, where a literal is a variable, a
// constant or the negation of one of those.
func NNF(e Expr) Expr {
	return nnf(e)
}

// nnf returns the NNF of e.
func nnf(e Expr) Expr {
	switch e := e.(type) {
	case Var, Val:
		return e
	case Not:
		return negNNF(e.X)
	case Or:
		return Or{nnf(e.A), nnf(e.B)}
	case And:
		return And{nnf(e.A), nnf(e.B)}
	case Xor:
		return Or{And{nnf(e.A), negNNF(e.B)}, And{negNNF(e.A), nnf(e.B)}}
	case Implies:
		return Or{negNNF(e.A), nnf(e.B)}
	case Equivalent:
		return Or{And{nnf(e.A), nnf(e.B)}, And{negNNF(e.A), negNNF(e.B)}}
	default:
		panic(errors.Errorf("invalid formula type %T", e))
	}
}

// negNNF returns the NNF of not(e), without building it first.
func negNNF(e Expr) Expr {
	switch e := e.(type) {
	case Var:
		return Not{e}
	case Val:
		return !e
	case Not:
		return nnf(e.X)
	case Or:
		return And{negNNF(e.A), negNNF(e.B)}
	case And:
		return Or{negNNF(e.A), negNNF(e.B)}
	case Xor:
		return Or{And{nnf(e.A), nnf(e.B)}, And{negNNF(e.A), negNNF(e.B)}}
	case Implies:
		return And{nnf(e.A), negNNF(e.B)}
	case Equivalent:
		return Or{And{nnf(e.A), negNNF(e.B)}, And{negNNF(e.A), nnf(e.B)}}
	default:
		panic(errors.Errorf("invalid formula type %T", e))
	}
}

// CNF returns the conjunctive normal form of e: an equivalent conjunction of clauses,
// each clause being a disjunction of literals.
// Conjunctions and disjunctions are right-nested: the CNF of "AB&C&" is "ABC&&".
func CNF(e Expr) Expr {
	return cnf(e)
}

// cnf returns the CNF of e.
func cnf(e Expr) Expr {
	switch e := e.(type) {
	case Var, Val:
		return e
	case Not:
		return negCNF(e.X)
	case Or:
		return cnfOr(e.A, e.B)
	case And:
		return cnfAnd(cnf(e.A), cnf(e.B))
	case Xor:
		return cnfAnd(cnfOr(cnf(e.A), cnf(e.B)), cnfOr(negCNF(e.A), negCNF(e.B)))
	case Implies:
		return cnfOr(negCNF(e.A), cnf(e.B))
	case Equivalent:
		return cnfAnd(cnfOr(cnf(e.A), negCNF(e.B)), cnfOr(negCNF(e.A), cnf(e.B)))
	default:
		panic(errors.Errorf("invalid formula type %T", e))
	}
}

// negCNF returns the CNF of not(e), without building it first.
func negCNF(e Expr) Expr {
	switch e := e.(type) {
	case Var:
		return Not{e}
	case Val:
		return !e
	case Not:
		return cnf(e.X)
	case Or:
		return cnfAnd(negCNF(e.A), negCNF(e.B))
	case And:
		return cnfOr(negCNF(e.A), negCNF(e.B))
	case Xor:
		return cnfAnd(cnfOr(negCNF(e.A), cnf(e.B)), cnfOr(cnf(e.A), negCNF(e.B)))
	case Implies:
		return cnfAnd(cnf(e.A), negCNF(e.B))
	case Equivalent:
		return cnfAnd(cnfOr(negCNF(e.A), negCNF(e.B)), cnfOr(cnf(e.A), cnf(e.B)))
	default:
		panic(errors.Errorf("invalid formula type %T", e))
	}
}

// cnfAnd returns the conjunction of the CNFs a and b, as a right-nested chain of clauses.
func cnfAnd(a, b Expr) Expr {
	if a, ok := a.(And); ok {
		return cnfAnd(a.A, cnfAnd(a.B, b))
	}
	return And{a, b}
}

// cnfOr returns the CNF of the disjunction of a and b.
// a and b need not be in CNF yet.
func cnfOr(a, b Expr) Expr {
	if a, ok := a.(And); ok { // (x & y) | b == (x | b) & (y | b)
		return cnfAnd(cnfOr(a.A, b), cnfOr(a.B, b))
	}
	if b, ok := b.(And); ok { // a | (x & y) == (a | x) & (a | y)
		return cnfAnd(cnfOr(a, b.A), cnfOr(a, b.B))
	}
	na, nb := cnf(a), cnf(b)
	_, andA := na.(And)
	_, andB := nb.(And)
	if andA || andB {
		return cnfOr(na, nb)
	}
	if or, ok := na.(Or); ok { // Keep the clause right-nested
		return cnfOr(or.A, cnfOr(or.B, nb))
	}
	return Or{na, nb}
}
