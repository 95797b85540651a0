package set

import (
	"github.com/pkg/errors"

	"github.com/crillab/gopherbool/bf"
)

// ErrUnspecifiedVar is returned when a formula references a set the environment lacks.
var ErrUnspecifiedVar = errors.New("unspecified variable")

// Evaluate computes the set denoted by the postfix formula, where the letter 'A'+i denotes sets[i].
// Errors are *bf.SyntaxError values wrapping ErrUnspecifiedVar or one of the errors of package bf.
func Evaluate[T comparable](formula string, sets []Set[T]) (Set[T], error) {
	var universe Set[T]
	for _, s := range sets {
		universe = universe.Union(s)
	}
	alg := bf.Algebra[Set[T]]{
		Leaf: func(b byte) (Set[T], error) {
			if !bf.Symbol(b).Valid() {
				return Set[T]{}, bf.ErrUnknownSymbol
			}
			idx := int(b - 'A')
			if idx >= len(sets) {
				return Set[T]{}, ErrUnspecifiedVar
			}
			return sets[idx], nil
		},
		Not: universe.Without,
		Binary: func(op bf.Op, a, b Set[T]) Set[T] {
			switch op {
			case bf.OpOr:
				return a.Union(b)
			case bf.OpAnd:
				return a.Intersection(b)
			case bf.OpXor:
				return a.SymmetricDifference(b)
			case bf.OpImplies:
				return universe.Without(a.Without(b))
			case bf.OpEquivalent:
				return universe.Without(a.SymmetricDifference(b))
			default:
				panic(errors.Errorf("%q is not a binary connective", byte(op)))
			}
		},
	}
	return bf.Reduce(formula, alg)
}
