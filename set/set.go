package set

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrDuplicate is returned when building a set from elements that are not all distinct.
var ErrDuplicate = errors.New("duplicate element")

// A Set is a finite collection of distinct elements.
// Elements keep the order in which they were added.
type Set[T comparable] struct {
	elems []T
}

// New returns the set of the given elements, or an error if one of them appears twice.
func New[T comparable](elems ...T) (Set[T], error) {
	for i, x := range elems {
		for _, y := range elems[i+1:] {
			if x == y {
				return Set[T]{}, errors.Wrapf(ErrDuplicate, "%v", x)
			}
		}
	}
	return Set[T]{elems: append([]T(nil), elems...)}, nil
}

// ParseInts parses a whitespace-separated list of distinct integers.
func ParseInts(line string) (Set[int], error) {
	fields := strings.Fields(line)
	elems := make([]int, len(fields))
	for i, field := range fields {
		val, err := strconv.Atoi(field)
		if err != nil {
			return Set[int]{}, errors.Errorf("%q is not an int", field)
		}
		elems[i] = val
	}
	return New(elems...)
}

// Elems returns the elements of s.
func (s Set[T]) Elems() []T {
	return append([]T(nil), s.elems...)
}

// Len returns the number of elements of s.
func (s Set[T]) Len() int {
	return len(s.elems)
}

// Contains returns true iff x is an element of s.
func (s Set[T]) Contains(x T) bool {
	for _, y := range s.elems {
		if x == y {
			return true
		}
	}
	return false
}

// Equal returns true iff s and other have the same elements, in any order.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.elems) != len(other.elems) {
		return false
	}
	for _, x := range other.elems {
		if !s.Contains(x) {
			return false
		}
	}
	return true
}

func (s Set[T]) filter(keep func(x T) bool) Set[T] {
	var res Set[T]
	for _, x := range s.elems {
		if keep(x) {
			res.elems = append(res.elems, x)
		}
	}
	return res
}

// Union returns the elements of s, then the elements of other that are not in s.
func (s Set[T]) Union(other Set[T]) Set[T] {
	res := Set[T]{elems: s.Elems()}
	for _, x := range other.elems {
		if !s.Contains(x) {
			res.elems = append(res.elems, x)
		}
	}
	return res
}

// Intersection returns the elements of s that are also in other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	return s.filter(other.Contains)
}

// Without returns the elements of s that are not in other.
func (s Set[T]) Without(other Set[T]) Set[T] {
	return s.filter(func(x T) bool { return !other.Contains(x) })
}

// SymmetricDifference returns the elements that are either in s or in other, but not in both.
func (s Set[T]) SymmetricDifference(other Set[T]) Set[T] {
	res := s.Without(other)
	res.elems = append(res.elems, other.Without(s).elems...)
	return res
}

// Powerset returns the 2^n subsets of s.
// The i-th subset keeps the j-th element of s iff the j-th bit of i is set,
// so that the subsets of {1, 2} are {}, {1}, {2} and {1, 2}, in that order.
func (s Set[T]) Powerset() []Set[T] {
	n := len(s.elems)
	if n >= strconv.IntSize-1 {
		panic(errors.Errorf("cannot compute the powerset of a set of %d elements", n))
	}
	res := make([]Set[T], 1<<n)
	for i := range res {
		sub := Set[T]{elems: make([]T, 0, n)}
		for j, x := range s.elems {
			if i&(1<<j) != 0 {
				sub.elems = append(sub.elems, x)
			}
		}
		res[i] = sub
	}
	return res
}

func (s Set[T]) String() string {
	if len(s.elems) == 0 {
		return "{ }"
	}
	strs := make([]string, len(s.elems))
	for i, x := range s.elems {
		strs[i] = fmt.Sprint(x)
	}
	return "{ " + strings.Join(strs, ", ") + " }"
}
