package set

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, elems ...int) Set[int] {
	t.Helper()
	s, err := New(elems...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := mustNew(t, 3, 1, 2)
	assert.Equal(t, []int{3, 1, 2}, s.Elems())
	assert.Equal(t, 3, s.Len())
	_, err := New(1, 2, 1)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.EqualError(t, err, "1: duplicate element")
}

func TestParseInts(t *testing.T) {
	s, err := ParseInts("  4 -2\t7 ")
	require.NoError(t, err)
	assert.Equal(t, []int{4, -2, 7}, s.Elems())
	s, err = ParseInts("")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	_, err = ParseInts("1 2 2")
	assert.ErrorIs(t, err, ErrDuplicate)
	_, err = ParseInts("1 two")
	assert.Error(t, err)
}

func TestOperations(t *testing.T) {
	a := mustNew(t, 0, 1, 2)
	b := mustNew(t, 2, 3)
	assert.Equal(t, []int{0, 1, 2, 3}, a.Union(b).Elems())
	assert.Equal(t, []int{2}, a.Intersection(b).Elems())
	assert.Equal(t, []int{0, 1}, a.Without(b).Elems())
	assert.Equal(t, []int{0, 1, 3}, a.SymmetricDifference(b).Elems())
	assert.True(t, a.Contains(1))
	assert.False(t, a.Contains(3))
	assert.True(t, a.Equal(mustNew(t, 2, 0, 1)))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(mustNew(t, 0, 1, 3)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "{ }", mustNew(t).String())
	assert.Equal(t, "{ 42 }", mustNew(t, 42).String())
	assert.Equal(t, "{ 1, 2, 3 }", mustNew(t, 1, 2, 3).String())
}

func TestPowerset(t *testing.T) {
	tests := []struct {
		input    []int
		expected [][]int
	}{
		{nil, [][]int{{}}},
		{[]int{1}, [][]int{{}, {1}}},
		{[]int{1, 2}, [][]int{{}, {1}, {2}, {1, 2}}},
		{[]int{1, 2, 3}, [][]int{{}, {1}, {2}, {1, 2}, {3}, {1, 3}, {2, 3}, {1, 2, 3}}},
	}
	for _, test := range tests {
		var got [][]int
		for _, sub := range mustNew(t, test.input...).Powerset() {
			got = append(got, sub.Elems())
		}
		require.Len(t, got, len(test.expected))
		for i := range got {
			assert.ElementsMatch(t, test.expected[i], got[i], "subset %d of %v", i, test.input)
		}
	}
}

func ExampleSet_Powerset() {
	s, _ := New("a", "b")
	for _, sub := range s.Powerset() {
		fmt.Println(sub)
	}
	// Output:
	// { }
	// { a }
	// { b }
	// { a, b }
}
