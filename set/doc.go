// Package set evaluates postfix formulas over finite sets rather than truth values.
//
// Formulas follow the grammar of package bf, without constants: the letter 'A' denotes the
// first set of the environment, 'B' the second one, and so on. '|' is the union, '&' the
// intersection and '^' the symmetric difference. The other connectives are defined
// relatively to the universe, the union of all the sets of the environment: '!' is the
// complement, "AB>" is the complement of A \ B, and "AB=" the complement of the symmetric
// difference of A and B.
package set
