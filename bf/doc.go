// Package bf offers facilities to parse, evaluate and normalize propositional formulas.
//
// Formulas are written in postfix (reverse polish) notation, one byte per token:
//
// - an uppercase letter, from 'A' to 'Z', is a variable,
// - '0' and '1' are the false and true constants,
// - '!' negates the formula on top of the stack,
// - '|', '&', '^', '>' and '=' respectively combine the two formulas on top of the stack
// as a disjunction, a conjunction, an exclusive or, an implication and an equivalence.
//
// For instance, the formula "AB&C|!" stands for !((A & B) | C).
//
// Since there are at most 26 variables, an assignment of the variables of a formula
// is represented by an Env, a pair of 32-bit masks, and all the assignments of a formula
// can be enumerated by an Enumerator. This is how Sat, CountModels and TruthTable work:
// they are exhaustive, not clever.
//
// Formulas can be rewritten in negation normal form (NNF) and in conjunctive normal
// form (CNF). The CNF can be written in the DIMACS format, so as to feed it to any SAT solver:
//
//	f, _ := Parse("ABC&|")
//	fmt.Println(CNF(f)) // AB|AC|&
//	Dimacs(f, os.Stdout)
//
// will output
//
//	AB|AC|&
//	p cnf 3 2
//	c A=1
//	c B=2
//	c C=3
//	1 2 0
//	1 3 0
package bf
