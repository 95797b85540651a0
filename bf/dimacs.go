package bf

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Dimacs writes the DIMACS CNF version of the formula on w.
// It is useful so as to feed it to any SAT solver.
// Variable 'A' is numbered 1, 'B' 2, and so on; the association between letters and
// numbers is given in comments, between the prolog and the set of clauses.
// For instance, if the formula references the variable "C", there will be a comment line
// "c C=3".
// Clauses containing the true constant are omitted, and the false constant is
// removed from the clauses it appears in.
func Dimacs(e Expr, w io.Writer) error {
	vars := FreeVars(e)
	clauses := appendClauses(nil, CNF(e))
	nbVars := 32 - bits.LeadingZeros32(vars.Mask())
	prefix := fmt.Sprintf("p cnf %d %d\n", nbVars, len(clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return errors.Wrap(err, "could not write DIMACS output")
	}
	for _, s := range vars.Symbols() {
		line := fmt.Sprintf("c %s=%d\n", s, s.index()+1)
		if _, err := io.WriteString(w, line); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	for _, clause := range clauses {
		strClause := make([]string, len(clause)+1)
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(lit)
		}
		strClause[len(clause)] = "0"
		line := strings.Join(strClause, " ") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	return nil
}

// appendClauses appends the clauses of the CNF formula f to res.
func appendClauses(res [][]int, f Expr) [][]int {
	if and, ok := f.(And); ok {
		return appendClauses(appendClauses(res, and.A), and.B)
	}
	if lits, ok := appendLits(nil, f); ok {
		res = append(res, lits)
	}
	return res
}

// appendLits appends the literals of the clause f to lits.
// It returns false if the clause is trivially true.
func appendLits(lits []int, f Expr) ([]int, bool) {
	switch f := f.(type) {
	case Or:
		lits, ok := appendLits(lits, f.A)
		if !ok {
			return nil, false
		}
		return appendLits(lits, f.B)
	case Var:
		return append(lits, int(Symbol(f).index())+1), true
	case Val:
		return lits, !bool(f)
	case Not:
		switch x := f.X.(type) {
		case Var:
			return append(lits, -int(Symbol(x).index())-1), true
		case Val:
			return lits, bool(x)
		}
	}
	panic(errors.Errorf("invalid CNF formula %v", f))
}

// parseHeader parses the problem line, once its "p" has been read.
func parseHeader(fields []string) (nbVars, nbClauses int, err error) {
	if len(fields) != 4 || fields[1] != "cnf" {
		return 0, 0, errors.Errorf("invalid syntax %q in header", strings.Join(fields, " "))
	}
	nbVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Errorf("nbvars not an int: %q", fields[2])
	}
	if nbVars < 0 || nbVars > NbSymbols {
		return 0, 0, errors.Errorf("invalid number of vars %d, expected at most %d", nbVars, NbSymbols)
	}
	nbClauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, errors.Errorf("nbclauses not an int: %q", fields[3])
	}
	return nbVars, nbClauses, nil
}

// ParseDimacs parses a DIMACS CNF problem and returns the corresponding CNF formula.
// Since formulas have at most 26 variables, so must the problem. Variable 1 is 'A',
// variable 2 'B', and so on.
// Clauses and conjunctions are right-nested, so that ParseDimacs is the converse of Dimacs
// for CNFs without constants.
func ParseDimacs(r io.Reader) (Expr, error) {
	var (
		sc      = bufio.NewScanner(r)
		header  bool
		nbVars  int
		clauses [][]int
		lits    []int
	)
	for lineNb := 1; sc.Scan(); lineNb++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "c") { // Ignore comment
			continue
		}
		if fields[0] == "p" {
			if header {
				return nil, errors.Errorf("line %d: duplicate header", lineNb)
			}
			var err error
			if nbVars, _, err = parseHeader(fields); err != nil {
				return nil, errors.Wrapf(err, "line %d: cannot parse CNF header", lineNb)
			}
			header = true
			continue
		}
		if !header {
			return nil, errors.Errorf("line %d: clause found before header", lineNb)
		}
		for _, field := range fields {
			val, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Errorf("line %d: cannot parse literal %q", lineNb, field)
			}
			if val == 0 {
				clauses = append(clauses, lits)
				lits = nil
				continue
			}
			if val > nbVars || -val > nbVars {
				return nil, errors.Errorf("line %d: invalid literal %d for problem with %d vars only", lineNb, val, nbVars)
			}
			lits = append(lits, val)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read DIMACS input")
	}
	if !header {
		return nil, errors.New("missing CNF header")
	}
	if len(lits) != 0 {
		return nil, errors.New("unfinished clause while EOF found")
	}
	return conjunction(clauses), nil
}

func literal(val int) Expr {
	if val < 0 {
		return Not{Var('A' - 1 - val)}
	}
	return Var('A' - 1 + val)
}

// conjunction returns the right-nested conjunction of the given clauses.
func conjunction(clauses [][]int) Expr {
	if len(clauses) == 0 {
		return Val(true)
	}
	res := disjunction(clauses[len(clauses)-1])
	for i := len(clauses) - 2; i >= 0; i-- {
		res = And{disjunction(clauses[i]), res}
	}
	return res
}

// disjunction returns the right-nested disjunction of the given literals.
func disjunction(lits []int) Expr {
	if len(lits) == 0 {
		return Val(false)
	}
	res := literal(lits[len(lits)-1])
	for i := len(lits) - 2; i >= 0; i-- {
		res = Or{literal(lits[i]), res}
	}
	return res
}
