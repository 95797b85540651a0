package bf

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Sat returns true iff at least one assignment of the free variables of e makes it true.
// The search is exhaustive. A formula without variables has no assignment, so it is never
// satisfiable, whatever its value.
func Sat(e Expr) bool {
	_, ok := Model(e)
	return ok
}

// Model returns the first assignment, in enumeration order, that makes e true.
// If there is none, it returns false.
func Model(e Expr) (Env, bool) {
	for it := Assignments(e); it.Next(); {
		if env := it.Env(); Eval(e, env) {
			return env, true
		}
	}
	return Env{}, false
}

// CountModels returns the number of assignments of the free variables of e that make it true.
func CountModels(e Expr) int {
	nb := 0
	for it := Assignments(e); it.Next(); {
		if Eval(e, it.Env()) {
			nb++
		}
	}
	return nb
}

// A Row is a line of a truth table.
type Row struct {
	Values []bool `yaml:"values"` // Values of the variables, in the order of the table's Vars
	Result bool   `yaml:"result"`
}

// A Table is the truth table of a formula.
type Table struct {
	Vars []string `yaml:"vars"`
	Rows []Row    `yaml:"rows"`
}

// TruthTable returns the truth table of e.
// Rows are in enumeration order: the first variable changes at each row, the last one
// only once, halfway through the table.
func TruthTable(e Expr) Table {
	env := FreeVars(e)
	syms := env.Symbols()
	t := Table{
		Vars: make([]string, len(syms)),
		Rows: make([]Row, 0, 1<<len(syms)),
	}
	for i, s := range syms {
		t.Vars[i] = s.String()
	}
	for it := NewEnumerator(env); it.Next(); {
		t.Rows = append(t.Rows, Row{Values: it.Env().Values(), Result: Eval(e, it.Env())})
	}
	return t
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// WriteTo writes t on w as a markdown-like table.
// The header lists the variables then "=", the result column.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString("|")
	for _, v := range t.Vars {
		fmt.Fprintf(&sb, " %s |", v)
	}
	sb.WriteString(" = |\n|")
	sb.WriteString(strings.Repeat("---|", len(t.Vars)+1))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		sb.WriteString("|")
		for _, val := range row.Values {
			fmt.Fprintf(&sb, " %d |", bit(val))
		}
		fmt.Fprintf(&sb, " %d |\n", bit(row.Result))
	}
	n, err := io.WriteString(w, sb.String())
	if err != nil {
		return int64(n), errors.Wrap(err, "could not write truth table")
	}
	return int64(n), nil
}

// WriteTruthTable writes the truth table of e on w.
func WriteTruthTable(w io.Writer, e Expr) error {
	_, err := TruthTable(e).WriteTo(w)
	return err
}
