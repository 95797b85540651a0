package bf

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors reported when reading a postfix formula.
// They are never returned as is, but wrapped in a *SyntaxError; use errors.Is to test them.
var (
	// ErrUnknownSymbol means a byte outside of the grammar was found.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrMissingArgument means an operator was applied to fewer operands than it needs.
	ErrMissingArgument = errors.New("missing argument")
	// ErrIncompleteComputation means the input did not reduce to exactly one value.
	ErrIncompleteComputation = errors.New("incomplete computation")
)

// A SyntaxError describes why a postfix formula could not be read.
type SyntaxError struct {
	Pos    int  // Offset of the offending byte, or length of the formula if the error was found at its end
	Symbol byte // Offending byte, 0 if the error was found at the end of the formula
	Left   int  // Number of operands left on the stack, only meaningful for ErrIncompleteComputation
	Err    error
}

func (e *SyntaxError) Error() string {
	if errors.Is(e.Err, ErrIncompleteComputation) {
		return fmt.Sprintf("%v: %d operands left at end of formula", e.Err, e.Left)
	}
	return fmt.Sprintf("%v: %q at position %d", e.Err, e.Symbol, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
