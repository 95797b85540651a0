package bf

import (
	"math/bits"
	"strings"
)

// An Env is an assignment of truth values to some variables.
// Bit i of mask says whether the variable 'A'+i is bound; if so, bit i of values is its value.
// Bits of values outside of mask are meaningless.
type Env struct {
	mask   uint32
	values uint32
}

// Enable declares s as a bound variable. Its value is left unchanged.
func (env *Env) Enable(s Symbol) {
	env.mask |= 1 << s.index()
}

// Set binds s to val.
func (env *Env) Set(s Symbol, val bool) {
	idx := s.index()
	env.mask |= 1 << idx
	if val {
		env.values |= 1 << idx
	} else {
		env.values &^= 1 << idx
	}
}

// Get returns the value of s and true, or false, false if s is not bound in env.
func (env Env) Get(s Symbol) (val, ok bool) {
	idx := s.index()
	if (env.mask>>idx)&1 == 0 {
		return false, false
	}
	return (env.values>>idx)&1 != 0, true
}

// Mask returns the set of bound variables, bit i standing for variable 'A'+i.
func (env Env) Mask() uint32 { return env.mask }

// Bits returns the values of bound variables, bit i standing for variable 'A'+i.
func (env Env) Bits() uint32 { return env.values & env.mask }

// Len returns the number of bound variables.
func (env Env) Len() int { return bits.OnesCount32(env.mask) }

// Symbols returns the bound variables, in alphabetical order.
func (env Env) Symbols() []Symbol {
	res := make([]Symbol, 0, env.Len())
	for i := uint(0); i < NbSymbols; i++ {
		if (env.mask>>i)&1 != 0 {
			res = append(res, Symbol('A'+i))
		}
	}
	return res
}

// Values returns the values of the bound variables, in the same order as Symbols.
func (env Env) Values() []bool {
	res := make([]bool, 0, env.Len())
	for i := uint(0); i < 32; i++ {
		if (env.mask>>i)&1 != 0 {
			res = append(res, (env.values>>i)&1 != 0)
		}
	}
	return res
}

// String returns the bindings of env, such as "A=0 B=1".
func (env Env) String() string {
	vals := env.Values()
	strs := make([]string, len(vals))
	for i, s := range env.Symbols() {
		if vals[i] {
			strs[i] = s.String() + "=1"
		} else {
			strs[i] = s.String() + "=0"
		}
	}
	return strings.Join(strs, " ")
}

// FreeVars returns an environment where all variables of e are bound to false.
func FreeVars(e Expr) Env {
	var env Env
	collect(e, &env)
	return env
}

func collect(e Expr, env *Env) {
	switch e := e.(type) {
	case Var:
		env.Enable(Symbol(e))
	case Val:
	case Not:
		collect(e.X, env)
	default:
		_, a, b, ok := operands(e)
		if !ok {
			panic("invalid formula type")
		}
		collect(a, env)
		collect(b, env)
	}
}

// An Enumerator generates all the assignments of a set of variables.
// Assignments are generated by increasing value of their bits, from all false to all true.
// An Enumerator over an empty set of variables generates nothing.
//
//	for it := Assignments(e); it.Next(); {
//		fmt.Println(it.Env(), Eval(e, it.Env()))
//	}
type Enumerator struct {
	next Env  // Next assignment to yield
	cur  Env  // Last assignment yielded
	done bool // Was the last assignment yielded?
}

// NewEnumerator returns an Enumerator over the variables bound in base.
// The values in base are ignored.
func NewEnumerator(base Env) *Enumerator {
	return &Enumerator{
		next: Env{mask: base.mask},
		done: base.mask == 0,
	}
}

// Assignments returns an Enumerator over the free variables of e.
func Assignments(e Expr) *Enumerator {
	return NewEnumerator(FreeVars(e))
}

// Next advances to the next assignment, which will then be available through Env.
// It returns false when all assignments have been generated.
func (it *Enumerator) Next() bool {
	if it.done {
		return false
	}
	it.cur = it.next
	// Bits outside of the mask are set, so that the carry goes through them.
	v, carry := bits.Add32(it.next.values|^it.next.mask, 1, 0)
	if carry != 0 {
		it.done = true
	} else {
		it.next.values = v & it.next.mask
	}
	return true
}

// Env returns the assignment generated by the last call to Next.
func (it *Enumerator) Env() Env {
	return it.cur
}
