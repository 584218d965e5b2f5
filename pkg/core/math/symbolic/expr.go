// Package symbolic is a thin computer-algebra facade: symbol creation,
// substitution, differentiation, simplification, symbolic matrix inversion,
// and compilation of a symbolic expression to a numeric callable. It backs
// every other package under pkg/dynamics.
package symbolic

import "fmt"

// Kind discriminates the tagged union that makes up an Expr node.
type Kind int

const (
	KindConst Kind = iota
	KindVar
	KindAdd
	KindMul
	KindPow
	KindSin
	KindCos
	KindAtan2
	KindSqrt
	KindAbs
)

// Symbol is a named real scalar. Symbols compare by pointer identity, so
// two symbols created with the same name are distinct variables.
type Symbol struct {
	Name string
}

// NewSymbol creates a named real scalar symbol.
func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

// NewVector creates a named real vector of n distinct symbols, named
// name0..name(n-1).
func NewVector(name string, n int) []*Symbol {
	out := make([]*Symbol, n)
	for i := range out {
		out[i] = NewSymbol(fmt.Sprintf("%s%d", name, i))
	}
	return out
}

// Expr is an immutable symbolic expression node. The zero Expr is the
// constant 0. Expr is a value type: every transformation (Diff, Subst,
// Simplify, ...) returns a new Expr rather than mutating in place.
type Expr struct {
	kind  Kind
	value float64
	sym   *Symbol
	args  []Expr
}

// Const creates a constant-valued expression.
func Const(v float64) Expr {
	return Expr{kind: KindConst, value: v}
}

// Var creates an expression referencing a single symbol.
func Var(s *Symbol) Expr {
	return Expr{kind: KindVar, sym: s}
}

// Vars lifts a symbol slice to a parallel Expr slice.
func Vars(ss []*Symbol) []Expr {
	out := make([]Expr, len(ss))
	for i, s := range ss {
		out[i] = Var(s)
	}
	return out
}

// IsConst reports whether e is a constant, and returns its value.
func (e Expr) IsConst() (float64, bool) {
	if e.kind == KindConst {
		return e.value, true
	}
	return 0, false
}

func isConstVal(e Expr, v float64) bool {
	c, ok := e.IsConst()
	return ok && c == v
}

// Add returns the sum of its arguments, with zero terms dropped and nested
// sums flattened at construction time so downstream Simplify has less work.
func Add(es ...Expr) Expr {
	var flat []Expr
	for _, e := range es {
		if e.kind == KindAdd {
			flat = append(flat, e.args...)
			continue
		}
		if isConstVal(e, 0) {
			continue
		}
		flat = append(flat, e)
	}
	if len(flat) == 0 {
		return Const(0)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Expr{kind: KindAdd, args: flat}
}

// Neg returns -e.
func Neg(e Expr) Expr {
	return Mul(Const(-1), e)
}

// Sub returns a - b.
func Sub(a, b Expr) Expr {
	return Add(a, Neg(b))
}

// Mul returns the product of its arguments, folding constant 0/1 factors and
// flattening nested products at construction time.
func Mul(es ...Expr) Expr {
	var flat []Expr
	for _, e := range es {
		if e.kind == KindMul {
			flat = append(flat, e.args...)
			continue
		}
		if isConstVal(e, 0) {
			return Const(0)
		}
		if isConstVal(e, 1) {
			continue
		}
		flat = append(flat, e)
	}
	if len(flat) == 0 {
		return Const(1)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Expr{kind: KindMul, args: flat}
}

// Div returns a / b, i.e. a * b^(-1).
func Div(a, b Expr) Expr {
	if isConstVal(b, 1) {
		return a
	}
	return Mul(a, Pow(b, Const(-1)))
}

// Pow returns base^exp.
func Pow(base, exp Expr) Expr {
	if isConstVal(exp, 1) {
		return base
	}
	if isConstVal(exp, 0) {
		return Const(1)
	}
	if bc, ok := base.IsConst(); ok {
		if ec, ok := exp.IsConst(); ok {
			return Const(pow64(bc, ec))
		}
	}
	return Expr{kind: KindPow, args: []Expr{base, exp}}
}

// Sqr returns e^2, the common case of Pow used throughout energy expressions.
func Sqr(e Expr) Expr {
	return Pow(e, Const(2))
}

// Sin returns sin(e).
func Sin(e Expr) Expr {
	if c, ok := e.IsConst(); ok {
		return Const(sin64(c))
	}
	return Expr{kind: KindSin, args: []Expr{e}}
}

// Cos returns cos(e).
func Cos(e Expr) Expr {
	if c, ok := e.IsConst(); ok {
		return Const(cos64(c))
	}
	return Expr{kind: KindCos, args: []Expr{e}}
}

// Atan2 returns atan2(y, x).
func Atan2(y, x Expr) Expr {
	if yc, ok := y.IsConst(); ok {
		if xc, ok := x.IsConst(); ok {
			return Const(atan2_64(yc, xc))
		}
	}
	return Expr{kind: KindAtan2, args: []Expr{y, x}}
}

// Sqrt returns sqrt(e).
func Sqrt(e Expr) Expr {
	if c, ok := e.IsConst(); ok {
		return Const(sqrt64(c))
	}
	return Expr{kind: KindSqrt, args: []Expr{e}}
}

// Abs returns |e|.
func Abs(e Expr) Expr {
	if c, ok := e.IsConst(); ok {
		return Const(abs64(c))
	}
	return Expr{kind: KindAbs, args: []Expr{e}}
}

// Dot returns the symbolic dot product of two equal-length vectors.
func Dot(a, b []Expr) Expr {
	terms := make([]Expr, len(a))
	for i := range a {
		terms[i] = Mul(a[i], b[i])
	}
	return Add(terms...)
}

// String renders e in a conventional infix form, for debugging and test
// failure messages only; it is never parsed back.
func (e Expr) String() string {
	switch e.kind {
	case KindConst:
		return fmt.Sprintf("%g", e.value)
	case KindVar:
		return e.sym.Name
	case KindAdd:
		s := "("
		for i, a := range e.args {
			if i > 0 {
				s += " + "
			}
			s += a.String()
		}
		return s + ")"
	case KindMul:
		s := "("
		for i, a := range e.args {
			if i > 0 {
				s += " * "
			}
			s += a.String()
		}
		return s + ")"
	case KindPow:
		return fmt.Sprintf("(%s^%s)", e.args[0], e.args[1])
	case KindSin:
		return fmt.Sprintf("sin(%s)", e.args[0])
	case KindCos:
		return fmt.Sprintf("cos(%s)", e.args[0])
	case KindAtan2:
		return fmt.Sprintf("atan2(%s, %s)", e.args[0], e.args[1])
	case KindSqrt:
		return fmt.Sprintf("sqrt(%s)", e.args[0])
	case KindAbs:
		return fmt.Sprintf("abs(%s)", e.args[0])
	default:
		return "?"
	}
}
