package symbolic

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrArgCount is returned by Compiled.Eval when the number of argument
// groups supplied does not match the callable's signature.
var ErrArgCount = errors.New("symbolic: wrong number of argument groups")

// ArgGroup names a vector of symbols that, together with other groups, forms
// the argument list a Compiled callable is invoked with (e.g. a "q" group, a
// "qdot" group, and a "qddot" group for func_iDyn).
type ArgGroup struct {
	Name string
	Syms []*Symbol
}

// Group is a convenience constructor for an ArgGroup.
func Group(name string, syms []*Symbol) ArgGroup {
	return ArgGroup{Name: name, Syms: syms}
}

// Compiled is a numeric callable compiled from a symbolic expression (or
// matrix of expressions, flattened row-major) against one or more named
// argument groups. Compiled values are safe for concurrent use: they hold no
// mutable state, only the expression tree and the argument layout.
type Compiled struct {
	groups []ArgGroup
	exprs  []Expr
	rows   int
	cols   int
}

// Compile builds a Compiled callable for the given flattened expressions
// (row-major, rows x cols) over the supplied argument groups.
func Compile(exprs []Expr, rows, cols int, groups ...ArgGroup) (*Compiled, error) {
	if len(exprs) != rows*cols {
		return nil, fmt.Errorf("symbolic: Compile: %d exprs does not match %dx%d shape", len(exprs), rows, cols)
	}
	return &Compiled{groups: groups, exprs: exprs, rows: rows, cols: cols}, nil
}

// CompileMatrix is Compile specialized for a Matrix.
func CompileMatrix(m Matrix, groups ...ArgGroup) (*Compiled, error) {
	return Compile(m.ToVector(), m.Rows, m.Cols, groups...)
}

// CompileVector is Compile specialized for a []Expr column vector.
func CompileVector(es []Expr, groups ...ArgGroup) (*Compiled, error) {
	return Compile(es, len(es), 1, groups...)
}

// Shape returns the (rows, cols) the result of Eval is reshaped from.
func (c *Compiled) Shape() (int, int) { return c.rows, c.cols }

// Eval evaluates the compiled expression numerically. args must supply
// exactly one []float32 per argument group, in the order groups were given
// to Compile, each of length len(group.Syms). The result is the original
// shape flattened row-major.
func (c *Compiled) Eval(args ...[]float32) ([]float32, error) {
	if len(args) != len(c.groups) {
		return nil, fmt.Errorf("%w: want %d groups, got %d", ErrArgCount, len(c.groups), len(args))
	}
	env := make(map[*Symbol]float32)
	for gi, g := range c.groups {
		if len(args[gi]) != len(g.Syms) {
			return nil, fmt.Errorf("symbolic: Eval: group %q wants %d values, got %d", g.Name, len(g.Syms), len(args[gi]))
		}
		for i, s := range g.Syms {
			env[s] = args[gi][i]
		}
	}
	out := make([]float32, len(c.exprs))
	for i, e := range c.exprs {
		out[i] = evalF32(e, env)
	}
	return out, nil
}

// evalF32 evaluates e at float32 precision via math32, the convention this
// module uses throughout every compiled, hot-path evaluation.
func evalF32(e Expr, env map[*Symbol]float32) float32 {
	switch e.kind {
	case KindConst:
		return float32(e.value)
	case KindVar:
		v, ok := env[e.sym]
		if !ok {
			panic("symbolic: evalF32: unbound symbol " + e.sym.Name)
		}
		return v
	case KindAdd:
		var sum float32
		for _, a := range e.args {
			sum += evalF32(a, env)
		}
		return sum
	case KindMul:
		prod := float32(1)
		for _, a := range e.args {
			prod *= evalF32(a, env)
		}
		return prod
	case KindPow:
		return math32.Pow(evalF32(e.args[0], env), evalF32(e.args[1], env))
	case KindSin:
		return math32.Sin(evalF32(e.args[0], env))
	case KindCos:
		return math32.Cos(evalF32(e.args[0], env))
	case KindSqrt:
		return math32.Sqrt(evalF32(e.args[0], env))
	case KindAbs:
		return math32.Abs(evalF32(e.args[0], env))
	case KindAtan2:
		return math32.Atan2(evalF32(e.args[0], env), evalF32(e.args[1], env))
	default:
		panic("symbolic: evalF32: unhandled kind")
	}
}
