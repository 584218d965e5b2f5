package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

func TestDiffBasics(t *testing.T) {
	x := NewSymbol("x")

	tests := []struct {
		name string
		e    Expr
		want Expr
	}{
		{"const", Const(5), Const(0)},
		{"var self", Var(x), Const(1)},
		{"x^2", Sqr(Var(x)), Mul(Const(2), Var(x))},
		{"sin(x)", Sin(Var(x)), Cos(Var(x))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.e, x)
			assert.True(t, Equal(got, tt.want), "Diff(%s) = %s, want %s", tt.e, got, tt.want)
		})
	}
}

func TestDiffProductRule(t *testing.T) {
	x := NewSymbol("x")
	e := Mul(Var(x), Sin(Var(x)))
	got := Diff(e, x)
	want := Add(Sin(Var(x)), Mul(Var(x), Cos(Var(x))))
	assert.True(t, Equal(got, want))
}

func TestSubst(t *testing.T) {
	x := NewSymbol("x")
	y := NewSymbol("y")
	e := Add(Sqr(Var(x)), Var(y))
	got := Subst(e, x, Const(3))
	assert.True(t, Equal(got, Add(Const(9), Var(y))))
}

func TestSimplifyCollectsLikeTerms(t *testing.T) {
	x := NewSymbol("x")
	e := Add(Mul(Const(2), Var(x)), Mul(Const(3), Var(x)), Const(1), Const(4))
	got := Simplify(e)
	want := Add(Mul(Const(5), Var(x)), Const(5))
	assert.True(t, Equal(got, want))
}

func TestEqualModuloSymbolicForm(t *testing.T) {
	x := NewSymbol("x")
	a := Sqr(Add(Var(x), Const(1)))
	b := Add(Sqr(Var(x)), Mul(Const(2), Var(x)), Const(1))
	assert.True(t, Equal(a, b))
}

func TestMatrixInverse2x2(t *testing.T) {
	a, b, c, d := NewSymbol("a"), NewSymbol("b"), NewSymbol("c"), NewSymbol("d")
	m := FromRows([][]Expr{
		{Var(a), Var(b)},
		{Var(c), Var(d)},
	})
	inv, err := Inverse(m)
	assert.NoError(t, err)

	prod, err := MatMul(m, inv)
	assert.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := Const(0.0)
			if i == j {
				want = Const(1.0)
			}
			assert.True(t, Equal(prod.At(i, j), want), "product[%d][%d] not identity", i, j)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	m := FromRows([][]Expr{
		{Const(1), Const(2)},
		{Const(2), Const(4)},
	})
	_, err := Inverse(m)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestEquationsToMatrix(t *testing.T) {
	// E = 2*ax + 3*ay + 7, affine in (ax, ay)
	ax := NewSymbol("ax")
	ay := NewSymbol("ay")
	e := Add(Mul(Const(2), Var(ax)), Mul(Const(3), Var(ay)), Const(7))

	A, c, err := EquationsToMatrix([]Expr{e}, []*Symbol{ax, ay})
	assert.NoError(t, err)
	assert.True(t, Equal(A.At(0, 0), Const(2)))
	assert.True(t, Equal(A.At(0, 1), Const(3)))
	assert.True(t, Equal(c.At(0, 0), Const(7)))
}

func TestCompileEval(t *testing.T) {
	q0 := NewSymbol("q0")
	q1 := NewSymbol("q1")
	e := Add(Sqr(Var(q0)), Mul(Const(2), Var(q1)))

	c, err := CompileVector([]Expr{e}, Group("q", []*Symbol{q0, q1}))
	assert.NoError(t, err)

	out, err := c.Eval([]float32{3, 5})
	assert.NoError(t, err)
	assert.InDelta(t, float32(19), out[0], 1e-5)
}

func TestDiffMatchesFiniteDifference(t *testing.T) {
	x := NewSymbol("x")
	e := Add(Mul(Sin(Var(x)), Sqr(Var(x))), Cos(Var(x)))
	deriv := Diff(e, x)

	f := func(v float64) float64 {
		return float64(evalF32(e, map[*Symbol]float32{x: float32(v)}))
	}

	for _, at := range []float64{-1.3, 0.2, 0.75, 2.1} {
		want := fd.Derivative(f, at, &fd.Settings{Formula: fd.Central, Step: 1e-3})
		got := float64(evalF32(deriv, map[*Symbol]float32{x: float32(at)}))
		assert.InDelta(t, want, got, 5e-2, "Diff mismatch at x=%v", at)
	}
}

func TestCompileArgCountMismatch(t *testing.T) {
	q0 := NewSymbol("q0")
	c, err := CompileVector([]Expr{Var(q0)}, Group("q", []*Symbol{q0}))
	assert.NoError(t, err)
	_, err = c.Eval([]float32{1}, []float32{2})
	assert.ErrorIs(t, err, ErrArgCount)
}
