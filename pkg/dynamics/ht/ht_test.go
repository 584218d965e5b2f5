package ht

import (
	"testing"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
	"github.com/stretchr/testify/assert"
)

func identityMatrixEqual(t *testing.T, m symbolic.Matrix) {
	t.Helper()
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			want := symbolic.Const(0.0)
			if i == j {
				want = symbolic.Const(1.0)
			}
			assert.True(t, symbolic.Equal(m.At(i, j), want), "[%d][%d]", i, j)
		}
	}
}

func sampleHT() HT {
	x, y, z := symbolic.NewSymbol("x"), symbolic.NewSymbol("y"), symbolic.NewSymbol("z")
	h := FromTranslation([3]symbolic.Expr{symbolic.Var(x), symbolic.Var(y), symbolic.Var(z)})
	phi := symbolic.NewVector("phi", 3)
	return h.SetEuler([3]symbolic.Expr{symbolic.Var(phi[0]), symbolic.Var(phi[1]), symbolic.Var(phi[2])})
}

func TestInverseIsIdentity(t *testing.T) {
	h := sampleHT()
	prod := h.Mul(h.Inv())
	identityMatrixEqual(t, prod.Matrix().Simplify())
}

func TestDivision(t *testing.T) {
	a := sampleHT()
	phi2 := symbolic.NewVector("psi", 3)
	b := FromTranslation([3]symbolic.Expr{symbolic.Const(1), symbolic.Const(2), symbolic.Const(3)}).
		SetEuler([3]symbolic.Expr{symbolic.Var(phi2[0]), symbolic.Var(phi2[1]), symbolic.Var(phi2[2])})

	// a\b = a^-1*b, so a*(a\b) == b. a/b = b*a^-1, so (a/b)*a == b.
	left := a.Ldiv(b) // a \ b
	assertEqualHT(t, a.Mul(left), b)

	right := a.Rdiv(b) // a / b = b * a^-1
	assertEqualHT(t, right.Mul(a), b)
}

func assertEqualHT(t *testing.T, a, b HT) {
	t.Helper()
	am, bm := a.Matrix(), b.Matrix()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.True(t, symbolic.Equal(am.At(i, j), bm.At(i, j)), "[%d][%d]", i, j)
		}
	}
}

func TestEulerRoundTripWithCache(t *testing.T) {
	phi := [3]symbolic.Expr{symbolic.Const(0.1), symbolic.Const(0.2), symbolic.Const(0.3)}
	h := Identity().SetEuler(phi)
	got := h.Euler()
	for i := 0; i < 3; i++ {
		assert.True(t, symbolic.Equal(got[i], phi[i]))
	}
}

func TestEulerExtractionWithoutCache(t *testing.T) {
	phi := [3]symbolic.Expr{symbolic.Const(0.1), symbolic.Const(0.2), symbolic.Const(0.3)}
	r := EulerToRot(phi)
	h, err := FromRotation(r)
	assert.NoError(t, err)
	got := h.Euler()
	for i := 0; i < 3; i++ {
		assert.True(t, symbolic.Equal(got[i], phi[i]))
	}
}

func TestJacobianCoupling(t *testing.T) {
	q := symbolic.NewVector("q", 2)
	h := FromDH([]DHRow{
		{Theta: symbolic.Var(q[0]), D: symbolic.Const(0), A: symbolic.Const(1), Alpha: symbolic.Const(0)},
		{Theta: symbolic.Var(q[1]), D: symbolic.Const(0), A: symbolic.Const(1), Alpha: symbolic.Const(0)},
	})

	jg := h.GeometricJacobian(q)
	ja := h.AnalyticJacobian(q)
	phi := h.Euler()

	gotJg, err := GeometricFromAnalytic(ja, phi)
	assert.NoError(t, err)

	for i := 0; i < jg.Rows; i++ {
		for j := 0; j < jg.Cols; j++ {
			assert.True(t, symbolic.Equal(jg.At(i, j), gotJg.At(i, j)), "[%d][%d]", i, j)
		}
	}
}

func TestFromDHMatchesExplicitComposition(t *testing.T) {
	q1 := symbolic.NewSymbol("q1")
	q2 := symbolic.NewSymbol("q2")

	dh := FromDH([]DHRow{
		{Theta: symbolic.Var(q1), D: symbolic.Const(0), A: symbolic.Const(1), Alpha: symbolic.Const(0)},
		{Theta: symbolic.Var(q2), D: symbolic.Const(0), A: symbolic.Const(1), Alpha: symbolic.Const(0)},
	})

	rz1, _ := FromRotation(RotZ(symbolic.Var(q1)))
	rz2, _ := FromRotation(RotZ(symbolic.Var(q2)))
	tx := FromTranslation([3]symbolic.Expr{symbolic.Const(1), symbolic.Const(0), symbolic.Const(0)})

	explicit := rz1.Mul(tx).Mul(rz2).Mul(tx)

	assertEqualHT(t, dh, explicit)
}

func TestInvalidShape(t *testing.T) {
	_, err := FromColumn(make([]symbolic.Expr, 5))
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = argToHT(42)
	assert.ErrorIs(t, err, ErrInvalidShape)
}
