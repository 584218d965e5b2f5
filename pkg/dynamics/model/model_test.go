package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
	"github.com/itohio/symdyn/pkg/dynamics/ht"
)

// scenario A: a single prismatic joint sliding a point mass m along Z.
func TestPrismaticPointMass(t *testing.T) {
	d := New(1)
	q := d.Q()
	m := symbolic.NewSymbol("m")

	d.AddMass(symbolic.Var(m), [3]symbolic.Expr{symbolic.Const(0), symbolic.Const(0), symbolic.Var(q[0])})

	assert.NoError(t, d.CalculateDynamics())

	mMat, err := d.SymM()
	assert.NoError(t, err)
	assert.True(t, symbolic.Equal(mMat.At(0, 0), symbolic.Var(m)))

	gVec, err := d.SymG()
	assert.NoError(t, err)
	want := symbolic.Mul(symbolic.Const(9.81), symbolic.Var(m))
	assert.True(t, symbolic.Equal(gVec.At(0, 0), want))

	vVec, err := d.SymV()
	assert.NoError(t, err)
	assert.True(t, symbolic.Equal(vVec.At(0, 0), symbolic.Const(0)))
}

// scenario B: a single revolute joint swinging a point mass m at distance L
// about the Y axis, in the X-Z plane.
func TestPendulum(t *testing.T) {
	d := New(1)
	q := d.Q()
	m := symbolic.NewSymbol("m")
	l := symbolic.NewSymbol("l")

	qe := symbolic.Var(q[0])
	x := symbolic.Mul(symbolic.Var(l), symbolic.Sin(qe))
	z := symbolic.Neg(symbolic.Mul(symbolic.Var(l), symbolic.Cos(qe)))
	d.AddMass(symbolic.Var(m), [3]symbolic.Expr{x, symbolic.Const(0), z})

	assert.NoError(t, d.CalculateDynamics())

	mMat, err := d.SymM()
	assert.NoError(t, err)
	wantM := symbolic.Mul(symbolic.Var(m), symbolic.Sqr(symbolic.Var(l)))
	assert.True(t, symbolic.Equal(mMat.At(0, 0), wantM))

	gVec, err := d.SymG()
	assert.NoError(t, err)
	wantG := symbolic.Mul(symbolic.Const(9.81), symbolic.Var(m), symbolic.Var(l), symbolic.Sin(qe))
	assert.True(t, symbolic.Equal(gVec.At(0, 0), wantG))
}

// scenario: a body whose only attachment is a Z-axis inertia spinning with
// the joint — the angular-velocity/energy path through bodyAngularVelocity.
func TestInertiaOnlySpinningBody(t *testing.T) {
	d := New(1)
	q := d.Q()
	izz := symbolic.NewSymbol("izz")

	r := ht.RotZ(symbolic.Var(q[0]))
	assert.NoError(t, d.AddInertiaScalar(symbolic.Var(izz), r))
	assert.NoError(t, d.CalculateDynamics())

	mMat, err := d.SymM()
	assert.NoError(t, err)
	assert.True(t, symbolic.Equal(mMat.At(0, 0), symbolic.Var(izz)))

	gVec, err := d.SymG()
	assert.NoError(t, err)
	assert.True(t, symbolic.Equal(gVec.At(0, 0), symbolic.Const(0)))
}

// scenario: a non-axisymmetric inertia (Ixx != Iyy, Izz = 0) attached
// through a joint whose rotation axis is tilted away from the attachment
// frame's own principal axes by a constant rotation R0 = RotX(pi/2), so the
// joint's rotation is R(q) = R0 * RotZ(q). With w the body angular
// velocity, M(q) = w^T (R^T I R) w must retain a sin(q)^2 dependence on q;
// collapsing R^T I R to bare I would instead yield the q-independent
// constant Iyy, so this distinguishes the two.
func TestInertiaTiltedNonAxisymmetric(t *testing.T) {
	d := New(1)
	q := d.Q()
	ixx, iyy := symbolic.NewSymbol("ixx"), symbolic.NewSymbol("iyy")

	r0 := ht.RotX(symbolic.Const(math.Pi / 2))
	rz := ht.RotZ(symbolic.Var(q[0]))
	r, err := symbolic.MatMul(r0, rz)
	assert.NoError(t, err)

	I := symbolic.NewMatrix(3, 3)
	I.Set(0, 0, symbolic.Var(ixx))
	I.Set(1, 1, symbolic.Var(iyy))
	assert.NoError(t, d.AddInertia(I, r))
	assert.NoError(t, d.CalculateDynamics())

	mMat, err := d.SymM()
	assert.NoError(t, err)

	q0 := symbolic.Var(q[0])
	want := symbolic.Mul(symbolic.Var(ixx), symbolic.Sqr(symbolic.Sin(q0)))
	got := symbolic.Simplify(mMat.At(0, 0))
	assert.True(t, symbolic.Equal(got, symbolic.Simplify(want)), "M(0,0) = %s, want %s", got, want)

	// the bug under test (raw I instead of R^T I R) would produce the
	// q-independent constant iyy; make sure that's not what we got.
	assert.False(t, symbolic.Equal(got, symbolic.Var(iyy)))
}

// scenario C: a two-link planar arm (both revolute about Z, links of length
// l1, l2), checking the inertia matrix is symmetric and its (1,1) entry is
// m2*l2^2, the second link's contribution alone.
func TestTwoLinkPlanarArm(t *testing.T) {
	d := New(2)
	q := d.Q()
	m1, m2 := symbolic.NewSymbol("m1"), symbolic.NewSymbol("m2")
	l1, l2 := symbolic.NewSymbol("l1"), symbolic.NewSymbol("l2")

	q0, q1 := symbolic.Var(q[0]), symbolic.Var(q[1])
	theta := symbolic.Add(q0, q1)

	x1 := symbolic.Mul(symbolic.Var(l1), symbolic.Cos(q0))
	y1 := symbolic.Mul(symbolic.Var(l1), symbolic.Sin(q0))
	d.AddMass(symbolic.Var(m1), [3]symbolic.Expr{x1, y1, symbolic.Const(0)})

	x2 := symbolic.Add(x1, symbolic.Mul(symbolic.Var(l2), symbolic.Cos(theta)))
	y2 := symbolic.Add(y1, symbolic.Mul(symbolic.Var(l2), symbolic.Sin(theta)))
	d.AddMass(symbolic.Var(m2), [3]symbolic.Expr{x2, y2, symbolic.Const(0)})

	assert.NoError(t, d.CalculateDynamics())

	mMat, err := d.SymM()
	assert.NoError(t, err)
	assert.True(t, symbolic.Equal(mMat.At(0, 1), mMat.At(1, 0)), "M must be symmetric")

	m11 := symbolic.Simplify(mMat.At(1, 1))
	wantM11 := symbolic.Mul(symbolic.Var(m2), symbolic.Sqr(symbolic.Var(l2)))
	assert.True(t, symbolic.Equal(m11, wantM11))
}

// InverseDyn with nil qdot/qddot reduces to the static holding torque G(q).
func TestInverseDynZeroFill(t *testing.T) {
	d := New(1)
	q := d.Q()
	d.AddMass(symbolic.Const(2), [3]symbolic.Expr{symbolic.Const(0), symbolic.Const(0), symbolic.Var(q[0])})
	assert.NoError(t, d.CalculateDynamics())

	tau, err := d.InverseDyn([]float32{0}, nil, nil)
	assert.NoError(t, err)
	g, err := d.G([]float32{0})
	assert.NoError(t, err)
	assert.InDelta(t, g[0], tau[0], 1e-5)
}

func TestUninitializedQueryErrors(t *testing.T) {
	d := New(1)
	_, err := d.M([]float32{0})
	assert.ErrorIs(t, err, ErrUninitialized)
}

func TestDegenerateZeroModelInvMIsZero(t *testing.T) {
	d := New(1)
	assert.NoError(t, d.CalculateDynamics())

	invM, err := d.InvM([]float32{0})
	assert.NoError(t, err)
	assert.Equal(t, float32(0), invM[0])
}
