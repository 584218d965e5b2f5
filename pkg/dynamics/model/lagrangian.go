package model

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// derived holds the symbolic matrices and compiled numeric callables built
// by CalculateDynamics. A nil derived means the DM has not been derived
// since its last mutation (see DM.invalidate).
type derived struct {
	m    symbolic.Matrix // n x n inertia matrix
	v    symbolic.Matrix // n x 1 Coriolis/centrifugal vector
	g    symbolic.Matrix // n x 1 gravity vector
	invM symbolic.Matrix // n x n inverse inertia matrix, or zero matrix if M is identically zero

	funcM    *symbolic.Compiled
	funcV    *symbolic.Compiled
	funcG    *symbolic.Compiled
	funcInvM *symbolic.Compiled
	funcIDyn *symbolic.Compiled
	funcFDyn *symbolic.Compiled
}

// eulerLagrange returns, for joint i, d/dt(dL/dqdot_i) - dL/dq_i, the raw
// Euler-Lagrange expression before decomposition.
func eulerLagrange(ctx ctxLike2, l symbolic.Expr, qi, qdoti *symbolic.Symbol) symbolic.Expr {
	dLdqdot := symbolic.Diff(l, qdoti)
	ddt := ctx.DiffT(dLdqdot)
	dLdq := symbolic.Diff(l, qi)
	return symbolic.Sub(ddt, dLdq)
}

// ctxLike2 is the subset of *timesubst.Context used for the total time
// derivative operator.
type ctxLike2 interface {
	DiffT(symbolic.Expr) symbolic.Expr
}

// CalculateDynamics derives the Lagrangian L = T - V over the accumulated
// attachments, forms the n Euler-Lagrange equations (one per joint), and
// decomposes them into M(q) qddot + V(q,qdot) + G(q) = tau - B qdot via
// EquationsToMatrix, exploiting that each equation is affine in qddot. It
// also attempts to invert M symbolically: a
// singular M is reported as ErrSingular unless every entry of M is the
// exact zero constant (the degenerate zero-mass, zero-inertia system),
// whose generalized inverse is defined as the zero matrix.
func (d *DM) CalculateDynamics() error {
	n := d.N()
	q := d.Q()
	qdot := d.QDot()
	qddot := d.QDDot()

	T := d.kineticEnergy()
	V := d.potentialEnergy()
	L := symbolic.Sub(T, V)

	eqs := make([]symbolic.Expr, n)
	for i := 0; i < n; i++ {
		eqs[i] = symbolic.Simplify(eulerLagrange(d.ctx, L, q[i], qdot[i]))
	}

	mMat, rest, err := symbolic.EquationsToMatrix(eqs, qddot)
	if err != nil {
		return err
	}

	// rest = V(q,qdot) + G(q); split by zeroing qdot to isolate G.
	gVec := symbolic.ColumnVector(make([]symbolic.Expr, n))
	zeroQdot := symbolic.ZeroMap(qdot)
	for i := 0; i < n; i++ {
		gVec.Set(i, 0, symbolic.Simplify(symbolic.SubstMap(rest.At(i, 0), zeroQdot)))
	}
	vVec := symbolic.NewMatrix(n, 1)
	for i := 0; i < n; i++ {
		vVec.Set(i, 0, symbolic.Simplify(symbolic.Sub(rest.At(i, 0), gVec.At(i, 0))))
	}

	invM, err := symbolic.Inverse(mMat)
	if err != nil {
		if err == symbolic.ErrSingular && mMat.IsZero() {
			invM = symbolic.NewMatrix(n, n)
		} else {
			return err
		}
	}

	dv := &derived{m: mMat, v: vVec, g: gVec, invM: invM}
	if err := d.compile(dv); err != nil {
		return err
	}
	d.derived = dv
	return nil
}

func (d *DM) mustDerived() (*derived, error) {
	if d.derived == nil {
		return nil, ErrUninitialized
	}
	return d.derived, nil
}

// SymM returns the symbolic inertia matrix M(q).
func (d *DM) SymM() (symbolic.Matrix, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return symbolic.Matrix{}, err
	}
	return dv.m, nil
}

// SymV returns the symbolic Coriolis/centrifugal vector V(q,qdot).
func (d *DM) SymV() (symbolic.Matrix, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return symbolic.Matrix{}, err
	}
	return dv.v, nil
}

// SymG returns the symbolic gravity vector G(q).
func (d *DM) SymG() (symbolic.Matrix, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return symbolic.Matrix{}, err
	}
	return dv.g, nil
}

// SymInvM returns the symbolic inverse inertia matrix.
func (d *DM) SymInvM() (symbolic.Matrix, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return symbolic.Matrix{}, err
	}
	return dv.invM, nil
}
