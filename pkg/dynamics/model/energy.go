package model

import (
	"github.com/itohio/symdyn/pkg/core/math/symbolic"
	"github.com/itohio/symdyn/pkg/dynamics/ht"
)

// kineticEnergy returns T = sum over mass attachments of (1/2) m * xdot.xdot
// plus, over inertia attachments, (1/2) omega^T (R^T I R) omega, where xdot
// is the total time derivative of the attachment position, omega is the
// body angular velocity of the attachment frame, and R^T I R rotates the
// attachment-frame inertia I into base-frame coordinates.
func (d *DM) kineticEnergy() symbolic.Expr {
	var terms []symbolic.Expr

	for _, ma := range d.masses {
		xdot := [3]symbolic.Expr{
			d.ctx.DiffT(ma.X[0]),
			d.ctx.DiffT(ma.X[1]),
			d.ctx.DiffT(ma.X[2]),
		}
		v2 := symbolic.Add(
			symbolic.Sqr(xdot[0]),
			symbolic.Sqr(xdot[1]),
			symbolic.Sqr(xdot[2]),
		)
		terms = append(terms, symbolic.Mul(symbolic.Const(0.5), ma.M, v2))
	}

	for _, ia := range d.inertias {
		w := bodyAngularVelocity(d.ctx, ia.R)
		wCol := symbolic.ColumnVector([]symbolic.Expr{w[0], w[1], w[2]})
		iBase, err := symbolic.MatMul(ia.R.Transpose(), ia.I)
		if err != nil {
			panic("model: kineticEnergy: " + err.Error())
		}
		iBase, err = symbolic.MatMul(iBase, ia.R)
		if err != nil {
			panic("model: kineticEnergy: " + err.Error())
		}
		iw, err := symbolic.MatMul(iBase, wCol)
		if err != nil {
			panic("model: kineticEnergy: " + err.Error())
		}
		wtIw := symbolic.Add(
			symbolic.Mul(w[0], iw.At(0, 0)),
			symbolic.Mul(w[1], iw.At(1, 0)),
			symbolic.Mul(w[2], iw.At(2, 0)),
		)
		terms = append(terms, symbolic.Mul(symbolic.Const(0.5), wtIw))
	}

	return symbolic.Add(terms...)
}

// bodyAngularVelocity returns the angular velocity omega of a body whose
// attachment-to-base rotation is R(q), expressed by differentiating R with
// respect to time via the t-parameterized family and deskewing dR/dt * R^T
// back into static (q, qdot) form.
func bodyAngularVelocity(ctx ctxLike, r symbolic.Matrix) [3]symbolic.Expr {
	rt := r.Map(ctx.SubsT)
	drt := rt.Map(ctx.DDt)
	rtT := rt.Transpose()
	w, err := symbolic.MatMul(drt, rtT)
	if err != nil {
		panic("model: bodyAngularVelocity: " + err.Error())
	}
	omega := ht.Deskew(w)
	return [3]symbolic.Expr{ctx.SubsQ(omega[0]), ctx.SubsQ(omega[1]), ctx.SubsQ(omega[2])}
}

// ctxLike is the subset of *timesubst.Context used above, declared as an
// interface purely so this file does not need to import timesubst just to
// name the concrete type in a function signature used only internally.
type ctxLike interface {
	SubsT(symbolic.Expr) symbolic.Expr
	DDt(symbolic.Expr) symbolic.Expr
	SubsQ(symbolic.Expr) symbolic.Expr
}

// potentialEnergy returns V = sum over mass attachments of -m * g . x, with
// g = gVal*gDir. Returns the exact constant 0 if there are no mass
// attachments, per the open-question resolution in DESIGN.md.
func (d *DM) potentialEnergy() symbolic.Expr {
	if len(d.masses) == 0 {
		return symbolic.Const(0)
	}
	g := [3]symbolic.Expr{
		symbolic.Mul(d.gVal, d.gDir[0]),
		symbolic.Mul(d.gVal, d.gDir[1]),
		symbolic.Mul(d.gVal, d.gDir[2]),
	}
	var terms []symbolic.Expr
	for _, ma := range d.masses {
		dot := symbolic.Add(
			symbolic.Mul(g[0], ma.X[0]),
			symbolic.Mul(g[1], ma.X[1]),
			symbolic.Mul(g[2], ma.X[2]),
		)
		terms = append(terms, symbolic.Mul(symbolic.Neg(ma.M), dot))
	}
	return symbolic.Add(terms...)
}
