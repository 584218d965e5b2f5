package ht

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// Deskew returns (w[2][1], w[0][2], w[1][0]) — the vee operator recovering
// the axis vector from a (nominally) skew-symmetric 3x3 matrix.
func Deskew(w symbolic.Matrix) [3]symbolic.Expr {
	return [3]symbolic.Expr{w.At(2, 1), w.At(0, 2), w.At(1, 0)}
}

// RotVel returns the 3-vector omega such that omega^ = (dR/dvar) * R^T — the
// body angular velocity of h's rotation differentiated with respect to var.
func (h HT) RotVel(wrt *symbolic.Symbol) [3]symbolic.Expr {
	r := h.Rot()
	dr := r.Map(func(e symbolic.Expr) symbolic.Expr { return symbolic.Diff(e, wrt) })
	rT := r.Transpose()
	w, err := symbolic.MatMul(dr, rT)
	if err != nil {
		panic("ht: RotVel: " + err.Error())
	}
	return Deskew(w)
}
