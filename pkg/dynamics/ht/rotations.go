package ht

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// RotZ returns the 3x3 rotation matrix for a rotation of theta about Z.
func RotZ(theta symbolic.Expr) symbolic.Matrix {
	c, s := symbolic.Cos(theta), symbolic.Sin(theta)
	return symbolic.FromRows([][]symbolic.Expr{
		{c, symbolic.Neg(s), symbolic.Const(0)},
		{s, c, symbolic.Const(0)},
		{symbolic.Const(0), symbolic.Const(0), symbolic.Const(1)},
	})
}

// RotY returns the 3x3 rotation matrix for a rotation of theta about Y.
func RotY(theta symbolic.Expr) symbolic.Matrix {
	c, s := symbolic.Cos(theta), symbolic.Sin(theta)
	return symbolic.FromRows([][]symbolic.Expr{
		{c, symbolic.Const(0), s},
		{symbolic.Const(0), symbolic.Const(1), symbolic.Const(0)},
		{symbolic.Neg(s), symbolic.Const(0), c},
	})
}

// RotX returns the 3x3 rotation matrix for a rotation of theta about X.
func RotX(theta symbolic.Expr) symbolic.Matrix {
	c, s := symbolic.Cos(theta), symbolic.Sin(theta)
	return symbolic.FromRows([][]symbolic.Expr{
		{symbolic.Const(1), symbolic.Const(0), symbolic.Const(0)},
		{symbolic.Const(0), c, symbolic.Neg(s)},
		{symbolic.Const(0), s, c},
	})
}

// EulerToRot builds R = Rz(phi_z) * Ry(phi_y) * Rx(phi_x), the ZYX Euler
// convention used throughout this package.
func EulerToRot(phi [3]symbolic.Expr) symbolic.Matrix {
	rz := RotZ(phi[2])
	ry := RotY(phi[1])
	rx := RotX(phi[0])
	tmp, _ := symbolic.MatMul(rz, ry)
	r, _ := symbolic.MatMul(tmp, rx)
	return r
}

// RotToEuler extracts ZYX Euler angles from a rotation matrix by the atan2
// formulas; singular at phi_y = +-pi/2 (R[2][0] = +-1), which is the
// caller's responsibility to avoid.
func RotToEuler(r symbolic.Matrix) [3]symbolic.Expr {
	r32, r33 := r.At(2, 1), r.At(2, 2)
	r31 := r.At(2, 0)
	r21, r11 := r.At(1, 0), r.At(0, 0)

	phiX := symbolic.Atan2(r32, r33)
	phiY := symbolic.Atan2(symbolic.Neg(r31), symbolic.Sqrt(symbolic.Add(symbolic.Sqr(r32), symbolic.Sqr(r33))))
	phiZ := symbolic.Atan2(r21, r11)
	return [3]symbolic.Expr{phiX, phiY, phiZ}
}
