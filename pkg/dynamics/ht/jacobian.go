package ht

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// GeometricJacobian returns Jg(q): upper 3 rows are d(Trans)/dq_i column-wise,
// lower 3 rows are RotVel(q_i).
func (h HT) GeometricJacobian(q []*symbolic.Symbol) symbolic.Matrix {
	j := symbolic.NewMatrix(6, len(q))
	t := h.Trans()
	for col, qi := range q {
		for row := 0; row < 3; row++ {
			j.Set(row, col, symbolic.Diff(t[row], qi))
		}
		w := h.RotVel(qi)
		for row := 0; row < 3; row++ {
			j.Set(3+row, col, w[row])
		}
	}
	return j
}

// AnalyticJacobian returns Ja(q): upper 3 rows are d(Trans)/dq_i, lower 3
// rows are d(Euler)/dq_i on the ZYX Euler triple.
func (h HT) AnalyticJacobian(q []*symbolic.Symbol) symbolic.Matrix {
	j := symbolic.NewMatrix(6, len(q))
	t := h.Trans()
	phi := h.Euler()
	for col, qi := range q {
		for row := 0; row < 3; row++ {
			j.Set(row, col, symbolic.Diff(t[row], qi))
		}
		for row := 0; row < 3; row++ {
			j.Set(3+row, col, symbolic.Diff(phi[row], qi))
		}
	}
	return j
}

// CouplingB returns B(phi), the 3x3 matrix with omega = B(phi)*phidot for
// ZYX Euler rates phidot = (phi_x, phi_y, phi_z)': columns are the
// angular velocity produced by a unit rate of phi_x, phi_y, phi_z
// respectively, holding the others at zero.
func CouplingB(phi [3]symbolic.Expr) symbolic.Matrix {
	rz := RotZ(phi[2])
	ry := RotY(phi[1])

	colZ := []symbolic.Expr{symbolic.Const(0), symbolic.Const(0), symbolic.Const(1)}
	colY := matVec3(rz, []symbolic.Expr{symbolic.Const(0), symbolic.Const(1), symbolic.Const(0)})
	rzry, _ := symbolic.MatMul(rz, ry)
	colX := matVec3(rzry, []symbolic.Expr{symbolic.Const(1), symbolic.Const(0), symbolic.Const(0)})

	b := symbolic.NewMatrix(3, 3)
	for row := 0; row < 3; row++ {
		b.Set(row, 0, colX[row])
		b.Set(row, 1, colY[row])
		b.Set(row, 2, colZ[row])
	}
	return b
}

func matVec3(m symbolic.Matrix, v []symbolic.Expr) []symbolic.Expr {
	col := symbolic.ColumnVector(v)
	r, err := symbolic.MatMul(m, col)
	if err != nil {
		panic("ht: matVec3: " + err.Error())
	}
	return []symbolic.Expr{r.At(0, 0), r.At(1, 0), r.At(2, 0)}
}

// BlockDiagI3 returns block-diag(I3, b) as a 6x6 matrix, the coupling Ba
// used to relate the geometric and analytic Jacobians.
func BlockDiagI3(b symbolic.Matrix) symbolic.Matrix {
	out := symbolic.NewMatrix(6, 6)
	for i := 0; i < 3; i++ {
		out.Set(i, i, symbolic.Const(1))
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(3+i, 3+j, b.At(i, j))
		}
	}
	return out
}

// GeometricFromAnalytic returns Jg = Ba(phi) * Ja, given phi = h.Euler().
func GeometricFromAnalytic(ja symbolic.Matrix, phi [3]symbolic.Expr) (symbolic.Matrix, error) {
	ba := BlockDiagI3(CouplingB(phi))
	return symbolic.MatMul(ba, ja)
}

// AnalyticFromGeometric returns Ja = Ba(phi)^-1 * Jg, given phi = h.Euler().
// Singular wherever CouplingB(phi) is singular.
func AnalyticFromGeometric(jg symbolic.Matrix, phi [3]symbolic.Expr) (symbolic.Matrix, error) {
	b := CouplingB(phi)
	bInv, err := symbolic.Inverse(b)
	if err != nil {
		return symbolic.Matrix{}, err
	}
	ba := BlockDiagI3(bInv)
	return symbolic.MatMul(ba, jg)
}
