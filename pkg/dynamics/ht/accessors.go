package ht

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// Trans returns the translation column (rows 0..2, column 3).
func (h HT) Trans() [3]symbolic.Expr {
	return [3]symbolic.Expr{h.m.At(0, 3), h.m.At(1, 3), h.m.At(2, 3)}
}

// SetTrans returns a copy of h with the translation column replaced.
func (h HT) SetTrans(t [3]symbolic.Expr) HT {
	m := h.m.Clone()
	m.Set(0, 3, t[0])
	m.Set(1, 3, t[1])
	m.Set(2, 3, t[2])
	return HT{m: m, euler: h.euler}
}

// Rot returns the 3x3 rotation submatrix (rows/cols 0..2).
func (h HT) Rot() symbolic.Matrix {
	r := symbolic.NewMatrix(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Set(i, j, h.m.At(i, j))
		}
	}
	return r
}

// SetRot returns a copy of h with the rotation submatrix replaced. Setting
// Rot clears any cached Euler override.
func (h HT) SetRot(r symbolic.Matrix) HT {
	m := h.m.Clone()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r.At(i, j))
		}
	}
	return HT{m: m, euler: nil}
}

// Euler returns the ZYX Euler angles (phi_x, phi_y, phi_z). If the transform
// carries a cached Euler triple (set via SetEuler/FromWrench), that cached
// value is returned verbatim — re-extracting Euler from a symbolic R
// produces a different-looking but mathematically equal expression that
// Simplify does not always recover, so the cache is what makes round-tripping
// exact. Otherwise Euler is extracted from Rot() by the atan2 formulas,
// singular at phi_y = +-pi/2.
func (h HT) Euler() [3]symbolic.Expr {
	if h.euler != nil {
		return *h.euler
	}
	return RotToEuler(h.Rot())
}

// SetEuler returns a copy of h with R <- Rz(phi_z)*Ry(phi_y)*Rx(phi_x) and
// caches phi so Euler() returns it verbatim.
func (h HT) SetEuler(phi [3]symbolic.Expr) HT {
	r := EulerToRot(phi)
	out := h.SetRot(r)
	cached := phi
	out.euler = &cached
	return out
}

// Wrench returns [Trans(); Euler()] as a 6-vector.
func (h HT) Wrench() [6]symbolic.Expr {
	t := h.Trans()
	p := h.Euler()
	return [6]symbolic.Expr{t[0], t[1], t[2], p[0], p[1], p[2]}
}

// Column returns the transform reshaped column-major into a 16-vector.
func (h HT) Column() []symbolic.Expr {
	out := make([]symbolic.Expr, 16)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = h.m.At(row, col)
		}
	}
	return out
}
