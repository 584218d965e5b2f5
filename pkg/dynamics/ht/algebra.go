package ht

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// Mul returns h * other (4x4 matrix product).
func (h HT) Mul(other HT) HT {
	m, err := symbolic.MatMul(h.m, other.m)
	if err != nil {
		// Both operands are always 4x4 by construction; a shape mismatch
		// here would be an invariant violation, not a caller error.
		panic("ht: Mul: " + err.Error())
	}
	return HT{m: m}
}

// Inv returns the inverse of h, using the structural identity for
// H = [[R, t], [0, 1]]: H^-1 = [[R^T, -R^T t], [0, 1]] — cheaper and
// symbolically cleaner than a generic 4x4 inverse.
func (h HT) Inv() HT {
	r := h.Rot()
	t := h.Trans()
	rT := r.Transpose()

	tCol := symbolic.ColumnVector([]symbolic.Expr{t[0], t[1], t[2]})
	negRTt, err := symbolic.MatMul(rT, tCol)
	if err != nil {
		panic("ht: Inv: " + err.Error())
	}

	out := Identity()
	out = out.SetRot(rT)
	out = out.SetTrans([3]symbolic.Expr{
		symbolic.Neg(negRTt.At(0, 0)),
		symbolic.Neg(negRTt.At(1, 0)),
		symbolic.Neg(negRTt.At(2, 0)),
	})
	return out
}

// Ldiv returns h \ other = h.Inv() * other.
func (h HT) Ldiv(other HT) HT {
	return h.Inv().Mul(other)
}

// Rdiv returns h / other = other * h.Inv(), the right-division convention
// A/B = B*A^-1. Note this satisfies (a/b)*a == b, not (a/b)*b == a; see
// ht_test.go for the property this convention actually holds.
func (h HT) Rdiv(other HT) HT {
	return other.Mul(h.Inv())
}

// Simplify simplifies every entry of the underlying matrix. The Euler cache,
// if present, is left untouched (its whole purpose is to survive
// simplification round-trips unchanged).
func (h HT) Simplify() HT {
	return HT{m: h.m.Simplify(), euler: h.euler}
}

// Subst substitutes from -> to throughout h, including any cached Euler
// angles (so the cache keeps tracking the same logical quantity).
func (h HT) Subst(from *symbolic.Symbol, to symbolic.Expr) HT {
	out := HT{m: h.m.Subst(from, to)}
	if h.euler != nil {
		e := [3]symbolic.Expr{
			symbolic.Subst(h.euler[0], from, to),
			symbolic.Subst(h.euler[1], from, to),
			symbolic.Subst(h.euler[2], from, to),
		}
		out.euler = &e
	}
	return out
}

// SubstMap applies a vector-to-vector substitution throughout h.
func (h HT) SubstMap(m map[*symbolic.Symbol]symbolic.Expr) HT {
	out := HT{m: h.m.SubstMap(m)}
	if h.euler != nil {
		e := [3]symbolic.Expr{
			symbolic.SubstMap(h.euler[0], m),
			symbolic.SubstMap(h.euler[1], m),
			symbolic.SubstMap(h.euler[2], m),
		}
		out.euler = &e
	}
	return out
}
