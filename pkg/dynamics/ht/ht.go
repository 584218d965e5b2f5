// Package ht implements the symbolic Homogeneous Transform engine: a 4x4
// symbolic transform with the conventional block structure [[R, t],[0 0 0 1]],
// composition, inversion, Euler/Jacobian accessors and Denavit-Hartenberg
// construction. Every numeric evaluation happens only through
// symbolic.Compile, downstream of the symbolic representation built here.
package ht

import (
	"errors"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
)

// ErrInvalidShape is returned by constructors given an argument that does
// not match any of the accepted shapes.
var ErrInvalidShape = errors.New("ht: invalid shape")

// HT is a symbolic 4x4 homogeneous transform. The zero value is not valid;
// use Identity() or one of the From* constructors. HT is immutable by
// convention: every setter-like method (SetRot, SetEuler, ...) returns a
// fresh HT rather than mutating the receiver.
type HT struct {
	m     symbolic.Matrix // 4x4
	euler *[3]symbolic.Expr
}

// Identity returns the 4x4 identity transform.
func Identity() HT {
	return HT{m: symbolic.Identity(4)}
}

// FromMatrix takes a 4x4 symbolic matrix verbatim.
func FromMatrix(m symbolic.Matrix) (HT, error) {
	if m.Rows != 4 || m.Cols != 4 {
		return HT{}, ErrInvalidShape
	}
	return HT{m: m.Clone()}, nil
}

// FromRotation builds a transform with the given 3x3 rotation and zero
// translation.
func FromRotation(r symbolic.Matrix) (HT, error) {
	if r.Rows != 3 || r.Cols != 3 {
		return HT{}, ErrInvalidShape
	}
	h := Identity()
	h = h.SetRot(r)
	return h, nil
}

// FromTranslation builds a transform with identity rotation and the given
// 3-vector translation.
func FromTranslation(t [3]symbolic.Expr) HT {
	h := Identity()
	return h.SetTrans(t)
}

// FromWrench builds a transform from a 6-vector [t; phi_ZYX]: translation
// w[0:3] and ZYX Euler angles w[3:6]. The Euler angles are cached so a
// subsequent Euler() round-trips exactly.
func FromWrench(w [6]symbolic.Expr) HT {
	h := Identity()
	h = h.SetTrans([3]symbolic.Expr{w[0], w[1], w[2]})
	return h.SetEuler([3]symbolic.Expr{w[3], w[4], w[5]})
}

// FromColumn reshapes a 16-vector column-major into a 4x4 transform.
func FromColumn(v []symbolic.Expr) (HT, error) {
	if len(v) != 16 {
		return HT{}, ErrInvalidShape
	}
	m := symbolic.NewMatrix(4, 4)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m.Set(row, col, v[col*4+row])
		}
	}
	return FromMatrix(m)
}

// New composes the left-to-right product of one transform per argument. Each
// argument is dispatched by shape: a symbolic.Matrix (4x4 or 3x3), a
// []symbolic.Expr of length 3 (translation), 6 (wrench) or 16 (column), or an
// already-built HT. With no arguments, New returns Identity.
func New(args ...interface{}) (HT, error) {
	result := Identity()
	for _, arg := range args {
		h, err := argToHT(arg)
		if err != nil {
			return HT{}, err
		}
		result = result.Mul(h)
	}
	return result, nil
}

func argToHT(arg interface{}) (HT, error) {
	switch v := arg.(type) {
	case HT:
		return v, nil
	case symbolic.Matrix:
		switch {
		case v.Rows == 4 && v.Cols == 4:
			return FromMatrix(v)
		case v.Rows == 3 && v.Cols == 3:
			return FromRotation(v)
		default:
			return HT{}, ErrInvalidShape
		}
	case []symbolic.Expr:
		switch len(v) {
		case 3:
			return FromTranslation([3]symbolic.Expr{v[0], v[1], v[2]}), nil
		case 6:
			return FromWrench([6]symbolic.Expr{v[0], v[1], v[2], v[3], v[4], v[5]}), nil
		case 16:
			return FromColumn(v)
		default:
			return HT{}, ErrInvalidShape
		}
	default:
		return HT{}, ErrInvalidShape
	}
}

// Matrix returns the underlying 4x4 symbolic matrix.
func (h HT) Matrix() symbolic.Matrix { return h.m }
