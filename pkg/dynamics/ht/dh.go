package ht

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// DHRow is one row of a Denavit-Hartenberg parameter table: (theta, d, a,
// alpha), in the standard DH convention.
type DHRow struct {
	Theta, D, A, Alpha symbolic.Expr
}

// rowTransform builds the standard DH homogeneous transform for one row.
func rowTransform(row DHRow) HT {
	ct, st := symbolic.Cos(row.Theta), symbolic.Sin(row.Theta)
	ca, sa := symbolic.Cos(row.Alpha), symbolic.Sin(row.Alpha)

	m := symbolic.FromRows([][]symbolic.Expr{
		{ct, symbolic.Neg(symbolic.Mul(st, ca)), symbolic.Mul(st, sa), symbolic.Mul(row.A, ct)},
		{st, symbolic.Mul(ct, ca), symbolic.Neg(symbolic.Mul(ct, sa)), symbolic.Mul(row.A, st)},
		{symbolic.Const(0), sa, ca, row.D},
		{symbolic.Const(0), symbolic.Const(0), symbolic.Const(0), symbolic.Const(1)},
	})
	h, err := FromMatrix(m)
	if err != nil {
		panic("ht: rowTransform: " + err.Error())
	}
	return h
}

// FromDH composes one transform per row, left to right, into T(0, len(rows)).
func FromDH(rows []DHRow) HT {
	result := Identity()
	for _, row := range rows {
		result = result.Mul(rowTransform(row))
	}
	return result
}

// FromDHChain is FromDH but also returns every intermediate T(0,i),
// i = 0..len(rows), with T(0,0) = Identity — the H0i chain the kinematic-
// model collaborator (kinematics/dh) needs to expose T(0, frame) for any
// frame.
func FromDHChain(rows []DHRow) []HT {
	chain := make([]HT, len(rows)+1)
	chain[0] = Identity()
	for i, row := range rows {
		chain[i+1] = chain[i].Mul(rowTransform(row))
	}
	return chain
}
