package model

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// compile builds the numeric callables func_M, func_V, func_G, func_invM,
// func_iDyn and func_fDyn against the (q, qdot, qddot, tau) argument groups.
// func_iDyn computes tau from (q,qdot,qddot); func_fDyn computes qddot from
// (q,qdot,tau).
func (d *DM) compile(dv *derived) error {
	n := d.N()
	qG := symbolic.Group("q", d.Q())
	qdG := symbolic.Group("qdot", d.QDot())
	qddG := symbolic.Group("qddot", d.QDDot())

	tauSyms := make([]*symbolic.Symbol, n)
	for i := range tauSyms {
		tauSyms[i] = symbolic.NewSymbol("tau")
	}
	tauG := symbolic.Group("tau", tauSyms)

	var err error
	if dv.funcM, err = symbolic.CompileMatrix(dv.m, qG); err != nil {
		return err
	}
	if dv.funcV, err = symbolic.CompileMatrix(dv.v, qG, qdG); err != nil {
		return err
	}
	if dv.funcG, err = symbolic.CompileMatrix(dv.g, qG); err != nil {
		return err
	}
	if dv.funcInvM, err = symbolic.CompileMatrix(dv.invM, qG); err != nil {
		return err
	}

	// tau = M*qddot + V + G + B*qdot
	mQddot, err := matVecSym(dv.m, d.QDDot())
	if err != nil {
		return err
	}
	bQdot := symbolic.ColumnVector(make([]symbolic.Expr, n))
	for i := 0; i < n; i++ {
		bQdot.Set(i, 0, symbolic.Mul(d.b[i], symbolic.Var(d.QDot()[i])))
	}
	idyn := symbolic.NewMatrix(n, 1)
	for i := 0; i < n; i++ {
		idyn.Set(i, 0, symbolic.Add(mQddot.At(i, 0), dv.v.At(i, 0), dv.g.At(i, 0), bQdot.At(i, 0)))
	}
	if dv.funcIDyn, err = symbolic.CompileMatrix(idyn, qG, qdG, qddG); err != nil {
		return err
	}

	// qddot = invM * (tau - V - G - B*qdot)
	rhs := symbolic.NewMatrix(n, 1)
	for i := 0; i < n; i++ {
		rhs.Set(i, 0, symbolic.Sub(symbolic.Var(tauSyms[i]), symbolic.Add(dv.v.At(i, 0), dv.g.At(i, 0), bQdot.At(i, 0))))
	}
	fdynExpr, err := symbolic.MatMul(dv.invM, rhs)
	if err != nil {
		return err
	}
	if dv.funcFDyn, err = symbolic.CompileMatrix(fdynExpr, qG, qdG, tauG); err != nil {
		return err
	}

	return nil
}

// matVecSym multiplies matrix m by the column vector of symbols syms.
func matVecSym(m symbolic.Matrix, syms []*symbolic.Symbol) (symbolic.Matrix, error) {
	col := make([]symbolic.Expr, len(syms))
	for i, s := range syms {
		col[i] = symbolic.Var(s)
	}
	return symbolic.MatMul(m, symbolic.ColumnVector(col))
}
