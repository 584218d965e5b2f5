package model

// Numeric query surface over the compiled callables. Every query takes
// explicit named arguments rather than dispatching behavior by argument
// count; qdot, qddot and tau default to the zero vector when nil is passed,
// rather than changing which computation runs.

// M returns the inertia matrix M(q), row-major flattened n*n.
func (d *DM) M(q []float32) ([]float32, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return nil, err
	}
	return dv.funcM.Eval(q)
}

// V returns the Coriolis/centrifugal vector V(q,qdot).
func (d *DM) V(q, qdot []float32) ([]float32, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return nil, err
	}
	return dv.funcV.Eval(q, d.zeroFill(qdot))
}

// G returns the gravity vector G(q).
func (d *DM) G(q []float32) ([]float32, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return nil, err
	}
	return dv.funcG.Eval(q)
}

// InvM returns the inverse inertia matrix at q.
func (d *DM) InvM(q []float32) ([]float32, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return nil, err
	}
	return dv.funcInvM.Eval(q)
}

// InverseDyn computes tau = M(q)*qddot + V(q,qdot) + G(q) + B*qdot. A nil
// qdot or qddot is treated as the zero vector, so InverseDyn(q, nil, nil)
// returns the static holding torque G(q).
func (d *DM) InverseDyn(q, qdot, qddot []float32) ([]float32, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return nil, err
	}
	return dv.funcIDyn.Eval(q, d.zeroFill(qdot), d.zeroFill(qddot))
}

// ForwardDyn computes qddot = invM(q) * (tau - V(q,qdot) - G(q) - B*qdot). A
// nil qdot or tau is treated as the zero vector.
func (d *DM) ForwardDyn(q, qdot, tau []float32) ([]float32, error) {
	dv, err := d.mustDerived()
	if err != nil {
		return nil, err
	}
	return dv.funcFDyn.Eval(q, d.zeroFill(qdot), d.zeroFill(tau))
}

func (d *DM) zeroFill(v []float32) []float32 {
	if v != nil {
		return v
	}
	return make([]float32, d.N())
}
