// Package timesubst hosts the twin-family substitution machinery the
// Euler-Lagrange operator needs: q, q̇, q̈ must behave as independent symbols
// during partial differentiation, and as functions of t when the total
// time derivative operator is applied. A single CAS cannot play both roles
// at once, so this package maintains both families and converts between
// them, without ever exposing the t-parameterized naming to callers outside
// pkg/dynamics/model.
package timesubst

import "github.com/itohio/symdyn/pkg/core/math/symbolic"

// Joint bundles the three static symbols (q, qdot, qddot) for one degree of
// freedom, named by prefixing the source name with d_/dd_.
type Joint struct {
	Q, QDot, QDDot *symbolic.Symbol
}

// tJoint bundles the three t-parameterized placeholders for one degree of
// freedom: q(t), its first derivative symbol and its second derivative
// symbol, linked by the underlying CAS's d/dt operator.
type tJoint struct {
	Qt, QDott, QDDott *symbolic.Symbol
}

// Context maintains, per joint variable, the static family (q, qdot, qddot)
// and the t-parameterized family (q(t), qdot(t), qddot(t)), and implements
// SubsT/SubsQ/DiffT.
type Context struct {
	joints  []Joint
	tJoints []tJoint
	// static2t / t2static map symbol -> its counterpart in the other family.
	static2t map[*symbolic.Symbol]*symbolic.Symbol
	t2static map[*symbolic.Symbol]*symbolic.Symbol
}

// NewContext builds a Context over one joint per name, plus its d_/dd_
// derivative families.
func NewContext(names ...string) *Context {
	c := &Context{
		static2t: map[*symbolic.Symbol]*symbolic.Symbol{},
		t2static: map[*symbolic.Symbol]*symbolic.Symbol{},
	}
	for _, name := range names {
		j := Joint{
			Q:     symbolic.NewSymbol(name),
			QDot:  symbolic.NewSymbol("d_" + name),
			QDDot: symbolic.NewSymbol("dd_" + name),
		}
		tj := tJoint{
			Qt:     symbolic.NewSymbol(name + "(t)"),
			QDott:  symbolic.NewSymbol("d_" + name + "(t)"),
			QDDott: symbolic.NewSymbol("dd_" + name + "(t)"),
		}
		c.joints = append(c.joints, j)
		c.tJoints = append(c.tJoints, tj)

		c.static2t[j.Q] = tj.Qt
		c.static2t[j.QDot] = tj.QDott
		c.static2t[j.QDDot] = tj.QDDott

		c.t2static[tj.Qt] = j.Q
		c.t2static[tj.QDott] = j.QDot
		c.t2static[tj.QDDott] = j.QDDot
	}
	return c
}

// N returns the number of joints.
func (c *Context) N() int { return len(c.joints) }

// Joints returns the static (q, qdot, qddot) triples, index-corresponding to
// the order passed to NewContext.
func (c *Context) Joints() []Joint { return c.joints }

// Q, QDot, QDDot return the static symbol vectors, in joint order.
func (c *Context) Q() []*symbolic.Symbol {
	out := make([]*symbolic.Symbol, len(c.joints))
	for i, j := range c.joints {
		out[i] = j.Q
	}
	return out
}

func (c *Context) QDot() []*symbolic.Symbol {
	out := make([]*symbolic.Symbol, len(c.joints))
	for i, j := range c.joints {
		out[i] = j.QDot
	}
	return out
}

func (c *Context) QDDot() []*symbolic.Symbol {
	out := make([]*symbolic.Symbol, len(c.joints))
	for i, j := range c.joints {
		out[i] = j.QDDot
	}
	return out
}

// SubsT replaces every static symbol in e with its t-parameterized
// counterpart.
func (c *Context) SubsT(e symbolic.Expr) symbolic.Expr {
	m := make(map[*symbolic.Symbol]symbolic.Expr, len(c.static2t))
	for from, to := range c.static2t {
		m[from] = symbolic.Var(to)
	}
	return symbolic.SubstMap(e, m)
}

// SubsQ replaces every t-parameterized symbol in e with its static
// counterpart — the inverse of SubsT.
func (c *Context) SubsQ(e symbolic.Expr) symbolic.Expr {
	m := make(map[*symbolic.Symbol]symbolic.Expr, len(c.t2static))
	for from, to := range c.t2static {
		m[from] = symbolic.Var(to)
	}
	return symbolic.SubstMap(e, m)
}

// DDt differentiates an already-t-parameterized expression e with respect to
// time, treating each q(t) as depending on t via the chain rule: every
// tJoint contributes d(e)/d(q(t))*qdot(t) + d(e)/d(qdot(t))*qddot(t). e must
// already be in t-parameterized form (i.e. the output of SubsT); DDt does
// not itself call SubsT or SubsQ, so it composes with other t-parameterized
// expressions (used directly by the rotational kinetic energy term in
// pkg/dynamics/model, which needs d/dt of a rotation matrix before
// deskewing it back to static form).
func (c *Context) DDt(e symbolic.Expr) symbolic.Expr {
	var terms []symbolic.Expr
	for _, tj := range c.tJoints {
		dq := symbolic.Diff(e, tj.Qt)
		if !isZero(dq) {
			terms = append(terms, symbolic.Mul(dq, symbolic.Var(tj.QDott)))
		}
		ddq := symbolic.Diff(e, tj.QDott)
		if !isZero(ddq) {
			terms = append(terms, symbolic.Mul(ddq, symbolic.Var(tj.QDDott)))
		}
	}
	return symbolic.Add(terms...)
}

func isZero(e symbolic.Expr) bool {
	c, ok := e.IsConst()
	return ok && c == 0
}

// DiffT returns the total time derivative of e: SubsQ(DDt(SubsT(e))), using
// d/dt(q(t)) = qdot(t), d/dt(qdot(t)) = qddot(t) for every joint. DiffT is
// linear and respects the product and chain rules because the underlying
// differentiation already does.
func (c *Context) DiffT(e symbolic.Expr) symbolic.Expr {
	return c.SubsQ(c.DDt(c.SubsT(e)))
}
