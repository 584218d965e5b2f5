package timesubst

import (
	"testing"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
	"github.com/stretchr/testify/assert"
)

func TestDiffTBasics(t *testing.T) {
	c := NewContext("q0", "q1")
	q := c.Q()
	qd := c.QDot()
	qdd := c.QDDot()

	assert.True(t, symbolic.Equal(c.DiffT(symbolic.Var(q[0])), symbolic.Var(qd[0])))
	assert.True(t, symbolic.Equal(c.DiffT(symbolic.Var(qd[0])), symbolic.Var(qdd[0])))

	qsq := symbolic.Sqr(symbolic.Var(q[0]))
	want := symbolic.Mul(symbolic.Const(2), symbolic.Var(q[0]), symbolic.Var(qd[0]))
	assert.True(t, symbolic.Equal(c.DiffT(qsq), want))
}

func TestDiffTProductOfTwoJoints(t *testing.T) {
	c := NewContext("q0", "q1")
	q := c.Q()
	qd := c.QDot()

	e := symbolic.Mul(symbolic.Var(q[0]), symbolic.Var(q[1]))
	got := c.DiffT(e)
	want := symbolic.Add(
		symbolic.Mul(symbolic.Var(qd[0]), symbolic.Var(q[1])),
		symbolic.Mul(symbolic.Var(q[0]), symbolic.Var(qd[1])),
	)
	assert.True(t, symbolic.Equal(got, want))
}

func TestDiffTIsLinear(t *testing.T) {
	c := NewContext("q0")
	q := c.Q()
	qd := c.QDot()

	e := symbolic.Add(symbolic.Mul(symbolic.Const(3), symbolic.Var(q[0])), symbolic.Const(7))
	got := c.DiffT(e)
	want := symbolic.Mul(symbolic.Const(3), symbolic.Var(qd[0]))
	assert.True(t, symbolic.Equal(got, want))
}
