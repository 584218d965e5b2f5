package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
	"github.com/itohio/symdyn/pkg/dynamics/model"
)

func prismaticModel(t *testing.T) *model.DM {
	t.Helper()
	d := model.New(1)
	q := d.Q()
	d.AddMass(symbolic.Const(2), [3]symbolic.Expr{symbolic.Const(0), symbolic.Const(0), symbolic.Var(q[0])})
	assert.NoError(t, d.CalculateDynamics())
	return d
}

func TestRHSZeroTorqueFreeFall(t *testing.T) {
	d := prismaticModel(t)
	f := RHS(d, ZeroTorque(1))

	xdot, err := f(0, []float32{0, 0})
	assert.NoError(t, err)
	assert.InDelta(t, 0, xdot[0], 1e-6)
	assert.InDelta(t, -9.81, xdot[1], 1e-3)
}

func TestRHSDimMismatch(t *testing.T) {
	d := prismaticModel(t)
	f := RHS(d, ZeroTorque(1))
	_, err := f(0, []float32{0})
	assert.ErrorIs(t, err, ErrDimMismatch)
}

func TestSimulateRK4HoldsUnderComputedTorque(t *testing.T) {
	d := prismaticModel(t)
	ct := NewComputedTorque(d, []float32{50}, []float32{10}, []float32{1})
	f := RHS(d, ct.Controller())

	traj, err := Simulate(f, RK4{}, []float32{0, 0}, 0, 2, 0.01)
	assert.NoError(t, err)

	finalQ := traj.State[len(traj.State)-1][0]
	assert.InDelta(t, 1, finalQ, 0.05)
}

func TestPrintHistogram(t *testing.T) {
	var buf bytes.Buffer
	err := PrintHistogram(&buf, []float32{0.1, 0.2, 0.15, 0.3, 0.05}, 5)
	assert.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}
