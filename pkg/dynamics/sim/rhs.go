// Package sim adapts a compiled Dynamic Model into the state-derivative
// function a generic ODE integrator needs to simulate a manipulator's
// motion, plus a default computed-torque controller and simulation/plotting
// harness.
package sim

import (
	"errors"

	"github.com/itohio/symdyn/pkg/dynamics/model"
)

// ErrDimMismatch is returned when a state vector's length is not 2*N for the
// model's joint count N.
var ErrDimMismatch = errors.New("sim: state vector has wrong dimension")

// Controller computes the applied joint torque tau given the current
// simulation time and state x = [q; qdot].
type Controller func(t float32, q, qdot []float32) ([]float32, error)

// RHS builds the state-derivative function xdot = f(t, x) for the standard
// manipulator state x = [q; qdot] (length 2N), using dm's compiled forward
// dynamics and the supplied controller to resolve tau at every evaluation.
func RHS(dm *model.DM, ctrl Controller) func(t float32, x []float32) ([]float32, error) {
	n := dm.N()
	return func(t float32, x []float32) ([]float32, error) {
		if len(x) != 2*n {
			return nil, ErrDimMismatch
		}
		q, qdot := x[:n], x[n:]

		tau, err := ctrl(t, q, qdot)
		if err != nil {
			return nil, err
		}

		qddot, err := dm.ForwardDyn(q, qdot, tau)
		if err != nil {
			return nil, err
		}

		xdot := make([]float32, 2*n)
		copy(xdot[:n], qdot)
		copy(xdot[n:], qddot)
		return xdot, nil
	}
}

// ZeroTorque is a Controller that always applies zero torque — pure
// passive/free-fall dynamics.
func ZeroTorque(n int) Controller {
	return func(t float32, q, qdot []float32) ([]float32, error) {
		return make([]float32, n), nil
	}
}
