package sim

import "github.com/itohio/symdyn/pkg/dynamics/model"

// ComputedTorque is the default inverse-dynamics ("computed torque")
// controller: given desired trajectories qDes/qdotDes/qddotDes, it commands
// tau = InverseDyn(q, qdot, qddotDes + Kd*(qdotDes-qdot) + Kp*(qDes-q)),
// which cancels the manipulator's own nonlinear dynamics and leaves a
// linear, decoupled error response per joint (gains Kp/Kd, one pair per
// joint).
type ComputedTorque struct {
	DM   *model.DM
	Kp   []float32
	Kd   []float32
	QDes func(t float32) (q, qdot, qddot []float32)
}

// NewComputedTorque builds a ComputedTorque controller tracking a constant
// setpoint qDes with zero desired velocity/acceleration.
func NewComputedTorque(dm *model.DM, kp, kd, qDes []float32) *ComputedTorque {
	n := dm.N()
	zero := make([]float32, n)
	return &ComputedTorque{
		DM: dm,
		Kp: kp,
		Kd: kd,
		QDes: func(t float32) ([]float32, []float32, []float32) {
			return qDes, zero, zero
		},
	}
}

// Controller returns the Controller closure RHS expects.
func (c *ComputedTorque) Controller() Controller {
	n := c.DM.N()
	return func(t float32, q, qdot []float32) ([]float32, error) {
		qDes, qdotDes, qddotDes := c.QDes(t)
		v := make([]float32, n)
		for i := 0; i < n; i++ {
			v[i] = qddotDes[i] + c.Kd[i]*(qdotDes[i]-qdot[i]) + c.Kp[i]*(qDes[i]-q[i])
		}
		return c.DM.InverseDyn(q, qdot, v)
	}
}
