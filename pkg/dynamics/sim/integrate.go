package sim

// StateFunc computes xdot = f(t, x).
type StateFunc func(t float32, x []float32) ([]float32, error)

// Integrator advances a state vector by one step of size h.
type Integrator interface {
	Step(f StateFunc, t float32, x []float32, h float32) ([]float32, error)
}

// RK4 is the classic fourth-order Runge-Kutta integrator.
type RK4 struct{}

// Step implements Integrator.
func (RK4) Step(f StateFunc, t float32, x []float32, h float32) ([]float32, error) {
	n := len(x)

	k1, err := f(t, x)
	if err != nil {
		return nil, err
	}

	x2 := addScaled(x, k1, h/2)
	k2, err := f(t+h/2, x2)
	if err != nil {
		return nil, err
	}

	x3 := addScaled(x, k2, h/2)
	k3, err := f(t+h/2, x3)
	if err != nil {
		return nil, err
	}

	x4 := addScaled(x, k3, h)
	k4, err := f(t+h, x4)
	if err != nil {
		return nil, err
	}

	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = x[i] + (h/6)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out, nil
}

func addScaled(x, k []float32, s float32) []float32 {
	out := make([]float32, len(x))
	for i := range x {
		out[i] = x[i] + s*k[i]
	}
	return out
}

// Euler is the first-order explicit Euler integrator, useful as a cheap
// sanity check against RK4 on short horizons.
type Euler struct{}

// Step implements Integrator.
func (Euler) Step(f StateFunc, t float32, x []float32, h float32) ([]float32, error) {
	k, err := f(t, x)
	if err != nil {
		return nil, err
	}
	return addScaled(x, k, h), nil
}
