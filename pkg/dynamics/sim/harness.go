package sim

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	. "github.com/itohio/symdyn/pkg/logger"
)

// Trajectory holds the sampled simulation result: Time[k] is the time at
// step k, and State[k] is the state vector x = [q; qdot] at that time.
type Trajectory struct {
	Time  []float32
	State [][]float32
}

// Simulate integrates f from x0 over [t0, t1] in fixed steps of size dt
// using integ, recording every intermediate state.
func Simulate(f StateFunc, integ Integrator, x0 []float32, t0, t1, dt float32) (Trajectory, error) {
	n := len(x0)
	steps := int((t1-t0)/dt + 0.5)
	traj := Trajectory{
		Time:  make([]float32, 0, steps+1),
		State: make([][]float32, 0, steps+1),
	}

	x := make([]float32, n)
	copy(x, x0)
	t := t0
	traj.Time = append(traj.Time, t)
	traj.State = append(traj.State, append([]float32(nil), x...))

	for i := 0; i < steps; i++ {
		next, err := integ.Step(f, t, x, dt)
		if err != nil {
			Log.Error().Err(err).Float32("t", t).Msg("simulation step failed")
			return traj, err
		}
		x = next
		t += dt
		traj.Time = append(traj.Time, t)
		traj.State = append(traj.State, append([]float32(nil), x...))
	}

	return traj, nil
}

// Column extracts state component i (0-indexed into the 2N state vector)
// across the whole trajectory.
func (tr Trajectory) Column(i int) []float32 {
	out := make([]float32, len(tr.State))
	for k, x := range tr.State {
		out[k] = x[i]
	}
	return out
}

// PlotColumns renders the given state components (by index into the 2N
// state vector, labeled by name) as line plots over time and saves the
// result to path (PNG, inferred from the extension by gonum/plot).
func PlotColumns(tr Trajectory, indices []int, names []string, path string) error {
	p := plot.New()
	p.Title.Text = "manipulator trajectory"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "value"

	for k, idx := range indices {
		pts := make(plotter.XYs, len(tr.Time))
		for i, t := range tr.Time {
			pts[i].X = float64(t)
			pts[i].Y = float64(tr.State[i][idx])
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		p.Add(line)
		if k < len(names) {
			p.Legend.Add(names[k], line)
		}
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// PrintHistogram writes an ASCII histogram of values to w, for a quick
// console-side look at a trajectory column's distribution without needing a
// display (e.g. the spread of a joint's tracking error).
func PrintHistogram(w io.Writer, values []float32, bins int) error {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	hist := histogram.Hist(bins, data)
	return histogram.Fprint(w, hist, histogram.Linear(80))
}

// TrackingError returns, per sample, the absolute difference between the
// q-component at index qi and the constant setpoint qDes.
func TrackingError(tr Trajectory, qi int, qDes float32) []float32 {
	out := make([]float32, len(tr.State))
	for i, x := range tr.State {
		d := x[qi] - qDes
		if d < 0 {
			d = -d
		}
		out[i] = d
	}
	return out
}

// Summary formats final-state diagnostics as a human-readable string.
func Summary(dm interface{ N() int }, tr Trajectory) string {
	n := dm.N()
	last := tr.State[len(tr.State)-1]
	return fmt.Sprintf("t=%.3f q=%v qdot=%v", tr.Time[len(tr.Time)-1], last[:n], last[n:])
}
