package symbolic

import "math"

// Constant folding (e.g. Sin(Const(0))) is done at float64 precision using
// the standard library: these are compile-time-constant simplifications
// internal to the CAS kernel, distinct from the compiled numeric evaluation
// path (Compiled.Eval), which runs at float32 precision via math32.
func pow64(b, e float64) float64     { return math.Pow(b, e) }
func sin64(x float64) float64        { return math.Sin(x) }
func cos64(x float64) float64        { return math.Cos(x) }
func sqrt64(x float64) float64       { return math.Sqrt(x) }
func abs64(x float64) float64        { return math.Abs(x) }
func atan2_64(y, x float64) float64  { return math.Atan2(y, x) }
