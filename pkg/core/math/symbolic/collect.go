package symbolic

// FreeSymbols returns the distinct symbols appearing in e, in first-seen
// order.
func FreeSymbols(e Expr) []*Symbol {
	seen := map[*Symbol]bool{}
	var order []*Symbol
	var walk func(Expr)
	walk = func(e Expr) {
		switch e.kind {
		case KindVar:
			if !seen[e.sym] {
				seen[e.sym] = true
				order = append(order, e.sym)
			}
		case KindConst:
		default:
			for _, a := range e.args {
				walk(a)
			}
		}
	}
	walk(e)
	return order
}

// eval evaluates e at float64 precision given a complete binding for every
// free symbol. Used internally by VPA (constant folding) and Equal
// (numeric sampling fallback) — the caller-facing compiled numeric path is
// Compiled.Eval in compile.go, which works in float32 via math32 instead.
func eval(e Expr, env map[*Symbol]float64) float64 {
	switch e.kind {
	case KindConst:
		return e.value
	case KindVar:
		v, ok := env[e.sym]
		if !ok {
			panic("symbolic: eval: unbound symbol " + e.sym.Name)
		}
		return v
	case KindAdd:
		sum := 0.0
		for _, a := range e.args {
			sum += eval(a, env)
		}
		return sum
	case KindMul:
		prod := 1.0
		for _, a := range e.args {
			prod *= eval(a, env)
		}
		return prod
	case KindPow:
		return pow64(eval(e.args[0], env), eval(e.args[1], env))
	case KindSin:
		return sin64(eval(e.args[0], env))
	case KindCos:
		return cos64(eval(e.args[0], env))
	case KindSqrt:
		return sqrt64(eval(e.args[0], env))
	case KindAbs:
		return abs64(eval(e.args[0], env))
	case KindAtan2:
		return atan2_64(eval(e.args[0], env), eval(e.args[1], env))
	default:
		panic("symbolic: eval: unhandled kind")
	}
}
