package symbolic

// Diff differentiates e with respect to wrt, treating every other symbol as
// an independent constant. This is the partial-derivative operator Euler-
// Lagrange needs: q, q̇, q̈ are independent symbols at this layer (the
// total-time-derivative coupling lives one level up, in pkg/dynamics/timesubst).
func Diff(e Expr, wrt *Symbol) Expr {
	switch e.kind {
	case KindConst:
		return Const(0)
	case KindVar:
		if e.sym == wrt {
			return Const(1)
		}
		return Const(0)
	case KindAdd:
		terms := make([]Expr, len(e.args))
		for i, a := range e.args {
			terms[i] = Diff(a, wrt)
		}
		return Add(terms...)
	case KindMul:
		// Generalized product rule over n factors: sum over i of
		// (d(factor_i)) * product(other factors).
		var terms []Expr
		for i := range e.args {
			d := Diff(e.args[i], wrt)
			if isConstVal(d, 0) {
				continue
			}
			rest := make([]Expr, 0, len(e.args))
			for j, a := range e.args {
				if j == i {
					continue
				}
				rest = append(rest, a)
			}
			terms = append(terms, Mul(append([]Expr{d}, rest...)...))
		}
		return Add(terms...)
	case KindPow:
		base, exp := e.args[0], e.args[1]
		if _, ok := exp.IsConst(); ok {
			// d/dx base^n = n * base^(n-1) * d(base)
			return Mul(exp, Pow(base, Sub(exp, Const(1))), Diff(base, wrt))
		}
		// General case base^exp with both symbolic: d(base^exp) =
		// base^exp * (d(exp)*ln(base) + exp*d(base)/base). ln is out of
		// scope for this facade (never produced by the dynamics pipeline,
		// where exponents are always integer constants), so this path is
		// intentionally unsupported.
		panic("symbolic: Diff of Pow with non-constant exponent is unsupported")
	case KindSin:
		return Mul(Cos(e.args[0]), Diff(e.args[0], wrt))
	case KindCos:
		return Mul(Const(-1), Sin(e.args[0]), Diff(e.args[0], wrt))
	case KindSqrt:
		// d/dx sqrt(u) = u' / (2 sqrt(u))
		return Div(Diff(e.args[0], wrt), Mul(Const(2), Sqrt(e.args[0])))
	case KindAtan2:
		// d/dx atan2(y,x) = (x*y' - y*x') / (x^2+y^2)
		y, x := e.args[0], e.args[1]
		dy, dx := Diff(y, wrt), Diff(x, wrt)
		num := Sub(Mul(x, dy), Mul(y, dx))
		den := Add(Sqr(x), Sqr(y))
		return Div(num, den)
	case KindAbs:
		// Not differentiable at 0; away from 0, d|u| = sign(u)*u'. The
		// dynamics pipeline never differentiates through Abs, so this is a
		// best-effort definition rather than a load-bearing one.
		return Mul(Div(e.args[0], Abs(e.args[0])), Diff(e.args[0], wrt))
	default:
		panic("symbolic: Diff: unhandled kind")
	}
}

// DiffN differentiates e with respect to wrt, order times.
func DiffN(e Expr, wrt *Symbol, order int) Expr {
	for i := 0; i < order; i++ {
		e = Diff(e, wrt)
	}
	return e
}

// Grad returns the partial derivative of e with respect to every symbol in
// wrt, in order — the row of a Jacobian.
func Grad(e Expr, wrt []*Symbol) []Expr {
	out := make([]Expr, len(wrt))
	for i, s := range wrt {
		out[i] = Diff(e, s)
	}
	return out
}
