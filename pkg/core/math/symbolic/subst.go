package symbolic

// Subst replaces every occurrence of the symbol from with the expression to.
func Subst(e Expr, from *Symbol, to Expr) Expr {
	switch e.kind {
	case KindConst:
		return e
	case KindVar:
		if e.sym == from {
			return to
		}
		return e
	case KindAdd:
		return Add(substAll(e.args, from, to)...)
	case KindMul:
		return Mul(substAll(e.args, from, to)...)
	case KindPow:
		return Pow(Subst(e.args[0], from, to), Subst(e.args[1], from, to))
	case KindSin:
		return Sin(Subst(e.args[0], from, to))
	case KindCos:
		return Cos(Subst(e.args[0], from, to))
	case KindSqrt:
		return Sqrt(Subst(e.args[0], from, to))
	case KindAbs:
		return Abs(Subst(e.args[0], from, to))
	case KindAtan2:
		return Atan2(Subst(e.args[0], from, to), Subst(e.args[1], from, to))
	default:
		panic("symbolic: Subst: unhandled kind")
	}
}

func substAll(es []Expr, from *Symbol, to Expr) []Expr {
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = Subst(e, from, to)
	}
	return out
}

// SubstMap applies a vector-to-vector substitution: every symbol key in m is
// replaced by its mapped expression, simultaneously (not iteratively —
// substitutions do not see each other's replacements).
func SubstMap(e Expr, m map[*Symbol]Expr) Expr {
	switch e.kind {
	case KindConst:
		return e
	case KindVar:
		if to, ok := m[e.sym]; ok {
			return to
		}
		return e
	case KindAdd:
		return Add(substMapAll(e.args, m)...)
	case KindMul:
		return Mul(substMapAll(e.args, m)...)
	case KindPow:
		return Pow(SubstMap(e.args[0], m), SubstMap(e.args[1], m))
	case KindSin:
		return Sin(SubstMap(e.args[0], m))
	case KindCos:
		return Cos(SubstMap(e.args[0], m))
	case KindSqrt:
		return Sqrt(SubstMap(e.args[0], m))
	case KindAbs:
		return Abs(SubstMap(e.args[0], m))
	case KindAtan2:
		return Atan2(SubstMap(e.args[0], m), SubstMap(e.args[1], m))
	default:
		panic("symbolic: SubstMap: unhandled kind")
	}
}

func substMapAll(es []Expr, m map[*Symbol]Expr) []Expr {
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = SubstMap(e, m)
	}
	return out
}

// ZeroMap builds a substitution map sending every symbol in ss to the
// constant zero. Used pervasively by the M/V/G decomposition.
func ZeroMap(ss []*Symbol) map[*Symbol]Expr {
	m := make(map[*Symbol]Expr, len(ss))
	for _, s := range ss {
		m[s] = Const(0)
	}
	return m
}

// SubstVector replaces each symbol in from with the corresponding expression
// in to, simultaneously. from and to must have equal length.
func SubstVector(e Expr, from []*Symbol, to []Expr) Expr {
	m := make(map[*Symbol]Expr, len(from))
	for i, s := range from {
		m[s] = to[i]
	}
	return SubstMap(e, m)
}
