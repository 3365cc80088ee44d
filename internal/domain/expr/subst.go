package expr

// ReplaceSymbol rebuilds e with every occurrence of the symbol named name
// replaced by with, resimplifying as it goes. This underlies the engine's
// variable-change transforms (LinearUSub, TrigUSub, ...), which build the
// substituted subproblem by replacing the integration variable with an
// expression in a fresh symbol, and later replace the fresh symbol back
// with the original expression in the returned solution.
func ReplaceSymbol(e Expr, name string, with Expr) Expr {
	switch v := e.(type) {
	case Symbol:
		if v.Name == name {
			return with
		}
		return v
	case Rational, PiConst, EConst:
		return e
	case Sum:
		terms := make([]Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = ReplaceSymbol(t, name, with)
		}
		return SumOf(terms...)
	case Product:
		factors := make([]Expr, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = ReplaceSymbol(f, name, with)
		}
		return ProductOf(factors...)
	case Power:
		return PowOf(ReplaceSymbol(v.Base, name, with), ReplaceSymbol(v.Exp, name, with))
	case Log:
		return Log{Arg: ReplaceSymbol(v.Arg, name, with), Base: ReplaceSymbol(v.baseOrE(), name, with)}.Simplify()
	case Trig:
		return Trig{Kind: v.Kind, Arg: ReplaceSymbol(v.Arg, name, with)}.Simplify()
	case ArcTrig:
		return ArcTrig{Kind: v.Kind, Arg: ReplaceSymbol(v.Arg, name, with)}.Simplify()
	default:
		return e
	}
}

// ReplaceSubtree rebuilds e, replacing every subtree structurally equal to
// target (by SameForm) with replacement. Both e and target are assumed
// already simplified. Used by transforms that detect a common
// sub-expression (e.g. a shared affine argument) and substitute it with a
// fresh symbol.
func ReplaceSubtree(e, target, replacement Expr) Expr {
	if SameForm(e, target) {
		return replacement
	}
	switch v := e.(type) {
	case Sum:
		terms := make([]Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = ReplaceSubtree(t, target, replacement)
		}
		return SumOf(terms...)
	case Product:
		factors := make([]Expr, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = ReplaceSubtree(f, target, replacement)
		}
		return ProductOf(factors...)
	case Power:
		return PowOf(ReplaceSubtree(v.Base, target, replacement), ReplaceSubtree(v.Exp, target, replacement))
	case Log:
		return Log{Arg: ReplaceSubtree(v.Arg, target, replacement), Base: ReplaceSubtree(v.baseOrE(), target, replacement)}.Simplify()
	case Trig:
		return Trig{Kind: v.Kind, Arg: ReplaceSubtree(v.Arg, target, replacement)}.Simplify()
	case ArcTrig:
		return ArcTrig{Kind: v.Kind, Arg: ReplaceSubtree(v.Arg, target, replacement)}.Simplify()
	default:
		return e
	}
}
