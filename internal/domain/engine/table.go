package engine

import (
	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
)

// lookupElementary recognizes an integrand that matches one of the fixed
// elementary antiderivatives of spec §4.2.2 directly, without search.
// The second return value is false when e does not match any entry.
func lookupElementary(e expr.Expr, v string) (expr.Expr, bool) {
	x := expr.Sym(v)

	if !e.Contains(v) {
		// constant c -> c*x
		return expr.ProductOf(e, x), true
	}

	switch n := e.(type) {
	case expr.Symbol:
		if n.Name == v {
			// x -> x^2/2
			return expr.DivOf(expr.PowOf(x, expr.Int(2)), expr.Int(2)), true
		}

	case expr.Power:
		if base, ok := n.Base.(expr.Symbol); ok && base.Name == v && !n.Exp.Contains(v) {
			if r, ok := n.Exp.(expr.Rational); ok && r.V.Cmp(number.NewInt(-1)) == 0 {
				// x^-1 -> log(x)
				return expr.NaturalLog(x), true
			}
			// x^n, n != -1 -> x^(n+1)/(n+1)
			np1 := expr.SumOf(n.Exp, expr.Int(1))
			return expr.DivOf(expr.PowOf(x, np1), np1), true
		}
		if !n.Base.Contains(v) {
			if base, ok := n.Exp.(expr.Symbol); ok && base.Name == v {
				// b^x, b constant -> b^x / log(b)
				return expr.DivOf(e, expr.NaturalLog(n.Base)), true
			}
		}
		// sec(x)^2 -> tan(x)
		if tr, ok := n.Base.(expr.Trig); ok && tr.Kind == expr.SecKind {
			if arg, ok := tr.Arg.(expr.Symbol); ok && arg.Name == v {
				if r, ok := n.Exp.(expr.Rational); ok && r.V.Cmp(number.NewInt(2)) == 0 {
					return expr.Tan(x), true
				}
			}
		}

	case expr.Trig:
		arg, ok := n.Arg.(expr.Symbol)
		if !ok || arg.Name != v {
			break
		}
		switch n.Kind {
		case expr.SinKind:
			return expr.Neg(expr.Cos(x)), true
		case expr.CosKind:
			return expr.Sin(x), true
		case expr.SecKind:
			return expr.NaturalLog(expr.SumOf(expr.Sec(x), expr.Tan(x))), true
		}
	}

	return nil, false
}
