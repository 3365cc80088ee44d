package engine

import "github.com/gocas/symint/internal/domain/expr"

// isAffineForm reports whether e, taken as a whole, has the shape a*v+b or
// a*v for a, b free of v: a Sum all of whose v-containing terms reduce to
// a constant multiple of v, or a Product that reduces to a constant
// multiple of v. Grounded on the reference implementation's
// _is_a_linear_sum_or_prod helper (original_source/src/simpy/transforms.py).
func isAffineForm(e expr.Expr, v string) bool {
	switch n := e.(type) {
	case expr.Sum:
		for _, term := range n.Terms {
			if !term.Contains(v) {
				continue
			}
			ratio := expr.DivOf(term, expr.Sym(v))
			if ratio.Contains(v) {
				return false
			}
		}
		return true
	case expr.Product:
		ratio := expr.DivOf(e, expr.Sym(v))
		return !ratio.Contains(v)
	default:
		return false
	}
}

// findCommonAffine walks e looking for a single affine sub-expression
// (per isAffineForm) that every occurrence of v passes through. It returns
// ok=false if v appears somewhere not wrapped in that common form, or if
// more than one distinct affine form is found.
func findCommonAffine(e expr.Expr, v string) (affine expr.Expr, ok bool) {
	var found expr.Expr
	var walk func(expr.Expr) bool
	walk = func(e expr.Expr) bool {
		if !e.Contains(v) {
			return true
		}
		if isAffineForm(e, v) {
			if found != nil {
				return expr.SameForm(e, found)
			}
			found = e
			return true
		}
		children := e.Children()
		if len(children) == 0 {
			return false
		}
		for _, c := range children {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	if !walk(e) || found == nil {
		return nil, false
	}
	return found, true
}
