package engine

import (
	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
	"github.com/gocas/symint/internal/domain/poly"
)

/* ---------- Additivity ---------- */

// additivity splits integrate(sum, x) into one AND child per summand,
// grounded on original_source/src/simpy/transforms.py's Additivity class.
type additivity struct{}

func (additivity) name() string    { return "Additivity" }
func (additivity) heuristic() bool { return false }

func (additivity) check(t *Tree, i int) bool {
	_, ok := t.node(i).Expr.(expr.Sum)
	return ok
}

func (a *additivity) forward(t *Tree, i int) {
	n := t.node(i)
	sum := n.Expr.(expr.Sum)
	n.Kind = And
	for _, term := range sum.Terms {
		c := t.addChild(i, term, n.Var)
		t.node(c).owner = a
	}
}

func (additivity) backward(t *Tree, i int) error {
	n := t.node(i)
	parent := t.node(n.Parent)
	for _, c := range parent.Children {
		if t.node(c).Kind != Solution {
			return errNoSolutionYet
		}
	}
	terms := make([]expr.Expr, len(parent.Children))
	for idx, c := range parent.Children {
		terms[idx] = t.node(c).Solution
	}
	parent.Solution = expr.SumOf(terms...)
	parent.Kind = Solution
	return nil
}

/* ---------- PullConstant ---------- */

// pullConstant pulls a variable-free factor out of a Product, grounded on
// the reference implementation's PullConstant class.
type pullConstant struct {
	constant expr.Expr
	rest     expr.Expr
}

func (pullConstant) name() string    { return "PullConstant" }
func (pullConstant) heuristic() bool { return false }

func (pc *pullConstant) check(t *Tree, i int) bool {
	n := t.node(i)
	p, ok := n.Expr.(expr.Product)
	if !ok {
		return false
	}
	for idx, f := range p.Factors {
		if !f.Contains(n.Var) {
			rest := append([]expr.Expr(nil), p.Factors[:idx]...)
			rest = append(rest, p.Factors[idx+1:]...)
			pc.constant = f
			pc.rest = expr.ProductOf(rest...)
			return true
		}
	}
	return false
}

func (pc *pullConstant) forward(t *Tree, i int) {
	n := t.node(i)
	c := t.addChild(i, pc.rest, n.Var)
	t.node(c).owner = pc
}

func (pullConstant) backward(t *Tree, i int) error {
	n := t.node(i)
	if n.Solution == nil {
		return errNoSolutionYet
	}
	owner := n.owner.(*pullConstant)
	parent := t.node(n.Parent)
	parent.Solution = expr.ProductOf(owner.constant, n.Solution)
	parent.Kind = Solution
	return nil
}

/* ---------- PartialFractions ---------- */

// partialFractions applies the cover-up method for exactly two
// denominator factors, grounded on the reference implementation's
// PartialFractions class and SPEC_FULL.md §11.
type partialFractions struct {
	rewritten expr.Expr
}

func (partialFractions) name() string    { return "PartialFractions" }
func (partialFractions) heuristic() bool { return false }

func (pf *partialFractions) check(t *Tree, i int) bool {
	n := t.node(i)
	num, den := numeratorDenominator(n.Expr)
	if len(den) == 0 {
		return false
	}
	numPoly, err := poly.FromExpr(expr.ProductOf(num...), n.Var)
	if err != nil {
		return false
	}
	denExpr := expr.ProductOf(den...)
	denExpanded, err := denExpr.Expand()
	if err != nil {
		return false
	}
	denPoly, err := poly.FromExpr(denExpanded, n.Var)
	if err != nil {
		return false
	}
	if numPoly.Degree() >= denPoly.Degree() {
		return false
	}

	factors := factorsOf(denExpr)
	if len(factors) != 2 {
		return false
	}
	d1, d2 := factors[0], factors[1]
	if !d1.Contains(n.Var) || !d2.Contains(n.Var) {
		return false
	}
	d1Poly, err := poly.FromExpr(d1, n.Var)
	if err != nil {
		return false
	}
	d2Poly, err := poly.FromExpr(d2, n.Var)
	if err != nil {
		return false
	}

	// Build the coefficient matrix for A*d2 + B*d1 = numerator, padding
	// the shorter polynomials with trailing zero coefficients.
	width := maxInt3(len(d1Poly.Coeffs), len(d2Poly.Coeffs), len(numPoly.Coeffs))
	coeff := func(p poly.Poly, k int) number.Rational {
		if k < len(p.Coeffs) {
			return p.Coeffs[k]
		}
		return number.Zero()
	}
	if width > 2 {
		return false
	}
	a := coeff(d2Poly, 0)
	b := coeff(d1Poly, 0)
	c := coeff(d2Poly, 1)
	d := coeff(d1Poly, 1)
	p0 := coeff(numPoly, 0)
	p1 := coeff(numPoly, 1)
	A, B, ok := poly.Solve2x2(a, b, c, d, p0, p1)
	if !ok {
		return false
	}
	pf.rewritten = expr.SumOf(expr.DivOf(expr.Num(A), d1), expr.DivOf(expr.Num(B), d2))
	return true
}

// factorsOf returns the factors of a Product with no negative-exponent
// members, as found by PartialFractions' check (n denominator is always
// built from numeratorDenominator, which already strips signs).
func factorsOf(e expr.Expr) []expr.Expr {
	if p, ok := e.(expr.Product); ok {
		return p.Factors
	}
	return []expr.Expr{e}
}

func maxInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func (pf *partialFractions) forward(t *Tree, i int) {
	n := t.node(i)
	c := t.addChild(i, pf.rewritten, n.Var)
	t.node(c).owner = pf
}

func (partialFractions) backward(t *Tree, i int) error {
	n := t.node(i)
	if n.Solution == nil {
		return errNoSolutionYet
	}
	parent := t.node(n.Parent)
	parent.Solution = n.Solution
	parent.Kind = Solution
	return nil
}

/* ---------- PolynomialDivision ---------- */

// polynomialDivision rewrites numerator/denominator as quotient +
// remainder/denominator via long division, grounded on the reference
// implementation's PolynomialDivision class.
type polynomialDivision struct {
	rewritten expr.Expr
}

func (polynomialDivision) name() string    { return "PolynomialDivision" }
func (polynomialDivision) heuristic() bool { return false }

func (pd *polynomialDivision) check(t *Tree, i int) bool {
	n := t.node(i)
	if len(n.Expr.Symbols()) != 1 {
		return false
	}
	if _, ok := n.Expr.(expr.Product); !ok {
		return false
	}
	num, den := numeratorDenominator(n.Expr)
	if len(den) == 0 {
		return false
	}
	numPoly, err := poly.FromExpr(expr.ProductOf(num...), n.Var)
	if err != nil {
		return false
	}
	denPoly, err := poly.FromExpr(expr.ProductOf(den...), n.Var)
	if err != nil {
		return false
	}
	if numPoly.Degree() < denPoly.Degree() {
		return false
	}
	quotient, remainder, err := poly.DivMod(numPoly, denPoly)
	if err != nil {
		return false
	}
	pd.rewritten = expr.SumOf(quotient.ToExpr(n.Var), expr.DivOf(remainder.ToExpr(n.Var), expr.ProductOf(den...)))
	return true
}

func (pd *polynomialDivision) forward(t *Tree, i int) {
	n := t.node(i)
	c := t.addChild(i, pd.rewritten, n.Var)
	t.node(c).owner = pd
}

func (polynomialDivision) backward(t *Tree, i int) error {
	n := t.node(i)
	if n.Solution == nil {
		return errNoSolutionYet
	}
	parent := t.node(n.Parent)
	parent.Solution = n.Solution
	parent.Kind = Solution
	return nil
}

/* ---------- Expand ---------- */

// expandTransform distributes products over sums, grounded on the
// reference implementation's Expand class.
type expandTransform struct {
	expanded expr.Expr
}

func (expandTransform) name() string    { return "Expand" }
func (expandTransform) heuristic() bool { return false }

func (e *expandTransform) check(t *Tree, i int) bool {
	n := t.node(i)
	if !expr.Expandable(n.Expr) {
		return false
	}
	expanded, err := n.Expr.Expand()
	if err != nil {
		return false
	}
	e.expanded = expanded.Simplify()
	return true
}

func (e *expandTransform) forward(t *Tree, i int) {
	n := t.node(i)
	c := t.addChild(i, e.expanded, n.Var)
	t.node(c).owner = e
}

func (expandTransform) backward(t *Tree, i int) error {
	n := t.node(i)
	if n.Solution == nil {
		return errNoSolutionYet
	}
	parent := t.node(n.Parent)
	parent.Solution = n.Solution
	parent.Kind = Solution
	return nil
}

/* ---------- LinearUSub ---------- */

// linearUSub substitutes u = a*x+b when every occurrence of the variable
// lies inside a single common affine sub-expression, grounded on the
// reference implementation's LinearUSub class.
type linearUSub struct {
	affine expr.Expr
}

func (linearUSub) name() string    { return "LinearUSub" }
func (linearUSub) heuristic() bool { return false }

func (l *linearUSub) check(t *Tree, i int) bool {
	n := t.node(i)
	if !n.Expr.Contains(n.Var) {
		return false
	}
	affine, ok := findCommonAffine(n.Expr, n.Var)
	if !ok {
		return false
	}
	// A bare symbol equal to the variable itself is not worth
	// substituting; table lookup or another transform handles it.
	if sym, ok := affine.(expr.Symbol); ok && sym.Name == n.Var {
		return false
	}
	l.affine = affine
	return true
}

func (l *linearUSub) forward(t *Tree, i int) {
	n := t.node(i)
	fresh := t.freshName()
	dudx, _ := l.affine.Diff(n.Var)
	substituted := expr.ReplaceSubtree(n.Expr, l.affine, expr.Sym(fresh))
	newIntegrand := expr.DivOf(substituted, dudx)
	c := t.addChild(i, newIntegrand, fresh)
	t.node(c).owner = l
}

func (l *linearUSub) backward(t *Tree, i int) error {
	n := t.node(i)
	if n.Solution == nil {
		return errNoSolutionYet
	}
	parent := t.node(n.Parent)
	parent.Solution = expr.ReplaceSymbol(n.Solution, n.Var, l.affine)
	parent.Kind = Solution
	return nil
}
