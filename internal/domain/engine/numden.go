package engine

import "github.com/gocas/symint/internal/domain/expr"

// numeratorDenominator splits a simplified expression into its numerator
// and denominator factor lists, the way expr's printers partition a
// Product's factors by the sign of each Power's exponent. A non-Product
// expression is its own one-factor numerator with an empty denominator.
func numeratorDenominator(e expr.Expr) (num, den []expr.Expr) {
	p, ok := e.(expr.Product)
	if !ok {
		return []expr.Expr{e}, nil
	}
	for _, f := range p.Factors {
		if pw, ok := f.(expr.Power); ok {
			if r, ok := pw.Exp.(expr.Rational); ok && r.V.Sign() < 0 {
				posExp := r.V.Neg()
				den = append(den, expr.PowOf(pw.Base, expr.Num(posExp)))
				continue
			}
		}
		num = append(num, f)
	}
	return num, den
}

// asFraction rebuilds (numerator product)/(denominator product) as a
// single expression, simplified.
func asFraction(num, den []expr.Expr) expr.Expr {
	numExpr := expr.ProductOf(num...)
	if len(den) == 0 {
		return numExpr
	}
	return expr.DivOf(numExpr, expr.ProductOf(den...))
}
