package poly

import "github.com/gocas/symint/internal/domain/number"

// Invert2x2 inverts a 2x2 rational matrix [[a,b],[c,d]], returning ok=false
// if the determinant is zero. Used by PartialFractions to solve the
// cover-up system for exactly two denominator factors, per spec §4.3
// ("invert computes the inverse of a 2x2 rational matrix or returns
// singular").
func Invert2x2(a, b, c, d number.Rational) (ia, ib, ic, id number.Rational, ok bool) {
	det := a.Mul(d).Sub(b.Mul(c))
	if det.IsZero() {
		return number.Rational{}, number.Rational{}, number.Rational{}, number.Rational{}, false
	}
	invDet := number.One().Quo(det)
	ia = d.Mul(invDet)
	ib = b.Neg().Mul(invDet)
	ic = c.Neg().Mul(invDet)
	id = a.Mul(invDet)
	return ia, ib, ic, id, true
}

// Solve2x2 solves [[a,b],[c,d]]·[x,y] = [p,q] for (x, y), returning ok=false
// when the matrix is singular.
func Solve2x2(a, b, c, d, p, q number.Rational) (x, y number.Rational, ok bool) {
	ia, ib, ic, id, ok := Invert2x2(a, b, c, d)
	if !ok {
		return number.Rational{}, number.Rational{}, false
	}
	x = ia.Mul(p).Add(ib.Mul(q))
	y = ic.Mul(p).Add(id.Mul(q))
	return x, y, true
}
