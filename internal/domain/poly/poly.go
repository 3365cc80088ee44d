// Package poly implements the dense single-variable polynomial helpers the
// engine's PartialFractions and PolynomialDivision transforms need: exact
// rational coefficients, conversion to/from expr.Expr in a given variable,
// degree, long division and trailing-zero stripping, per spec §4.3.
package poly

import (
	"errors"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
)

// ErrNotPolynomial is returned by FromExpr when e is not a polynomial in var:
// some term is not var raised to a non-negative integer power with a
// variable-free rational coefficient.
var ErrNotPolynomial = errors.New("poly: not a polynomial in the given variable")

// Poly is a dense coefficient vector indexed by power: Coeffs[i] is the
// coefficient of var^i. The zero polynomial is represented by an empty
// slice, never by a slice of zeros alone (see Strip).
type Poly struct {
	Coeffs []number.Rational
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero reports whether p has no terms.
func (p Poly) IsZero() bool {
	return len(p.Coeffs) == 0
}

// Strip removes trailing zero coefficients so the highest-index entry is
// always nonzero (or the slice is empty).
func Strip(c []number.Rational) []number.Rational {
	n := len(c)
	for n > 0 && c[n-1].IsZero() {
		n--
	}
	return c[:n]
}

// FromExpr converts a simplified expression into a polynomial in var.
// It accepts sums of terms, each term a rational coefficient times var
// raised to a non-negative integer constant power (or var/var^1 or a bare
// constant). Returns ErrNotPolynomial if e contains anything else, e.g. var
// inside a non-power position, a negative exponent, or another symbol.
func FromExpr(e expr.Expr, v string) (Poly, error) {
	terms := splitSum(e)
	var c []number.Rational
	for _, t := range terms {
		coeff, power, err := termCoeffAndPower(t, v)
		if err != nil {
			return Poly{}, err
		}
		for len(c) <= power {
			c = append(c, number.Zero())
		}
		c[power] = c[power].Add(coeff)
	}
	return Poly{Coeffs: Strip(c)}, nil
}

func splitSum(e expr.Expr) []expr.Expr {
	if s, ok := e.(expr.Sum); ok {
		return s.Terms
	}
	return []expr.Expr{e}
}

// termCoeffAndPower decomposes a single additive term into (coefficient,
// power of var), rejecting anything that is not var-free-times-var^n.
func termCoeffAndPower(t expr.Expr, v string) (number.Rational, int, error) {
	factors := splitProduct(t)
	coeff := number.One()
	power := 0
	sawVar := false
	for _, f := range factors {
		if !f.Contains(v) {
			r, ok := f.(expr.Rational)
			if !ok {
				return number.Rational{}, 0, ErrNotPolynomial
			}
			coeff = coeff.Mul(r.V)
			continue
		}
		n, err := varPower(f, v)
		if err != nil {
			return number.Rational{}, 0, err
		}
		if sawVar {
			return number.Rational{}, 0, ErrNotPolynomial
		}
		sawVar = true
		power = n
	}
	return coeff, power, nil
}

func splitProduct(e expr.Expr) []expr.Expr {
	if p, ok := e.(expr.Product); ok {
		return p.Factors
	}
	return []expr.Expr{e}
}

// varPower recognizes f as var or var^n for a non-negative integer n.
func varPower(f expr.Expr, v string) (int, error) {
	if s, ok := f.(expr.Symbol); ok {
		if s.Name == v {
			return 1, nil
		}
		return 0, ErrNotPolynomial
	}
	pw, ok := f.(expr.Power)
	if !ok {
		return 0, ErrNotPolynomial
	}
	s, ok := pw.Base.(expr.Symbol)
	if !ok || s.Name != v {
		return 0, ErrNotPolynomial
	}
	r, ok := pw.Exp.(expr.Rational)
	if !ok || !r.V.IsInt() {
		return 0, ErrNotPolynomial
	}
	n, ok := r.V.Int64()
	if !ok || n < 0 {
		return 0, ErrNotPolynomial
	}
	return int(n), nil
}

// ToExpr rebuilds a simplified expr.Expr from p in variable v.
func (p Poly) ToExpr(v string) expr.Expr {
	if p.IsZero() {
		return expr.Zero()
	}
	x := expr.Sym(v)
	terms := make([]expr.Expr, 0, len(p.Coeffs))
	for i, c := range p.Coeffs {
		if c.IsZero() {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, expr.Rational{V: c})
		case 1:
			terms = append(terms, expr.ProductOf(expr.Rational{V: c}, x))
		default:
			terms = append(terms, expr.ProductOf(expr.Rational{V: c}, expr.PowOf(x, expr.Int(int64(i)))))
		}
	}
	return expr.SumOf(terms...).Simplify()
}

// Eval evaluates p at the rational point x via Horner's method.
func (p Poly) Eval(x number.Rational) number.Rational {
	acc := number.Zero()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.Coeffs[i])
	}
	return acc
}

// RationalRoot returns -c/m for a linear polynomial m*x + c, i.e. its root,
// with ok=false if p is not exactly degree 1.
func (p Poly) RationalRoot() (number.Rational, bool) {
	if p.Degree() != 1 {
		return number.Rational{}, false
	}
	return p.Coeffs[0].Neg().Quo(p.Coeffs[1]), true
}

// DivMod performs exact polynomial long division: num = quotient*den +
// remainder, with deg(remainder) < deg(den). Requires a nonzero divisor.
func DivMod(num, den Poly) (quotient, remainder Poly, err error) {
	if den.IsZero() {
		return Poly{}, Poly{}, errors.New("poly: division by zero polynomial")
	}
	rem := append([]number.Rational(nil), num.Coeffs...)
	denDeg := den.Degree()
	lead := den.Coeffs[denDeg]
	qlen := num.Degree() - denDeg + 1
	if qlen < 0 {
		qlen = 0
	}
	q := make([]number.Rational, qlen)
	for len(rem) > 0 && len(rem)-1 >= denDeg {
		remDeg := len(rem) - 1
		qc := rem[remDeg].Quo(lead)
		qDeg := remDeg - denDeg
		q[qDeg] = qc
		for i, dc := range den.Coeffs {
			rem[qDeg+i] = rem[qDeg+i].Sub(dc.Mul(qc))
		}
		rem = Strip(rem)
	}
	return Poly{Coeffs: Strip(q)}, Poly{Coeffs: Strip(rem)}, nil
}
