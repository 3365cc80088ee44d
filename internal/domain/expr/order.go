package expr

import (
	"sort"

	"github.com/gocas/symint/internal/domain/number"
)

// nestingCategory implements the primary sort key from invariant 4:
// constant < symbol < atomic function < compound.
func nestingCategory(e Expr) int {
	switch e.(type) {
	case Rational, PiConst, EConst:
		return 0
	case Symbol:
		return 1
	case Log, Trig, ArcTrig:
		return 2
	default: // Sum, Product, Power
		return 3
	}
}

// powerExponent returns the secondary sort key: the constant exponent of a
// Power expression, or 1 for anything else (so that a bare symbol sorts as
// if it were symbol^1).
func powerExponent(e Expr) number.Rational {
	if p, ok := e.(Power); ok {
		if r, ok := p.Exp.(Rational); ok {
			return r.V
		}
	}
	return number.One()
}

// sortCanonical sorts a slice of already-simplified expressions in place
// per invariant 4: nesting category, then power exponent, then
// lexicographic normal-form text.
func sortCanonical(es []Expr) {
	sort.SliceStable(es, func(i, j int) bool {
		a, b := es[i], es[j]
		ca, cb := nestingCategory(a), nestingCategory(b)
		if ca != cb {
			return ca < cb
		}
		pa, pb := powerExponent(a), powerExponent(b)
		if c := pa.Cmp(pb); c != 0 {
			return c < 0
		}
		return a.String() < b.String()
	})
}
