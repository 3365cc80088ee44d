package engine

import (
	"errors"
	"fmt"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
)

// ErrDivergent is returned by IntegrateBounds when one of the bounds is
// infinite and the antiderivative's leading term grows without bound
// there, so no finite value exists.
var ErrDivergent = errors.New("engine: definite integral diverges")

// BoundKind distinguishes a finite bound from the two infinite bounds
// spec §4.2.4 asks for symbolic limit handling at.
type BoundKind int

const (
	FiniteBound BoundKind = iota
	NegInfBound
	PosInfBound
)

// Bound is one endpoint of a definite integral.
type Bound struct {
	Kind  BoundKind
	Value expr.Expr // meaningful only when Kind == FiniteBound
}

// At builds a finite bound.
func At(e expr.Expr) Bound { return Bound{Kind: FiniteBound, Value: e} }

// NegInf and PosInf build the two infinite bounds.
func NegInf() Bound { return Bound{Kind: NegInfBound} }
func PosInf() Bound { return Bound{Kind: PosInfBound} }

// IntegrateBounds computes the definite integral of e with respect to v
// over [lower, upper]: find an antiderivative F, then F(upper) - F(lower)
// via substitution and simplification, per spec §4.2.4. An infinite bound
// is resolved via the leading-term heuristics of SPEC_FULL.md §11.
func IntegrateBounds(e expr.Expr, v string, lower, upper Bound, opts Config) (expr.Expr, error) {
	antideriv, err := Integrate(e, v, opts)
	if err != nil {
		return nil, err
	}

	hi, err := evalBound(antideriv, v, upper)
	if err != nil {
		return nil, err
	}
	lo, err := evalBound(antideriv, v, lower)
	if err != nil {
		return nil, err
	}
	return expr.SubOf(hi, lo), nil
}

func evalBound(antideriv expr.Expr, v string, b Bound) (expr.Expr, error) {
	switch b.Kind {
	case FiniteBound:
		return expr.ReplaceSymbol(antideriv, v, b.Value).Simplify(), nil
	case PosInfBound:
		return limitAtInfinity(antideriv, v, true)
	case NegInfBound:
		return limitAtInfinity(antideriv, v, false)
	default:
		return nil, fmt.Errorf("%w: unknown bound kind", ErrInvalidInput)
	}
}

// limitAtInfinity classifies the leading behavior of F as v -> +-infinity
// (towardPositive selects the direction) by inspecting each additive term
// for one of two recognized shapes, grounded on the original
// implementation's eval_at_infinity-style leading-term trick (SPEC_FULL.md
// §11): an exponential c*b^(k*v) decaying to 0, or a polynomial term in v
// whose sign diverges. If any term grows the result is ErrDivergent;
// otherwise any term that neither decays nor grows (a constant term
// included) makes the result NotImplementedFeature.
func limitAtInfinity(f expr.Expr, v string, towardPositive bool) (expr.Expr, error) {
	terms := []expr.Expr{f}
	if s, ok := f.(expr.Sum); ok {
		terms = s.Terms
	}

	allDecay := true
	anyGrowth := false
	var growthSign int
	for _, term := range terms {
		switch behavior, sign := classifyTerm(term, v, towardPositive); behavior {
		case decays:
			continue
		case grows:
			allDecay = false
			anyGrowth = true
			growthSign = sign
		default:
			allDecay = false
		}
	}

	if allDecay {
		return expr.Zero(), nil
	}
	if anyGrowth {
		if growthSign < 0 {
			return nil, fmt.Errorf("%w: %s diverges to -infinity", ErrDivergent, f.String())
		}
		return nil, fmt.Errorf("%w: %s diverges to +infinity", ErrDivergent, f.String())
	}
	return nil, fmt.Errorf("%w: cannot determine the limit of %s", ErrNotImplementedFeature, f.String())
}

type termBehavior int

const (
	indeterminate termBehavior = iota
	decays
	grows
)

// classifyTerm recognizes term as either c*b^(k*v) (exponential) or a
// polynomial term a*v^n, returning its limiting behavior and, for growth,
// the sign of the limit.
func classifyTerm(term expr.Expr, v string, towardPositive bool) (termBehavior, int) {
	if !term.Contains(v) {
		return indeterminate, 0
	}

	factors := []expr.Expr{term}
	if p, ok := term.(expr.Product); ok {
		factors = p.Factors
	}

	for _, f := range factors {
		pw, ok := f.(expr.Power)
		if !ok || pw.Base.Contains(v) || !pw.Exp.Contains(v) {
			continue
		}
		base, ok := pw.Base.(expr.Rational)
		if !ok {
			if _, isE := pw.Base.(expr.EConst); !isE {
				continue
			}
		}
		baseAbsGreaterThanOne := true
		if ok {
			baseAbsGreaterThanOne = base.V.Abs().Cmp(number.One()) > 0
		}
		expCoeffSign := exponentDirectionSign(pw.Exp, v)
		if expCoeffSign == 0 {
			continue
		}
		goingToPositiveInfinityExponent := (expCoeffSign > 0) == towardPositive
		if goingToPositiveInfinityExponent == baseAbsGreaterThanOne {
			if termSign(term) < 0 {
				return grows, -1
			}
			return grows, 1
		}
		return decays, 0
	}

	coeffSign := 0
	degree := 0
	for _, f := range factors {
		if !f.Contains(v) {
			continue
		}
		switch n := f.(type) {
		case expr.Symbol:
			degree = 1
		case expr.Power:
			if r, ok := n.Exp.(expr.Rational); ok && r.V.IsInt() {
				if deg, ok := r.V.Int64(); ok {
					degree = int(deg)
				}
			}
		}
	}
	if degree == 0 {
		return indeterminate, 0
	}
	if sign := termSign(term); sign != 0 {
		coeffSign = sign
	} else {
		coeffSign = 1
	}
	effectiveSign := coeffSign
	if !towardPositive && degree%2 == 1 {
		effectiveSign = -coeffSign
	}
	return grows, effectiveSign
}

// exponentDirectionSign reports the sign of the coefficient of v inside
// the exponent expression (positive if the exponent grows with v).
func exponentDirectionSign(exp expr.Expr, v string) int {
	ratio := expr.DivOf(exp, expr.Sym(v))
	if ratio.Contains(v) {
		return 0
	}
	if r, ok := ratio.(expr.Rational); ok {
		return r.V.Sign()
	}
	return 1
}

// termSign returns the sign of a term's constant rational coefficient, or
// 0 if none is present (treated as positive by the caller).
func termSign(term expr.Expr) int {
	if p, ok := term.(expr.Product); ok {
		for _, f := range p.Factors {
			if r, ok := f.(expr.Rational); ok {
				return r.V.Sign()
			}
		}
		return 0
	}
	if r, ok := term.(expr.Rational); ok {
		return r.V.Sign()
	}
	return 0
}
