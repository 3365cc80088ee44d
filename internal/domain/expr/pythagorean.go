package expr

import "github.com/gocas/symint/internal/domain/number"

// asConst reports whether e is a bare rational constant.
func asConst(e Expr) (number.Rational, bool) {
	r, ok := e.(Rational)
	if !ok {
		return number.Rational{}, false
	}
	return r.V, true
}

// asCoeffSquaredTrig reports whether e has the form coeff * trig(arg)^2,
// returning the coefficient, the trig kind and its argument.
func asCoeffSquaredTrig(e Expr) (number.Rational, TrigKind, Expr, bool) {
	coeff, factors := splitCoeffFactors(e)
	if len(factors) != 1 {
		return number.Rational{}, 0, nil, false
	}
	pw, ok := factors[0].(Power)
	if !ok {
		return number.Rational{}, 0, nil, false
	}
	tr, ok := pw.Base.(Trig)
	if !ok {
		return number.Rational{}, 0, nil, false
	}
	expR, ok := pw.Exp.(Rational)
	if !ok || expR.V.Cmp(number.NewInt(2)) != 0 {
		return number.Rational{}, 0, nil, false
	}
	return coeff, tr.Kind, tr.Arg, true
}

func squaredTrigTerm(kind TrigKind, arg Expr) Expr {
	return PowOf(Trig{Kind: kind, Arg: arg}, Int(2))
}

// pythagoreanPairRewrite tries every Pythagorean identity pattern from the
// specification against the ordered pair (a, b), returning a replacement
// for the pair when one matches.
func pythagoreanPairRewrite(a, b Expr) (Expr, bool) {
	// 1 + tan^2(u) -> sec^2(u); 1 + cot^2(u) -> csc^2(u)
	if ca, ok := asConst(a); ok && ca.IsOne() {
		if coeff, kind, arg, ok := asCoeffSquaredTrig(b); ok && coeff.IsOne() {
			switch kind {
			case TanKind:
				return squaredTrigTerm(SecKind, arg), true
			case CotKind:
				return squaredTrigTerm(CscKind, arg), true
			}
		}
		// 1 - sin^2(u) -> cos^2(u); 1 - cos^2(u) -> sin^2(u)
		if coeff, kind, arg, ok := asCoeffSquaredTrig(b); ok && coeff.Cmp(number.NewInt(-1)) == 0 {
			switch kind {
			case SinKind:
				return squaredTrigTerm(CosKind, arg), true
			case CosKind:
				return squaredTrigTerm(SinKind, arg), true
			}
		}
	}

	// sin^2(u)+cos^2(u) -> 1; sec^2(u)-tan^2(u) -> 1
	coeffA, kindA, argA, okA := asCoeffSquaredTrig(a)
	coeffB, kindB, argB, okB := asCoeffSquaredTrig(b)
	if okA && okB && SameForm(argA, argB) {
		pair := func(k1, k2 TrigKind) bool { return kindA == k1 && kindB == k2 }
		switch {
		case coeffA.IsOne() && coeffB.IsOne() && (pair(SinKind, CosKind) || pair(CosKind, SinKind)):
			return Int(1), true
		case coeffA.IsOne() && coeffB.Cmp(number.NewInt(-1)) == 0 && pair(SecKind, TanKind):
			return Int(1), true
		case coeffA.Cmp(number.NewInt(-1)) == 0 && coeffB.IsOne() && pair(TanKind, SecKind):
			return Int(1), true
		}
	}

	return nil, false
}

// applyPythagoreanOnce scans every unordered pair of terms for a
// Pythagorean identity match and rewrites at most one pair, per the
// specification's "apply exactly once per simplify" rule. Any new
// constant term produced by a match is re-folded into the constant
// already present among the remaining terms.
func applyPythagoreanOnce(terms []Expr) []Expr {
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			if replacement, ok := pythagoreanPairRewrite(terms[i], terms[j]); ok {
				return refoldAfterRewrite(terms, i, j, replacement)
			}
			if replacement, ok := pythagoreanPairRewrite(terms[j], terms[i]); ok {
				return refoldAfterRewrite(terms, i, j, replacement)
			}
		}
	}
	return terms
}

func refoldAfterRewrite(terms []Expr, i, j int, replacement Expr) []Expr {
	out := make([]Expr, 0, len(terms)-1)
	for idx, t := range terms {
		if idx == i || idx == j {
			continue
		}
		out = append(out, t)
	}
	out = append(out, replacement)

	constant := number.Zero()
	var rest []Expr
	for _, t := range out {
		if r, ok := t.(Rational); ok {
			constant = constant.Add(r.V)
			continue
		}
		rest = append(rest, t)
	}
	if !constant.IsZero() {
		rest = append(rest, Rational{constant})
	}
	return rest
}
