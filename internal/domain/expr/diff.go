package expr

import "fmt"

func (Rational) Diff(string) (Expr, error) { return Zero(), nil }
func (PiConst) Diff(string) (Expr, error)   { return Zero(), nil }
func (EConst) Diff(string) (Expr, error)    { return Zero(), nil }

func (s Symbol) Diff(v string) (Expr, error) {
	if s.Name == v {
		return One(), nil
	}
	return Zero(), nil
}

func (s Sum) Diff(v string) (Expr, error) {
	terms := make([]Expr, len(s.Terms))
	for i, t := range s.Terms {
		d, err := t.Diff(v)
		if err != nil {
			return nil, err
		}
		terms[i] = d
	}
	return SumOf(terms...), nil
}

// Diff applies the generalized product rule: d(f1*...*fn) is the sum over
// i of d(fi) times the product of every other factor.
func (p Product) Diff(v string) (Expr, error) {
	terms := make([]Expr, len(p.Factors))
	for i := range p.Factors {
		di, err := p.Factors[i].Diff(v)
		if err != nil {
			return nil, err
		}
		rest := make([]Expr, 0, len(p.Factors))
		rest = append(rest, di)
		for j, f := range p.Factors {
			if j != i {
				rest = append(rest, f)
			}
		}
		terms[i] = ProductOf(rest...)
	}
	return SumOf(terms...), nil
}

// Diff applies the power rule when the base depends on v (d(b^c) =
// c*b^(c-1)*db/dv) or the exponential rule when the exponent depends on v
// (d(c^g) = c^g*ln(c)*dg/dv). A power whose base and exponent both depend
// on v is outside the supported algebra (see spec Non-goals).
func (p Power) Diff(v string) (Expr, error) {
	baseHas := p.Base.Contains(v)
	expHas := p.Exp.Contains(v)

	if !baseHas && !expHas {
		return Zero(), nil
	}
	if baseHas && expHas {
		return nil, fmt.Errorf("%w: power %s has variable %q in both base and exponent", ErrUnsupportedDerivative, p.String(), v)
	}
	if baseHas {
		db, err := p.Base.Diff(v)
		if err != nil {
			return nil, err
		}
		return ProductOf(p.Exp, PowOf(p.Base, SubOf(p.Exp, One())), db), nil
	}
	dg, err := p.Exp.Diff(v)
	if err != nil {
		return nil, err
	}
	return ProductOf(Power{Base: p.Base, Exp: p.Exp}, NaturalLog(p.Base), dg), nil
}

// Diff handles the natural-logarithm base case (d/dx ln(u) = u'/u)
// directly, and rewrites a non-natural log_b(u) as ln(u)/ln(b) and applies
// the quotient rule, reusing the base case for both ln(u) and ln(b).
func (l Log) Diff(v string) (Expr, error) {
	if l.IsNatural() {
		du, err := l.Arg.Diff(v)
		if err != nil {
			return nil, err
		}
		return ProductOf(du, PowOf(l.Arg, Int(-1))), nil
	}

	lnU := NaturalLog(l.Arg)
	lnB := NaturalLog(l.baseOrE())
	dLnU, err := lnU.Diff(v)
	if err != nil {
		return nil, err
	}
	dLnB, err := lnB.Diff(v)
	if err != nil {
		return nil, err
	}
	numerator := SubOf(ProductOf(dLnU, lnB), ProductOf(lnU, dLnB))
	denominator := PowOf(lnB, Int(2))
	return DivOf(numerator, denominator), nil
}

func (t Trig) Diff(v string) (Expr, error) {
	du, err := t.Arg.Diff(v)
	if err != nil {
		return nil, err
	}
	var inner Expr
	switch t.Kind {
	case SinKind:
		inner = Cos(t.Arg)
	case CosKind:
		inner = Neg(Sin(t.Arg))
	case TanKind:
		inner = PowOf(Sec(t.Arg), Int(2))
	case SecKind:
		inner = ProductOf(Sec(t.Arg), Tan(t.Arg))
	case CscKind:
		inner = Neg(ProductOf(Csc(t.Arg), Cot(t.Arg)))
	case CotKind:
		inner = Neg(PowOf(Csc(t.Arg), Int(2)))
	default:
		return nil, fmt.Errorf("%w: unknown trig kind", ErrUnsupportedDerivative)
	}
	return ProductOf(inner, du), nil
}

func (a ArcTrig) Diff(v string) (Expr, error) {
	du, err := a.Arg.Diff(v)
	if err != nil {
		return nil, err
	}
	var inner Expr
	switch a.Kind {
	case AsinKind:
		inner = PowOf(SubOf(One(), PowOf(a.Arg, Int(2))), Frac(-1, 2))
	case AcosKind:
		inner = Neg(PowOf(SubOf(One(), PowOf(a.Arg, Int(2))), Frac(-1, 2)))
	case AtanKind:
		inner = PowOf(SumOf(One(), PowOf(a.Arg, Int(2))), Int(-1))
	default:
		return nil, fmt.Errorf("%w: unknown arc-trig kind", ErrUnsupportedDerivative)
	}
	return ProductOf(inner, du), nil
}
