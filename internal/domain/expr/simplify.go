package expr

import "github.com/gocas/symint/internal/domain/number"

func (r Rational) Simplify() Expr { return r }
func (p PiConst) Simplify() Expr  { return p }
func (e EConst) Simplify() Expr   { return e }
func (s Symbol) Simplify() Expr   { return s }

// splitCoeffFactors partitions an already-simplified term into a rational
// coefficient and the ordered list of its non-constant factors, per step 2
// of the Sum simplification algorithm.
func splitCoeffFactors(e Expr) (number.Rational, []Expr) {
	switch v := e.(type) {
	case Rational:
		return v.V, nil
	case Product:
		coeff := number.One()
		var factors []Expr
		for _, f := range v.Factors {
			if r, ok := f.(Rational); ok {
				coeff = coeff.Mul(r.V)
				continue
			}
			factors = append(factors, f)
		}
		return coeff, factors
	default:
		return number.One(), []Expr{e}
	}
}

// factorKey returns a canonical text key for a factor list, used to group
// like terms in a Sum.
func factorKey(factors []Expr) string {
	if len(factors) == 0 {
		return ""
	}
	return Product{Factors: factors}.String()
}

func rebuildTerm(coeff number.Rational, factors []Expr) Expr {
	if len(factors) == 0 {
		return Rational{coeff}
	}
	if coeff.IsOne() {
		if len(factors) == 1 {
			return factors[0]
		}
		return Product{Factors: factors}
	}
	return Product{Factors: append([]Expr{Rational{coeff}}, factors...)}
}

// Simplify implements the five-step Sum algorithm from the specification:
// recursive simplify + flatten, like-term merge by factor set, constant
// folding, a single Pythagorean-rewrite pass, then canonical sort.
func (s Sum) Simplify() Expr {
	var flat []Expr
	for _, t := range s.Terms {
		st := t.Simplify()
		if inner, ok := st.(Sum); ok {
			flat = append(flat, inner.Terms...)
		} else {
			flat = append(flat, st)
		}
	}

	type group struct {
		factors []Expr
		coeff   number.Rational
	}
	order := []string{}
	groups := map[string]*group{}
	constant := number.Zero()

	for _, t := range flat {
		c, factors := splitCoeffFactors(t)
		if len(factors) == 0 {
			constant = constant.Add(c)
			continue
		}
		key := factorKey(factors)
		g, ok := groups[key]
		if !ok {
			g = &group{factors: factors, coeff: number.Zero()}
			groups[key] = g
			order = append(order, key)
		}
		g.coeff = g.coeff.Add(c)
	}

	var merged []Expr
	for _, key := range order {
		g := groups[key]
		if g.coeff.IsZero() {
			continue
		}
		merged = append(merged, rebuildTerm(g.coeff, g.factors))
	}
	if !constant.IsZero() {
		merged = append(merged, Rational{constant})
	}

	merged = applyPythagoreanOnce(merged)

	if len(merged) == 0 {
		return Rational{number.Zero()}
	}
	if len(merged) == 1 {
		return merged[0]
	}
	sortCanonical(merged)
	return Sum{Terms: merged}
}

// Simplify implements Product simplification: flatten nested products,
// fold numeric factors, combine like bases by summing exponents, apply
// the zero-product law, canonical sort.
func (p Product) Simplify() Expr {
	var flat []Expr
	for _, f := range p.Factors {
		sf := f.Simplify()
		if inner, ok := sf.(Product); ok {
			flat = append(flat, inner.Factors...)
		} else {
			flat = append(flat, sf)
		}
	}

	coeff := number.One()
	type group struct {
		base     Expr
		exponent Expr
	}
	order := []string{}
	groups := map[string]*group{}

	for _, f := range flat {
		if r, ok := f.(Rational); ok {
			if r.V.IsZero() {
				return Rational{number.Zero()}
			}
			coeff = coeff.Mul(r.V)
			continue
		}
		var base, exponent Expr
		if pw, ok := f.(Power); ok {
			base, exponent = pw.Base, pw.Exp
		} else {
			base, exponent = f, Rational{number.One()}
		}
		key := base.String()
		g, ok := groups[key]
		if !ok {
			g = &group{base: base, exponent: exponent}
			groups[key] = g
			order = append(order, key)
		} else {
			g.exponent = SumOf(g.exponent, exponent)
		}
	}

	if coeff.IsZero() {
		return Rational{number.Zero()}
	}

	var result []Expr
	for _, key := range order {
		g := groups[key]
		powered := PowOf(g.base, g.exponent)
		if r, ok := powered.(Rational); ok && r.V.IsOne() {
			continue
		}
		result = append(result, powered)
	}

	if !coeff.IsOne() {
		result = append([]Expr{Rational{coeff}}, result...)
	}

	if len(result) == 0 {
		return Rational{coeff}
	}
	if len(result) == 1 {
		return result[0]
	}
	sortCanonical(result)
	return Product{Factors: result}
}

// Simplify implements Power simplification per invariant 3: x^0=1, x^1=x,
// exact rational-base/rational-exponent folding, (x^a)^b=x^(a*b),
// (a*b*c)^n distribution, and b^(c*log_b(y)) = y^c.
func (p Power) Simplify() Expr {
	base := p.Base.Simplify()
	exp := p.Exp.Simplify()

	if er, ok := exp.(Rational); ok {
		if er.V.IsZero() {
			return Rational{number.One()}
		}
		if er.V.IsOne() {
			return base
		}
		if br, ok := base.(Rational); ok {
			if er.V.IsInt() {
				n, _ := er.V.Int64()
				if n >= 0 || !br.V.IsZero() {
					return Rational{br.V.Pow(int(n))}
				}
			} else if er.V.Denom().Int64() == 2 {
				if s, ok := br.V.Abs().SqrtExact(); ok {
					num := er.V.Num().Int64()
					sign := 1
					if num < 0 {
						sign = -1
						num = -num
					}
					val := s.Pow(int(num))
					if sign < 0 {
						val = number.One().Quo(val)
					}
					if br.V.Sign() < 0 {
						// sqrt of a negative rational is not real; leave
						// unevaluated rather than fabricate a value.
						return Power{Base: base, Exp: exp}
					}
					return Rational{val}
				}
			}
		}
	}

	if bp, ok := base.(Power); ok {
		return PowOf(bp.Base, ProductOf(bp.Exp, exp))
	}

	if bprod, ok := base.(Product); ok {
		newFactors := make([]Expr, len(bprod.Factors))
		for i, f := range bprod.Factors {
			newFactors[i] = PowOf(f, exp)
		}
		return ProductOf(newFactors...)
	}

	if lg, ok := exp.(Log); ok && SameForm(lg.baseOrE(), base) {
		return lg.Arg
	}
	if eprod, ok := exp.(Product); ok {
		for i, f := range eprod.Factors {
			if lg, ok := f.(Log); ok && SameForm(lg.baseOrE(), base) {
				rest := append(append([]Expr{}, eprod.Factors[:i]...), eprod.Factors[i+1:]...)
				c := ProductOf(rest...)
				return PowOf(lg.Arg, c)
			}
		}
	}

	return Power{Base: base, Exp: exp}
}

// Simplify implements Log(1)=0, Log_b(b)=1, Log(a*b)=Log(a)+Log(b),
// Log(a^n)=n*Log(a).
func (l Log) Simplify() Expr {
	arg := l.Arg.Simplify()
	base := l.baseOrE().Simplify()

	if SameForm(base, arg) {
		return Rational{number.One()}
	}
	if r, ok := arg.(Rational); ok && r.V.IsOne() {
		return Rational{number.Zero()}
	}
	if prod, ok := arg.(Product); ok {
		terms := make([]Expr, len(prod.Factors))
		for i, f := range prod.Factors {
			terms[i] = Log{Arg: f, Base: base}.Simplify()
		}
		return SumOf(terms...)
	}
	if pw, ok := arg.(Power); ok {
		return ProductOf(pw.Exp, Log{Arg: pw.Base, Base: base}.Simplify())
	}
	return Log{Arg: arg, Base: base}
}

func (t Trig) Simplify() Expr {
	arg := t.Arg.Simplify()
	if v, ok := lookupSpecialAngle(t.Kind, arg); ok {
		return v
	}
	return Trig{Kind: t.Kind, Arg: arg}
}

func (a ArcTrig) Simplify() Expr {
	return ArcTrig{Kind: a.Kind, Arg: a.Arg.Simplify()}
}
