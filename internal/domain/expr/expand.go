package expr

// Expandable reports whether Expand would change e's structure: a Sum
// nested inside a Product, or a Sum base raised to an integer power >= 2,
// anywhere in the tree.
func Expandable(e Expr) bool {
	switch v := e.(type) {
	case Product:
		for _, f := range v.Factors {
			if _, ok := f.(Sum); ok {
				return true
			}
			if Expandable(f) {
				return true
			}
		}
		return false
	case Power:
		if sum, ok := v.Base.(Sum); ok {
			_ = sum
			if r, ok := v.Exp.(Rational); ok && r.V.IsInt() {
				if n, ok := r.V.Int64(); ok && n >= 2 {
					return true
				}
			}
		}
		return Expandable(v.Base) || Expandable(v.Exp)
	case Sum:
		for _, t := range v.Terms {
			if Expandable(t) {
				return true
			}
		}
		return false
	case Log:
		return Expandable(v.Arg)
	case Trig:
		return Expandable(v.Arg)
	case ArcTrig:
		return Expandable(v.Arg)
	default:
		return false
	}
}

func (r Rational) Expand() (Expr, error) { return r, nil }
func (p PiConst) Expand() (Expr, error)  { return p, nil }
func (e EConst) Expand() (Expr, error)   { return e, nil }
func (s Symbol) Expand() (Expr, error)   { return s, nil }

func (s Sum) Expand() (Expr, error) {
	terms := make([]Expr, len(s.Terms))
	for i, t := range s.Terms {
		et, err := t.Expand()
		if err != nil {
			return nil, err
		}
		terms[i] = et
	}
	return SumOf(terms...), nil
}

func containsSumFactor(p Product) bool {
	for _, f := range p.Factors {
		if _, ok := f.(Sum); ok {
			return true
		}
	}
	return false
}

// Expand distributes products over sums. A factor that is itself a
// negative power (a "denominator") is only expanded when its base is a
// product containing a sum factor, per the specification.
func (p Product) Expand() (Expr, error) {
	expanded := make([]Expr, len(p.Factors))
	for i, f := range p.Factors {
		ef, err := f.Expand()
		if err != nil {
			return nil, err
		}
		if pw, ok := f.(Power); ok {
			if r, ok := pw.Exp.(Rational); ok && r.V.Sign() < 0 {
				if baseProd, ok := pw.Base.(Product); ok && containsSumFactor(baseProd) {
					expandedBase, err := baseProd.Expand()
					if err != nil {
						return nil, err
					}
					ef = PowOf(expandedBase, pw.Exp)
				} else {
					ef = f
				}
			}
		}
		expanded[i] = ef
	}

	acc := []Expr{One()}
	for _, f := range expanded {
		if sum, ok := f.(Sum); ok {
			var next []Expr
			for _, accTerm := range acc {
				for _, sumTerm := range sum.Terms {
					next = append(next, ProductOf(accTerm, sumTerm))
				}
			}
			acc = next
			continue
		}
		for i, accTerm := range acc {
			acc[i] = ProductOf(accTerm, f)
		}
	}
	return SumOf(acc...), nil
}

// Expand applies the multinomial theorem to (sum)^n for positive integer
// n by repeated distribution; other forms pass through unchanged.
func (p Power) Expand() (Expr, error) {
	base, err := p.Base.Expand()
	if err != nil {
		return nil, err
	}
	if sum, ok := base.(Sum); ok {
		if r, ok := p.Exp.(Rational); ok && r.V.IsInt() {
			if n, ok := r.V.Int64(); ok && n >= 0 {
				if n == 0 {
					return One(), nil
				}
				factors := make([]Expr, n)
				for i := range factors {
					factors[i] = sum
				}
				return Product{Factors: factors}.Expand()
			}
		}
	}
	return PowOf(base, p.Exp), nil
}

func (l Log) Expand() (Expr, error) {
	arg, err := l.Arg.Expand()
	if err != nil {
		return nil, err
	}
	return Log{Arg: arg, Base: l.baseOrE()}.Simplify(), nil
}

func (t Trig) Expand() (Expr, error) {
	arg, err := t.Arg.Expand()
	if err != nil {
		return nil, err
	}
	return Trig{Kind: t.Kind, Arg: arg}.Simplify(), nil
}

func (a ArcTrig) Expand() (Expr, error) {
	arg, err := a.Arg.Expand()
	if err != nil {
		return nil, err
	}
	return ArcTrig{Kind: a.Kind, Arg: arg}.Simplify(), nil
}
