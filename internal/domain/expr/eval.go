package expr

import "github.com/gocas/symint/internal/domain/number"

func (r Rational) Eval(map[string]number.Rational) Expr { return r }
func (p PiConst) Eval(map[string]number.Rational) Expr  { return p }
func (e EConst) Eval(map[string]number.Rational) Expr   { return e }

func (s Symbol) Eval(subs map[string]number.Rational) Expr {
	if v, ok := subs[s.Name]; ok {
		return Rational{v}
	}
	return s
}

func (s Sum) Eval(subs map[string]number.Rational) Expr {
	terms := make([]Expr, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = t.Eval(subs)
	}
	return SumOf(terms...)
}

func (p Product) Eval(subs map[string]number.Rational) Expr {
	factors := make([]Expr, len(p.Factors))
	for i, f := range p.Factors {
		factors[i] = f.Eval(subs)
	}
	return ProductOf(factors...)
}

func (p Power) Eval(subs map[string]number.Rational) Expr {
	return PowOf(p.Base.Eval(subs), p.Exp.Eval(subs))
}

func (l Log) Eval(subs map[string]number.Rational) Expr {
	return Log{Arg: l.Arg.Eval(subs), Base: l.baseOrE().Eval(subs)}.Simplify()
}

func (t Trig) Eval(subs map[string]number.Rational) Expr {
	return Trig{Kind: t.Kind, Arg: t.Arg.Eval(subs)}.Simplify()
}

func (a ArcTrig) Eval(subs map[string]number.Rational) Expr {
	return ArcTrig{Kind: a.Kind, Arg: a.Arg.Eval(subs)}.Simplify()
}
