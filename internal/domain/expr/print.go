package expr

import (
	"strings"

	"github.com/gocas/symint/internal/domain/number"
)

// String implementations produce the canonical, fully-parenthesized infix
// text described in the specification's text format: sums/products always
// parenthesized, functions as name(arg), rationals as n/d in parentheses
// when d>1, sqrt(.) as shorthand for ^(1/2), reciprocal ^-1 as 1/base.
// This text is the canonical equality fingerprint (see Equal).

func (r Rational) String() string {
	if r.V.IsInt() {
		return r.V.String()
	}
	return "(" + r.V.String() + ")"
}

func (PiConst) String() string { return "pi" }
func (EConst) String() string  { return "e" }
func (s Symbol) String() string { return s.Name }

// splitSign extracts a leading negative sign from a term so Sum.String can
// render "a - b" instead of "a + (-1*b)".
func splitSign(e Expr) (neg bool, rest Expr) {
	switch v := e.(type) {
	case Rational:
		if v.V.Sign() < 0 {
			return true, Rational{v.V.Neg()}
		}
	case Product:
		if len(v.Factors) == 0 {
			break
		}
		lead, ok := v.Factors[0].(Rational)
		if !ok || lead.V.Sign() >= 0 {
			break
		}
		rest := append([]Expr(nil), v.Factors...)
		rest[0] = Rational{lead.V.Neg()}
		if r, ok := rest[0].(Rational); ok && r.V.IsOne() && len(rest) > 1 {
			rest = rest[1:]
		}
		if len(rest) == 1 {
			return true, rest[0]
		}
		return true, Product{Factors: rest}
	}
	return false, e
}

func (s Sum) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range s.Terms {
		neg, rest := splitSign(t)
		text := rest.String()
		switch {
		case i == 0 && neg:
			b.WriteString("-" + text)
		case i == 0:
			b.WriteString(text)
		case neg:
			b.WriteString(" - " + text)
		default:
			b.WriteString(" + " + text)
		}
	}
	b.WriteByte(')')
	return b.String()
}

func (p Product) String() string {
	var num, den []string
	for _, f := range p.Factors {
		if pw, ok := f.(Power); ok {
			if r, ok := pw.Exp.(Rational); ok && r.V.Sign() < 0 {
				posExp := r.V.Neg()
				if posExp.IsOne() {
					den = append(den, pw.Base.String())
				} else {
					den = append(den, Power{Base: pw.Base, Exp: Rational{posExp}}.String())
				}
				continue
			}
		}
		num = append(num, f.String())
	}
	numStr := strings.Join(num, "*")
	if numStr == "" {
		numStr = "1"
	}
	if len(den) == 0 {
		return "(" + numStr + ")"
	}
	denStr := strings.Join(den, "*")
	if len(den) > 1 {
		denStr = "(" + denStr + ")"
	}
	return "(" + numStr + "/" + denStr + ")"
}

func (p Power) String() string {
	if r, ok := p.Exp.(Rational); ok {
		if r.V.Cmp(number.NewInt(-1)) == 0 {
			return "(1/" + p.Base.String() + ")"
		}
		if r.V.Cmp(number.NewFrac(1, 2)) == 0 {
			return "sqrt(" + p.Base.String() + ")"
		}
	}
	return "(" + p.Base.String() + "^" + p.Exp.String() + ")"
}

func (l Log) String() string {
	if l.IsNatural() {
		return "log(" + l.Arg.String() + ")"
	}
	return "log(" + l.Arg.String() + ", " + l.baseOrE().String() + ")"
}

func (t Trig) String() string { return t.Kind.name() + "(" + t.Arg.String() + ")" }

func (a ArcTrig) String() string { return a.Kind.name() + "(" + a.Arg.String() + ")" }
