package expr

import (
	"strings"

	"github.com/gocas/symint/internal/domain/number"
)

// Latex implementations produce a typeset-math rendering for display only:
// standard fraction, radical, \cdot product, \left(...\right) grouping.
// This is not used for equality and need not be canonical.

func (r Rational) Latex() string {
	if r.V.IsInt() {
		return r.V.String()
	}
	neg := r.V.Sign() < 0
	v := r.V.Abs()
	s := "\\frac{" + v.Num().String() + "}{" + v.Denom().String() + "}"
	if neg {
		return "-" + s
	}
	return s
}

func (PiConst) Latex() string  { return "\\pi" }
func (EConst) Latex() string   { return "e" }
func (s Symbol) Latex() string { return s.Name }

func (s Sum) Latex() string {
	var b strings.Builder
	for i, t := range s.Terms {
		neg, rest := splitSign(t)
		text := rest.Latex()
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
	return b.String()
}

// latexGroup wraps e in \left( \right) when it is a compound expression
// that would otherwise be ambiguous (a sum or product nested inside
// another operator).
func latexGroup(e Expr) string {
	switch e.(type) {
	case Sum, Product:
		return "\\left(" + e.Latex() + "\\right)"
	default:
		return e.Latex()
	}
}

func (p Product) Latex() string {
	var num, den []string
	for _, f := range p.Factors {
		if pw, ok := f.(Power); ok {
			if r, ok := pw.Exp.(Rational); ok && r.V.Sign() < 0 {
				posExp := r.V.Neg()
				if posExp.IsOne() {
					den = append(den, latexGroup(pw.Base))
				} else {
					den = append(den, Power{Base: pw.Base, Exp: Rational{posExp}}.Latex())
				}
				continue
			}
		}
		num = append(num, latexGroup(f))
	}
	numStr := strings.Join(num, " \\cdot ")
	if numStr == "" {
		numStr = "1"
	}
	if len(den) == 0 {
		return numStr
	}
	denStr := strings.Join(den, " \\cdot ")
	return "\\frac{" + numStr + "}{" + denStr + "}"
}

func (p Power) Latex() string {
	if r, ok := p.Exp.(Rational); ok {
		if r.V.Cmp(number.NewInt(-1)) == 0 {
			return "\\frac{1}{" + p.Base.Latex() + "}"
		}
		if r.V.Cmp(number.NewFrac(1, 2)) == 0 {
			return "\\sqrt{" + p.Base.Latex() + "}"
		}
	}
	return "{" + latexGroup(p.Base) + "}^{" + p.Exp.Latex() + "}"
}

func (l Log) Latex() string {
	if l.IsNatural() {
		return "\\ln\\left(" + l.Arg.Latex() + "\\right)"
	}
	return "\\log_{" + l.baseOrE().Latex() + "}\\left(" + l.Arg.Latex() + "\\right)"
}

func (t Trig) Latex() string {
	return "\\" + t.Kind.name() + "\\left(" + t.Arg.Latex() + "\\right)"
}

func (a ArcTrig) Latex() string {
	return "\\operatorname{arc" + strings.TrimPrefix(a.Kind.name(), "a") + "}\\left(" + a.Arg.Latex() + "\\right)"
}
