// Package symint is the public entry point to the symbolic integrator: a
// thin re-export of internal/domain/expr and internal/domain/engine for
// library consumers who want to build, simplify, differentiate and
// integrate expressions without reaching into internal packages.
package symint

import (
	"strings"

	"github.com/gocas/symint/internal/domain/engine"
	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
	"github.com/gocas/symint/internal/domain/parser"
)

// Expr is the closed algebraic expression type: rationals, pi, e, a free
// variable, sums, products, powers, logs and the trig/arc-trig functions.
type Expr = expr.Expr

// Rational is an exact arbitrary-precision rational number.
type Rational = number.Rational

// Symbol names a free variable.
type Symbol string

// Error taxonomy, re-exported for errors.Is checks at the API boundary.
var (
	ErrNotImplementedFeature = engine.ErrNotImplementedFeature
	ErrUnsupportedDerivative = expr.ErrUnsupportedDerivative
	ErrIntegrationFailed     = engine.ErrIntegrationFailed
	ErrInvalidInput          = engine.ErrInvalidInput
	ErrDivergent             = engine.ErrDivergent
)

// Options controls the search depth and cycle budget the engine spends
// trying to find an antiderivative, threaded through to engine.Config.
type Options struct {
	MaxDepth  int
	MaxCycles int
}

func (o Options) toEngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if o.MaxDepth > 0 {
		cfg.MaxDepth = o.MaxDepth
	}
	if o.MaxCycles > 0 {
		cfg.MaxCycles = o.MaxCycles
	}
	return cfg
}

// Integrate returns an antiderivative of e with respect to v, or an error
// wrapping ErrIntegrationFailed if none of the engine's transforms close
// the search.
func Integrate(e Expr, v Symbol, opts ...Options) (Expr, error) {
	return engine.Integrate(e, string(v), resolveOptions(opts))
}

// IntegrateBounds returns the definite integral of e over [a, b] with
// respect to v, applying the fundamental theorem of calculus to the
// antiderivative found by Integrate.
func IntegrateBounds(e Expr, v Symbol, a, b Expr) (Expr, error) {
	return engine.IntegrateBounds(e, string(v), engine.At(a), engine.At(b), engine.DefaultConfig())
}

// IntegrateToPosInf returns the definite integral of e over [a, +inf).
func IntegrateToPosInf(e Expr, v Symbol, a Expr) (Expr, error) {
	return engine.IntegrateBounds(e, string(v), engine.At(a), engine.PosInf(), engine.DefaultConfig())
}

// IntegrateFromNegInf returns the definite integral of e over (-inf, b].
func IntegrateFromNegInf(e Expr, v Symbol, b Expr) (Expr, error) {
	return engine.IntegrateBounds(e, string(v), engine.NegInf(), engine.At(b), engine.DefaultConfig())
}

func resolveOptions(opts []Options) engine.Config {
	if len(opts) == 0 {
		return engine.DefaultConfig()
	}
	return opts[0].toEngineConfig()
}

// Diff returns d(e)/d(v).
func Diff(e Expr, v Symbol) (Expr, error) {
	return e.Diff(string(v))
}

// Simplify returns the canonical form of e.
func Simplify(e Expr) Expr {
	return e.Simplify()
}

// Expand distributes products over sums and expands integer powers of
// sums via the multinomial theorem.
func Expand(e Expr) (Expr, error) {
	return e.Expand()
}

// Evalf substitutes each symbol present in subs with its rational value
// and simplifies; symbols absent from subs pass through unchanged.
func Evalf(e Expr, subs map[string]Rational) Expr {
	return e.Eval(subs)
}

// Symbols splits a comma- or whitespace-separated name list into Symbol
// values, the way sympy's symbols() helper does.
func Symbols(names string) []Symbol {
	fields := strings.FieldsFunc(names, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]Symbol, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		out = append(out, Symbol(f))
	}
	return out
}

// Sym builds a single symbolic variable.
func Sym(name Symbol) Expr { return expr.Sym(string(name)) }

// Num builds a rational constant.
func Num(r Rational) Expr { return expr.Num(r) }

// NewRational builds an exact rational value a/b, for use with Evalf.
func NewRational(a, b int64) Rational { return number.NewFrac(a, b) }

// Int builds an integer constant.
func Int(n int64) Expr { return expr.Int(n) }

// Frac builds a rational constant a/b.
func Frac(a, b int64) Expr { return expr.Frac(a, b) }

// Pi and E are the symbolic constants pi and e.
func Pi() Expr { return expr.Pi() }
func E() Expr  { return expr.E() }

// SumOf, ProductOf, PowOf, Neg, SubOf and DivOf build and simplify the
// core algebraic combinators.
func SumOf(terms ...Expr) Expr        { return expr.SumOf(terms...) }
func ProductOf(factors ...Expr) Expr  { return expr.ProductOf(factors...) }
func PowOf(base, exp Expr) Expr       { return expr.PowOf(base, exp) }
func Neg(e Expr) Expr                 { return expr.Neg(e) }
func SubOf(a, b Expr) Expr            { return expr.SubOf(a, b) }
func DivOf(a, b Expr) Expr            { return expr.DivOf(a, b) }
func Sqrt(base Expr) Expr             { return expr.Sqrt(base) }
func Log(arg Expr) Expr               { return expr.NaturalLog(arg) }
func LogBase(arg, base Expr) Expr     { return expr.LogBase(arg, base) }

// Sin, Cos, Tan, Sec, Csc, Cot and their inverses build the trig algebra.
func Sin(arg Expr) Expr  { return expr.Sin(arg) }
func Cos(arg Expr) Expr  { return expr.Cos(arg) }
func Tan(arg Expr) Expr  { return expr.Tan(arg) }
func Sec(arg Expr) Expr  { return expr.Sec(arg) }
func Csc(arg Expr) Expr  { return expr.Csc(arg) }
func Cot(arg Expr) Expr  { return expr.Cot(arg) }
func Asin(arg Expr) Expr { return expr.Asin(arg) }
func Acos(arg Expr) Expr { return expr.Acos(arg) }
func Atan(arg Expr) Expr { return expr.Atan(arg) }

// Parse reads an expression from its canonical text form (spec.md §6's
// repr grammar): fully parenthesized sums and products, functions as
// name(arg), rationals as n/d.
func Parse(text string) (Expr, error) {
	return parser.NewParser().Parse(text)
}
