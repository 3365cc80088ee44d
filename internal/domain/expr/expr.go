// Package expr implements the canonical symbolic expression algebra: a
// closed algebraic data type over rationals, the symbolic constants pi and
// e, a free variable, sums, products, powers, logarithm and the six trig
// and three inverse-trig functions, together with simplification,
// differentiation, expansion, substitution and two printers.
//
// Expressions are immutable value objects: every operation below returns
// a new Expr rather than mutating its receiver, and sub-expressions may be
// shared freely across trees.
package expr

import "github.com/gocas/symint/internal/domain/number"

// Expr is the closed set of expression variants. Every concrete type in
// this package implements Expr; callers outside the package build and
// consume expressions only through this interface and the constructor
// functions (SumOf, ProductOf, PowOf, ...).
type Expr interface {
	// Simplify returns the canonical form of the expression, per the
	// invariants documented on Sum, Product and Power below.
	Simplify() Expr

	// Diff returns d(expr)/d(v). Returns UnsupportedDerivative when the
	// expression contains a construct outside the supported algebra
	// (e.g. a power with both base and exponent depending on v).
	Diff(v string) (Expr, error)

	// Expand distributes products over sums and expands (sum)^n for
	// positive integer n via the multinomial theorem.
	Expand() (Expr, error)

	// Eval substitutes each symbol present in subs with its rational
	// value and simplifies; symbols absent from subs pass through
	// unchanged.
	Eval(subs map[string]number.Rational) Expr

	// Contains reports whether v occurs anywhere in the expression tree.
	Contains(v string) bool

	// Symbols returns the distinct variable names occurring in the
	// expression, in first-seen order.
	Symbols() []string

	// Children returns the immediate sub-expressions, for tree
	// traversal by the integration engine.
	Children() []Expr

	// String returns the fully-parenthesized canonical infix text used
	// as the structural-equality fingerprint (see Equal).
	String() string

	// Latex returns a typeset-math rendering for display.
	Latex() string

	exprNode()
}

// Equal reports whether a and b represent the same value on their common
// domain: both are simplified and their canonical text forms compared, per
// invariant 4 (§3 of the specification).
func Equal(a, b Expr) bool {
	return a.Simplify().String() == b.Simplify().String()
}

// SameForm reports whether two already-simplified expressions have
// identical canonical text, without re-simplifying. Transforms use this
// internally once both sides are known to already be in normal form, to
// avoid redundant work.
func SameForm(a, b Expr) bool { return a.String() == b.String() }

/* ---------- Rational literal ---------- */

// Rational is a constant rational-number literal.
type Rational struct{ V number.Rational }

func (Rational) exprNode() {}

/* ---------- symbolic constants pi, e ---------- */

// PiConst is the symbolic constant pi.
type PiConst struct{}

func (PiConst) exprNode() {}

// EConst is the symbolic constant e (Euler's number).
type EConst struct{}

func (EConst) exprNode() {}

/* ---------- Symbol ---------- */

// Symbol is a named free variable.
type Symbol struct{ Name string }

func (Symbol) exprNode() {}

/* ---------- Sum ---------- */

// Sum is an n-ary sum of terms, n >= 2 when in canonical (simplified)
// form. A simplified Sum never nests another Sum among its terms.
type Sum struct{ Terms []Expr }

func (Sum) exprNode() {}

/* ---------- Product ---------- */

// Product is an n-ary product of factors, n >= 2 when in canonical form.
// A simplified Product never nests another Product among its factors.
type Product struct{ Factors []Expr }

func (Product) exprNode() {}

/* ---------- Power ---------- */

// Power is Base raised to Exp.
type Power struct{ Base, Exp Expr }

func (Power) exprNode() {}

/* ---------- Log ---------- */

// Log is the logarithm of Arg in the given Base. A nil Base means the
// natural logarithm (base e); use NaturalLog to construct one explicitly.
type Log struct {
	Arg  Expr
	Base Expr
}

func (Log) exprNode() {}

// IsNatural reports whether l is a natural logarithm (base e).
func (l Log) IsNatural() bool {
	_, ok := l.Base.(EConst)
	return ok || l.Base == nil
}

// baseOrE returns l.Base, defaulting to EConst{} when unset.
func (l Log) baseOrE() Expr {
	if l.Base == nil {
		return EConst{}
	}
	return l.Base
}

/* ---------- Trig ---------- */

// TrigKind identifies one of the six trigonometric functions.
type TrigKind int

const (
	SinKind TrigKind = iota
	CosKind
	TanKind
	SecKind
	CscKind
	CotKind
)

// label returns the Title-cased name of the function; String/Latex
// derive the lower-cased canonical token from it via canonicalFuncName.
func (k TrigKind) label() string {
	switch k {
	case SinKind:
		return "Sin"
	case CosKind:
		return "Cos"
	case TanKind:
		return "Tan"
	case SecKind:
		return "Sec"
	case CscKind:
		return "Csc"
	case CotKind:
		return "Cot"
	default:
		return "?Trig?"
	}
}

func (k TrigKind) name() string { return canonicalFuncName(k.label()) }

// Trig applies one of the six trigonometric functions to Arg.
type Trig struct {
	Kind TrigKind
	Arg  Expr
}

func (Trig) exprNode() {}

/* ---------- ArcTrig ---------- */

// ArcKind identifies one of the three supported inverse trig functions.
type ArcKind int

const (
	AsinKind ArcKind = iota
	AcosKind
	AtanKind
)

func (k ArcKind) label() string {
	switch k {
	case AsinKind:
		return "Asin"
	case AcosKind:
		return "Acos"
	case AtanKind:
		return "Atan"
	default:
		return "?Arc?"
	}
}

func (k ArcKind) name() string { return canonicalFuncName(k.label()) }

// ArcTrig applies one of asin, acos, atan to Arg.
type ArcTrig struct {
	Kind ArcKind
	Arg  Expr
}

func (ArcTrig) exprNode() {}
