package expr

import "github.com/gocas/symint/internal/domain/number"

// Int returns the integer literal n as an expression.
func Int(n int64) Expr { return Rational{number.NewInt(n)} }

// Frac returns the rational literal a/b as an expression.
func Frac(a, b int64) Expr { return Rational{number.NewFrac(a, b)} }

// Num wraps a number.Rational as an expression.
func Num(r number.Rational) Expr { return Rational{r} }

// Zero is the rational constant 0.
func Zero() Expr { return Rational{number.Zero()} }

// One is the rational constant 1.
func One() Expr { return Rational{number.One()} }

// Pi is the symbolic constant pi.
func Pi() Expr { return PiConst{} }

// E is the symbolic constant e.
func E() Expr { return EConst{} }

// Sym builds a symbol expression. Panics if name is empty: constructing an
// unnamed variable is a programmer error, not a recoverable input error.
func Sym(name string) Expr {
	if name == "" {
		panic("expr: Sym requires a non-empty name")
	}
	return Symbol{Name: name}
}

// SumOf constructs and simplifies a sum of terms.
func SumOf(terms ...Expr) Expr { return Sum{Terms: terms}.Simplify() }

// ProductOf constructs and simplifies a product of factors.
func ProductOf(factors ...Expr) Expr { return Product{Factors: factors}.Simplify() }

// Neg returns -e.
func Neg(e Expr) Expr { return ProductOf(Int(-1), e) }

// SubOf returns a - b.
func SubOf(a, b Expr) Expr { return SumOf(a, Neg(b)) }

// DivOf returns a / b.
func DivOf(a, b Expr) Expr { return ProductOf(a, PowOf(b, Int(-1))) }

// PowOf constructs and simplifies a power expression.
func PowOf(base, exp Expr) Expr { return Power{Base: base, Exp: exp}.Simplify() }

// Sqrt is shorthand for base^(1/2).
func Sqrt(base Expr) Expr { return PowOf(base, Frac(1, 2)) }

// NaturalLog returns log_e(arg).
func NaturalLog(arg Expr) Expr { return Log{Arg: arg, Base: EConst{}}.Simplify() }

// LogBase returns log_base(arg).
func LogBase(arg, base Expr) Expr { return Log{Arg: arg, Base: base}.Simplify() }

// Sin, Cos, Tan, Sec, Csc, Cot build the six trig functions of arg.
func Sin(arg Expr) Expr { return Trig{Kind: SinKind, Arg: arg}.Simplify() }
func Cos(arg Expr) Expr { return Trig{Kind: CosKind, Arg: arg}.Simplify() }
func Tan(arg Expr) Expr { return Trig{Kind: TanKind, Arg: arg}.Simplify() }
func Sec(arg Expr) Expr { return Trig{Kind: SecKind, Arg: arg}.Simplify() }
func Csc(arg Expr) Expr { return Trig{Kind: CscKind, Arg: arg}.Simplify() }
func Cot(arg Expr) Expr { return Trig{Kind: CotKind, Arg: arg}.Simplify() }

// Asin, Acos, Atan build the three supported inverse trig functions of arg.
func Asin(arg Expr) Expr { return ArcTrig{Kind: AsinKind, Arg: arg}.Simplify() }
func Acos(arg Expr) Expr { return ArcTrig{Kind: AcosKind, Arg: arg}.Simplify() }
func Atan(arg Expr) Expr { return ArcTrig{Kind: AtanKind, Arg: arg}.Simplify() }
