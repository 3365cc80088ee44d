// Package number provides the exact-arithmetic kernel the expression
// algebra is built on: arbitrary-precision rationals plus the handful of
// comparison and modulo operations the simplifier and the special-angle
// table need.
package number

import (
	"fmt"
	"math/big"
)

// Rational wraps big.Rat to provide exact rational arithmetic with an
// always-reduced (gcd = 1, denominator > 0) representation.
type Rational struct{ r *big.Rat }

// NewInt returns the rational n/1.
func NewInt(n int64) Rational { return Rational{big.NewRat(n, 1)} }

// NewFrac returns the rational a/b, reduced.
func NewFrac(a, b int64) Rational { return Rational{big.NewRat(a, b)} }

// NewFromBigInts returns the rational num/den, reduced. den must be non-zero.
func NewFromBigInts(num, den *big.Int) Rational {
	r := new(big.Rat).SetFrac(num, den)
	return Rational{r}
}

// ParseDecimal reads a literal such as "42" or "3.14" into an exact
// Rational, the way the parser turns a NUMBER token into a value with no
// floating-point rounding. Reports false on malformed input.
func ParseDecimal(s string) (Rational, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, false
	}
	return Rational{r}, true
}

// Zero returns the rational number 0.
func Zero() Rational { return NewInt(0) }

// One returns the rational number 1.
func One() Rational { return NewInt(1) }

// Num returns the reduced numerator.
func (r Rational) Num() *big.Int { return r.rat().Num() }

// Denom returns the reduced denominator (always > 0).
func (r Rational) Denom() *big.Int { return r.rat().Denom() }

// rat lazily defaults a zero-value Rational to 0/1 so the type stays
// usable without an explicit constructor (needed for map values and
// zero-initialized struct fields elsewhere in the engine).
func (r Rational) rat() *big.Rat {
	if r.r == nil {
		return big.NewRat(0, 1)
	}
	return r.r
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational { return Rational{new(big.Rat).Add(r.rat(), o.rat())} }

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational { return Rational{new(big.Rat).Sub(r.rat(), o.rat())} }

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational { return Rational{new(big.Rat).Mul(r.rat(), o.rat())} }

// Quo returns r / o. Panics if o is zero, matching big.Rat.Quo.
func (r Rational) Quo(o Rational) Rational { return Rational{new(big.Rat).Quo(r.rat(), o.rat())} }

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{new(big.Rat).Neg(r.rat())} }

// Abs returns |r|.
func (r Rational) Abs() Rational { return Rational{new(big.Rat).Abs(r.rat())} }

// Cmp compares r and o: -1 if r<o, 0 if r==o, 1 if r>o.
func (r Rational) Cmp(o Rational) int { return r.rat().Cmp(o.rat()) }

// Sign returns -1, 0 or 1 for negative, zero, positive r.
func (r Rational) Sign() int { return r.rat().Sign() }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool { return r.Cmp(One()) == 0 }

// IsInt reports whether r has denominator 1.
func (r Rational) IsInt() bool { return r.Denom().Cmp(big.NewInt(1)) == 0 }

// Int64 returns r as an int64 and whether the conversion is exact and fits.
func (r Rational) Int64() (int64, bool) {
	if !r.IsInt() {
		return 0, false
	}
	if !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

// Float64 returns the nearest float64 approximation, for display/ordering
// heuristics only — never for the exact arithmetic the simplifier relies on.
func (r Rational) Float64() float64 {
	f, _ := r.rat().Float64()
	return f
}

// Mod returns r mod m for positive m, result in [0, m). Used to reduce
// trig arguments expressed as rational multiples of pi into [0, 2) before
// a special-angle lookup.
func (r Rational) Mod(m Rational) Rational {
	if m.Sign() <= 0 {
		panic("number: Mod by non-positive modulus")
	}
	q := new(big.Rat).Quo(r.rat(), m.rat())
	qi := new(big.Int).Quo(q.Num(), q.Denom())
	if q.Sign() < 0 && new(big.Rat).SetInt(qi).Cmp(q) != 0 {
		qi.Sub(qi, big.NewInt(1))
	}
	prod := new(big.Rat).Mul(m.rat(), new(big.Rat).SetInt(qi))
	return Rational{new(big.Rat).Sub(r.rat(), prod)}
}

// Pow raises r to an integer power exactly; a negative n gives the
// reciprocal of r^-n.
func (r Rational) Pow(n int) Rational {
	if n < 0 {
		return One().Quo(r.Pow(-n))
	}
	out := One()
	base := r
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return out
}

// SqrtExact returns (sqrt(r), true) when r is a perfect square of rationals
// (both numerator and denominator are perfect squares of integers).
func (r Rational) SqrtExact() (Rational, bool) {
	if r.Sign() < 0 {
		return Rational{}, false
	}
	numSqrt, ok1 := isqrtExact(r.Num())
	denSqrt, ok2 := isqrtExact(r.Denom())
	if !ok1 || !ok2 {
		return Rational{}, false
	}
	return NewFromBigInts(numSqrt, denSqrt), true
}

func isqrtExact(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	root := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(root, root)
	if sq.Cmp(n) != 0 {
		return nil, false
	}
	return root, true
}

// String returns the canonical rational string form ("n" for integers,
// "n/d" otherwise).
func (r Rational) String() string {
	if r.IsInt() {
		return r.Num().String()
	}
	return fmt.Sprintf("%s/%s", r.Num().String(), r.Denom().String())
}
