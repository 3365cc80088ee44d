package expr

import "github.com/gocas/symint/internal/domain/number"

// specialAngle holds the exact sin and cos of a rational-multiple-of-pi
// angle, reduced modulo 2 (i.e. the key is the coefficient k in k*pi).
type specialAngle struct{ Sin, Cos Expr }

var sqrt2Over2 = ProductOf(Frac(1, 2), Sqrt(Int(2)))
var sqrt3Over2 = ProductOf(Frac(1, 2), Sqrt(Int(3)))
var negSqrt2Over2 = Neg(sqrt2Over2)
var negSqrt3Over2 = Neg(sqrt3Over2)
var half = Frac(1, 2)
var negHalf = Frac(-1, 2)

// specialAngleTable covers the twelve rational-pi-multiple keys named in
// the specification; each contributes an exact sin and cos value (the
// "24 special" entries are these twelve keys times the two functions).
var specialAngleTable = map[string]specialAngle{
	number.NewInt(0).String():    {Sin: Int(0), Cos: Int(1)},
	number.NewFrac(1, 4).String(): {Sin: sqrt2Over2, Cos: sqrt2Over2},
	number.NewFrac(1, 3).String(): {Sin: sqrt3Over2, Cos: half},
	number.NewFrac(1, 2).String(): {Sin: Int(1), Cos: Int(0)},
	number.NewFrac(2, 3).String(): {Sin: sqrt3Over2, Cos: negHalf},
	number.NewFrac(3, 4).String(): {Sin: sqrt2Over2, Cos: negSqrt2Over2},
	number.NewInt(1).String():    {Sin: Int(0), Cos: Int(-1)},
	number.NewFrac(5, 4).String(): {Sin: negSqrt2Over2, Cos: negSqrt2Over2},
	number.NewFrac(4, 3).String(): {Sin: negSqrt3Over2, Cos: negHalf},
	number.NewFrac(3, 2).String(): {Sin: Int(-1), Cos: Int(0)},
	number.NewFrac(5, 3).String(): {Sin: negSqrt3Over2, Cos: half},
	number.NewFrac(7, 4).String(): {Sin: negSqrt2Over2, Cos: sqrt2Over2},
}

// rationalMultipleOfPi reports whether e has the form k*pi for a rational
// k (including the degenerate k=0 case of a bare zero, and k=1 for a bare
// pi), returning k.
func rationalMultipleOfPi(e Expr) (number.Rational, bool) {
	switch v := e.(type) {
	case Rational:
		if v.V.IsZero() {
			return number.Zero(), true
		}
		return number.Rational{}, false
	case PiConst:
		return number.One(), true
	case Product:
		if len(v.Factors) != 2 {
			return number.Rational{}, false
		}
		var k number.Rational
		hasK, hasPi := false, false
		for _, f := range v.Factors {
			switch fv := f.(type) {
			case Rational:
				k, hasK = fv.V, true
			case PiConst:
				hasPi = true
			default:
				return number.Rational{}, false
			}
		}
		if hasK && hasPi {
			return k, true
		}
	}
	return number.Rational{}, false
}

// lookupSpecialAngle returns the exact value of the given trig function at
// arg when arg is a rational multiple of pi at one of the table's keys and
// the function is defined there (e.g. tan is undefined at pi/2).
func lookupSpecialAngle(kind TrigKind, arg Expr) (Expr, bool) {
	k, ok := rationalMultipleOfPi(arg)
	if !ok {
		return nil, false
	}
	key := k.Mod(number.NewInt(2))
	entry, ok := specialAngleTable[key.String()]
	if !ok {
		return nil, false
	}

	isZero := func(e Expr) bool {
		r, ok := e.(Rational)
		return ok && r.V.IsZero()
	}

	switch kind {
	case SinKind:
		return entry.Sin, true
	case CosKind:
		return entry.Cos, true
	case TanKind:
		if isZero(entry.Cos) {
			return nil, false
		}
		return DivOf(entry.Sin, entry.Cos), true
	case SecKind:
		if isZero(entry.Cos) {
			return nil, false
		}
		return DivOf(One(), entry.Cos), true
	case CscKind:
		if isZero(entry.Sin) {
			return nil, false
		}
		return DivOf(One(), entry.Sin), true
	case CotKind:
		if isZero(entry.Sin) {
			return nil, false
		}
		return DivOf(entry.Cos, entry.Sin), true
	}
	return nil, false
}
