package expr_test

import (
	"testing"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/stretchr/testify/assert"
)

func TestSimplifyIdempotent(t *testing.T) {
	x := expr.Sym("x")
	e := expr.SumOf(expr.ProductOf(expr.Int(2), x), expr.PowOf(x, expr.Int(2)), expr.Int(3), expr.Int(-1))
	once := e.Simplify()
	twice := once.Simplify()
	assert.Equal(t, once.String(), twice.String())
}

func TestSumMergesLikeTerms(t *testing.T) {
	x := expr.Sym("x")
	got := expr.SumOf(x, x, x)
	assert.True(t, expr.Equal(got, expr.ProductOf(expr.Int(3), x)))
}

func TestProductCombinesExponents(t *testing.T) {
	x := expr.Sym("x")
	got := expr.ProductOf(x, x)
	assert.True(t, expr.Equal(got, expr.PowOf(x, expr.Int(2))))
}

func TestPythagoreanSinCosIdentity(t *testing.T) {
	x := expr.Sym("x")
	got := expr.SumOf(expr.PowOf(expr.Sin(x), expr.Int(2)), expr.PowOf(expr.Cos(x), expr.Int(2)))
	assert.Equal(t, "1", got.String())
}

func TestPythagoreanSecTanIdentity(t *testing.T) {
	x := expr.Sym("x")
	got := expr.SumOf(expr.Int(1), expr.PowOf(expr.Tan(x), expr.Int(2)))
	assert.True(t, expr.Equal(got, expr.PowOf(expr.Sec(x), expr.Int(2))))
}

func TestSpecialAnglePiOverThree(t *testing.T) {
	got := expr.Sin(expr.ProductOf(expr.Frac(1, 3), expr.Pi()))
	assert.Equal(t, expr.Sqrt(expr.Int(3)).String(), expr.DivOf(got, expr.Frac(1, 2)).Simplify().String())
}

func TestSpecialAngleZero(t *testing.T) {
	assert.True(t, expr.Equal(expr.Sin(expr.Int(0)), expr.Int(0)))
	assert.True(t, expr.Equal(expr.Cos(expr.Int(0)), expr.Int(1)))
}

func TestTanUndefinedAtHalfPiStaysSymbolic(t *testing.T) {
	arg := expr.ProductOf(expr.Frac(1, 2), expr.Pi())
	got := expr.Tan(arg)
	assert.Contains(t, got.String(), "tan(")
}

func TestExpandDistributesProduct(t *testing.T) {
	x := expr.Sym("x")
	e := expr.ProductOf(x, expr.SumOf(x, expr.Int(1)))
	got, err := e.Expand()
	assert.NoError(t, err)
	assert.True(t, expr.Equal(got, expr.SumOf(expr.PowOf(x, expr.Int(2)), x)))
}

func TestExpandMultinomialSquare(t *testing.T) {
	x := expr.Sym("x")
	e := expr.PowOf(expr.SumOf(x, expr.Int(1)), expr.Int(2))
	got, err := e.Expand()
	assert.NoError(t, err)
	want := expr.SumOf(expr.PowOf(x, expr.Int(2)), expr.ProductOf(expr.Int(2), x), expr.Int(1))
	assert.True(t, expr.Equal(got, want))
}
