package expr_test

import (
	"errors"
	"testing"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffSimplified(t *testing.T, e expr.Expr, v string) expr.Expr {
	t.Helper()
	d, err := e.Diff(v)
	require.NoError(t, err)
	return d.Simplify()
}

func TestDiffPowerRule(t *testing.T) {
	x := expr.Sym("x")
	got := diffSimplified(t, expr.PowOf(x, expr.Int(2)), "x")
	assert.True(t, expr.Equal(got, expr.ProductOf(expr.Int(2), x)))
}

func TestDiffProductRule(t *testing.T) {
	x := expr.Sym("x")
	got := diffSimplified(t, expr.ProductOf(expr.Int(3), x), "x")
	assert.True(t, expr.Equal(got, expr.Int(3)))
}

func TestDiffSin(t *testing.T) {
	x := expr.Sym("x")
	got := diffSimplified(t, expr.Sin(x), "x")
	assert.True(t, expr.Equal(got, expr.Cos(x)))
}

func TestDiffSumLinearity(t *testing.T) {
	x := expr.Sym("x")
	got := diffSimplified(t, expr.SumOf(expr.PowOf(x, expr.Int(2)), expr.ProductOf(expr.Int(3), x)), "x")
	assert.True(t, expr.Equal(got, expr.SumOf(expr.ProductOf(expr.Int(2), x), expr.Int(3))))
}

func TestDiffNaturalLog(t *testing.T) {
	x := expr.Sym("x")
	got := diffSimplified(t, expr.NaturalLog(x), "x")
	assert.True(t, expr.Equal(got, expr.PowOf(x, expr.Int(-1))))
}

func TestDiffExponential(t *testing.T) {
	x := expr.Sym("x")
	got := diffSimplified(t, expr.PowOf(expr.E(), x), "x")
	assert.True(t, expr.Equal(got, expr.PowOf(expr.E(), x)))
}

func TestDiffMixedBaseExponentIsUnsupported(t *testing.T) {
	x := expr.Sym("x")
	_, err := expr.PowOf(x, x).Diff("x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, expr.ErrUnsupportedDerivative))
}

func TestDiffInverseDerivativeProperty(t *testing.T) {
	x := expr.Sym("x")
	f := expr.ProductOf(expr.Int(6), expr.PowOf(expr.E(), x))
	antideriv := expr.ProductOf(expr.Int(6), expr.PowOf(expr.E(), x))
	d := diffSimplified(t, antideriv, "x")
	assert.True(t, expr.Equal(d, f))
}
