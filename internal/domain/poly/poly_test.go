package poly_test

import (
	"testing"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
	"github.com/gocas/symint/internal/domain/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromExprRoundTrip(t *testing.T) {
	x := expr.Sym("x")
	e := expr.SumOf(expr.PowOf(x, expr.Int(2)), expr.ProductOf(expr.Int(3), x), expr.Int(5)).Simplify()
	p, err := poly.FromExpr(e, "x")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())
	assert.True(t, expr.Equal(p.ToExpr("x"), e))
}

func TestFromExprRejectsNonPolynomial(t *testing.T) {
	x := expr.Sym("x")
	_, err := poly.FromExpr(expr.Sin(x), "x")
	assert.ErrorIs(t, err, poly.ErrNotPolynomial)
}

func TestDegreeOfZeroPolyIsNegativeOne(t *testing.T) {
	p, err := poly.FromExpr(expr.Zero(), "x")
	require.NoError(t, err)
	assert.Equal(t, -1, p.Degree())
	assert.True(t, p.IsZero())
}

func TestDivModExactDivision(t *testing.T) {
	x := expr.Sym("x")
	num, err := poly.FromExpr(expr.SumOf(expr.PowOf(x, expr.Int(2)), expr.Int(-1)).Simplify(), "x")
	require.NoError(t, err)
	den, err := poly.FromExpr(expr.SumOf(x, expr.Int(-1)).Simplify(), "x")
	require.NoError(t, err)

	quot, rem, err := poly.DivMod(num, den)
	require.NoError(t, err)
	assert.True(t, rem.IsZero())
	assert.True(t, expr.Equal(quot.ToExpr("x"), expr.SumOf(x, expr.Int(1))))
}

func TestDivModWithRemainder(t *testing.T) {
	x := expr.Sym("x")
	num, err := poly.FromExpr(expr.PowOf(x, expr.Int(2)), "x")
	require.NoError(t, err)
	den, err := poly.FromExpr(expr.SumOf(x, expr.Int(1)).Simplify(), "x")
	require.NoError(t, err)

	quot, rem, err := poly.DivMod(num, den)
	require.NoError(t, err)
	assert.True(t, expr.Equal(quot.ToExpr("x"), expr.SumOf(x, expr.Int(-1))))
	assert.True(t, expr.Equal(rem.ToExpr("x"), expr.Int(1)))
}

func TestInvert2x2RoundTrip(t *testing.T) {
	a, b, c, d := number.NewInt(1), number.NewInt(1), number.NewInt(1), number.NewInt(-1)
	ia, ib, ic, id, ok := poly.Invert2x2(a, b, c, d)
	require.True(t, ok)
	assert.Equal(t, number.NewFrac(1, 2).String(), ia.String())
	assert.Equal(t, number.NewFrac(1, 2).String(), ib.String())
	assert.Equal(t, number.NewFrac(1, 2).String(), ic.String())
	assert.Equal(t, number.NewFrac(-1, 2).String(), id.String())
}

func TestInvert2x2Singular(t *testing.T) {
	_, _, _, _, ok := poly.Invert2x2(number.NewInt(1), number.NewInt(2), number.NewInt(2), number.NewInt(4))
	assert.False(t, ok)
}

func TestSolve2x2(t *testing.T) {
	x, y, ok := poly.Solve2x2(number.NewInt(1), number.NewInt(1), number.NewInt(1), number.NewInt(-1), number.NewInt(4), number.NewInt(0))
	require.True(t, ok)
	assert.Equal(t, number.NewInt(2).String(), x.String())
	assert.Equal(t, number.NewInt(2).String(), y.String())
}

func TestPolyEvalAndRationalRoot(t *testing.T) {
	x := expr.Sym("x")
	p, err := poly.FromExpr(expr.SumOf(expr.ProductOf(expr.Int(2), x), expr.Int(-6)).Simplify(), "x")
	require.NoError(t, err)
	root, ok := p.RationalRoot()
	require.True(t, ok)
	assert.Equal(t, number.NewInt(3).String(), root.String())
	assert.True(t, p.Eval(root).IsZero())
}
