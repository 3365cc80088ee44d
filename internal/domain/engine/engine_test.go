package engine_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gocas/symint/internal/domain/engine"
	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rationalComparer = cmp.Comparer(func(a, b number.Rational) bool { return a.Cmp(b) == 0 })

func integrateOk(t *testing.T, e expr.Expr, v string) expr.Expr {
	t.Helper()
	got, err := engine.Integrate(e, v, engine.DefaultConfig())
	require.NoError(t, err)
	return got
}

func TestIntegratePolynomial(t *testing.T) {
	x := expr.Sym("x")
	e := expr.SumOf(expr.PowOf(x, expr.Int(2)), expr.ProductOf(expr.Int(3), x))
	got := integrateOk(t, e, "x")
	want := expr.SumOf(expr.DivOf(expr.PowOf(x, expr.Int(3)), expr.Int(3)), expr.DivOf(expr.ProductOf(expr.Int(3), expr.PowOf(x, expr.Int(2))), expr.Int(2)))
	assert.True(t, expr.Equal(got, want), "got %s want %s", got.String(), want.String())
}

func TestIntegrateCosine(t *testing.T) {
	x := expr.Sym("x")
	got := integrateOk(t, expr.Cos(x), "x")
	assert.True(t, expr.Equal(got, expr.Sin(x)))
}

func TestIntegrateExponential(t *testing.T) {
	x := expr.Sym("x")
	got := integrateOk(t, expr.PowOf(expr.E(), x), "x")
	assert.True(t, expr.Equal(got, expr.PowOf(expr.E(), x)))
}

func TestIntegrateConstantFactor(t *testing.T) {
	x := expr.Sym("x")
	got := integrateOk(t, expr.ProductOf(expr.Int(2), x), "x")
	assert.True(t, expr.Equal(got, expr.PowOf(x, expr.Int(2))))
}

func TestIntegrateLinearUSub(t *testing.T) {
	x := expr.Sym("x")
	arg := expr.SumOf(expr.ProductOf(expr.Int(2), x), expr.Int(1))
	got := integrateOk(t, expr.Sin(arg), "x")
	want := expr.Neg(expr.DivOf(expr.Cos(arg), expr.Int(2)))
	assert.True(t, expr.Equal(got, want), "got %s want %s", got.String(), want.String())
}

func TestIntegrateByParts(t *testing.T) {
	x := expr.Sym("x")
	e := expr.ProductOf(x, expr.Sin(x))
	got := integrateOk(t, e, "x")
	want := expr.SubOf(expr.Sin(x), expr.ProductOf(x, expr.Cos(x)))
	assert.True(t, expr.Equal(got, want), "got %s want %s", got.String(), want.String())
}

func TestIntegrateByPartsSelfReferentialLoop(t *testing.T) {
	x := expr.Sym("x")
	e := expr.ProductOf(expr.PowOf(expr.E(), x), expr.Sin(x))
	got := integrateOk(t, e, "x")

	// The exact grouping (e^x*(sin-cos)/2 vs. a difference of two
	// products) is an implementation detail, so check via the inverse
	// property instead of a literal string match.
	d, err := got.Diff("x")
	require.NoError(t, err)
	assert.True(t, expr.Equal(d.Simplify(), e.Simplify()), "d/dx %s = %s, want %s", got.String(), d.Simplify().String(), e.String())
}

func TestIntegratePartialFractions(t *testing.T) {
	x := expr.Sym("x")
	den := expr.ProductOf(expr.SumOf(x, expr.Int(-1)), expr.SumOf(x, expr.Int(1)))
	e := expr.DivOf(expr.One(), den)
	got, err := engine.Integrate(e, "x", engine.DefaultConfig())
	require.NoError(t, err)

	// Differentiating the result must recover the original integrand: the
	// exact log split (which antiderivative constant lands on which term)
	// is an implementation detail, so check via the inverse property
	// instead of a literal string match.
	d, err := got.Diff("x")
	require.NoError(t, err)
	assert.True(t, expr.Equal(d.Simplify(), e.Simplify()), "d/dx %s = %s, want %s", got.String(), d.Simplify().String(), e.String())
}

func TestIntegrateProductToSum(t *testing.T) {
	x := expr.Sym("x")
	e := expr.PowOf(expr.Sin(x), expr.Int(2))
	got, err := engine.Integrate(e, "x", engine.DefaultConfig())
	require.NoError(t, err)
	d, err := got.Diff("x")
	require.NoError(t, err)
	assert.True(t, expr.Equal(d.Simplify(), e.Simplify()))
}

func TestIntegrateFailsOnNonElementary(t *testing.T) {
	x := expr.Sym("x")
	e := expr.PowOf(expr.E(), expr.PowOf(x, expr.Int(2)))
	_, err := engine.Integrate(e, "x", engine.DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrIntegrationFailed))
}

func TestIntegrateRejectsEmptyVariable(t *testing.T) {
	_, err := engine.Integrate(expr.Int(1), "", engine.DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidInput))
}

func TestIntegrateBoundsFinite(t *testing.T) {
	x := expr.Sym("x")
	e := expr.PowOf(x, expr.Int(2))
	got, err := engine.IntegrateBounds(e, "x", engine.At(expr.Int(0)), engine.At(expr.Int(2)), engine.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, expr.Equal(got, expr.Frac(8, 3)))
}

func TestIntegrateBoundsNegativeRange(t *testing.T) {
	x := expr.Sym("x")
	got, err := engine.IntegrateBounds(expr.Cos(x), "x", engine.At(expr.Pi()), engine.At(expr.DivOf(expr.ProductOf(expr.Int(3), expr.Pi()), expr.Int(2))), engine.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, expr.Equal(got, expr.Int(-1)), "got %s", got.String())
}

func TestIntegrateBoundsDecayingExponentialToInfinity(t *testing.T) {
	x := expr.Sym("x")
	e := expr.PowOf(expr.E(), expr.Neg(x))
	got, err := engine.IntegrateBounds(e, "x", engine.At(expr.Int(0)), engine.PosInf(), engine.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, expr.Equal(got, expr.Int(1)), "got %s", got.String())
}

func TestIntegrateBoundsDivergentPolynomial(t *testing.T) {
	x := expr.Sym("x")
	_, err := engine.IntegrateBounds(x, "x", engine.At(expr.Int(0)), engine.PosInf(), engine.DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrDivergent))
}

func TestIntegrateIsDeterministic(t *testing.T) {
	x := expr.Sym("x")
	e := expr.ProductOf(x, expr.Cos(x))
	a := integrateOk(t, e, "x")
	b := integrateOk(t, e, "x")
	if diff := cmp.Diff(a, b, rationalComparer); diff != "" {
		t.Errorf("two runs over the same integrand produced different trees (-first +second):\n%s", diff)
	}
}

func TestIntegrateWithUUIDFreshNamesProducesEquivalentResult(t *testing.T) {
	x := expr.Sym("x")
	e := expr.ProductOf(x, expr.Cos(x))

	cfg := engine.DefaultConfig()
	cfg.Fresh = &engine.UUIDFreshNames{}

	got, err := engine.Integrate(e, "x", cfg)
	require.NoError(t, err)

	want := integrateOk(t, e, "x")
	assert.True(t, expr.Equal(got, want), "got %s want %s", got.String(), want.String())
}

func TestIntegrateThenDiffRecoversIntegrandAcrossTransforms(t *testing.T) {
	x := expr.Sym("x")
	cases := []expr.Expr{
		expr.SumOf(expr.PowOf(x, expr.Int(3)), x),
		expr.ProductOf(x, expr.PowOf(expr.E(), x)),
		expr.Tan(x),
		expr.DivOf(expr.One(), expr.SumOf(expr.PowOf(x, expr.Int(2)), expr.Int(4))),
	}
	for _, c := range cases {
		got, err := engine.Integrate(c, "x", engine.DefaultConfig())
		require.NoError(t, err, "integrating %s", c.String())
		d, err := got.Diff("x")
		require.NoError(t, err)
		assert.True(t, expr.Equal(d.Simplify(), c.Simplify()), "d/dx(integral of %s) = %s, want %s", c.String(), d.Simplify().String(), c.Simplify().String())
	}
}
