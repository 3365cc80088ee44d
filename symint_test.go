package symint_test

import (
	"errors"
	"testing"

	"github.com/gocas/symint"
	"github.com/gocas/symint/internal/domain/engine"
	"github.com/gocas/symint/internal/domain/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_PowerRule(t *testing.T) {
	x := symint.Sym("x")
	e := symint.PowOf(x, symint.Int(2))

	result, err := symint.Integrate(e, "x")

	require.NoError(t, err)
	assert.Equal(t, "((1/3)*(x^3))", result.String())
}

func TestIntegrateBounds_DefiniteIntegral(t *testing.T) {
	x := symint.Sym("x")
	e := symint.PowOf(x, symint.Int(2))

	result, err := symint.IntegrateBounds(e, "x", symint.Int(0), symint.Int(2))

	require.NoError(t, err)
	assert.Equal(t, "(8/3)", result.String())
}

func TestIntegrate_NoAntiderivativeFound(t *testing.T) {
	x := symint.Sym("x")
	e := symint.Sin(symint.PowOf(x, symint.Int(2)))

	_, err := symint.Integrate(e, "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, symint.ErrIntegrationFailed)
}

func TestDiff_ProductRule(t *testing.T) {
	x := symint.Sym("x")
	e := symint.ProductOf(x, symint.Sin(x))

	result, err := symint.Diff(e, "x")

	require.NoError(t, err)
	assert.Equal(t, "(sin(x) + (x*cos(x)))", result.String())
}

func TestIntegrate_ByPartsSelfReferentialLoop(t *testing.T) {
	x := symint.Sym("x")
	e := symint.ProductOf(symint.PowOf(symint.E(), x), symint.Sin(x))

	result, err := symint.Integrate(e, "x")
	require.NoError(t, err)

	d, err := symint.Diff(result, "x")
	require.NoError(t, err)
	assert.Equal(t, symint.Simplify(e).String(), symint.Simplify(d).String())
}

func TestSimplify_CollectsLikeTerms(t *testing.T) {
	x := symint.Sym("x")
	e := symint.SumOf(x, x)

	result := symint.Simplify(e)

	assert.Equal(t, "(2*x)", result.String())
}

func TestExpand_Binomial(t *testing.T) {
	x := symint.Sym("x")
	e := symint.PowOf(symint.SumOf(x, symint.Int(1)), symint.Int(2))

	result, err := symint.Expand(e)

	require.NoError(t, err)
	assert.Equal(t, "(1 + (2*x) + (x^2))", result.String())
}

func TestEvalf_SubstitutesKnownSymbols(t *testing.T) {
	x := symint.Sym("x")
	y := symint.Sym("y")
	e := symint.SumOf(x, y)

	result := symint.Evalf(e, map[string]symint.Rational{"x": symint.NewRational(3, 1)})

	assert.Equal(t, "(3 + y)", result.String())
}

func TestSymbols_SplitsOnCommaAndWhitespace(t *testing.T) {
	syms := symint.Symbols("x, y z")

	assert.Equal(t, []symint.Symbol{"x", "y", "z"}, syms)
}

func TestParse_RoundTripsCanonicalText(t *testing.T) {
	e, err := symint.Parse("(x^2 + 1)")

	require.NoError(t, err)
	assert.Equal(t, "(1 + (x^2))", e.String())
}

func TestErrorTaxonomy_WrapsEngineErrors(t *testing.T) {
	assert.True(t, errors.Is(symint.ErrIntegrationFailed, engine.ErrIntegrationFailed))
	assert.True(t, errors.Is(symint.ErrUnsupportedDerivative, expr.ErrUnsupportedDerivative))
}
