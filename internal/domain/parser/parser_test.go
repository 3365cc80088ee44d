package parser_test

import (
	"testing"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOk(t *testing.T, text string) expr.Expr {
	t.Helper()
	p := parser.NewParser()
	got, err := p.Parse(text)
	require.NoError(t, err, "parsing %q", text)
	return got
}

func TestParseSimpleSum(t *testing.T) {
	got := parseOk(t, "a + b")
	want := expr.SumOf(expr.Sym("a"), expr.Sym("b"))
	assert.True(t, expr.Equal(got, want))
}

func TestParseOperatorPrecedence(t *testing.T) {
	got := parseOk(t, "2 + 3 * x")
	want := expr.SumOf(expr.Int(2), expr.ProductOf(expr.Int(3), expr.Sym("x")))
	assert.True(t, expr.Equal(got, want))
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	got := parseOk(t, "2^3^2")
	want := expr.PowOf(expr.Int(2), expr.PowOf(expr.Int(3), expr.Int(2)))
	assert.True(t, expr.Equal(got, want), "got %s", got.String())
}

func TestParseUnaryMinus(t *testing.T) {
	got := parseOk(t, "(a * -5.5)")
	want := expr.ProductOf(expr.Sym("a"), expr.Frac(-11, 2))
	assert.True(t, expr.Equal(got, want), "got %s", got.String())
}

func TestParseGroupedExpression(t *testing.T) {
	got := parseOk(t, "(x + 1)^2")
	want := expr.PowOf(expr.SumOf(expr.Sym("x"), expr.Int(1)), expr.Int(2))
	assert.True(t, expr.Equal(got, want))
}

func TestParseConstants(t *testing.T) {
	got := parseOk(t, "pi + e")
	want := expr.SumOf(expr.Pi(), expr.E())
	assert.True(t, expr.Equal(got, want))
}

func TestParseTrigAndInverseTrigCalls(t *testing.T) {
	got := parseOk(t, "sin(x) + acos(y)")
	want := expr.SumOf(expr.Sin(expr.Sym("x")), expr.Acos(expr.Sym("y")))
	assert.True(t, expr.Equal(got, want))
}

func TestParseSqrt(t *testing.T) {
	got := parseOk(t, "sqrt(x)")
	want := expr.Sqrt(expr.Sym("x"))
	assert.True(t, expr.Equal(got, want))
}

func TestParseNaturalAndBaseLog(t *testing.T) {
	got := parseOk(t, "log(x)")
	assert.True(t, expr.Equal(got, expr.NaturalLog(expr.Sym("x"))))

	got2 := parseOk(t, "log(x, 2)")
	assert.True(t, expr.Equal(got2, expr.LogBase(expr.Sym("x"), expr.Int(2))))
}

func TestParseDivision(t *testing.T) {
	got := parseOk(t, "1/x")
	want := expr.DivOf(expr.One(), expr.Sym("x"))
	assert.True(t, expr.Equal(got, want))
}

func TestParseRejectsUnknownFunction(t *testing.T) {
	p := parser.NewParser()
	_, err := p.Parse("foo(x)")
	require.Error(t, err)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	p := parser.NewParser()
	_, err := p.Parse("x +")
	require.Error(t, err)
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	p := parser.NewParser()
	_, err := p.Parse("(x + 1")
	require.Error(t, err)
}

func TestParseRoundTripsThroughString(t *testing.T) {
	x := expr.Sym("x")
	original := expr.SumOf(expr.PowOf(x, expr.Int(2)), expr.ProductOf(expr.Int(3), x))
	reparsed := parseOk(t, original.String())
	assert.True(t, expr.Equal(original, reparsed))
}
