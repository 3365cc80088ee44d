package expr_test

import (
	"testing"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/stretchr/testify/assert"
)

func TestLatexFraction(t *testing.T) {
	assert.Equal(t, "\\frac{1}{2}", expr.Frac(1, 2).Latex())
}

func TestLatexNegativeFraction(t *testing.T) {
	assert.Equal(t, "-\\frac{1}{2}", expr.Frac(-1, 2).Latex())
}

func TestLatexSqrt(t *testing.T) {
	assert.Equal(t, "\\sqrt{2}", expr.Sqrt(expr.Int(2)).Latex())
}

func TestLatexReciprocalPower(t *testing.T) {
	x := expr.Sym("x")
	assert.Equal(t, "\\frac{1}{x}", expr.PowOf(x, expr.Int(-1)).Latex())
}

func TestLatexProductUsesCdot(t *testing.T) {
	x := expr.Sym("x")
	got := expr.ProductOf(expr.Int(2), x).Latex()
	assert.Equal(t, "2 \\cdot x", got)
}

func TestLatexSumWithSubtraction(t *testing.T) {
	x := expr.Sym("x")
	got := expr.SumOf(x, expr.Int(-3)).Latex()
	assert.Equal(t, "-3 + x", got)
}

func TestLatexNaturalLog(t *testing.T) {
	x := expr.Sym("x")
	assert.Equal(t, "\\ln\\left(x\\right)", expr.NaturalLog(x).Latex())
}

func TestLatexLogBase(t *testing.T) {
	x := expr.Sym("x")
	assert.Equal(t, "\\log_{2}\\left(x\\right)", expr.LogBase(x, expr.Int(2)).Latex())
}

func TestLatexTrig(t *testing.T) {
	x := expr.Sym("x")
	assert.Equal(t, "\\sin\\left(x\\right)", expr.Sin(x).Latex())
}

func TestLatexArcTrig(t *testing.T) {
	x := expr.Sym("x")
	assert.Equal(t, "\\operatorname{arcsin}\\left(x\\right)", expr.Asin(x).Latex())
}

func TestLatexPiAndE(t *testing.T) {
	assert.Equal(t, "\\pi", expr.Pi().Latex())
	assert.Equal(t, "e", expr.E().Latex())
}

func TestLatexGroupsNestedSum(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	got := expr.PowOf(expr.SumOf(x, y), expr.Int(2)).Latex()
	assert.Equal(t, "{\\left(x + y\\right)}^{2}", got)
}
