package expr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rationalComparer lets cmp.Diff walk into expression trees that carry
// number.Rational leaves, whose big.Rat field is unexported.
var rationalComparer = cmp.Comparer(func(a, b number.Rational) bool { return a.Cmp(b) == 0 })

func TestBuildersAndString(t *testing.T) {
	x := expr.Sym("x")
	sum := expr.SumOf(x, expr.Int(3))
	assert.Equal(t, "(3 + x)", sum.String())
}

func TestEqualUsesNormalForm(t *testing.T) {
	x := expr.Sym("x")
	a := expr.SumOf(x, x)
	b := expr.ProductOf(expr.Int(2), x)
	require.True(t, expr.Equal(a, b))
}

func TestContainsSymbolsChildren(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	e := expr.SumOf(x, expr.ProductOf(y, expr.Int(2)))
	assert.True(t, e.Contains("x"))
	assert.True(t, e.Contains("y"))
	assert.False(t, e.Contains("z"))
	assert.ElementsMatch(t, []string{"x", "y"}, e.Symbols())
	assert.Len(t, e.Children(), 2)
}

func TestZeroProductLaw(t *testing.T) {
	x := expr.Sym("x")
	got := expr.ProductOf(x, expr.Int(0), expr.Int(5))
	assert.True(t, expr.Equal(got, expr.Int(0)))
}

func TestEmptySumAndSingleTermUnwrap(t *testing.T) {
	assert.True(t, expr.Equal(expr.SumOf(), expr.Int(0)))
	assert.True(t, expr.Equal(expr.SumOf(expr.Sym("x")), expr.Sym("x")))
}

func TestDivisionBySelfIsOne(t *testing.T) {
	x := expr.Sym("x")
	got := expr.DivOf(x, x)
	assert.True(t, expr.Equal(got, expr.Int(1)))
}

func TestPowerZeroAndOne(t *testing.T) {
	x := expr.Sym("x")
	assert.True(t, expr.Equal(expr.PowOf(x, expr.Int(0)), expr.Int(1)))
	assert.True(t, expr.Equal(expr.PowOf(x, expr.Int(1)), x))
	assert.True(t, expr.Equal(expr.PowOf(expr.Int(0), expr.Int(0)), expr.Int(1)))
}

func TestLogIdentities(t *testing.T) {
	assert.True(t, expr.Equal(expr.NaturalLog(expr.Int(1)), expr.Int(0)))
	assert.True(t, expr.Equal(expr.NaturalLog(expr.E()), expr.Int(1)))
}

// TestSimplifyProducesIdenticalTrees checks that two differently-built but
// equivalent sums simplify to structurally identical trees, not merely
// equal strings, by diffing the full tree shape with go-cmp.
func TestSimplifyProducesIdenticalTrees(t *testing.T) {
	x := expr.Sym("x")
	a := expr.SumOf(x, x, x).Simplify()
	b := expr.ProductOf(expr.Int(3), x).Simplify()
	if diff := cmp.Diff(a, b, rationalComparer); diff != "" {
		t.Errorf("simplified trees differ (-a +b):\n%s", diff)
	}
}

func TestSimplifyTreeDiffDetectsMismatch(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	a := expr.SumOf(x, expr.Int(1)).Simplify()
	b := expr.SumOf(y, expr.Int(1)).Simplify()
	diff := cmp.Diff(a, b, rationalComparer)
	assert.NotEmpty(t, diff, "expected a tree diff between sums over different symbols")
}
