package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalArithmetic(t *testing.T) {
	a := NewFrac(1, 2)
	b := NewFrac(1, 3)

	assert.Equal(t, "5/6", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/6", a.Mul(b).String())
	assert.Equal(t, "3/2", a.Quo(b).String())
	assert.Equal(t, "-1/2", a.Neg().String())
}

func TestRationalModReducesToPositiveRange(t *testing.T) {
	two := NewInt(2)
	got := NewFrac(9, 2).Mod(two) // 4.5 mod 2 = 0.5
	assert.Equal(t, "1/2", got.String())

	negGot := NewFrac(-1, 2).Mod(two) // -0.5 mod 2 = 1.5
	assert.Equal(t, "3/2", negGot.String())
}

func TestRationalPow(t *testing.T) {
	assert.Equal(t, "8", NewInt(2).Pow(3).String())
	assert.Equal(t, "1/8", NewInt(2).Pow(-3).String())
}

func TestRationalSqrtExact(t *testing.T) {
	s, ok := NewFrac(4, 9).SqrtExact()
	require.True(t, ok)
	assert.Equal(t, "2/3", s.String())

	_, ok = NewInt(2).SqrtExact()
	assert.False(t, ok)
}

func TestRationalZeroValueIsZero(t *testing.T) {
	var z Rational
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
}

func TestParseDecimalAcceptsFractionAndDecimalSyntax(t *testing.T) {
	r, ok := ParseDecimal("3/4")
	require.True(t, ok)
	assert.Equal(t, "3/4", r.String())

	r, ok = ParseDecimal("3.14")
	require.True(t, ok)
	assert.Equal(t, "157/50", r.String())

	r, ok = ParseDecimal("42")
	require.True(t, ok)
	assert.Equal(t, "42", r.String())
}

func TestParseDecimalRejectsMalformedInput(t *testing.T) {
	_, ok := ParseDecimal("not-a-number")
	assert.False(t, ok)
}
