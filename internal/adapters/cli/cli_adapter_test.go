package cli_test

import (
	"testing"

	"github.com/gocas/symint/internal/adapters/cli"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandWithFlags() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("expr", "", "expression to evaluate")
	cmd.Flags().String("var", "x", "variable")
	cmd.Flags().String("mode", "integrate", "mode")
	cmd.Flags().String("lower", "", "lower bound")
	cmd.Flags().String("upper", "", "upper bound")
	cmd.Flags().String("format", "text", "output format")
	cmd.Flags().StringP("output", "o", "", "output file path")
	return cmd
}

func TestCliAdapter_GetExpressionInput_Success(t *testing.T) {
	cmd := commandWithFlags()

	expectedExpr := "x^2 + y^2"
	expectedVar := "x"
	expectedMode := "diff"
	expectedFormat := "latex"
	expectedOutput := "calc.txt"

	cmd.Flags().Set("expr", expectedExpr)
	cmd.Flags().Set("var", expectedVar)
	cmd.Flags().Set("mode", expectedMode)
	cmd.Flags().Set("format", expectedFormat)
	cmd.Flags().Set("output", expectedOutput)

	adapter := cli.NewAdapter(cmd)

	text, config, err := adapter.GetExpressionInput()

	require.NoError(t, err)
	assert.Equal(t, expectedExpr, text)
	assert.Equal(t, expectedVar, config.Variable)
	assert.Equal(t, expectedMode, config.Mode)
	assert.Equal(t, expectedFormat, config.Format)
	assert.Equal(t, expectedOutput, config.OutputFile)
}

func TestCliAdapter_GetExpressionInput_MissingExpr(t *testing.T) {
	cmd := commandWithFlags()
	// expr flag deliberately not set

	adapter := cli.NewAdapter(cmd)

	_, _, err := adapter.GetExpressionInput()

	require.Error(t, err)
	assert.ErrorContains(t, err, "input expression cannot be empty")
}

func TestCliAdapter_NewAdapter_PanicMissingFlags(t *testing.T) {
	cmd := &cobra.Command{}
	// Deliberately omit defining flags

	assert.Panics(t, func() { cli.NewAdapter(cmd) })
}
