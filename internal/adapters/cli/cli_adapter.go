package cli

import (
	"fmt"

	"github.com/gocas/symint/internal/app" // For app.Config and app.ExpressionProvider
	"github.com/spf13/cobra"
)

// Adapter implements the app.ExpressionProvider interface using Cobra flags.
type Adapter struct {
	cmd *cobra.Command
}

// NewAdapter creates a new CLI adapter instance.
func NewAdapter(cmd *cobra.Command) *Adapter {
	// Ensure the necessary flags are defined on the command passed in.
	// This relies on main.go's setup.
	for _, name := range []string{"expr", "var", "mode", "lower", "upper", "format", "output"} {
		if cmd.Flag(name) == nil {
			panic("CLI Adapter requires command with 'expr', 'var', 'mode', 'lower', 'upper', 'format', and 'output' flags defined")
		}
	}
	return &Adapter{cmd: cmd}
}

// GetExpressionInput retrieves the expression string and configuration
// from Cobra flags.
func (a *Adapter) GetExpressionInput() (text string, config app.Config, err error) {
	text, err = a.cmd.Flags().GetString("expr")
	if err != nil {
		// This error is unlikely if the flag is correctly defined
		return "", app.Config{}, fmt.Errorf("failed to get 'expr' flag: %w", err)
	}
	if text == "" {
		return "", app.Config{}, fmt.Errorf("input expression cannot be empty")
	}

	variable, _ := a.cmd.Flags().GetString("var")
	mode, _ := a.cmd.Flags().GetString("mode")
	lower, _ := a.cmd.Flags().GetString("lower")
	upper, _ := a.cmd.Flags().GetString("upper")
	format, _ := a.cmd.Flags().GetString("format")
	outputFile, _ := a.cmd.Flags().GetString("output")

	config = app.Config{
		OutputFile: outputFile,
		Format:     format,
		Variable:   variable,
		Mode:       mode,
		Lower:      lower,
		Upper:      upper,
	}

	return text, config, nil
}
