package main

import (
	"fmt"
	"log"
	"os"

	// Application core & domain
	"github.com/gocas/symint/internal/app"
	"github.com/gocas/symint/internal/domain/parser"

	// Adapters
	"github.com/gocas/symint/internal/adapters/cli"
	"github.com/gocas/symint/internal/adapters/output"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "symint",
	Short: "symint integrates, differentiates, and simplifies symbolic expressions",
	Long: `symint is a CLI tool that takes a single-variable symbolic expression
as input and computes its antiderivative, derivative, simplification, or
expansion.`,
	Run: func(cmd *cobra.Command, args []string) {
		outputFilePath, _ := cmd.Flags().GetString("output") // Error checked by Cobra

		// --- Dependency injection ---
		exprParser := parser.NewParser()

		inputAdapter := cli.NewAdapter(cmd)
		outputAdapter := output.NewWriterAdapter(outputFilePath)

		appService := app.NewApplicationService(inputAdapter, outputAdapter, exprParser)

		// --- Execute application logic ---
		if err := appService.Run(); err != nil {
			log.Fatalf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.Flags().StringP("expr", "e", "", "expression to evaluate, in canonical infix form (required)")
	rootCmd.Flags().String("var", "x", "variable to integrate or differentiate with respect to")
	rootCmd.Flags().String("mode", "integrate", "operation to perform: integrate, diff, simplify, or expand")
	rootCmd.Flags().String("lower", "", "lower bound for a definite integral (omit for an indefinite one)")
	rootCmd.Flags().String("upper", "", "upper bound for a definite integral (omit for an indefinite one)")
	rootCmd.Flags().String("format", "text", "output format: text or latex")
	rootCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")

	if err := rootCmd.MarkFlagRequired("expr"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking flag required: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
