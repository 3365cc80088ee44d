package app

import (
	"fmt"
	"strings"

	"github.com/gocas/symint/internal/domain/engine"
	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/parser"
)

// ApplicationService orchestrates the expression-text-to-result pipeline:
// parse, act according to Mode, render, write.
type ApplicationService struct {
	provider ExpressionProvider // Input port
	writer   ResultWriter       // Output port
	parser   *parser.Parser     // Domain: expression parser
}

// NewApplicationService creates a new application service instance.
// It requires implementations of the input/output ports and the domain
// parser.
func NewApplicationService(
	provider ExpressionProvider,
	writer ResultWriter,
	p *parser.Parser,
) *ApplicationService {
	return &ApplicationService{
		provider: provider,
		writer:   writer,
		parser:   p,
	}
}

// Run executes the main application logic: parse the expression, act on
// it per Config.Mode, render per Config.Format, and write the result.
func (s *ApplicationService) Run() error {
	text, config, err := s.provider.GetExpressionInput()
	if err != nil {
		return fmt.Errorf("failed to get expression input: %w", err)
	}

	e, err := s.parser.Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse expression: %w", err)
	}

	result, err := s.evaluate(e, config)
	if err != nil {
		return fmt.Errorf("failed to evaluate expression: %w", err)
	}

	rendered, err := s.render(result, config.Format)
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	if err := s.writer.WriteResult(rendered); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	fmt.Println("Successfully computed result.")
	return nil
}

func (s *ApplicationService) evaluate(e expr.Expr, config Config) (expr.Expr, error) {
	if config.Variable == "" {
		return nil, fmt.Errorf("%w: a variable is required", engine.ErrInvalidInput)
	}

	switch config.Mode {
	case "", "integrate":
		if config.Lower != "" || config.Upper != "" {
			lower, err := s.parseBound(config.Lower)
			if err != nil {
				return nil, fmt.Errorf("invalid lower bound: %w", err)
			}
			upper, err := s.parseBound(config.Upper)
			if err != nil {
				return nil, fmt.Errorf("invalid upper bound: %w", err)
			}
			return engine.IntegrateBounds(e, config.Variable, lower, upper, engine.DefaultConfig())
		}
		return engine.Integrate(e, config.Variable, engine.DefaultConfig())
	case "diff":
		return e.Diff(config.Variable)
	case "simplify":
		return e.Simplify(), nil
	case "expand":
		return e.Expand()
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", engine.ErrInvalidInput, config.Mode)
	}
}

// parseBound turns a bound string into an engine.Bound: "inf"/"+inf" and
// "-inf" select the two infinite bounds, anything else is parsed as a
// finite expression.
func (s *ApplicationService) parseBound(text string) (engine.Bound, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "inf", "+inf", "infinity", "+infinity":
		return engine.PosInf(), nil
	case "-inf", "-infinity":
		return engine.NegInf(), nil
	}
	e, err := s.parser.Parse(text)
	if err != nil {
		return engine.Bound{}, err
	}
	return engine.At(e), nil
}

func (s *ApplicationService) render(e expr.Expr, format string) (string, error) {
	switch format {
	case "", "text":
		return e.String(), nil
	case "latex":
		return e.Latex(), nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", engine.ErrInvalidInput, format)
	}
}
