// Package parser reads the canonical infix text format described by
// internal/domain/expr's printers (fully parenthesized sums/products,
// functions as name(arg), rationals as n or n/d) back into an
// internal/domain/expr.Expr tree, the way the teacher's LaTeX parser read
// LaTeX back into its own AST.
package parser

import (
	"fmt"
	"strings"

	"github.com/gocas/symint/internal/domain/expr"
	"github.com/gocas/symint/internal/domain/number"
)

// --- Operator precedence ---
const (
	_ int = iota
	LOWEST
	SUM      // +, -
	PRODUCT  // *, /
	EXPONENT // ^
	PREFIX   // -x (unary minus)
	CALL     // f(x)
)

var precedences = map[TokenType]int{
	PLUS:     SUM,
	MINUS:    SUM,
	ASTERISK: PRODUCT,
	SLASH:    PRODUCT,
	CARET:    EXPONENT,
	LPAREN:   CALL,
}

// oneArgFuncs lists the one-argument function names the algebra knows,
// grounded on the builders in internal/domain/expr/build.go; log, which
// takes one or two arguments, is handled separately by the call parser.
var oneArgFuncs = map[string]func(expr.Expr) expr.Expr{
	"sin":  expr.Sin,
	"cos":  expr.Cos,
	"tan":  expr.Tan,
	"sec":  expr.Sec,
	"csc":  expr.Csc,
	"cot":  expr.Cot,
	"asin": expr.Asin,
	"acos": expr.Acos,
	"atan": expr.Atan,
	"sqrt": expr.Sqrt,
}

type (
	prefixParseFn func() (expr.Expr, error)
	infixParseFn  func(expr.Expr) (expr.Expr, error)
)

// Parser turns canonical infix text into an expr.Expr tree.
type Parser struct {
	l      *Lexer
	errors []string

	curToken  Token
	peekToken Token

	prefixParseFns map[TokenType]prefixParseFn
	infixParseFns  map[TokenType]infixParseFn
}

// NewParser returns a Parser with no lexer attached yet; Parse supplies
// one per call, keeping the exported type stateless between calls the way
// the teacher's NewParser does.
func NewParser() *Parser {
	return &Parser{}
}

func newStatefulParser(l *Lexer) *Parser {
	p := &Parser{
		l:              l,
		errors:         []string{},
		prefixParseFns: make(map[TokenType]prefixParseFn),
		infixParseFns:  make(map[TokenType]infixParseFn),
	}

	p.registerPrefix(IDENT, p.parseIdentifier)
	p.registerPrefix(NUMBER, p.parseNumberLiteral)
	p.registerPrefix(LPAREN, p.parseGroupedExpression)
	p.registerPrefix(MINUS, p.parsePrefixExpression)

	p.registerInfix(PLUS, p.parseInfixExpression)
	p.registerInfix(MINUS, p.parseInfixExpression)
	p.registerInfix(ASTERISK, p.parseInfixExpression)
	p.registerInfix(SLASH, p.parseInfixExpression)
	p.registerInfix(CARET, p.parseInfixExpression)

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("parse error at pos %d: %s", p.curToken.Pos, msg))
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) ParseExpression() (expr.Expr, error) {
	e, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("%w: %s", expr.ErrInvalidInput, strings.Join(p.errors, "\n\t"))
	}
	if p.peekToken.Type != EOF {
		p.peekError(EOF)
		return nil, fmt.Errorf("%w: %s", expr.ErrInvalidInput, strings.Join(p.errors, "\n\t"))
	}
	return e, nil
}

func (p *Parser) parseExpression(precedence int) (expr.Expr, error) {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		err := fmt.Errorf("no prefix parse function found for token %s ('%s')", p.curToken.Type, p.curToken.Literal)
		p.addError("%s", err.Error())
		return nil, err
	}
	leftExp, err := prefix()
	if err != nil {
		return nil, err
	}
	for p.peekToken.Type != EOF && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp, nil
		}
		p.nextToken()
		leftExp, err = infix(leftExp)
		if err != nil {
			return nil, err
		}
	}
	return leftExp, nil
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) registerPrefix(tokenType TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// --- Parsing functions ---

func (p *Parser) parseIdentifier() (expr.Expr, error) {
	name := p.curToken.Literal

	if p.peekToken.Type == LPAREN {
		return p.parseFuncCall(name)
	}

	switch strings.ToLower(name) {
	case "pi":
		return expr.Pi(), nil
	case "e":
		return expr.E(), nil
	default:
		return expr.Sym(name), nil
	}
}

func (p *Parser) parseFuncCall(name string) (expr.Expr, error) {
	p.nextToken() // consume IDENT, curToken is now LPAREN
	p.nextToken() // move past '(' to the first argument

	args := []expr.Expr{}
	if p.curToken.Type != RPAREN {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.peekToken.Type == COMMA {
			p.nextToken() // consume current arg end, move to comma
			p.nextToken() // consume comma, move to next arg
			arg, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if !p.expectPeek(RPAREN) {
		return nil, fmt.Errorf("missing closing parenthesis for call to '%s'", name)
	}

	lower := strings.ToLower(name)
	if builder, ok := oneArgFuncs[lower]; ok {
		if len(args) != 1 {
			err := fmt.Errorf("'%s' requires exactly 1 argument, got %d", name, len(args))
			p.addError("%s", err.Error())
			return nil, err
		}
		return builder(args[0]), nil
	}
	if lower == "log" {
		switch len(args) {
		case 1:
			return expr.NaturalLog(args[0]), nil
		case 2:
			return expr.LogBase(args[0], args[1]), nil
		default:
			err := fmt.Errorf("'log' requires 1 or 2 arguments, got %d", len(args))
			p.addError("%s", err.Error())
			return nil, err
		}
	}

	err := fmt.Errorf("unknown function '%s'", name)
	p.addError("%s", err.Error())
	return nil, err
}

func (p *Parser) parseNumberLiteral() (expr.Expr, error) {
	r, ok := number.ParseDecimal(p.curToken.Literal)
	if !ok {
		err := fmt.Errorf("could not parse '%s' as a number", p.curToken.Literal)
		p.addError("%s", err.Error())
		return nil, err
	}
	return expr.Num(r), nil
}

func (p *Parser) parsePrefixExpression() (expr.Expr, error) {
	p.nextToken()
	rightExpr, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return expr.Neg(rightExpr), nil
}

func (p *Parser) parseInfixExpression(left expr.Expr) (expr.Expr, error) {
	op := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()

	var right expr.Expr
	var err error
	if op == "^" {
		// right-associative: x^y^z == x^(y^z)
		right, err = p.parseExpression(precedence - 1)
	} else {
		right, err = p.parseExpression(precedence)
	}
	if err != nil {
		return nil, err
	}

	switch op {
	case "+":
		return expr.SumOf(left, right), nil
	case "-":
		return expr.SubOf(left, right), nil
	case "*":
		return expr.ProductOf(left, right), nil
	case "/":
		return expr.DivOf(left, right), nil
	case "^":
		return expr.PowOf(left, right), nil
	default:
		return nil, fmt.Errorf("unknown infix operator '%s'", op)
	}
}

func (p *Parser) parseGroupedExpression() (expr.Expr, error) {
	p.nextToken()
	e, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if !p.expectPeek(RPAREN) {
		return nil, fmt.Errorf("missing closing parenthesis")
	}
	return e, nil
}

func (p *Parser) expectPeek(t TokenType) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t TokenType) {
	p.addError("expected next token to be %s, got %s ('%s') instead", t, p.peekToken.Type, p.peekToken.Literal)
}

// Parse lexes and parses text (the canonical infix format) into an
// expr.Expr tree.
func (p *Parser) Parse(text string) (expr.Expr, error) {
	l := NewLexer(text)
	statefulParser := newStatefulParser(l)
	e, err := statefulParser.ParseExpression()
	if err != nil {
		if len(statefulParser.errors) > 0 {
			return nil, fmt.Errorf("%w: %s", expr.ErrInvalidInput, strings.Join(statefulParser.errors, "\n\t"))
		}
		return nil, err
	}
	return e, nil
}
