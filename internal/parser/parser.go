package parser

import (
	"fmt"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

const (
	precedenceLowest = iota
	precedenceOr
	precedenceAnd
	precedenceEquality
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedencePrefix
	precedencePostfix
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       precedenceOr,
	lexer.AND:      precedenceAnd,
	lexer.EQ:       precedenceEquality,
	lexer.NOT_EQ:   precedenceEquality,
	lexer.LT:       precedenceComparison,
	lexer.LE:       precedenceComparison,
	lexer.GT:       precedenceComparison,
	lexer.GE:       precedenceComparison,
	lexer.PLUS:     precedenceSum,
	lexer.MINUS:    precedenceSum,
	lexer.ASTERISK: precedenceProduct,
	lexer.SLASH:    precedenceProduct,
	lexer.LPAREN:   precedencePostfix,
}

// ParseError captures a recoverable parsing error with location context.
type ParseError struct {
	Message  string
	Span     lexer.Span
	Severity diag.Severity
	Code     diag.Code
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

// ToDiagnostic converts the parse error into a shared diagnostic structure.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	code := e.Code
	if code == "" {
		code = diag.CodeParserUnexpectedToken
	}
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: e.Severity,
		Code:     code,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Parser implements a Pratt-style recursive descent parser for Corvid.
// curTok always reflects the token under examination; peekTok mirrors the
// next token pulled from the lexer. The pair forms the parser's sole
// lookahead window and is only mutated via nextToken. It is also the
// component that wires parent back-references: every node constructor it
// calls attaches the children it is handed.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError

	filename string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:        lexer.New(input),
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
		filename:  cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpr)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpr)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpr)

	p.registerInfix(lexer.PLUS, p.parseInfixExpr)
	p.registerInfix(lexer.MINUS, p.parseInfixExpr)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpr)
	p.registerInfix(lexer.SLASH, p.parseInfixExpr)
	p.registerInfix(lexer.AND, p.parseInfixExpr)
	p.registerInfix(lexer.OR, p.parseInfixExpr)
	p.registerInfix(lexer.EQ, p.parseInfixExpr)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(lexer.LT, p.parseInfixExpr)
	p.registerInfix(lexer.LE, p.parseInfixExpr)
	p.registerInfix(lexer.GT, p.parseInfixExpr)
	p.registerInfix(lexer.GE, p.parseInfixExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns all recoverable parse errors that were encountered.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// Diagnostics returns the accumulated errors in the shared diagnostic form.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	if len(p.errors) == 0 {
		return nil
	}
	ds := make([]diag.Diagnostic, len(p.errors))
	for i, err := range p.errors {
		ds[i] = err.ToDiagnostic()
	}
	return ds
}

// ParseFile parses a full compilation unit and returns its AST.
func (p *Parser) ParseFile() *ast.File {
	file := ast.NewFile(p.curTok.Span)

	for p.curTok.Type != lexer.EOF {
		if p.curTok.Type != lexer.FN {
			p.reportError(fmt.Sprintf("expected function declaration, got %s", p.curTok.Type), p.curTok.Span)
			p.recoverDecl()
			continue
		}
		if decl := p.parseFnDecl(); decl != nil {
			file.AddDecl(decl)
		}
	}

	return file
}

// ParseExpr parses the input as a single expression, for tooling that works
// on snippets rather than whole files.
func (p *Parser) ParseExpr() ast.Expr {
	expr := p.parseExpression(precedenceLowest)
	if p.peekTok.Type != lexer.EOF && len(p.errors) == 0 {
		p.reportError(fmt.Sprintf("unexpected trailing token %s", p.peekTok.Type), p.peekTok.Span)
	}
	return expr
}

// nextToken advances the parser's token window. After the call,
// curTok == old(peekTok); the lexer is only queried from this hop.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()
}

// expectPeek advances onto peekTok when it has the wanted type, reporting
// an error and holding position otherwise.
func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}
	p.reportError(fmt.Sprintf("expected %s, got %s", tt, p.peekTok.Type), p.peekTok.Span)
	return false
}

func (p *Parser) reportError(msg string, span lexer.Span) {
	p.reportErrorCode(msg, span, diag.CodeParserUnexpectedToken)
}

func (p *Parser) reportErrorCode(msg string, span lexer.Span, code diag.Code) {
	p.errors = append(p.errors, ParseError{
		Message:  msg,
		Span:     span,
		Severity: diag.SeverityError,
		Code:     code,
	})
}

// recoverDecl advances past the current token and then skips until the next
// plausible declaration start. Always moving at least one token keeps the
// ParseFile loop from re-examining the token it just rejected.
func (p *Parser) recoverDecl() {
	p.nextToken()
	for p.curTok.Type != lexer.EOF && p.curTok.Type != lexer.FN {
		p.nextToken()
	}
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixFns[tokenType] = fn
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

// mergeSpan composes two spans so that the result covers both, keeping the
// start coordinates of start.
func mergeSpan(start, end lexer.Span) lexer.Span {
	if !start.IsValid() {
		return end
	}
	if !end.IsValid() {
		return start
	}
	merged := start
	if end.End > merged.End {
		merged.End = end.End
	}
	return merged
}
