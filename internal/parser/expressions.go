package parser

import (
	"fmt"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parseExpression is the Pratt core. On entry curTok holds the first token
// of the expression; on return it holds the last.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportErrorCode(fmt.Sprintf("expected expression, got %s", p.curTok.Type), p.curTok.Span, diag.CodeParserExpectedExpr)
		return nil
	}
	left := prefix()

	for left != nil && p.peekTok.Type != lexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok.Raw, p.curTok.Span)
}

func (p *Parser) parseIntegerLiteral() ast.Expr {
	return ast.NewIntLit(p.curTok.Raw, p.curTok.Span)
}

func (p *Parser) parseStringLiteral() ast.Expr {
	return ast.NewStringLit(p.curTok.Raw, p.curTok.Span)
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	return ast.NewBoolLit(p.curTok.Type == lexer.TRUE, p.curTok.Span)
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	opTok := p.curTok
	p.nextToken()
	operand := p.parseExpression(precedencePrefix)
	if operand == nil {
		return nil
	}
	return ast.NewPrefixExpr(opTok.Type, operand, mergeSpan(opTok.Span, operand.Span()))
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	opTok := p.curTok
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return ast.NewInfixExpr(opTok.Type, left, right, mergeSpan(left.Span(), right.Span()))
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()
	expr := p.parseExpression(precedenceLowest)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	lparen := p.curTok
	var args []ast.Expr

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
	} else {
		p.nextToken()
		if arg := p.parseExpression(precedenceLowest); arg != nil {
			args = append(args, arg)
		}
		for p.peekTok.Type == lexer.COMMA {
			p.nextToken()
			p.nextToken()
			if arg := p.parseExpression(precedenceLowest); arg != nil {
				args = append(args, arg)
			}
		}
		if !p.expectPeek(lexer.RPAREN) {
			return nil
		}
	}

	span := mergeSpan(callee.Span(), p.curTok.Span)
	span = mergeSpan(span, lparen.Span)
	return ast.NewCallExpr(callee, args, span)
}
