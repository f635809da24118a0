package parser

import (
	"fmt"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// parseFnDecl parses a function declaration. On entry curTok is the fn
// keyword; on return the parser stands on the token after the body.
func (p *Parser) parseFnDecl() *ast.FnDecl {
	fnTok := p.curTok

	if !p.expectPeek(lexer.IDENT) {
		p.recoverDecl()
		return nil
	}
	name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)

	if !p.expectPeek(lexer.LPAREN) {
		p.recoverDecl()
		return nil
	}
	params := p.parseParams()

	var returnType ast.TypeExpr
	if p.peekTok.Type == lexer.ARROW {
		p.nextToken()
		returnType = p.parseType()
		if returnType == nil {
			p.recoverDecl()
			return nil
		}
	}

	if !p.expectPeek(lexer.LBRACE) {
		p.recoverDecl()
		return nil
	}
	body := p.parseBlock()

	decl := ast.NewFnDecl(name, params, returnType, body, mergeSpan(fnTok.Span, body.Span()))
	p.nextToken()
	return decl
}

// parseParams parses a parenthesized parameter list. On entry curTok is the
// opening parenthesis; on return it is the closing one.
func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return params
	}

	for {
		if !p.expectPeek(lexer.IDENT) {
			return params
		}
		name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)

		if !p.expectPeek(lexer.COLON) {
			return params
		}
		p.nextToken()
		typ := p.parseTypeAtCur()
		if typ == nil {
			return params
		}

		params = append(params, ast.NewParam(name, typ, mergeSpan(name.Span(), typ.Span())))

		if p.peekTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}

	p.expectPeek(lexer.RPAREN)
	return params
}

// parseType advances onto the next token and parses a type reference there.
func (p *Parser) parseType() ast.TypeExpr {
	p.nextToken()
	return p.parseTypeAtCur()
}

// parseTypeAtCur parses a type reference starting at curTok.
func (p *Parser) parseTypeAtCur() ast.TypeExpr {
	if p.curTok.Type != lexer.IDENT {
		p.reportError(fmt.Sprintf("expected type name, got %s", p.curTok.Type), p.curTok.Span)
		return nil
	}
	name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)
	return ast.NewNamedType(name, p.curTok.Span)
}

// parseBlock parses a braced statement list. On entry curTok is the opening
// brace; on return it is the closing one. The closing brace is recorded as
// the block's end span.
func (p *Parser) parseBlock() *ast.Block {
	lbrace := p.curTok
	var stmts []ast.Stmt

	for p.peekTok.Type != lexer.RBRACE && p.peekTok.Type != lexer.EOF {
		p.nextToken()
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expectPeek(lexer.RBRACE)

	block := ast.NewBlock(stmts, mergeSpan(lbrace.Span, p.curTok.Span))
	if p.curTok.Type == lexer.RBRACE {
		_ = block.SetEndSpan(p.curTok.Span)
	}
	return block
}

// parseStatement parses one statement. On entry curTok is its first token;
// on return, its last.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.curTok.Type {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLetStmt() ast.Stmt {
	letTok := p.curTok

	mutable := false
	if p.peekTok.Type == lexer.MUT {
		p.nextToken()
		mutable = true
	}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)

	var typ ast.TypeExpr
	if p.peekTok.Type == lexer.COLON {
		p.nextToken()
		typ = p.parseType()
		if typ == nil {
			return nil
		}
	}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(precedenceLowest)
	if value == nil {
		return nil
	}

	span := mergeSpan(letTok.Span, value.Span())
	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()
		span = mergeSpan(span, p.curTok.Span)
	}
	return ast.NewLetStmt(mutable, name, typ, value, span)
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	retTok := p.curTok

	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()
		return ast.NewReturnStmt(nil, mergeSpan(retTok.Span, p.curTok.Span))
	}

	p.nextToken()
	value := p.parseExpression(precedenceLowest)
	if value == nil {
		return nil
	}

	span := mergeSpan(retTok.Span, value.Span())
	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()
		span = mergeSpan(span, p.curTok.Span)
	}
	return ast.NewReturnStmt(value, span)
}

func (p *Parser) parseIfStmt() ast.Stmt {
	ifTok := p.curTok

	p.nextToken()
	cond := p.parseExpression(precedenceLowest)
	if cond == nil {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	then := p.parseBlock()

	var els *ast.Block
	if p.peekTok.Type == lexer.ELSE {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		els = p.parseBlock()
	}

	span := mergeSpan(ifTok.Span, then.Span())
	if els != nil {
		span = mergeSpan(span, els.Span())
	}
	return ast.NewIfStmt(cond, then, els, span)
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	whileTok := p.curTok

	p.nextToken()
	cond := p.parseExpression(precedenceLowest)
	if cond == nil {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlock()

	return ast.NewWhileStmt(cond, body, mergeSpan(whileTok.Span, body.Span()))
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpression(precedenceLowest)
	if expr == nil {
		return nil
	}

	span := expr.Span()
	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()
		span = mergeSpan(span, p.curTok.Span)
	}
	return ast.NewExprStmt(expr, span)
}
