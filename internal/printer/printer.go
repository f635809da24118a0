// Package printer linearizes syntax trees back to source text. It is a
// consumer of the ast visitor protocol: every node is rendered through its
// Accept hook, so the tree core needs no knowledge of the output format.
package printer

import (
	"strconv"
	"strings"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// Format renders the subtree rooted at n as source text.
func Format(n ast.Node) string {
	if n == nil {
		return ""
	}
	p := &printer{}
	n.Accept(p)
	return p.buf.String()
}

// Operator binding strengths, mirrored from the parser so that emitted text
// re-parses to a matching tree with minimal parentheses.
var opPrec = map[lexer.TokenType]int{
	lexer.OR:       1,
	lexer.AND:      2,
	lexer.EQ:       3,
	lexer.NOT_EQ:   3,
	lexer.LT:       4,
	lexer.LE:       4,
	lexer.GT:       4,
	lexer.GE:       4,
	lexer.PLUS:     5,
	lexer.MINUS:    5,
	lexer.ASTERISK: 6,
	lexer.SLASH:    6,
}

type printer struct {
	buf    strings.Builder
	indent int
}

func (p *printer) write(s string) {
	p.buf.WriteString(s)
}

func (p *printer) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

// operand renders an expression child, parenthesizing it when its own
// binding is too weak for the surrounding operator.
func (p *printer) operand(e ast.Expr, surrounding int, rightSide bool) {
	if e == nil {
		return
	}
	needParens := false
	if inner, ok := e.(*ast.InfixExpr); ok {
		innerPrec := opPrec[inner.Op]
		needParens = innerPrec < surrounding || (innerPrec == surrounding && rightSide)
	}
	if needParens {
		p.write("(")
		e.Accept(p)
		p.write(")")
		return
	}
	e.Accept(p)
}

func (p *printer) VisitFile(n *ast.File) {
	for i, decl := range n.Decls {
		if i > 0 {
			p.write("\n")
		}
		decl.Accept(p)
		p.write("\n")
	}
}

func (p *printer) VisitFnDecl(n *ast.FnDecl) {
	p.write("fn ")
	if n.Name != nil {
		n.Name.Accept(p)
	}
	p.write("(")
	for i, param := range n.Params {
		if i > 0 {
			p.write(", ")
		}
		param.Accept(p)
	}
	p.write(")")
	if n.ReturnType != nil {
		p.write(" -> ")
		n.ReturnType.Accept(p)
	}
	p.write(" ")
	if n.Body != nil {
		n.Body.Accept(p)
	} else {
		p.write("{}")
	}
}

func (p *printer) VisitParam(n *ast.Param) {
	if n.Name != nil {
		n.Name.Accept(p)
	}
	p.write(": ")
	if n.Type != nil {
		n.Type.Accept(p)
	}
}

func (p *printer) VisitNamedType(n *ast.NamedType) {
	if n.Name != nil {
		n.Name.Accept(p)
	}
}

func (p *printer) VisitBlock(n *ast.Block) {
	if len(n.Stmts) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for _, stmt := range n.Stmts {
		p.writeIndent()
		stmt.Accept(p)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *printer) VisitLetStmt(n *ast.LetStmt) {
	p.write("let ")
	if n.Mutable {
		p.write("mut ")
	}
	if n.Name != nil {
		n.Name.Accept(p)
	}
	if n.Type != nil {
		p.write(": ")
		n.Type.Accept(p)
	}
	p.write(" = ")
	if n.Value != nil {
		n.Value.Accept(p)
	}
	p.write(";")
}

func (p *printer) VisitReturnStmt(n *ast.ReturnStmt) {
	p.write("return")
	if n.Value != nil {
		p.write(" ")
		n.Value.Accept(p)
	}
	p.write(";")
}

func (p *printer) VisitExprStmt(n *ast.ExprStmt) {
	if n.Expr != nil {
		n.Expr.Accept(p)
	}
	p.write(";")
}

func (p *printer) VisitIfStmt(n *ast.IfStmt) {
	p.write("if ")
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
	p.write(" ")
	if n.Then != nil {
		n.Then.Accept(p)
	} else {
		p.write("{}")
	}
	if n.Else != nil {
		p.write(" else ")
		n.Else.Accept(p)
	}
}

func (p *printer) VisitWhileStmt(n *ast.WhileStmt) {
	p.write("while ")
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
	p.write(" ")
	if n.Body != nil {
		n.Body.Accept(p)
	} else {
		p.write("{}")
	}
}

func (p *printer) VisitIdent(n *ast.Ident) {
	p.write(n.Name)
}

func (p *printer) VisitIntLit(n *ast.IntLit) {
	p.write(n.Text)
}

func (p *printer) VisitStringLit(n *ast.StringLit) {
	p.write(strconv.Quote(n.Value))
}

func (p *printer) VisitBoolLit(n *ast.BoolLit) {
	if n.Value {
		p.write("true")
		return
	}
	p.write("false")
}

func (p *printer) VisitPrefixExpr(n *ast.PrefixExpr) {
	p.write(string(n.Op))
	if n.Expr == nil {
		return
	}
	if _, ok := n.Expr.(*ast.InfixExpr); ok {
		p.write("(")
		n.Expr.Accept(p)
		p.write(")")
		return
	}
	n.Expr.Accept(p)
}

func (p *printer) VisitInfixExpr(n *ast.InfixExpr) {
	prec := opPrec[n.Op]
	p.operand(n.Left, prec, false)
	p.write(" " + string(n.Op) + " ")
	p.operand(n.Right, prec, true)
}

func (p *printer) VisitCallExpr(n *ast.CallExpr) {
	if n.Callee != nil {
		n.Callee.Accept(p)
	}
	p.write("(")
	for i, arg := range n.Args {
		if i > 0 {
			p.write(", ")
		}
		arg.Accept(p)
	}
	p.write(")")
}
