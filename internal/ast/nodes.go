package ast

import "github.com/corvid-lang/corvid/internal/lexer"

// File represents a parsed compilation unit.
type File struct {
	NodeBase
	Decls []Decl
}

// NewFile constructs a file node with the provided span.
func NewFile(span lexer.Span) *File {
	return &File{NodeBase: NodeBase{span: span}}
}

// Kind returns KindFile.
func (*File) Kind() Kind { return KindFile }

// AddDecl appends decl to the file and attaches it.
func (f *File) AddDecl(decl Decl) {
	f.Decls = append(f.Decls, decl)
	adopt(f, decl)
}

// FnDecl represents a function declaration.
type FnDecl struct {
	NodeBase
	Name       *Ident
	Params     []*Param
	ReturnType TypeExpr
	Body       *Block
}

// NewFnDecl constructs a function declaration node and attaches all children.
func NewFnDecl(name *Ident, params []*Param, returnType TypeExpr, body *Block, span lexer.Span) *FnDecl {
	d := &FnDecl{
		NodeBase:   NodeBase{span: span},
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
	if name != nil {
		adopt(d, name)
	}
	for _, param := range params {
		adopt(d, param)
	}
	if returnType != nil {
		adopt(d, returnType)
	}
	if body != nil {
		adopt(d, body)
	}
	return d
}

// Kind returns KindFnDecl.
func (*FnDecl) Kind() Kind { return KindFnDecl }

func (*FnDecl) declNode() {}

// Param represents a function parameter.
type Param struct {
	NodeBase
	Name *Ident
	Type TypeExpr
}

// NewParam constructs a parameter node.
func NewParam(name *Ident, typ TypeExpr, span lexer.Span) *Param {
	p := &Param{
		NodeBase: NodeBase{span: span},
		Name:     name,
		Type:     typ,
	}
	if name != nil {
		adopt(p, name)
	}
	if typ != nil {
		adopt(p, typ)
	}
	return p
}

// Kind returns KindParam.
func (*Param) Kind() Kind { return KindParam }

// NamedType represents a named type reference.
type NamedType struct {
	NodeBase
	Name *Ident
}

// NewNamedType constructs a named type node.
func NewNamedType(name *Ident, span lexer.Span) *NamedType {
	t := &NamedType{
		NodeBase: NodeBase{span: span},
		Name:     name,
	}
	if name != nil {
		adopt(t, name)
	}
	return t
}

// Kind returns KindNamedType.
func (*NamedType) Kind() Kind { return KindNamedType }

func (*NamedType) typeNode() {}

// Block represents a braced statement sequence.
type Block struct {
	NodeBase
	Stmts []Stmt
}

// NewBlock constructs a block node and attaches its statements.
func NewBlock(stmts []Stmt, span lexer.Span) *Block {
	b := &Block{
		NodeBase: NodeBase{span: span},
		Stmts:    stmts,
	}
	for _, stmt := range stmts {
		adopt(b, stmt)
	}
	return b
}

// Kind returns KindBlock.
func (*Block) Kind() Kind { return KindBlock }

// AddStmt appends stmt to the block and attaches it.
func (b *Block) AddStmt(stmt Stmt) {
	b.Stmts = append(b.Stmts, stmt)
	adopt(b, stmt)
}

// LetStmt represents a let binding statement.
type LetStmt struct {
	NodeBase
	Mutable bool
	Name    *Ident
	Type    TypeExpr
	Value   Expr
}

// NewLetStmt constructs a let statement node.
func NewLetStmt(mutable bool, name *Ident, typ TypeExpr, value Expr, span lexer.Span) *LetStmt {
	s := &LetStmt{
		NodeBase: NodeBase{span: span},
		Mutable:  mutable,
		Name:     name,
		Type:     typ,
		Value:    value,
	}
	if name != nil {
		adopt(s, name)
	}
	if typ != nil {
		adopt(s, typ)
	}
	if value != nil {
		adopt(s, value)
	}
	return s
}

// Kind returns KindLetStmt.
func (*LetStmt) Kind() Kind { return KindLetStmt }

func (*LetStmt) stmtNode() {}

// ReturnStmt represents a return statement with an optional value.
type ReturnStmt struct {
	NodeBase
	Value Expr
}

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	s := &ReturnStmt{
		NodeBase: NodeBase{span: span},
		Value:    value,
	}
	if value != nil {
		adopt(s, value)
	}
	return s
}

// Kind returns KindReturnStmt.
func (*ReturnStmt) Kind() Kind { return KindReturnStmt }

func (*ReturnStmt) stmtNode() {}

// ExprStmt represents an expression statement.
type ExprStmt struct {
	NodeBase
	Expr Expr
}

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span lexer.Span) *ExprStmt {
	s := &ExprStmt{
		NodeBase: NodeBase{span: span},
		Expr:     expr,
	}
	if expr != nil {
		adopt(s, expr)
	}
	return s
}

// Kind returns KindExprStmt.
func (*ExprStmt) Kind() Kind { return KindExprStmt }

func (*ExprStmt) stmtNode() {}

// IfStmt represents a conditional with an optional else block.
type IfStmt struct {
	NodeBase
	Cond Expr
	Then *Block
	Else *Block
}

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, then, els *Block, span lexer.Span) *IfStmt {
	s := &IfStmt{
		NodeBase: NodeBase{span: span},
		Cond:     cond,
		Then:     then,
		Else:     els,
	}
	if cond != nil {
		adopt(s, cond)
	}
	if then != nil {
		adopt(s, then)
	}
	if els != nil {
		adopt(s, els)
	}
	return s
}

// Kind returns KindIfStmt.
func (*IfStmt) Kind() Kind { return KindIfStmt }

func (*IfStmt) stmtNode() {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	NodeBase
	Cond Expr
	Body *Block
}

// NewWhileStmt constructs a while statement node.
func NewWhileStmt(cond Expr, body *Block, span lexer.Span) *WhileStmt {
	s := &WhileStmt{
		NodeBase: NodeBase{span: span},
		Cond:     cond,
		Body:     body,
	}
	if cond != nil {
		adopt(s, cond)
	}
	if body != nil {
		adopt(s, body)
	}
	return s
}

// Kind returns KindWhileStmt.
func (*WhileStmt) Kind() Kind { return KindWhileStmt }

func (*WhileStmt) stmtNode() {}

// Ident represents an identifier.
type Ident struct {
	NodeBase
	Name string
}

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{NodeBase: NodeBase{span: span}, Name: name}
}

// Kind returns KindIdent.
func (*Ident) Kind() Kind { return KindIdent }

func (*Ident) exprNode() {}

// IntLit represents an integer literal. Text preserves the exact source
// spelling.
type IntLit struct {
	NodeBase
	Text string
}

// NewIntLit constructs an integer literal node.
func NewIntLit(text string, span lexer.Span) *IntLit {
	return &IntLit{NodeBase: NodeBase{span: span}, Text: text}
}

// Kind returns KindIntLit.
func (*IntLit) Kind() Kind { return KindIntLit }

func (*IntLit) exprNode() {}

// StringLit represents a string literal holding the decoded value.
type StringLit struct {
	NodeBase
	Value string
}

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{NodeBase: NodeBase{span: span}, Value: value}
}

// Kind returns KindStringLit.
func (*StringLit) Kind() Kind { return KindStringLit }

func (*StringLit) exprNode() {}

// BoolLit represents a boolean literal.
type BoolLit struct {
	NodeBase
	Value bool
}

// NewBoolLit constructs a boolean literal node.
func NewBoolLit(value bool, span lexer.Span) *BoolLit {
	return &BoolLit{NodeBase: NodeBase{span: span}, Value: value}
}

// Kind returns KindBoolLit.
func (*BoolLit) Kind() Kind { return KindBoolLit }

func (*BoolLit) exprNode() {}

// PrefixExpr represents a prefix expression.
type PrefixExpr struct {
	NodeBase
	Op   lexer.TokenType
	Expr Expr
}

// NewPrefixExpr constructs a prefix expression node.
func NewPrefixExpr(op lexer.TokenType, expr Expr, span lexer.Span) *PrefixExpr {
	e := &PrefixExpr{
		NodeBase: NodeBase{span: span},
		Op:       op,
		Expr:     expr,
	}
	if expr != nil {
		adopt(e, expr)
	}
	return e
}

// Kind returns KindPrefixExpr.
func (*PrefixExpr) Kind() Kind { return KindPrefixExpr }

func (*PrefixExpr) exprNode() {}

// InfixExpr represents an infix binary expression.
type InfixExpr struct {
	NodeBase
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

// NewInfixExpr constructs a binary expression node.
func NewInfixExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *InfixExpr {
	e := &InfixExpr{
		NodeBase: NodeBase{span: span},
		Op:       op,
		Left:     left,
		Right:    right,
	}
	if left != nil {
		adopt(e, left)
	}
	if right != nil {
		adopt(e, right)
	}
	return e
}

// Kind returns KindInfixExpr.
func (*InfixExpr) Kind() Kind { return KindInfixExpr }

func (*InfixExpr) exprNode() {}

// CallExpr represents a function call.
type CallExpr struct {
	NodeBase
	Callee Expr
	Args   []Expr
}

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee Expr, args []Expr, span lexer.Span) *CallExpr {
	e := &CallExpr{
		NodeBase: NodeBase{span: span},
		Callee:   callee,
		Args:     args,
	}
	if callee != nil {
		adopt(e, callee)
	}
	for _, arg := range args {
		adopt(e, arg)
	}
	return e
}

// Kind returns KindCallExpr.
func (*CallExpr) Kind() Kind { return KindCallExpr }

func (*CallExpr) exprNode() {}
