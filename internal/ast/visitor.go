package ast

// Visitor is the double-dispatch protocol over the closed node catalogue:
// one callback per concrete variant. It is the primary extension point for
// compiler passes; pair it with Walker for the default traversal order.
type Visitor interface {
	VisitFile(n *File)
	VisitFnDecl(n *FnDecl)
	VisitParam(n *Param)
	VisitNamedType(n *NamedType)
	VisitBlock(n *Block)
	VisitLetStmt(n *LetStmt)
	VisitReturnStmt(n *ReturnStmt)
	VisitExprStmt(n *ExprStmt)
	VisitIfStmt(n *IfStmt)
	VisitWhileStmt(n *WhileStmt)
	VisitIdent(n *Ident)
	VisitIntLit(n *IntLit)
	VisitStringLit(n *StringLit)
	VisitBoolLit(n *BoolLit)
	VisitPrefixExpr(n *PrefixExpr)
	VisitInfixExpr(n *InfixExpr)
	VisitCallExpr(n *CallExpr)
}

// BaseVisitor is a no-op implementation of Visitor. Concrete visitors embed
// it and override only the callbacks they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitFile(*File)             {}
func (BaseVisitor) VisitFnDecl(*FnDecl)         {}
func (BaseVisitor) VisitParam(*Param)           {}
func (BaseVisitor) VisitNamedType(*NamedType)   {}
func (BaseVisitor) VisitBlock(*Block)           {}
func (BaseVisitor) VisitLetStmt(*LetStmt)       {}
func (BaseVisitor) VisitReturnStmt(*ReturnStmt) {}
func (BaseVisitor) VisitExprStmt(*ExprStmt)     {}
func (BaseVisitor) VisitIfStmt(*IfStmt)         {}
func (BaseVisitor) VisitWhileStmt(*WhileStmt)   {}
func (BaseVisitor) VisitIdent(*Ident)           {}
func (BaseVisitor) VisitIntLit(*IntLit)         {}
func (BaseVisitor) VisitStringLit(*StringLit)   {}
func (BaseVisitor) VisitBoolLit(*BoolLit)       {}
func (BaseVisitor) VisitPrefixExpr(*PrefixExpr) {}
func (BaseVisitor) VisitInfixExpr(*InfixExpr)   {}
func (BaseVisitor) VisitCallExpr(*CallExpr)     {}

// Walker drives a Visitor over a subtree in the default traversal order:
// depth-first pre-order, children in declaration order. Every generic pass
// reuses this instead of reimplementing traversal.
type Walker struct {
	v Visitor
}

// NewWalker returns a walker delegating each visited node to v.
func NewWalker(v Visitor) *Walker {
	return &Walker{v: v}
}

// Walk traverses the subtree rooted at node, dispatching each node to the
// wrapped visitor via Accept.
func (w *Walker) Walk(node Node) {
	Walk(node, func(n Node) bool {
		n.Accept(w.v)
		return true
	})
}

// Accept dispatches to VisitFile.
func (n *File) Accept(v Visitor) { v.VisitFile(n) }

// Accept dispatches to VisitFnDecl.
func (n *FnDecl) Accept(v Visitor) { v.VisitFnDecl(n) }

// Accept dispatches to VisitParam.
func (n *Param) Accept(v Visitor) { v.VisitParam(n) }

// Accept dispatches to VisitNamedType.
func (n *NamedType) Accept(v Visitor) { v.VisitNamedType(n) }

// Accept dispatches to VisitBlock.
func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }

// Accept dispatches to VisitLetStmt.
func (n *LetStmt) Accept(v Visitor) { v.VisitLetStmt(n) }

// Accept dispatches to VisitReturnStmt.
func (n *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(n) }

// Accept dispatches to VisitExprStmt.
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }

// Accept dispatches to VisitIfStmt.
func (n *IfStmt) Accept(v Visitor) { v.VisitIfStmt(n) }

// Accept dispatches to VisitWhileStmt.
func (n *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(n) }

// Accept dispatches to VisitIdent.
func (n *Ident) Accept(v Visitor) { v.VisitIdent(n) }

// Accept dispatches to VisitIntLit.
func (n *IntLit) Accept(v Visitor) { v.VisitIntLit(n) }

// Accept dispatches to VisitStringLit.
func (n *StringLit) Accept(v Visitor) { v.VisitStringLit(n) }

// Accept dispatches to VisitBoolLit.
func (n *BoolLit) Accept(v Visitor) { v.VisitBoolLit(n) }

// Accept dispatches to VisitPrefixExpr.
func (n *PrefixExpr) Accept(v Visitor) { v.VisitPrefixExpr(n) }

// Accept dispatches to VisitInfixExpr.
func (n *InfixExpr) Accept(v Visitor) { v.VisitInfixExpr(n) }

// Accept dispatches to VisitCallExpr.
func (n *CallExpr) Accept(v Visitor) { v.VisitCallExpr(n) }
