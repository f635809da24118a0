package ast

// Walk traverses the tree starting from node in depth-first pre-order,
// calling fn for each node. Children are visited in their declaration order.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, decl := range n.Decls {
			Walk(decl, fn)
		}

	case *FnDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.ReturnType != nil {
			Walk(n.ReturnType, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *Param:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Type != nil {
			Walk(n.Type, fn)
		}

	case *NamedType:
		if n.Name != nil {
			Walk(n.Name, fn)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *LetStmt:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *ExprStmt:
		if n.Expr != nil {
			Walk(n.Expr, fn)
		}

	case *IfStmt:
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Then != nil {
			Walk(n.Then, fn)
		}
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *WhileStmt:
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *PrefixExpr:
		if n.Expr != nil {
			Walk(n.Expr, fn)
		}

	case *InfixExpr:
		if n.Left != nil {
			Walk(n.Left, fn)
		}
		if n.Right != nil {
			Walk(n.Right, fn)
		}

	case *CallExpr:
		if n.Callee != nil {
			Walk(n.Callee, fn)
		}
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	// Leaf nodes don't need traversal
	case *Ident, *IntLit, *StringLit, *BoolLit:
	}
}
