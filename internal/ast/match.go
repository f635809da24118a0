package ast

// Structural matching compares shape and meaning-relevant content only.
// Spans, end spans, documentation, the synthetic flag, annotations, and
// entity bindings never participate. The helpers below standardize absent
// child handling so passes do not special-case optional children.

// MatchNodes reports whether two optional children match: equal when both
// are absent, otherwise delegated to lhs.Matches(rhs).
func MatchNodes(lhs, rhs Node) bool {
	if lhs == nil || rhs == nil {
		return lhs == nil && rhs == nil
	}
	return lhs.Matches(rhs)
}

// MatchBlocks reports whether two optional blocks match. An absent block
// matches a present-but-empty block; otherwise block content decides.
func MatchBlocks(lhs, rhs *Block) bool {
	if lhs == nil {
		return rhs == nil || len(rhs.Stmts) == 0
	}
	if rhs == nil {
		return len(lhs.Stmts) == 0
	}
	return lhs.Matches(rhs)
}

// AllMatch reports whether two ordered sequences match in lock-step. An
// absent sequence matches only an absent or empty one, and no dangling
// elements are allowed on either side.
func AllMatch[N Node](lhs, rhs []N) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for i := range lhs {
		if !MatchNodes(Node(lhs[i]), Node(rhs[i])) {
			return false
		}
	}
	return true
}

// matchIdent compares optional identifiers by name.
func matchIdent(lhs, rhs *Ident) bool {
	if lhs == nil || rhs == nil {
		return lhs == nil && rhs == nil
	}
	return lhs.Name == rhs.Name
}

// Matches reports structural equivalence with other.
func (n *File) Matches(other Node) bool {
	o, ok := other.(*File)
	return ok && AllMatch(n.Decls, o.Decls)
}

// Matches reports structural equivalence with other.
func (n *FnDecl) Matches(other Node) bool {
	o, ok := other.(*FnDecl)
	if !ok {
		return false
	}
	return matchIdent(n.Name, o.Name) &&
		AllMatch(n.Params, o.Params) &&
		MatchNodes(n.ReturnType, o.ReturnType) &&
		MatchBlocks(n.Body, o.Body)
}

// Matches reports structural equivalence with other.
func (n *Param) Matches(other Node) bool {
	o, ok := other.(*Param)
	if !ok {
		return false
	}
	return matchIdent(n.Name, o.Name) && MatchNodes(n.Type, o.Type)
}

// Matches reports structural equivalence with other.
func (n *NamedType) Matches(other Node) bool {
	o, ok := other.(*NamedType)
	return ok && matchIdent(n.Name, o.Name)
}

// Matches reports structural equivalence with other.
func (n *Block) Matches(other Node) bool {
	o, ok := other.(*Block)
	return ok && AllMatch(n.Stmts, o.Stmts)
}

// Matches reports structural equivalence with other.
func (n *LetStmt) Matches(other Node) bool {
	o, ok := other.(*LetStmt)
	if !ok {
		return false
	}
	return n.Mutable == o.Mutable &&
		matchIdent(n.Name, o.Name) &&
		MatchNodes(n.Type, o.Type) &&
		MatchNodes(n.Value, o.Value)
}

// Matches reports structural equivalence with other.
func (n *ReturnStmt) Matches(other Node) bool {
	o, ok := other.(*ReturnStmt)
	return ok && MatchNodes(n.Value, o.Value)
}

// Matches reports structural equivalence with other.
func (n *ExprStmt) Matches(other Node) bool {
	o, ok := other.(*ExprStmt)
	return ok && MatchNodes(n.Expr, o.Expr)
}

// Matches reports structural equivalence with other.
func (n *IfStmt) Matches(other Node) bool {
	o, ok := other.(*IfStmt)
	if !ok {
		return false
	}
	return MatchNodes(n.Cond, o.Cond) &&
		MatchBlocks(n.Then, o.Then) &&
		MatchBlocks(n.Else, o.Else)
}

// Matches reports structural equivalence with other.
func (n *WhileStmt) Matches(other Node) bool {
	o, ok := other.(*WhileStmt)
	if !ok {
		return false
	}
	return MatchNodes(n.Cond, o.Cond) && MatchBlocks(n.Body, o.Body)
}

// Matches reports structural equivalence with other.
func (n *Ident) Matches(other Node) bool {
	o, ok := other.(*Ident)
	return ok && n.Name == o.Name
}

// Matches reports structural equivalence with other.
func (n *IntLit) Matches(other Node) bool {
	o, ok := other.(*IntLit)
	return ok && n.Text == o.Text
}

// Matches reports structural equivalence with other.
func (n *StringLit) Matches(other Node) bool {
	o, ok := other.(*StringLit)
	return ok && n.Value == o.Value
}

// Matches reports structural equivalence with other.
func (n *BoolLit) Matches(other Node) bool {
	o, ok := other.(*BoolLit)
	return ok && n.Value == o.Value
}

// Matches reports structural equivalence with other.
func (n *PrefixExpr) Matches(other Node) bool {
	o, ok := other.(*PrefixExpr)
	return ok && n.Op == o.Op && MatchNodes(n.Expr, o.Expr)
}

// Matches reports structural equivalence with other.
func (n *InfixExpr) Matches(other Node) bool {
	o, ok := other.(*InfixExpr)
	if !ok {
		return false
	}
	return n.Op == o.Op &&
		MatchNodes(n.Left, o.Left) &&
		MatchNodes(n.Right, o.Right)
}

// Matches reports structural equivalence with other.
func (n *CallExpr) Matches(other Node) bool {
	o, ok := other.(*CallExpr)
	if !ok {
		return false
	}
	return MatchNodes(n.Callee, o.Callee) && AllMatch(n.Args, o.Args)
}
