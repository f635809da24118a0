package ast

// Cloning produces a deep copy with an independent annotation store and
// independent children. The copy keeps span, end span, synthetic flag,
// documentation, annotations, and the entity binding; it is detached from
// any parent. CleanClone in node.go strips the semantic state afterwards.

func cloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	return e.Clone().(Expr)
}

func cloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}
	return s.Clone().(Stmt)
}

func cloneType(t TypeExpr) TypeExpr {
	if t == nil {
		return nil
	}
	return t.Clone().(TypeExpr)
}

func cloneIdent(i *Ident) *Ident {
	if i == nil {
		return nil
	}
	return i.Clone().(*Ident)
}

func cloneBlock(b *Block) *Block {
	if b == nil {
		return nil
	}
	return b.Clone().(*Block)
}

// Clone returns an independent deep copy of the file.
func (n *File) Clone() Node {
	c := &File{NodeBase: n.cloneBase()}
	for _, decl := range n.Decls {
		d := decl.Clone().(Decl)
		c.Decls = append(c.Decls, d)
		adopt(c, d)
	}
	return c
}

// Clone returns an independent deep copy of the declaration.
func (n *FnDecl) Clone() Node {
	c := &FnDecl{
		NodeBase:   n.cloneBase(),
		Name:       cloneIdent(n.Name),
		ReturnType: cloneType(n.ReturnType),
		Body:       cloneBlock(n.Body),
	}
	for _, param := range n.Params {
		c.Params = append(c.Params, param.Clone().(*Param))
	}
	if c.Name != nil {
		adopt(c, c.Name)
	}
	for _, param := range c.Params {
		adopt(c, param)
	}
	if c.ReturnType != nil {
		adopt(c, c.ReturnType)
	}
	if c.Body != nil {
		adopt(c, c.Body)
	}
	return c
}

// Clone returns an independent deep copy of the parameter.
func (n *Param) Clone() Node {
	c := &Param{
		NodeBase: n.cloneBase(),
		Name:     cloneIdent(n.Name),
		Type:     cloneType(n.Type),
	}
	if c.Name != nil {
		adopt(c, c.Name)
	}
	if c.Type != nil {
		adopt(c, c.Type)
	}
	return c
}

// Clone returns an independent deep copy of the type reference.
func (n *NamedType) Clone() Node {
	c := &NamedType{NodeBase: n.cloneBase(), Name: cloneIdent(n.Name)}
	if c.Name != nil {
		adopt(c, c.Name)
	}
	return c
}

// Clone returns an independent deep copy of the block.
func (n *Block) Clone() Node {
	c := &Block{NodeBase: n.cloneBase()}
	for _, stmt := range n.Stmts {
		s := cloneStmt(stmt)
		c.Stmts = append(c.Stmts, s)
		adopt(c, s)
	}
	return c
}

// Clone returns an independent deep copy of the statement.
func (n *LetStmt) Clone() Node {
	c := &LetStmt{
		NodeBase: n.cloneBase(),
		Mutable:  n.Mutable,
		Name:     cloneIdent(n.Name),
		Type:     cloneType(n.Type),
		Value:    cloneExpr(n.Value),
	}
	if c.Name != nil {
		adopt(c, c.Name)
	}
	if c.Type != nil {
		adopt(c, c.Type)
	}
	if c.Value != nil {
		adopt(c, c.Value)
	}
	return c
}

// Clone returns an independent deep copy of the statement.
func (n *ReturnStmt) Clone() Node {
	c := &ReturnStmt{NodeBase: n.cloneBase(), Value: cloneExpr(n.Value)}
	if c.Value != nil {
		adopt(c, c.Value)
	}
	return c
}

// Clone returns an independent deep copy of the statement.
func (n *ExprStmt) Clone() Node {
	c := &ExprStmt{NodeBase: n.cloneBase(), Expr: cloneExpr(n.Expr)}
	if c.Expr != nil {
		adopt(c, c.Expr)
	}
	return c
}

// Clone returns an independent deep copy of the statement.
func (n *IfStmt) Clone() Node {
	c := &IfStmt{
		NodeBase: n.cloneBase(),
		Cond:     cloneExpr(n.Cond),
		Then:     cloneBlock(n.Then),
		Else:     cloneBlock(n.Else),
	}
	if c.Cond != nil {
		adopt(c, c.Cond)
	}
	if c.Then != nil {
		adopt(c, c.Then)
	}
	if c.Else != nil {
		adopt(c, c.Else)
	}
	return c
}

// Clone returns an independent deep copy of the statement.
func (n *WhileStmt) Clone() Node {
	c := &WhileStmt{
		NodeBase: n.cloneBase(),
		Cond:     cloneExpr(n.Cond),
		Body:     cloneBlock(n.Body),
	}
	if c.Cond != nil {
		adopt(c, c.Cond)
	}
	if c.Body != nil {
		adopt(c, c.Body)
	}
	return c
}

// Clone returns an independent copy of the identifier.
func (n *Ident) Clone() Node {
	return &Ident{NodeBase: n.cloneBase(), Name: n.Name}
}

// Clone returns an independent copy of the literal.
func (n *IntLit) Clone() Node {
	return &IntLit{NodeBase: n.cloneBase(), Text: n.Text}
}

// Clone returns an independent copy of the literal.
func (n *StringLit) Clone() Node {
	return &StringLit{NodeBase: n.cloneBase(), Value: n.Value}
}

// Clone returns an independent copy of the literal.
func (n *BoolLit) Clone() Node {
	return &BoolLit{NodeBase: n.cloneBase(), Value: n.Value}
}

// Clone returns an independent deep copy of the expression.
func (n *PrefixExpr) Clone() Node {
	c := &PrefixExpr{NodeBase: n.cloneBase(), Op: n.Op, Expr: cloneExpr(n.Expr)}
	if c.Expr != nil {
		adopt(c, c.Expr)
	}
	return c
}

// Clone returns an independent deep copy of the expression.
func (n *InfixExpr) Clone() Node {
	c := &InfixExpr{
		NodeBase: n.cloneBase(),
		Op:       n.Op,
		Left:     cloneExpr(n.Left),
		Right:    cloneExpr(n.Right),
	}
	if c.Left != nil {
		adopt(c, c.Left)
	}
	if c.Right != nil {
		adopt(c, c.Right)
	}
	return c
}

// Clone returns an independent deep copy of the expression.
func (n *CallExpr) Clone() Node {
	c := &CallExpr{NodeBase: n.cloneBase(), Callee: cloneExpr(n.Callee)}
	if c.Callee != nil {
		adopt(c, c.Callee)
	}
	for _, arg := range n.Args {
		a := cloneExpr(arg)
		c.Args = append(c.Args, a)
		adopt(c, a)
	}
	return c
}
