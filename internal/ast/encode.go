package ast

import "gopkg.in/yaml.v3"

// encodedNode is the persisted shape of a node. Structural fields and the
// synthetic flag participate; computed and transient state (resolved spans,
// annotations, entity bindings) is excluded.
type encodedNode struct {
	Kind      string         `yaml:"kind"`
	Synthetic bool           `yaml:"synthetic,omitempty"`
	Doc       string         `yaml:"doc,omitempty"`
	Name      string         `yaml:"name,omitempty"`
	Op        string         `yaml:"op,omitempty"`
	Mutable   bool           `yaml:"mutable,omitempty"`
	Value     any            `yaml:"value,omitempty"`
	Children  []*encodedNode `yaml:"children,omitempty"`
}

// EncodeYAML renders the subtree rooted at n as a YAML document for
// tooling. The output is structural only; it is not a source-fidelity
// format and carries no location or analysis state.
func EncodeYAML(n Node) ([]byte, error) {
	return yaml.Marshal(encode(n))
}

func encode(node Node) *encodedNode {
	if node == nil {
		return nil
	}

	e := &encodedNode{
		Kind:      node.Kind().String(),
		Synthetic: node.base().synthetic,
		Doc:       node.base().doc,
	}
	addChild := func(c Node) {
		if enc := encode(c); enc != nil {
			e.Children = append(e.Children, enc)
		}
	}

	switch n := node.(type) {
	case *File:
		for _, decl := range n.Decls {
			addChild(decl)
		}
	case *FnDecl:
		if n.Name != nil {
			addChild(n.Name)
		}
		for _, param := range n.Params {
			addChild(param)
		}
		addChild(n.ReturnType)
		if n.Body != nil {
			addChild(n.Body)
		}
	case *Param:
		if n.Name != nil {
			addChild(n.Name)
		}
		addChild(n.Type)
	case *NamedType:
		if n.Name != nil {
			addChild(n.Name)
		}
	case *Block:
		for _, stmt := range n.Stmts {
			addChild(stmt)
		}
	case *LetStmt:
		e.Mutable = n.Mutable
		if n.Name != nil {
			addChild(n.Name)
		}
		addChild(n.Type)
		addChild(n.Value)
	case *ReturnStmt:
		addChild(n.Value)
	case *ExprStmt:
		addChild(n.Expr)
	case *IfStmt:
		addChild(n.Cond)
		if n.Then != nil {
			addChild(n.Then)
		}
		if n.Else != nil {
			addChild(n.Else)
		}
	case *WhileStmt:
		addChild(n.Cond)
		if n.Body != nil {
			addChild(n.Body)
		}
	case *Ident:
		e.Name = n.Name
	case *IntLit:
		e.Value = n.Text
	case *StringLit:
		e.Value = n.Value
	case *BoolLit:
		e.Value = n.Value
	case *PrefixExpr:
		e.Op = string(n.Op)
		addChild(n.Expr)
	case *InfixExpr:
		e.Op = string(n.Op)
		addChild(n.Left)
		addChild(n.Right)
	case *CallExpr:
		addChild(n.Callee)
		for _, arg := range n.Args {
			addChild(arg)
		}
	}

	return e
}
