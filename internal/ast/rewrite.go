package ast

import "fmt"

// The rewrite engine performs mutable tree surgery during a single
// depth-first pre-order traversal. It operates on child slots, never on the
// visited node itself: substitution is a write to the slot holding the
// matched child, followed by skipping descent into that slot. The root is
// therefore never a candidate, and a replaced subtree is opaque once
// spliced in, which is what keeps a template that itself satisfies the
// predicate from rewriting forever. Callers that want fixpoint rewriting
// loop externally.
//
// A predicate that panics propagates out of the whole call and may leave
// the tree partially rewritten.

// ReplaceMatching substitutes a fresh clone of template for every child
// slot whose current node satisfies pred, and returns the number of
// substitutions. Every match receives its own clone, preserving single
// ownership per subtree. Substituting a template whose category does not
// fit the matched slot (for example a statement into an expression slot) is
// caller misuse and panics.
func ReplaceMatching(root Node, pred func(Node) bool, template Node) int {
	r := &rewriter{pred: pred, template: template}
	r.node(root)
	return r.count
}

// Replace is ReplaceMatching with the predicate "node matches pattern".
func Replace(root, pattern, template Node) int {
	return ReplaceMatching(root, func(n Node) bool {
		return n.Matches(pattern)
	}, template)
}

type rewriter struct {
	pred     func(Node) bool
	template Node
	count    int
}

// rewriteSlot examines one child slot. On a predicate match the slot
// receives a fresh clone of the template and descent stops; otherwise
// traversal recurses into the child.
func rewriteSlot[N Node](r *rewriter, parent Node, slot *N) {
	child := Node(*slot)
	if child == nil {
		return
	}
	if r.pred(child) {
		clone := r.template.Clone()
		repl, ok := clone.(N)
		if !ok {
			panic(fmt.Sprintf("ast: cannot substitute %s into a %s slot", clone.Kind(), child.Kind()))
		}
		*slot = repl
		adopt(parent, repl)
		r.count++
		return
	}
	r.node(child)
}

func rewriteSlice[N Node](r *rewriter, parent Node, seq []N) {
	for i := range seq {
		rewriteSlot(r, parent, &seq[i])
	}
}

func (r *rewriter) node(node Node) {
	switch n := node.(type) {
	case *File:
		rewriteSlice(r, n, n.Decls)

	case *FnDecl:
		if n.Name != nil {
			rewriteSlot(r, n, &n.Name)
		}
		rewriteSlice(r, n, n.Params)
		rewriteSlot(r, n, &n.ReturnType)
		if n.Body != nil {
			rewriteSlot(r, n, &n.Body)
		}

	case *Param:
		if n.Name != nil {
			rewriteSlot(r, n, &n.Name)
		}
		rewriteSlot(r, n, &n.Type)

	case *NamedType:
		if n.Name != nil {
			rewriteSlot(r, n, &n.Name)
		}

	case *Block:
		rewriteSlice(r, n, n.Stmts)

	case *LetStmt:
		if n.Name != nil {
			rewriteSlot(r, n, &n.Name)
		}
		rewriteSlot(r, n, &n.Type)
		rewriteSlot(r, n, &n.Value)

	case *ReturnStmt:
		rewriteSlot(r, n, &n.Value)

	case *ExprStmt:
		rewriteSlot(r, n, &n.Expr)

	case *IfStmt:
		rewriteSlot(r, n, &n.Cond)
		if n.Then != nil {
			rewriteSlot(r, n, &n.Then)
		}
		if n.Else != nil {
			rewriteSlot(r, n, &n.Else)
		}

	case *WhileStmt:
		rewriteSlot(r, n, &n.Cond)
		if n.Body != nil {
			rewriteSlot(r, n, &n.Body)
		}

	case *PrefixExpr:
		rewriteSlot(r, n, &n.Expr)

	case *InfixExpr:
		rewriteSlot(r, n, &n.Left)
		rewriteSlot(r, n, &n.Right)

	case *CallExpr:
		rewriteSlot(r, n, &n.Callee)
		rewriteSlice(r, n, n.Args)

	// Leaf nodes have no slots
	case *Ident, *IntLit, *StringLit, *BoolLit:
	}
}
