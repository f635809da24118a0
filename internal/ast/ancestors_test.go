package ast_test

import (
	"testing"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// nestedWhile builds
//
//	fn main() { while a { while b { c; } } }
//
// and returns the fn decl, the two while stmts outer-first, and the ident c.
func nestedWhile() (*ast.FnDecl, *ast.WhileStmt, *ast.WhileStmt, *ast.Ident) {
	c := ast.NewIdent("c", span(1, 33, 32, 33))
	innerBody := ast.NewBlock([]ast.Stmt{ast.NewExprStmt(c, span(1, 33, 32, 34))}, span(1, 31, 30, 36))
	inner := ast.NewWhileStmt(ast.NewIdent("b", span(1, 27, 26, 27)), innerBody, span(1, 21, 20, 36))
	outerBody := ast.NewBlock([]ast.Stmt{inner}, span(1, 19, 18, 38))
	outer := ast.NewWhileStmt(ast.NewIdent("a", span(1, 15, 14, 15)), outerBody, span(1, 9, 8, 38))
	body := ast.NewBlock([]ast.Stmt{outer}, span(1, 11, 10, 40))
	fn := ast.NewFnDecl(ast.NewIdent("main", span(1, 4, 3, 7)), nil, nil, body, span(1, 1, 0, 40))
	return fn, outer, inner, c
}

func TestAncestorFindsNearest(t *testing.T) {
	fn, _, inner, c := nestedWhile()

	if got := c.Ancestor(ast.KindWhileStmt); got != ast.Node(inner) {
		t.Fatalf("Ancestor(KindWhileStmt) = %v, want the inner while", got)
	}
	if got := c.Ancestor(ast.KindFnDecl); got != ast.Node(fn) {
		t.Fatalf("Ancestor(KindFnDecl) = %v, want the fn decl", got)
	}
	if got := c.Ancestor(ast.KindIfStmt); got != nil {
		t.Fatalf("Ancestor(KindIfStmt) = %v, want nil", got)
	}
	if got := fn.Ancestor(ast.KindFnDecl); got != nil {
		t.Fatalf("a node is not its own ancestor, got %v", got)
	}
}

func TestAncestorWithinBound(t *testing.T) {
	// c's chain: ExprStmt, Block, inner while, Block, outer while, ...
	_, outer, inner, c := nestedWhile()

	if got := c.AncestorWithin(ast.KindWhileStmt, 0); got != nil {
		t.Fatalf("AncestorWithin(_, 0) = %v, want nil", got)
	}
	if got := c.AncestorWithin(ast.KindWhileStmt, -1); got != nil {
		t.Fatalf("AncestorWithin(_, -1) = %v, want nil", got)
	}
	if got := c.AncestorWithin(ast.KindWhileStmt, 2); got != nil {
		t.Fatalf("AncestorWithin(_, 2) = %v, want nil at two hops", got)
	}
	if got := c.AncestorWithin(ast.KindWhileStmt, 3); got != ast.Node(inner) {
		t.Fatalf("AncestorWithin(_, 3) = %v, want the inner while", got)
	}
	// The search stops at the first match even when the bound would
	// reach a farther one.
	if got := c.AncestorWithin(ast.KindWhileStmt, 10); got != ast.Node(inner) {
		t.Fatalf("AncestorWithin(_, 10) = %v, want the inner while, not %v", got, outer)
	}
}

func TestAncestorOfGenerics(t *testing.T) {
	fn, outer, inner, c := nestedWhile()

	nearest, ok := ast.AncestorOf[*ast.WhileStmt](c)
	if !ok || nearest != inner {
		t.Fatalf("AncestorOf = %v, %v; want the inner while", nearest, ok)
	}

	farthest, ok := ast.RootAncestorOf[*ast.WhileStmt](c)
	if !ok || farthest != outer {
		t.Fatalf("RootAncestorOf = %v, %v; want the outer while", farthest, ok)
	}

	if _, ok := ast.AncestorOf[*ast.IfStmt](c); ok {
		t.Fatalf("AncestorOf[*IfStmt] found a match in a while-only chain")
	}
	if _, ok := ast.RootAncestorOf[*ast.IfStmt](c); ok {
		t.Fatalf("RootAncestorOf[*IfStmt] found a match in a while-only chain")
	}

	root, ok := ast.RootAncestorOf[*ast.FnDecl](c)
	if !ok || root != fn {
		t.Fatalf("RootAncestorOf[*FnDecl] = %v, %v", root, ok)
	}
}

func TestAncestorsOfIsOrderedAndRestartable(t *testing.T) {
	_, outer, inner, c := nestedWhile()

	seq := ast.AncestorsOf[*ast.WhileStmt](c)

	var got []*ast.WhileStmt
	for w := range seq {
		got = append(got, w)
	}
	if len(got) != 2 || got[0] != inner || got[1] != outer {
		t.Fatalf("ancestors = %v, want inner then outer", got)
	}

	// Early break and a second full pass over the same sequence.
	for w := range seq {
		if w != inner {
			t.Fatalf("first yielded ancestor = %v, want the inner while", w)
		}
		break
	}
	n := 0
	for range seq {
		n++
	}
	if n != 2 {
		t.Fatalf("restarted sequence yielded %d ancestors, want 2", n)
	}
}

func TestAncestorsOfDetachedNode(t *testing.T) {
	lone := ast.NewIdent("x", lexer.Span{Line: 1, Column: 1, Start: 0, End: 1})
	for range ast.AncestorsOf[*ast.WhileStmt](lone) {
		t.Fatalf("detached node yielded an ancestor")
	}
}
