package ast_test

import (
	"testing"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

func TestCloneMatchesAndIsDetached(t *testing.T) {
	orig := addMul(0)
	stmt := ast.NewExprStmt(orig, span(1, 1, 0, 10))

	c := orig.Clone()

	if !c.Matches(orig) {
		t.Fatalf("clone does not match its source")
	}
	if c == ast.Node(orig) {
		t.Fatalf("clone is the source node")
	}
	if c.Parent() != nil {
		t.Fatalf("clone parent = %v, want detached", c.Parent())
	}
	if orig.Parent() != ast.Node(stmt) {
		t.Fatalf("cloning detached the source from its parent")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := addMul(0)
	c := orig.Clone().(*ast.InfixExpr)

	// Mutating the clone's subtree leaves the source alone.
	c.Left = ast.NewIntLit("7", span(1, 1, 0, 1))
	c.Op = lexer.MINUS
	if lit, ok := orig.Left.(*ast.IntLit); !ok || lit.Text != "1" {
		t.Fatalf("source left operand changed: %v", orig.Left)
	}
	if orig.Op != lexer.PLUS {
		t.Fatalf("source operator changed: %v", orig.Op)
	}

	// Child parent links point into the clone, not the source.
	right := c.Right.(*ast.InfixExpr)
	if right.Parent() != ast.Node(c) {
		t.Fatalf("clone child parent = %v, want the clone", right.Parent())
	}
	inner := right.Left.(*ast.IntLit)
	if inner.Parent() != ast.Node(right) {
		t.Fatalf("nested clone child has stale parent %v", inner.Parent())
	}
}

func TestCloneCopiesMetadata(t *testing.T) {
	orig := ast.NewIdent("x", span(3, 7, 20, 21))
	orig.SetSynthetic(true)
	orig.SetDoc("a binding")
	if err := orig.Annotate("k", "v"); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	orig.SetEntity("sym")

	c := orig.Clone()

	if got := c.Span(); got != orig.Span() {
		t.Fatalf("clone span = %v, want %v", got, orig.Span())
	}
	if !c.Synthetic() || c.Doc() != "a binding" {
		t.Fatalf("clone lost synthetic flag or doc")
	}
	if v, ok := c.Annotation("k"); !ok || v != "v" {
		t.Fatalf("clone annotation = %v, %v", v, ok)
	}
	if c.Entity() != any("sym") {
		t.Fatalf("clone entity = %v", c.Entity())
	}
}

func TestCloneAnnotationStoreIsIndependent(t *testing.T) {
	orig := ast.NewIdent("x", span(1, 1, 0, 1))
	if err := orig.Annotate("shared", 1); err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	c := orig.Clone()

	if err := c.Annotate("clone-only", 2); err != nil {
		t.Fatalf("Annotate on clone: %v", err)
	}
	if orig.ContainsAnnotation("clone-only") {
		t.Fatalf("clone insert leaked into the source store")
	}

	orig.RemoveAnnotation("shared")
	if !c.ContainsAnnotation("shared") {
		t.Fatalf("source removal leaked into the clone store")
	}
}

func TestCloneFnDecl(t *testing.T) {
	intType := func(col int) ast.TypeExpr {
		return ast.NewNamedType(ast.NewIdent("Int", span(1, col, col-1, col+2)), span(1, col, col-1, col+2))
	}
	body := ast.NewBlock(
		[]ast.Stmt{ast.NewReturnStmt(
			ast.NewInfixExpr(
				lexer.PLUS,
				ast.NewIdent("a", span(2, 12, 40, 41)),
				ast.NewIdent("b", span(2, 16, 44, 45)),
				span(2, 12, 40, 45),
			),
			span(2, 5, 33, 46),
		)},
		span(1, 31, 30, 48),
	)
	fn := ast.NewFnDecl(
		ast.NewIdent("add", span(1, 4, 3, 6)),
		[]*ast.Param{
			ast.NewParam(ast.NewIdent("a", span(1, 8, 7, 8)), intType(11), span(1, 8, 7, 14)),
			ast.NewParam(ast.NewIdent("b", span(1, 16, 15, 16)), intType(19), span(1, 16, 15, 22)),
		},
		intType(27),
		body,
		span(1, 1, 0, 48),
	)

	c := fn.Clone().(*ast.FnDecl)

	if !c.Matches(fn) {
		t.Fatalf("cloned fn decl does not match its source")
	}
	if c.Name == fn.Name || c.Body == fn.Body {
		t.Fatalf("fn decl clone shares children with the source")
	}
	if len(c.Params) != 2 || c.Params[0] == fn.Params[0] {
		t.Fatalf("fn decl clone shares params with the source")
	}
	if c.Params[1].Parent() != ast.Node(c) {
		t.Fatalf("cloned param parent = %v, want the cloned decl", c.Params[1].Parent())
	}
}
