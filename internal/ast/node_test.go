package ast_test

import (
	"errors"
	"testing"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

func span(line, column, start, end int) lexer.Span {
	return lexer.Span{Line: line, Column: column, Start: start, End: end}
}

// letBody builds fn main() { let x = <value>; } and returns the pieces a
// test usually wants to poke at.
func letBody(value ast.Expr) (*ast.FnDecl, *ast.Block, *ast.LetStmt) {
	let := ast.NewLetStmt(false, ast.NewIdent("x", span(2, 9, 20, 21)), nil, value, span(2, 5, 16, 24))
	body := ast.NewBlock([]ast.Stmt{let}, span(1, 11, 10, 26))
	fn := ast.NewFnDecl(ast.NewIdent("main", span(1, 4, 3, 7)), nil, nil, body, span(1, 1, 0, 26))
	return fn, body, let
}

func TestConstructorsWireParents(t *testing.T) {
	value := ast.NewIntLit("5", span(2, 13, 22, 23))
	fn, body, let := letBody(value)

	if got := body.Parent(); got != ast.Node(fn) {
		t.Fatalf("body parent = %v, want the fn decl", got)
	}
	if got := let.Parent(); got != ast.Node(body) {
		t.Fatalf("let parent = %v, want the body block", got)
	}
	if got := value.Parent(); got != ast.Node(let) {
		t.Fatalf("value parent = %v, want the let stmt", got)
	}
	if fn.Parent() != nil {
		t.Fatalf("detached fn decl has parent %v", fn.Parent())
	}
}

func TestAdoptionInheritsMissingSpan(t *testing.T) {
	// A node built without location picks up its parent's span at
	// attach time.
	value := ast.NewIntLit("5", lexer.Span{})
	_, _, let := letBody(value)

	if got, want := value.Span(), let.Span(); got != want {
		t.Fatalf("inherited span = %v, want %v", got, want)
	}
}

func TestSpanFallsBackToParentChain(t *testing.T) {
	// Both the stmt and its child start without spans; once the stmt
	// gains one, the child observes it through the parent chain.
	value := ast.NewIntLit("5", lexer.Span{})
	stmt := ast.NewExprStmt(value, lexer.Span{})

	if got := value.Span(); got.IsValid() {
		t.Fatalf("span before assignment = %v, want invalid", got)
	}

	at := span(3, 1, 30, 35)
	if err := stmt.SetSpan(at); err != nil {
		t.Fatalf("SetSpan: %v", err)
	}
	if got := value.Span(); got != at {
		t.Fatalf("span after parent assignment = %v, want %v", got, at)
	}

	// The fallback is a read, not a write: the child still has no span
	// of its own, so a later parent change shows through as well.
	moved := span(9, 1, 90, 95)
	if err := stmt.SetSpan(moved); err != nil {
		t.Fatalf("SetSpan: %v", err)
	}
	if got := value.Span(); got != moved {
		t.Fatalf("span after parent move = %v, want %v", got, moved)
	}
}

func TestOwnSpanShadowsParent(t *testing.T) {
	own := span(2, 13, 22, 23)
	value := ast.NewIntLit("5", own)
	stmt := ast.NewExprStmt(value, span(2, 5, 16, 24))

	if err := stmt.SetSpan(span(7, 1, 70, 80)); err != nil {
		t.Fatalf("SetSpan: %v", err)
	}
	if got := value.Span(); got != own {
		t.Fatalf("span = %v, want the node's own %v", got, own)
	}
}

func TestSetSpanRejectsInvalid(t *testing.T) {
	n := ast.NewIdent("x", span(1, 1, 0, 1))

	err := n.SetSpan(lexer.Span{})
	if !errors.Is(err, ast.ErrInvalidArgument) {
		t.Fatalf("SetSpan(zero) error = %v, want ErrInvalidArgument", err)
	}
	if got := n.Span(); got != span(1, 1, 0, 1) {
		t.Fatalf("span mutated by failed SetSpan: %v", got)
	}

	err = n.SetEndSpan(lexer.Span{})
	if !errors.Is(err, ast.ErrInvalidArgument) {
		t.Fatalf("SetEndSpan(zero) error = %v, want ErrInvalidArgument", err)
	}
}

func TestEndSpan(t *testing.T) {
	b := ast.NewBlock(nil, span(1, 10, 9, 20))
	if got := b.EndSpan(); got.IsValid() {
		t.Fatalf("fresh block end span = %v, want invalid", got)
	}

	closing := span(3, 1, 19, 20)
	if err := b.SetEndSpan(closing); err != nil {
		t.Fatalf("SetEndSpan: %v", err)
	}
	if got := b.EndSpan(); got != closing {
		t.Fatalf("end span = %v, want %v", got, closing)
	}
}

func TestSyntheticAndDoc(t *testing.T) {
	n := ast.NewIdent("tmp", span(1, 1, 0, 3))

	if n.Synthetic() {
		t.Fatalf("fresh node is synthetic")
	}
	n.SetSynthetic(true)
	if !n.Synthetic() {
		t.Fatalf("SetSynthetic(true) did not stick")
	}

	if got := n.Doc(); got != "" {
		t.Fatalf("fresh node doc = %q", got)
	}
	n.SetDoc("compiler temporary")
	if got := n.Doc(); got != "compiler temporary" {
		t.Fatalf("doc = %q", got)
	}
}

func TestCleanCloneStripsBindings(t *testing.T) {
	value := ast.NewIntLit("5", span(2, 13, 22, 23))
	fn, _, let := letBody(value)

	if err := let.Annotate("mutability", "immutable"); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	value.SetEntity("the-int-type")
	ast.SetTag(fn, 42)

	clean := ast.CleanClone(fn)

	var dirty []ast.Node
	ast.Walk(clean, func(n ast.Node) bool {
		if n.HasAnnotations() || n.Entity() != nil {
			dirty = append(dirty, n)
		}
		return true
	})
	if len(dirty) != 0 {
		t.Fatalf("clean clone still carries bindings on %d node(s)", len(dirty))
	}

	// The source tree keeps everything.
	if !let.ContainsAnnotation("mutability") {
		t.Fatalf("CleanClone stripped the original's annotations")
	}
	if value.Entity() == nil {
		t.Fatalf("CleanClone stripped the original's entity")
	}
	if !clean.Matches(fn) {
		t.Fatalf("clean clone does not match its source")
	}
}
