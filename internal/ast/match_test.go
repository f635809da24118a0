package ast_test

import (
	"testing"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/lexer"
)

// addMul builds 1 + 2 * 3 at the given base offset so two instances carry
// different spans.
func addMul(base int) *ast.InfixExpr {
	mul := ast.NewInfixExpr(
		lexer.ASTERISK,
		ast.NewIntLit("2", span(1, base+5, base+4, base+5)),
		ast.NewIntLit("3", span(1, base+9, base+8, base+9)),
		span(1, base+5, base+4, base+9),
	)
	return ast.NewInfixExpr(
		lexer.PLUS,
		ast.NewIntLit("1", span(1, base+1, base+0, base+1)),
		mul,
		span(1, base+1, base+0, base+9),
	)
}

func TestMatchIgnoresMetadata(t *testing.T) {
	a := addMul(0)
	b := addMul(40)

	if !a.Matches(b) {
		t.Fatalf("structurally equal trees with different spans do not match")
	}

	b.SetSynthetic(true)
	b.SetDoc("desugared")
	if err := b.Annotate("k", "v"); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	b.SetEntity("sym")
	if !a.Matches(b) {
		t.Fatalf("metadata leaked into structural comparison")
	}
}

func TestMatchStructuralDifferences(t *testing.T) {
	base := addMul(0)

	otherOp := addMul(0)
	otherOp.Op = lexer.MINUS
	if base.Matches(otherOp) {
		t.Fatalf("trees with different operators match")
	}

	otherLeaf := addMul(0)
	otherLeaf.Left = ast.NewIntLit("9", span(1, 1, 0, 1))
	if base.Matches(otherLeaf) {
		t.Fatalf("trees with different literals match")
	}

	if base.Matches(ast.NewIntLit("1", span(1, 1, 0, 1))) {
		t.Fatalf("infix expr matches a bare literal")
	}
}

func TestMatchNodesNilHandling(t *testing.T) {
	n := ast.NewIdent("x", span(1, 1, 0, 1))

	if !ast.MatchNodes(nil, nil) {
		t.Fatalf("MatchNodes(nil, nil) = false")
	}
	if ast.MatchNodes(n, nil) {
		t.Fatalf("MatchNodes(node, nil) = true")
	}
	if ast.MatchNodes(nil, n) {
		t.Fatalf("MatchNodes(nil, node) = true")
	}
}

func TestMatchBlocksNilEqualsEmpty(t *testing.T) {
	empty := ast.NewBlock(nil, span(1, 1, 0, 2))
	nonEmpty := ast.NewBlock(
		[]ast.Stmt{ast.NewExprStmt(ast.NewIdent("x", span(1, 3, 2, 3)), span(1, 3, 2, 4))},
		span(1, 1, 0, 6),
	)

	if !ast.MatchBlocks(nil, nil) {
		t.Fatalf("MatchBlocks(nil, nil) = false")
	}
	if !ast.MatchBlocks(nil, empty) {
		t.Fatalf("MatchBlocks(nil, empty) = false")
	}
	if !ast.MatchBlocks(empty, nil) {
		t.Fatalf("MatchBlocks(empty, nil) = false")
	}
	if ast.MatchBlocks(nil, nonEmpty) {
		t.Fatalf("MatchBlocks(nil, nonEmpty) = true")
	}
}

func TestAllMatch(t *testing.T) {
	one := ast.NewIntLit("1", span(1, 1, 0, 1))
	two := ast.NewIntLit("2", span(1, 3, 2, 3))

	if !ast.AllMatch(nil, []ast.Expr{}) {
		t.Fatalf("AllMatch(nil, empty) = false")
	}
	if !ast.AllMatch([]ast.Expr{one, two}, []ast.Expr{one.Clone().(ast.Expr), two.Clone().(ast.Expr)}) {
		t.Fatalf("AllMatch on clone pairs = false")
	}
	if ast.AllMatch([]ast.Expr{one}, []ast.Expr{one, two}) {
		t.Fatalf("AllMatch with different lengths = true")
	}
	if ast.AllMatch([]ast.Expr{one, two}, []ast.Expr{two, one}) {
		t.Fatalf("AllMatch ignores element order")
	}
}

func TestMatchStatements(t *testing.T) {
	mkLet := func(mutable bool, name, ty, value string) *ast.LetStmt {
		var typeExpr ast.TypeExpr
		if ty != "" {
			typeExpr = ast.NewNamedType(ast.NewIdent(ty, span(1, 1, 0, 1)), span(1, 1, 0, 1))
		}
		return ast.NewLetStmt(
			mutable,
			ast.NewIdent(name, span(1, 5, 4, 5)),
			typeExpr,
			ast.NewIntLit(value, span(1, 9, 8, 9)),
			span(1, 1, 0, 10),
		)
	}

	if !mkLet(false, "x", "Int", "5").Matches(mkLet(false, "x", "Int", "5")) {
		t.Fatalf("identical let stmts do not match")
	}
	if mkLet(false, "x", "Int", "5").Matches(mkLet(true, "x", "Int", "5")) {
		t.Fatalf("mutability ignored by match")
	}
	if mkLet(false, "x", "Int", "5").Matches(mkLet(false, "y", "Int", "5")) {
		t.Fatalf("binding name ignored by match")
	}
	if mkLet(false, "x", "", "5").Matches(mkLet(false, "x", "Int", "5")) {
		t.Fatalf("absent type annotation matches a present one")
	}
	if !mkLet(false, "x", "", "5").Matches(mkLet(false, "x", "", "5")) {
		t.Fatalf("let stmts without type annotations do not match")
	}
}

func TestMatchIfStmtElseBranch(t *testing.T) {
	mkIf := func(els *ast.Block) *ast.IfStmt {
		then := ast.NewBlock(nil, span(1, 6, 5, 7))
		return ast.NewIfStmt(ast.NewIdent("c", span(1, 4, 3, 4)), then, els, span(1, 1, 0, 7))
	}

	if !mkIf(nil).Matches(mkIf(nil)) {
		t.Fatalf("if stmts without else do not match")
	}
	// A nil else and an empty else block are both "no alternative".
	if !mkIf(nil).Matches(mkIf(ast.NewBlock(nil, span(1, 9, 8, 10)))) {
		t.Fatalf("nil else does not match empty else")
	}
	filled := ast.NewBlock(
		[]ast.Stmt{ast.NewExprStmt(ast.NewIdent("x", span(1, 10, 9, 10)), span(1, 10, 9, 11))},
		span(1, 9, 8, 13),
	)
	if mkIf(nil).Matches(mkIf(filled)) {
		t.Fatalf("nil else matches a populated else")
	}
}
