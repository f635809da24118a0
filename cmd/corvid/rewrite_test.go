package main

import (
	"strings"
	"testing"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/parser"
	"github.com/corvid-lang/corvid/internal/printer"
)

func parseTestFile(t *testing.T, src string) *ast.File {
	t.Helper()

	p := parser.New(src)
	file := p.ParseFile()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("parse %q: %v", src, errs)
	}
	return file
}

func TestApplyRewriteRejectsNonIdentTemplateForIdentPattern(t *testing.T) {
	// An identifier pattern reaches binding-name positions; splicing a
	// literal there must come back as an error, not a crash.
	file := parseTestFile(t, "fn main() { let x = 5; }")

	pattern, err := parseSnippet("x")
	if err != nil {
		t.Fatalf("parseSnippet: %v", err)
	}
	template, err := parseSnippet("0")
	if err != nil {
		t.Fatalf("parseSnippet: %v", err)
	}

	count, err := applyRewrite(file, pattern, template)
	if err == nil {
		t.Fatalf("identifier pattern with literal template produced no error")
	}
	if count != 0 {
		t.Fatalf("failed rewrite reported %d replacement(s)", count)
	}
	if !strings.Contains(err.Error(), "identifier") {
		t.Fatalf("error does not explain the rejection: %v", err)
	}
}

func TestApplyRewriteIdentToIdent(t *testing.T) {
	file := parseTestFile(t, "fn main() { let x = 5; x; }")

	pattern, err := parseSnippet("x")
	if err != nil {
		t.Fatalf("parseSnippet: %v", err)
	}
	template, err := parseSnippet("y")
	if err != nil {
		t.Fatalf("parseSnippet: %v", err)
	}

	count, err := applyRewrite(file, pattern, template)
	if err != nil {
		t.Fatalf("applyRewrite: %v", err)
	}
	// The binding name and the later use both match.
	if count != 2 {
		t.Fatalf("replaced %d occurrence(s), want 2", count)
	}
	if out := printer.Format(file); strings.Contains(out, "x") {
		t.Fatalf("occurrences survived the rewrite:\n%s", out)
	}
}

func TestApplyRewriteExpression(t *testing.T) {
	file := parseTestFile(t, "fn main() { let x = 1 + 2 * 3; }")

	pattern, err := parseSnippet("2")
	if err != nil {
		t.Fatalf("parseSnippet: %v", err)
	}
	template, err := parseSnippet("99")
	if err != nil {
		t.Fatalf("parseSnippet: %v", err)
	}

	count, err := applyRewrite(file, pattern, template)
	if err != nil {
		t.Fatalf("applyRewrite: %v", err)
	}
	if count != 1 {
		t.Fatalf("replaced %d occurrence(s), want 1", count)
	}
	if out := printer.Format(file); !strings.Contains(out, "1 + 99 * 3") {
		t.Fatalf("rewrite produced:\n%s", out)
	}
}
