package ast

// Kind identifies the concrete variant of a node. It supports ancestor
// queries and serialization without resorting to type reflection.
type Kind int

const (
	KindFile Kind = iota
	KindFnDecl
	KindParam
	KindNamedType
	KindBlock
	KindLetStmt
	KindReturnStmt
	KindExprStmt
	KindIfStmt
	KindWhileStmt
	KindIdent
	KindIntLit
	KindStringLit
	KindBoolLit
	KindPrefixExpr
	KindInfixExpr
	KindCallExpr
)

var kindNames = map[Kind]string{
	KindFile:       "File",
	KindFnDecl:     "FnDecl",
	KindParam:      "Param",
	KindNamedType:  "NamedType",
	KindBlock:      "Block",
	KindLetStmt:    "LetStmt",
	KindReturnStmt: "ReturnStmt",
	KindExprStmt:   "ExprStmt",
	KindIfStmt:     "IfStmt",
	KindWhileStmt:  "WhileStmt",
	KindIdent:      "Ident",
	KindIntLit:     "IntLit",
	KindStringLit:  "StringLit",
	KindBoolLit:    "BoolLit",
	KindPrefixExpr: "PrefixExpr",
	KindInfixExpr:  "InfixExpr",
	KindCallExpr:   "CallExpr",
}

// String returns the variant name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
