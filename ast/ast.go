// Package ast defines the closed set of node variants a C-minus program
// parses into. Every variant embeds Base, following the ASTNode/ASTBase
// embedding pattern of chai/bootstrap/ast.go, collapsed to a single node
// taxonomy since C-minus has no separate HIR stage.
package ast

import "cminus/source"

// Node is implemented by every AST node.
type Node interface {
	Span() source.Range
}

// Base carries the source span every node reports itself over.
type Base struct {
	Span_ source.Range
}

func (b Base) Span() source.Range { return b.Span_ }

// ExprType is the closed set of types an expression or declaration can have.
type ExprType int

const (
	TypeInt ExprType = iota
	TypeVoid
	TypeIntArray
)

func (t ExprType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeVoid:
		return "void"
	case TypeIntArray:
		return "int[]"
	default:
		return "?"
	}
}

// Program is the root node: an ordered sequence of top-level declarations.
// Its symbol table is transient (owned by sema.Scope during parsing) and is
// not part of the AST proper.
type Program struct {
	Base

	Decls []Decl
}
