package ast

import (
	"fmt"
	"io"
	"strings"

	"cminus/source"
)

// Dump writes prog in canonical indented form to w, one node per line, for
// the sintatico driver.
func Dump(w io.Writer, file *source.File, prog *Program) {
	d := &dumper{w: w, file: file}
	d.line(0, "Program")
	for _, decl := range prog.Decls {
		d.decl(1, decl)
	}
}

type dumper struct {
	w    io.Writer
	file *source.File
}

func (d *dumper) line(depth int, format string, args ...interface{}) {
	fmt.Fprint(d.w, strings.Repeat("  ", depth))
	fmt.Fprintf(d.w, format, args...)
	fmt.Fprintln(d.w)
}

func (d *dumper) text(r source.Range) string {
	return d.file.Text(r)
}

func (d *dumper) decl(depth int, decl Decl) {
	switch v := decl.(type) {
	case *VarDecl:
		if v.IsArray() {
			d.line(depth, "VarDecl %s %s[%d]", v.Type, d.text(v.Name), v.ArraySize)
		} else {
			d.line(depth, "VarDecl %s %s", v.Type, d.text(v.Name))
		}
	case *ParmVarDecl:
		suffix := ""
		if v.IsArray {
			suffix = "[]"
		}
		d.line(depth, "ParmVarDecl %s %s%s", v.Type, d.text(v.Name), suffix)
	case *FunDecl:
		d.line(depth, "FunDecl %s %s", v.Retn, d.text(v.Name))
		for _, p := range v.Params {
			d.decl(depth+1, p)
		}
		if v.Body != nil {
			d.stmt(depth+1, v.Body)
		}
	}
}

func (d *dumper) stmt(depth int, stmt Stmt) {
	switch v := stmt.(type) {
	case *NullStmt:
		d.line(depth, "NullStmt")
	case *CompoundStmt:
		d.line(depth, "CompoundStmt")
		for _, decl := range v.Decls {
			d.decl(depth+1, decl)
		}
		for _, s := range v.Stmts {
			d.stmt(depth+1, s)
		}
	case *SelectionStmt:
		d.line(depth, "SelectionStmt")
		d.expr(depth+1, v.Cond)
		d.stmt(depth+1, v.Then)
		if v.Else != nil {
			d.stmt(depth+1, v.Else)
		}
	case *IterationStmt:
		d.line(depth, "IterationStmt")
		d.expr(depth+1, v.Cond)
		d.stmt(depth+1, v.Body)
	case *ReturnStmt:
		d.line(depth, "ReturnStmt")
		if v.Expr != nil {
			d.expr(depth+1, v.Expr)
		}
	case *ExprStmt:
		d.line(depth, "ExprStmt")
		d.expr(depth+1, v.Expr)
	}
}

func (d *dumper) expr(depth int, expr Expr) {
	switch v := expr.(type) {
	case *Number:
		d.line(depth, "Number %s %d", v.Type(), v.Value)
	case *VarRef:
		d.line(depth, "VarRef %s %s", v.Type(), d.text(v.Decl.DeclName()))
		if v.Index != nil {
			d.expr(depth+1, v.Index)
		}
	case *FunCall:
		d.line(depth, "FunCall %s %s", v.Type(), d.text(v.Decl.Name))
		for _, a := range v.Args {
			d.expr(depth+1, a)
		}
	case *BinaryExpr:
		d.line(depth, "BinaryExpr %s %s", v.Type(), v.Op)
		d.expr(depth+1, v.Lhs)
		d.expr(depth+1, v.Rhs)
	}
}
