// Package codegen walks a resolved AST and emits MIPS O32 assembly text,
// split into gen_def.go/gen_expr.go/gen_stmt.go/generator.go by node kind.
package codegen

import (
	"fmt"

	"cminus/ast"
	"cminus/frame"
	"cminus/source"
)

// Generator emits one function's body. A fresh Generator is constructed for
// every FunDecl in GenProgram's loop, so no mutable state bleeds between
// functions.
type Generator struct {
	out   *asmWriter
	file  *source.File
	frame *frame.Info

	globals map[ast.Decl]string

	fnName         string
	labelCounter   int
	epilogueLabel  string
	currentTempPos int
}

// GenProgram emits assembly for every declaration in prog, in source order:
// a .data section with one word (or word array) per top-level VarDecl,
// followed by a .text section with one label per FunDecl.
func GenProgram(file *source.File, prog *ast.Program) string {
	globals := make(map[ast.Decl]string)

	w := &asmWriter{}
	w.Directive(".data")
	for _, d := range prog.Decls {
		if v, ok := d.(*ast.VarDecl); ok {
			name := file.Text(v.Name)
			label := "g_" + name
			globals[v] = label

			size := 4
			if v.IsArray() {
				size = 4 * v.ArraySize
			}
			w.Directive("%s:\t.space %d", label, size)
		}
	}
	w.Blank()

	w.Directive(".text")
	for _, d := range prog.Decls {
		fn, ok := d.(*ast.FunDecl)
		if !ok || fn.Body == nil {
			continue
		}

		name := file.Text(fn.Name)
		w.Directive(".globl %s", name)

		g := &Generator{
			out:     w,
			file:    file,
			frame:   frame.Compute(fn),
			globals: globals,
		}
		g.genFunction(name, fn)
		w.Blank()
	}

	return w.String()
}

// newLabel returns a fresh label, unique across the whole program because
// it is prefixed by the owning function's name (itself unique, since sema
// rejects redefinition at global scope) and a monotonic per-function
// counter.
func (g *Generator) newLabel(prefix string) string {
	g.labelCounter++
	return fmt.Sprintf(".L%s_%s%d", g.fnName, prefix, g.labelCounter)
}

// declName resolves a Decl's source name to a Go string.
func (g *Generator) declName(d ast.Decl) string {
	return g.file.Text(d.DeclName())
}

// declOffset resolves decl's $sp-relative offset: g.frame.Offsets stores
// each local/parameter's position relative to the start of its own area,
// so the area's base must be added here to get the final offset a store or
// load instruction can use. A parameter's area is InputBase, a local
// variable's is LocalBase.
func (g *Generator) declOffset(decl ast.Decl) (int, bool) {
	off, ok := g.frame.Offsets[decl]
	if !ok {
		return 0, false
	}
	if _, isParam := decl.(*ast.ParmVarDecl); isParam {
		return g.frame.InputBase() + off, true
	}
	return g.frame.LocalBase() + off, true
}

// allocTemp reserves the next temp slot in the frame's temp area and
// returns its $sp-relative byte offset, bumping currentTempPos.
func (g *Generator) allocTemp() int {
	off := g.frame.TempBase() + g.currentTempPos
	g.currentTempPos += 4
	return off
}

// freeTemp releases the most recently allocated temp slot.
func (g *Generator) freeTemp() {
	g.currentTempPos -= 4
}
