package codegen

import "cminus/ast"

func (g *Generator) genCompoundStmt(stmt *ast.CompoundStmt) {
	if stmt == nil {
		return
	}
	for _, s := range stmt.Stmts {
		g.genStmt(s)
	}
}

func (g *Generator) genStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.NullStmt:
		// no code
	case *ast.CompoundStmt:
		g.genCompoundStmt(v)
	case *ast.SelectionStmt:
		g.genSelectionStmt(v)
	case *ast.IterationStmt:
		g.genIterationStmt(v)
	case *ast.ReturnStmt:
		g.genReturnStmt(v)
	case *ast.ExprStmt:
		g.genExpr(v.Expr)
	}
}

// genSelectionStmt implements the if/if-else label templates.
func (g *Generator) genSelectionStmt(stmt *ast.SelectionStmt) {
	g.genExpr(stmt.Cond)

	if stmt.Else == nil {
		lend := g.newLabel("end")
		g.out.Instr("beq $v0, $zero, %s", lend)
		g.genStmt(stmt.Then)
		g.out.Label(lend)
		return
	}

	lelse := g.newLabel("else")
	lend := g.newLabel("end")
	g.out.Instr("beq $v0, $zero, %s", lelse)
	g.genStmt(stmt.Then)
	g.out.Instr("j %s", lend)
	g.out.Label(lelse)
	g.genStmt(stmt.Else)
	g.out.Label(lend)
}

// genIterationStmt implements the while label template.
func (g *Generator) genIterationStmt(stmt *ast.IterationStmt) {
	ltop := g.newLabel("top")
	lend := g.newLabel("end")

	g.out.Label(ltop)
	g.genExpr(stmt.Cond)
	g.out.Instr("beq $v0, $zero, %s", lend)
	g.genStmt(stmt.Body)
	g.out.Instr("j %s", ltop)
	g.out.Label(lend)
}

// genReturnStmt evaluates expr (if any) into $v0 then branches to the
// function's epilogue label.
func (g *Generator) genReturnStmt(stmt *ast.ReturnStmt) {
	if stmt.Expr != nil {
		g.genExpr(stmt.Expr)
	}
	g.out.Instr("j %s", g.epilogueLabel)
}
