package codegen

import "cminus/ast"

// genExpr evaluates e, leaving its r-value in $v0.
func (g *Generator) genExpr(e ast.Expr) {
	switch v := e.(type) {
	case *ast.Number:
		g.out.Instr("li $v0, %d", v.Value)
	case *ast.VarRef:
		g.genVarRef(v)
	case *ast.FunCall:
		g.genCall(v)
	case *ast.BinaryExpr:
		if v.Op == ast.OpAssign {
			g.genAssign(v)
		} else {
			g.genBinary(v)
		}
	}
}

// genVarRef evaluates a variable reference. A scalar loads its value; an
// unindexed array yields its base address (used only as a call argument or
// as the LHS base before indexing); an indexed reference computes the
// element address and loads through it.
func (g *Generator) genVarRef(v *ast.VarRef) {
	if v.Index != nil {
		g.genIndexAddr(v)
		g.out.Instr("lw $v0, 0($v0)")
		return
	}

	if v.Decl.DeclType() == ast.TypeIntArray {
		g.genDeclAddr(v.Decl)
		return
	}

	if off, ok := g.declOffset(v.Decl); ok {
		g.out.Instr("lw $v0, %d($sp)", off)
		return
	}
	g.out.Instr("lw $v0, %s", g.globals[v.Decl])
}

// genDeclAddr puts decl's base address in $v0: a stack-relative address for
// a local scalar or local array, the pointer already stored in its slot for
// an array parameter, or the label address for a global.
func (g *Generator) genDeclAddr(decl ast.Decl) {
	if off, ok := g.declOffset(decl); ok {
		if p, isParam := decl.(*ast.ParmVarDecl); isParam && p.IsArray {
			g.out.Instr("lw $v0, %d($sp)", off)
			return
		}
		g.out.Instr("addiu $v0, $sp, %d", off)
		return
	}
	g.out.Instr("la $v0, %s", g.globals[decl])
}

// genIndexAddr computes the address of an indexed element into $v0,
// stopping before the load so it can also serve as an assignment target.
func (g *Generator) genIndexAddr(v *ast.VarRef) {
	g.genExpr(v.Index)
	g.out.Instr("sll $v0, $v0, 2")

	temp := g.allocTemp()
	g.out.Instr("sw $v0, %d($sp)", temp)

	g.genDeclAddr(v.Decl)

	g.out.Instr("lw $t0, %d($sp)", temp)
	g.out.Instr("addu $v0, $v0, $t0")
	g.freeTemp()
}

// genLValueAddr computes the address a value should be stored at for an
// assignment whose LHS is ref.
func (g *Generator) genLValueAddr(ref *ast.VarRef) {
	if ref.Index != nil {
		g.genIndexAddr(ref)
		return
	}
	g.genDeclAddr(ref.Decl)
}

// genAssign implements the assignment protocol: compute the LHS
// address, spill it, evaluate the RHS, store through the spilled address,
// and leave the RHS value in $v0 as the expression's own value.
func (g *Generator) genAssign(expr *ast.BinaryExpr) {
	lhs := expr.Lhs.(*ast.VarRef)
	g.genLValueAddr(lhs)

	temp := g.allocTemp()
	g.out.Instr("sw $v0, %d($sp)", temp)

	g.genExpr(expr.Rhs)

	g.out.Instr("lw $t0, %d($sp)", temp)
	g.out.Instr("sw $v0, 0($t0)")
	g.freeTemp()
}

// genBinary implements the non-assignment binary protocol: evaluate
// the LHS, spill it, evaluate the RHS, reload the LHS into $t0, then apply
// the operator with LHS in $t0 and RHS in $v0.
func (g *Generator) genBinary(expr *ast.BinaryExpr) {
	g.genExpr(expr.Lhs)

	temp := g.allocTemp()
	g.out.Instr("sw $v0, %d($sp)", temp)

	g.genExpr(expr.Rhs)

	g.out.Instr("lw $t0, %d($sp)", temp)
	g.freeTemp()

	switch expr.Op {
	case ast.OpAdd:
		g.out.Instr("addu $v0, $t0, $v0")
	case ast.OpSub:
		g.out.Instr("subu $v0, $t0, $v0")
	case ast.OpMul:
		g.out.Instr("mult $t0, $v0")
		g.out.Instr("mflo $v0")
	case ast.OpDiv:
		g.out.Instr("div $t0, $v0")
		g.out.Instr("mflo $v0")
	case ast.OpLess:
		g.out.Instr("slt $v0, $t0, $v0")
	case ast.OpLessEqual:
		g.out.Instr("slt $v0, $v0, $t0")
		g.out.Instr("xori $v0, $v0, 1")
	case ast.OpGreater:
		g.out.Instr("slt $v0, $v0, $t0")
	case ast.OpGreaterEqual:
		g.out.Instr("slt $v0, $t0, $v0")
		g.out.Instr("xori $v0, $v0, 1")
	case ast.OpEqual:
		g.out.Instr("xor $v0, $t0, $v0")
		g.out.Instr("sltiu $v0, $v0, 1")
	case ast.OpNotEqual:
		g.out.Instr("xor $v0, $t0, $v0")
		g.out.Instr("sltu $v0, $zero, $v0")
	}
}

// genCall evaluates each argument in source order, writes it into the
// corresponding output-area slot (the first four also copied into
// $a0-$a3), then transfers control; the callee leaves its result in $v0.
func (g *Generator) genCall(call *ast.FunCall) {
	for i, arg := range call.Args {
		g.genExpr(arg)

		off := g.frame.OutputBase() + i*4
		g.out.Instr("sw $v0, %d($sp)", off)
		if i < 4 {
			g.out.Instr("move $a%d, $v0", i)
		}
	}

	g.out.Instr("jal %s", g.declName(call.Decl))
}
