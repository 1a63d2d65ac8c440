package codegen

import "cminus/ast"

// raOffset and fpOffset are the fixed offsets of the two callee-saved
// registers within the saved area, relative to $sp.
const raOffset = 0
const fpOffset = 4

// genFunction emits name's prologue, body, epilogue label, and epilogue,
// per the four-step prologue/spill/body/epilogue recipe.
func (g *Generator) genFunction(name string, fn *ast.FunDecl) {
	g.fnName = name
	g.epilogueLabel = g.newLabel("epilogue")
	total := g.frame.Total()

	g.out.Label(name)
	g.out.Instr("addiu $sp, $sp, -%d", total)
	g.out.Instr("sw $ra, %d($sp)", g.frame.SavedBase()+raOffset)
	g.out.Instr("sw $fp, %d($sp)", g.frame.SavedBase()+fpOffset)
	g.out.Instr("addiu $fp, $sp, %d", total)
	g.genParamSpill(fn, total)

	g.genCompoundStmt(fn.Body)

	g.out.Label(g.epilogueLabel)
	g.out.Instr("lw $ra, %d($sp)", g.frame.SavedBase()+raOffset)
	g.out.Instr("lw $fp, %d($sp)", g.frame.SavedBase()+fpOffset)
	g.out.Instr("addiu $sp, $sp, %d", total)
	g.out.Instr("jr $ra")
}

// genParamSpill copies each incoming parameter into its own input-area slot:
// the first four arrive in $a0-$a3, the rest arrive in the caller's output
// area, which sits just above this frame at $sp+total once the prologue has
// subtracted the frame size; argument i is in that area's slot i, where
// genCall stored it (glossary: "input" is storage for this
// function's own parameters when spilled, not a shared cross-frame area).
func (g *Generator) genParamSpill(fn *ast.FunDecl, total int) {
	for i, p := range fn.Params {
		off := g.frame.InputBase() + g.frame.Offsets[p]
		if i < 4 {
			g.out.Instr("sw $a%d, %d($sp)", i, off)
		} else {
			g.out.Instr("lw $t0, %d($sp)", total+i*4)
			g.out.Instr("sw $t0, %d($sp)", off)
		}
	}
}
