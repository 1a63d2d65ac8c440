// Package frame computes, for each function, the stack frame layout
// Codegen emits prologues and variable accesses against. It is a pre-pass
// separated from the emitter proper, keeping per-function metadata
// computation apart from the tree-walking emitter in codegen.
package frame

import "cminus/ast"

// wordSize is the MIPS O32 word width in bytes.
const wordSize = 4

// argScratch is the O32-mandated minimum argument build area, reserved even
// when a function's calls pass fewer than four words.
const argScratch = 16

// Info is the computed frame layout for one function. All sizes are in
// bytes, word-aligned to 4. The frame grows downward from $sp in the order
// output | temp | saved | local | input (higher addresses last).
type Info struct {
	OutputSize int
	TempSize   int
	SavedSize  int
	LocalSize  int
	InputSize  int

	// Offsets maps each VarDecl/ParmVarDecl in the function to its byte
	// offset from the start of its own area (LocalBase for a VarDecl,
	// InputBase for a ParmVarDecl), not from $sp.
	Offsets map[ast.Decl]int
}

// Total returns the double-word (8-byte) aligned grand total frame size.
func (in *Info) Total() int {
	total := in.OutputSize + in.TempSize + in.SavedSize + in.LocalSize + in.InputSize
	return align(total, 8)
}

// OutputBase, TempBase, SavedBase, LocalBase, InputBase return the offset
// (relative to $sp) at which each area begins, per the fixed area ordering.
func (in *Info) OutputBase() int { return 0 }
func (in *Info) TempBase() int   { return in.OutputSize }
func (in *Info) SavedBase() int  { return in.OutputSize + in.TempSize }
func (in *Info) LocalBase() int  { return in.OutputSize + in.TempSize + in.SavedSize }
func (in *Info) InputBase() int {
	return in.OutputSize + in.TempSize + in.SavedSize + in.LocalSize
}

func align(n, to int) int {
	if r := n % to; r != 0 {
		return n + (to - r)
	}
	return n
}

// Compute lays out fn's frame: saved-register space, local-variable offsets,
// the output-area size needed by the calls fn makes, and the upper bound on
// live expression temporaries.
func Compute(fn *ast.FunDecl) *Info {
	in := &Info{Offsets: make(map[ast.Decl]int)}

	hasCall := false
	maxArgBytes := 0
	walkCalls(fn.Body, func(argc int) {
		hasCall = true
		if bytes := argc * wordSize; bytes > maxArgBytes {
			maxArgBytes = bytes
		}
	})

	if hasCall {
		in.OutputSize = maxArgBytes
		if in.OutputSize < argScratch {
			in.OutputSize = argScratch
		}
		in.SavedSize = 2 * wordSize // $ra + $fp
	}

	localOffset := 0
	for _, decl := range localVarDecls(fn.Body) {
		size := wordSize
		if decl.IsArray() {
			size = wordSize * decl.ArraySize
		}
		in.Offsets[decl] = localOffset
		localOffset += size
	}
	in.LocalSize = align(localOffset, wordSize)
	if in.SavedSize == 0 {
		// every prologue saves $ra and $fp, even in a leaf function
		in.SavedSize = 2 * wordSize
	}

	inputOffset := 0
	for _, p := range fn.Params {
		in.Offsets[p] = inputOffset
		inputOffset += wordSize
	}
	in.InputSize = align(inputOffset, wordSize)

	in.TempSize = align(exprDepth(fn.Body)*wordSize, wordSize)

	return in
}

// localVarDecls collects every local VarDecl within fn's body, including
// nested compound statements.
func localVarDecls(body *ast.CompoundStmt) []*ast.VarDecl {
	if body == nil {
		return nil
	}

	var out []*ast.VarDecl
	out = append(out, body.Decls...)
	for _, s := range body.Stmts {
		out = append(out, localVarDeclsInStmt(s)...)
	}
	return out
}

func localVarDeclsInStmt(s ast.Stmt) []*ast.VarDecl {
	switch v := s.(type) {
	case *ast.CompoundStmt:
		return localVarDecls(v)
	case *ast.SelectionStmt:
		out := localVarDeclsInStmt(v.Then)
		if v.Else != nil {
			out = append(out, localVarDeclsInStmt(v.Else)...)
		}
		return out
	case *ast.IterationStmt:
		return localVarDeclsInStmt(v.Body)
	default:
		return nil
	}
}

// walkCalls invokes report for every FunCall reachable from body, passing
// its argument count.
func walkCalls(body *ast.CompoundStmt, report func(argc int)) {
	if body == nil {
		return
	}
	for _, s := range body.Stmts {
		walkCallsInStmt(s, report)
	}
}

func walkCallsInStmt(s ast.Stmt, report func(argc int)) {
	switch v := s.(type) {
	case *ast.CompoundStmt:
		walkCalls(v, report)
	case *ast.SelectionStmt:
		walkCallsInExpr(v.Cond, report)
		walkCallsInStmt(v.Then, report)
		if v.Else != nil {
			walkCallsInStmt(v.Else, report)
		}
	case *ast.IterationStmt:
		walkCallsInExpr(v.Cond, report)
		walkCallsInStmt(v.Body, report)
	case *ast.ReturnStmt:
		if v.Expr != nil {
			walkCallsInExpr(v.Expr, report)
		}
	case *ast.ExprStmt:
		walkCallsInExpr(v.Expr, report)
	}
}

func walkCallsInExpr(e ast.Expr, report func(argc int)) {
	switch v := e.(type) {
	case *ast.FunCall:
		report(len(v.Args))
		for _, a := range v.Args {
			walkCallsInExpr(a, report)
		}
	case *ast.BinaryExpr:
		walkCallsInExpr(v.Lhs, report)
		walkCallsInExpr(v.Rhs, report)
	case *ast.VarRef:
		if v.Index != nil {
			walkCallsInExpr(v.Index, report)
		}
	}
}

// exprDepth computes an upper bound on simultaneously-live expression
// temporaries within body, by a max-stack-depth walk whose per-node-kind
// shape mirrors codegen.genExpr's own spill/reload recursion, so the
// pre-pass and the emitter agree by construction.
func exprDepth(body *ast.CompoundStmt) int {
	if body == nil {
		return 0
	}

	max := 0
	for _, s := range body.Stmts {
		if d := stmtExprDepth(s); d > max {
			max = d
		}
	}
	return max
}

func stmtExprDepth(s ast.Stmt) int {
	switch v := s.(type) {
	case *ast.CompoundStmt:
		return exprDepth(v)
	case *ast.SelectionStmt:
		d := binExprDepth(v.Cond)
		if t := stmtExprDepth(v.Then); t > d {
			d = t
		}
		if v.Else != nil {
			if e := stmtExprDepth(v.Else); e > d {
				d = e
			}
		}
		return d
	case *ast.IterationStmt:
		d := binExprDepth(v.Cond)
		if b := stmtExprDepth(v.Body); b > d {
			d = b
		}
		return d
	case *ast.ReturnStmt:
		if v.Expr != nil {
			return binExprDepth(v.Expr)
		}
		return 0
	case *ast.ExprStmt:
		return binExprDepth(v.Expr)
	default:
		return 0
	}
}

// binExprDepth counts one live temp slot per nested non-leaf BinaryExpr,
// matching the one-spill-per-binary-op protocol of codegen's expression
// evaluator.
func binExprDepth(e ast.Expr) int {
	switch v := e.(type) {
	case *ast.BinaryExpr:
		lhs := binExprDepth(v.Lhs)
		rhs := binExprDepth(v.Rhs)
		inner := lhs
		if rhs > inner {
			inner = rhs
		}
		return 1 + inner
	case *ast.FunCall:
		max := 0
		for _, a := range v.Args {
			if d := binExprDepth(a); d > max {
				max = d
			}
		}
		return max
	case *ast.VarRef:
		if v.Index != nil {
			// genIndexAddr spills the scaled index to its own temp slot
			// while it computes the base address, on top of whatever
			// depth the index expression itself needs.
			return 1 + binExprDepth(v.Index)
		}
		return 0
	default:
		return 0
	}
}
