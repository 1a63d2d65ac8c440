package sema

import (
	"math"
	"strconv"

	"cminus/ast"
	"cminus/report"
	"cminus/source"
)

// Actions is the semantic-action surface the Parser calls into while it
// recognizes the grammar. It is a plain struct rather than an interface:
// C-minus has exactly one backend consumer of a parse (there is no
// type-check-only driver in this system), so the extra indirection an
// interface buys chai's walk package has no payoff here.
type Actions struct {
	Mgr   *report.Manager
	Scope *Scope
}

// New returns a fresh Actions with an empty scope stack.
func New(mgr *report.Manager) *Actions {
	return &Actions{Mgr: mgr, Scope: NewScope()}
}

// ActOnProgramStart opens the global scope frame and returns a new, empty
// Program.
func (a *Actions) ActOnProgramStart() *ast.Program {
	a.Scope.Push(FrameFunBody) // the global frame; kind is irrelevant at this level
	return &ast.Program{}
}

// ActOnProgramEnd closes the global scope frame.
func (a *Actions) ActOnProgramEnd(prog *ast.Program, span source.Range) *ast.Program {
	if n := len(a.Scope.frames); n > 0 {
		a.Scope.frames = a.Scope.frames[:n-1]
	}
	prog.Span_ = span
	return prog
}

// ActOnTopLevelDecl appends decl to prog.Decls.
func (a *Actions) ActOnTopLevelDecl(prog *ast.Program, decl ast.Decl) {
	if decl != nil {
		prog.Decls = append(prog.Decls, decl)
	}
}

// ActOnVarDecl validates and installs a variable declaration.
// arraySize is -1 for a scalar declaration.
func (a *Actions) ActOnVarDecl(typ ast.ExprType, name string, nameLoc source.Location, arraySize int, span source.Range) (*ast.VarDecl, bool) {
	if typ == ast.TypeVoid {
		a.Mgr.Report(nameLoc, report.SemaVarCannotBeVoid)
		return nil, false
	}

	decl := &ast.VarDecl{
		Base:      ast.Base{Span_: span},
		Type:      typ,
		Name:      source.Range{Begin: nameLoc, Len: len(name)},
		ArraySize: arraySize,
	}

	if !a.Scope.Declare(name, decl) {
		a.Mgr.Report(nameLoc, report.SemaRedefinition, name)
		return decl, false
	}
	return decl, true
}

// ActOnParamDecl validates and installs a parameter declaration.
func (a *Actions) ActOnParamDecl(typ ast.ExprType, name string, nameLoc source.Location, isArray bool, span source.Range) (*ast.ParmVarDecl, bool) {
	if typ == ast.TypeVoid {
		a.Mgr.Report(nameLoc, report.SemaVarCannotBeVoid)
		return nil, false
	}

	decl := &ast.ParmVarDecl{
		Base:    ast.Base{Span_: span},
		Type:    typ,
		Name:    source.Range{Begin: nameLoc, Len: len(name)},
		IsArray: isArray,
	}

	if !a.Scope.Declare(name, decl) {
		a.Mgr.Report(nameLoc, report.SemaRedefinition, name)
		return decl, false
	}
	return decl, true
}

// ActOnFunDeclStart creates a FunDecl shell and installs it in the enclosing
// (global) scope immediately, so the function can call itself recursively
// while its own body is still being parsed.
func (a *Actions) ActOnFunDeclStart(retn ast.ExprType, name string, nameLoc source.Location) (*ast.FunDecl, bool) {
	decl := &ast.FunDecl{
		Retn: retn,
		Name: source.Range{Begin: nameLoc, Len: len(name)},
	}

	if !a.Scope.Declare(name, decl) {
		a.Mgr.Report(nameLoc, report.SemaRedefinition, name)
		return decl, false
	}
	return decl, true
}

// ActOnFunDeclEnd attaches params and body to fn and returns the completed
// node.
func (a *Actions) ActOnFunDeclEnd(fn *ast.FunDecl, params []*ast.ParmVarDecl, body *ast.CompoundStmt, span source.Range) *ast.FunDecl {
	fn.Params = params
	fn.Body = body
	fn.Span_ = span
	return fn
}

// ActOnCompoundStmt packages decls and stmts into a CompoundStmt.
func (a *Actions) ActOnCompoundStmt(decls []*ast.VarDecl, stmts []ast.Stmt, span source.Range) *ast.CompoundStmt {
	return &ast.CompoundStmt{Base: ast.Base{Span_: span}, Decls: decls, Stmts: stmts}
}

// ActOnReturnStmt packages a return statement. expr is nil for a bare
// `return;`.
func (a *Actions) ActOnReturnStmt(expr ast.Expr, returnLoc source.Location, span source.Range) *ast.ReturnStmt {
	return &ast.ReturnStmt{Base: ast.Base{Span_: span}, Expr: expr, ReturnLoc: returnLoc}
}

// ActOnSelectionStmt packages an if/else statement. els is nil when there is
// no else clause.
func (a *Actions) ActOnSelectionStmt(cond ast.Expr, then, els ast.Stmt, span source.Range) *ast.SelectionStmt {
	return &ast.SelectionStmt{Base: ast.Base{Span_: span}, Cond: cond, Then: then, Else: els}
}

// ActOnIterationStmt packages a while statement.
func (a *Actions) ActOnIterationStmt(cond ast.Expr, body ast.Stmt, span source.Range) *ast.IterationStmt {
	return &ast.IterationStmt{Base: ast.Base{Span_: span}, Cond: cond, Body: body}
}

// ActOnNullStmt packages a bare `;`.
func (a *Actions) ActOnNullStmt(span source.Range) *ast.NullStmt {
	return &ast.NullStmt{Base: ast.Base{Span_: span}}
}

// ActOnExprStmt packages an expression used as a statement.
func (a *Actions) ActOnExprStmt(expr ast.Expr, span source.Range) *ast.ExprStmt {
	return &ast.ExprStmt{Base: ast.Base{Span_: span}, Expr: expr}
}

// ActOnNumber parses a decimal integer literal, clamping and reporting
// parser_number_too_big on overflow of the signed 32-bit range.
func (a *Actions) ActOnNumber(text string, loc source.Location, span source.Range) *ast.Number {
	v, err := strconv.ParseInt(text, 10, 64)
	clamped := false
	if err != nil || v > math.MaxInt32 {
		v = math.MaxInt32
		clamped = true
	}
	if clamped {
		a.Mgr.Report(loc, report.ParserNumberTooBig)
	}

	return &ast.Number{
		ExprBase: ast.ExprBase{Base: ast.Base{Span_: span}, Typ: ast.TypeInt},
		Value:    int32(v),
	}
}

// ActOnVar resolves name to its declaration and builds a VarRef, optionally
// indexed. The resulting expression's type is Int if indexed, else the
// declaration's own type (scalar Int or IntArray).
func (a *Actions) ActOnVar(name string, nameLoc source.Location, index ast.Expr, span source.Range) (*ast.VarRef, bool) {
	decl, ok := a.Scope.Lookup(name)
	if !ok {
		a.Mgr.Report(nameLoc, report.SemaUndeclaredIdentifier, name)
		return nil, false
	}
	if _, isFun := decl.(*ast.FunDecl); isFun {
		a.Mgr.Report(nameLoc, report.SemaVarIsNotAVar)
		return nil, false
	}

	typ := decl.DeclType()
	if index != nil {
		typ = ast.TypeInt
	}

	return &ast.VarRef{
		ExprBase: ast.ExprBase{Base: ast.Base{Span_: span}, Typ: typ},
		Decl:     decl,
		Index:    index,
	}, true
}

// ActOnCall resolves name to a FunDecl and builds a FunCall. No arity or
// argument-type checking is performed beyond resolution (current design).
func (a *Actions) ActOnCall(name string, nameLoc source.Location, args []ast.Expr, span source.Range) (*ast.FunCall, bool) {
	decl, ok := a.Scope.Lookup(name)
	if !ok {
		a.Mgr.Report(nameLoc, report.SemaUndeclaredIdentifier, name)
		return nil, false
	}
	fn, isFun := decl.(*ast.FunDecl)
	if !isFun {
		a.Mgr.Report(nameLoc, report.SemaFunIsNotAFun)
		return nil, false
	}

	return &ast.FunCall{
		ExprBase: ast.ExprBase{Base: ast.Base{Span_: span}, Typ: fn.Retn},
		Decl:     fn,
		Args:     args,
	}, true
}

// ActOnAssign builds an assignment BinaryExpr. lhs is guaranteed by the
// Parser to be a *ast.VarRef.
func (a *Actions) ActOnAssign(lhs, rhs ast.Expr, span source.Range) *ast.BinaryExpr {
	return &ast.BinaryExpr{
		ExprBase: ast.ExprBase{Base: ast.Base{Span_: span}, Typ: rhs.Type()},
		Op:       ast.OpAssign,
		Lhs:      lhs,
		Rhs:      rhs,
	}
}

// ActOnBinaryExpr builds a non-assignment binary expression; its type is
// always Int (relational and arithmetic operators both yield Int).
func (a *Actions) ActOnBinaryExpr(lhs, rhs ast.Expr, op ast.BinaryOp, span source.Range) *ast.BinaryExpr {
	return &ast.BinaryExpr{
		ExprBase: ast.ExprBase{Base: ast.Base{Span_: span}, Typ: ast.TypeInt},
		Op:       op,
		Lhs:      lhs,
		Rhs:      rhs,
	}
}
