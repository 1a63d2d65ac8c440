package ast

import "cminus/source"

// Decl is implemented by every declaration variant: VarDecl, ParmVarDecl,
// FunDecl.
type Decl interface {
	Node
	DeclName() source.Range
	DeclType() ExprType
}

// VarDecl is a scalar or array local/global variable declaration.
// ArraySize is -1 for a scalar.
type VarDecl struct {
	Base

	Type      ExprType
	Name      source.Range
	ArraySize int
}

func (d *VarDecl) DeclName() source.Range { return d.Name }
func (d *VarDecl) IsArray() bool          { return d.ArraySize >= 0 }

// DeclType returns TypeIntArray for an array declaration regardless of the
// stored element type, since C-minus has only int arrays; Type otherwise.
func (d *VarDecl) DeclType() ExprType {
	if d.IsArray() {
		return TypeIntArray
	}
	return d.Type
}

// ParmVarDecl is a function parameter declaration.
type ParmVarDecl struct {
	Base

	Type    ExprType
	Name    source.Range
	IsArray bool
}

func (d *ParmVarDecl) DeclName() source.Range { return d.Name }

// DeclType returns TypeIntArray for an array parameter regardless of the
// stored element type, mirroring VarDecl.DeclType.
func (d *ParmVarDecl) DeclType() ExprType {
	if d.IsArray {
		return TypeIntArray
	}
	return d.Type
}

// FunDecl is a function declaration. Body is nil until act_on_fun_decl_end
// closes it; the shell returned by act_on_fun_decl_start is installed into
// the enclosing scope before the body is parsed, so recursive calls resolve.
type FunDecl struct {
	Base

	Retn   ExprType
	Name   source.Range
	Params []*ParmVarDecl
	Body   *CompoundStmt
}

func (d *FunDecl) DeclName() source.Range { return d.Name }
func (d *FunDecl) DeclType() ExprType     { return d.Retn }
