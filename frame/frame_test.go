package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cminus/ast"
)

// buildFunDecl constructs a small FunDecl: fn(int n) { int a[4]; return g(n, a); }
// g is a two-argument call; its own FunDecl is irrelevant to frame.Compute,
// which only inspects fn's own body.
func buildFunDecl() *ast.FunDecl {
	param := &ast.ParmVarDecl{Type: ast.TypeInt, IsArray: false}
	local := &ast.VarDecl{Type: ast.TypeInt, ArraySize: 4}

	paramRef := &ast.VarRef{Decl: param}
	arrayRef := &ast.VarRef{Decl: local}
	call := &ast.FunCall{Args: []ast.Expr{paramRef, arrayRef}}

	body := &ast.CompoundStmt{
		Decls: []*ast.VarDecl{local},
		Stmts: []ast.Stmt{
			&ast.ReturnStmt{Expr: call},
		},
	}

	return &ast.FunDecl{Retn: ast.TypeInt, Params: []*ast.ParmVarDecl{param}, Body: body}
}

func TestComputeTotalIsDoubleWordAligned(t *testing.T) {
	in := Compute(buildFunDecl())
	assert.Equal(t, 0, in.Total()%8)
}

func TestComputeOutputSizeReservesO32Scratch(t *testing.T) {
	in := Compute(buildFunDecl())
	assert.GreaterOrEqual(t, in.OutputSize, 16)
}

func TestComputeOffsetsDoNotOverlap(t *testing.T) {
	fn := buildFunDecl()
	in := Compute(fn)

	type region struct{ lo, hi int }
	var regions []region

	local := fn.Body.Decls[0]
	localOff := in.Offsets[local]
	regions = append(regions, region{in.LocalBase() + localOff, in.LocalBase() + localOff + 16})

	param := fn.Params[0]
	paramOff := in.Offsets[param]
	regions = append(regions, region{in.InputBase() + paramOff, in.InputBase() + paramOff + 4})

	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			overlap := regions[i].lo < regions[j].hi && regions[j].lo < regions[i].hi
			assert.False(t, overlap, "regions %v and %v overlap", regions[i], regions[j])
		}
	}
}

func TestComputeNoCallsReservesNoOutputArea(t *testing.T) {
	fn := &ast.FunDecl{
		Retn: ast.TypeInt,
		Body: &ast.CompoundStmt{
			Stmts: []ast.Stmt{&ast.ReturnStmt{Expr: &ast.Number{Value: 0}}},
		},
	}
	in := Compute(fn)
	assert.Equal(t, 0, in.OutputSize)
}
