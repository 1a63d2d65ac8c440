package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cminus/ast"
	"cminus/report"
	"cminus/source"
)

func newActions() *Actions {
	mgr := report.New(nil, report.LogLevelSilent)
	a := New(mgr)
	a.Scope.Push(FrameFunBody)
	return a
}

func TestActOnVarDeclRejectsVoid(t *testing.T) {
	a := newActions()
	decl, ok := a.ActOnVarDecl(ast.TypeVoid, "x", 0, -1, source.Range{})
	assert.False(t, ok)
	assert.Nil(t, decl)
	assert.True(t, a.Mgr.AnyErrors())
}

func TestActOnVarDeclRejectsRedefinition(t *testing.T) {
	a := newActions()
	_, ok := a.ActOnVarDecl(ast.TypeInt, "x", 0, -1, source.Range{})
	assert.True(t, ok)

	_, ok = a.ActOnVarDecl(ast.TypeInt, "x", 5, -1, source.Range{})
	assert.False(t, ok)
	assert.True(t, a.Mgr.AnyErrors())
}

func TestActOnVarResolvesUndeclaredIdentifier(t *testing.T) {
	a := newActions()
	ref, ok := a.ActOnVar("missing", 0, nil, source.Range{})
	assert.False(t, ok)
	assert.Nil(t, ref)
	assert.True(t, a.Mgr.AnyErrors())
}

func TestActOnNumberClampsOverflow(t *testing.T) {
	a := newActions()
	n := a.ActOnNumber("99999999999999", 0, source.Range{})
	assert.Equal(t, int32(2147483647), n.Value)
	assert.True(t, a.Mgr.AnyErrors())
}

func TestActOnCallRejectsVariableAsFunction(t *testing.T) {
	a := newActions()
	a.ActOnVarDecl(ast.TypeInt, "x", 0, -1, source.Range{})

	call, ok := a.ActOnCall("x", 0, nil, source.Range{})
	assert.False(t, ok)
	assert.Nil(t, call)
}

func TestActOnVarIndexedYieldsIntType(t *testing.T) {
	a := newActions()
	a.ActOnVarDecl(ast.TypeInt, "arr", 0, 10, source.Range{})

	index := a.ActOnNumber("0", 0, source.Range{})
	ref, ok := a.ActOnVar("arr", 0, index, source.Range{})
	assert.True(t, ok)
	assert.Equal(t, ast.TypeInt, ref.Type())
}
