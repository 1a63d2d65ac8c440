package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cminus/ast"
)

func TestLookupSearchesInnerToOuter(t *testing.T) {
	s := NewScope()
	pop := s.Push(FrameFunBody)
	defer pop()

	outer := &ast.VarDecl{Type: ast.TypeInt}
	assert.True(t, s.Declare("x", outer))

	popInner := s.Push(FrameCompoundStmt)
	inner := &ast.VarDecl{Type: ast.TypeInt}
	assert.True(t, s.Declare("x", inner))

	found, ok := s.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, inner, found)

	popInner()

	found, ok = s.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, outer, found)
}

func TestDeclareFailsOnCollisionInSameFrame(t *testing.T) {
	s := NewScope()
	pop := s.Push(FrameFunBody)
	defer pop()

	assert.True(t, s.Declare("x", &ast.VarDecl{}))
	assert.False(t, s.Declare("x", &ast.VarDecl{}))
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	s := NewScope()
	pop := s.Push(FrameFunBody)
	defer pop()

	_, ok := s.Lookup("nonexistent")
	assert.False(t, ok)
}
