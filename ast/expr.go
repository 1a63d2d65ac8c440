package ast

// Expr is implemented by every expression variant. Every variant embeds
// ExprBase, which carries the type computed once by the sema action that
// built the node.
type Expr interface {
	Node
	Type() ExprType
	SetType(ExprType)
}

// ExprBase is the base struct for all expression nodes.
type ExprBase struct {
	Base

	Typ ExprType
}

func (eb *ExprBase) Type() ExprType     { return eb.Typ }
func (eb *ExprBase) SetType(t ExprType) { eb.Typ = t }

// Number is an integer literal.
type Number struct {
	ExprBase

	Value int32
}

// VarRef is a reference to a variable or parameter, optionally indexed
// (`name` or `name[index]`). Decl is a non-owning back edge to the
// declaration it resolved to — a plain Go pointer, since Go's GC tolerates
// the cycle a stable-index/arena scheme exists to avoid in a manually
// managed language.
type VarRef struct {
	ExprBase

	Decl  Decl // *VarDecl or *ParmVarDecl
	Index Expr // nil if not indexed
}

// FunCall is a function call. Decl is a non-owning back edge to the FunDecl
// it resolved to.
type FunCall struct {
	ExprBase

	Decl *FunDecl
	Args []Expr
}

// BinaryOp is the closed set of binary operators, spanning the relational,
// additive, and multiplicative sets plus assignment.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpEqual
	OpNotEqual
	OpAssign
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpAssign:
		return "="
	default:
		return "?"
	}
}

// BinaryExpr is a binary operator application, including assignment
// (Op == OpAssign, Lhs guaranteed by the parser to be a *VarRef).
type BinaryExpr struct {
	ExprBase

	Op       BinaryOp
	Lhs, Rhs Expr
}
