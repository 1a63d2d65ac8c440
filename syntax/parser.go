package syntax

import (
	"cminus/ast"
	"cminus/report"
	"cminus/sema"
	"cminus/source"
)

// Parser recognizes the C-minus grammar by LL(3) recursive descent, calling
// into sema.Actions for every node it builds rather than constructing AST
// nodes itself. Grounded on chai/bootstrap/syntax/parser.go's next/got/
// assert/want/reject primitives, widened from one-word to three-word
// lookahead per the original cminus::Parser's lookahead_words[2] + peek_word
// ring, expressed here as cur plus a 2-element la array refilled on every
// consume() rather than via std::exchange.
type Parser struct {
	s   *Scanner
	act *sema.Actions

	cur Word
	la  [2]Word

	ok bool
}

// NewParser creates a Parser scanning s, calling semantic actions into act.
func NewParser(s *Scanner, act *sema.Actions) *Parser {
	p := &Parser{s: s, act: act, ok: true}
	p.cur = s.NextWord()
	p.la[0] = s.NextWord()
	p.la[1] = s.NextWord()
	return p
}

// Lookahead(0) is the current word; Lookahead(1) and Lookahead(2) are the
// next two.
func (p *Parser) Lookahead(n int) Word {
	switch n {
	case 0:
		return p.cur
	case 1:
		return p.la[0]
	default:
		return p.la[1]
	}
}

// consume shifts the lookahead window forward by one word, pulling a fresh
// word from the Scanner into the vacated slot.
func (p *Parser) consume() Word {
	w := p.cur
	p.cur = p.la[0]
	p.la[0] = p.la[1]
	p.la[1] = p.s.NextWord()
	return w
}

func (p *Parser) fail() {
	p.ok = false
}

// expect reports parser_expected_token and fails if the current word is not
// cat, otherwise consumes and returns it.
func (p *Parser) expect(cat report.Category) (Word, bool) {
	if p.cur.Category != cat {
		p.act.Mgr.Report(p.cur.Lexeme.Begin, report.ParserExpectedToken, cat)
		p.fail()
		return Word{}, false
	}
	return p.consume(), true
}

func (p *Parser) text(w Word) string {
	return p.s.file.Text(w.Lexeme)
}

// -----------------------------------------------------------------------------

// ParseProgram parses an entire translation unit, which must hold at least
// one declaration. It returns (nil, false) if any subtree failed.
func (p *Parser) ParseProgram() (*ast.Program, bool) {
	start := p.cur.Lexeme.Begin
	prog := p.act.ActOnProgramStart()

	for {
		decl := p.declaration()
		if decl == nil {
			return nil, false
		}
		p.act.ActOnTopLevelDecl(prog, decl)
		if p.cur.Category == report.Eof {
			break
		}
	}

	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	p.act.ActOnProgramEnd(prog, span)
	return prog, p.ok
}

// declaration disambiguates var-declaration from fun-declaration on the
// 2-word prefix `type ID`: a following '(' means a function.
func (p *Parser) declaration() ast.Decl {
	if p.Lookahead(2).Category == report.OpenParen {
		return p.funDeclaration()
	}
	return p.varDeclaration()
}

func (p *Parser) typeSpecifier() (ast.ExprType, bool) {
	switch p.cur.Category {
	case report.Int:
		p.consume()
		return ast.TypeInt, true
	case report.Void:
		p.consume()
		return ast.TypeVoid, true
	default:
		p.act.Mgr.Report(p.cur.Lexeme.Begin, report.ParserExpectedType)
		p.fail()
		return ast.TypeVoid, false
	}
}

// varDeclaration parses `type ID [ '[' NUM ']' ] ';'`.
func (p *Parser) varDeclaration() ast.Decl {
	start := p.cur.Lexeme.Begin
	typ, ok := p.typeSpecifier()
	if !ok {
		return nil
	}

	idWord, ok := p.expect(report.Identifier)
	if !ok {
		return nil
	}
	name := p.text(idWord)

	arraySize := -1
	if p.cur.Category == report.OpenBracket {
		p.consume()
		numWord, ok := p.expect(report.Number)
		if !ok {
			return nil
		}
		n := p.act.ActOnNumber(p.text(numWord), numWord.Lexeme.Begin, numWord.Lexeme)
		arraySize = int(n.Value)
		if _, ok := p.expect(report.CloseBracket); !ok {
			return nil
		}
	}

	if _, ok := p.expect(report.Semicolon); !ok {
		return nil
	}

	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	decl, ok := p.act.ActOnVarDecl(typ, name, idWord.Lexeme.Begin, arraySize, span)
	if !ok && decl == nil {
		// No node to continue with (e.g. a void-typed declaration): return a
		// genuine nil ast.Decl, not an interface wrapping a nil *VarDecl.
		return nil
	}
	return decl
}

// funDeclaration parses `type ID '(' params ')' compoundStmt`. The FunDecl
// shell is installed into the enclosing scope before params/body are parsed,
// so the function may call itself; the param scope is pushed before params
// and stays active across the body so parameters shadow globals and
// coexist with locals.
func (p *Parser) funDeclaration() ast.Decl {
	start := p.cur.Lexeme.Begin
	retn, ok := p.typeSpecifier()
	if !ok {
		return nil
	}

	idWord, ok := p.expect(report.Identifier)
	if !ok {
		return nil
	}
	name := p.text(idWord)

	fn, _ := p.act.ActOnFunDeclStart(retn, name, idWord.Lexeme.Begin)

	if _, ok := p.expect(report.OpenParen); !ok {
		return nil
	}

	popParams := p.act.Scope.Push(sema.FrameFunParams)
	defer popParams()

	params := p.params()
	if params == nil && !p.ok {
		return nil
	}

	if _, ok := p.expect(report.CloseParen); !ok {
		return nil
	}

	body := p.compoundStmtSharingScope()
	if body == nil {
		return nil
	}

	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	return p.act.ActOnFunDeclEnd(fn, params, body, span)
}

// params parses `void | paramList`.
func (p *Parser) params() []*ast.ParmVarDecl {
	if p.cur.Category == report.Void && p.Lookahead(1).Category == report.CloseParen {
		p.consume()
		return []*ast.ParmVarDecl{}
	}

	var out []*ast.ParmVarDecl
	for {
		param := p.param()
		if param == nil {
			return nil
		}
		out = append(out, param)

		if p.cur.Category != report.Comma {
			break
		}
		p.consume()
	}
	return out
}

// param parses `type ID [ '[' ']' ]`.
func (p *Parser) param() *ast.ParmVarDecl {
	start := p.cur.Lexeme.Begin
	typ, ok := p.typeSpecifier()
	if !ok {
		return nil
	}

	idWord, ok := p.expect(report.Identifier)
	if !ok {
		return nil
	}
	name := p.text(idWord)

	isArray := false
	if p.cur.Category == report.OpenBracket {
		p.consume()
		isArray = true
		if _, ok := p.expect(report.CloseBracket); !ok {
			return nil
		}
	}

	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	decl, _ := p.act.ActOnParamDecl(typ, name, idWord.Lexeme.Begin, isArray, span)
	return decl
}

// compoundStmtSharingScope parses a `{ decls stmts }` block for a function
// body, without pushing a new frame: the caller has already pushed
// FrameFunParams, and that same frame receives the body's local
// declarations.
func (p *Parser) compoundStmtSharingScope() *ast.CompoundStmt {
	start := p.cur.Lexeme.Begin
	if _, ok := p.expect(report.OpenCurly); !ok {
		return nil
	}

	decls := p.localDecls()
	stmts := p.stmtList()

	if _, ok := p.expect(report.CloseCurly); !ok {
		return nil
	}

	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	return p.act.ActOnCompoundStmt(decls, stmts, span)
}

// compoundStmt parses a nested `{ decls stmts }` block, pushing its own
// FrameCompoundStmt.
func (p *Parser) compoundStmt() ast.Stmt {
	pop := p.act.Scope.Push(sema.FrameCompoundStmt)
	defer pop()

	return p.compoundStmtSharingScope()
}

func (p *Parser) localDecls() []*ast.VarDecl {
	var decls []*ast.VarDecl
	for p.cur.Category == report.Int || p.cur.Category == report.Void {
		decl := p.varDeclaration()
		if decl == nil {
			return decls
		}
		decls = append(decls, decl.(*ast.VarDecl))
	}
	return decls
}

func (p *Parser) stmtList() []ast.Stmt {
	var stmts []ast.Stmt
	for p.cur.Category != report.CloseCurly && p.cur.Category != report.Eof {
		stmt := p.statement()
		if stmt == nil {
			return stmts
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// statement dispatches on the current word's category to one of the
// statement productions.
func (p *Parser) statement() ast.Stmt {
	switch p.cur.Category {
	case report.OpenCurly:
		return p.compoundStmt()
	case report.If:
		return p.selectionStmt()
	case report.While:
		return p.iterationStmt()
	case report.Return:
		return p.returnStmt()
	case report.Semicolon:
		start := p.cur.Lexeme.Begin
		p.consume()
		return p.act.ActOnNullStmt(source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)})
	case report.Identifier, report.Number, report.OpenParen:
		return p.exprStmt()
	default:
		p.act.Mgr.Report(p.cur.Lexeme.Begin, report.ParserExpectedStatement)
		p.fail()
		return nil
	}
}

func (p *Parser) selectionStmt() ast.Stmt {
	start := p.cur.Lexeme.Begin
	p.consume() // 'if'

	if _, ok := p.expect(report.OpenParen); !ok {
		return nil
	}
	cond := p.expression()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(report.CloseParen); !ok {
		return nil
	}

	then := p.statement()
	if then == nil {
		return nil
	}

	var els ast.Stmt
	if p.cur.Category == report.Else {
		p.consume()
		els = p.statement()
		if els == nil {
			return nil
		}
	}

	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	return p.act.ActOnSelectionStmt(cond, then, els, span)
}

func (p *Parser) iterationStmt() ast.Stmt {
	start := p.cur.Lexeme.Begin
	p.consume() // 'while'

	if _, ok := p.expect(report.OpenParen); !ok {
		return nil
	}
	cond := p.expression()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(report.CloseParen); !ok {
		return nil
	}

	body := p.statement()
	if body == nil {
		return nil
	}

	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	return p.act.ActOnIterationStmt(cond, body, span)
}

func (p *Parser) returnStmt() ast.Stmt {
	start := p.cur.Lexeme.Begin
	returnLoc := start
	p.consume() // 'return'

	var expr ast.Expr
	if p.cur.Category != report.Semicolon {
		expr = p.expression()
		if expr == nil {
			return nil
		}
	}

	if _, ok := p.expect(report.Semicolon); !ok {
		return nil
	}

	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	return p.act.ActOnReturnStmt(expr, returnLoc, span)
}

func (p *Parser) exprStmt() ast.Stmt {
	start := p.cur.Lexeme.Begin
	expr := p.expression()
	if expr == nil {
		return nil
	}
	if _, ok := p.expect(report.Semicolon); !ok {
		return nil
	}
	span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
	return p.act.ActOnExprStmt(expr, span)
}

// -----------------------------------------------------------------------------

// expression parses a simpleExpression; if it is a *ast.VarRef and the next
// word is '=', consumes '=' and recurses (right-associative via recursion).
func (p *Parser) expression() ast.Expr {
	start := p.cur.Lexeme.Begin
	lhs := p.simpleExpression()
	if lhs == nil {
		return nil
	}

	if ref, isRef := lhs.(*ast.VarRef); isRef && p.cur.Category == report.Assign {
		p.consume()
		rhs := p.expression()
		if rhs == nil {
			return nil
		}
		span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
		return p.act.ActOnAssign(ref, rhs, span)
	}

	return lhs
}

var relOps = map[report.Category]ast.BinaryOp{
	report.Less:         ast.OpLess,
	report.LessEqual:    ast.OpLessEqual,
	report.Greater:      ast.OpGreater,
	report.GreaterEqual: ast.OpGreaterEqual,
	report.Equal:        ast.OpEqual,
	report.NotEqual:     ast.OpNotEqual,
}

// simpleExpression parses `additiveExpression [ relop additiveExpression ]`.
func (p *Parser) simpleExpression() ast.Expr {
	start := p.cur.Lexeme.Begin
	lhs := p.additiveExpression()
	if lhs == nil {
		return nil
	}

	if op, ok := relOps[p.cur.Category]; ok {
		p.consume()
		rhs := p.additiveExpression()
		if rhs == nil {
			return nil
		}
		span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
		return p.act.ActOnBinaryExpr(lhs, rhs, op, span)
	}

	return lhs
}

// additiveExpression is parsed iteratively and left-associated, to keep the
// AST left-folded without a post-pass.
func (p *Parser) additiveExpression() ast.Expr {
	start := p.cur.Lexeme.Begin
	lhs := p.term()
	if lhs == nil {
		return nil
	}

	for p.cur.Category == report.Plus || p.cur.Category == report.Minus {
		op := ast.OpAdd
		if p.cur.Category == report.Minus {
			op = ast.OpSub
		}
		p.consume()

		rhs := p.term()
		if rhs == nil {
			return nil
		}

		span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
		lhs = p.act.ActOnBinaryExpr(lhs, rhs, op, span)
	}

	return lhs
}

// term is parsed iteratively and left-associated, same rationale as
// additiveExpression.
func (p *Parser) term() ast.Expr {
	start := p.cur.Lexeme.Begin
	lhs := p.factor()
	if lhs == nil {
		return nil
	}

	for p.cur.Category == report.Star || p.cur.Category == report.Slash {
		op := ast.OpMul
		if p.cur.Category == report.Slash {
			op = ast.OpDiv
		}
		p.consume()

		rhs := p.factor()
		if rhs == nil {
			return nil
		}

		span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
		lhs = p.act.ActOnBinaryExpr(lhs, rhs, op, span)
	}

	return lhs
}

// factor parses `'(' expression ')' | NUM | ID [ '[' expression ']' | '(' args ')' ]`.
func (p *Parser) factor() ast.Expr {
	start := p.cur.Lexeme.Begin

	switch p.cur.Category {
	case report.OpenParen:
		p.consume()
		e := p.expression()
		if e == nil {
			return nil
		}
		if _, ok := p.expect(report.CloseParen); !ok {
			return nil
		}
		return e

	case report.Number:
		w := p.consume()
		span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
		return p.act.ActOnNumber(p.text(w), w.Lexeme.Begin, span)

	case report.Identifier:
		idWord := p.consume()
		name := p.text(idWord)

		if p.cur.Category == report.OpenParen {
			p.consume()
			args := p.args()
			if args == nil && !p.ok {
				return nil
			}
			if _, ok := p.expect(report.CloseParen); !ok {
				return nil
			}
			span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
			call, ok := p.act.ActOnCall(name, idWord.Lexeme.Begin, args, span)
			if !ok && call == nil {
				return nil
			}
			return call
		}

		var index ast.Expr
		if p.cur.Category == report.OpenBracket {
			p.consume()
			index = p.expression()
			if index == nil {
				return nil
			}
			if _, ok := p.expect(report.CloseBracket); !ok {
				return nil
			}
		}

		span := source.Range{Begin: start, Len: int(p.cur.Lexeme.Begin - start)}
		ref, _ := p.act.ActOnVar(name, idWord.Lexeme.Begin, index, span)
		if ref == nil {
			return nil
		}
		return ref

	default:
		p.act.Mgr.Report(p.cur.Lexeme.Begin, report.ParserExpectedExpression)
		p.fail()
		return nil
	}
}

// args parses a comma-separated, possibly empty, argument list.
func (p *Parser) args() []ast.Expr {
	if p.cur.Category == report.CloseParen {
		return []ast.Expr{}
	}

	var out []ast.Expr
	for {
		e := p.expression()
		if e == nil {
			return nil
		}
		out = append(out, e)

		if p.cur.Category != report.Comma {
			break
		}
		p.consume()
	}
	return out
}
