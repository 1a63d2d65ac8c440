package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cminus/report"
	"cminus/sema"
	"cminus/source"
)

func parse(text string) (*report.Manager, bool) {
	file := source.New("t.cm", []byte(text))
	mgr := report.New(file, report.LogLevelSilent)
	actions := sema.New(mgr)
	p := NewParser(NewScanner(file, mgr), actions)

	_, ok := p.ParseProgram()
	return mgr, ok
}

func TestEmptyProgramFailsToParse(t *testing.T) {
	mgr, ok := parse("\n")
	assert.False(t, ok)
	assert.True(t, mgr.AnyErrors())
}

func TestVoidVariableIsRejected(t *testing.T) {
	mgr, _ := parse(`
		void x;
		int main(void) { return 0; }
	`)
	assert.True(t, mgr.AnyErrors())
}

func TestRedefinitionIsRejected(t *testing.T) {
	mgr, _ := parse(`
		int a; int a;
		int main(void) { return 0; }
	`)
	assert.True(t, mgr.AnyErrors())
}

func TestCallBeforeResolvedIsUndeclared(t *testing.T) {
	mgr, _ := parse(`int main(void) { return f(); }`)
	assert.True(t, mgr.AnyErrors())
}

func TestRecursiveFunctionResolvesItself(t *testing.T) {
	mgr, ok := parse(`
		int fact(int n) { if (n <= 1) return 1; return n * fact(n - 1); }
		int main(void) { return fact(5); }
	`)
	assert.True(t, ok)
	assert.False(t, mgr.AnyErrors())
}

func TestIndexedAssignmentParses(t *testing.T) {
	mgr, ok := parse(`
		int a[10];
		int main(void) { a[3] = 7; return a[3]; }
	`)
	assert.True(t, ok)
	assert.False(t, mgr.AnyErrors())
}

func TestStrayTokenAtStatementPositionReportsExpectedStatement(t *testing.T) {
	// A ')' can start neither a statement nor an expression, so it must be
	// rejected directly by statement() rather than falling through to
	// exprStmt()/factor(), which would report the wrong diagnostic kind.
	file := source.New("t.cm", []byte("int main(void) { ) }"))
	mgr := report.New(file, report.LogLevelVerbose)

	var kinds []report.Kind
	mgr.Handler(func(d *report.Diagnostic, next report.Handler) bool {
		kinds = append(kinds, d.Kind)
		return false
	})

	actions := sema.New(mgr)
	p := NewParser(NewScanner(file, mgr), actions)
	_, ok := p.ParseProgram()

	assert.False(t, ok)
	assert.Contains(t, kinds, report.ParserExpectedStatement)
}

func TestParamScopeSharesWithFunctionBody(t *testing.T) {
	// A parameter must be visible inside the function body's compound
	// statement: the FunParamsScope frame stays active across the
	// subsequent CompoundStmt parse rather than being popped first.
	mgr, ok := parse(`int id(int n) { return n; }`)
	assert.True(t, ok)
	assert.False(t, mgr.AnyErrors())
}
