package codegen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cminus/ast"
	"cminus/frame"
	"cminus/report"
	"cminus/sema"
	"cminus/source"
	"cminus/syntax"
)

func compile(t *testing.T, text string) string {
	file := source.New("t.cm", []byte(text))
	mgr := report.New(file, report.LogLevelSilent)
	actions := sema.New(mgr)
	p := syntax.NewParser(syntax.NewScanner(file, mgr), actions)

	prog, ok := p.ParseProgram()
	assert.True(t, ok)
	assert.False(t, mgr.AnyErrors())

	return GenProgram(file, prog)
}

func TestIndexedAssignmentEmitsStoreAndLoad(t *testing.T) {
	asm := compile(t, `
		int a[10];
		int main(void) { a[3] = 7; return a[3]; }
	`)

	assert.Contains(t, asm, "main:")
	assert.Contains(t, asm, "sw $v0, 0($t0)") // store through the computed element address
	assert.Contains(t, asm, "jr $ra")
}

func TestRecursiveCallEmitsJalToOwnLabel(t *testing.T) {
	asm := compile(t, `
		int fact(int n) { if (n <= 1) return 1; return n * fact(n - 1); }
		int main(void) { return fact(5); }
	`)

	assert.Contains(t, asm, "jal fact")
	assert.Contains(t, asm, ".globl fact")
	assert.Contains(t, asm, ".globl main")
}

func TestEveryFunctionPrologueBalancesItsEpilogue(t *testing.T) {
	asm := compile(t, `int main(void) { return 0; }`)

	var allocated, deallocated int
	for _, line := range strings.Split(asm, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "addiu $sp, $sp, -") {
			allocated++
		}
		if strings.HasPrefix(line, "addiu $sp, $sp, ") && !strings.Contains(line, "-") {
			deallocated++
		}
	}
	assert.Equal(t, allocated, deallocated)
}

func TestGlobalArrayGetsDataSection(t *testing.T) {
	asm := compile(t, `
		int a[10];
		int main(void) { return a[0]; }
	`)

	assert.Contains(t, asm, ".data")
	assert.Contains(t, asm, "g_a:\t.space 40")
}

func findFunDecl(prog *ast.Program, file *source.File, name string) *ast.FunDecl {
	for _, d := range prog.Decls {
		if fn, ok := d.(*ast.FunDecl); ok && file.Text(fn.Name) == name {
			return fn
		}
	}
	return nil
}

// fact's own OutputSize (call-argument scratch) and SavedSize ($ra/$fp) sit
// in front of its input area, so its parameter must spill past them rather
// than into offset 0, which would alias the scratch area it uses to call
// itself.
func TestParamSpillUsesInputAreaNotOutputArea(t *testing.T) {
	text := `int fact(int n) { if (n <= 1) return 1; return n * fact(n - 1); }`

	file := source.New("t.cm", []byte(text))
	mgr := report.New(file, report.LogLevelSilent)
	actions := sema.New(mgr)
	p := syntax.NewParser(syntax.NewScanner(file, mgr), actions)

	prog, ok := p.ParseProgram()
	assert.True(t, ok)
	assert.False(t, mgr.AnyErrors())

	fn := findFunDecl(prog, file, "fact")
	assert.NotNil(t, fn)

	in := frame.Compute(fn)
	paramOff := in.InputBase() + in.Offsets[fn.Params[0]]
	assert.Greater(t, paramOff, 0)

	asm := GenProgram(file, prog)
	assert.Contains(t, asm, fmt.Sprintf("sw $a0, %d($sp)", paramOff))
	assert.NotContains(t, asm, "sw $a0, 0($sp)")
}

// main's local array sits behind its own OutputSize/TempSize/SavedSize
// areas (it calls helper and needs a temp slot for the indexed assignment),
// so its address must be computed past them rather than at offset 0, which
// would alias the call's output-argument scratch.
func TestLocalArrayAddressUsesLocalAreaNotOutputArea(t *testing.T) {
	text := `
		int helper(int n) { return n; }
		int main(void) {
			int a[4];
			a[0] = helper(1);
			return a[0];
		}
	`

	file := source.New("t.cm", []byte(text))
	mgr := report.New(file, report.LogLevelSilent)
	actions := sema.New(mgr)
	p := syntax.NewParser(syntax.NewScanner(file, mgr), actions)

	prog, ok := p.ParseProgram()
	assert.True(t, ok)
	assert.False(t, mgr.AnyErrors())

	fn := findFunDecl(prog, file, "main")
	assert.NotNil(t, fn)

	in := frame.Compute(fn)
	localOff := in.LocalBase() + in.Offsets[fn.Body.Decls[0]]
	assert.Greater(t, localOff, 0)

	asm := GenProgram(file, prog)
	assert.Contains(t, asm, fmt.Sprintf("addiu $v0, $sp, %d", localOff))
}

func TestCompilationIsIdempotent(t *testing.T) {
	text := `int fact(int n) { if (n <= 1) return 1; return n * fact(n - 1); }
	int main(void) { return fact(5); }`

	first := compile(t, text)
	second := compile(t, text)
	assert.Equal(t, first, second)
}
