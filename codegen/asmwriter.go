package codegen

import (
	"bytes"
	"fmt"
)

// asmWriter is a small line-oriented text emitter, grounded on the
// meta-assembly command shape of PiMaker-MCPC-Software's asmCmd/asmParam,
// simplified down to plain text since MIPS-as-text needs no structured IR
// between the tree walk and the emitted output.
type asmWriter struct {
	buf bytes.Buffer
}

// Instr emits one indented instruction line.
func (w *asmWriter) Instr(format string, args ...interface{}) {
	fmt.Fprint(&w.buf, "\t")
	fmt.Fprintf(&w.buf, format, args...)
	fmt.Fprintln(&w.buf)
}

// Label emits a label line followed by a colon, unindented.
func (w *asmWriter) Label(name string) {
	fmt.Fprintf(&w.buf, "%s:\n", name)
}

// Directive emits an unindented assembler directive line (e.g. ".data").
func (w *asmWriter) Directive(format string, args ...interface{}) {
	fmt.Fprintf(&w.buf, format, args...)
	fmt.Fprintln(&w.buf)
}

// Blank emits an empty line, used to visually separate functions.
func (w *asmWriter) Blank() {
	w.buf.WriteByte('\n')
}

func (w *asmWriter) String() string {
	return w.buf.String()
}
