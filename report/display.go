package report

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Color constants mirroring chai/src/logging's severity palette
// (SuccessColorFG/ErrorStyleBG/WarnColorFG): a colored label tag followed by
// a plainly-colored message.
var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorFG      = pterm.NewStyle(pterm.FgRed)
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnFG       = pterm.NewStyle(pterm.FgYellow)
)

// defaultHandler is the Manager's out-of-the-box Handler: it prints the
// diagnostic's location, a colorized label, the message, and (when a source
// file is available) the offending source line underlined with carets, in
// the style of chai/report's displaySourceText.
func (m *Manager) defaultHandler(d *Diagnostic) bool {
	label, labelBG, msgFG := "error", errorStyleBG, errorFG
	if d.Severity == Warning {
		label, labelBG, msgFG = "warning", warnStyleBG, warnFG
	}

	var line, col int
	if m.file != nil {
		line, col = m.file.LineCol(d.Loc)
		fmt.Printf("%s:%d:%d: ", m.file.Path, line+1, col+1)
	}

	labelBG.Print(" " + label + " ")
	msgFG.Println(" " + d.Message())

	if m.file != nil {
		m.printSourceLineAt(line, col)
	}

	return true
}

// printSourceLineAt prints the source line containing (line, col) with a
// caret pointing at the offending column, in the style of
// chai/report.displaySourceText.
func (m *Manager) printSourceLineAt(line, col int) {
	text := m.file.LineText(line)
	fmt.Println(" ", text)
	fmt.Println(" ", strings.Repeat(" ", col)+"^")
}
