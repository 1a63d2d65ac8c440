// Command lexico dumps the word stream of a C-minus source file, one word
// per line, in the form "<category> <lexeme>".
package main

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"

	"cminus/config"
	"cminus/driver"
	"cminus/report"
	"cminus/source"
	"cminus/syntax"
)

func main() {
	cli := olive.NewCLI("lexico", "dump the word stream of a C-minus source file", false)
	cli.AddPrimaryArg("input", "the source file to scan", true)
	llArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	llArg.SetDefaultValue("")

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	inputPath, _ := result.PrimaryArg()
	loglevel, _ := result.Arguments["loglevel"].(string)

	profile, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(driver.Run(inputPath, profile, loglevel, runLexico))
}

func runLexico(file *source.File, mgr *report.Manager) int {
	s := syntax.NewScanner(file, mgr)
	for {
		w := s.NextWord()
		fmt.Printf("%s %s\n", w.Category, file.Text(w.Lexeme))
		if w.Category == report.Eof {
			break
		}
	}
	return 0
}
