// Command sintatico parses a C-minus source file and dumps its AST in
// canonical indented form, one node per line.
package main

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"

	"cminus/ast"
	"cminus/config"
	"cminus/driver"
	"cminus/report"
	"cminus/sema"
	"cminus/source"
	"cminus/syntax"
)

func main() {
	cli := olive.NewCLI("sintatico", "dump the AST of a C-minus source file", false)
	cli.AddPrimaryArg("input", "the source file to parse", true)
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

	os.Exit(driver.Run(inputPath, profile, loglevel, runSintatico))
}

func runSintatico(file *source.File, mgr *report.Manager) int {
	scanner := syntax.NewScanner(file, mgr)
	actions := sema.New(mgr)
	parser := syntax.NewParser(scanner, actions)

	prog, ok := parser.ParseProgram()
	if !ok || prog == nil {
		return 1
	}

	ast.Dump(os.Stdout, file, prog)
	return 0
}
