// Command geracodigo compiles a C-minus source file to MIPS O32 assembly
// text.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ComedicChimera/olive"

	"cminus/codegen"
	"cminus/config"
	"cminus/driver"
	"cminus/report"
	"cminus/sema"
	"cminus/source"
	"cminus/syntax"
)

func main() {
	cli := olive.NewCLI("geracodigo", "compile a C-minus source file to MIPS assembly", false)
	cli.AddPrimaryArg("input", "the source file to compile", true)
	cli.AddStringArg("output", "o", "the output assembly file (default: stdout)", false)
	llArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	llArg.SetDefaultValue("")

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	inputPath, _ := result.PrimaryArg()
	loglevel, _ := result.Arguments["loglevel"].(string)
	outputPath, _ := result.Arguments["output"].(string)

	profile, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if outputPath == "" {
		outputPath = profile.Output
	}

	os.Exit(driver.Run(inputPath, profile, loglevel, func(file *source.File, mgr *report.Manager) int {
		return runGeracodigo(file, mgr, outputPath)
	}))
}

func runGeracodigo(file *source.File, mgr *report.Manager, outputPath string) int {
	scanner := syntax.NewScanner(file, mgr)
	actions := sema.New(mgr)
	parser := syntax.NewParser(scanner, actions)

	prog, ok := parser.ParseProgram()
	if !ok || prog == nil || mgr.AnyErrors() {
		return 1
	}

	asm := codegen.GenProgram(file, prog)

	if outputPath == "" {
		fmt.Print(asm)
		return 0
	}

	if err := ioutil.WriteFile(outputPath, []byte(asm), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
