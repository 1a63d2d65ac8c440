// Package driver holds the boilerplate shared by the three command-line
// programs: reading the source file, constructing a diagnostic manager at
// the resolved log level, and running a pipeline stage. Grounded on
// chai/bootstrap/cmd/execute.go's Execute/execBuildCommand split, narrowed
// to a single helper since none of C-minus's three drivers has subcommands.
package driver

import (
	"fmt"
	"os"

	"cminus/config"
	"cminus/report"
	"cminus/source"
)

// Run loads sourcePath, builds a report.Manager at the log level resolved
// from profile (overridden by loglevel when non-empty), and invokes stage.
// It returns the process exit code: 0 on success, 1 if stage reported any
// error-severity diagnostic or the source file could not be loaded.
func Run(sourcePath string, profile *config.Profile, loglevel string, stage func(*source.File, *report.Manager) int) int {
	file, err := source.Load(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cminus: %s\n", err.Error())
		return 1
	}

	level := profile.LogLevel
	if loglevel != "" {
		level = loglevel
	}

	mgr := report.New(file, report.ParseLogLevel(level))

	code := stage(file, mgr)
	if mgr.AnyErrors() {
		return 1
	}
	return code
}
