package report

import (
	"sync"

	"cminus/source"
)

// Enumeration of log levels, matching chai/report's LogLevel* constants.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors.
	LogLevelWarn           // Displays errors and warnings.
	LogLevelVerbose        // Displays everything (default).
)

// Handler receives a diagnostic as soon as it is emitted. It returns true if
// the handler chain should continue to the handler that was previously
// installed (the "next" handler), matching the original DiagnosticManager's
// contract: "if true, the next handler in the chain will be called as well".
type Handler func(d *Diagnostic) bool

// Manager collects diagnostics for one compilation and dispatches them to a
// replaceable handler chain. It is safe for concurrent use: nothing in this
// compiler's own pipeline is concurrent, but the mutex documents the
// thread-safety boundary for embedding callers (e.g. a language server
// type-checking several buffers at once), mirroring chai/report.Reporter.
type Manager struct {
	m        sync.Mutex
	logLevel int
	file     *source.File
	handler  Handler
	errCount int
}

// New creates a Manager for file at the given log level, installing the
// default pterm-backed handler.
func New(file *source.File, logLevel int) *Manager {
	mgr := &Manager{logLevel: logLevel, file: file}
	mgr.handler = mgr.defaultHandler
	return mgr
}

// Handler installs a new handler ahead of whatever was previously installed.
// The new handler may return true to also invoke the previous handler (the
// chain), or false to suppress it.
func (m *Manager) Handler(h func(d *Diagnostic, next Handler) bool) {
	prev := m.handler
	m.handler = func(d *Diagnostic) bool {
		if h(d, prev) {
			return prev(d)
		}
		return false
	}
}

// Report records and dispatches a diagnostic of the given kind at loc, with
// the arguments its message template expects.
func (m *Manager) Report(loc source.Location, kind Kind, args ...interface{}) {
	m.m.Lock()
	defer m.m.Unlock()

	d := &Diagnostic{
		Kind:     kind,
		Severity: severityFor(kind),
		Loc:      loc,
		Args:     args,
	}

	if d.Severity == Error {
		// AnyErrors() must reflect that an error occurred regardless of what
		// any installed handler chooses to do with the message — a handler
		// that swallows printing (e.g. in a test harness) must never also
		// swallow the non-zero exit code.
		m.errCount++
	}

	if m.logLevel == LogLevelSilent {
		return
	}
	if d.Severity == Warning && m.logLevel < LogLevelWarn {
		return
	}

	m.handler(d)
}

// AnyErrors reports whether any error-severity diagnostic has been recorded.
func (m *Manager) AnyErrors() bool {
	m.m.Lock()
	defer m.m.Unlock()

	return m.errCount > 0
}
