package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnyErrorsReflectsReportedDiagnostics(t *testing.T) {
	mgr := New(nil, LogLevelSilent)
	assert.False(t, mgr.AnyErrors())

	mgr.Report(0, LexerBadChar)
	assert.True(t, mgr.AnyErrors(), "errCount must increment even at LogLevelSilent")
}

func TestHandlerChainCanSuppressPreviousHandler(t *testing.T) {
	mgr := New(nil, LogLevelVerbose)

	var calledPrev, calledNew bool
	// installed first, so it is the previous handler of the one below
	mgr.Handler(func(d *Diagnostic, next Handler) bool {
		calledPrev = true
		return true
	})
	mgr.Handler(func(d *Diagnostic, next Handler) bool {
		calledNew = true
		return false // suppress the previously installed handler
	})

	mgr.Report(0, LexerBadChar)
	assert.True(t, calledNew)
	assert.False(t, calledPrev)
}

func TestMessageFormatsArgs(t *testing.T) {
	d := &Diagnostic{Kind: SemaRedefinition, Args: []interface{}{"x"}}
	assert.Equal(t, "redefinition of 'x'", d.Message())
}
