package rules

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/linter"
)

// NoDebugger flags `debugger` statements, which are debugging aids
// that should not survive into committed code.
type NoDebugger struct{}

func (NoDebugger) Name() string                          { return "no-debugger" }
func (NoDebugger) Plugin() string                        { return "kyanite" }
func (NoDebugger) DefaultSeverity() diagnostics.Severity { return diagnostics.SeverityWarning }

func (NoDebugger) Run(node ast.Node, ctx *linter.Context) {
	if stmt, ok := node.(*ast.DebuggerStatement); ok {
		ctx.ReportWithHelp(
			"`debugger` statement is not allowed",
			"Delete this statement before committing",
			stmt.Loc,
		)
	}
}
