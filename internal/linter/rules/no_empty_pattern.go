package rules

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/linter"
)

// NoEmptyPattern flags destructuring patterns that bind nothing,
// like `const {} = obj`. They are usually a typo for an empty object
// default value.
type NoEmptyPattern struct{}

func (NoEmptyPattern) Name() string                          { return "no-empty-pattern" }
func (NoEmptyPattern) Plugin() string                        { return "kyanite" }
func (NoEmptyPattern) DefaultSeverity() diagnostics.Severity { return diagnostics.SeverityWarning }

func (NoEmptyPattern) Run(node ast.Node, ctx *linter.Context) {
	switch n := node.(type) {
	case *ast.ObjectPattern:
		if len(n.Properties) == 0 && n.Rest == nil {
			ctx.Report("Unexpected empty object pattern", n.Loc)
		}
	case *ast.ArrayPattern:
		if len(n.Elements) == 0 && n.Rest == nil {
			ctx.Report("Unexpected empty array pattern", n.Loc)
		}
	}
}
