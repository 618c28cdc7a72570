package rules

import (
	"strings"

	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/linter"
)

// PreferStringReplaceAll flags `str.replace(/plain/g, x)` where the
// regex exists only to get global behavior; `replaceAll` with a
// string literal says the same thing without regex escaping hazards.
type PreferStringReplaceAll struct{}

func (PreferStringReplaceAll) Name() string   { return "prefer-string-replace-all" }
func (PreferStringReplaceAll) Plugin() string { return "unicorn" }
func (PreferStringReplaceAll) DefaultSeverity() diagnostics.Severity {
	return diagnostics.SeverityWarning
}

func (PreferStringReplaceAll) Run(node ast.Node, ctx *linter.Context) {
	call, ok := node.(*ast.CallExpression)
	if !ok || len(call.Arguments) != 2 {
		return
	}
	member, ok := call.Callee.(*ast.MemberExpression)
	if !ok || member.Computed {
		return
	}
	prop, ok := member.Property.(*ast.IdentifierName)
	if !ok || prop.Name != "replace" {
		return
	}
	regex, ok := call.Arguments[0].(*ast.RegExpLiteral)
	if !ok || regex.Flags != "g" || !isPlainRegexPattern(regex.Pattern) {
		return
	}
	ctx.ReportWithHelp(
		"This pattern can be replaced with `replaceAll`",
		"Use `replaceAll` with a string argument instead of a global regex",
		call.Loc,
	)
}

// isPlainRegexPattern reports whether a regex pattern matches only
// its literal text, so it could be written as a string argument to
// replaceAll. Escape sequences are rejected wholesale rather than
// decoded; the rule stays silent when unsure.
func isPlainRegexPattern(pattern string) bool {
	if pattern == "" {
		return false
	}
	return !strings.ContainsAny(pattern, `\^$.|?*+()[]{}`)
}
