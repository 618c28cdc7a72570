package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/linter"
	"github.com/kyanite-dev/kyanite/internal/parser"
	"github.com/kyanite-dev/kyanite/internal/span"
)

func lintSource(t *testing.T, src string) []diagnostics.Diagnostic {
	t.Helper()
	file := span.NewFile("test.ts", src)
	bag := diagnostics.NewBag()
	program := parser.New(file, ast.NewAllocator(), bag, parser.Options{
		SourceType: ast.SourceModule,
		TypeScript: true,
	}).Parse()
	require.False(t, bag.HasErrors(), "parse failed: %v", bag.Diagnostics())

	linter.New(DefaultRegistry()).Run(file, program, bag)
	return bag.Diagnostics()
}

func TestDefaultRegistry(t *testing.T) {
	all := DefaultRegistry().All()
	require.Len(t, all, 3)
	assert.Equal(t, "kyanite/no-debugger", linter.RuleID(all[0]))
	assert.Equal(t, "kyanite/no-empty-pattern", linter.RuleID(all[1]))
	assert.Equal(t, "unicorn/prefer-string-replace-all", linter.RuleID(all[2]))
}

func TestNoDebugger(t *testing.T) {
	diags := lintSource(t, "if (broken) {\n  debugger;\n}\n")
	require.Len(t, diags, 1)
	assert.Equal(t, "kyanite/no-debugger", diags[0].Code)
	assert.Equal(t, diagnostics.SeverityWarning, diags[0].Severity)
	assert.NotEmpty(t, diags[0].Help)
}

func TestNoEmptyPattern(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		count int
	}{
		{"empty object binding", "const {} = obj;", 1},
		{"empty array binding", "const [] = list;", 1},
		{"empty nested pattern", "const { a: {} } = obj;", 1},
		{"empty object parameter", "function f({}) {}", 1},
		{"non-empty patterns", "const { a } = obj; const [b] = list;", 0},
		{"rest only", "const { ...rest } = obj;", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := lintSource(t, tt.src)
			require.Len(t, diags, tt.count)
			for _, d := range diags {
				assert.Equal(t, "kyanite/no-empty-pattern", d.Code)
			}
		})
	}
}

func TestPreferStringReplaceAll(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"plain global regex", `s.replace(/abc/g, "x");`, true},
		{"non-global regex", `s.replace(/abc/, "x");`, false},
		{"extra flags", `s.replace(/abc/gi, "x");`, false},
		{"pattern with metachars", `s.replace(/a.c/g, "x");`, false},
		{"pattern with escape", `s.replace(/a\d/g, "x");`, false},
		{"string argument", `s.replace("abc", "x");`, false},
		{"already replaceAll", `s.replaceAll("abc", "x");`, false},
		{"computed callee", `s["replace"](/abc/g, "x");`, false},
		{"wrong arity", `s.replace(/abc/g);`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := lintSource(t, tt.src)
			if tt.want {
				require.Len(t, diags, 1)
				assert.Equal(t, "unicorn/prefer-string-replace-all", diags[0].Code)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}
