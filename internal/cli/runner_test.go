package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/config"
	"github.com/kyanite-dev/kyanite/internal/linter/rules"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func newRunner(cfg *config.Config) *Runner {
	return &Runner{Config: cfg, Registry: rules.DefaultRegistry()}
}

func TestLintPathsCleanTree(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/a.ts": "export const a: number = 1;\n",
		"src/b.js": "export function b() { return 2; }\n",
	})

	summary, err := newRunner(config.Default()).LintPaths([]string{root})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Files)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, 0, summary.Warnings)
	assert.False(t, summary.Failed())
}

func TestLintPathsFindings(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.ts": "debugger;\n",
		"b.ts": "const {} = x;\n",
		"c.ts": "const ok = 1;\n",
	})

	summary, err := newRunner(config.Default()).LintPaths([]string{root})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Files)
	assert.Equal(t, 2, summary.Warnings)
	assert.Equal(t, 0, summary.Errors)
	assert.False(t, summary.Failed())

	// Results are sorted by path.
	require.Len(t, summary.Results, 3)
	assert.True(t, strings.HasSuffix(summary.Results[0].Path, "a.ts"))
	assert.Len(t, summary.Results[0].Diagnostics, 1)
	assert.Empty(t, summary.Results[2].Diagnostics)
}

func TestParseErrorsCountAsErrors(t *testing.T) {
	root := writeTree(t, map[string]string{
		"bad.ts": "let x = ;\n",
	})

	summary, err := newRunner(config.Default()).LintPaths([]string{root})
	require.NoError(t, err)
	assert.True(t, summary.Failed())
	assert.Greater(t, summary.Errors, 0)
}

func TestConfigSeverityMapping(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.ts": "debugger;\n",
	})
	cfg := &config.Config{Rules: map[string]config.RuleConfig{
		"kyanite/no-debugger": {Severity: config.SeverityDeny},
	}}

	summary, err := newRunner(cfg).LintPaths([]string{root})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Errors)
	assert.True(t, summary.Failed())

	cfg.Rules["kyanite/no-debugger"] = config.RuleConfig{Severity: config.SeverityAllow}
	summary, err = newRunner(cfg).LintPaths([]string{root})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, 0, summary.Warnings)
}

func TestIgnorePatterns(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/a.ts":          "const a = 1;\n",
		"dist/out.js":       "debugger;\n",
		"src/gen/types.ts":  "debugger;\n",
		"node_modules/m.js": "debugger;\n",
	})
	cfg := &config.Config{Ignore: []string{"dist/**", "*.gen.ts", "gen"}}

	summary, err := newRunner(cfg).LintPaths([]string{root})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files)
	assert.True(t, strings.HasSuffix(summary.Results[0].Path, filepath.Join("src", "a.ts")))
}

func TestExplicitFileAlwaysLinted(t *testing.T) {
	root := writeTree(t, map[string]string{
		"weird.txt.ts": "debugger;\n",
	})
	path := filepath.Join(root, "weird.txt.ts")

	summary, err := newRunner(config.Default()).LintPaths([]string{path})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 1, summary.Warnings)
}

func TestMissingPath(t *testing.T) {
	_, err := newRunner(config.Default()).LintPaths([]string{"/no/such/path"})
	assert.Error(t, err)
}

func TestEngineGate(t *testing.T) {
	cfg := &config.Config{Engines: config.Engines{Kyanite: ">=99.0.0"}}
	_, err := newRunner(cfg).LintPaths([]string{t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engines.kyanite")
}

func TestOptionsFor(t *testing.T) {
	tests := []struct {
		path   string
		ts     bool
		source ast.SourceType
	}{
		{"a.ts", true, ast.SourceModule},
		{"a.mts", true, ast.SourceModule},
		{"a.cts", true, ast.SourceModule},
		{"a.js", false, ast.SourceModule},
		{"a.mjs", false, ast.SourceModule},
		{"a.cjs", false, ast.SourceScript},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			opts := optionsFor(tt.path)
			assert.Equal(t, tt.ts, opts.TypeScript)
			assert.Equal(t, tt.source, opts.SourceType)
		})
	}
}

func TestWriteTextSummaryLine(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.ts": "debugger;\n",
	})
	summary, err := newRunner(config.Default()).LintPaths([]string{root})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, summary))
	out := buf.String()
	assert.Contains(t, out, "kyanite/no-debugger")
	assert.Contains(t, out, "checked 1 files")
	assert.Contains(t, out, "0 errors, 1 warnings")
}

func TestWriteJSON(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.ts": "function f() {\n  debugger;\n}\n",
		"b.ts": "const ok = 1;\n",
	})
	summary, err := newRunner(config.Default()).LintPaths([]string{root})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, summary))

	var report struct {
		Files    int `json:"files"`
		Warnings int `json:"warnings"`
		Results  []struct {
			Path     string `json:"path"`
			Findings []struct {
				Severity string `json:"severity"`
				Code     string `json:"code"`
				Line     int    `json:"line"`
				Column   int    `json:"column"`
			} `json:"findings"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 1, report.Warnings)
	require.Len(t, report.Results, 1)
	require.Len(t, report.Results[0].Findings, 1)
	f := report.Results[0].Findings[0]
	assert.Equal(t, "warning", f.Severity)
	assert.Equal(t, "kyanite/no-debugger", f.Code)
	assert.Equal(t, 2, f.Line)
	assert.Equal(t, 3, f.Column)
}

func TestDumpAST(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.ts": "const greeting = \"hi\";\n",
	})
	file, program, diags, err := ParseFile(filepath.Join(root, "a.ts"))
	require.NoError(t, err)
	assert.Empty(t, diags)

	var buf bytes.Buffer
	DumpAST(&buf, file, program)
	out := buf.String()
	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "VariableDeclaration")
	assert.Contains(t, out, `BindingIdentifier`)
	assert.Contains(t, out, `"greeting"`)
	assert.Contains(t, out, `"hi"`)
	// Children are indented under the program root.
	assert.Contains(t, out, "\n  VariableDeclaration")
}

func TestWatchStopsOnCancel(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.ts": "const a = 1;\n",
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := newRunner(config.Default()).Watch(ctx, []string{root}, &buf, false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, buf.String(), "checked 1 files")
}
