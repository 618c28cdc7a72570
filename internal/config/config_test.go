package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".kyaniterc.json", `{
		"env": {"browser": true, "node": false},
		"globals": {"gtag": "readonly"},
		"rules": {
			"kyanite/no-debugger": "deny",
			"kyanite/no-empty-pattern": "allow",
			"unicorn/prefer-string-replace-all": ["warn", {"allowRegexp": true}]
		},
		"ignore": ["dist/**"],
		"engines": {"kyanite": ">=0.4.0"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(path), cfg.Root)
	assert.True(t, cfg.Env["browser"])
	assert.False(t, cfg.Env["node"])
	assert.Equal(t, "readonly", cfg.Globals["gtag"])
	assert.Equal(t, []string{"dist/**"}, cfg.Ignore)

	require.Len(t, cfg.Rules, 3)
	assert.Equal(t, SeverityDeny, cfg.Rules["kyanite/no-debugger"].Severity)
	assert.Equal(t, SeverityAllow, cfg.Rules["kyanite/no-empty-pattern"].Severity)
	replaceAll := cfg.Rules["unicorn/prefer-string-replace-all"]
	assert.Equal(t, SeverityWarn, replaceAll.Severity)
	assert.Equal(t, true, replaceAll.Options["allowRegexp"])
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".kyaniterc.yaml", `
env:
  browser: true
rules:
  kyanite/no-debugger: warn
  unicorn/prefer-string-replace-all:
    - deny
    - allowRegexp: false
engines:
  kyanite: "^0.4"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Env["browser"])
	assert.Equal(t, SeverityWarn, cfg.Rules["kyanite/no-debugger"].Severity)
	replaceAll := cfg.Rules["unicorn/prefer-string-replace-all"]
	assert.Equal(t, SeverityDeny, replaceAll.Severity)
	assert.Equal(t, false, replaceAll.Options["allowRegexp"])
	assert.Equal(t, "^0.4", cfg.Engines.Kyanite)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown severity", ".kyaniterc.json", `{"rules": {"kyanite/no-debugger": "error"}}`},
		{"missing plugin prefix", ".kyaniterc.json", `{"rules": {"no-debugger": "warn"}}`},
		{"bad global kind", ".kyaniterc.json", `{"globals": {"x": "frozen"}}`},
		{"bad engine constraint", ".kyaniterc.json", `{"engines": {"kyanite": "latest-and-greatest ||"}}`},
		{"rule config object", ".kyaniterc.json", `{"rules": {"kyanite/no-debugger": {"severity": "warn"}}}`},
		{"overlong rule array", ".kyaniterc.json", `{"rules": {"kyanite/no-debugger": ["warn", {}, {}]}}`},
		{"malformed json", ".kyaniterc.json", `{"rules":`},
		{"malformed yaml", ".kyaniterc.yaml", "rules: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSearchWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".kyaniterc.json", `{"rules": {"kyanite/no-debugger": "deny"}}`)
	nested := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Search(nested)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, SeverityDeny, cfg.Rules["kyanite/no-debugger"].Severity)
}

func TestSearchPrefersJSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".kyaniterc.json", `{"rules": {"kyanite/no-debugger": "deny"}}`)
	writeFile(t, root, ".kyaniterc.yaml", `rules: {kyanite/no-debugger: allow}`)

	cfg, err := Search(root)
	require.NoError(t, err)
	assert.Equal(t, SeverityDeny, cfg.Rules["kyanite/no-debugger"].Severity)
}

func TestSearchFallsBackToDefault(t *testing.T) {
	cfg, err := Search(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Rules)
	assert.Empty(t, cfg.Root)
}

func TestCheckEngine(t *testing.T) {
	cfg := &Config{Engines: Engines{Kyanite: ">=0.4.0 <1.0.0"}}
	assert.NoError(t, cfg.CheckEngine("0.4.2"))
	assert.Error(t, cfg.CheckEngine("1.2.0"))
	assert.Error(t, cfg.CheckEngine("not-a-version"))
	assert.NoError(t, Default().CheckEngine("anything"))
}
