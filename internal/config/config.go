// Package config loads and validates .kyaniterc files. A config file
// lives at a project root and applies to every file linted beneath
// it; discovery walks up from the lint target until one is found.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Candidate file names in lookup order.
var fileNames = []string{".kyaniterc.json", ".kyaniterc.yaml", ".kyaniterc.yml"}

// Severity is a rule setting as written in config: "allow" turns a
// rule off, "warn" reports without failing the run, "deny" fails it.
type Severity string

const (
	SeverityAllow Severity = "allow"
	SeverityWarn  Severity = "warn"
	SeverityDeny  Severity = "deny"
)

func (s Severity) valid() bool {
	switch s {
	case SeverityAllow, SeverityWarn, SeverityDeny:
		return true
	}
	return false
}

// RuleConfig is one entry of the rules map. In the file it is either
// a bare severity string or a [severity, options] pair.
type RuleConfig struct {
	Severity Severity
	Options  map[string]interface{}
}

func (rc *RuleConfig) UnmarshalJSON(data []byte) error {
	var sev string
	if err := json.Unmarshal(data, &sev); err == nil {
		rc.Severity = Severity(sev)
		return nil
	}
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.New("rule config must be a severity string or [severity, options]")
	}
	if len(pair) < 1 || len(pair) > 2 {
		return errors.New("rule config array must be [severity] or [severity, options]")
	}
	if err := json.Unmarshal(pair[0], &sev); err != nil {
		return errors.Wrap(err, "rule severity")
	}
	rc.Severity = Severity(sev)
	if len(pair) == 2 {
		if err := json.Unmarshal(pair[1], &rc.Options); err != nil {
			return errors.Wrap(err, "rule options")
		}
	}
	return nil
}

func (rc *RuleConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var sev string
		if err := node.Decode(&sev); err != nil {
			return err
		}
		rc.Severity = Severity(sev)
		return nil
	case yaml.SequenceNode:
		if len(node.Content) < 1 || len(node.Content) > 2 {
			return errors.New("rule config array must be [severity] or [severity, options]")
		}
		var sev string
		if err := node.Content[0].Decode(&sev); err != nil {
			return errors.Wrap(err, "rule severity")
		}
		rc.Severity = Severity(sev)
		if len(node.Content) == 2 {
			if err := node.Content[1].Decode(&rc.Options); err != nil {
				return errors.Wrap(err, "rule options")
			}
		}
		return nil
	}
	return errors.New("rule config must be a severity string or [severity, options]")
}

// Engines pins toolchain versions the project expects.
type Engines struct {
	// Kyanite is a semver constraint on the CLI version, e.g.
	// ">=0.4.0 <1.0.0".
	Kyanite string `json:"kyanite" yaml:"kyanite"`
}

// Config is a parsed .kyaniterc file.
type Config struct {
	// Root is the directory the file was loaded from. Relative
	// ignore patterns resolve against it.
	Root string `json:"-" yaml:"-"`

	Env     map[string]bool       `json:"env" yaml:"env"`
	Globals map[string]string     `json:"globals" yaml:"globals"`
	Rules   map[string]RuleConfig `json:"rules" yaml:"rules"`
	Ignore  []string              `json:"ignore" yaml:"ignore"`
	Engines Engines               `json:"engines" yaml:"engines"`
}

// Default returns the config used when no .kyaniterc exists: every
// rule at its built-in severity, nothing ignored.
func Default() *Config {
	return &Config{}
}

// Load reads and validates a config file. The format is chosen by
// extension: .json uses encoding/json, anything else YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := &Config{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.Root = filepath.Dir(path)
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Search walks up from dir looking for a .kyaniterc file. It returns
// Default() when none exists anywhere up the tree.
func Search(dir string) (*Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolve config search root")
	}
	for {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	for id, rc := range c.Rules {
		if !rc.Severity.valid() {
			return errors.Errorf("rule %q: unknown severity %q (want allow, warn, or deny)", id, rc.Severity)
		}
		if !strings.Contains(id, "/") {
			return errors.Errorf("rule %q: identifier must be plugin/name", id)
		}
	}
	for name, kind := range c.Globals {
		switch kind {
		case "readonly", "writable", "off":
		default:
			return errors.Errorf("global %q: unknown kind %q (want readonly, writable, or off)", name, kind)
		}
	}
	if c.Engines.Kyanite != "" {
		if _, err := semver.NewConstraint(c.Engines.Kyanite); err != nil {
			return errors.Wrapf(err, "engines.kyanite constraint %q", c.Engines.Kyanite)
		}
	}
	return nil
}

// CheckEngine verifies the running CLI version against the config's
// engines.kyanite constraint. An empty constraint always passes.
func (c *Config) CheckEngine(version string) error {
	if c.Engines.Kyanite == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Engines.Kyanite)
	if err != nil {
		return errors.Wrapf(err, "engines.kyanite constraint %q", c.Engines.Kyanite)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(err, "cli version %q", version)
	}
	if !constraint.Check(v) {
		return errors.Errorf("kyanite %s does not satisfy engines.kyanite %q", version, c.Engines.Kyanite)
	}
	return nil
}
