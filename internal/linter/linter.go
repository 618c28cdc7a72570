// Package linter runs pluggable rules over a parsed program and
// reports findings as diagnostics. Rules are pure functions of the
// AST: they never mutate nodes and never see each other's state.
package linter

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// Rule is one lint check. A rule is identified by "plugin/name" and
// is invoked once per AST node during the walk; most implementations
// type-switch on the node and return immediately for anything they
// do not care about.
type Rule interface {
	// Name is the rule's short name, unique within its plugin.
	Name() string
	// Plugin is the rule group, e.g. "kyanite" or "unicorn".
	Plugin() string
	// DefaultSeverity is the severity used when configuration does
	// not override it.
	DefaultSeverity() diagnostics.Severity
	// Run inspects a single node and reports findings through ctx.
	Run(node ast.Node, ctx *Context)
}

// Context is the per-rule view of a lint run. It carries the source
// file for text lookups and routes reports into the shared bag with
// the rule's resolved severity and code already applied.
type Context struct {
	File *span.File

	bag      *diagnostics.Bag
	code     string
	severity diagnostics.Severity
}

// Report records a finding at the given span.
func (c *Context) Report(message string, sp span.Span) {
	c.bag.Add(diagnostics.Diagnostic{
		Severity: c.severity,
		Code:     c.code,
		Message:  message,
		Span:     sp,
	})
}

// ReportWithHelp records a finding with an attached help line.
func (c *Context) ReportWithHelp(message, help string, sp span.Span) {
	c.bag.Add(diagnostics.Diagnostic{
		Severity: c.severity,
		Code:     c.code,
		Message:  message,
		Span:     sp,
		Help:     help,
	})
}

// Source returns the source text covered by sp.
func (c *Context) Source(sp span.Span) string {
	return c.File.Slice(sp)
}

// RuleID returns the canonical "plugin/name" identifier for a rule.
func RuleID(r Rule) string {
	return r.Plugin() + "/" + r.Name()
}

// Linter owns a resolved set of rules and their effective severities.
// Configure it once, then Run it over any number of files; a Linter
// is not safe for concurrent Run calls because rules share contexts,
// so parallel drivers create one Linter per worker.
type Linter struct {
	rules    []Rule
	disabled map[string]bool
	severity map[string]diagnostics.Severity
}

// New builds a Linter over every rule in the registry. All rules
// start enabled at their default severity.
func New(reg *Registry) *Linter {
	return &Linter{
		rules:    reg.All(),
		disabled: make(map[string]bool),
		severity: make(map[string]diagnostics.Severity),
	}
}

// Disable turns a rule off by its "plugin/name" identifier.
func (l *Linter) Disable(id string) {
	l.disabled[id] = true
}

// SetSeverity overrides a rule's severity by identifier. Enabling a
// previously disabled rule this way turns it back on.
func (l *Linter) SetSeverity(id string, sev diagnostics.Severity) {
	delete(l.disabled, id)
	l.severity[id] = sev
}

// Run walks the program once, dispatching every node to every
// enabled rule, and appends findings to bag.
func (l *Linter) Run(file *span.File, program *ast.Program, bag *diagnostics.Bag) {
	var active []ruleBinding
	for _, r := range l.rules {
		id := RuleID(r)
		if l.disabled[id] {
			continue
		}
		sev := r.DefaultSeverity()
		if s, ok := l.severity[id]; ok {
			sev = s
		}
		active = append(active, ruleBinding{
			rule: r,
			ctx:  &Context{File: file, bag: bag, code: id, severity: sev},
		})
	}
	if len(active) == 0 {
		return
	}
	ast.Walk(&dispatcher{bindings: active}, program)
}

type ruleBinding struct {
	rule Rule
	ctx  *Context
}

// dispatcher fans each visited node out to every active rule.
type dispatcher struct {
	bindings []ruleBinding
}

func (d *dispatcher) Visit(node ast.Node) ast.Visitor {
	for _, b := range d.bindings {
		b.rule.Run(node, b.ctx)
	}
	return d
}
