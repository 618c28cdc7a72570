package linter

import (
	"sort"

	"github.com/pkg/errors"
)

// Registry maps "plugin/name" identifiers to rules. The zero value
// is not usable; construct with NewRegistry.
type Registry struct {
	byID map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Rule)}
}

// Register adds a rule. Registering the same identifier twice is a
// programming error and is reported as such.
func (r *Registry) Register(rule Rule) error {
	id := RuleID(rule)
	if _, ok := r.byID[id]; ok {
		return errors.Errorf("rule %q registered twice", id)
	}
	r.byID[id] = rule
	return nil
}

// Lookup finds a rule by its "plugin/name" identifier.
func (r *Registry) Lookup(id string) (Rule, bool) {
	rule, ok := r.byID[id]
	return rule, ok
}

// All returns every registered rule sorted by identifier, so lint
// output is stable across runs.
func (r *Registry) All() []Rule {
	out := make([]Rule, 0, len(r.byID))
	for _, rule := range r.byID {
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool {
		return RuleID(out[i]) < RuleID(out[j])
	})
	return out
}
