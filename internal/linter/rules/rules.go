// Package rules ships the built-in lint rules. Each rule lives in
// its own file; this file assembles the default registry.
package rules

import (
	"github.com/kyanite-dev/kyanite/internal/linter"
)

// DefaultRegistry returns a registry preloaded with every built-in
// rule.
func DefaultRegistry() *linter.Registry {
	reg := linter.NewRegistry()
	for _, r := range []linter.Rule{
		NoDebugger{},
		NoEmptyPattern{},
		PreferStringReplaceAll{},
	} {
		if err := reg.Register(r); err != nil {
			panic(err)
		}
	}
	return reg
}
