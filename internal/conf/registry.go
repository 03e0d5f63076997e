// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import (
	"fmt"
	"sort"
)

// Registry is the process-wide set of registered option specs. It is built
// once at startup and immutable thereafter.
type Registry struct {
	specs map[string]*OptionSpec
	names []string // sorted, for deterministic iteration
}

// NewRegistry builds a registry from the given specs. It rejects duplicate
// names, unparseable defaults, and implications that reference unregistered
// keys or carry values the target spec rejects — all of these are authoring
// mistakes in the registry literal, not user errors.
func NewRegistry(specs ...OptionSpec) (*Registry, error) {
	r := &Registry{
		specs: make(map[string]*OptionSpec, len(specs)),
		names: make([]string, 0, len(specs)),
	}

	for i := range specs {
		sp := &specs[i]
		if sp.Name == "" {
			return nil, fmt.Errorf("option spec %d has no name", i)
		}
		if _, dup := r.specs[sp.Name]; dup {
			return nil, fmt.Errorf("duplicate option spec %q", sp.Name)
		}
		if sp.Kind == KindPort {
			sp.Min, sp.Max = 1, 65535
		}
		r.specs[sp.Name] = sp
		r.names = append(r.names, sp.Name)
	}
	sort.Strings(r.names)

	for _, name := range r.names {
		sp := r.specs[name]
		if _, verr := sp.parse(sp.Default); verr != nil {
			return nil, fmt.Errorf("option %q has invalid default %q: %s", name, sp.Default, verr.reason)
		}

		for _, imp := range sp.Implies {
			target, ok := r.specs[imp.Key]
			if !ok {
				return nil, fmt.Errorf("option %q implies unregistered option %q", name, imp.Key)
			}
			if _, verr := target.parse(imp.Value); verr != nil {
				return nil, fmt.Errorf("option %q implies invalid value %q for %q: %s",
					name, imp.Value, imp.Key, verr.reason)
			}
		}
	}

	return r, nil
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (*OptionSpec, bool) {
	sp, ok := r.specs[name]
	return sp, ok
}

// Names returns all registered option names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
