// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/shopspring/decimal"
)

// Config is the immutable result of resolution. Every key registered in
// the source registry has exactly one value, so lookups never fail for a
// registered key. A Config is read-only after construction and safe to
// share across goroutines without locking.
type Config struct {
	reg    *Registry
	values map[string]Value
}

// Resolve merges the given layers over the registry defaults in argument
// order (last write wins per key), validating every raw value it touches.
// All validation failures across all layers are collected into a single
// [ErrorList]; when any exist, no Config is produced. After a clean merge,
// declared implications are applied as a final pass.
func Resolve(reg *Registry, layers ...Layer) (*Config, error) {
	var errs ErrorList

	merged := make(map[string]string, len(reg.names))
	for name, sp := range reg.specs {
		merged[name] = sp.Default
	}

	for _, l := range layers {
		for _, bad := range l.Malformed {
			errs = append(errs, &Error{
				Kind:   MalformedLine,
				Layer:  l.Name,
				Raw:    bad.Text,
				Line:   bad.Line,
				Reason: `expected "key value"`,
			})
		}

		overlay := make(map[string]string, len(l.Pairs))
		for _, p := range l.Pairs {
			sp, ok := reg.Lookup(p.Key)
			if !ok {
				errs = append(errs, &Error{
					Kind:   UnknownOption,
					Layer:  l.Name,
					Key:    p.Key,
					Raw:    p.Value,
					Line:   p.Line,
					Reason: "not a registered option",
				})
				continue
			}

			// Validate every occurrence, even ones a later layer will
			// override: a bad value is a user mistake regardless.
			if _, verr := sp.parse(p.Value); verr != nil {
				errs = append(errs, &Error{
					Kind:   verr.kind,
					Layer:  l.Name,
					Key:    p.Key,
					Raw:    p.Value,
					Line:   p.Line,
					Reason: verr.reason,
				})
				continue
			}

			overlay[p.Key] = p.Value
		}

		if err := mergo.Merge(&merged, overlay, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging layer %s: %w", l.Name, err)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	values := make(map[string]Value, len(merged))
	for name, raw := range merged {
		sp, _ := reg.Lookup(name)
		v, verr := sp.parse(raw)
		if verr != nil {
			// Every merged raw value was validated above or at registry
			// build time.
			panic("conf: merged value for " + name + " failed revalidation")
		}
		values[name] = v
	}

	applyImplications(reg, values)

	return &Config{reg: reg, values: values}, nil
}

// applyImplications forces implied values after merging. Options are
// visited in sorted key order and implications are applied in one pass;
// forced values do not trigger further implications.
func applyImplications(reg *Registry, values map[string]Value) {
	for _, name := range reg.names {
		sp := reg.specs[name]
		for _, imp := range sp.Implies {
			if values[name].Encode() != imp.When {
				continue
			}

			target, _ := reg.Lookup(imp.Key)
			v, verr := target.parse(imp.Value)
			if verr != nil {
				// NewRegistry validated every implication value.
				panic("conf: implied value for " + imp.Key + " failed revalidation")
			}
			values[imp.Key] = v
		}
	}
}

// Get returns the resolved value for key. Looking up an unregistered key
// is a contract violation by the caller and panics; user configuration
// mistakes never reach this point.
func (c *Config) Get(key string) Value {
	v, ok := c.values[key]
	if !ok {
		panic("conf: lookup of unregistered option " + key)
	}
	return v
}

// Bool returns the resolved boolean value for key.
func (c *Config) Bool(key string) bool { return c.Get(key).Bool() }

// Int returns the resolved integer value for key.
func (c *Config) Int(key string) int64 { return c.Get(key).Int() }

// Str returns the resolved string value for key.
func (c *Config) Str(key string) string { return c.Get(key).Str() }

// Decimal returns the resolved decimal value for key.
func (c *Config) Decimal(key string) decimal.Decimal { return c.Get(key).Decimal() }

// EntryMode returns the entry mode configured for the given wordlist under
// an entry-mode map option. Wordlists not mentioned in the configured map
// fall back to the option's declared sub-default. An unrecognized wordlist
// is a contract violation and panics.
func (c *Config) EntryMode(key, wordlist string) string {
	sp, ok := c.reg.Lookup(key)
	if !ok {
		panic("conf: lookup of unregistered option " + key)
	}

	found := false
	for _, sk := range sp.SubKeys {
		if sk == wordlist {
			found = true
			break
		}
	}
	if !found {
		panic("conf: unrecognized wordlist " + wordlist + " for option " + key)
	}

	if mode, ok := c.Get(key).m[wordlist]; ok {
		return mode
	}
	return sp.SubDefault
}
