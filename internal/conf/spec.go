// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// OptionSpec is the static descriptor for one configuration key. A spec is
// registered once at startup and never mutated afterwards.
type OptionSpec struct {
	// Name is the unique option key, as written in config sources
	// (e.g. "rpc_port").
	Name string

	// Kind selects the validation rules for raw values of this option.
	Kind ValueKind

	// Default is the raw-form default, validated at registry build time.
	Default string

	// Min and Max bound KindInt options, inclusive. Ignored for other
	// kinds; KindPort is always bounded to [1,65535] by the registry.
	Min, Max int64

	// Allowed is the member set for KindEnum options.
	Allowed []string

	// SubKeys and SubValues are the recognized subkey and subvalue sets
	// for KindEntryModeMap options (e.g. wordlist names and entry modes).
	SubKeys   []string
	SubValues []string

	// SubDefault is the subvalue assumed for SubKeys members not mentioned
	// in a KindEntryModeMap value. Partial maps are permitted.
	SubDefault string

	Scope      Scope
	Visibility Visibility

	// Implies lists forced overrides applied to other options after all
	// layers are merged and validated. Represented as data so that option
	// interactions stay declarative instead of scattered through code.
	Implies []Implication
}

// Implication forces another option's effective value whenever this
// option's resolved value encodes to When. Applied deterministically as a
// final pass after merging; it overrides even explicit user values for the
// target key.
type Implication struct {
	When  string
	Key   string
	Value string
}

// valueError is a validation failure detached from its source context.
// Resolve wraps it with the layer, key, and raw value to build an [*Error].
type valueError struct {
	kind   ErrorKind
	reason string
}

// parse validates raw against the spec's kind and returns the typed value.
func (sp *OptionSpec) parse(raw string) (Value, *valueError) {
	switch sp.Kind {
	case KindBool:
		return parseBool(raw)
	case KindInt:
		return parseInt(raw, sp.Min, sp.Max)
	case KindPort:
		v, verr := parseInt(raw, 1, 65535)
		if verr != nil {
			return Value{}, verr
		}
		v.kind = KindPort
		return v, nil
	case KindDecimal:
		return parseDecimal(raw)
	case KindString:
		return Value{kind: KindString, s: raw}, nil
	case KindEnum:
		if !slices.Contains(sp.Allowed, raw) {
			return Value{}, &valueError{
				kind:   EnumViolation,
				reason: fmt.Sprintf("must be one of: %s", strings.Join(sp.Allowed, " ")),
			}
		}
		return Value{kind: KindEnum, s: raw}, nil
	case KindHostname:
		if raw == "" {
			return Value{}, &valueError{
				kind:   TypeMismatch,
				reason: "hostname must be non-empty",
			}
		}
		return Value{kind: KindHostname, s: raw}, nil
	case KindEntryModeMap:
		return sp.parseEntryModeMap(raw)
	default:
		return Value{}, &valueError{
			kind:   TypeMismatch,
			reason: fmt.Sprintf("unsupported value kind %d", sp.Kind),
		}
	}
}

func parseBool(raw string) (Value, *valueError) {
	switch strings.ToLower(raw) {
	case "true", "yes", "1":
		return Value{kind: KindBool, b: true}, nil
	case "false", "no", "0":
		return Value{kind: KindBool, b: false}, nil
	default:
		return Value{}, &valueError{
			kind:   TypeMismatch,
			reason: "must be a boolean (true/false, yes/no, 1/0)",
		}
	}
}

func parseInt(raw string, min, max int64) (Value, *valueError) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Value{}, &valueError{
			kind:   TypeMismatch,
			reason: "must be an integer",
		}
	}

	if n < min || n > max {
		return Value{}, &valueError{
			kind:   RangeViolation,
			reason: fmt.Sprintf("must be in range [%d,%d]", min, max),
		}
	}

	return Value{kind: KindInt, i: n}, nil
}

func parseDecimal(raw string) (Value, *valueError) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Value{}, &valueError{
			kind:   TypeMismatch,
			reason: "must be a decimal number",
		}
	}

	if d.IsNegative() {
		return Value{}, &valueError{
			kind:   RangeViolation,
			reason: "must be non-negative",
		}
	}

	return Value{kind: KindDecimal, d: d}, nil
}

// parseEntryModeMap parses "subkey:subvalue" pairs separated by whitespace.
// A repeated subkey takes its last value, consistent with the engine's
// last-write-wins merge rule.
func (sp *OptionSpec) parseEntryModeMap(raw string) (Value, *valueError) {
	m := make(map[string]string)
	for _, pair := range strings.Fields(raw) {
		subkey, subvalue, ok := strings.Cut(pair, ":")
		if !ok || subkey == "" || subvalue == "" {
			return Value{}, &valueError{
				kind:   MalformedMapEntry,
				reason: fmt.Sprintf("entry %q is not of form subkey:subvalue", pair),
			}
		}

		if !slices.Contains(sp.SubKeys, subkey) {
			return Value{}, &valueError{
				kind:   EnumViolation,
				reason: fmt.Sprintf("unknown subkey %q, must be one of: %s", subkey, strings.Join(sp.SubKeys, " ")),
			}
		}

		if !slices.Contains(sp.SubValues, subvalue) {
			return Value{}, &valueError{
				kind:   EnumViolation,
				reason: fmt.Sprintf("invalid subvalue %q for %q, must be one of: %s", subvalue, subkey, strings.Join(sp.SubValues, " ")),
			}
		}

		m[subkey] = subvalue
	}

	return Value{kind: KindEntryModeMap, m: m}, nil
}
