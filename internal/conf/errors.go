// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a configuration validation failure. All kinds are
// user/config errors; contract violations by callers (looking up an
// unregistered key) panic instead of producing an ErrorKind.
type ErrorKind int

const (
	// MalformedLine: a config-file line or override argument that does not
	// match the "key value" grammar.
	MalformedLine ErrorKind = iota + 1

	// UnknownOption: a key not present in the option registry. Unknown
	// keys are rejected rather than ignored so typos surface immediately.
	UnknownOption

	// TypeMismatch: a raw value that cannot be parsed as the option's kind.
	TypeMismatch

	// RangeViolation: a parsed value outside the option's declared bounds.
	RangeViolation

	// EnumViolation: a value (or map subkey/subvalue) outside the allowed set.
	EnumViolation

	// MalformedMapEntry: a map entry not of the form "subkey:subvalue".
	MalformedMapEntry
)

// String returns the stable kind label used in logs and error text.
func (k ErrorKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed line"
	case UnknownOption:
		return "unknown option"
	case TypeMismatch:
		return "type mismatch"
	case RangeViolation:
		return "out of range"
	case EnumViolation:
		return "invalid enum value"
	case MalformedMapEntry:
		return "malformed map entry"
	default:
		return "unknown error"
	}
}

// Error records one validation failure: which key, in which layer, with
// which raw value, and why it was rejected.
type Error struct {
	Kind  ErrorKind
	Layer string

	// Key is empty for MalformedLine failures, where no key was parsed.
	Key string

	// Raw is the rejected raw value, or the full line text for
	// MalformedLine failures.
	Raw string

	// Line is the 1-based source line (file layer) or argument position
	// (override layer). Zero when the layer has no line structure.
	Line int

	Reason string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", e.Kind, e.Layer)
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, " %s", e.Key)
	}
	fmt.Fprintf(&b, ": %q", e.Raw)
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	return b.String()
}

// ErrorList aggregates every validation failure found across all layers in
// a single Resolve call, so one fix-and-rerun cycle can address them all.
type ErrorList []*Error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d config error(s):\n%s", len(l), strings.Join(msgs, "\n"))
}
