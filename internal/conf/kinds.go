// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

// ValueKind identifies the semantic type of an option's value and selects
// the validation rules applied to raw input for that option.
type ValueKind int

const (
	// KindBool accepts case-insensitive true/false, yes/no, 1/0.
	KindBool ValueKind = iota + 1

	// KindInt accepts a base-10 integer within the option's [Min,Max] range.
	KindInt

	// KindDecimal accepts a non-negative arbitrary-precision decimal.
	// Used for fee and amount options where binary floats are unacceptable.
	KindDecimal

	// KindString accepts any string, including the empty string.
	KindString

	// KindEnum accepts a case-sensitive member of the option's Allowed set.
	KindEnum

	// KindHostname accepts any non-empty string. No DNS resolution is
	// performed at this layer.
	KindHostname

	// KindPort accepts an integer in [1,65535].
	KindPort

	// KindEntryModeMap accepts a space-separated list of "subkey:subvalue"
	// pairs, with subkeys drawn from SubKeys and subvalues from SubValues.
	KindEntryModeMap
)

// String returns the human-readable kind name used in error messages.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindEnum:
		return "enumerated string"
	case KindHostname:
		return "hostname"
	case KindPort:
		return "port"
	case KindEntryModeMap:
		return "entry-mode map"
	default:
		return "unknown"
	}
}

// Scope describes whether an option applies suite-wide or is interpreted
// per selected coin by the consuming modules.
type Scope int

const (
	ScopeGlobal Scope = iota + 1
	ScopePerCoin
)

// Visibility separates options documented for end users from options
// intended for development and testing only.
type Visibility int

const (
	VisibilityUser Visibility = iota + 1
	VisibilityDeveloper
)
