// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is a typed, validated configuration value. The zero Value has no
// kind and is never returned by a successful parse or lookup.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	d    decimal.Decimal
	s    string
	m    map[string]string
}

// Kind reports the value's semantic kind.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the boolean value. Panics if the kind is not KindBool;
// calling the wrong accessor is a contract violation, not a config error.
func (v Value) Bool() bool {
	v.mustKind(KindBool)
	return v.b
}

// Int returns the integer value for KindInt and KindPort values.
func (v Value) Int() int64 {
	if v.kind != KindInt && v.kind != KindPort {
		panic("conf: Int called on " + v.kind.String() + " value")
	}
	return v.i
}

// Decimal returns the decimal value.
func (v Value) Decimal() decimal.Decimal {
	v.mustKind(KindDecimal)
	return v.d
}

// Str returns the string form of KindString, KindEnum, and KindHostname
// values.
func (v Value) Str() string {
	if v.kind != KindString && v.kind != KindEnum && v.kind != KindHostname {
		panic("conf: Str called on " + v.kind.String() + " value")
	}
	return v.s
}

// Map returns a copy of an entry-mode map value. The copy keeps the
// resolved Config immutable.
func (v Value) Map() map[string]string {
	v.mustKind(KindEntryModeMap)
	return maps.Clone(v.m)
}

func (v Value) mustKind(want ValueKind) {
	if v.kind != want {
		panic("conf: " + want.String() + " accessor called on " + v.kind.String() + " value")
	}
}

// Encode returns the value's canonical raw form under the config-file
// grammar. Encode(parse(raw)) is stable: re-parsing the encoded form yields
// an equal value.
func (v Value) Encode() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt, KindPort:
		return strconv.FormatInt(v.i, 10)
	case KindDecimal:
		return v.d.String()
	case KindString, KindEnum, KindHostname:
		return v.s
	case KindEntryModeMap:
		pairs := make([]string, 0, len(v.m))
		for _, k := range slices.Sorted(maps.Keys(v.m)) {
			pairs = append(pairs, k+":"+v.m[k])
		}
		return strings.Join(pairs, " ")
	default:
		return ""
	}
}

// Equal reports whether two values hold the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindDecimal:
		return v.d.Equal(other.d)
	case KindEntryModeMap:
		return maps.Equal(v.m, other.m)
	default:
		return v.b == other.b && v.i == other.i && v.s == other.s
	}
}
