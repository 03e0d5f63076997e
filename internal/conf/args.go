// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import "strings"

// OverrideLayer parses explicit runtime overrides of the form "key=value",
// as passed on the command line after flags. Arguments that do not match
// the form are recorded as malformed input, carrying their 1-based argument
// position in place of a line number.
func OverrideLayer(args []string) Layer {
	l := Layer{Name: LayerOverrides}

	for i, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			l.Malformed = append(l.Malformed, MalformedInput{Line: i + 1, Text: arg})
			continue
		}

		l.Pairs = append(l.Pairs, Pair{Key: key, Value: value, Line: i + 1})
	}

	return l
}
