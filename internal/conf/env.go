// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import (
	"os"
	"sort"
	"strings"
)

// EnvLayer snapshots the process environment and returns every variable
// carrying the given prefix as a raw pair, with "PREFIX_RPC_PORT" mapping
// to key "rpc_port". Variables without the prefix are ignored; prefixed
// variables that do not name a registered option are rejected by Resolve,
// the same as any other source.
//
// Option keys are data here, not struct fields, so the environment is
// scanned directly instead of tag-bound.
func EnvLayer(prefix string) Layer {
	l := Layer{Name: LayerEnvironment}

	environ := os.Environ()
	sort.Strings(environ) // os.Environ order is unspecified

	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		key := strings.ToLower(strings.TrimPrefix(name, prefix))
		if key == "" {
			continue
		}

		l.Pairs = append(l.Pairs, Pair{Key: key, Value: value})
	}

	return l
}
