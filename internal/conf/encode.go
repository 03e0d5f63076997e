// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import (
	"fmt"
	"io"
)

// Encode writes the resolved configuration in the config-file grammar, one
// "key value" line per option in sorted key order. Options whose encoded
// form is empty (empty strings, empty entry-mode maps) are omitted, since
// the grammar cannot express an empty value; their registered defaults are
// empty as well, so re-resolving the output reproduces this Config.
func (c *Config) Encode(w io.Writer) error {
	for _, name := range c.reg.names {
		raw := c.values[name].Encode()
		if raw == "" {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s %s\n", name, raw); err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
	}

	return nil
}
