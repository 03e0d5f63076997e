// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// FileLayer reads and parses the config file at path. The returned error
// covers IO failures only; lines that violate the grammar are recorded as
// malformed input on the layer and surface later through Resolve.
func FileLayer(path string) (Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layer{}, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	l, err := parseFile(f)
	if err != nil {
		return Layer{}, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return l, nil
}

// parseFile parses the flat config grammar: each non-blank, non-comment
// line holds "key value" separated by whitespace, where value is the
// trimmed remainder of the line. A comment is a line whose first non-blank
// character is '#'. No quoting, no escaping, no multi-line values.
func parseFile(r io.Reader) (Layer, error) {
	l := Layer{Name: LayerFile}

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Key runs to the first whitespace; value is the trimmed rest.
		sep := strings.IndexFunc(trimmed, unicode.IsSpace)
		if sep < 0 {
			l.Malformed = append(l.Malformed, MalformedInput{Line: line, Text: text})
			continue
		}

		l.Pairs = append(l.Pairs, Pair{
			Key:   trimmed[:sep],
			Value: strings.TrimSpace(trimmed[sep:]),
			Line:  line,
		})
	}

	if err := scanner.Err(); err != nil {
		return Layer{}, err
	}

	return l, nil
}
