// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

// Layer names in ascending precedence order.
const (
	LayerDefaults    = "defaults"
	LayerFile        = "file"
	LayerEnvironment = "environment"
	LayerOverrides   = "cli"
)

// Pair is one raw key/value occurrence in a source layer. Line is the
// 1-based source position where the layer has one (file line, argument
// index) and zero otherwise.
type Pair struct {
	Key   string
	Value string
	Line  int
}

// Layer is an ordered sequence of raw key/value pairs from one named
// source. Malformed input does not abort loading: pairs that failed the
// source's grammar are recorded in Malformed so that Resolve can report
// them together with every other validation failure.
type Layer struct {
	Name      string
	Pairs     []Pair
	Malformed []MalformedInput
}

// MalformedInput is a raw input unit (file line, override argument) that did
// not match the layer's grammar.
type MalformedInput struct {
	Line int
	Text string
}
