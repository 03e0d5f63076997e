// Package conf implements the configuration resolution engine for the
// wallet suite.
//
// Configuration values are assembled from an ordered set of source layers
// (later layers override earlier ones, per key):
//  1. Registry defaults
//  2. Config file (flat "key value" grammar)
//  3. Environment variables (prefix-scanned)
//  4. Runtime overrides ("key=value" arguments)
//
// Every raw value is validated against its option's declared kind before
// merging, and every validation failure across every layer is collected and
// reported together. When any failure exists, no resolved configuration is
// produced. The resolved [Config] is immutable and safe for concurrent reads.
//
// The main entry points are [WalletRegistry] for the option schema and
// [Resolve] for producing a [Config] from layers.
package conf
