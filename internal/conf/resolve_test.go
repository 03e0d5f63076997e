package conf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── defaults ──────────────────────────────────────────────────────────────────

// TestResolve_NoLayersYieldsDefaults verifies that an empty layer set
// resolves every registered key to its declared default.
func TestResolve_NoLayersYieldsDefaults(t *testing.T) {
	reg := WalletRegistry()

	cfg, err := Resolve(reg)
	require.NoError(t, err)

	assert.True(t, cfg.Bool(OptColor))
	assert.False(t, cfg.Bool(OptTestnet))
	assert.Equal(t, "btc", cfg.Str(OptCoin))
	assert.Equal(t, int64(8332), cfg.Int(OptRPCPort))
	assert.Equal(t, int64(30), cfg.Int(OptUsrRandchars))
	assert.Equal(t, "localhost", cfg.Str(OptRPCHost))
	assert.Equal(t, "0.003", cfg.Decimal(OptMaxTxFee).String())
	assert.Empty(t, cfg.Str(OptRPCUser))
}

// TestResolve_EveryRegisteredKeyHasValue verifies the core invariant: a
// lookup never fails for a registered key, even with no layers at all.
func TestResolve_EveryRegisteredKeyHasValue(t *testing.T) {
	reg := WalletRegistry()

	cfg, err := Resolve(reg)
	require.NoError(t, err)

	for _, name := range reg.Names() {
		assert.NotPanics(t, func() { cfg.Get(name) }, "key %s", name)
	}
}

// ── layering ──────────────────────────────────────────────────────────────────

// TestResolve_LastWriteWins verifies that a later layer's value overrides an
// earlier layer's for the same key.
func TestResolve_LastWriteWins(t *testing.T) {
	reg := WalletRegistry()

	file := Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptRPCPort, Value: "18332", Line: 1},
		{Key: OptCoin, Value: "ltc", Line: 2},
	}}
	cli := Layer{Name: LayerOverrides, Pairs: []Pair{
		{Key: OptRPCPort, Value: "19443", Line: 1},
	}}

	cfg, err := Resolve(reg, file, cli)
	require.NoError(t, err)

	assert.Equal(t, int64(19443), cfg.Int(OptRPCPort))
	assert.Equal(t, "ltc", cfg.Str(OptCoin)) // untouched by later layer
}

// TestResolve_LastWriteWinsWithinLayer verifies that a repeated key within
// one layer takes its last occurrence.
func TestResolve_LastWriteWinsWithinLayer(t *testing.T) {
	reg := WalletRegistry()

	file := Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptMinconf, Value: "3", Line: 1},
		{Key: OptMinconf, Value: "6", Line: 2},
	}}

	cfg, err := Resolve(reg, file)
	require.NoError(t, err)
	assert.Equal(t, int64(6), cfg.Int(OptMinconf))
}

// TestResolve_InvalidValueInOverriddenLayerStillFails verifies that a bad
// value is reported even when a later layer overrides the key: silently
// dropping it would hide a user mistake.
func TestResolve_InvalidValueInOverriddenLayerStillFails(t *testing.T) {
	reg := WalletRegistry()

	file := Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptRPCPort, Value: "notanumber", Line: 4},
	}}
	cli := Layer{Name: LayerOverrides, Pairs: []Pair{
		{Key: OptRPCPort, Value: "18332", Line: 1},
	}}

	_, err := Resolve(reg, file, cli)
	require.Error(t, err)

	var errs ErrorList
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, TypeMismatch, errs[0].Kind)
	assert.Equal(t, LayerFile, errs[0].Layer)
}

// ── error aggregation ─────────────────────────────────────────────────────────

// TestResolve_UnknownKeySingleError verifies that one unknown key yields
// exactly one error and no config.
func TestResolve_UnknownKeySingleError(t *testing.T) {
	reg := WalletRegistry()

	file := Layer{Name: LayerFile, Pairs: []Pair{
		{Key: "foo_bar", Value: "1", Line: 7},
	}}

	cfg, err := Resolve(reg, file)
	assert.Nil(t, cfg)

	var errs ErrorList
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, UnknownOption, errs[0].Kind)
	assert.Equal(t, "foo_bar", errs[0].Key)
	assert.Equal(t, 7, errs[0].Line)
}

// TestResolve_CollectsAllErrors verifies that every failure across every
// layer is reported in one call, not just the first.
func TestResolve_CollectsAllErrors(t *testing.T) {
	reg := WalletRegistry()

	file := Layer{
		Name: LayerFile,
		Pairs: []Pair{
			{Key: OptHashPreset, Value: "99", Line: 1},
			{Key: OptRPCPort, Value: "notanumber", Line: 2},
		},
		Malformed: []MalformedInput{{Line: 3, Text: "danglingkey"}},
	}
	env := Layer{Name: LayerEnvironment, Pairs: []Pair{
		{Key: OptCoin, Value: "doge"},
	}}

	cfg, err := Resolve(reg, file, env)
	assert.Nil(t, cfg)

	var errs ErrorList
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 4)

	kinds := make(map[ErrorKind]int)
	for _, e := range errs {
		kinds[e.Kind]++
	}
	assert.Equal(t, 1, kinds[RangeViolation])
	assert.Equal(t, 1, kinds[TypeMismatch])
	assert.Equal(t, 1, kinds[MalformedLine])
	assert.Equal(t, 1, kinds[EnumViolation])
}

// TestResolve_ErrorListMessage verifies that the aggregate message counts
// the failures and lists one per line.
func TestResolve_ErrorListMessage(t *testing.T) {
	reg := WalletRegistry()

	file := Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptHashPreset, Value: "99", Line: 1},
		{Key: OptRPCPort, Value: "notanumber", Line: 2},
	}}

	_, err := Resolve(reg, file)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "2 config error(s)")
	assert.Contains(t, msg, "hash_preset")
	assert.Contains(t, msg, "rpc_port")
	assert.Len(t, strings.Split(msg, "\n"), 3) // header + one line per error
}

// ── boundaries ────────────────────────────────────────────────────────────────

// TestResolve_BoundedIntBoundaries verifies inclusive bounds on
// usr_randchars through full resolution.
func TestResolve_BoundedIntBoundaries(t *testing.T) {
	reg := WalletRegistry()

	for raw, wantErr := range map[string]bool{
		"10": false, "80": false, "9": true, "81": true,
	} {
		l := Layer{Name: LayerFile, Pairs: []Pair{{Key: OptUsrRandchars, Value: raw, Line: 1}}}
		cfg, err := Resolve(reg, l)

		if wantErr {
			var errs ErrorList
			require.ErrorAs(t, err, &errs, "raw %q", raw)
			assert.Equal(t, RangeViolation, errs[0].Kind, "raw %q", raw)
		} else {
			require.NoError(t, err, "raw %q", raw)
			assert.Equal(t, raw, cfg.Get(OptUsrRandchars).Encode())
		}
	}
}

// TestResolve_FeeBoundaries verifies that a fee of zero is accepted and a
// negative fee is rejected.
func TestResolve_FeeBoundaries(t *testing.T) {
	reg := WalletRegistry()

	cfg, err := Resolve(reg, Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptMaxTxFee, Value: "0", Line: 1},
	}})
	require.NoError(t, err)
	assert.True(t, cfg.Decimal(OptMaxTxFee).IsZero())

	_, err = Resolve(reg, Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptMaxTxFee, Value: "-0.01", Line: 1},
	}})
	var errs ErrorList
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, RangeViolation, errs[0].Kind)
}

// ── implications ──────────────────────────────────────────────────────────────

// TestResolve_RegtestImpliesTestnet verifies that enabling regtest forces
// testnet on, with testnet left unset.
func TestResolve_RegtestImpliesTestnet(t *testing.T) {
	reg := WalletRegistry()

	cfg, err := Resolve(reg, Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptRegtest, Value: "true", Line: 1},
	}})
	require.NoError(t, err)

	assert.True(t, cfg.Bool(OptRegtest))
	assert.True(t, cfg.Bool(OptTestnet))
}

// TestResolve_ImplicationOverridesExplicitValue verifies that the forced
// value wins even over an explicit testnet=false in a later layer.
func TestResolve_ImplicationOverridesExplicitValue(t *testing.T) {
	reg := WalletRegistry()

	file := Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptRegtest, Value: "true", Line: 1},
	}}
	cli := Layer{Name: LayerOverrides, Pairs: []Pair{
		{Key: OptTestnet, Value: "false", Line: 1},
	}}

	cfg, err := Resolve(reg, file, cli)
	require.NoError(t, err)
	assert.True(t, cfg.Bool(OptTestnet))
}

// TestResolve_NoImplicationWhenRegtestOff verifies that testnet keeps its
// own value while regtest is disabled.
func TestResolve_NoImplicationWhenRegtestOff(t *testing.T) {
	reg := WalletRegistry()

	cfg, err := Resolve(reg, Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptTestnet, Value: "true", Line: 1},
	}})
	require.NoError(t, err)

	assert.False(t, cfg.Bool(OptRegtest))
	assert.True(t, cfg.Bool(OptTestnet))
}

// ── lookups ───────────────────────────────────────────────────────────────────

// TestConfig_GetUnregisteredPanics verifies that looking up an unregistered
// key is treated as a caller contract violation.
func TestConfig_GetUnregisteredPanics(t *testing.T) {
	cfg, err := Resolve(WalletRegistry())
	require.NoError(t, err)

	assert.Panics(t, func() { cfg.Get("no_such_option") })
	assert.Panics(t, func() { cfg.Bool("no_such_option") })
}

// TestConfig_EntryModePartialMap verifies that wordlists missing from a
// partial entry-mode map fall back to the sub-default.
func TestConfig_EntryModePartialMap(t *testing.T) {
	reg := WalletRegistry()

	cfg, err := Resolve(reg, Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptMnemonicModes, Value: "mmgen:minimal", Line: 1},
	}})
	require.NoError(t, err)

	assert.Equal(t, "minimal", cfg.EntryMode(OptMnemonicModes, "mmgen"))
	assert.Equal(t, "full", cfg.EntryMode(OptMnemonicModes, "bip39"))
	assert.Equal(t, "full", cfg.EntryMode(OptMnemonicModes, "xmrseed"))
}

// TestConfig_EntryModeUnknownWordlistPanics verifies the contract on the
// wordlist argument.
func TestConfig_EntryModeUnknownWordlistPanics(t *testing.T) {
	cfg, err := Resolve(WalletRegistry())
	require.NoError(t, err)

	assert.Panics(t, func() { cfg.EntryMode(OptMnemonicModes, "slip39") })
}

// ── round-trip ────────────────────────────────────────────────────────────────

// TestResolve_EncodeRoundTrip verifies that serializing a resolved config
// back to the file grammar and re-resolving yields the same config.
func TestResolve_EncodeRoundTrip(t *testing.T) {
	reg := WalletRegistry()

	cfg, err := Resolve(reg, Layer{Name: LayerFile, Pairs: []Pair{
		{Key: OptCoin, Value: "ltc", Line: 1},
		{Key: OptRegtest, Value: "true", Line: 2},
		{Key: OptMaxTxFee, Value: "0.01", Line: 3},
		{Key: OptRPCHost, Value: "node.internal", Line: 4},
		{Key: OptMnemonicModes, Value: "bip39:fixed mmgen:minimal", Line: 5},
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))

	reparsed, err := parseFile(&buf)
	require.NoError(t, err)
	assert.Empty(t, reparsed.Malformed, "encoded output must satisfy the file grammar")

	again, err := Resolve(reg, reparsed)
	require.NoError(t, err)

	for _, name := range reg.Names() {
		assert.True(t, cfg.Get(name).Equal(again.Get(name)),
			"key %s: %q != %q", name, cfg.Get(name).Encode(), again.Get(name).Encode())
	}
}

// TestConfig_EncodeSortedAndGrammatical verifies sorted key order and the
// omission of empty values the grammar cannot express.
func TestConfig_EncodeSortedAndGrammatical(t *testing.T) {
	cfg, err := Resolve(WalletRegistry())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	out := buf.String()

	assert.NotContains(t, out, OptRPCUser, "empty default must be omitted")
	assert.NotContains(t, out, OptMnemonicModes, "empty map must be omitted")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var keys []string
	for _, line := range lines {
		key, _, ok := strings.Cut(line, " ")
		require.True(t, ok, "line %q", line)
		keys = append(keys, key)
	}
	assert.IsIncreasing(t, keys)
}
