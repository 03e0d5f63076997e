// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The walletconf Authors

package conf

// Option keys registered by [WalletRegistry]. Consuming modules look values
// up by these constants rather than repeating string literals.
const (
	OptColor         = "color"
	OptForce256Color = "force_256_color"
	OptQuiet         = "quiet"
	OptDebug         = "debug"
	OptCoin          = "coin"
	OptTestnet       = "testnet"
	OptRegtest       = "regtest"
	OptUsrRandchars  = "usr_randchars"
	OptHashPreset    = "hash_preset"
	OptMinconf       = "minconf"
	OptHTTPTimeout   = "http_timeout"
	OptRPCHost       = "rpc_host"
	OptRPCPort       = "rpc_port"
	OptRPCUser       = "rpc_user"
	OptRPCPassword   = "rpc_password"
	OptDaemonDataDir = "daemon_data_dir"
	OptMaxTxFee      = "max_tx_fee"
	OptTxFeeAdj      = "tx_fee_adj"
	OptMnemonicModes = "mnemonic_entry_modes"
)

// Wordlists recognized as subkeys of mnemonic_entry_modes.
var wordlists = []string{"mmgen", "bip39", "xmrseed"}

// Entry modes recognized as subvalues of mnemonic_entry_modes.
var entryModes = []string{"full", "short", "fixed", "minimal"}

// WalletRegistry returns the option registry for the wallet suite. The
// registry is a static literal; a build failure here is a programming error
// and panics at startup.
func WalletRegistry() *Registry {
	r, err := NewRegistry(
		OptionSpec{
			Name: OptColor, Kind: KindBool, Default: "true",
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptForce256Color, Kind: KindBool, Default: "false",
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptQuiet, Kind: KindBool, Default: "false",
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptDebug, Kind: KindBool, Default: "false",
			Scope: ScopeGlobal, Visibility: VisibilityDeveloper,
		},
		OptionSpec{
			Name: OptCoin, Kind: KindEnum, Default: "btc",
			Allowed: []string{"btc", "bch", "b2x", "ltc", "eth", "etc", "zec", "xmr"},
			Scope:   ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptTestnet, Kind: KindBool, Default: "false",
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			// Regtest mode always runs against a local test chain, so it
			// forces testnet regardless of the configured value.
			Name: OptRegtest, Kind: KindBool, Default: "false",
			Scope: ScopeGlobal, Visibility: VisibilityDeveloper,
			Implies: []Implication{
				{When: "true", Key: OptTestnet, Value: "true"},
			},
		},
		OptionSpec{
			Name: OptUsrRandchars, Kind: KindInt, Default: "30", Min: 10, Max: 80,
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptHashPreset, Kind: KindInt, Default: "3", Min: 1, Max: 7,
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptMinconf, Kind: KindInt, Default: "1", Min: 1, Max: 9999,
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptHTTPTimeout, Kind: KindInt, Default: "60", Min: 1, Max: 3600,
			Scope: ScopeGlobal, Visibility: VisibilityDeveloper,
		},
		OptionSpec{
			Name: OptRPCHost, Kind: KindHostname, Default: "localhost",
			Scope: ScopePerCoin, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptRPCPort, Kind: KindPort, Default: "8332",
			Scope: ScopePerCoin, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptRPCUser, Kind: KindString, Default: "",
			Scope: ScopePerCoin, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptRPCPassword, Kind: KindString, Default: "",
			Scope: ScopePerCoin, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptDaemonDataDir, Kind: KindString, Default: "",
			Scope: ScopePerCoin, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptMaxTxFee, Kind: KindDecimal, Default: "0.003",
			Scope: ScopePerCoin, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptTxFeeAdj, Kind: KindDecimal, Default: "1.0",
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
		OptionSpec{
			Name: OptMnemonicModes, Kind: KindEntryModeMap, Default: "",
			SubKeys: wordlists, SubValues: entryModes, SubDefault: "full",
			Scope: ScopeGlobal, Visibility: VisibilityUser,
		},
	)
	if err != nil {
		panic("conf: invalid wallet registry: " + err.Error())
	}

	return r
}
