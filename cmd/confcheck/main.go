package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/walletsuite/walletconf/internal/conf"
	"github.com/walletsuite/walletconf/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// settings holds confcheck's own process settings, parsed from the
// environment before any flag handling. These configure the tool itself,
// not the wallet suite; wallet options flow through the resolution layers.
type settings struct {
	// ConfigPath is the wallet config file to resolve. Optional; when
	// empty and no -c flag is given, resolution runs without a file layer.
	ConfigPath string `env:"WALLETCONF_CONFIG"`

	// EnvPrefix namespaces the environment layer's variables
	// (e.g. WALLETCONF_RPC_PORT -> rpc_port).
	EnvPrefix string `env:"WALLETCONF_ENV_PREFIX" envDefault:"WALLETCONF_OPT_"`
}

func main() {
	printBuildInfo()

	log := logger.New("confcheck")

	var s settings
	if err := env.Parse(&s); err != nil {
		log.Fatal().Err(err).Msg("error parsing tool settings")
	}

	var configPath string
	flag.StringVar(&configPath, "c", "", "wallet config file path")
	flag.StringVar(&configPath, "config", "", "wallet config file path (alias)")
	flag.Parse()

	if configPath == "" {
		configPath = s.ConfigPath
	}

	registry := conf.WalletRegistry()

	layers := make([]conf.Layer, 0, 3)
	if configPath != "" {
		fileLayer, err := conf.FileLayer(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("error loading config file")
		}
		layers = append(layers, fileLayer)
		log.Debug().Str("path", configPath).Int("pairs", len(fileLayer.Pairs)).Msg("loaded file layer")
	}

	layers = append(layers, conf.EnvLayer(s.EnvPrefix))
	layers = append(layers, conf.OverrideLayer(flag.Args()))

	cfg, err := conf.Resolve(registry, layers...)
	if err != nil {
		var errList conf.ErrorList
		if errors.As(err, &errList) {
			for _, e := range errList {
				log.Error().
					Str("kind", e.Kind.String()).
					Str("layer", e.Layer).
					Str("key", e.Key).
					Str("raw", e.Raw).
					Int("line", e.Line).
					Msg(e.Reason)
			}
			log.Fatal().Int("errors", len(errList)).Msg("configuration is invalid")
		}
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	if err := cfg.Encode(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("error writing resolved configuration")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
