// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix defines prefix of environment variables overriding flags, e.g. RUNESTONE_NETWORK.
const envPrefix = "RUNESTONE"

// Config defines cli configuration.
type Config struct {
	Network  string `mapstructure:"network"`
	LogLevel string `mapstructure:"log-level"`
}

// ChainParams returns bitcoin network parameters by configured network name.
func (config Config) ChainParams() (*chaincfg.Params, error) {
	switch strings.ToLower(config.Network) {
	case "mainnet", "main":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3", "test":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, errors.Newf("unknown network %q", config.Network)
	}
}

// newViper returns viper instance reading environment variables with envPrefix.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// bindFlags binds named flags to viper keys of the same name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}

	return nil
}

// loadConfig reads optional config file and unmarshals resulting settings.
func loadConfig(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}
