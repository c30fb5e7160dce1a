// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandHandlers holds state shared by sub-commands, filled before any of them runs.
type CommandHandlers struct {
	viper  *viper.Viper
	config Config
	params *chaincfg.Params
	logger *slog.Logger
}

// NewRootCommand returns runestone command with all sub-commands registered.
func NewRootCommand() *cobra.Command {
	var (
		configFile string
		handlers   = &CommandHandlers{
			viper:  newViper(),
			logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
		}
	)

	cmd := &cobra.Command{
		Use:           "runestone",
		Short:         "Encode and decode runestones",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.init(cmd.ErrOrStderr(), configFile)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("network", "mainnet", "bitcoin network, one of mainnet, testnet, signet, regtest")
	flags.String("log-level", "info", "minimum log level, one of debug, info, warn, error")

	// errors are impossible here, flags are defined above.
	_ = bindFlags(handlers.viper, flags, "network", "log-level")

	cmd.AddCommand(
		NewDecodeCommand(handlers),
		NewEncodeCommand(handlers),
		NewNameCommand(handlers),
		NewCommitCommand(handlers),
	)

	return cmd
}

// Execute runs root command with provided arguments.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)).Error("command failed", errAttr(err))
		return err
	}

	return nil
}

func (handlers *CommandHandlers) init(logOutput io.Writer, configFile string) error {
	config, err := loadConfig(handlers.viper, configFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(logOutput, config.LogLevel)
	if err != nil {
		return err
	}

	params, err := config.ChainParams()
	if err != nil {
		return err
	}

	handlers.config = config
	handlers.params = params
	handlers.logger = logger.With(slog.String("network", params.Name))

	return nil
}

// printJSON writes v as indented json.
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
