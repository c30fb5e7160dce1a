// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"log/slog"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/BoostyLabs/runestone/bitcoin/ord/runes"
	"github.com/BoostyLabs/runestone/bitcoin/taproot"
)

// CommitView describes taproot output committing to the etched rune name.
type CommitView struct {
	Rune       string `json:"rune"`
	Commitment string `json:"commitment"`
	LeafScript string `json:"leaf_script"`
	OutputKey  string `json:"output_key"`
	Address    string `json:"address"`
}

type commitCmdOptions struct {
	InternalKey string
}

// NewCommitCommand returns command generating taproot address committing to the rune name.
func NewCommitCommand(handlers *CommandHandlers) *cobra.Command {
	opts := &commitCmdOptions{}

	cmd := &cobra.Command{
		Use:   "commit <name>",
		Short: "Generate taproot commitment for etching the rune name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.commitHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.InternalKey, "internal-key", "", "hex encoded internal public key, compressed or x-only")
	_ = cmd.MarkFlagRequired("internal-key")

	return cmd
}

func (handlers *CommandHandlers) commitHandler(opts *commitCmdOptions, cmd *cobra.Command, args []string) error {
	r, spacers, err := runes.NewRuneFromStringWithSpacer(args[0])
	if err != nil {
		return err
	}

	internalKey, err := parsePubKey(opts.InternalKey)
	if err != nil {
		return err
	}

	leafScript, err := taproot.NewCommitmentScript(internalKey, r.Commitment())
	if err != nil {
		return errors.Wrap(err, "build commitment script")
	}

	address, err := taproot.NewAddress(handlers.params, internalKey, leafScript)
	if err != nil {
		return errors.Wrap(err, "build taproot address")
	}

	handlers.logger.Debug("commitment generated", slog.String("rune", r.String()), slog.String("address", address.EncodeAddress()))

	return printJSON(cmd.OutOrStdout(), CommitView{
		Rune:       r.StringWithSeparator(spacers),
		Commitment: hex.EncodeToString(r.Commitment()),
		LeafScript: hex.EncodeToString(leafScript),
		OutputKey:  hex.EncodeToString(address.WitnessProgram()),
		Address:    address.EncodeAddress(),
	})
}

// parsePubKey parses 33 bytes compressed or 32 bytes x-only public key.
func parsePubKey(value string) (*btcec.PublicKey, error) {
	raw, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Wrap(err, "invalid internal key hex")
	}

	if len(raw) == schnorr.PubKeyBytesLen {
		key, err := schnorr.ParsePubKey(raw)
		return key, errors.Wrap(err, "invalid x-only internal key")
	}

	key, err := btcec.ParsePubKey(raw)
	return key, errors.Wrap(err, "invalid internal key")
}
