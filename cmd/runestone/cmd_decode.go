// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"bytes"
	"encoding/hex"
	"log/slog"

	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/BoostyLabs/runestone/bitcoin/ord/runes"
)

// ErrNoRunestone defines that decoded script or transaction carries no runestone.
var ErrNoRunestone = errors.New("no runestone found")

type decodeCmdOptions struct {
	Tx bool
}

// NewDecodeCommand returns command decoding runestone from hex encoded script or raw transaction.
func NewDecodeCommand(handlers *CommandHandlers) *cobra.Command {
	opts := &decodeCmdOptions{}

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode runestone from output script or raw transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.decodeHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.Tx, "tx", false, "treat input as serialized transaction")

	return cmd
}

func (handlers *CommandHandlers) decodeHandler(opts *decodeCmdOptions, cmd *cobra.Command, args []string) error {
	raw, err := hex.DecodeString(args[0])
	if err != nil {
		return errors.Wrap(err, "invalid hex input")
	}

	var (
		runestone *runes.Runestone
		view      *RunestoneView
	)
	if opts.Tx {
		tx := wire.NewMsgTx(wire.TxVersion)
		if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
			return errors.Wrap(err, "invalid transaction")
		}

		var idx int
		runestone, idx, err = runes.DecipherTransaction(tx)
		if err != nil {
			return handlers.codecFailure(err)
		}
		if runestone == nil {
			return ErrNoRunestone
		}

		view = NewRunestoneView(runestone)
		view.TxID = tx.TxHash().String()
		view.Output = &idx
	} else {
		runestone, err = runes.ParseRunestone(raw)
		if err != nil {
			return handlers.codecFailure(err)
		}
		if runestone == nil {
			return ErrNoRunestone
		}

		view = NewRunestoneView(runestone)
	}

	handlers.logger.Debug("runestone decoded",
		slog.Int("edicts", len(runestone.Edicts)),
		slog.Bool("etching", runestone.Etching != nil),
	)

	return printJSON(cmd.OutOrStdout(), view)
}

// codecFailure logs codec error details and returns the error.
func (handlers *CommandHandlers) codecFailure(err error) error {
	var codecErr *runes.CodecError
	if errors.As(err, &codecErr) {
		attrs := []any{
			slog.String("kind", codecErr.Kind().String()),
			slog.Int("offset", codecErr.Offset()),
		}
		if tag := codecErr.Tag(); tag != nil {
			attrs = append(attrs, slog.String("tag", tag.String()))
		}

		handlers.logger.Warn("malformed runestone", attrs...)
	}

	return err
}
