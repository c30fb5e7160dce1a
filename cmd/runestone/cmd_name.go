// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"log/slog"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/BoostyLabs/runestone/bitcoin/ord/runes"
)

// NameView describes rune name in both protocol and packed encodings.
type NameView struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	Spacers    uint32 `json:"spacers,omitempty"`
	Reserved   bool   `json:"reserved"`
	Packed     string `json:"packed,omitempty"`
	PackedName string `json:"packed_name,omitempty"`
	MinLength  *int   `json:"min_length,omitempty"`
	Unlocked   *bool  `json:"unlocked,omitempty"`
	Commitment string `json:"commitment"`
}

type nameCmdOptions struct {
	Height uint64
}

// NewNameCommand returns command converting rune name to integer and back.
func NewNameCommand(handlers *CommandHandlers) *cobra.Command {
	opts := &nameCmdOptions{}

	cmd := &cobra.Command{
		Use:   "name <name|integer>",
		Short: "Convert rune name into integer and back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.nameHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&opts.Height, "height", 0, "block height to check name length against")

	return cmd
}

func (handlers *CommandHandlers) nameHandler(opts *nameCmdOptions, cmd *cobra.Command, args []string) error {
	var (
		view NameView
		r    *runes.Rune
		err  error
	)

	if value, ok := new(big.Int).SetString(args[0], 10); ok {
		r, err = runes.NewRuneFromNumber(value)
		if err != nil {
			return err
		}

		view.Name = r.String()
		view.PackedName = runes.IntegerToName(value)
	} else {
		r, view.Spacers, err = runes.NewRuneFromStringWithSpacer(args[0])
		if err != nil {
			return err
		}

		view.Name = r.StringWithSeparator(view.Spacers)
		if packed, err := runes.NameToInteger(args[0]); err != nil {
			handlers.logger.Debug("name can not be packed", slog.String("name", args[0]), errAttr(err))
		} else {
			view.Packed = packed.String()
		}
	}

	view.Value = r.Value().String()
	view.Reserved = r.IsReserved()
	view.Commitment = hex.EncodeToString(r.Commitment())

	if cmd.Flags().Changed("height") {
		minLength := runes.MinNameLength(opts.Height)
		unlocked := len(r.String()) >= minLength
		view.MinLength, view.Unlocked = &minLength, &unlocked
	}

	return printJSON(cmd.OutOrStdout(), view)
}

