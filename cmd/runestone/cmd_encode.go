// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/BoostyLabs/runestone/bitcoin/ord/runes"
)

var etchingFlags = []string{
	"rune", "divisibility", "symbol", "premine", "turbo",
	"amount", "cap", "height-start", "height-end", "offset-start", "offset-end",
}

var termsFlags = []string{"amount", "cap", "height-start", "height-end", "offset-start", "offset-end"}

type encodeCmdOptions struct {
	Rune         string
	Divisibility uint8
	Symbol       string
	Premine      string
	Turbo        bool
	Amount       string
	Cap          string
	HeightStart  uint64
	HeightEnd    uint64
	OffsetStart  uint64
	OffsetEnd    uint64
	Mint         string
	Pointer      uint32
	Edicts       []string
	Payload      bool
}

// NewEncodeCommand returns command encoding runestone described by flags into hex encoded script.
func NewEncodeCommand(handlers *CommandHandlers) *cobra.Command {
	opts := &encodeCmdOptions{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode runestone into OP_RETURN script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.encodeHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Rune, "rune", "", "etched rune name with optional spacers, E.g. `UNCOMMON•GOODS`")
	flags.Uint8Var(&opts.Divisibility, "divisibility", 0, "etched rune divisibility")
	flags.StringVar(&opts.Symbol, "symbol", "", "etched rune currency symbol, single character")
	flags.StringVar(&opts.Premine, "premine", "", "premined amount")
	flags.BoolVar(&opts.Turbo, "turbo", false, "opt etched rune into future protocol changes")
	flags.StringVar(&opts.Amount, "amount", "", "amount per mint")
	flags.StringVar(&opts.Cap, "cap", "", "mints cap")
	flags.Uint64Var(&opts.HeightStart, "height-start", 0, "absolute block height mints start at")
	flags.Uint64Var(&opts.HeightEnd, "height-end", 0, "absolute block height mints end at")
	flags.Uint64Var(&opts.OffsetStart, "offset-start", 0, "mints start offset relative to etching block")
	flags.Uint64Var(&opts.OffsetEnd, "offset-end", 0, "mints end offset relative to etching block")
	flags.StringVar(&opts.Mint, "mint", "", "rune id to mint, E.g. `840000:3`")
	flags.Uint32Var(&opts.Pointer, "pointer", 0, "output receiving unallocated runes")
	flags.StringArrayVar(&opts.Edicts, "edict", nil, "edict as `block:tx:amount:output`, may be repeated")
	flags.BoolVar(&opts.Payload, "payload", false, "print payload only, without script wrapping")

	return cmd
}

func (handlers *CommandHandlers) encodeHandler(opts *encodeCmdOptions, cmd *cobra.Command, _ []string) error {
	runestone, err := opts.runestone(cmd)
	if err != nil {
		return err
	}

	encode := runestone.IntoScript
	if opts.Payload {
		encode = runestone.Serialize
	}

	data, err := encode()
	if err != nil {
		return handlers.codecFailure(err)
	}

	handlers.logger.Debug("runestone encoded", slog.Int("size", len(data)))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
	return err
}

// runestone assembles runes.Runestone from changed flags.
func (opts *encodeCmdOptions) runestone(cmd *cobra.Command) (*runes.Runestone, error) {
	var (
		flags     = cmd.Flags()
		runestone = new(runes.Runestone)
		err       error
	)

	if lo.SomeBy(etchingFlags, flags.Changed) {
		runestone.Etching, err = opts.etching(cmd)
		if err != nil {
			return nil, err
		}
	}

	if flags.Changed("mint") {
		mint, err := runes.NewRuneIDFromString(opts.Mint)
		if err != nil {
			return nil, errors.Wrap(err, "invalid mint")
		}
		runestone.Mint = &mint
	}

	if flags.Changed("pointer") {
		runestone.Pointer = lo.ToPtr(opts.Pointer)
	}

	for _, value := range opts.Edicts {
		edict, err := parseEdict(value)
		if err != nil {
			return nil, err
		}
		runestone.Edicts = append(runestone.Edicts, edict)
	}

	return runestone, nil
}

func (opts *encodeCmdOptions) etching(cmd *cobra.Command) (*runes.Etching, error) {
	var (
		flags   = cmd.Flags()
		etching = &runes.Etching{Turbo: opts.Turbo}
		err     error
	)

	if flags.Changed("rune") {
		name, spacers, err := runes.NewRuneFromStringWithSpacer(opts.Rune)
		if err != nil {
			return nil, errors.Wrap(err, "invalid rune")
		}

		etching.Rune = name
		if spacers != 0 {
			etching.Spacers = &spacers
		}
	}

	if flags.Changed("divisibility") {
		if opts.Divisibility > runes.MaxDivisibility {
			return nil, errors.Newf("divisibility %d exceeds %d", opts.Divisibility, runes.MaxDivisibility)
		}
		etching.Divisibility = lo.ToPtr(opts.Divisibility)
	}

	if flags.Changed("symbol") {
		symbol, size := utf8.DecodeRuneInString(opts.Symbol)
		if symbol == utf8.RuneError || size != len(opts.Symbol) {
			return nil, errors.Newf("symbol %q must be a single character", opts.Symbol)
		}
		etching.Symbol = &symbol
	}

	if etching.Premine, err = parseOptionalBig(flags.Changed("premine"), opts.Premine, "premine"); err != nil {
		return nil, err
	}

	if !lo.SomeBy(termsFlags, flags.Changed) {
		return etching, nil
	}

	terms := new(runes.Terms)
	if terms.Amount, err = parseOptionalBig(flags.Changed("amount"), opts.Amount, "amount"); err != nil {
		return nil, err
	}
	if terms.Cap, err = parseOptionalBig(flags.Changed("cap"), opts.Cap, "cap"); err != nil {
		return nil, err
	}
	if flags.Changed("height-start") {
		terms.HeightStart = lo.ToPtr(opts.HeightStart)
	}
	if flags.Changed("height-end") {
		terms.HeightEnd = lo.ToPtr(opts.HeightEnd)
	}
	if flags.Changed("offset-start") {
		terms.OffsetStart = lo.ToPtr(opts.OffsetStart)
	}
	if flags.Changed("offset-end") {
		terms.OffsetEnd = lo.ToPtr(opts.OffsetEnd)
	}
	etching.Terms = terms

	return etching, nil
}

// parseEdict parses edict from `block:tx:amount:output` form.
func parseEdict(value string) (runes.Edict, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 4 {
		return runes.Edict{}, errors.Newf("invalid edict format: %s", value)
	}

	id, err := runes.NewRuneIDFromString(parts[0] + ":" + parts[1])
	if err != nil {
		return runes.Edict{}, errors.Wrapf(err, "invalid edict %s", value)
	}

	amount, err := parseBig(parts[2], "edict amount")
	if err != nil {
		return runes.Edict{}, err
	}

	output, err := strconv.ParseUint(parts[3], 10, 32)
	if err != nil {
		return runes.Edict{}, errors.Wrapf(err, "invalid edict output %s", parts[3])
	}

	return runes.Edict{RuneID: id, Amount: amount, Output: uint32(output)}, nil
}

func parseBig(value, name string) (*big.Int, error) {
	number, ok := new(big.Int).SetString(value, 10)
	if !ok || number.Sign() < 0 {
		return nil, errors.Newf("invalid %s: %s", name, value)
	}

	return number, nil
}

func parseOptionalBig(changed bool, value, name string) (*big.Int, error) {
	if !changed {
		return nil, nil
	}

	return parseBig(value, name)
}
