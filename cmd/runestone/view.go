// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"math/big"

	"github.com/samber/lo"

	"github.com/BoostyLabs/runestone/bitcoin/ord/runes"
)

// RunestoneView is json representation of runes.Runestone, integers are decimal strings.
type RunestoneView struct {
	TxID    string              `json:"txid,omitempty"`
	Output  *int                `json:"output,omitempty"`
	Etching *EtchingView        `json:"etching,omitempty"`
	Flags   string              `json:"flags,omitempty"`
	Mint    string              `json:"mint,omitempty"`
	Pointer *uint32             `json:"pointer,omitempty"`
	Edicts  []EdictView         `json:"edicts,omitempty"`
	Extra   map[string][]string `json:"extra,omitempty"`
}

// EtchingView is json representation of runes.Etching.
type EtchingView struct {
	Rune         string     `json:"rune,omitempty"`
	RuneValue    string     `json:"rune_value,omitempty"`
	Divisibility *byte      `json:"divisibility,omitempty"`
	Premine      string     `json:"premine,omitempty"`
	Spacers      *uint32    `json:"spacers,omitempty"`
	Symbol       string     `json:"symbol,omitempty"`
	Terms        *TermsView `json:"terms,omitempty"`
	Turbo        bool       `json:"turbo,omitempty"`
}

// TermsView is json representation of runes.Terms.
type TermsView struct {
	Amount      string  `json:"amount,omitempty"`
	Cap         string  `json:"cap,omitempty"`
	HeightStart *uint64 `json:"height_start,omitempty"`
	HeightEnd   *uint64 `json:"height_end,omitempty"`
	OffsetStart *uint64 `json:"offset_start,omitempty"`
	OffsetEnd   *uint64 `json:"offset_end,omitempty"`
}

// EdictView is json representation of runes.Edict.
type EdictView struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Output uint32 `json:"output"`
}

// NewRunestoneView converts runestone into its json representation.
func NewRunestoneView(runestone *runes.Runestone) *RunestoneView {
	view := &RunestoneView{
		Flags:   bigString(runestone.Flags),
		Pointer: runestone.Pointer,
		Edicts: lo.Map(runestone.Edicts, func(edict runes.Edict, _ int) EdictView {
			return EdictView{
				ID:     edict.RuneID.String(),
				Amount: bigString(edict.Amount),
				Output: edict.Output,
			}
		}),
	}

	if runestone.Mint != nil {
		view.Mint = runestone.Mint.String()
	}

	if len(runestone.Extra) != 0 {
		view.Extra = make(map[string][]string, len(runestone.Extra))
		for tag, values := range runestone.Extra {
			view.Extra[tag.String()] = lo.Map(values, func(value *big.Int, _ int) string {
				return value.String()
			})
		}
	}

	if etching := runestone.Etching; etching != nil {
		view.Etching = &EtchingView{
			Divisibility: etching.Divisibility,
			Premine:      bigString(etching.Premine),
			Spacers:      etching.Spacers,
			Turbo:        etching.Turbo,
		}
		if etching.Rune != nil {
			view.Etching.Rune = etching.Rune.StringWithSeparator(lo.FromPtr(etching.Spacers))
			view.Etching.RuneValue = etching.Rune.Value().String()
		}
		if etching.Symbol != nil {
			view.Etching.Symbol = string(*etching.Symbol)
		}
		if terms := etching.Terms; terms != nil {
			view.Etching.Terms = &TermsView{
				Amount:      bigString(terms.Amount),
				Cap:         bigString(terms.Cap),
				HeightStart: terms.HeightStart,
				HeightEnd:   terms.HeightEnd,
				OffsetStart: terms.OffsetStart,
				OffsetEnd:   terms.OffsetEnd,
			}
		}
	}

	return view
}

func bigString(value *big.Int) string {
	if value == nil {
		return ""
	}

	return value.String()
}
