// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"math/big"
)

const (
	// MaxDivisibility defines maximum divisibility for runes.
	MaxDivisibility byte = 38
	// MaxSpacers defines max value for spacers.
	MaxSpacers uint32 = 0b00000111_11111111_11111111_11111111
)

// Etching defines values to create new rune.
type Etching struct {
	Divisibility *byte
	Premine      *big.Int
	Rune         *Rune
	Spacers      *uint32
	Symbol       *rune
	Terms        *Terms
	Turbo        bool
}

// Terms defines open mint parameters of the Etching.
type Terms struct {
	Amount      *big.Int
	Cap         *big.Int
	HeightStart *uint64
	HeightEnd   *uint64
	OffsetStart *uint64
	OffsetEnd   *uint64
}

// IsEmpty returns true if none of the terms is set.
func (terms *Terms) IsEmpty() bool {
	return terms.Amount == nil && terms.Cap == nil &&
		terms.HeightStart == nil && terms.HeightEnd == nil &&
		terms.OffsetStart == nil && terms.OffsetEnd == nil
}
