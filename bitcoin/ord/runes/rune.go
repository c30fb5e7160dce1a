// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"math/big"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/BoostyLabs/runestone/internal/numbers"
	"github.com/BoostyLabs/runestone/internal/reverse"
)

// DefaultSpacer defines default spacer for Rune name.
const DefaultSpacer = '•'

const (
	// ProtocolBlockStart defines the block when protocol was launched.
	ProtocolBlockStart uint64 = 840_000
	// UnlockNamePeriod defines interval in blocks to unlock shorter name.
	UnlockNamePeriod uint64 = 17_500

	// StartNameLength defines minimum name length on the ProtocolBlockStart.
	StartNameLength = 13
)

// base26 defines 26 as *big.Int.
var base26 = big.NewInt(26)

// FirstReservedRuneNameInt defines FirstReservedRuneName as number.
var FirstReservedRuneNameInt, _ = new(big.Int).SetString("6402364363415443603228541259936211926", 10)

// FirstReservedRuneName defines first reserved rune name AAAAAAAAAAAAAAAAAAAAAAAAAAA.
var FirstReservedRuneName = RuneReserve(RuneID{0, 0})

// ErrInvalidRuneName defines that the name contains symbols out of A-Z range.
var ErrInvalidRuneName = errors.New("invalid symbol in the rune name")

// Rune defines rune name encoded as modified base-26 integer, the way it is
// stored in the RUNE field of the etching.
type Rune struct {
	value *big.Int
}

// NewRuneFromString creates new Rune from string name.
// NOTE: Valid symbols are A-Z only.
func NewRuneFromString(name string) (*Rune, error) {
	value := big.NewInt(0)
	for i, c := range name {
		if c < 'A' || c > 'Z' {
			return nil, errors.Wrapf(ErrInvalidRuneName, "%q at %d", c, i)
		}

		if i > 0 {
			value.Add(value, numbers.OneBigInt)
		}
		value.Mul(value, base26)
		value.Add(value, big.NewInt(int64(c-'A')))
	}

	if !numbers.IsUint128(value) {
		return nil, errors.Newf("rune name %s overflows uint128", name)
	}

	return &Rune{value: value}, nil
}

// NewRuneFromStringWithSpacer creates new Rune from string name with spacers scanned.
//
//	NOTE:
//	- Instead of empty spacer the default one will be used.
//	- If many spacers were provided, the first one will be used.
func NewRuneFromStringWithSpacer(name string, spacer ...rune) (*Rune, uint32, error) {
	s := DefaultSpacer
	if len(spacer) > 0 {
		s = spacer[0]
	}

	var (
		spacers uint32
		letters strings.Builder
	)
	for _, char := range name {
		if char != s {
			letters.WriteRune(char)
			continue
		}

		if letters.Len() == 0 {
			return nil, 0, errors.Newf("rune name %s starts with spacer", name)
		}

		bit := uint32(1) << (letters.Len() - 1)
		if spacers&bit != 0 {
			return nil, 0, errors.Newf("rune name %s has double spacer", name)
		}
		spacers |= bit
	}

	if spacers != 0 && spacers>>(letters.Len()-1) != 0 {
		return nil, 0, errors.Newf("rune name %s ends with spacer", name)
	}

	r, err := NewRuneFromString(letters.String())
	if err != nil {
		return nil, 0, err
	}

	return r, spacers, nil
}

// NewRuneFromNumber creates new Rune from number, any uint128 is accepted.
func NewRuneFromNumber(number *big.Int) (*Rune, error) {
	if !numbers.IsUint128(number) {
		return nil, errors.Newf("rune number %s is out of uint128 range", number)
	}

	return &Rune{value: new(big.Int).Set(number)}, nil
}

// Value returns Rune name as number.
func (r *Rune) Value() *big.Int {
	return r.value
}

// IsReserved returns true if the name belongs to the reserved range allocated for etchings without name.
func (r *Rune) IsReserved() bool {
	return !numbers.IsLess(r.value, FirstReservedRuneNameInt)
}

// String returns Rune name as string.
func (r *Rune) String() string {
	var (
		value  = new(big.Int).Add(r.value, numbers.OneBigInt)
		letter = new(big.Int)
		name   []byte
	)

	for value.Sign() > 0 {
		value.Sub(value, numbers.OneBigInt)
		value.DivMod(value, base26, letter)
		name = append(name, 'A'+byte(letter.Int64()))
	}

	slices.Reverse(name)

	return string(name)
}

// StringWithSeparator returns Rune name as string with provided spacer.
//
//	NOTE:
//	- Instead of empty spacer the default one will be used.
//	- If many spacers were provided, the first one will be used.
func (r *Rune) StringWithSeparator(spacers uint32, spacer ...rune) string {
	s := DefaultSpacer
	if len(spacer) > 0 {
		s = spacer[0]
	}

	name := r.String()

	var symbol strings.Builder
	for idx, char := range name {
		symbol.WriteRune(char)

		if idx < len(name)-1 && spacers&(1<<idx) != 0 {
			symbol.WriteRune(s)
		}
	}

	return symbol.String()
}

// RuneReserve returns allocated rune name in case it was omitted in etching.
func RuneReserve(runeID RuneID) *Rune {
	return &Rune{value: new(big.Int).Add(FirstReservedRuneNameInt, runeID.Packed())}
}

// MinNameLength returns unlocked rune name length depending on block.
func MinNameLength(currentBlock uint64) int {
	if currentBlock < ProtocolBlockStart {
		return StartNameLength
	}

	unlocked := (currentBlock - ProtocolBlockStart) / UnlockNamePeriod
	if unlocked >= StartNameLength-1 {
		return 0
	}

	return StartNameLength - 1 - int(unlocked)
}

// Commitment returns Rune value as little-endian bytes without trailing zeros,
// the form the name is committed to in the etching tapscript.
func (r *Rune) Commitment() []byte {
	return reverse.Bytes(r.value.Bytes())
}

// NewRuneFromCommitment creates new Rune from little-endian commitment bytes.
func NewRuneFromCommitment(commitment []byte) (*Rune, error) {
	return NewRuneFromNumber(new(big.Int).SetBytes(reverse.Bytes(commitment)))
}
