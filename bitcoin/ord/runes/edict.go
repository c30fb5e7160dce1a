// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"cmp"
	"math/big"
	"slices"

	"github.com/BoostyLabs/runestone/internal/numbers"
	"github.com/BoostyLabs/runestone/internal/sequencereader"
)

// edictSize defines amount of integers in one encoded edict.
const edictSize = 4

// Edict defines transfer values of the rune protocol.
type Edict struct {
	RuneID RuneID
	Amount *big.Int
	Output uint32
}

// ParseEdictsFromIntSeq parses vector of Edicts from number sequence.
// Ids are delta decoded against the previous edict, trailing integers
// which do not form a full edict are discarded. Error offsets are positions in the sequence.
func ParseEdictsFromIntSeq(sr *sequencereader.SequenceReader[*big.Int]) ([]Edict, error) {
	return parseEdicts(sr, sequencePosition)
}

func parseEdicts(sr *sequencereader.SequenceReader[*big.Int], offset offsetFunc) ([]Edict, error) {
	var prevRuneID RuneID
	edicts := make([]Edict, 0, sr.Len()/edictSize)
	for sr.Len() >= edictSize {
		position := sr.Position()

		// skip errors due to the length check.
		block, _ := sr.Next()
		tx, _ := sr.Next()
		amount, _ := sr.Next()
		output, _ := sr.Next()

		runeID, ok := prevRuneID.Next(block, tx)
		if !ok {
			return nil, newCodecError(InvalidRuneIDErrorKind, offset(position),
				"edict %d delta %s:%s overflows rune id %s", len(edicts), block, tx, prevRuneID.String())
		}
		if !runeID.IsValid() {
			return nil, newCodecError(InvalidRuneIDErrorKind, offset(position), "edict %d has rune id %s", len(edicts), runeID.String())
		}

		prevRuneID.Set(runeID)
		edicts = append(edicts, Edict{
			RuneID: runeID,
			Amount: amount,
			Output: numbers.LowUint32(output),
		})
	}

	sr.Skip(sr.Len())

	return edicts, nil
}

// ToIntSeq returns Edict as sequence on integers.
func (edict *Edict) ToIntSeq() []*big.Int {
	amount := new(big.Int)
	if edict.Amount != nil {
		amount.Set(edict.Amount)
	}

	return append(edict.RuneID.ToIntSeq(), amount, new(big.Int).SetUint64(uint64(edict.Output)))
}

// SortEdicts sorts edicts by block number and transaction id.
func SortEdicts(edicts []Edict) {
	slices.SortStableFunc(edicts, func(a, b Edict) int {
		if c := cmp.Compare(a.RuneID.Block, b.RuneID.Block); c != 0 {
			return c
		}

		return cmp.Compare(a.RuneID.TxID, b.RuneID.TxID)
	})
}

// UseDelta converts list of Edicts using delta encoding, order of edicts is kept.
// Fails if rune id of any edict is invalid or ordered before the previous one.
func UseDelta(edicts []Edict) ([]Edict, error) {
	var (
		deltaEdicts = make([]Edict, len(edicts))
		prevRuneID  RuneID
	)

	for idx, edict := range edicts {
		if !edict.RuneID.IsValid() {
			return nil, newCodecError(InvalidRuneIDErrorKind, idx, "edict %d has rune id %s", idx, edict.RuneID.String())
		}

		delta, ok := prevRuneID.Delta(edict.RuneID)
		if !ok {
			return nil, newCodecError(EdictOrderErrorKind, idx, "rune id %s follows %s", edict.RuneID.String(), prevRuneID.String())
		}

		deltaEdicts[idx] = Edict{
			RuneID: delta,
			Amount: edict.Amount,
			Output: edict.Output,
		}

		prevRuneID.Set(edict.RuneID)
	}

	return deltaEdicts, nil
}

// EdictsToIntSeq converts list of Edicts into in list of delta encoded integers.
func EdictsToIntSeq(edicts []Edict) ([]*big.Int, error) {
	deltaEdicts, err := UseDelta(edicts)
	if err != nil {
		return nil, err
	}

	sequence := make([]*big.Int, 0, len(edicts)*edictSize)
	for _, edict := range deltaEdicts {
		sequence = append(sequence, edict.ToIntSeq()...)
	}

	return sequence, nil
}
