// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/BoostyLabs/runestone/internal/numbers"
)

// RuneID defined the id of the rune: block height and transaction index of the etching.
type RuneID struct {
	Block uint64
	TxID  uint32
}

// NewRuneID returns RuneID, fails if block is 0 and tx is not.
func NewRuneID(block uint64, tx uint32) (RuneID, error) {
	id := RuneID{Block: block, TxID: tx}
	if !id.IsValid() {
		return RuneID{}, newCodecError(InvalidRuneIDErrorKind, 0, "rune id %s has zero block", id.String())
	}

	return id, nil
}

// NewRuneIDFromString returns RuneID parsed from string.
func NewRuneIDFromString(s string) (RuneID, error) {
	data := strings.Split(s, ":")
	if len(data) != 2 {
		return RuneID{}, errors.Newf("invalid rune id format: %s", s)
	}

	block, err := strconv.ParseUint(data[0], 10, 64)
	if err != nil {
		return RuneID{}, errors.Wrap(err, "invalid rune id block")
	}

	txID, err := strconv.ParseUint(data[1], 10, 32)
	if err != nil {
		return RuneID{}, errors.Wrap(err, "invalid rune id tx")
	}

	return NewRuneID(block, uint32(txID))
}

// NewRuneIDFromPacked splits packed value into block (high bits) and tx (low 32 bits).
// Block bits above 64 are dropped.
func NewRuneIDFromPacked(value *big.Int) RuneID {
	return RuneID{
		Block: numbers.LowUint64(new(big.Int).Rsh(value, 32)),
		TxID:  numbers.LowUint32(value),
	}
}

// IsValid returns false for ids with zero block and non-zero tx.
func (id RuneID) IsValid() bool {
	return id.Block != 0 || id.TxID == 0
}

// Next produces next RuneID from full width delta integers: zero block delta
// moves tx within the same block, otherwise tx is absolute in the new block.
// Returns false if the result does not fit u64 block or u32 tx.
func (id *RuneID) Next(blockDelta, txDelta *big.Int) (RuneID, bool) {
	block, tx := new(big.Int).SetUint64(id.Block), new(big.Int).Set(txDelta)
	if blockDelta.Sign() == 0 {
		tx.Add(tx, new(big.Int).SetUint64(uint64(id.TxID)))
	} else {
		block.Add(block, blockDelta)
	}

	if numbers.IsGreater(block, numbers.MaxUInt64Value) || numbers.IsGreater(tx, numbers.MaxUInt32Value) {
		return RuneID{}, false
	}

	return RuneID{Block: block.Uint64(), TxID: uint32(tx.Uint64())}, true
}

// Delta returns delta encoding of next relatively to id, the inverse of Next.
// Returns false if next is ordered before id.
func (id *RuneID) Delta(next RuneID) (RuneID, bool) {
	switch {
	case next.Block < id.Block:
		return RuneID{}, false
	case next.Block > id.Block:
		return RuneID{Block: next.Block - id.Block, TxID: next.TxID}, true
	case next.TxID < id.TxID:
		return RuneID{}, false
	default:
		return RuneID{Block: 0, TxID: next.TxID - id.TxID}, true
	}
}

// Set is a copying setter, sets runeID values to id.
func (id *RuneID) Set(runeID RuneID) {
	id.Block = runeID.Block
	id.TxID = runeID.TxID
}

// String returns RuneID as string.
func (id *RuneID) String() string {
	return fmt.Sprintf("%d:%d", id.Block, id.TxID)
}

// Packed returns RuneID as single integer block << 32 | tx.
func (id *RuneID) Packed() *big.Int {
	packed := new(big.Int).Lsh(new(big.Int).SetUint64(id.Block), 32)
	return packed.Or(packed, new(big.Int).SetUint64(uint64(id.TxID)))
}

// ToIntSeq returns RuneID as integer sequence.
func (id *RuneID) ToIntSeq() []*big.Int {
	return []*big.Int{new(big.Int).SetUint64(id.Block), new(big.Int).SetUint64(uint64(id.TxID))}
}
