// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes_test

import (
	"math/big"
	"testing"

	"github.com/BoostyLabs/runestone/bitcoin/ord/runes"
)

func FuzzVarInt(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(0), uint64(253))
	f.Add(^uint64(0), ^uint64(0))

	f.Fuzz(func(t *testing.T, hi, lo uint64) {
		value := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
		value.Or(value, new(big.Int).SetUint64(lo))

		encoded, err := runes.EncodeVarInt(value)
		if err != nil {
			t.Fatalf("encode %s: %v", value, err)
		}

		decoded, cursor, err := runes.DecodeVarInt(encoded, 0)
		if err != nil {
			t.Fatalf("decode %x: %v", encoded, err)
		}
		if decoded.Cmp(value) != 0 || cursor != len(encoded) {
			t.Errorf("Before: %s, after: %s (cursor %d of %d)", value, decoded, cursor, len(encoded))
		}
	})
}
