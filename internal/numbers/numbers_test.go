// Copyright (C) 2022 Creditor Corp. Group.
// See LICENSE for copying information.

package numbers_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/runestone/internal/numbers"
)

func TestNumbers(t *testing.T) {
	negative := big.NewInt(-100)
	zero := big.NewInt(0)
	positive := big.NewInt(100)

	t.Run("IsNegative", func(t *testing.T) {
		require.True(t, numbers.IsNegative(negative))
		require.False(t, numbers.IsNegative(zero))
		require.False(t, numbers.IsNegative(positive))
	})

	t.Run("IsZero", func(t *testing.T) {
		require.False(t, numbers.IsZero(negative))
		require.True(t, numbers.IsZero(zero))
		require.False(t, numbers.IsZero(positive))
	})

	t.Run("IsGreater", func(t *testing.T) {
		require.True(t, numbers.IsGreater(positive, negative))
		require.False(t, numbers.IsGreater(negative, positive))
	})

	t.Run("IsLess", func(t *testing.T) {
		require.False(t, numbers.IsLess(positive, negative))
		require.True(t, numbers.IsLess(negative, positive))
	})

	t.Run("IsEqual", func(t *testing.T) {
		require.False(t, numbers.IsEqual(positive, negative))
		require.True(t, numbers.IsEqual(positive, positive))
	})

	t.Run("MaxUint128Value", func(t *testing.T) {
		for i := 0; i < 128; i++ {
			require.EqualValues(t, 1, numbers.MaxUInt128Value.Bit(i))
		}
		require.EqualValues(t, 0, numbers.MaxUInt128Value.Bit(128))
	})

	t.Run("IsUint128", func(t *testing.T) {
		require.True(t, numbers.IsUint128(zero))
		require.True(t, numbers.IsUint128(numbers.MaxUInt128Value))
		require.False(t, numbers.IsUint128(negative))
		require.False(t, numbers.IsUint128(new(big.Int).Add(numbers.MaxUInt128Value, numbers.OneBigInt)))
	})

	t.Run("Low casts", func(t *testing.T) {
		value := new(big.Int).Lsh(big.NewInt(1), 64)
		value.Add(value, big.NewInt(0x1_0000_0105))

		require.EqualValues(t, uint64(0x1_0000_0105), numbers.LowUint64(value))
		require.EqualValues(t, uint32(0x105), numbers.LowUint32(value))
		require.EqualValues(t, byte(0x05), numbers.LowByte(value))
		require.EqualValues(t, uint64(1<<64-1), numbers.LowUint64(numbers.MaxUInt128Value))
	})
}
