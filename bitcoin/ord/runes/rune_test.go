// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/runestone/bitcoin/ord/runes"
	"github.com/BoostyLabs/runestone/internal/numbers"
)

func TestRune(t *testing.T) {
	t.Run("conversions", func(t *testing.T) {
		tests := []struct {
			num *big.Int
			str string
		}{
			{big.NewInt(0), "A"},
			{big.NewInt(1), "B"},
			{big.NewInt(25), "Z"},
			{big.NewInt(26), "AA"},
			{big.NewInt(27), "AB"},
			{big.NewInt(51), "AZ"},
			{big.NewInt(52), "BA"},
			{big.NewInt(355413), "TEST"},
			{big.NewInt(104114246938590), "SDNSDNFMDS"},
			{big.NewInt(783545829742352148), "HELLOTESTRUNE"},
			{numbers.MaxUInt128Value, "BCGDENLQRQWDSLRUGSNLBTMFIJAV"},
		}
		for _, test := range tests {
			runeFromStr, err := runes.NewRuneFromString(test.str)
			require.NoError(t, err)
			require.Zero(t, runeFromStr.Value().Cmp(test.num), "str: "+test.str)

			runeFromNum, err := runes.NewRuneFromNumber(test.num)
			require.NoError(t, err)
			require.Equal(t, test.str, runeFromNum.String(), "num: "+test.num.String())
		}
	})

	t.Run("NewRuneFromString (invalid)", func(t *testing.T) {
		for _, name := range []string{"Aok", "TP3", "ORNV_", "OR V", "123"} {
			_, err := runes.NewRuneFromString(name)
			require.ErrorIs(t, err, runes.ErrInvalidRuneName, name)
		}

		_, err := runes.NewRuneFromString("BCGDENLQRQWDSLRUGSNLBTMFIJAW")
		require.Error(t, err)
		require.NotErrorIs(t, err, runes.ErrInvalidRuneName)
	})

	t.Run("NewRuneFromNumber (out of range)", func(t *testing.T) {
		_, err := runes.NewRuneFromNumber(big.NewInt(-1))
		require.Error(t, err)

		_, err = runes.NewRuneFromNumber(new(big.Int).Add(numbers.MaxUInt128Value, numbers.OneBigInt))
		require.Error(t, err)
	})

	t.Run("IsReserved", func(t *testing.T) {
		r, err := runes.NewRuneFromString("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		require.NoError(t, err)
		require.False(t, r.IsReserved())

		r, err = runes.NewRuneFromString("ABACDEFGHIJKLMNOPQRSTUVWXYZ")
		require.NoError(t, err)
		require.True(t, r.IsReserved())

		require.True(t, runes.FirstReservedRuneName.IsReserved())
	})

	t.Run("NewRuneFromStringWithSpacer", func(t *testing.T) {
		tests := []struct {
			runeWithSpacer string
			spacer         rune
			spacers        uint32
			expectedRune   string
		}{
			{
				runeWithSpacer: "ABC_DEF_GHI_JKL_MNO_PQR_STU_VWX_YZ",
				spacer:         '_',
				spacers:        0b00000000_10010010_01001001_00100100,
				expectedRune:   "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			},
			{
				runeWithSpacer: "ABC•DEF•GHI•JKL•MNO•PQR•STU•VWX•YZ",
				spacers:        0b00000000_10010010_01001001_00100100,
				expectedRune:   "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			},
			{
				runeWithSpacer: "HELLO TEST RUNE",
				spacer:         ' ',
				spacers:        0b00000000_00000000_00000001_00010000,
				expectedRune:   "HELLOTESTRUNE",
			},
			{
				runeWithSpacer: "HE\\LLO\\TEST\\RUN\\E",
				spacer:         '\\',
				spacers:        0b00000000_00000000_00001001_00010010,
				expectedRune:   "HELLOTESTRUNE",
			},
		}
		for _, test := range tests {
			var (
				r       *runes.Rune
				spacers uint32
				err     error
			)
			if test.spacer == 0 {
				r, spacers, err = runes.NewRuneFromStringWithSpacer(test.runeWithSpacer)
			} else {
				r, spacers, err = runes.NewRuneFromStringWithSpacer(test.runeWithSpacer, test.spacer)
			}
			require.NoError(t, err)
			require.Equal(t, test.spacers, spacers)
			require.Equal(t, test.expectedRune, r.String())

			if test.spacer == 0 {
				require.Equal(t, test.runeWithSpacer, r.StringWithSeparator(spacers))
			} else {
				require.Equal(t, test.runeWithSpacer, r.StringWithSeparator(spacers, test.spacer))
			}
		}

		for _, invalid := range []string{"•ABC", "ABC•", "A••BC", "ABC••"} {
			_, _, err := runes.NewRuneFromStringWithSpacer(invalid)
			require.Error(t, err, invalid)
		}
	})

	t.Run("RuneReserve", func(t *testing.T) {
		tests := []struct {
			block    uint64
			tx       uint32
			expected string
		}{
			{0, 0, "AAAAAAAAAAAAAAAAAAAAAAAAAAA"},
			{0, 1, "AAAAAAAAAAAAAAAAAAAAAAAAAAB"},
			{100, 1, "AAAAAAAAAAAAAAAAAACBMITDVSR"},
			{1<<64 - 1, 1<<32 - 1, "AAAAAADZJOTJVDIMNZICGSSAEFN"},
		}
		for _, test := range tests {
			require.Equal(t, test.expected, runes.RuneReserve(runes.RuneID{Block: test.block, TxID: test.tx}).String())
		}
	})

	t.Run("Commitment", func(t *testing.T) {
		r, err := runes.NewRuneFromString("TEST")
		require.NoError(t, err)
		require.Equal(t, []byte{0x55, 0x6c, 0x05}, r.Commitment())

		fromCommitment, err := runes.NewRuneFromCommitment(r.Commitment())
		require.NoError(t, err)
		require.Equal(t, "TEST", fromCommitment.String())

		zero, err := runes.NewRuneFromString("A")
		require.NoError(t, err)
		require.Empty(t, zero.Commitment())
	})

	t.Run("MinNameLength", func(t *testing.T) {
		tests := []struct {
			block    uint64
			expected int
		}{{0, 13}, {839999, 13}, {840000, 12}, {857499, 12}, {857500, 11}, {1032500, 1}, {1050000, 0}, {1050001, 0}}
		for _, test := range tests {
			require.Equal(t, test.expected, runes.MinNameLength(test.block), "%d -> %d", test.block, test.expected)
		}
	})
}
