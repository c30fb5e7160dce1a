// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/runestone/bitcoin/ord/runes"
)

func TestScript(t *testing.T) {
	t.Run("ExtractPayload", func(t *testing.T) {
		tests := []struct {
			name    string
			script  string
			payload string
		}{
			{"single push", "6a5d020102", "0102"},
			{"many pushes", "6a5d02010201030104", "010203" + "04"},
			{"push data 1", "6a5d4c03aabbcc", "aabbcc"},
			{"push data 2", "6a5d4d0200aabb", "aabb"},
			{"push data 4", "6a5d4e01000000aa", "aa"},
			{"stops on non push opcode", "6a5d0201025102aabb", "0102"},
			{"stops on OP_0", "6a5d0002aabb", ""},
			{"prefix only", "6a5d", ""},
			{"real edict", "6a5d09008fe69d0154d70e01", "008fe69d0154d70e01"},
		}
		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				script, err := hex.DecodeString(test.script)
				require.NoError(t, err)

				payload, err := runes.ExtractPayload(script)
				require.NoError(t, err)
				require.Equal(t, test.payload, hex.EncodeToString(payload))
			})
		}
	})

	t.Run("ExtractPayload (not protocol script)", func(t *testing.T) {
		for _, test := range []string{"", "6a", "6a5c01aa", "515d01aa", "5d6a01aa"} {
			script, err := hex.DecodeString(test)
			require.NoError(t, err)

			_, err = runes.ExtractPayload(script)
			require.ErrorIs(t, err, runes.ErrNotProtocolScript, test)
		}
	})

	t.Run("ExtractPayload (truncated push)", func(t *testing.T) {
		tests := []struct {
			script string
			offset int
		}{
			{"6a5d05aabb", 2},
			{"6a5d01aa4c05aabb", 4},
			{"6a5d4d05", 2},
			{"6a5d09008fe69d0154d70e0115", 12},
		}
		for _, test := range tests {
			script, err := hex.DecodeString(test.script)
			require.NoError(t, err)

			_, err = runes.ExtractPayload(script)
			require.ErrorIs(t, err, runes.ErrTruncatedPush, test.script)

			var codecErr *runes.CodecError
			require.True(t, errors.As(err, &codecErr))
			require.Equal(t, test.offset, codecErr.Offset(), test.script)
		}
	})

	t.Run("NewRunestoneScript", func(t *testing.T) {
		tests := []struct {
			size   int
			prefix string
		}{
			{1, "6a5d01"},
			{75, "6a5d4b"},
			{76, "6a5d4c4c"},
			{255, "6a5d4cff"},
			{256, "6a5d4d0001"},
			{65535, "6a5d4dffff"},
			{65536, "6a5d4e00000100"},
		}
		for _, test := range tests {
			payload := bytes.Repeat([]byte{0x05}, test.size)

			script, err := runes.NewRunestoneScript(payload)
			require.NoError(t, err)

			prefix, err := hex.DecodeString(test.prefix)
			require.NoError(t, err)
			require.Equal(t, prefix, script[:len(prefix)])
			require.Len(t, script, len(prefix)+test.size)

			extracted, err := runes.ExtractPayload(script)
			require.NoError(t, err)
			require.Equal(t, payload, extracted)
		}
	})

	t.Run("IsPossibleRunestone", func(t *testing.T) {
		tests := []struct {
			script string
			mustBe bool
		}{
			{"6a5d09008fe69d0154d70e01", true},
			{"6a5d0814e5e49d0114cc01", true},
			{"6a5d0a14b0dd9d011482011601", true},
			{"6a5d02160e", true},
			{"6a5d15010a0201030004dedfd1e58fd617054d0680b19164", true},
			{"6a5d1a020104fae2a3e9ac8cb9d814010403800205240680c2d72f1601", true},
			{"6a5d4c0100", true},
			{"", false},
			{"10", false},
			{"0231", false},
			{"6a5d1a", false},
			{"6a5dff00", false},
			{"6a5d5100", false},
			{"6affff00", false},
			{"ffffff00", false},
			{"ff5d1a00", false},
			{"6a5d1a00", true},
		}
		for _, test := range tests {
			script, err := hex.DecodeString(test.script)
			require.NoError(t, err)
			require.Equal(t, test.mustBe, runes.IsPossibleRunestone(script), test.script)
		}
	})
}
