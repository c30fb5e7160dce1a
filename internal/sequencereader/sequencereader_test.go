// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequencereader_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/runestone/internal/sequencereader"
)

func TestSequenceReader(t *testing.T) {
	seq := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4)}
	t.Run("HasNext", func(t *testing.T) {
		sr := sequencereader.New(seq)
		require.True(t, sr.HasNext())

		_, _ = sr.Next()
		_, _ = sr.Next()
		_, _ = sr.Next()
		require.True(t, sr.HasNext())

		_, _ = sr.Next()
		require.False(t, sr.HasNext())
	})

	t.Run("Next", func(t *testing.T) {
		sr := sequencereader.New(seq)
		for _, tVal := range seq {
			val, err := sr.Next()
			require.NoError(t, err)
			require.Equal(t, tVal, val)
		}

		_, err := sr.Next()
		require.ErrorIs(t, err, sequencereader.ErrEnded)
	})

	t.Run("Len and Position", func(t *testing.T) {
		sr := sequencereader.New(seq)
		require.Equal(t, len(seq), sr.Len())
		require.Equal(t, 0, sr.Position())

		_, _ = sr.Next()
		require.Equal(t, len(seq)-1, sr.Len())
		require.Equal(t, 1, sr.Position())

		_, _ = sr.Next()
		_, _ = sr.Next()
		_, _ = sr.Next()
		require.Equal(t, 0, sr.Len())
		require.Equal(t, len(seq), sr.Position())
	})

	t.Run("Skip", func(t *testing.T) {
		sr := sequencereader.New(seq)
		sr.Skip(2)
		val, err := sr.Next()
		require.NoError(t, err)
		require.Equal(t, seq[2], val)

		sr.Skip(-1)
		require.Equal(t, 3, sr.Position())

		sr.Skip(10)
		require.False(t, sr.HasNext())
		require.Equal(t, len(seq), sr.Position())
	})

	t.Run("SequenceReader for string type", func(t *testing.T) {
		strSeq := []string{"a", "ab", "abc", "abcd"}
		sr := sequencereader.New[string](strSeq)
		require.EqualValues(t, 4, sr.Len())
		for i := 0; sr.HasNext(); i++ {
			val, err := sr.Next()
			require.NoError(t, err)
			require.EqualValues(t, strSeq[i], val)
		}
		_, err := sr.Next()
		require.Error(t, err)
	})
}
