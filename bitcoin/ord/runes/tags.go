// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"math/big"

	"github.com/gaze-network/uint128"
)

// Tag defines tag type for untyped message parsing.
// Tags may take any 128-bit value, so the type is comparable uint128 to be usable as map key.
type Tag uint128.Uint128

var (
	// TagBody defines Body tag, all integers after it are edicts.
	TagBody = NewTag(0)
	// TagFlags defines Flags tag.
	TagFlags = NewTag(2)
	// TagRune defines Rune tag.
	TagRune = NewTag(4)
	// TagPremine defines Premine tag.
	TagPremine = NewTag(6)
	// TagCap defines Cap tag.
	TagCap = NewTag(8)
	// TagAmount defines Amount tag.
	TagAmount = NewTag(10)
	// TagHeightStart defines HeightStart tag.
	TagHeightStart = NewTag(12)
	// TagHeightEnd defines HeightEnd tag.
	TagHeightEnd = NewTag(14)
	// TagOffsetStart defines OffsetStart tag.
	TagOffsetStart = NewTag(16)
	// TagOffsetEnd defines OffsetEnd tag.
	TagOffsetEnd = NewTag(18)
	// TagMint defines Mint tag.
	TagMint = NewTag(20)
	// TagPointer defines Pointer tag.
	TagPointer = NewTag(22)
	// TagCenotaph defines Cenotaph tag.
	TagCenotaph = NewTag(126)

	// TagDivisibility defines Divisibility tag.
	TagDivisibility = NewTag(1)
	// TagSpacers defines Spacers tag.
	TagSpacers = NewTag(3)
	// TagSymbol defines Symbol tag.
	TagSymbol = NewTag(5)
	// TagNop defines Nop tag.
	TagNop = NewTag(127)
)

var tagNames = map[Tag]string{
	TagBody:         "BODY",
	TagFlags:        "FLAGS",
	TagRune:         "RUNE",
	TagPremine:      "PREMINE",
	TagCap:          "CAP",
	TagAmount:       "AMOUNT",
	TagHeightStart:  "HEIGHT_START",
	TagHeightEnd:    "HEIGHT_END",
	TagOffsetStart:  "OFFSET_START",
	TagOffsetEnd:    "OFFSET_END",
	TagMint:         "MINT",
	TagPointer:      "POINTER",
	TagCenotaph:     "CENOTAPH",
	TagDivisibility: "DIVISIBILITY",
	TagSpacers:      "SPACERS",
	TagSymbol:       "SYMBOL",
	TagNop:          "NOP",
}

// NewTag creates Tag from uint64 value.
func NewTag(value uint64) Tag {
	return Tag(uint128.From64(value))
}

// NewTagFromBigInt creates Tag from decoded integer.
func NewTagFromBigInt(value *big.Int) (Tag, error) {
	u128, err := uint128.FromBig(value)
	if err != nil {
		return Tag{}, newCodecError(VarIntOverflowErrorKind, 0, "tag %s is out of uint128 range", value)
	}

	return Tag(u128), nil
}

// Uint128 returns Tag as uint128.
func (t Tag) Uint128() uint128.Uint128 {
	return uint128.Uint128(t)
}

// BigInt returns Tag as big.Int.
func (t Tag) BigInt() *big.Int {
	return new(big.Int).Set(t.Uint128().Big())
}

// Less returns true if t is ordered before other.
func (t Tag) Less(other Tag) bool {
	return t.Uint128().Cmp(other.Uint128()) < 0
}

// IsKnown returns true if the Tag has a name in the protocol.
func (t Tag) IsKnown() bool {
	_, ok := tagNames[t]
	return ok
}

// String returns Tag name or TAG_<n> for unknown tags.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}

	return "TAG_" + t.Uint128().String()
}
