// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/BoostyLabs/runestone/internal/numbers"
)

// Runestone abstractly defines runestone fields.
type Runestone struct {
	Edicts  []Edict
	Etching *Etching
	// Flags holds FLAGS field as is. When nil, flags are derived from Etching on encoding.
	Flags   *big.Int
	Mint    *RuneID
	Pointer *uint32
	// Extra holds fields which are not mapped to any of the fields above, including
	// unknown tags and etching tags of the message without etching.
	Extra map[Tag][]*big.Int
}

// ParseRunestone parses Runestone from script code.
// Returns nil Runestone without error if the script is not a runestone script.
func ParseRunestone(script []byte) (*Runestone, error) {
	payload, err := ExtractPayload(script)
	if err != nil {
		if errors.Is(err, ErrNotProtocolScript) {
			return nil, nil
		}

		return nil, err
	}

	message, err := ParseMessageFromPayload(payload)
	if err != nil {
		return nil, err
	}

	return NewRunestoneFromMessage(message), nil
}

// NewRunestoneFromMessage maps message fields into Runestone.
// Only the first value of each known tag is taken into account, integers are
// truncated to the width of the field they are mapped to.
func NewRunestoneFromMessage(message *Message) *Runestone {
	runestone := &Runestone{
		Edicts: message.Edicts,
	}

	consumed := make(map[Tag]bool)
	first := func(tag Tag) (*big.Int, bool) {
		value, ok := message.First(tag)
		if ok {
			consumed[tag] = true
		}

		return value, ok
	}

	if flags, ok := first(TagFlags); ok {
		runestone.Flags = flags
	}

	if message.Has(TagRune, TagPremine) {
		runestone.Etching = etchingFromMessage(first)
		runestone.Etching.Turbo = runestone.Flags != nil && HasFlag(runestone.Flags, FlagTurbo)
	}

	if mint, ok := first(TagMint); ok {
		id := NewRuneIDFromPacked(mint)
		runestone.Mint = &id
	}

	if pointer, ok := first(TagPointer); ok {
		output := numbers.LowUint32(pointer)
		runestone.Pointer = &output
	}

	for tag, values := range message.Fields {
		if consumed[tag] {
			continue
		}

		if runestone.Extra == nil {
			runestone.Extra = make(map[Tag][]*big.Int)
		}
		runestone.Extra[tag] = values
	}

	return runestone
}

// etchingFromMessage collects etching and terms fields.
func etchingFromMessage(first func(Tag) (*big.Int, bool)) *Etching {
	etching := new(Etching)
	if value, ok := first(TagDivisibility); ok {
		etching.Divisibility = lo.ToPtr(numbers.LowByte(value))
	}
	if value, ok := first(TagPremine); ok {
		etching.Premine = value
	}
	if value, ok := first(TagRune); ok {
		etching.Rune = &Rune{value: value}
	}
	if value, ok := first(TagSpacers); ok {
		etching.Spacers = lo.ToPtr(numbers.LowUint32(value))
	}
	if value, ok := first(TagSymbol); ok {
		etching.Symbol = lo.ToPtr(rune(numbers.LowUint32(value)))
	}

	terms := new(Terms)
	if value, ok := first(TagAmount); ok {
		terms.Amount = value
	}
	if value, ok := first(TagCap); ok {
		terms.Cap = value
	}
	if value, ok := first(TagHeightStart); ok {
		terms.HeightStart = lo.ToPtr(numbers.LowUint64(value))
	}
	if value, ok := first(TagHeightEnd); ok {
		terms.HeightEnd = lo.ToPtr(numbers.LowUint64(value))
	}
	if value, ok := first(TagOffsetStart); ok {
		terms.OffsetStart = lo.ToPtr(numbers.LowUint64(value))
	}
	if value, ok := first(TagOffsetEnd); ok {
		terms.OffsetEnd = lo.ToPtr(numbers.LowUint64(value))
	}
	if !terms.IsEmpty() {
		etching.Terms = terms
	}

	return etching
}

// Builder returns RunesBuilder filled with Runestone fields.
func (runestone *Runestone) Builder() *RunesBuilder {
	builder := NewRunesBuilder()
	for tag, values := range runestone.Extra {
		for _, value := range values {
			builder.WithField(tag, value)
		}
	}

	flags := runestone.Flags
	if flags == nil && runestone.Etching != nil {
		flags = FlagsOf(runestone.Etching)
	}
	builder.WithFlags(flags)

	if etching := runestone.Etching; etching != nil {
		if etching.Divisibility != nil {
			builder.WithDivisibility(*etching.Divisibility)
		}
		if etching.Rune != nil {
			builder.WithRuneValue(etching.Rune.Value())
		}
		if etching.Spacers != nil {
			builder.WithSpacers(*etching.Spacers)
		}
		if etching.Symbol != nil {
			builder.WithSymbol(*etching.Symbol)
		}
		builder.WithPremine(etching.Premine)

		if terms := etching.Terms; terms != nil {
			builder.WithAmount(terms.Amount).
				WithCap(terms.Cap).
				WithHeight(terms.HeightStart, terms.HeightEnd).
				WithOffset(terms.OffsetStart, terms.OffsetEnd)
		}
	}

	if runestone.Mint != nil {
		builder.WithMint(runestone.Mint.Block, runestone.Mint.TxID)
	}
	if runestone.Pointer != nil {
		builder.WithPointer(*runestone.Pointer)
	}

	return builder.WithEdicts(runestone.Edicts...)
}

// IntoScript returns Runestone as script bytes.
func (runestone *Runestone) IntoScript() ([]byte, error) {
	return runestone.Builder().Build()
}

// Serialize returns Runestone as payload bytes.
func (runestone *Runestone) Serialize() ([]byte, error) {
	return runestone.Builder().Payload()
}
