// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// RunesBuilder collects tag/value pairs and edicts and encodes them into runestone script.
// Fields are emitted sorted by tag, values of the same tag keep the order they were added in,
// BODY tag is always emitted and followed by delta encoded edicts.
type RunesBuilder struct {
	message Message
	err     error
}

// NewRunesBuilder is a constructor for RunesBuilder.
func NewRunesBuilder() *RunesBuilder {
	return &RunesBuilder{
		message: Message{
			Fields: make(map[Tag][]*big.Int),
		},
	}
}

// WithField adds raw tag/value pair, nil value is ignored.
// BODY tag is not a field and fails the build.
func (builder *RunesBuilder) WithField(tag Tag, value *big.Int) *RunesBuilder {
	if value == nil {
		return builder
	}
	if tag == TagBody {
		err := newCodecError(BodyFieldErrorKind, 0, "tag %s can not carry a field value", tag)
		err.tag = tag.BigInt()
		builder.err = errors.CombineErrors(builder.err, err)
		return builder
	}

	builder.message.Fields[tag] = append(builder.message.Fields[tag], new(big.Int).Set(value))

	return builder
}

// WithFlags adds FLAGS field.
func (builder *RunesBuilder) WithFlags(flags *big.Int) *RunesBuilder {
	return builder.WithField(TagFlags, flags)
}

// WithRune adds RUNE field with the name packed by NameToInteger.
func (builder *RunesBuilder) WithRune(name string) *RunesBuilder {
	value, err := NameToInteger(name)
	if err != nil {
		builder.err = errors.CombineErrors(builder.err, err)
		return builder
	}

	return builder.WithField(TagRune, value)
}

// WithRuneValue adds RUNE field as is.
func (builder *RunesBuilder) WithRuneValue(value *big.Int) *RunesBuilder {
	return builder.WithField(TagRune, value)
}

// WithSpacers adds SPACERS field.
func (builder *RunesBuilder) WithSpacers(spacers uint32) *RunesBuilder {
	return builder.WithField(TagSpacers, new(big.Int).SetUint64(uint64(spacers)))
}

// WithSymbol adds SYMBOL field as unicode code point.
func (builder *RunesBuilder) WithSymbol(symbol rune) *RunesBuilder {
	return builder.WithField(TagSymbol, new(big.Int).SetUint64(uint64(uint32(symbol))))
}

// WithPremine adds PREMINE field.
func (builder *RunesBuilder) WithPremine(premine *big.Int) *RunesBuilder {
	return builder.WithField(TagPremine, premine)
}

// WithPointer adds POINTER field.
func (builder *RunesBuilder) WithPointer(output uint32) *RunesBuilder {
	return builder.WithField(TagPointer, new(big.Int).SetUint64(uint64(output)))
}

// WithCap adds CAP field.
func (builder *RunesBuilder) WithCap(cap_ *big.Int) *RunesBuilder {
	return builder.WithField(TagCap, cap_)
}

// WithAmount adds AMOUNT field.
func (builder *RunesBuilder) WithAmount(amount *big.Int) *RunesBuilder {
	return builder.WithField(TagAmount, amount)
}

// WithDivisibility adds DIVISIBILITY field.
func (builder *RunesBuilder) WithDivisibility(divisibility byte) *RunesBuilder {
	return builder.WithField(TagDivisibility, big.NewInt(int64(divisibility)))
}

// WithMint adds MINT field packed as block << 32 | tx.
func (builder *RunesBuilder) WithMint(block uint64, tx uint32) *RunesBuilder {
	id := RuneID{Block: block, TxID: tx}
	return builder.WithField(TagMint, id.Packed())
}

// WithHeight adds HEIGHT_START and HEIGHT_END fields, nil bound is omitted.
func (builder *RunesBuilder) WithHeight(start, end *uint64) *RunesBuilder {
	return builder.withUint64(TagHeightStart, start).withUint64(TagHeightEnd, end)
}

// WithOffset adds OFFSET_START and OFFSET_END fields, nil bound is omitted.
func (builder *RunesBuilder) WithOffset(start, end *uint64) *RunesBuilder {
	return builder.withUint64(TagOffsetStart, start).withUint64(TagOffsetEnd, end)
}

// WithEdicts appends edicts, their order is kept in the payload.
func (builder *RunesBuilder) WithEdicts(edicts ...Edict) *RunesBuilder {
	builder.message.Edicts = append(builder.message.Edicts, edicts...)
	return builder
}

func (builder *RunesBuilder) withUint64(tag Tag, value *uint64) *RunesBuilder {
	if value == nil {
		return builder
	}

	return builder.WithField(tag, new(big.Int).SetUint64(*value))
}

// Payload returns encoded runestone payload without script wrapping.
func (builder *RunesBuilder) Payload() ([]byte, error) {
	if builder.err != nil {
		return nil, builder.err
	}

	sequence, err := builder.message.ToIntSeq()
	if err != nil {
		return nil, err
	}

	return IntSequenceIntoPayload(sequence)
}

// Build returns runestone script: OP_RETURN OP_13 <payload push>.
func (builder *RunesBuilder) Build() ([]byte, error) {
	payload, err := builder.Payload()
	if err != nil {
		return nil, err
	}

	return NewRunestoneScript(payload)
}
