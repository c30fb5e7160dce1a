// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"math/big"
	"sort"

	"github.com/samber/lo"

	"github.com/BoostyLabs/runestone/internal/sequencereader"
)

// Message defines helping struct for serialising and deserializing Runestone.
type Message struct {
	Edicts []Edict
	Fields map[Tag][]*big.Int
}

// offsetFunc maps position of the integer in the sequence to the offset reported in errors.
type offsetFunc func(position int) int

func sequencePosition(position int) int {
	return position
}

// ParseMessage parses Message from integer sequence.
// Tag/value pairs are read until BODY tag or the end of the sequence,
// everything after BODY is parsed as edicts. Error offsets are positions in the sequence.
func ParseMessage(sr *sequencereader.SequenceReader[*big.Int]) (*Message, error) {
	return parseMessage(sr, sequencePosition)
}

func parseMessage(sr *sequencereader.SequenceReader[*big.Int], offset offsetFunc) (*Message, error) {
	message := &Message{
		Fields: make(map[Tag][]*big.Int),
	}

	for sr.HasNext() {
		position := sr.Position()
		tagBigInt, _ := sr.Next() // skip error due to loop condition check.

		tag, err := NewTagFromBigInt(tagBigInt)
		if err != nil {
			return nil, err
		}

		if tag == TagBody {
			message.Edicts, err = parseEdicts(sr, offset)
			if err != nil {
				return nil, err
			}

			break
		}

		value, err := sr.Next()
		if err != nil {
			codecErr := newCodecError(DanglingTagErrorKind, offset(position), "tag %s has no value", tag)
			codecErr.tag = tag.BigInt()
			return nil, codecErr
		}

		message.Fields[tag] = append(message.Fields[tag], value)
	}

	return message, nil
}

// ParseMessageFromPayload decodes payload into integers and parses Message from them.
// Error offsets are payload byte offsets of the integer at fault.
func ParseMessageFromPayload(payload []byte) (*Message, error) {
	sequence, offsets, err := PayloadIntoIntSequenceWithOffsets(payload)
	if err != nil {
		return nil, err
	}

	return parseMessage(sequencereader.New(sequence), func(position int) int {
		return offsets[position]
	})
}

// First returns the first value of the tag, the only one which is authoritative.
func (message *Message) First(tag Tag) (*big.Int, bool) {
	values := message.Fields[tag]
	if len(values) == 0 {
		return nil, false
	}

	return values[0], true
}

// Has returns true if any of the tags is present.
func (message *Message) Has(tags ...Tag) bool {
	return lo.SomeBy(tags, func(tag Tag) bool {
		return len(message.Fields[tag]) > 0
	})
}

// SortedTags returns tags of the message in ascending order.
func (message *Message) SortedTags() []Tag {
	tags := lo.Keys(message.Fields)
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Less(tags[j])
	})

	return tags
}

// ToIntSeq returns Message as sequence on integers: fields sorted by tag,
// BODY tag and delta encoded edicts.
func (message *Message) ToIntSeq() ([]*big.Int, error) {
	edicts, err := EdictsToIntSeq(message.Edicts)
	if err != nil {
		return nil, err
	}

	sequence := make([]*big.Int, 0, len(message.Fields)*2+1+len(edicts))
	for _, tag := range message.SortedTags() {
		for _, value := range message.Fields[tag] {
			sequence = append(sequence, tag.BigInt(), value)
		}
	}

	sequence = append(sequence, TagBody.BigInt())

	return append(sequence, edicts...), nil
}
