// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"bytes"
	"io"
	"math/big"

	"github.com/aviate-labs/leb128"
	"github.com/cockroachdb/errors"

	"github.com/BoostyLabs/runestone/internal/numbers"
)

// maxVarIntLen defines the longest accepted varint: 18 bytes with continuation bit and the terminating one.
const maxVarIntLen = 19

// DecodeVarInt decodes LEB128 unsigned integer from buffer starting at cursor.
// Returns decoded value and cursor pointing right after the varint.
func DecodeVarInt(buffer []byte, cursor int) (*big.Int, int, error) {
	start := min(cursor, len(buffer))

	// one byte over the limit is enough to tell overflow from truncation.
	reader := bytes.NewReader(buffer[start:min(len(buffer), start+maxVarIntLen+1)])
	value, err := leb128.DecodeUnsigned(reader)
	consumed := int(reader.Size()) - reader.Len()

	switch {
	case consumed > maxVarIntLen:
		return nil, start, newCodecError(VarIntOverflowErrorKind, start, "continuation chain is longer than %d bytes", maxVarIntLen-1)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return nil, start, newCodecError(VarIntTruncatedErrorKind, start, "no terminating byte after %d bytes", consumed)
	case err != nil:
		return nil, start, errors.Wrap(err, "could not decode varint")
	case !numbers.IsUint128(value):
		return nil, start, newCodecError(VarIntOverflowErrorKind, start, "value exceeds 128 bits")
	}

	// copy normalizes zero representation.
	return new(big.Int).Set(value), start + consumed, nil
}

// EncodeVarInt encodes unsigned integer into canonical LEB128 bytes.
func EncodeVarInt(value *big.Int) ([]byte, error) {
	if !numbers.IsUint128(value) {
		return nil, newCodecError(VarIntOverflowErrorKind, 0, "value %s is out of uint128 range", value)
	}

	encoded, err := leb128.EncodeUnsigned(value)
	if err != nil {
		return nil, err
	}

	return encoded, nil
}

// PayloadIntoIntSequence decodes payload in LEB128 into integer sequence.
func PayloadIntoIntSequence(payload []byte) ([]*big.Int, error) {
	sequence, _, err := PayloadIntoIntSequenceWithOffsets(payload)
	return sequence, err
}

// PayloadIntoIntSequenceWithOffsets decodes payload in LEB128 into integer sequence
// along with payload byte offset of every integer.
func PayloadIntoIntSequenceWithOffsets(payload []byte) ([]*big.Int, []int, error) {
	var (
		sequence = make([]*big.Int, 0, len(payload))
		offsets  = make([]int, 0, len(payload))
	)

	for cursor := 0; cursor < len(payload); {
		num, next, err := DecodeVarInt(payload, cursor)
		if err != nil {
			return nil, nil, err
		}

		sequence = append(sequence, num)
		offsets = append(offsets, cursor)
		cursor = next
	}

	return sequence, offsets, nil
}

// IntSequenceIntoPayload encodes integer sequence into payload in LEB128.
func IntSequenceIntoPayload(sequence []*big.Int) ([]byte, error) {
	payload := make([]byte, 0, len(sequence))
	for _, num := range sequence {
		bytes, err := EncodeVarInt(num)
		if err != nil {
			return nil, err
		}

		payload = append(payload, bytes...)
	}

	return payload, nil
}
