// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"encoding/binary"
	"math"

	"github.com/btcsuite/btcd/txscript"
)

// MagicNumber defines the opcode following OP_RETURN in the runestone script.
const MagicNumber byte = txscript.OP_13

// protocolPrefixLen defines OP_RETURN + OP_13 prefix length.
const protocolPrefixLen = 2

// ExtractPayload validates OP_RETURN + OP_13 prefix and concatenates data of all
// subsequent OP_DATA_<n> and OP_PUSHDATA<n> pushes. Scanning stops on the first
// non-push opcode, the rest of the script is not a part of the payload.
func ExtractPayload(script []byte) ([]byte, error) {
	if !HasProtocolPrefix(script) {
		return nil, ErrNotProtocolScript
	}

	payload := make([]byte, 0, len(script)-protocolPrefixLen)
	tokenizer := txscript.MakeScriptTokenizer(0, script[protocolPrefixLen:])
	for {
		offset := protocolPrefixLen + int(tokenizer.ByteIndex())
		if !tokenizer.Next() {
			if err := tokenizer.Err(); err != nil {
				return nil, newCodecError(TruncatedPushErrorKind, offset, "%v", err)
			}

			return payload, nil
		}

		if !isPayloadPush(tokenizer.Opcode()) {
			return payload, nil
		}

		payload = append(payload, tokenizer.Data()...)
	}
}

// HasProtocolPrefix returns true if the script starts with OP_RETURN OP_13.
func HasProtocolPrefix(script []byte) bool {
	return len(script) >= protocolPrefixLen && script[0] == txscript.OP_RETURN && script[1] == MagicNumber
}

// IsPossibleRunestone returns true if the script starts with rune protocol bytes sequence
// followed by data push.
func IsPossibleRunestone(script []byte) bool {
	switch {
	case len(script) < protocolPrefixLen+2: // OP_RETURN + OP_13 + OP_PUSH_<num> + data(at least 1 byte).
		return false
	case !HasProtocolPrefix(script):
		return false
	case !isPayloadPush(script[protocolPrefixLen]):
		return false
	}

	return true
}

// NewRunestoneScript wraps payload into OP_RETURN OP_13 <push payload> script
// using the smallest push opcode fitting the payload length.
func NewRunestoneScript(payload []byte) ([]byte, error) {
	script := make([]byte, 0, len(payload)+protocolPrefixLen+5)
	script = append(script, txscript.OP_RETURN, MagicNumber)

	size := len(payload)
	switch {
	case size == 0:
		return script, nil
	case size <= txscript.OP_DATA_75:
		script = append(script, byte(size))
	case size <= math.MaxUint8:
		script = append(script, txscript.OP_PUSHDATA1, byte(size))
	case size <= math.MaxUint16:
		script = append(script, txscript.OP_PUSHDATA2)
		script = binary.LittleEndian.AppendUint16(script, uint16(size))
	case uint64(size) <= math.MaxUint32:
		script = append(script, txscript.OP_PUSHDATA4)
		script = binary.LittleEndian.AppendUint32(script, uint32(size))
	default:
		return nil, newCodecError(TruncatedPushErrorKind, 0, "payload of %d bytes does not fit OP_PUSHDATA4", size)
	}

	return append(script, payload...), nil
}

// isPayloadPush returns true for OP_DATA_1..OP_DATA_75 and OP_PUSHDATA1/2/4.
func isPayloadPush(opcode byte) bool {
	return opcode >= txscript.OP_DATA_1 && opcode <= txscript.OP_PUSHDATA4
}
