// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"fmt"
	"math/big"
)

// ErrorKind describes the class of the codec failure.
type ErrorKind byte

const (
	// NotProtocolScriptErrorKind describes scripts without OP_RETURN + OP_13 prefix.
	// It is not a failure for callers: such script simply carries no runestone.
	NotProtocolScriptErrorKind ErrorKind = iota + 1
	// TruncatedPushErrorKind describes a push which declared length exceeds the script.
	TruncatedPushErrorKind
	// VarIntTruncatedErrorKind describes payload which ends in the middle of the varint.
	VarIntTruncatedErrorKind
	// VarIntOverflowErrorKind describes varint which does not fit into 128 bits.
	VarIntOverflowErrorKind
	// DanglingTagErrorKind describes tag without value at the end of the fields.
	DanglingTagErrorKind
	// InvalidRuneIDErrorKind describes edict rune id with zero block and non-zero tx,
	// or edict delta which moves the id out of u64 block or u32 tx.
	InvalidRuneIDErrorKind
	// EdictOrderErrorKind describes edicts which ids can not be delta encoded.
	EdictOrderErrorKind
	// BodyFieldErrorKind describes a field added under BODY tag, which would start edicts on decoding.
	BodyFieldErrorKind
)

// String returns ErrorKind name.
func (k ErrorKind) String() string {
	switch k {
	case NotProtocolScriptErrorKind:
		return "not protocol script"
	case TruncatedPushErrorKind:
		return "truncated push"
	case VarIntTruncatedErrorKind:
		return "varint truncated"
	case VarIntOverflowErrorKind:
		return "varint overflow"
	case DanglingTagErrorKind:
		return "dangling tag"
	case InvalidRuneIDErrorKind:
		return "invalid rune id"
	case EdictOrderErrorKind:
		return "edict order"
	case BodyFieldErrorKind:
		return "body field"
	default:
		return fmt.Sprintf("unknown(%d)", byte(k))
	}
}

// Sentinel errors to be used with errors.Is, only the kind is compared.
var (
	ErrNotProtocolScript = &CodecError{kind: NotProtocolScriptErrorKind, message: "not a runestone script"}
	ErrTruncatedPush     = &CodecError{kind: TruncatedPushErrorKind, message: "push data exceeds script length"}
	ErrVarIntTruncated   = &CodecError{kind: VarIntTruncatedErrorKind, message: "varint is truncated"}
	ErrVarIntOverflow    = &CodecError{kind: VarIntOverflowErrorKind, message: "varint overflows uint128"}
	ErrDanglingTag       = &CodecError{kind: DanglingTagErrorKind, message: "tag has no value"}
	ErrInvalidRuneID     = &CodecError{kind: InvalidRuneIDErrorKind, message: "invalid rune id"}
	ErrEdictOrder        = &CodecError{kind: EdictOrderErrorKind, message: "edicts are not ordered by rune id"}
	ErrBodyField         = &CodecError{kind: BodyFieldErrorKind, message: "BODY tag can not carry a field"}
)

// CodecError provides wide description of the encoding or decoding failure.
//
// Offset meaning depends on the kind:
//   - TruncatedPush: byte offset of the push opcode in the script.
//   - VarIntTruncated, VarIntOverflow: byte offset of the varint start in the payload.
//   - DanglingTag, InvalidRuneID: byte offset of the integer in the payload when parsed
//     from payload, index of the integer when parsed from the integer sequence.
//   - InvalidRuneID, EdictOrder on encoding: index of the edict in the list.
//   - BodyField: always 0.
type CodecError struct {
	kind    ErrorKind
	offset  int
	tag     *big.Int
	message string
}

func newCodecError(kind ErrorKind, offset int, format string, args ...any) *CodecError {
	return &CodecError{
		kind:    kind,
		offset:  offset,
		message: fmt.Sprintf(format, args...),
	}
}

func (e *CodecError) Error() string {
	if e.tag != nil {
		return fmt.Sprintf("runestone: %s at %d (tag %s): %s", e.kind, e.offset, e.tag, e.message)
	}

	return fmt.Sprintf("runestone: %s at %d: %s", e.kind, e.offset, e.message)
}

// Kind returns codec error kind.
func (e *CodecError) Kind() ErrorKind {
	return e.kind
}

// Offset returns position where the error was detected.
func (e *CodecError) Offset() int {
	return e.offset
}

// Tag returns the tag under examination, nil if the error is not related to a tag.
func (e *CodecError) Tag() *big.Int {
	return e.tag
}

// Is reports whether target is a CodecError of the same kind.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok {
		return false
	}

	return t.kind == e.kind
}
