// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package taproot

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/txscript"
	"github.com/cockroachdb/errors"
)

// ErrMalformedCommitment defines that leaf script does not follow commitment layout.
var ErrMalformedCommitment = errors.New("commitment script is malformed")

// NewCommitmentScript builds leaf script which can be spent by internal key signature
// and reveals commitment data in never executed branch:
// <x-only pubKey> OP_CHECKSIG OP_FALSE OP_IF <commitment> OP_ENDIF.
func NewCommitmentScript(internalKey *btcec.PublicKey, commitment []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddData(schnorr.SerializePubKey(internalKey)).
		AddOp(txscript.OP_CHECKSIG).
		AddOp(txscript.OP_FALSE).
		AddOp(txscript.OP_IF).
		AddData(commitment).
		AddOp(txscript.OP_ENDIF).
		Script()
}

// ParseCommitmentScript returns commitment data revealed by the script built with NewCommitmentScript.
func ParseCommitmentScript(script []byte) ([]byte, error) {
	var (
		tokenizer  = txscript.MakeScriptTokenizer(0, script)
		commitment []byte
		position   int
	)

	for ; tokenizer.Next(); position++ {
		opcode := tokenizer.Opcode()
		switch {
		case position == 0 && opcode == txscript.OP_DATA_32:
		case position == 1 && opcode == txscript.OP_CHECKSIG:
		case position == 2 && opcode == txscript.OP_FALSE:
		case position == 3 && opcode == txscript.OP_IF:
		case position == 4 && opcode <= txscript.OP_PUSHDATA4:
			commitment = tokenizer.Data()
		case position == 4 && opcode == txscript.OP_1NEGATE:
			commitment = []byte{0x81}
		case position == 4 && opcode >= txscript.OP_1 && opcode <= txscript.OP_16:
			commitment = []byte{opcode - (txscript.OP_1 - 1)}
		case position == 5 && opcode == txscript.OP_ENDIF:
		default:
			return nil, errors.Wrapf(ErrMalformedCommitment, "unexpected opcode %d at %d", opcode, position)
		}
	}

	if err := tokenizer.Err(); err != nil {
		return nil, errors.Wrap(ErrMalformedCommitment, err.Error())
	}
	if position != 6 {
		return nil, errors.Wrap(ErrMalformedCommitment, "script is truncated")
	}

	return commitment, nil
}
