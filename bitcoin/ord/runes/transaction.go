// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
)

// DecipherTransaction looks for the first output carrying runestone script and decodes it.
// Returns nil Runestone and -1 index if there is no such output.
func DecipherTransaction(tx *wire.MsgTx) (*Runestone, int, error) {
	for idx, txOut := range tx.TxOut {
		if !HasProtocolPrefix(txOut.PkScript) {
			continue
		}

		runestone, err := ParseRunestone(txOut.PkScript)
		if err != nil {
			return nil, idx, errors.Wrapf(err, "output %d", idx)
		}

		return runestone, idx, nil
	}

	return nil, -1, nil
}

// NewTxOut returns zero value output with runestone script.
func NewTxOut(script []byte) *wire.TxOut {
	return wire.NewTxOut(0, script)
}
