// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package taproot

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/cockroachdb/errors"
)

// ErrNoLeafScripts defines that tree can not be built without leaves.
var ErrNoLeafScripts = errors.New("no leaf scripts provided")

// NewTreeFromRawScripts builds tapScript tree from provided raw leaf scripts.
// Leaf order is kept, leaf index is the position of the script in the arguments.
func NewTreeFromRawScripts(leafScripts ...[]byte) (*txscript.IndexedTapScriptTree, error) {
	if len(leafScripts) == 0 {
		return nil, ErrNoLeafScripts
	}

	tapLeafs := make([]txscript.TapLeaf, len(leafScripts))
	for i, leafScript := range leafScripts {
		tapLeafs[i] = txscript.NewBaseTapLeaf(leafScript)
	}

	return txscript.AssembleTaprootScriptTree(tapLeafs...), nil
}

// MustTreeFromRawScripts uses NewTreeFromRawScripts, panics in case of error.
func MustTreeFromRawScripts(leafScripts ...[]byte) *txscript.IndexedTapScriptTree {
	tree, err := NewTreeFromRawScripts(leafScripts...)
	if err != nil {
		panic(err)
	}

	return tree
}

// OutputKey returns internal key tweaked with the tree root hash.
func OutputKey(internalKey *btcec.PublicKey, tree *txscript.IndexedTapScriptTree) *btcec.PublicKey {
	rootHash := tree.RootNode.TapHash()
	return txscript.ComputeTaprootOutputKey(internalKey, rootHash[:])
}

// NewAddress generates taproot address committing to the tree built from provided leaf scripts.
func NewAddress(chainParams *chaincfg.Params, internalKey *btcec.PublicKey, leafScripts ...[]byte) (*btcutil.AddressTaproot, error) {
	tree, err := NewTreeFromRawScripts(leafScripts...)
	if err != nil {
		return nil, err
	}

	return btcutil.NewAddressTaproot(schnorr.SerializePubKey(OutputKey(internalKey, tree)), chainParams)
}

// AttachLeaf updates provided psbt input with leaf script and control block needed
// to spend the taproot output through the leaf with leafIndex.
// NOTE: input must already carry the taproot internal key.
func AttachLeaf(input *psbt.PInput, tree *txscript.IndexedTapScriptTree, leafIndex int) error {
	if len(input.TaprootInternalKey) == 0 {
		return errors.New("no taproot internal key provided")
	}
	if leafIndex < 0 || leafIndex >= len(tree.LeafMerkleProofs) {
		return errors.Newf("leaf index %d is out of [0;%d)", leafIndex, len(tree.LeafMerkleProofs))
	}

	internalKey, err := schnorr.ParsePubKey(input.TaprootInternalKey)
	if err != nil {
		return errors.Wrap(err, "invalid taproot internal key")
	}

	proof := tree.LeafMerkleProofs[leafIndex]
	if len(input.WitnessScript) != 0 && !bytes.Equal(input.WitnessScript, proof.TapLeaf.Script) {
		return errors.Newf("witness script does not match leaf %d", leafIndex)
	}

	ctrlBlock := proof.ToControlBlock(internalKey)
	tapLeafScript := &psbt.TaprootTapLeafScript{
		Script:      proof.TapLeaf.Script,
		LeafVersion: proof.TapLeaf.LeafVersion,
	}
	tapLeafScript.ControlBlock, err = ctrlBlock.ToBytes()
	if err != nil {
		return errors.Wrap(err, "could not serialize control block")
	}

	input.TaprootLeafScript = append(input.TaprootLeafScript, tapLeafScript)
	if len(input.TaprootMerkleRoot) == 0 {
		input.TaprootMerkleRoot = ctrlBlock.RootHash(proof.TapLeaf.Script)
	}

	return nil
}
