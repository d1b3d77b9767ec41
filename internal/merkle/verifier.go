// Package merkle verifies transaction inclusion proofs against block Merkle roots.
package merkle

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrProofInvalid marks a sibling path that does not fold to the expected root.
var ErrProofInvalid = errors.New("merkle proof invalid")

// hashBranches computes the double-SHA256 parent of two sibling nodes.
func hashBranches(left, right *chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(buf[:])
}

// FoldProof recomputes the Merkle root from a leaf, its position and a
// leaf-to-root sibling path. The low bit of the running index selects
// left/right ordering at each level.
func FoldProof(txid chainhash.Hash, index uint32, path []chainhash.Hash) (chainhash.Hash, error) {
	current := txid
	pos := index
	for _, sibling := range path {
		if pos&1 == 1 {
			current = hashBranches(&sibling, &current)
		} else {
			current = hashBranches(&current, &sibling)
		}
		pos >>= 1
	}
	if pos != 0 {
		return chainhash.Hash{}, fmt.Errorf("%w: index %d out of range for %d-level proof", ErrProofInvalid, index, len(path))
	}
	return current, nil
}

// VerifyInclusion checks that the sibling path proves txid at the given
// position under expectedRoot.
func VerifyInclusion(txid chainhash.Hash, index uint32, path []chainhash.Hash, expectedRoot chainhash.Hash) error {
	root, err := FoldProof(txid, index, path)
	if err != nil {
		return err
	}
	if !root.IsEqual(&expectedRoot) {
		return fmt.Errorf("%w: computed root %s, expected %s", ErrProofInvalid, root, expectedRoot)
	}
	return nil
}
