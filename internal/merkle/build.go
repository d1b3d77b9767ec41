package merkle

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BuildPath computes the leaf-to-root sibling path for the leaf at index
// over a full list of block transaction ids, pairing odd tail nodes with
// themselves the way the foreign chain builds its tree.
func BuildPath(leaves []chainhash.Hash, index uint32) ([]chainhash.Hash, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("no leaves")
	}
	if index >= uint32(len(leaves)) {
		return nil, fmt.Errorf("leaf index %d out of range for %d leaves", index, len(leaves))
	}

	level := append([]chainhash.Hash(nil), leaves...)
	path := make([]chainhash.Hash, 0)
	pos := index
	for len(level) > 1 {
		sibling := pos ^ 1
		if sibling >= uint32(len(level)) {
			sibling = pos
		}
		path = append(path, level[sibling])

		next := make([]chainhash.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := i
			if i+1 < len(level) {
				right = i + 1
			}
			next = append(next, hashBranches(&level[i], &level[right]))
		}
		level = next
		pos >>= 1
	}

	return path, nil
}

// ComputeRoot folds a full list of block transaction ids into the tree root.
func ComputeRoot(leaves []chainhash.Hash) (chainhash.Hash, error) {
	if len(leaves) == 0 {
		return chainhash.Hash{}, fmt.Errorf("no leaves")
	}
	path, err := BuildPath(leaves, 0)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return FoldProof(leaves[0], 0, path)
}
