package merkle

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// ErrProofExtractionFailed marks a compact partial-tree encoding from which
// no single matched transaction and sibling path could be recovered.
var ErrProofExtractionFailed = errors.New("compact proof extraction failed")

// ExtractedProof is the explicit-form proof recovered from a compact
// partial Merkle tree, normalized for VerifyInclusion.
type ExtractedProof struct {
	TxID  chainhash.Hash
	Index uint32
	Path  []chainhash.Hash
	Root  chainhash.Hash
}

// ParseCompactProof decodes a serialized merkle-block message (block header
// plus partial Merkle tree) and extracts the single matched transaction with
// its leaf-to-root sibling path.
func ParseCompactProof(raw []byte) (*wire.BlockHeader, *ExtractedProof, error) {
	var msg wire.MsgMerkleBlock
	r := bytes.NewReader(raw)
	if err := msg.BtcDecode(r, wire.ProtocolVersion, wire.BaseEncoding); err != nil {
		return nil, nil, fmt.Errorf("%w: decode merkle block: %v", ErrProofExtractionFailed, err)
	}
	if r.Len() != 0 {
		return nil, nil, fmt.Errorf("%w: %d trailing bytes", ErrProofExtractionFailed, r.Len())
	}

	proof, err := extractFromPartialTree(msg.Transactions, msg.Hashes, msg.Flags)
	if err != nil {
		return nil, nil, err
	}
	return &msg.Header, proof, nil
}

// partialTreeWalker consumes the depth-first flag bits and node hashes of a
// partial Merkle tree while memoizing every visited node, so the sibling
// path of the matched leaf can be read back afterwards.
type partialTreeWalker struct {
	numTx   uint32
	hashes  []*chainhash.Hash
	flags   []byte
	bitUsed uint32
	used    int

	nodes      map[uint64]chainhash.Hash
	matched    []uint32
	duplicated bool
}

func (w *partialTreeWalker) treeWidth(height uint32) uint32 {
	return (w.numTx + (1 << height) - 1) >> height
}

func (w *partialTreeWalker) nextBit() (bool, error) {
	if int(w.bitUsed/8) >= len(w.flags) {
		return false, fmt.Errorf("%w: flag bits exhausted", ErrProofExtractionFailed)
	}
	bit := w.flags[w.bitUsed/8]>>(w.bitUsed%8)&1 == 1
	w.bitUsed++
	return bit, nil
}

func (w *partialTreeWalker) nextHash() (chainhash.Hash, error) {
	if w.used >= len(w.hashes) {
		return chainhash.Hash{}, fmt.Errorf("%w: hashes exhausted", ErrProofExtractionFailed)
	}
	h := *w.hashes[w.used]
	w.used++
	return h, nil
}

func nodeKey(height, pos uint32) uint64 {
	return uint64(height)<<32 | uint64(pos)
}

func (w *partialTreeWalker) walk(height, pos uint32) (chainhash.Hash, error) {
	parent, err := w.nextBit()
	if err != nil {
		return chainhash.Hash{}, err
	}

	if height == 0 || !parent {
		// Leaf node, or an internal node whose subtree carries no match;
		// either way the hash is stored verbatim.
		h, err := w.nextHash()
		if err != nil {
			return chainhash.Hash{}, err
		}
		if height == 0 && parent {
			w.matched = append(w.matched, pos)
		}
		w.nodes[nodeKey(height, pos)] = h
		return h, nil
	}

	left, err := w.walk(height-1, pos*2)
	if err != nil {
		return chainhash.Hash{}, err
	}
	right := left
	if pos*2+1 < w.treeWidth(height-1) {
		right, err = w.walk(height-1, pos*2+1)
		if err != nil {
			return chainhash.Hash{}, err
		}
		if left.IsEqual(&right) {
			// Duplicate right node: the encoding is mutable (CVE-2012-2459).
			w.duplicated = true
		}
	}

	h := hashBranches(&left, &right)
	w.nodes[nodeKey(height, pos)] = h
	return h, nil
}

func extractFromPartialTree(numTx uint32, hashes []*chainhash.Hash, flags []byte) (*ExtractedProof, error) {
	if numTx == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrProofExtractionFailed)
	}

	var height uint32
	w := &partialTreeWalker{
		numTx:  numTx,
		hashes: hashes,
		flags:  flags,
		nodes:  make(map[uint64]chainhash.Hash),
	}
	for w.treeWidth(height) > 1 {
		height++
	}

	root, err := w.walk(height, 0)
	if err != nil {
		return nil, err
	}

	if w.duplicated {
		return nil, fmt.Errorf("%w: duplicated node in tree", ErrProofExtractionFailed)
	}
	if w.used != len(w.hashes) {
		return nil, fmt.Errorf("%w: %d unconsumed hashes", ErrProofExtractionFailed, len(w.hashes)-w.used)
	}
	// Only zero padding may remain in the final flag byte.
	for bit := w.bitUsed; bit < uint32(len(w.flags))*8; bit++ {
		if w.flags[bit/8]>>(bit%8)&1 == 1 {
			return nil, fmt.Errorf("%w: non-zero padding in flag bits", ErrProofExtractionFailed)
		}
	}
	if len(w.matched) != 1 {
		return nil, fmt.Errorf("%w: %d matched transactions, need exactly 1", ErrProofExtractionFailed, len(w.matched))
	}

	index := w.matched[0]
	path := make([]chainhash.Hash, 0, height)
	for h := uint32(0); h < height; h++ {
		pos := index >> h
		sibling := pos ^ 1
		if sibling >= w.treeWidth(h) {
			// Odd node count at this level: the node is paired with itself.
			sibling = pos
		}
		node, ok := w.nodes[nodeKey(h, sibling)]
		if !ok {
			return nil, fmt.Errorf("%w: missing sibling at height %d pos %d", ErrProofExtractionFailed, h, sibling)
		}
		path = append(path, node)
	}

	leaf, ok := w.nodes[nodeKey(0, index)]
	if !ok {
		return nil, fmt.Errorf("%w: missing matched leaf", ErrProofExtractionFailed)
	}

	return &ExtractedProof{
		TxID:  leaf,
		Index: index,
		Path:  path,
		Root:  root,
	}, nil
}
