// Package spv exposes the foreign-chain header oracle consumed by claim
// verification and scanning.
package spv

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Oracle is the header-synchronization client boundary. Implementations
// answer from a locally maintained foreign header chain.
type Oracle interface {
	// GetHeader returns the header and height for a block hash, or
	// ErrHeaderNotFound.
	GetHeader(hash *chainhash.Hash) (*wire.BlockHeader, uint32, error)
	// GetHeaderAtHeight returns the best-chain header at a height.
	GetHeaderAtHeight(height uint32) (*wire.BlockHeader, error)
	// IsInBestChain reports whether the block is on the current best chain.
	// Unknown hashes report false without error.
	IsInBestChain(hash *chainhash.Hash) (bool, error)
	// GetConfirmations returns the best-chain confirmation count for the
	// block, zero when unknown or off the best chain.
	GetConfirmations(hash *chainhash.Hash) (uint32, error)
	// TipHeight returns the current best-chain tip height.
	TipHeight() (uint32, error)
	// MinSupportedHeight returns the lowest height burns are accepted from.
	MinSupportedHeight() uint32
}
