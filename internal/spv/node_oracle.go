package spv

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/burnbridge7000-backend/pkg/safe"
)

// NodeOracle answers header queries from a header-synced foreign node over
// RPC. Confirmation counts and best-chain membership reflect the node's
// current best chain.
type NodeOracle struct {
	rpc                *RPCClient
	minSupportedHeight uint32
}

// NewNodeOracle constructs a NodeOracle. minSupportedHeight is the burn
// activation height; burns below it are never scanned or accepted.
func NewNodeOracle(rpc *RPCClient, minSupportedHeight uint32) (*NodeOracle, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	return &NodeOracle{
		rpc:                rpc,
		minSupportedHeight: minSupportedHeight,
	}, nil
}

// GetHeader returns the header and height for a block hash.
func (o *NodeOracle) GetHeader(hash *chainhash.Hash) (*wire.BlockHeader, uint32, error) {
	verbose, err := o.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		if isBlockNotFound(err) {
			return nil, 0, fmt.Errorf("%w: %s", ErrHeaderNotFound, hash)
		}
		return nil, 0, fmt.Errorf("%w: get header %s: %v", ErrOracleUnavailable, hash, err)
	}
	height, err := safe.Uint32(verbose.Height)
	if err != nil {
		return nil, 0, fmt.Errorf("header %s height overflow: %w", hash, err)
	}
	header, err := o.rpc.GetBlockHeader(hash)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: get header bytes %s: %v", ErrOracleUnavailable, hash, err)
	}
	return header, height, nil
}

// GetHeaderAtHeight returns the best-chain header at a height.
func (o *NodeOracle) GetHeaderAtHeight(height uint32) (*wire.BlockHeader, error) {
	hash, err := o.rpc.GetBlockHash(int64(height))
	if err != nil {
		if isBlockNotFound(err) {
			return nil, fmt.Errorf("%w: height %d", ErrHeaderNotFound, height)
		}
		return nil, fmt.Errorf("%w: get block hash at %d: %v", ErrOracleUnavailable, height, err)
	}
	header, err := o.rpc.GetBlockHeader(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: get header %s: %v", ErrOracleUnavailable, hash, err)
	}
	return header, nil
}

// IsInBestChain reports whether the block is on the node's best chain. The
// node reports a negative confirmation count for blocks off the best chain.
func (o *NodeOracle) IsInBestChain(hash *chainhash.Hash) (bool, error) {
	verbose, err := o.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		if isBlockNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: get header %s: %v", ErrOracleUnavailable, hash, err)
	}
	return verbose.Confirmations >= 0, nil
}

// GetConfirmations returns the confirmation count for a block, zero when
// the block is unknown or off the best chain.
func (o *NodeOracle) GetConfirmations(hash *chainhash.Hash) (uint32, error) {
	verbose, err := o.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		if isBlockNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: get header %s: %v", ErrOracleUnavailable, hash, err)
	}
	if verbose.Confirmations < 0 {
		return 0, nil
	}
	confirmations, err := safe.Uint32(verbose.Confirmations)
	if err != nil {
		return 0, fmt.Errorf("header %s confirmations overflow: %w", hash, err)
	}
	return confirmations, nil
}

// TipHeight returns the node's best-chain tip height.
func (o *NodeOracle) TipHeight() (uint32, error) {
	count, err := o.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("%w: get block count: %v", ErrOracleUnavailable, err)
	}
	height, err := safe.Uint32(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// MinSupportedHeight returns the configured burn activation height.
func (o *NodeOracle) MinSupportedHeight() uint32 {
	return o.minSupportedHeight
}

func isBlockNotFound(err error) bool {
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	return rpcErr.Code == btcjson.ErrRPCBlockNotFound || rpcErr.Code == btcjson.ErrRPCOutOfRange
}
