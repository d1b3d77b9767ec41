package scan

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/spv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RPCBlockSource fetches full blocks from the foreign node over RPC.
type RPCBlockSource struct {
	rpc *spv.RPCClient
}

// NewRPCBlockSource constructs a block source over the instrumented RPC client.
func NewRPCBlockSource(rpc *spv.RPCClient) *RPCBlockSource {
	return &RPCBlockSource{rpc: rpc}
}

// FetchBlock returns the best-chain block at the given height with its
// transactions in block order.
func (s *RPCBlockSource) FetchBlock(ctx context.Context, height uint32) (*Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}

	verbose, err := s.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	block := &Block{
		Hash:   *hash,
		Height: height,
		TxIDs:  make([]chainhash.Hash, 0, len(verbose.Tx)),
		RawTxs: make([][]byte, 0, len(verbose.Tx)),
	}
	for i, tx := range verbose.Tx {
		txid, err := chainhash.NewHashFromStr(tx.Txid)
		if err != nil {
			return nil, fmt.Errorf("block %s tx %d: parse txid %q: %w", hash, i, tx.Txid, err)
		}
		raw, err := hex.DecodeString(tx.Hex)
		if err != nil {
			return nil, fmt.Errorf("block %s tx %s: decode raw hex: %w", hash, txid, err)
		}
		block.TxIDs = append(block.TxIDs, *txid)
		block.RawTxs = append(block.RawTxs, raw)
	}
	return block, nil
}
