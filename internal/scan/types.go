// Package scan tracks foreign-chain scanning progress and drives burn
// discovery over the confirmed region of the chain.
package scan

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/claims"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Oracle answers foreign header-chain queries (see internal/spv).
	Oracle interface {
		GetHeader(hash *chainhash.Hash) (*wire.BlockHeader, uint32, error)
		GetHeaderAtHeight(height uint32) (*wire.BlockHeader, error)
		IsInBestChain(hash *chainhash.Hash) (bool, error)
		TipHeight() (uint32, error)
		MinSupportedHeight() uint32
	}

	// Store is the scan-progress portion of the keyed store.
	Store interface {
		GetScanProgress() (model.ScanProgress, bool, error)
		PutScanProgress(model.ScanProgress) error
	}

	// BlockSource fetches full foreign blocks for burn discovery.
	BlockSource interface {
		FetchBlock(ctx context.Context, height uint32) (*Block, error)
	}

	// Submitter accepts explicit-proof claims for discovered burns.
	Submitter interface {
		SubmitClaim(
			ctx context.Context,
			rawForeignTx []byte,
			blockHash chainhash.Hash,
			height uint32,
			proof []chainhash.Hash,
			txIndex uint32,
		) (*claims.SubmitResult, error)
	}

	// Metrics records scanner progress and discoveries.
	Metrics interface {
		ObserveProcessBatch(err error, started time.Time)
		SetBlocksBehind(blocks uint32)
		ObserveReorg()
		ObserveBurnDiscovered()
	}
)

// Block is a fetched foreign block with its raw transactions in block order.
type Block struct {
	Hash   chainhash.Hash
	Height uint32
	TxIDs  []chainhash.Hash
	RawTxs [][]byte
}
