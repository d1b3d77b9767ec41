package claims

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Oracle answers foreign header-chain queries (see internal/spv).
	Oracle interface {
		GetHeader(hash *chainhash.Hash) (*wire.BlockHeader, uint32, error)
		GetHeaderAtHeight(height uint32) (*wire.BlockHeader, error)
		IsInBestChain(hash *chainhash.Hash) (bool, error)
		GetConfirmations(hash *chainhash.Hash) (uint32, error)
		TipHeight() (uint32, error)
		MinSupportedHeight() uint32
	}

	// Engine is the local chain's transaction-admission pipeline. It
	// re-validates every claim assertion independently and is the sole
	// consensus-binding check.
	Engine interface {
		Submit(ctx context.Context, claimTx *ClaimTx) (chainhash.Hash, error)
		TipHeight() (uint32, error)
	}

	// Gate reports whether new claims are currently admitted.
	Gate interface {
		Enabled() bool
	}

	// Store is the claim portion of the keyed store.
	Store interface {
		PutClaim(*model.BurnClaimRecord) error
		GetClaim(foreignTxID chainhash.Hash) (*model.BurnClaimRecord, error)
		HasClaim(foreignTxID chainhash.Hash) (bool, error)
		ForEachClaim(visit func(*model.BurnClaimRecord) (bool, error)) error
	}

	// Metrics records claim submission outcomes.
	Metrics interface {
		ObserveSubmission(proofForm string, err error, started time.Time)
		AddBurnedAmount(amount uint64)
	}
)
