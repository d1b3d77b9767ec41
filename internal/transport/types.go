// Package transport exposes the burn-claim API over JSON HTTP.
package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/claims"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ClaimService is the claim verification and ledger surface.
	ClaimService interface {
		VerifyBurn(raw []byte) (*model.BurnInfo, error)
		SubmitClaim(ctx context.Context, rawForeignTx []byte, blockHash chainhash.Hash, height uint32, proof []chainhash.Hash, txIndex uint32) (*claims.SubmitResult, error)
		SubmitClaimFromCompactProof(ctx context.Context, rawForeignTx, compactProof []byte) (*claims.SubmitResult, error)
		GetClaim(foreignTxID chainhash.Hash) (*model.ClaimView, error)
		ClaimExists(foreignTxID chainhash.Hash) (bool, error)
		ListClaims(filter model.StatusFilter, limit, offset int) ([]model.ClaimView, error)
		AggregateStats() (model.AggregateStats, error)
	}

	// ScanControl is the scan cursor surface.
	ScanControl interface {
		Status() (model.ScanStatus, error)
		NextRange(maxBlocks uint32) (model.ScanRange, error)
		Advance(height uint32, hash chainhash.Hash) error
	}

	// Admission is the kill switch surface.
	Admission interface {
		Status() model.KillSwitchStatus
		SetEnabled(enabled bool) (bool, error)
	}

	// Settlement reports supply snapshots and invariant health.
	Settlement interface {
		Health() (*model.SettlementState, model.InvariantDeltas, error)
		AtHeight(height uint32) (*model.SettlementState, error)
	}
)
