// Package follower tracks the local chain and drives the write side of the
// claim and settlement ledgers as blocks are produced.
package follower

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Chain is the local node surface the follower polls.
	Chain interface {
		TipHeight() (uint32, error)
		SettlementAt(ctx context.Context, height uint32) (*model.SettlementState, error)
	}

	// Claims is the claim-ledger promotion surface.
	Claims interface {
		ListClaims(filter model.StatusFilter, limit, offset int) ([]model.ClaimView, error)
		MarkClaimFinal(foreignTxID chainhash.Hash, finalHeight uint32) error
	}

	// Settlements is the settlement ledger's single writer entry.
	Settlements interface {
		Latest() (*model.SettlementState, error)
		Append(state *model.SettlementState) error
	}
)
