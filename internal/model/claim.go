package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ClaimStatus is the stored lifecycle state of a burn claim. Orphaned is a
// derived overlay on Pending and is never persisted.
type ClaimStatus byte

const (
	// ClaimPending marks a claim accepted locally but not yet final.
	ClaimPending ClaimStatus = 1
	// ClaimFinal marks a claim whose wrapping local transaction reached
	// the required local-finality depth.
	ClaimFinal ClaimStatus = 2
)

// String renders the stored status.
func (s ClaimStatus) String() string {
	switch s {
	case ClaimPending:
		return "pending"
	case ClaimFinal:
		return "final"
	default:
		return fmt.Sprintf("unknown(%d)", byte(s))
	}
}

// Valid reports whether s is a known stored status.
func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimPending, ClaimFinal:
		return true
	default:
		return false
	}
}

// StatusFilter selects claims for listing.
type StatusFilter string

var (
	FilterAll      StatusFilter = "all"
	FilterPending  StatusFilter = "pending"
	FilterFinal    StatusFilter = "final"
	FilterOrphaned StatusFilter = "orphaned"
)

// BurnClaimRecord is the per-burn ledger entry, keyed by the foreign txid.
// Records are append/mutate only and never deleted.
type BurnClaimRecord struct {
	ForeignTxID      chainhash.Hash
	ForeignBlockHash chainhash.Hash
	ForeignHeight    uint32
	BurnedAmount     uint64
	Destination      Destination
	LocalTxID        chainhash.Hash
	ClaimHeight      uint32
	Status           ClaimStatus
	FinalHeight      uint32
}

// ClaimView is a BurnClaimRecord with the derived orphan overlay resolved
// against the oracle's current best chain.
type ClaimView struct {
	BurnClaimRecord
	Orphaned bool
}

// EffectiveStatus renders the status including the derived overlay.
func (v ClaimView) EffectiveStatus() string {
	if v.Orphaned {
		return "orphaned"
	}
	return v.Status.String()
}

// AggregateStats summarizes the claim ledger.
type AggregateStats struct {
	TotalRecords       uint64
	PendingCount       uint64
	FinalCount         uint64
	TotalClaimedAmount uint64
	PendingAmount      uint64
}
