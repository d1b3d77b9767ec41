package clickhouse

import (
	"time"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
)

// ClaimRow is the flattened analytics projection of a burn claim record.
type ClaimRow struct {
	ForeignTxID      string
	ForeignBlockHash string
	ForeignHeight    uint32
	BurnedAmount     uint64
	Destination      string
	LocalTxID        string
	ClaimHeight      uint32
	Status           string
	FinalHeight      uint32
	ExportedAt       time.Time
}

// SettlementRow is the flattened analytics projection of a settlement
// snapshot with its invariant deltas.
type SettlementRow struct {
	Height              uint32
	BlockHash           string
	M0Total             uint64
	M0Vaulted           uint64
	M0Shielded          uint64
	M1Supply            uint64
	BurnClaimsThisBlock uint64
	A5Delta             int64
	A6Delta             int64
	ExportedAt          time.Time
}

// NewClaimRow flattens a claim record. Hashes are rendered in the display
// byte order used everywhere else in the API.
func NewClaimRow(rec model.BurnClaimRecord, exportedAt time.Time) ClaimRow {
	return ClaimRow{
		ForeignTxID:      rec.ForeignTxID.String(),
		ForeignBlockHash: rec.ForeignBlockHash.String(),
		ForeignHeight:    rec.ForeignHeight,
		BurnedAmount:     rec.BurnedAmount,
		Destination:      rec.Destination.String(),
		LocalTxID:        rec.LocalTxID.String(),
		ClaimHeight:      rec.ClaimHeight,
		Status:           rec.Status.String(),
		FinalHeight:      rec.FinalHeight,
		ExportedAt:       exportedAt,
	}
}

// NewSettlementRow flattens a settlement snapshot.
func NewSettlementRow(state model.SettlementState, deltas model.InvariantDeltas, exportedAt time.Time) SettlementRow {
	return SettlementRow{
		Height:              state.Height,
		BlockHash:           state.BlockHash,
		M0Total:             state.M0Total,
		M0Vaulted:           state.M0Vaulted,
		M0Shielded:          state.M0Shielded,
		M1Supply:            state.M1Supply,
		BurnClaimsThisBlock: state.BurnClaimsThisBlock,
		A5Delta:             deltas.A5,
		A6Delta:             deltas.A6,
		ExportedAt:          exportedAt,
	}
}
