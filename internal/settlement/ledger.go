// Package settlement reads per-height supply snapshots and surfaces
// monetary invariant violations. Enforcement of the invariants as consensus
// rules belongs to the local chain's validation engine; this package only
// reports, it never corrects.
package settlement

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"go.uber.org/zap"
)

type (
	// Store is the settlement portion of the keyed store.
	Store interface {
		PutSettlement(*model.SettlementState) error
		GetSettlement(height uint32) (*model.SettlementState, error)
		LatestSettlement() (*model.SettlementState, error)
	}

	// Metrics records invariant diagnostics.
	Metrics interface {
		ObserveViolation(invariant string)
		SetSupply(m0Total, m0Vaulted, m0Shielded, m1Supply uint64)
	}
)

// Ledger is the single source of truth for total supply. It has one writer
// (the block-processing path) and any number of concurrent readers.
type Ledger struct {
	store   Store
	metrics Metrics
	logger  *zap.Logger
}

// NewLedger builds a Ledger with dependencies.
func NewLedger(store Store, metrics Metrics, logger *zap.Logger) (*Ledger, error) {
	if store == nil {
		return nil, errors.New("settlement store is required")
	}
	if metrics == nil {
		return nil, errors.New("settlement metrics is required")
	}
	return &Ledger{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Latest returns the most recent snapshot, or nil when none exist.
func (l *Ledger) Latest() (*model.SettlementState, error) {
	return l.store.LatestSettlement()
}

// AtHeight returns the snapshot at a height, or nil when absent.
func (l *Ledger) AtHeight(height uint32) (*model.SettlementState, error) {
	return l.store.GetSettlement(height)
}

// Append records the snapshot for the next block. Invariant violations are
// logged and counted but the snapshot is stored as observed.
func (l *Ledger) Append(state *model.SettlementState) error {
	var prev *model.SettlementState
	if state.Height > 0 {
		var err error
		prev, err = l.store.GetSettlement(state.Height - 1)
		if err != nil {
			return fmt.Errorf("read previous settlement: %w", err)
		}
	}

	deltas := Deltas(prev, state)
	if deltas.A5 != 0 {
		l.metrics.ObserveViolation("a5")
		l.logger.Error("monetary conservation violated",
			zap.Uint32("height", state.Height),
			zap.Int64("a5Delta", deltas.A5),
		)
	}
	if deltas.A6 != 0 {
		l.metrics.ObserveViolation("a6")
		l.logger.Error("settlement backing violated",
			zap.Uint32("height", state.Height),
			zap.Int64("a6Delta", deltas.A6),
		)
	}

	if err := l.store.PutSettlement(state); err != nil {
		return fmt.Errorf("append settlement at %d: %w", state.Height, err)
	}
	l.metrics.SetSupply(state.M0Total, state.M0Vaulted, state.M0Shielded, state.M1Supply)
	return nil
}

// Deltas computes the diagnostic invariant deltas for a snapshot against
// its predecessor. A nil prev treats the snapshot as the genesis of the
// settlement ledger, where M0Total may only consist of that block's claims.
func Deltas(prev, cur *model.SettlementState) model.InvariantDeltas {
	var prevTotal uint64
	if prev != nil {
		prevTotal = prev.M0Total
	}
	return model.InvariantDeltas{
		A5: int64(cur.M0Total) - int64(prevTotal) - int64(cur.BurnClaimsThisBlock),
		A6: int64(cur.M0Vaulted) - int64(cur.M1Supply),
	}
}

// Health resolves the latest snapshot's deltas for status reporting.
func (l *Ledger) Health() (*model.SettlementState, model.InvariantDeltas, error) {
	latest, err := l.store.LatestSettlement()
	if err != nil {
		return nil, model.InvariantDeltas{}, err
	}
	if latest == nil {
		return nil, model.InvariantDeltas{}, nil
	}
	var prev *model.SettlementState
	if latest.Height > 0 {
		prev, err = l.store.GetSettlement(latest.Height - 1)
		if err != nil {
			return nil, model.InvariantDeltas{}, err
		}
	}
	return latest, Deltas(prev, latest), nil
}
