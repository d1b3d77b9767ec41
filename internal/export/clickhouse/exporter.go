package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/clock"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/pkg/batcher"
	"go.uber.org/zap"
)

//go:generate mockgen -source=exporter.go -destination=exporter_mocks_test.go -package=clickhouse

const (
	defaultExportInterval = time.Minute
	defaultPageSize       = 500
	flushSize             = 1000
	flushInterval         = 10 * time.Second
	flushRPS              = 2
)

type (
	// ClaimSource pages through the claim ledger.
	ClaimSource interface {
		ListClaims(filter model.StatusFilter, limit, offset int) ([]model.ClaimView, error)
	}

	// SettlementSource reports the latest settlement snapshot with its
	// invariant deltas.
	SettlementSource interface {
		Health() (*model.SettlementState, model.InvariantDeltas, error)
	}

	// Sink persists converted rows.
	Sink interface {
		InsertClaims(ctx context.Context, rows []ClaimRow) error
		InsertSettlements(ctx context.Context, rows []SettlementRow) error
	}
)

// Exporter periodically snapshots the claim ledger and settlement state
// into the analytics store. Claim rows replace by foreign txid downstream,
// so overlapping export rounds are harmless.
type Exporter struct {
	claims         ClaimSource
	settlement     SettlementSource
	logger         *zap.Logger
	interval       time.Duration
	pageSize       int
	claimBatch     *batcher.Batcher[ClaimRow]
	snapshotBatch  *batcher.Batcher[SettlementRow]
	lastSettlement uint32
	haveSettlement bool
}

// NewExporter builds an Exporter flushing through sink.
func NewExporter(claims ClaimSource, settlement SettlementSource, sink Sink, logger *zap.Logger) (*Exporter, error) {
	if claims == nil {
		return nil, errors.New("claim source is required")
	}
	if settlement == nil {
		return nil, errors.New("settlement source is required")
	}
	if sink == nil {
		return nil, errors.New("sink is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Exporter{
		claims:        claims,
		settlement:    settlement,
		logger:        logger,
		interval:      defaultExportInterval,
		pageSize:      defaultPageSize,
		claimBatch:    batcher.New(logger, sink.InsertClaims, flushSize, flushInterval, flushRPS),
		snapshotBatch: batcher.New(logger, sink.InsertSettlements, flushSize, flushInterval, flushRPS),
	}, nil
}

// Run exports on a fixed interval until ctx is canceled.
func (e *Exporter) Run(ctx context.Context) error {
	e.claimBatch.Start(ctx)
	e.snapshotBatch.Start(ctx)
	defer func() {
		e.claimBatch.Stop()
		e.snapshotBatch.Stop()
	}()

	for {
		if err := e.exportOnce(ctx); err != nil {
			e.logger.Error("export round failed", zap.Error(err))
		}
		if err := clock.SleepWithContext(ctx, e.interval); err != nil {
			return nil
		}
	}
}

func (e *Exporter) exportOnce(ctx context.Context) error {
	now := time.Now().UTC()

	exported, err := e.exportClaims(ctx, now)
	if err != nil {
		return err
	}
	if err := e.exportSettlement(ctx, now); err != nil {
		return err
	}

	e.logger.Debug("export round done", zap.Int("claims", exported))
	return nil
}

func (e *Exporter) exportClaims(ctx context.Context, now time.Time) (int, error) {
	total := 0
	for offset := 0; ; offset += e.pageSize {
		views, err := e.claims.ListClaims(model.FilterFinal, e.pageSize, offset)
		if err != nil {
			return total, fmt.Errorf("list final claims: %w", err)
		}
		for _, view := range views {
			if err := e.claimBatch.Add(ctx, NewClaimRow(view.BurnClaimRecord, now)); err != nil {
				return total, err
			}
			total++
		}
		if len(views) < e.pageSize {
			return total, nil
		}
	}
}

func (e *Exporter) exportSettlement(ctx context.Context, now time.Time) error {
	latest, deltas, err := e.settlement.Health()
	if err != nil {
		return fmt.Errorf("settlement health: %w", err)
	}
	if latest == nil || (e.haveSettlement && latest.Height == e.lastSettlement) {
		return nil
	}
	if err := e.snapshotBatch.Add(ctx, NewSettlementRow(*latest, deltas, now)); err != nil {
		return err
	}
	e.lastSettlement = latest.Height
	e.haveSettlement = true
	return nil
}
