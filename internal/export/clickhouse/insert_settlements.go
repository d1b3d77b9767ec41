package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// InsertSettlements stores settlement snapshot rows in ClickHouse.
func (r *Repository) InsertSettlements(ctx context.Context, rows []SettlementRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_settlements", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO settlement_snapshots (
	height,
	block_hash,
	m0_total,
	m0_vaulted,
	m0_shielded,
	m1_supply,
	burn_claims_this_block,
	a5_delta,
	a6_delta,
	exported_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare settlements batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			row.Height,
			row.BlockHash,
			row.M0Total,
			row.M0Vaulted,
			row.M0Shielded,
			row.M1Supply,
			row.BurnClaimsThisBlock,
			row.A5Delta,
			row.A6Delta,
			row.ExportedAt,
		); err != nil {
			return fmt.Errorf("append settlement row: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert settlements: %w", err)
	}
	return nil
}
