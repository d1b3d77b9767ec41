package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// InsertClaims stores claim rows in ClickHouse. The table replaces rows by
// foreign txid, so re-exporting a claim after finalization is safe.
func (r *Repository) InsertClaims(ctx context.Context, rows []ClaimRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_claims", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO burn_claims (
	foreign_txid,
	foreign_block_hash,
	foreign_height,
	burned_amount,
	destination,
	local_txid,
	claim_height,
	status,
	final_height,
	exported_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare claims batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			row.ForeignTxID,
			row.ForeignBlockHash,
			row.ForeignHeight,
			row.BurnedAmount,
			row.Destination,
			row.LocalTxID,
			row.ClaimHeight,
			row.Status,
			row.FinalHeight,
			row.ExportedAt,
		); err != nil {
			return fmt.Errorf("append claim row: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert claims: %w", err)
	}
	return nil
}
