package scan

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/claims"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/clock"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/foreign"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/merkle"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultScanWorkerCount = 8
	defaultScanBatchSize   = 200

	idleSleepDuration      = 30 * time.Second
	postBatchSleepDuration = time.Second
	errorSleepDuration     = 10 * time.Second
)

// Scanner walks the confirmed region of the foreign chain, discovers burn
// transactions and submits claims for them. Blocks are fetched concurrently
// but the cursor advances strictly in height order.
type Scanner struct {
	cursor    *Cursor
	source    BlockSource
	submitter Submitter
	network   model.Network
	metrics   Metrics
	logger    *zap.Logger

	batchSize         uint32
	confirmationDepth uint32
	workerCount       int
}

// NewScanner constructs a burn discovery scanner. confirmationDepth keeps
// the scanner that many blocks behind the tip so every submitted claim
// already satisfies the confirmation requirement.
func NewScanner(
	cursor *Cursor,
	source BlockSource,
	submitter Submitter,
	network model.Network,
	confirmationDepth uint32,
	scanMetrics Metrics,
	logger *zap.Logger,
) (*Scanner, error) {
	if cursor == nil {
		return nil, fmt.Errorf("nil cursor")
	}
	if source == nil {
		return nil, fmt.Errorf("nil block source")
	}
	if submitter == nil {
		return nil, fmt.Errorf("nil submitter")
	}
	if scanMetrics == nil {
		return nil, fmt.Errorf("nil metrics")
	}
	if logger == nil {
		return nil, fmt.Errorf("nil logger")
	}
	return &Scanner{
		cursor:            cursor,
		source:            source,
		submitter:         submitter,
		network:           network,
		metrics:           scanMetrics,
		logger:            logger,
		batchSize:         defaultScanBatchSize,
		confirmationDepth: confirmationDepth,
		workerCount:       defaultScanWorkerCount,
	}, nil
}

// Run drives the scan loop until the context is canceled.
func (s *Scanner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		scanned, err := s.runOnce(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.Error("scan batch failed", zap.Error(err), zap.Duration("sleep", errorSleepDuration))
			if err := clock.SleepWithContext(ctx, errorSleepDuration); err != nil {
				return err
			}
			continue
		}

		sleep := postBatchSleepDuration
		if scanned == 0 {
			sleep = idleSleepDuration
		}
		if err := clock.SleepWithContext(ctx, sleep); err != nil {
			return err
		}
	}
}

// runOnce scans a single height range and returns how many blocks it
// processed.
func (s *Scanner) runOnce(ctx context.Context) (scanned int, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveProcessBatch(err, started)
	}()

	status, err := s.cursor.Status()
	if err != nil {
		return 0, err
	}
	s.metrics.SetBlocksBehind(status.BlocksBehind)

	rng, err := s.cursor.NextRange(s.batchSize)
	if err != nil {
		return 0, err
	}
	rng = s.clampToConfirmed(rng, status.TipHeight)
	if rng.Count == 0 {
		return 0, nil
	}

	s.logger.Info("scanning foreign block range",
		zap.Uint32("start", rng.Start),
		zap.Uint32("end", rng.End),
		zap.Uint32("blocks_behind", status.BlocksBehind),
	)

	blocks, err := s.fetchRange(ctx, rng)
	if err != nil {
		return 0, err
	}

	for _, block := range blocks {
		if err := s.processBlock(ctx, block); err != nil {
			return 0, err
		}
		if err := s.cursor.Advance(block.Height, block.Hash); err != nil {
			return 0, err
		}
	}
	return len(blocks), nil
}

// clampToConfirmed shrinks a range so it never enters the unconfirmed
// region near the tip.
func (s *Scanner) clampToConfirmed(rng model.ScanRange, tip uint32) model.ScanRange {
	if rng.Count == 0 {
		return rng
	}
	if tip < s.confirmationDepth {
		return model.ScanRange{AtTip: true}
	}
	confirmedTip := tip - s.confirmationDepth
	if rng.Start > confirmedTip {
		return model.ScanRange{AtTip: true}
	}
	if rng.End > confirmedTip {
		rng.End = confirmedTip
		rng.Count = rng.End - rng.Start + 1
		rng.AtTip = true
	}
	return rng
}

// fetchRange downloads the blocks of a range concurrently and returns them
// sorted by height.
func (s *Scanner) fetchRange(ctx context.Context, rng model.ScanRange) ([]*Block, error) {
	heights := make([]uint32, 0, rng.Count)
	for h := rng.Start; h <= rng.End; h++ {
		heights = append(heights, h)
	}

	var (
		mu     sync.Mutex
		blocks = make([]*Block, 0, len(heights))
	)
	err := workerpool.Process(ctx, s.workerCount, heights, func(ctx context.Context, height uint32) error {
		block, err := s.source.FetchBlock(ctx, height)
		if err != nil {
			return err
		}
		mu.Lock()
		blocks = append(blocks, block)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Height < blocks[j].Height })
	return blocks, nil
}

// processBlock submits a claim for every burn transaction in the block.
func (s *Scanner) processBlock(ctx context.Context, block *Block) error {
	for i, raw := range block.RawTxs {
		tx, err := foreign.ParseTransaction(raw)
		if err != nil {
			s.logger.Warn("undecodable transaction in block",
				zap.String("block_hash", block.Hash.String()),
				zap.Uint32("height", block.Height),
				zap.Int("tx_index", i),
				zap.Error(err),
			)
			continue
		}

		if _, err := foreign.ExtractBurnInfo(tx, s.network); err != nil {
			var mismatch *foreign.NetworkMismatchError
			if errors.As(err, &mismatch) {
				s.logger.Debug("burn for another network skipped",
					zap.String("foreign_txid", tx.TxID.String()),
					zap.Error(err),
				)
			}
			continue
		}
		s.metrics.ObserveBurnDiscovered()

		if err := s.submitBurn(ctx, block, raw, uint32(i)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) submitBurn(ctx context.Context, block *Block, raw []byte, txIndex uint32) error {
	proof, err := merkle.BuildPath(block.TxIDs, txIndex)
	if err != nil {
		return fmt.Errorf("build proof for tx %d in block %s: %w", txIndex, block.Hash, err)
	}

	result, err := s.submitter.SubmitClaim(ctx, raw, block.Hash, block.Height, proof, txIndex)
	switch {
	case errors.Is(err, claims.ErrDuplicateClaim):
		s.logger.Debug("burn already claimed",
			zap.String("foreign_txid", block.TxIDs[txIndex].String()),
			zap.Uint32("height", block.Height),
		)
		return nil
	case err != nil:
		return fmt.Errorf("submit claim for tx %s: %w", block.TxIDs[txIndex], err)
	}

	s.logger.Info("claim submitted for discovered burn",
		zap.String("foreign_txid", result.ForeignTxID.String()),
		zap.String("local_txid", result.LocalTxID.String()),
		zap.Uint64("burned_amount", result.BurnedAmount),
		zap.Uint32("height", block.Height),
	)
	return nil
}
