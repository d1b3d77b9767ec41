package scan

import (
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/spv"
	"go.uber.org/zap"
)

const defaultRangeWidth = 500

// Cursor is the persisted high-water mark of foreign-chain scanning. It only
// advances to blocks the oracle places on the current best chain, and it
// re-verifies the previously recorded block before each advance so a reorg
// underneath the cursor is surfaced instead of silently scanned over.
type Cursor struct {
	mu      sync.Mutex
	store   Store
	oracle  Oracle
	metrics Metrics
	logger  *zap.Logger
}

// NewCursor constructs a scan cursor over the persisted progress record.
func NewCursor(store Store, oracle Oracle, scanMetrics Metrics, logger *zap.Logger) (*Cursor, error) {
	if store == nil {
		return nil, fmt.Errorf("nil store")
	}
	if oracle == nil {
		return nil, fmt.Errorf("nil oracle")
	}
	if scanMetrics == nil {
		return nil, fmt.Errorf("nil metrics")
	}
	if logger == nil {
		return nil, fmt.Errorf("nil logger")
	}
	return &Cursor{
		store:   store,
		oracle:  oracle,
		metrics: scanMetrics,
		logger:  logger,
	}, nil
}

// Advance records a newly processed block. The block must be on the best
// chain at the height the oracle reports for it.
func (c *Cursor) Advance(height uint32, hash chainhash.Hash) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	inBest, err := c.oracle.IsInBestChain(&hash)
	if err != nil {
		return fmt.Errorf("advance cursor: %w", err)
	}
	if !inBest {
		return fmt.Errorf("block %s at height %d: %w", hash, height, spv.ErrNotInBestChain)
	}

	_, oracleHeight, err := c.oracle.GetHeader(&hash)
	if err != nil {
		return fmt.Errorf("advance cursor: %w", err)
	}
	if oracleHeight != height {
		return fmt.Errorf("block %s claimed at height %d, oracle reports %d: %w",
			hash, height, oracleHeight, spv.ErrHeightMismatch)
	}

	prior, found, err := c.store.GetScanProgress()
	if err != nil {
		return fmt.Errorf("advance cursor: %w", err)
	}
	if found && height > prior.LastHeight {
		if err := c.checkPrior(prior); err != nil {
			return err
		}
	}

	progress := model.ScanProgress{LastHeight: height, LastHash: hash}
	if err := c.store.PutScanProgress(progress); err != nil {
		return fmt.Errorf("advance cursor: %w", err)
	}
	return nil
}

// checkPrior re-verifies that the previously recorded block is still the
// best-chain block at its height. A mismatch means the chain reorganized
// under a region already scanned; the cursor still advances, but the event
// is recorded so already-processed heights can be rescanned.
func (c *Cursor) checkPrior(prior model.ScanProgress) error {
	header, err := c.oracle.GetHeaderAtHeight(prior.LastHeight)
	if err != nil {
		return fmt.Errorf("re-verify scanned block at height %d: %w", prior.LastHeight, err)
	}
	current := header.BlockHash()
	if !current.IsEqual(&prior.LastHash) {
		c.metrics.ObserveReorg()
		c.logger.Warn("reorg under scan cursor",
			zap.Uint32("height", prior.LastHeight),
			zap.String("scanned_hash", prior.LastHash.String()),
			zap.String("best_chain_hash", current.String()),
		)
	}
	return nil
}

// NextRange returns the next inclusive height range to scan, at most
// maxBlocks wide. A zero-count range with AtTip set means the cursor is
// caught up.
func (c *Cursor) NextRange(maxBlocks uint32) (model.ScanRange, error) {
	if maxBlocks == 0 {
		maxBlocks = defaultRangeWidth
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tip, err := c.oracle.TipHeight()
	if err != nil {
		return model.ScanRange{}, fmt.Errorf("next scan range: %w", err)
	}

	start := c.oracle.MinSupportedHeight()
	progress, found, err := c.store.GetScanProgress()
	if err != nil {
		return model.ScanRange{}, fmt.Errorf("next scan range: %w", err)
	}
	if found {
		start = progress.LastHeight + 1
	}

	if start > tip {
		return model.ScanRange{AtTip: true}, nil
	}

	end := tip
	if width := end - start + 1; width > maxBlocks {
		end = start + maxBlocks - 1
	}
	return model.ScanRange{
		Start: start,
		End:   end,
		Count: end - start + 1,
		AtTip: end == tip,
	}, nil
}

// Status resolves the cursor against the oracle tip.
func (c *Cursor) Status() (model.ScanStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tip, err := c.oracle.TipHeight()
	if err != nil {
		return model.ScanStatus{}, fmt.Errorf("scan status: %w", err)
	}

	minHeight := c.oracle.MinSupportedHeight()
	status := model.ScanStatus{
		TipHeight: tip,
		MinHeight: minHeight,
	}

	progress, found, err := c.store.GetScanProgress()
	if err != nil {
		return model.ScanStatus{}, fmt.Errorf("scan status: %w", err)
	}
	if !found {
		if tip >= minHeight {
			status.BlocksBehind = tip - minHeight + 1
		}
		status.Synced = status.BlocksBehind == 0
		return status, nil
	}

	status.LastHeight = progress.LastHeight
	status.LastHash = progress.LastHash.String()
	if tip > progress.LastHeight {
		status.BlocksBehind = tip - progress.LastHeight
	}
	status.Synced = status.BlocksBehind == 0
	return status, nil
}
