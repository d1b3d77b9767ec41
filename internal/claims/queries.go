package claims

import (
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"go.uber.org/zap"
)

// GetClaim returns the claim view for a foreign txid, or nil when absent.
// The orphan overlay is derived against the oracle's current best chain and
// never written back.
func (s *Service) GetClaim(foreignTxID chainhash.Hash) (*model.ClaimView, error) {
	rec, err := s.store.GetClaim(foreignTxID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return s.resolveView(rec)
}

// ClaimExists reports whether a record exists for the foreign txid.
func (s *Service) ClaimExists(foreignTxID chainhash.Hash) (bool, error) {
	return s.store.HasClaim(foreignTxID)
}

// ListClaims returns claim views matching the filter, in foreign-txid key
// order, honoring offset and limit. A non-positive limit means no limit.
func (s *Service) ListClaims(filter model.StatusFilter, limit, offset int) ([]model.ClaimView, error) {
	views := make([]model.ClaimView, 0)
	skipped := 0

	err := s.store.ForEachClaim(func(rec *model.BurnClaimRecord) (bool, error) {
		view, err := s.resolveView(rec)
		if err != nil {
			return false, err
		}
		if !matchesFilter(*view, filter) {
			return true, nil
		}
		if skipped < offset {
			skipped++
			return true, nil
		}
		views = append(views, *view)
		if limit > 0 && len(views) >= limit {
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// AggregateStats summarizes the claim ledger through a read-through cache
// keyed by the local ledger height, invalidated on every claim write.
func (s *Service) AggregateStats() (model.AggregateStats, error) {
	tip, err := s.engine.TipHeight()
	if err != nil {
		return model.AggregateStats{}, fmt.Errorf("local tip height: %w", err)
	}
	if stats, ok := s.stats.get(tip); ok {
		return stats, nil
	}

	var stats model.AggregateStats
	err = s.store.ForEachClaim(func(rec *model.BurnClaimRecord) (bool, error) {
		stats.TotalRecords++
		stats.TotalClaimedAmount += rec.BurnedAmount
		switch rec.Status {
		case model.ClaimPending:
			stats.PendingCount++
			stats.PendingAmount += rec.BurnedAmount
		case model.ClaimFinal:
			stats.FinalCount++
		}
		return true, nil
	})
	if err != nil {
		return model.AggregateStats{}, err
	}

	s.stats.put(tip, stats)
	return stats, nil
}

// MarkClaimFinal promotes a pending record once the local chain has
// advanced the required finality depth past the claiming block. The
// decision is the block-processing path's; this is only the mutation entry.
// Promoting an already-final record is a no-op.
func (s *Service) MarkClaimFinal(foreignTxID chainhash.Hash, finalHeight uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.store.GetClaim(foreignTxID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no claim recorded for %s", foreignTxID)
	}
	if rec.Status == model.ClaimFinal {
		return nil
	}

	rec.Status = model.ClaimFinal
	rec.FinalHeight = finalHeight
	if err := s.store.PutClaim(rec); err != nil {
		return err
	}
	s.stats.invalidate()

	s.logger.Info("burn claim finalized",
		zap.String("foreignTxid", foreignTxID.String()),
		zap.Uint32("finalHeight", finalHeight),
	)
	return nil
}

func (s *Service) resolveView(rec *model.BurnClaimRecord) (*model.ClaimView, error) {
	view := &model.ClaimView{BurnClaimRecord: *rec}
	if rec.Status == model.ClaimPending {
		inBestChain, err := s.oracle.IsInBestChain(&rec.ForeignBlockHash)
		if err != nil {
			return nil, err
		}
		view.Orphaned = !inBestChain
	}
	return view, nil
}

func matchesFilter(view model.ClaimView, filter model.StatusFilter) bool {
	switch filter {
	case model.FilterPending:
		return view.Status == model.ClaimPending && !view.Orphaned
	case model.FilterFinal:
		return view.Status == model.ClaimFinal
	case model.FilterOrphaned:
		return view.Orphaned
	case model.FilterAll:
		return true
	default:
		return true
	}
}

// statsCache is an explicit, invalidatable read-through cache for the
// aggregate stats, keyed by local ledger height.
type statsCache struct {
	mu     sync.Mutex
	valid  bool
	height uint32
	stats  model.AggregateStats
}

func (c *statsCache) get(height uint32) (model.AggregateStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || c.height != height {
		return model.AggregateStats{}, false
	}
	return c.stats, true
}

func (c *statsCache) put(height uint32, stats model.AggregateStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = true
	c.height = height
	c.stats = stats
}

func (c *statsCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
