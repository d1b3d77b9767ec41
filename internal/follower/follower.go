package follower

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/clock"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"go.uber.org/zap"
)

const defaultPollInterval = 10 * time.Second

// Follower polls the local chain tip, appends a settlement snapshot for
// every new block, and promotes pending claims once their wrapping local
// transaction has been buried the configured finality depth.
type Follower struct {
	chain         Chain
	claims        Claims
	settlements   Settlements
	finalityDepth uint32
	pollInterval  time.Duration
	logger        *zap.Logger
}

// NewFollower builds a Follower with dependencies.
func NewFollower(
	chain Chain,
	claims Claims,
	settlements Settlements,
	finalityDepth uint32,
	logger *zap.Logger,
) (*Follower, error) {
	if chain == nil {
		return nil, errors.New("local chain is required")
	}
	if claims == nil {
		return nil, errors.New("claim ledger is required")
	}
	if settlements == nil {
		return nil, errors.New("settlement ledger is required")
	}
	if finalityDepth == 0 {
		return nil, errors.New("finality depth must be positive")
	}

	return &Follower{
		chain:         chain,
		claims:        claims,
		settlements:   settlements,
		finalityDepth: finalityDepth,
		pollInterval:  defaultPollInterval,
		logger:        logger.Named("follower"),
	}, nil
}

// Run polls until the context is canceled. Poll failures are logged and
// retried on the next cycle; a partially applied cycle resumes from the
// settlement ledger's persisted height.
func (f *Follower) Run(ctx context.Context) error {
	f.logger.Info("local chain follower started",
		zap.Uint32("finalityDepth", f.finalityDepth),
		zap.Duration("pollInterval", f.pollInterval),
	)
	for {
		if err := f.poll(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			f.logger.Warn("follower poll failed", zap.Error(err))
		}
		if err := clock.SleepWithContext(ctx, f.pollInterval); err != nil {
			return err
		}
	}
}

func (f *Follower) poll(ctx context.Context) error {
	tip, err := f.chain.TipHeight()
	if err != nil {
		return fmt.Errorf("local tip height: %w", err)
	}
	if err := f.appendSnapshots(ctx, tip); err != nil {
		return err
	}
	return f.promoteClaims(tip)
}

// appendSnapshots records a snapshot for every height the settlement ledger
// is missing up to the tip. The very first run seeds at the current tip
// instead of replaying the whole chain.
func (f *Follower) appendSnapshots(ctx context.Context, tip uint32) error {
	latest, err := f.settlements.Latest()
	if err != nil {
		return fmt.Errorf("latest settlement: %w", err)
	}

	next := tip
	if latest != nil {
		if latest.Height >= tip {
			return nil
		}
		next = latest.Height + 1
	}

	for height := next; height <= tip; height++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		state, err := f.chain.SettlementAt(ctx, height)
		if err != nil {
			return fmt.Errorf("settlement info at %d: %w", height, err)
		}
		if err := f.settlements.Append(state); err != nil {
			return fmt.Errorf("append settlement at %d: %w", height, err)
		}
	}
	return nil
}

// promoteClaims finalizes every pending claim whose claim height the tip
// has passed by at least finalityDepth blocks. Orphaned claims never match
// the pending filter and are left alone.
func (f *Follower) promoteClaims(tip uint32) error {
	if tip < f.finalityDepth {
		return nil
	}
	matured := tip - f.finalityDepth

	views, err := f.claims.ListClaims(model.FilterPending, 0, 0)
	if err != nil {
		return fmt.Errorf("list pending claims: %w", err)
	}
	for _, view := range views {
		if view.ClaimHeight > matured {
			continue
		}
		if err := f.claims.MarkClaimFinal(view.ForeignTxID, tip); err != nil {
			return fmt.Errorf("finalize claim %s: %w", view.ForeignTxID, err)
		}
	}
	return nil
}
