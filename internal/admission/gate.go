// Package admission holds the global kill switch gating acceptance of new
// burn claims.
package admission

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"go.uber.org/zap"
)

type (
	// Store persists the gate state across restarts.
	Store interface {
		GetKillSwitch() (model.KillSwitchStatus, bool, error)
		PutKillSwitch(model.KillSwitchStatus) error
	}
)

// Gate is the single administrative override point for claim acceptance.
// It never affects already-recorded claims.
type Gate struct {
	mu     sync.RWMutex
	status model.KillSwitchStatus
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewGate loads the persisted state, falling back to configDefault on first
// start.
func NewGate(store Store, configDefault bool, logger *zap.Logger) (*Gate, error) {
	if store == nil {
		return nil, errors.New("gate store is required")
	}

	g := &Gate{
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	status, found, err := store.GetKillSwitch()
	if err != nil {
		return nil, fmt.Errorf("load kill switch: %w", err)
	}
	if !found {
		status = model.KillSwitchStatus{Enabled: configDefault}
	}
	status.ConfigDefault = configDefault
	g.status = status

	logger.Info("admission gate initialized",
		zap.Bool("enabled", status.Enabled),
		zap.Bool("configDefault", configDefault),
	)
	return g, nil
}

// Enabled reports whether new claims are currently accepted.
func (g *Gate) Enabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status.Enabled
}

// Status returns a consistent snapshot of the gate.
func (g *Gate) Status() model.KillSwitchStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

// SetEnabled flips the gate and reports whether state actually changed.
// State is persisted before the in-memory flip becomes visible; a persist
// failure leaves the gate unchanged.
func (g *Gate) SetEnabled(enabled bool) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status.Enabled == enabled {
		return false, nil
	}

	next := g.status
	next.Enabled = enabled
	next.LastChanged = g.now().UTC()
	if err := g.store.PutKillSwitch(next); err != nil {
		return false, fmt.Errorf("persist kill switch: %w", err)
	}
	g.status = next

	g.logger.Warn("claim admission toggled", zap.Bool("enabled", enabled))
	return true, nil
}
