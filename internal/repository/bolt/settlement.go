package bolt

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	bbolt "go.etcd.io/bbolt"
)

// PutSettlement stores the snapshot for its height.
func (r *Repository) PutSettlement(state *model.SettlementState) error {
	started := time.Now()
	var err error
	defer func() {
		r.observe("put_settlement", err, started)
	}()

	err = r.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSettlement).Put(heightKey(state.Height), encodeSettlement(state))
	})
	if err != nil {
		return fmt.Errorf("put settlement at %d: %w", state.Height, err)
	}
	return nil
}

// GetSettlement returns the snapshot at a height, or nil when absent.
func (r *Repository) GetSettlement(height uint32) (*model.SettlementState, error) {
	started := time.Now()
	var err error
	defer func() {
		r.observe("get_settlement", err, started)
	}()

	var state *model.SettlementState
	err = r.view(func(tx *bbolt.Tx) error {
		key := heightKey(height)
		value := tx.Bucket(bucketSettlement).Get(key)
		if value == nil {
			return nil
		}
		decoded, decodeErr := decodeSettlement(key, value)
		if decodeErr != nil {
			return decodeErr
		}
		state = decoded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get settlement at %d: %w", height, err)
	}
	return state, nil
}

// LatestSettlement returns the highest-height snapshot, or nil when the
// ledger is empty. Height keys are big-endian so the bucket cursor ends on
// the latest snapshot.
func (r *Repository) LatestSettlement() (*model.SettlementState, error) {
	started := time.Now()
	var err error
	defer func() {
		r.observe("latest_settlement", err, started)
	}()

	var state *model.SettlementState
	err = r.view(func(tx *bbolt.Tx) error {
		key, value := tx.Bucket(bucketSettlement).Cursor().Last()
		if key == nil {
			return nil
		}
		decoded, decodeErr := decodeSettlement(key, value)
		if decodeErr != nil {
			return decodeErr
		}
		state = decoded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get latest settlement: %w", err)
	}
	return state, nil
}
