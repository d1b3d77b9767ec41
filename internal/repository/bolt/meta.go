package bolt

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	bbolt "go.etcd.io/bbolt"
)

// GetKillSwitch returns the persisted admission gate state; found is false
// when nothing was persisted yet.
func (r *Repository) GetKillSwitch() (status model.KillSwitchStatus, found bool, err error) {
	started := time.Now()
	defer func() {
		r.observe("get_kill_switch", err, started)
	}()

	err = r.view(func(tx *bbolt.Tx) error {
		value := tx.Bucket(bucketMeta).Get(metaKeyKillSwitch)
		if value == nil {
			return nil
		}
		decoded, decodeErr := decodeKillSwitch(value)
		if decodeErr != nil {
			return decodeErr
		}
		status = decoded
		found = true
		return nil
	})
	if err != nil {
		return model.KillSwitchStatus{}, false, fmt.Errorf("get kill switch: %w", err)
	}
	return status, found, nil
}

// PutKillSwitch persists the admission gate state.
func (r *Repository) PutKillSwitch(status model.KillSwitchStatus) error {
	started := time.Now()
	var err error
	defer func() {
		r.observe("put_kill_switch", err, started)
	}()

	err = r.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(metaKeyKillSwitch, encodeKillSwitch(status))
	})
	if err != nil {
		return fmt.Errorf("put kill switch: %w", err)
	}
	return nil
}

// GetScanProgress returns the persisted scan cursor; found is false when the
// scanner has not advanced yet.
func (r *Repository) GetScanProgress() (progress model.ScanProgress, found bool, err error) {
	started := time.Now()
	defer func() {
		r.observe("get_scan_progress", err, started)
	}()

	err = r.view(func(tx *bbolt.Tx) error {
		value := tx.Bucket(bucketMeta).Get(metaKeyScanProgress)
		if value == nil {
			return nil
		}
		decoded, decodeErr := decodeScanProgress(value)
		if decodeErr != nil {
			return decodeErr
		}
		progress = decoded
		found = true
		return nil
	})
	if err != nil {
		return model.ScanProgress{}, false, fmt.Errorf("get scan progress: %w", err)
	}
	return progress, found, nil
}

// PutScanProgress persists the scan cursor.
func (r *Repository) PutScanProgress(progress model.ScanProgress) error {
	started := time.Now()
	var err error
	defer func() {
		r.observe("put_scan_progress", err, started)
	}()

	err = r.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(metaKeyScanProgress, encodeScanProgress(progress))
	})
	if err != nil {
		return fmt.Errorf("put scan progress: %w", err)
	}
	return nil
}
