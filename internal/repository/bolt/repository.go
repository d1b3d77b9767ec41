// Package bolt persists the burn-claim ledger, settlement snapshots and
// administrative state in a single bbolt file.
package bolt

import (
	"errors"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"
)

var (
	bucketClaims     = []byte("burn_claims_by_foreign_txid")
	bucketSettlement = []byte("settlement_by_height")
	bucketMeta       = []byte("meta")

	metaKeyKillSwitch   = []byte("kill_switch")
	metaKeyScanProgress = []byte("scan_progress")
)

// ErrUnavailable marks an uninitialized or closed store. Fatal to the
// calling operation.
var ErrUnavailable = errors.New("claim store unavailable")

type (
	// Metrics records metrics for store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository is the bbolt-backed keyed store.
type Repository struct {
	db      *bbolt.DB
	metrics Metrics
}

// NewRepository opens (creating if necessary) the store at path.
func NewRepository(path string, metrics Metrics) (*Repository, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketClaims, bucketSettlement, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("create bucket %s: %w", string(b), err)
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// Close releases the underlying database file.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) view(fn func(tx *bbolt.Tx) error) error {
	if r == nil || r.db == nil {
		return ErrUnavailable
	}
	return r.db.View(fn)
}

func (r *Repository) update(fn func(tx *bbolt.Tx) error) error {
	if r == nil || r.db == nil {
		return ErrUnavailable
	}
	return r.db.Update(fn)
}
