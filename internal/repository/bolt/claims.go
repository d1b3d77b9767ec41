package bolt

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	bbolt "go.etcd.io/bbolt"
)

// PutClaim creates or replaces the record keyed by its foreign txid.
func (r *Repository) PutClaim(rec *model.BurnClaimRecord) error {
	started := time.Now()
	var err error
	defer func() {
		r.observe("put_claim", err, started)
	}()

	err = r.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketClaims).Put(rec.ForeignTxID[:], encodeClaim(rec))
	})
	if err != nil {
		return fmt.Errorf("put claim %s: %w", rec.ForeignTxID, err)
	}
	return nil
}

// GetClaim returns the record for a foreign txid, or nil when absent.
func (r *Repository) GetClaim(foreignTxID chainhash.Hash) (*model.BurnClaimRecord, error) {
	started := time.Now()
	var err error
	defer func() {
		r.observe("get_claim", err, started)
	}()

	var rec *model.BurnClaimRecord
	err = r.view(func(tx *bbolt.Tx) error {
		value := tx.Bucket(bucketClaims).Get(foreignTxID[:])
		if value == nil {
			return nil
		}
		decoded, decodeErr := decodeClaim(foreignTxID[:], value)
		if decodeErr != nil {
			return decodeErr
		}
		rec = decoded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get claim %s: %w", foreignTxID, err)
	}
	return rec, nil
}

// HasClaim reports whether a record exists for the foreign txid.
func (r *Repository) HasClaim(foreignTxID chainhash.Hash) (bool, error) {
	started := time.Now()
	var err error
	defer func() {
		r.observe("has_claim", err, started)
	}()

	var exists bool
	err = r.view(func(tx *bbolt.Tx) error {
		exists = tx.Bucket(bucketClaims).Get(foreignTxID[:]) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("has claim %s: %w", foreignTxID, err)
	}
	return exists, nil
}

// ForEachClaim visits every record in key order until visit returns false
// or an error.
func (r *Repository) ForEachClaim(visit func(*model.BurnClaimRecord) (bool, error)) error {
	started := time.Now()
	var err error
	defer func() {
		r.observe("for_each_claim", err, started)
	}()

	err = r.view(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketClaims).Cursor()
		for key, value := cursor.First(); key != nil; key, value = cursor.Next() {
			rec, decodeErr := decodeClaim(key, value)
			if decodeErr != nil {
				return decodeErr
			}
			keep, visitErr := visit(rec)
			if visitErr != nil {
				return visitErr
			}
			if !keep {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate claims: %w", err)
	}
	return nil
}

func (r *Repository) observe(operation string, err error, started time.Time) {
	if r == nil || r.metrics == nil {
		return
	}
	r.metrics.Observe(operation, err, started)
}
