// Package foreign decodes foreign-chain transactions and extracts burn metadata.
package foreign

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/pkg/safe"
)

// ErrMalformedTransaction marks raw bytes that do not decode as a
// foreign-chain transaction. Always a caller input fault, never retried.
var ErrMalformedTransaction = errors.New("malformed foreign transaction")

// ParseTransaction decodes raw foreign-chain transaction bytes. The returned
// transaction id is computed over the non-witness serialization.
func ParseTransaction(raw []byte) (*model.ForeignTx, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrMalformedTransaction)
	}

	var msg wire.MsgTx
	r := bytes.NewReader(raw)
	if err := msg.Deserialize(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTransaction, err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedTransaction, r.Len())
	}

	inputCount, err := safe.Uint32(len(msg.TxIn))
	if err != nil {
		return nil, fmt.Errorf("input count overflow: %w", err)
	}
	outputCount, err := safe.Uint32(len(msg.TxOut))
	if err != nil {
		return nil, fmt.Errorf("output count overflow: %w", err)
	}

	tx := &model.ForeignTx{
		TxID:       msg.TxHash(),
		Raw:        append([]byte(nil), raw...),
		Version:    uint32(msg.Version),
		LockTime:   msg.LockTime,
		Inputs:     make([]model.TxInput, 0, inputCount),
		Outputs:    make([]model.TxOutput, 0, outputCount),
		HasWitness: msg.HasWitness(),
	}

	for _, in := range msg.TxIn {
		tx.Inputs = append(tx.Inputs, model.TxInput{
			PrevTxID: in.PreviousOutPoint.Hash,
			PrevVout: in.PreviousOutPoint.Index,
			Sequence: in.Sequence,
		})
	}
	for _, out := range msg.TxOut {
		value, err := safe.Uint64(out.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: negative output value %d", ErrMalformedTransaction, out.Value)
		}
		tx.Outputs = append(tx.Outputs, model.TxOutput{
			Value:    value,
			PkScript: append([]byte(nil), out.PkScript...),
		})
	}

	return tx, nil
}
