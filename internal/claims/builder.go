package claims

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// ClaimTxVersion is the current claim payload version.
const ClaimTxVersion = 1

// Limits on claim payload fields; generous relative to foreign consensus
// limits, tight enough to bound decode allocations.
const (
	maxRawForeignTxSize = 1_000_000
	maxProofHashes      = 32
)

// ClaimPayload carries everything the local validation engine needs to
// re-derive and re-check the burn: the raw foreign transaction, the block
// it was mined in, and its inclusion proof.
type ClaimPayload struct {
	RawForeignTx []byte
	BlockHash    chainhash.Hash
	Height       uint32
	TxIndex      uint32
	Proof        []chainhash.Hash
}

// ClaimTx is the unsigned special-purpose local transaction wrapping a
// claim payload. No signature is attached or required: the payout is fixed
// by the burn itself, not by who submits it.
type ClaimTx struct {
	Version byte
	Payload ClaimPayload
}

// BuildClaimTx assembles a versioned claim transaction.
func BuildClaimTx(rawForeignTx []byte, blockHash chainhash.Hash, height, txIndex uint32, proof []chainhash.Hash) *ClaimTx {
	return &ClaimTx{
		Version: ClaimTxVersion,
		Payload: ClaimPayload{
			RawForeignTx: append([]byte(nil), rawForeignTx...),
			BlockHash:    blockHash,
			Height:       height,
			TxIndex:      txIndex,
			Proof:        append([]chainhash.Hash(nil), proof...),
		},
	}
}

// Serialize encodes the claim transaction for submission.
func (t *ClaimTx) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(t.Version)

	if err := wire.WriteVarBytes(&buf, 0, t.Payload.RawForeignTx); err != nil {
		return nil, fmt.Errorf("write foreign tx: %w", err)
	}
	buf.Write(t.Payload.BlockHash[:])

	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], t.Payload.Height)
	buf.Write(scratch[:])
	binary.LittleEndian.PutUint32(scratch[:], t.Payload.TxIndex)
	buf.Write(scratch[:])

	if err := wire.WriteVarInt(&buf, 0, uint64(len(t.Payload.Proof))); err != nil {
		return nil, fmt.Errorf("write proof count: %w", err)
	}
	for i := range t.Payload.Proof {
		buf.Write(t.Payload.Proof[i][:])
	}

	return buf.Bytes(), nil
}

// DecodeClaimTx parses a serialized claim transaction.
func DecodeClaimTx(raw []byte) (*ClaimTx, error) {
	r := bytes.NewReader(raw)

	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != ClaimTxVersion {
		return nil, fmt.Errorf("unsupported claim version %d", version)
	}

	t := &ClaimTx{Version: version}
	t.Payload.RawForeignTx, err = wire.ReadVarBytes(r, 0, maxRawForeignTxSize, "raw foreign tx")
	if err != nil {
		return nil, fmt.Errorf("read foreign tx: %w", err)
	}
	if _, err := io.ReadFull(r, t.Payload.BlockHash[:]); err != nil {
		return nil, fmt.Errorf("read block hash: %w", err)
	}

	var scratch [4]byte
	if _, err := io.ReadFull(r, scratch[:]); err != nil {
		return nil, fmt.Errorf("read height: %w", err)
	}
	t.Payload.Height = binary.LittleEndian.Uint32(scratch[:])
	if _, err := io.ReadFull(r, scratch[:]); err != nil {
		return nil, fmt.Errorf("read tx index: %w", err)
	}
	t.Payload.TxIndex = binary.LittleEndian.Uint32(scratch[:])

	count, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("read proof count: %w", err)
	}
	if count > maxProofHashes {
		return nil, fmt.Errorf("proof count %d exceeds limit", count)
	}
	t.Payload.Proof = make([]chainhash.Hash, count)
	for i := range t.Payload.Proof {
		if _, err := io.ReadFull(r, t.Payload.Proof[i][:]); err != nil {
			return nil, fmt.Errorf("read proof hash %d: %w", i, err)
		}
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes", r.Len())
	}
	return t, nil
}
