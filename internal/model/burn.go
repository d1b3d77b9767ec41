package model

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DestinationSize is the length of the destination hash carried in burn metadata.
const DestinationSize = 20

// Destination is the local-chain payout target encoded in a burn output.
type Destination [DestinationSize]byte

// String returns the hex encoding of the destination hash.
func (d Destination) String() string {
	return hex.EncodeToString(d[:])
}

// BurnInfo is the metadata extracted from a well-formed burn transaction.
type BurnInfo struct {
	Version      byte
	NetworkTag   byte
	Destination  Destination
	BurnedAmount uint64
}

// TxInput references a previous output spent by a foreign transaction.
type TxInput struct {
	PrevTxID chainhash.Hash
	PrevVout uint32
	Sequence uint32
}

// TxOutput is a value-bearing output of a foreign transaction.
type TxOutput struct {
	Value    uint64
	PkScript []byte
}

// ForeignTx is a decoded foreign-chain transaction. Immutable once parsed;
// TxID is computed over the non-witness serialization.
type ForeignTx struct {
	TxID       chainhash.Hash
	Raw        []byte
	Version    uint32
	LockTime   uint32
	Inputs     []TxInput
	Outputs    []TxOutput
	HasWitness bool
}
