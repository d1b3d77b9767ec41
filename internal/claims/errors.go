package claims

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateClaim marks a foreign txid that already has a record.
	// Terminal, but not a fault: the burn was already claimed.
	ErrDuplicateClaim = errors.New("claim already recorded for foreign txid")
	// ErrBurnsDisabled marks a submission rejected by the admission gate.
	// Terminal until the gate is re-enabled.
	ErrBurnsDisabled = errors.New("burn claim admission is disabled")
	// ErrRootMismatch marks a compact proof whose recovered root disagrees
	// with the header's declared Merkle root.
	ErrRootMismatch = errors.New("proof root does not match header merkle root")
	// ErrTxidMismatch marks a compact proof whose matched transaction is
	// not the submitted foreign transaction.
	ErrTxidMismatch = errors.New("proof txid does not match foreign transaction")
)

// InsufficientConfirmationsError reports a burn that has not yet reached
// the required confirmation depth. Callers may retry as the foreign chain
// advances.
type InsufficientConfirmationsError struct {
	Confirmations uint32
	Required      uint32
}

func (e *InsufficientConfirmationsError) Error() string {
	return fmt.Sprintf("burn has %d confirmations, need %d", e.Confirmations, e.Required)
}
