package model

// SettlementState is the per-height snapshot of supply quantities the
// settlement ledger records for every local block.
type SettlementState struct {
	Height              uint32
	BlockHash           string
	M0Total             uint64
	M0Vaulted           uint64
	M0Shielded          uint64
	M1Supply            uint64
	BurnClaimsThisBlock uint64
}

// InvariantDeltas carries the diagnostic deltas of the monetary invariants.
// Both are expected to be zero at every snapshot.
type InvariantDeltas struct {
	// A5 is M0Total(h) - M0Total(h-1) - BurnClaimsThisBlock(h): supply may
	// grow only through verified burn claims processed in that block.
	A5 int64
	// A6 is M0Vaulted - M1Supply: minted supply must stay fully backed.
	A6 int64
}

// Clean reports whether both invariants hold.
func (d InvariantDeltas) Clean() bool {
	return d.A5 == 0 && d.A6 == 0
}
