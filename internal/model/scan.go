package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// ScanProgress is the persisted last-processed foreign block of the scanner.
type ScanProgress struct {
	LastHeight uint32
	LastHash   chainhash.Hash
}

// ScanStatus is the scanner progress resolved against the oracle tip.
type ScanStatus struct {
	LastHeight   uint32
	LastHash     string
	TipHeight    uint32
	MinHeight    uint32
	BlocksBehind uint32
	Synced       bool
}

// ScanRange is an inclusive height range still to inspect. Count is zero
// when the scanner is caught up with the tip.
type ScanRange struct {
	Start uint32
	End   uint32
	Count uint32
	AtTip bool
}
