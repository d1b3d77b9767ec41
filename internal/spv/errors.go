package spv

import "errors"

var (
	// ErrHeaderNotFound marks a block hash unknown to the header chain.
	// Callers may retry once header sync catches up.
	ErrHeaderNotFound = errors.New("foreign header not found")
	// ErrNotInBestChain marks a known header that is not on the current
	// best chain.
	ErrNotInBestChain = errors.New("foreign block not in best chain")
	// ErrHeightMismatch marks a claimed height that disagrees with the
	// oracle's view of the block.
	ErrHeightMismatch = errors.New("foreign height mismatch")
	// ErrOracleUnavailable marks an uninitialized or unreachable header
	// oracle. Fatal to the calling operation.
	ErrOracleUnavailable = errors.New("spv oracle unavailable")
)
