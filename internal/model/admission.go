package model

import "time"

// KillSwitchStatus describes the global claim-admission gate.
type KillSwitchStatus struct {
	Enabled       bool
	ConfigDefault bool
	LastChanged   time.Time
}
