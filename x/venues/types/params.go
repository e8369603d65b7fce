package types

import (
	"fmt"
)

// Params holds the venues module parameters.
type Params struct {
	// BatchDeadlineGraceSeconds is added to the block time to form the
	// deadline passed to the batch vault. The path and fee-pool venues get
	// the bare block time.
	BatchDeadlineGraceSeconds int64 `json:"batch_deadline_grace_seconds"`

	// MaxPathHops bounds the hop count accepted at path registration.
	MaxPathHops uint32 `json:"max_path_hops"`
}

// DefaultParams returns the default venues parameters.
func DefaultParams() Params {
	return Params{
		BatchDeadlineGraceSeconds: 500,
		MaxPathHops:               5,
	}
}

// Validate ensures the parameter set is well-formed.
func (p Params) Validate() error {
	if p.BatchDeadlineGraceSeconds <= 0 {
		return fmt.Errorf("batch deadline grace must be positive, got %d", p.BatchDeadlineGraceSeconds)
	}
	if p.MaxPathHops < 2 {
		return fmt.Errorf("max path hops must allow at least the two endpoints, got %d", p.MaxPathHops)
	}
	return nil
}
