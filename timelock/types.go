package timelock

import "github.com/snrg-network/gsnrg/common"

// ProposalState labels the lifecycle position of a proposal.
type ProposalState string

const (
	StateScheduled ProposalState = "scheduled"
	StateReady     ProposalState = "ready"
	StateExecuted  ProposalState = "executed"
	StateCancelled ProposalState = "cancelled"
)

// ProposalRecord is the view of one queued proposal.
type ProposalRecord struct {
	ID          common.Hash    `json:"id"`
	Target      common.Address `json:"target"`
	Payload     []byte         `json:"payload,omitempty"`
	Predecessor common.Hash    `json:"predecessor"`
	ETA         int64          `json:"eta"`
	State       ProposalState  `json:"state"`
}

// QueueInfo is the view of the queue configuration.
type QueueInfo struct {
	Admin           common.Address `json:"admin"`
	MinDelaySeconds int64          `json:"min_delay_seconds"`
}
