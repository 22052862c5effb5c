package swap

import "github.com/snrg-network/gsnrg/common"

// EventInitialized records ledger configuration.
type EventInitialized struct {
	Admin common.Address `json:"admin"`
}

func (EventInitialized) EventName() string { return "swap_initialized" }

// EventBurned records one burn receipt.
type EventBurned struct {
	Burner      common.Address `json:"burner"`
	Amount      uint64         `json:"amount"`
	TotalBurned uint64         `json:"total_burned"`
}

func (EventBurned) EventName() string { return "swap_burned" }

// EventRootProposed records a candidate distribution root.
type EventRootProposed struct {
	Root          common.Hash `json:"root"`
	FinalizableAt int64       `json:"finalizable_at"`
}

func (EventRootProposed) EventName() string { return "swap_root_proposed" }

// EventRootCancelled records a withdrawn proposal.
type EventRootCancelled struct {
	Root common.Hash `json:"root"`
}

func (EventRootCancelled) EventName() string { return "swap_root_cancelled" }

// EventFinalized records the anchored distribution commitment.
type EventFinalized struct {
	Root        common.Hash `json:"root"`
	TotalBurned uint64      `json:"total_burned"`
	Commitment  common.Hash `json:"commitment"`
	FinalizedAt int64       `json:"finalized_at"`
}

func (EventFinalized) EventName() string { return "swap_finalized" }

// EventReopened records a finalization being discarded for correction.
type EventReopened struct {
	NewRoot       common.Hash `json:"new_root"`
	FinalizableAt int64       `json:"finalizable_at"`
}

func (EventReopened) EventName() string { return "swap_reopened" }

// EventPauseSet records a pause state change.
type EventPauseSet struct {
	Paused bool `json:"paused"`
}

func (EventPauseSet) EventName() string { return "swap_pause_set" }
