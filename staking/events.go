package staking

import "github.com/snrg-network/gsnrg/common"

// EventInitialized is emitted once when the pool is created.
type EventInitialized struct {
	Admin    common.Address `json:"admin"`
	Treasury common.Address `json:"treasury"`
}

func (EventInitialized) EventName() string { return "staking_initialized" }

// EventReserveFunded is emitted on the one-time funding transition.
// Amount is the custody delta actually received.
type EventReserveFunded struct {
	From   common.Address `json:"from"`
	Amount uint64         `json:"amount"`
}

func (EventReserveFunded) EventName() string { return "staking_reserve_funded" }

// EventReserveToppedUp is emitted on each reserve top-up.
type EventReserveToppedUp struct {
	From   common.Address `json:"from"`
	Amount uint64         `json:"amount"`
}

func (EventReserveToppedUp) EventName() string { return "staking_reserve_topped_up" }

// EventStaked is emitted when a stake record is created.
type EventStaked struct {
	Owner        common.Address `json:"owner"`
	Index        uint64         `json:"index"`
	Principal    uint64         `json:"principal"`
	Reward       uint64         `json:"reward"`
	DurationDays uint64         `json:"duration_days"`
	MaturityTime int64          `json:"maturity_time"`
}

func (EventStaked) EventName() string { return "staking_staked" }

// EventWithdrawn is emitted on a matured withdrawal.
type EventWithdrawn struct {
	Owner     common.Address `json:"owner"`
	Index     uint64         `json:"index"`
	Principal uint64         `json:"principal"`
	Reward    uint64         `json:"reward"`
	Payout    uint64         `json:"payout"`
}

func (EventWithdrawn) EventName() string { return "staking_withdrawn" }

// EventWithdrawnEarly is emitted on a pre-maturity exit.
type EventWithdrawnEarly struct {
	Owner     common.Address `json:"owner"`
	Index     uint64         `json:"index"`
	Principal uint64         `json:"principal"`
	Fee       uint64         `json:"fee"`
	Returned  uint64         `json:"returned"`
	Forfeited uint64         `json:"forfeited"`
}

func (EventWithdrawnEarly) EventName() string { return "staking_withdrawn_early" }

// EventEmergencyWithdrawn is emitted on an emergency exit.
type EventEmergencyWithdrawn struct {
	Owner     common.Address `json:"owner"`
	Index     uint64         `json:"index"`
	Principal uint64         `json:"principal"`
	Fee       uint64         `json:"fee"`
	Returned  uint64         `json:"returned"`
	Forfeited uint64         `json:"forfeited"`
}

func (EventEmergencyWithdrawn) EventName() string { return "staking_emergency_withdrawn" }

// EventPauseSet is emitted when the circuit breaker toggles.
type EventPauseSet struct {
	Paused bool `json:"paused"`
}

func (EventPauseSet) EventName() string { return "staking_pause_set" }
