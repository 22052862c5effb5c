package timelock

import "github.com/snrg-network/gsnrg/common"

// EventInitialized records queue configuration.
type EventInitialized struct {
	Admin           common.Address `json:"admin"`
	MinDelaySeconds int64          `json:"min_delay_seconds"`
}

func (EventInitialized) EventName() string { return "timelock_initialized" }

// EventScheduled records a proposal entering the queue.
type EventScheduled struct {
	ID          common.Hash    `json:"id"`
	Target      common.Address `json:"target"`
	Predecessor common.Hash    `json:"predecessor"`
	ETA         int64          `json:"eta"`
}

func (EventScheduled) EventName() string { return "timelock_scheduled" }

// EventExecuted records a proposal being executed.
type EventExecuted struct {
	ID common.Hash `json:"id"`
}

func (EventExecuted) EventName() string { return "timelock_executed" }

// EventCancelled records a proposal being cancelled.
type EventCancelled struct {
	ID common.Hash `json:"id"`
}

func (EventCancelled) EventName() string { return "timelock_cancelled" }

// EventDelayUpdated records a minimum-delay change.
type EventDelayUpdated struct {
	MinDelaySeconds int64 `json:"min_delay_seconds"`
}

func (EventDelayUpdated) EventName() string { return "timelock_delay_updated" }
