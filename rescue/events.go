package rescue

import "github.com/snrg-network/gsnrg/common"

// EventInitialized records registry configuration.
type EventInitialized struct {
	Admin common.Address `json:"admin"`
}

func (EventInitialized) EventName() string { return "rescue_initialized" }

// EventPlanRegistered records a plan being created or reshaped.
type EventPlanRegistered struct {
	Owner        common.Address `json:"owner"`
	Recovery     common.Address `json:"recovery"`
	DelaySeconds int64          `json:"delay_seconds"`
}

func (EventPlanRegistered) EventName() string { return "rescue_plan_registered" }

// EventRescueInitiated records a plan being armed.
type EventRescueInitiated struct {
	Owner common.Address `json:"owner"`
	ETA   int64          `json:"eta"`
}

func (EventRescueInitiated) EventName() string { return "rescue_initiated" }

// EventRescueCancelled records a plan being disarmed.
type EventRescueCancelled struct {
	Owner common.Address `json:"owner"`
}

func (EventRescueCancelled) EventName() string { return "rescue_cancelled" }

// EventRescueExecuted records a completed sweep.
type EventRescueExecuted struct {
	Owner    common.Address `json:"owner"`
	Recovery common.Address `json:"recovery"`
	Amount   uint64         `json:"amount"`
	Executor common.Address `json:"executor"`
}

func (EventRescueExecuted) EventName() string { return "rescue_executed" }

// EventExecutorAdded records an executor joining the authorized circle.
type EventExecutorAdded struct {
	Executor common.Address `json:"executor"`
}

func (EventExecutorAdded) EventName() string { return "rescue_executor_added" }

// EventExecutorRemoved records an executor leaving the authorized circle.
type EventExecutorRemoved struct {
	Executor common.Address `json:"executor"`
}

func (EventExecutorRemoved) EventName() string { return "rescue_executor_removed" }

// EventMaxRescueSet records a ceiling change.
type EventMaxRescueSet struct {
	Amount uint64 `json:"amount"`
}

func (EventMaxRescueSet) EventName() string { return "rescue_max_amount_set" }

// EventPauseSet records a pause state change.
type EventPauseSet struct {
	Paused bool `json:"paused"`
}

func (EventPauseSet) EventName() string { return "rescue_pause_set" }
