package rescue

import "github.com/snrg-network/gsnrg/common"

// PlanInfo is the view of one rescue plan. RemainingSeconds is a saturating
// countdown to the armed ETA: zero when matured or disarmed.
type PlanInfo struct {
	Owner            common.Address `json:"owner"`
	Recovery         common.Address `json:"recovery"`
	DelaySeconds     int64          `json:"delay_seconds"`
	ETA              int64          `json:"eta"`
	LastRescueTime   int64          `json:"last_rescue_time"`
	Armed            bool           `json:"armed"`
	RemainingSeconds int64          `json:"remaining_seconds"`
}

// RegistryInfo is the view of the registry-wide configuration.
type RegistryInfo struct {
	Admin           common.Address   `json:"admin"`
	Paused          bool             `json:"paused"`
	MaxRescueAmount uint64           `json:"max_rescue_amount"`
	Executors       []common.Address `json:"executors"`
}
