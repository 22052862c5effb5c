package staking

import "github.com/snrg-network/gsnrg/common"

// ReserveInfo is the view of the reserve ledger pool state.
type ReserveInfo struct {
	Admin           common.Address `json:"admin"`
	Treasury        common.Address `json:"treasury"`
	RewardReserve   uint64         `json:"reward_reserve"`
	PromisedRewards uint64         `json:"promised_rewards"`
	IsFunded        bool           `json:"is_funded"`
	Paused          bool           `json:"paused"`
}

// StakeRecord is the view of one stake. RemainingSeconds is a
// saturating countdown: zero once matured, never negative.
type StakeRecord struct {
	Owner            common.Address `json:"owner"`
	Index            uint64         `json:"index"`
	Principal        uint64         `json:"principal"`
	Reward           uint64         `json:"reward"`
	MaturityTime     int64          `json:"maturity_time"`
	Withdrawn        bool           `json:"withdrawn"`
	RemainingSeconds int64          `json:"remaining_seconds"`
}
